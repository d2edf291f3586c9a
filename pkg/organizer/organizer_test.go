package organizer

import (
	"bytes"
	"errors"
	"log"
	"reflect"
	"strings"
	"testing"
	"time"

	"tableflip.dev/thinktank/pkg/item"
	"tableflip.dev/thinktank/pkg/lifecycle"
	"tableflip.dev/thinktank/pkg/ordering"
	"tableflip.dev/thinktank/pkg/query"
	"tableflip.dev/thinktank/pkg/recency"
)

type clock struct {
	t time.Time
}

func (c *clock) Now() time.Time { return c.t }

func (c *clock) Advance(d time.Duration) { c.t = c.t.Add(d) }

func newTestOrganizer(t *testing.T, opts ...Option) (*Organizer, *clock) {
	t.Helper()
	c := &clock{t: time.Date(2025, 10, 11, 15, 0, 0, 0, time.UTC)}
	o := New(append([]Option{WithClock(c.Now)}, opts...)...)
	return o, c
}

func mustCreate(t *testing.T, o *Organizer, k item.Kind, label string) item.Item {
	t.Helper()
	it, err := o.Create(k, label)
	if err != nil {
		t.Fatalf("create %s %q: %v", k, label, err)
	}
	return it
}

func labels(items []item.Item) []string {
	out := make([]string, len(items))
	for i, it := range items {
		out[i] = it.Label
	}
	return out
}

func checkInvariants(t *testing.T, o *Organizer) {
	t.Helper()
	if err := o.Validate(); err != nil {
		t.Fatalf("invariants: %v", err)
	}
}

func TestCreateRequiresLabel(t *testing.T) {
	o, _ := newTestOrganizer(t)
	if _, err := o.Create(item.KindThread, "   "); !errors.Is(err, ErrLabelRequired) {
		t.Fatalf("expected ErrLabelRequired, got %v", err)
	}
	if _, err := o.Create(item.Kind("folder"), "x"); err == nil {
		t.Fatalf("expected error for unknown kind")
	}
}

func TestCreateAssignsOrder(t *testing.T) {
	o, _ := newTestOrganizer(t)
	a := mustCreate(t, o, item.KindSpace, "Alpha")
	b := mustCreate(t, o, item.KindSpace, "Beta")
	if a.Order != 0 || b.Order != 1 {
		t.Fatalf("expected orders 0 and 1, got %d and %d", a.Order, b.Order)
	}
	checkInvariants(t, o)
}

func TestSnapshotIsCopyOnWrite(t *testing.T) {
	o, _ := newTestOrganizer(t)
	a := mustCreate(t, o, item.KindThread, "First")
	before := o.Snapshot()

	if _, err := o.Pin(a.ID); err != nil {
		t.Fatalf("pin: %v", err)
	}
	mustCreate(t, o, item.KindThread, "Second")

	if len(before.Threads) != 1 || before.Threads[0].Pinned {
		t.Fatalf("earlier snapshot changed: %+v", before.Threads)
	}
	if after := o.Snapshot(); len(after.Threads) != 2 || !after.Threads[0].Pinned {
		t.Fatalf("unexpected current snapshot: %+v", after.Threads)
	}
}

func TestLifecycleThroughOrganizer(t *testing.T) {
	o, c := newTestOrganizer(t)
	a := mustCreate(t, o, item.KindThread, "Draft")

	if _, err := o.Archive(a.ID); err != nil {
		t.Fatalf("archive: %v", err)
	}
	if got := o.List(item.KindThread, lifecycle.ViewMain); len(got) != 0 {
		t.Fatalf("expected archived thread hidden from main list")
	}
	if got := o.List(item.KindThread, lifecycle.ViewArchive); len(got) != 1 {
		t.Fatalf("expected thread in archive")
	}

	if err := o.Purge(a.ID); !errors.Is(err, lifecycle.ErrInvalidTransition) {
		t.Fatalf("expected ErrInvalidTransition purging archived item, got %v", err)
	}

	if _, err := o.Delete(a.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	c.Advance(3 * 24 * time.Hour)
	trash := o.Trash()
	if len(trash) != 1 || trash[0].DaysRemaining != 27 || trash[0].PurgeDue {
		t.Fatalf("expected one trash entry with 27 days, got %+v", trash)
	}
	c.Advance(27 * 24 * time.Hour)
	if trash = o.Trash(); !trash[0].PurgeDue || trash[0].DaysRemaining != 0 {
		t.Fatalf("expected entry due for purge, got %+v", trash[0])
	}
	if _, err := o.Find(a.ID); err != nil {
		t.Fatalf("expected due item kept until purged: %v", err)
	}

	if _, err := o.Restore(a.ID); err != nil {
		t.Fatalf("restore: %v", err)
	}
	if got := o.List(item.KindThread, lifecycle.ViewMain); len(got) != 1 {
		t.Fatalf("expected restored thread in main list")
	}
	checkInvariants(t, o)

	if _, err := o.Delete(a.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if err := o.Purge(a.ID); err != nil {
		t.Fatalf("purge: %v", err)
	}
	if _, err := o.Find(a.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected purged item gone, got %v", err)
	}
}

func TestPurgeRenumbersSpaces(t *testing.T) {
	o, _ := newTestOrganizer(t)
	a := mustCreate(t, o, item.KindSpace, "A")
	mustCreate(t, o, item.KindSpace, "B")
	mustCreate(t, o, item.KindSpace, "C")
	if _, err := o.Delete(a.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if err := o.Purge(a.ID); err != nil {
		t.Fatalf("purge: %v", err)
	}
	checkInvariants(t, o)
	if got := labels(o.List(item.KindSpace, lifecycle.ViewMain)); !reflect.DeepEqual(got, []string{"B", "C"}) {
		t.Fatalf("unexpected spaces %v", got)
	}
}

func TestEmptyTrash(t *testing.T) {
	o, _ := newTestOrganizer(t)
	a := mustCreate(t, o, item.KindThread, "a")
	b := mustCreate(t, o, item.KindSpace, "b")
	mustCreate(t, o, item.KindSpace, "c")
	p := mustCreate(t, o, item.KindPrompt, "p")
	for _, id := range []string{a.ID, b.ID, p.ID} {
		if _, err := o.Delete(id); err != nil {
			t.Fatalf("delete: %v", err)
		}
	}
	if n := o.EmptyTrash(); n != 3 {
		t.Fatalf("expected 3 purged, got %d", n)
	}
	if len(o.Trash()) != 0 {
		t.Fatalf("expected empty trash")
	}
	checkInvariants(t, o)
	if n := o.EmptyTrash(); n != 0 {
		t.Fatalf("expected nothing left to purge, got %d", n)
	}
}

func TestMoveUsesVisibleIndices(t *testing.T) {
	o, _ := newTestOrganizer(t)
	mustCreate(t, o, item.KindSpace, "A")
	x := mustCreate(t, o, item.KindSpace, "X")
	mustCreate(t, o, item.KindSpace, "B")
	if _, err := o.Archive(x.ID); err != nil {
		t.Fatalf("archive: %v", err)
	}

	if err := o.MoveSpace(0, 1); err != nil {
		t.Fatalf("move: %v", err)
	}
	if got := labels(o.List(item.KindSpace, lifecycle.ViewMain)); !reflect.DeepEqual(got, []string{"B", "A"}) {
		t.Fatalf("expected [B A], got %v", got)
	}
	checkInvariants(t, o)

	if err := o.MoveSpace(0, 2); !errors.Is(err, ordering.ErrIndexOutOfRange) {
		t.Fatalf("expected ErrIndexOutOfRange, got %v", err)
	}
	if err := o.Move(item.KindThread, 0, 0); !errors.Is(err, ErrNotReorderable) {
		t.Fatalf("expected ErrNotReorderable, got %v", err)
	}

	// A restored space reappears where it sits in the collection.
	if _, err := o.Restore(x.ID); err != nil {
		t.Fatalf("restore: %v", err)
	}
	if got := labels(o.List(item.KindSpace, lifecycle.ViewMain)); !reflect.DeepEqual(got, []string{"X", "B", "A"}) {
		t.Fatalf("expected [X B A], got %v", got)
	}
}

func TestPinDoesNotChangeOrder(t *testing.T) {
	o, _ := newTestOrganizer(t)
	mustCreate(t, o, item.KindSpace, "A")
	b := mustCreate(t, o, item.KindSpace, "B")
	mustCreate(t, o, item.KindSpace, "C")

	if _, err := o.Pin(b.ID); err != nil {
		t.Fatalf("pin: %v", err)
	}
	if got := o.Pinned(); len(got) != 1 || got[0].ID != b.ID {
		t.Fatalf("expected B pinned, got %v", labels(got))
	}
	if _, err := o.Unpin(b.ID); err != nil {
		t.Fatalf("unpin: %v", err)
	}
	found, _ := o.Find(b.ID)
	if found.Order != 1 {
		t.Fatalf("expected B to keep order 1, got %d", found.Order)
	}
}

func TestDragReordersSpaces(t *testing.T) {
	o, _ := newTestOrganizer(t)
	a := mustCreate(t, o, item.KindSpace, "A")
	mustCreate(t, o, item.KindSpace, "B")
	mustCreate(t, o, item.KindSpace, "C")

	d := o.Drag()
	if err := d.BeginDrag(a.ID); err != nil {
		t.Fatalf("begin: %v", err)
	}
	for _, target := range []int{1, 2} {
		if err := d.Hover(target); err != nil {
			t.Fatalf("hover: %v", err)
		}
	}
	d.Drop()
	if got := labels(o.List(item.KindSpace, lifecycle.ViewMain)); !reflect.DeepEqual(got, []string{"B", "C", "A"}) {
		t.Fatalf("expected [B C A], got %v", got)
	}
	checkInvariants(t, o)
}

func TestPinnedAggregatesAcrossKinds(t *testing.T) {
	o, c := newTestOrganizer(t, WithPinLimit(2))
	var threads []item.Item
	for _, l := range []string{"t1", "t2", "t3"} {
		threads = append(threads, mustCreate(t, o, item.KindThread, l))
		c.Advance(time.Minute)
	}
	s := mustCreate(t, o, item.KindSpace, "s1")
	p := mustCreate(t, o, item.KindPrompt, "p1")
	for _, it := range append(threads, s, p) {
		if _, err := o.Pin(it.ID); err != nil {
			t.Fatalf("pin: %v", err)
		}
	}
	if _, err := o.Archive(p.ID); err != nil {
		t.Fatalf("archive: %v", err)
	}

	// Threads display newest first, so t3 and t2 make the cut.
	if got := labels(o.Pinned()); !reflect.DeepEqual(got, []string{"t3", "t2", "s1"}) {
		t.Fatalf("expected [t3 t2 s1], got %v", got)
	}
	if over := o.PinnedOverflow(); over[item.KindThread] != 1 {
		t.Fatalf("expected one thread hidden, got %v", over)
	}
}

func TestQueryAndRecent(t *testing.T) {
	o, c := newTestOrganizer(t)
	mustCreate(t, o, item.KindThread, "Quarterly report")
	c.Advance(-3 * 24 * time.Hour)
	mustCreate(t, o, item.KindThread, "Holiday plans")
	c.Advance(3 * 24 * time.Hour)
	mustCreate(t, o, item.KindThread, "report formatting")

	got := o.Query(item.KindThread, lifecycle.ViewMain, query.Criteria{
		Text: "REPORT",
		Sort: query.Sort{Field: FieldLabel},
	})
	if want := []string{"Quarterly report", "report formatting"}; !reflect.DeepEqual(labels(got), want) {
		t.Fatalf("expected %v, got %v", want, labels(got))
	}

	groups := o.Recent(item.KindThread)
	if len(groups) != 2 || groups[0].Bucket != recency.Today || groups[1].Bucket != recency.LastWeek {
		t.Fatalf("unexpected groups %+v", groups)
	}
	if len(groups[0].Items) != 2 {
		t.Fatalf("expected 2 threads today, got %d", len(groups[0].Items))
	}
}

func TestCategories(t *testing.T) {
	o, _ := newTestOrganizer(t)
	cat, err := o.CreateCategory("Marketing")
	if err != nil {
		t.Fatalf("create category: %v", err)
	}
	p := mustCreate(t, o, item.KindPrompt, "Tagline ideas")
	s := mustCreate(t, o, item.KindSpace, "Launch")

	if _, err := o.AssignCategory(p.ID, cat.ID); err != nil {
		t.Fatalf("assign: %v", err)
	}
	if _, err := o.AssignCategory(s.ID, cat.ID); !errors.Is(err, ErrWrongKind) {
		t.Fatalf("expected ErrWrongKind, got %v", err)
	}
	if _, err := o.AssignCategory(p.ID, "nope"); !errors.Is(err, ErrCategoryNotFound) {
		t.Fatalf("expected ErrCategoryNotFound, got %v", err)
	}

	got := o.Query(item.KindPrompt, lifecycle.ViewMain, query.Criteria{
		Fields: map[string][]string{FieldCategory: {"Marketing"}},
	})
	if len(got) != 1 {
		t.Fatalf("expected prompt filtered by category, got %v", labels(got))
	}
	if got := o.Query(item.KindPrompt, lifecycle.ViewMain, query.Criteria{Text: "market"}); len(got) != 1 {
		t.Fatalf("expected text search to match category name")
	}

	if _, err := o.RenameCategory(cat.ID, "Growth"); err != nil {
		t.Fatalf("rename category: %v", err)
	}
	if err := o.DeleteCategory(cat.ID); err != nil {
		t.Fatalf("delete category: %v", err)
	}
	orphan, _ := o.Find(p.ID)
	if orphan.CategoryID != "" {
		t.Fatalf("expected prompt ungrouped, got %q", orphan.CategoryID)
	}
	if len(o.Categories()) != 0 {
		t.Fatalf("expected no categories left")
	}
	if err := o.DeleteCategory(cat.ID); !errors.Is(err, ErrCategoryNotFound) {
		t.Fatalf("expected ErrCategoryNotFound, got %v", err)
	}
	checkInvariants(t, o)
}

func TestSingleEditSlot(t *testing.T) {
	o, c := newTestOrganizer(t)
	a := mustCreate(t, o, item.KindThread, "a")
	b := mustCreate(t, o, item.KindThread, "b")

	if err := o.CommitEdit("x"); !errors.Is(err, ErrNotEditing) {
		t.Fatalf("expected ErrNotEditing, got %v", err)
	}
	if err := o.BeginEdit(a.ID); err != nil {
		t.Fatalf("begin: %v", err)
	}
	if err := o.BeginEdit(b.ID); err != nil {
		t.Fatalf("begin: %v", err)
	}
	if id, ok := o.Editing(); !ok || id != b.ID {
		t.Fatalf("expected b being edited, got %q", id)
	}
	if err := o.CommitEdit("  "); !errors.Is(err, ErrLabelRequired) {
		t.Fatalf("expected ErrLabelRequired, got %v", err)
	}
	if _, ok := o.Editing(); !ok {
		t.Fatalf("expected edit to stay open after a rejected commit")
	}
	c.Advance(time.Hour)
	if err := o.CommitEdit("renamed"); err != nil {
		t.Fatalf("commit: %v", err)
	}
	got, _ := o.Find(b.ID)
	if got.Label != "renamed" || !got.Updated.Equal(c.Now()) {
		t.Fatalf("unexpected item after commit: %+v", got)
	}
	if _, ok := o.Editing(); ok {
		t.Fatalf("expected edit closed")
	}

	if err := o.BeginEdit(a.ID); err != nil {
		t.Fatalf("begin: %v", err)
	}
	if _, err := o.Delete(a.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, ok := o.Editing(); ok {
		t.Fatalf("expected deleting the edited item to close the edit")
	}
	if err := o.BeginEdit("missing"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestLoggerReceivesMutations(t *testing.T) {
	var buf bytes.Buffer
	o, _ := newTestOrganizer(t, WithLogger(log.New(&buf, "", 0)))
	a := mustCreate(t, o, item.KindThread, "logged")
	if _, err := o.Archive(a.ID); err != nil {
		t.Fatalf("archive: %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, "created thread") || !strings.Contains(out, "archived thread") {
		t.Fatalf("unexpected log output %q", out)
	}
}

func TestWithSessionRenumbersSpaces(t *testing.T) {
	spaces := []item.Item{
		{ID: "b", Kind: item.KindSpace, Label: "B", State: item.StateActive, Order: 7},
		{ID: "a", Kind: item.KindSpace, Label: "A", State: item.StateActive, Order: 2},
	}
	o := New(WithSession(Session{Spaces: spaces}))
	checkInvariants(t, o)
	if got := labels(o.List(item.KindSpace, lifecycle.ViewMain)); !reflect.DeepEqual(got, []string{"A", "B"}) {
		t.Fatalf("expected [A B], got %v", got)
	}
	if spaces[0].Order != 7 {
		t.Fatalf("expected caller's slice untouched")
	}
}
