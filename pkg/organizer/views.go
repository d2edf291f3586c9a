package organizer

import (
	"sort"
	"strconv"
	"time"

	"tableflip.dev/thinktank/pkg/item"
	"tableflip.dev/thinktank/pkg/lifecycle"
	"tableflip.dev/thinktank/pkg/pinned"
	"tableflip.dev/thinktank/pkg/query"
	"tableflip.dev/thinktank/pkg/recency"
)

// Fields understood by Query.
const (
	FieldLabel    = "label"
	FieldState    = "state"
	FieldPinned   = "pinned"
	FieldCategory = "category"
	FieldUpdated  = "updated"
	FieldOrder    = "order"
)

// List returns the items of kind k visible in view v, in the collection's
// natural display order: threads newest first, spaces by manual order,
// prompts as created.
func (o *Organizer) List(k item.Kind, v lifecycle.View) []item.Item {
	out := lifecycle.Filter(o.collection(k), v)
	if k == item.KindThread {
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].Updated.After(out[j].Updated.Time)
		})
	}
	return out
}

// Query filters and sorts List(k, v).
func (o *Organizer) Query(k item.Kind, v lifecycle.View, c query.Criteria) []item.Item {
	return query.Run(o.List(k, v), c, o.schema())
}

func (o *Organizer) schema() query.Schema[item.Item] {
	names := make(map[string]string, len(o.session.Categories))
	for _, c := range o.session.Categories {
		names[c.ID] = c.Name
	}
	category := func(it item.Item) string { return names[it.CategoryID] }
	return query.Schema[item.Item]{
		Text: []func(item.Item) string{
			func(it item.Item) string { return it.Label },
			category,
		},
		Fields: map[string]query.Field[item.Item]{
			FieldLabel:    {String: func(it item.Item) string { return it.Label }},
			FieldState:    {String: func(it item.Item) string { return string(it.State) }},
			FieldPinned:   {String: func(it item.Item) string { return strconv.FormatBool(it.Pinned) }},
			FieldCategory: {String: category},
			FieldUpdated:  {Number: func(it item.Item) float64 { return float64(it.Updated.UnixNano()) }},
			FieldOrder:    {Number: func(it item.Item) float64 { return float64(it.Order) }},
		},
		Language: o.lang,
	}
}

// Recent groups the main list of kind k by how recently items were updated.
func (o *Organizer) Recent(k item.Kind) []recency.Group[item.Item] {
	return recency.GroupByRecency(o.List(k, lifecycle.ViewMain), o.now(), func(it item.Item) time.Time {
		return it.Updated.Time
	})
}

func (o *Organizer) pinnedSources() pinned.Collections {
	return pinned.Collections{
		Threads: o.List(item.KindThread, lifecycle.ViewMain),
		Spaces:  o.List(item.KindSpace, lifecycle.ViewMain),
		Prompts: o.List(item.KindPrompt, lifecycle.ViewMain),
	}
}

// Pinned returns the combined pinned list.
func (o *Organizer) Pinned() []item.Item {
	return pinned.Aggregate(o.pinnedSources(), o.pinLimit)
}

// PinnedOverflow reports pinned items hidden by the per-collection limit.
func (o *Organizer) PinnedOverflow() map[item.Kind]int {
	return pinned.Overflow(o.pinnedSources(), o.pinLimit)
}

// TrashEntry is a deleted item with its retention countdown. PurgeDue is set
// once the retention window has run out; purging is still up to the caller.
type TrashEntry struct {
	Item          item.Item `json:"item"`
	DaysRemaining int       `json:"daysRemaining"`
	PurgeDue      bool      `json:"purgeDue"`
}

// Trash lists deleted items of every kind, most recently deleted first.
func (o *Organizer) Trash() []TrashEntry {
	now := o.now()
	var out []TrashEntry
	for _, k := range item.AllKinds() {
		for _, it := range o.List(k, lifecycle.ViewTrash) {
			out = append(out, TrashEntry{
				Item:          it,
				DaysRemaining: o.policy.DaysRemaining(it, now),
				PurgeDue:      o.policy.Expired(it, now),
			})
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Item.DeletedAt.After(out[j].Item.DeletedAt.Time)
	})
	return out
}
