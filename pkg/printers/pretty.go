package printers

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/fatih/color"
	"github.com/gosuri/uitable"
	"github.com/muesli/reflow/truncate"

	"tableflip.dev/thinktank/pkg/glyph"
	"tableflip.dev/thinktank/pkg/item"
	"tableflip.dev/thinktank/pkg/organizer"
	"tableflip.dev/thinktank/pkg/recency"
	"tableflip.dev/thinktank/pkg/timeutil"
)

// DefaultLabelWidth bounds labels in tables.
const DefaultLabelWidth = 48

type PrettyPrint struct {
	ShowID bool
	// Out defaults to color.Output.
	Out io.Writer
	// LabelWidth truncates labels; zero means DefaultLabelWidth.
	LabelWidth int
	// Now anchors relative times; zero means time.Now.
	Now time.Time
}

func (pp *PrettyPrint) out() io.Writer {
	if pp.Out == nil {
		return color.Output
	}
	return pp.Out
}

func (pp *PrettyPrint) now() time.Time {
	if pp.Now.IsZero() {
		return time.Now()
	}
	return pp.Now
}

func (pp *PrettyPrint) label(s string) string {
	w := pp.LabelWidth
	if w <= 0 {
		w = DefaultLabelWidth
	}
	return truncate.StringWithTail(s, uint(w), "…")
}

func (pp *PrettyPrint) NewLine() {
	_, _ = fmt.Fprintln(pp.out(), "")
}

func (pp *PrettyPrint) Title(title string) {
	t := color.New(color.Bold, color.Underline)
	_, _ = t.Fprintln(pp.out(), title)
}

func (pp *PrettyPrint) TitleWithCount(title string, count int) {
	t := color.New(color.Bold, color.Underline)
	c := color.New(color.Faint)

	_, _ = t.Fprint(pp.out(), title)
	_, _ = c.Fprintf(pp.out(), " - %d", count)

	switch count {
	case 1:
		_, _ = c.Fprintln(pp.out(), " item")
	default:
		_, _ = c.Fprintln(pp.out(), " items")
	}
}

func (pp *PrettyPrint) none() {
	f := color.New(color.Faint, color.Italic)
	_, _ = f.Fprint(pp.out(), " none\n\n")
}

func (pp *PrettyPrint) row(tbl *uitable.Table, it item.Item, extra string) {
	y := color.New(color.FgHiYellow, color.Italic, color.Faint)
	f := color.New(color.Faint)

	label := pp.label(it.Label)
	switch it.State {
	case item.StateArchived:
		label = f.Sprint(label)
	case item.StateDeleted:
		label = color.New(color.CrossedOut).Sprint(label)
	}
	cells := []interface{}{}
	if pp.ShowID {
		cells = append(cells, y.Sprint(it.ID))
	}
	cells = append(cells, glyph.Marker(it).String(), glyph.ForKind(it.Kind).String(), label, f.Sprint(extra))
	tbl.AddRow(cells...)
}

func (pp *PrettyPrint) table() *uitable.Table {
	tbl := uitable.New()
	tbl.Separator = " "
	return tbl
}

// Items prints one row per item with its relative update time.
func (pp *PrettyPrint) Items(items ...item.Item) {
	if len(items) == 0 {
		pp.none()
		return
	}
	now := pp.now()
	tbl := pp.table()
	for _, it := range items {
		pp.row(tbl, it, humanize.RelTime(it.Updated.Time, now, "ago", "from now"))
	}
	_, _ = fmt.Fprintln(pp.out(), tbl)
	pp.NewLine()
}

// Groups prints recency groups under their headings.
func (pp *PrettyPrint) Groups(groups []recency.Group[item.Item]) {
	if len(groups) == 0 {
		pp.none()
		return
	}
	for _, g := range groups {
		pp.TitleWithCount(g.Bucket.String(), len(g.Items))
		pp.Items(g.Items...)
	}
}

// Pinned prints the pinned list and a note per collection that hit the limit.
func (pp *PrettyPrint) Pinned(items []item.Item, overflow map[item.Kind]int) {
	pp.TitleWithCount("Pinned", len(items))
	pp.Items(items...)
	f := color.New(color.Faint, color.Italic)
	for _, k := range item.AllKinds() {
		if n := overflow[k]; n > 0 {
			_, _ = f.Fprintf(pp.out(), " %d more pinned %s not shown\n", n, k.Plural())
		}
	}
}

// Trash prints deleted items with their retention countdown.
func (pp *PrettyPrint) Trash(entries []organizer.TrashEntry) {
	pp.TitleWithCount("Trash", len(entries))
	if len(entries) == 0 {
		pp.none()
		return
	}
	tbl := pp.table()
	for _, e := range entries {
		if e.PurgeDue {
			pp.row(tbl, e.Item, "purge due")
			continue
		}
		pp.row(tbl, e.Item, timeutil.Countdown(e.DaysRemaining))
	}
	_, _ = fmt.Fprintln(pp.out(), tbl)
	pp.NewLine()
}

// Categories prints prompt categories with how many prompts each holds.
func (pp *PrettyPrint) Categories(cats []item.Category, prompts []item.Item) {
	pp.TitleWithCount("Categories", len(cats))
	if len(cats) == 0 {
		pp.none()
		return
	}
	count := make(map[string]int, len(cats))
	for _, p := range prompts {
		count[p.CategoryID]++
	}
	y := color.New(color.FgHiYellow, color.Italic, color.Faint)
	tbl := pp.table()
	for _, c := range cats {
		cells := []interface{}{}
		if pp.ShowID {
			cells = append(cells, y.Sprint(c.ID))
		}
		cells = append(cells, pp.label(c.Name), color.New(color.Faint).Sprint(count[c.ID]))
		tbl.AddRow(cells...)
	}
	_, _ = fmt.Fprintln(pp.out(), tbl)
	pp.NewLine()
}

// Done confirms a mutation in one line.
func (pp *PrettyPrint) Done(verb string, it item.Item) {
	c := color.New(color.Faint)
	id := ""
	if pp.ShowID {
		id = " " + it.ID
	}
	_, _ = c.Fprintf(pp.out(), "%s %s%s %s\n", verb, it.Kind, id, strings.TrimSpace(pp.label(it.Label)))
}
