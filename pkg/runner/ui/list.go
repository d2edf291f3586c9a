package ui

import (
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/muesli/reflow/truncate"

	"tableflip.dev/thinktank/pkg/glyph"
	"tableflip.dev/thinktank/pkg/recency"
	"tableflip.dev/thinktank/pkg/timeutil"
)

// chrome is the number of lines around the list: tab bar, gap, footer.
const chrome = 5

func (r row) FilterValue() string { return r.item.Label }

// heading separates recency buckets on the threads tab. It is never selected.
type heading struct {
	bucket recency.Bucket
}

func (h heading) FilterValue() string { return "" }

// rowDelegate renders one list line per row.
type rowDelegate struct {
	theme    Theme
	trash    bool
	grabbing bool
	width    int
}

func (d rowDelegate) Height() int { return 1 }
func (d rowDelegate) Spacing() int { return 0 }
func (d rowDelegate) Update(tea.Msg, *list.Model) tea.Cmd { return nil }

func (d rowDelegate) Render(w io.Writer, m list.Model, index int, li list.Item) {
	switch li := li.(type) {
	case heading:
		_, _ = fmt.Fprint(w, d.theme.Heading.Render(li.bucket.String()))
	case row:
		_, _ = fmt.Fprint(w, d.line(li, index == m.Index()))
	}
}

func (d rowDelegate) line(r row, selected bool) string {
	width := d.width - 8
	if d.trash {
		width -= 16
	}
	if width < 8 {
		width = 8
	}
	label := truncate.StringWithTail(r.item.Label, uint(width), "…")
	text := fmt.Sprintf("%s %s %s", glyph.Marker(r.item), glyph.ForKind(r.item.Kind), label)
	switch {
	case d.trash && r.due:
		text += "  " + d.theme.ErrorMsg.Render("purge due")
	case d.trash:
		text += "  " + d.theme.Faint.Render(timeutil.Countdown(r.daysLeft))
	}
	switch {
	case selected && d.grabbing:
		return d.theme.Grabbed.Render("≡ " + text)
	case selected:
		return d.theme.Cursor.Render("› " + text)
	}
	return d.theme.Row.Render("  " + text)
}

func newList(width, height int) list.Model {
	l := list.New(nil, rowDelegate{}, width, listHeight(height))
	l.SetShowTitle(false)
	l.SetShowStatusBar(false)
	l.SetShowHelp(false)
	l.SetFilteringEnabled(false)
	return l
}

func listHeight(height int) int {
	if h := height - chrome; h > 3 {
		return h
	}
	return 3
}

// listItems lays out rows for the list and returns the list index of the
// row under the cursor. Threads get recency headings unless searching.
func (m Model) listItems(rows []row) ([]list.Item, int) {
	items := make([]list.Item, 0, len(rows)+8)
	selected := 0
	headed := m.tab == tabThreads && m.search == ""
	now := m.org.Now()
	last := recency.Bucket(-1)
	for i, r := range rows {
		if headed {
			// Thread rows are newest first, so buckets arrive in order.
			if bk := recency.Classify(r.item.Updated.Time, now); bk != last {
				items = append(items, heading{bucket: bk})
				last = bk
			}
		}
		if i == m.cursor {
			selected = len(items)
		}
		items = append(items, r)
	}
	return items, selected
}

// page renders the window of rows around the cursor.
func (m Model) page(rows []row) string {
	l := m.list
	l.SetDelegate(rowDelegate{
		theme:    m.theme,
		trash:    m.tab == tabTrash,
		grabbing: m.drag != nil,
		width:    m.width,
	})
	items, selected := m.listItems(rows)
	l.SetItems(items)
	l.Select(selected)
	return l.View()
}
