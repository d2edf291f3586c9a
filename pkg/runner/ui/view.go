package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"tableflip.dev/thinktank/pkg/item"
)

func (m Model) View() string {
	var b strings.Builder
	b.WriteString(m.tabBar())
	b.WriteString("\n\n")
	b.WriteString(m.body())
	b.WriteString("\n")
	b.WriteString(m.footer())
	return b.String()
}

func (m Model) tabBar() string {
	cells := make([]string, 0, tabCount)
	for t := tab(0); t < tabCount; t++ {
		name := t.String()
		if t == m.tab {
			cells = append(cells, m.theme.Tabs[t].Render(name))
		} else {
			cells = append(cells, m.theme.Tab.Render(name))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, cells...)
}

func (m Model) body() string {
	rows := m.rows()
	if len(rows) == 0 {
		return m.theme.Faint.Render("  nothing here") + "\n"
	}

	var b strings.Builder
	b.WriteString(m.page(rows))
	b.WriteString("\n")
	if m.tab == tabPinned {
		over := m.org.PinnedOverflow()
		for _, k := range item.AllKinds() {
			if n := over[k]; n > 0 {
				b.WriteString(m.theme.Faint.Render(fmt.Sprintf("  %d more pinned %s", n, k.Plural())))
				b.WriteString("\n")
			}
		}
	}
	return b.String()
}

func (m Model) footer() string {
	var b strings.Builder
	switch m.mode {
	case modeSearch:
		b.WriteString("/" + m.input.View())
	case modeNew:
		k, _ := m.tab.kind()
		b.WriteString(fmt.Sprintf("new %s: %s", k, m.input.View()))
	case modeEdit:
		b.WriteString("rename: " + m.input.View())
	default:
		if m.search != "" {
			b.WriteString(m.theme.Faint.Render(fmt.Sprintf("search: %q (esc clears)", m.search)))
			b.WriteString("\n")
		}
		if m.err != nil {
			b.WriteString(m.theme.ErrorMsg.Render("error: " + m.err.Error()))
		} else {
			b.WriteString(m.theme.Status.Render(m.status))
		}
	}
	return b.String()
}
