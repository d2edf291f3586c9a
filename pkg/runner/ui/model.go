package ui

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"tableflip.dev/thinktank/pkg/item"
	"tableflip.dev/thinktank/pkg/lifecycle"
	"tableflip.dev/thinktank/pkg/ordering"
	"tableflip.dev/thinktank/pkg/organizer"
	"tableflip.dev/thinktank/pkg/query"
)

type tab int

const (
	tabThreads tab = iota
	tabSpaces
	tabPrompts
	tabPinned
	tabArchive
	tabTrash
	tabCount
)

var tabNames = [tabCount]string{"Threads", "Spaces", "Prompts", "Pinned", "Archive", "Trash"}

func (t tab) String() string { return tabNames[t] }

// kind is the collection a tab edits, if any.
func (t tab) kind() (item.Kind, bool) {
	switch t {
	case tabThreads:
		return item.KindThread, true
	case tabSpaces:
		return item.KindSpace, true
	case tabPrompts:
		return item.KindPrompt, true
	}
	return "", false
}

type mode int

const (
	modeNormal mode = iota
	modeSearch
	modeNew
	modeEdit
)

// row is one line of the current tab.
type row struct {
	item item.Item
	// daysLeft and due are set for trash rows.
	daysLeft int
	due      bool
}

// Model is the Bubble Tea model over one organizer session.
type Model struct {
	org    *organizer.Organizer
	theme  Theme
	tab    tab
	cursor int
	mode   mode
	input  textinput.Model
	list   list.Model
	search string
	drag   *ordering.Drag
	status string
	err    error

	width int
}

// New returns a model over org.
func New(org *organizer.Organizer) Model {
	ti := textinput.New()
	ti.Prompt = ""
	ti.CharLimit = 256
	return Model{
		org:    org,
		theme:  Default(int(tabCount)),
		input:  ti,
		list:   newList(80, 24),
		status: "tab switch, j/k move, n new, e edit, p pin, a archive, d delete, g grab, / search, q quit",
		width:  80,
	}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) rows() []row {
	var out []row
	switch m.tab {
	case tabThreads, tabSpaces, tabPrompts:
		k, _ := m.tab.kind()
		for _, it := range m.org.Query(k, lifecycle.ViewMain, query.Criteria{Text: m.search}) {
			out = append(out, row{item: it})
		}
	case tabPinned:
		for _, it := range m.org.Pinned() {
			out = append(out, row{item: it})
		}
	case tabArchive:
		for _, k := range item.AllKinds() {
			for _, it := range m.org.List(k, lifecycle.ViewArchive) {
				out = append(out, row{item: it})
			}
		}
	case tabTrash:
		for _, e := range m.org.Trash() {
			out = append(out, row{item: e.Item, daysLeft: e.DaysRemaining, due: e.PurgeDue})
		}
	}
	return out
}

func (m Model) selected() (item.Item, bool) {
	rows := m.rows()
	if m.cursor < 0 || m.cursor >= len(rows) {
		return item.Item{}, false
	}
	return rows[m.cursor].item, true
}

func (m *Model) clamp() {
	n := len(m.rows())
	if m.cursor >= n {
		m.cursor = n - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

func (m *Model) report(err error) {
	m.err = err
	if err != nil {
		m.status = ""
	}
}

func (m *Model) say(format string, args ...interface{}) {
	m.err = nil
	m.status = fmt.Sprintf(format, args...)
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.list.SetSize(msg.Width, listHeight(msg.Height))
		return m, nil
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return m, tea.Quit
		}
		if m.mode != modeNormal {
			return m.updateInput(msg)
		}
		return m.updateNormal(msg)
	}
	return m, nil
}

func (m Model) updateNormal(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.drag != nil {
		return m.updateGrab(msg)
	}
	switch msg.String() {
	case "q":
		return m, tea.Quit
	case "tab", "right", "l":
		m.switchTab((m.tab + 1) % tabCount)
	case "shift+tab", "left", "h":
		m.switchTab((m.tab + tabCount - 1) % tabCount)
	case "1", "2", "3", "4", "5", "6":
		m.switchTab(tab(msg.Runes[0] - '1'))
	case "j", "down":
		m.cursor++
		m.clamp()
	case "k", "up":
		m.cursor--
		m.clamp()
	case "esc":
		m.search = ""
		m.clamp()
	case "/":
		if _, ok := m.tab.kind(); !ok {
			m.report(errors.New("search works on threads, spaces and prompts"))
			break
		}
		return m.startInput(modeSearch, m.search)
	case "n":
		if _, ok := m.tab.kind(); !ok {
			m.report(errors.New("switch to threads, spaces or prompts to create"))
			break
		}
		return m.startInput(modeNew, "")
	case "e", "enter":
		it, ok := m.selected()
		if !ok {
			break
		}
		if err := m.org.BeginEdit(it.ID); err != nil {
			m.report(err)
			break
		}
		return m.startInput(modeEdit, it.Label)
	case "p":
		m.apply("toggled pin on", m.org.TogglePin)
	case "a":
		m.apply("archived", m.org.Archive)
	case "d":
		m.apply("deleted", m.org.Delete)
	case "r":
		m.apply("restored", m.org.Restore)
	case "x":
		if it, ok := m.selected(); ok {
			if err := m.org.Purge(it.ID); err != nil {
				m.report(err)
			} else {
				m.say("purged %s", it.Label)
			}
			m.clamp()
		}
	case "X":
		m.say("emptied trash, %d purged", m.org.EmptyTrash())
		m.clamp()
	case "g":
		m.grab()
	}
	return m, nil
}

func (m *Model) switchTab(t tab) {
	m.tab = t
	m.cursor = 0
	m.search = ""
	m.err = nil
}

func (m *Model) apply(verb string, fn func(string) (item.Item, error)) {
	it, ok := m.selected()
	if !ok {
		return
	}
	if _, err := fn(it.ID); err != nil {
		m.report(err)
		return
	}
	m.say("%s %s", verb, it.Label)
	m.clamp()
}

func (m *Model) grab() {
	if m.tab != tabSpaces {
		m.report(fmt.Errorf("%w: only spaces can be reordered", organizer.ErrNotReorderable))
		return
	}
	if m.search != "" {
		m.report(errors.New("clear the search before reordering"))
		return
	}
	it, ok := m.selected()
	if !ok {
		return
	}
	d := m.org.Drag()
	if err := d.BeginDrag(it.ID); err != nil {
		m.report(err)
		return
	}
	m.drag = d
	m.say("moving %s, j/k to move, g or enter to drop, esc to stop", it.Label)
}

func (m Model) updateGrab(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "j", "down":
		m.hover(m.cursor + 1)
	case "k", "up":
		m.hover(m.cursor - 1)
	case "g", "enter", "esc":
		m.drag.Drop()
		m.drag = nil
		m.say("dropped")
	case "q":
		m.drag.Drop()
		m.drag = nil
		return m, tea.Quit
	}
	return m, nil
}

func (m *Model) hover(target int) {
	if target < 0 || target >= len(m.rows()) {
		return
	}
	if err := m.drag.Hover(target); err != nil {
		m.report(err)
		return
	}
	m.cursor = target
}

func (m Model) startInput(md mode, value string) (tea.Model, tea.Cmd) {
	m.mode = md
	m.input.SetValue(value)
	m.input.CursorEnd()
	switch md {
	case modeSearch:
		m.input.Placeholder = "search"
	case modeNew:
		m.input.Placeholder = "label"
	case modeEdit:
		m.input.Placeholder = "new label"
	}
	cmd := m.input.Focus()
	return m, cmd
}

func (m Model) endInput() Model {
	m.mode = modeNormal
	m.input.Blur()
	m.input.SetValue("")
	return m
}

func (m Model) updateInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		if m.mode == modeEdit {
			m.org.CancelEdit()
		}
		if m.mode == modeSearch {
			m.search = ""
		}
		m = m.endInput()
		m.clamp()
		return m, nil
	case tea.KeyEnter:
		return m.submit()
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	if m.mode == modeSearch {
		m.search = m.input.Value()
		m.cursor = 0
	}
	return m, cmd
}

func (m Model) submit() (tea.Model, tea.Cmd) {
	value := m.input.Value()
	switch m.mode {
	case modeSearch:
		m.search = value
		m = m.endInput()
	case modeNew:
		k, _ := m.tab.kind()
		it, err := m.org.Create(k, value)
		if err != nil {
			m.report(err)
			return m, nil
		}
		m = m.endInput()
		m.say("created %s", it.Label)
		for i, r := range m.rows() {
			if r.item.ID == it.ID {
				m.cursor = i
			}
		}
	case modeEdit:
		if err := m.org.CommitEdit(value); err != nil {
			m.report(err)
			return m, nil
		}
		m = m.endInput()
		m.say("renamed to %s", value)
	}
	m.clamp()
	return m, nil
}
