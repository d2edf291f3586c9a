package ui

import (
	"github.com/charmbracelet/lipgloss"
	colorful "github.com/lucasb-eyer/go-colorful"
)

const (
	tabFrom = "#7D56F4"
	tabTo   = "#04B575"
)

// Theme centralizes Lip Gloss styles for the organizer UI.
type Theme struct {
	Tabs     []lipgloss.Style
	Tab      lipgloss.Style
	Row      lipgloss.Style
	Cursor   lipgloss.Style
	Grabbed  lipgloss.Style
	Faint    lipgloss.Style
	Heading  lipgloss.Style
	Status   lipgloss.Style
	Help     lipgloss.Style
	ErrorMsg lipgloss.Style
}

// Default returns the built-in theme with one accent per tab, blended from
// tabFrom to tabTo.
func Default(tabs int) Theme {
	from, _ := colorful.Hex(tabFrom)
	to, _ := colorful.Hex(tabTo)

	accents := make([]lipgloss.Style, tabs)
	for i := range accents {
		t := 0.0
		if tabs > 1 {
			t = float64(i) / float64(tabs-1)
		}
		accents[i] = lipgloss.NewStyle().
			Bold(true).
			Padding(0, 1).
			Foreground(lipgloss.Color("#FFFDF5")).
			Background(lipgloss.Color(from.BlendLuv(to, t).Hex()))
	}

	return Theme{
		Tabs:     accents,
		Tab:      lipgloss.NewStyle().Padding(0, 1).Foreground(lipgloss.Color("245")),
		Row:      lipgloss.NewStyle(),
		Cursor:   lipgloss.NewStyle().Foreground(lipgloss.Color("212")).Bold(true),
		Grabbed:  lipgloss.NewStyle().Foreground(lipgloss.Color("212")).Reverse(true),
		Faint:    lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		Heading:  lipgloss.NewStyle().Foreground(lipgloss.Color("244")).Underline(true),
		Status:   lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
		Help:     lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		ErrorMsg: lipgloss.NewStyle().Foreground(lipgloss.Color("203")),
	}
}
