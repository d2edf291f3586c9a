// Package ui is the full-screen terminal organizer.
package ui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"tableflip.dev/thinktank/pkg/organizer"
)

type UI struct {
	Organizer *organizer.Organizer
	NoColor   bool
}

// Do runs the UI until the user quits or ctx is done.
func (u *UI) Do(ctx context.Context) error {
	if u.NoColor {
		lipgloss.SetColorProfile(termenv.Ascii)
	}
	if u.Organizer == nil {
		u.Organizer = organizer.New()
	}
	p := tea.NewProgram(New(u.Organizer), tea.WithAltScreen(), tea.WithContext(ctx))
	_, err := p.Run()
	return err
}
