// Package glyph holds the symbols used to draw items in the terminal.
package glyph

import (
	"tableflip.dev/thinktank/pkg/item"
)

type Glyph struct {
	Key     string
	Symbol  string
	Meaning string
	// Marker glyphs decorate a row rather than name its kind.
	Marker bool
}

var (
	Thread   = Glyph{Key: "t", Symbol: "◆", Meaning: "thread"}
	Space    = Glyph{Key: "s", Symbol: "▣", Meaning: "space"}
	Prompt   = Glyph{Key: "p", Symbol: "›", Meaning: "prompt"}
	Pin      = Glyph{Key: "*", Symbol: "✷", Meaning: "pinned", Marker: true}
	Archived = Glyph{Key: "a", Symbol: "▤", Meaning: "archived", Marker: true}
	Deleted  = Glyph{Key: "d", Symbol: "✘", Meaning: "in trash", Marker: true}
	Blank    = Glyph{Key: " ", Symbol: " ", Meaning: "none", Marker: true}
)

// Legend lists every glyph, kinds first.
func Legend() []Glyph {
	return []Glyph{Thread, Space, Prompt, Pin, Archived, Deleted}
}

func (g Glyph) String() string {
	return g.Symbol
}

// ForKind returns the glyph naming k.
func ForKind(k item.Kind) Glyph {
	switch k {
	case item.KindThread:
		return Thread
	case item.KindSpace:
		return Space
	case item.KindPrompt:
		return Prompt
	}
	return Blank
}

// ForState returns the marker for a lifecycle state. Active items have none.
func ForState(s item.State) Glyph {
	switch s {
	case item.StateArchived:
		return Archived
	case item.StateDeleted:
		return Deleted
	}
	return Blank
}

// Marker is the pin glyph when it is pinned, else the state marker.
func Marker(it item.Item) Glyph {
	if it.Pinned && it.State == item.StateActive {
		return Pin
	}
	return ForState(it.State)
}
