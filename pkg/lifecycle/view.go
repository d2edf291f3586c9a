package lifecycle

import (
	"fmt"
	"strings"

	"tableflip.dev/thinktank/pkg/item"
)

// View is the list an item shows up in.
type View string

const (
	ViewMain    View = "main"
	ViewArchive View = "archive"
	ViewTrash   View = "trash"
)

// AllViews returns the views in display order.
func AllViews() []View {
	return []View{ViewMain, ViewArchive, ViewTrash}
}

// ParseView converts user input to a View.
func ParseView(raw string) (View, error) {
	v := View(strings.ToLower(strings.TrimSpace(raw)))
	switch v {
	case "", "active":
		return ViewMain, nil
	case "archived":
		return ViewArchive, nil
	case "deleted", "bin":
		return ViewTrash, nil
	}
	for _, candidate := range AllViews() {
		if candidate == v {
			return candidate, nil
		}
	}
	return ViewMain, fmt.Errorf("lifecycle: unknown view %q", raw)
}

// ViewOf maps a state to the one view that shows it.
func ViewOf(s item.State) View {
	switch s {
	case item.StateArchived:
		return ViewArchive
	case item.StateDeleted:
		return ViewTrash
	}
	return ViewMain
}

// Filter keeps the items visible in v, preserving order.
func Filter(items []item.Item, v View) []item.Item {
	out := make([]item.Item, 0, len(items))
	for _, it := range items {
		if ViewOf(it.State) == v {
			out = append(out, it)
		}
	}
	return out
}
