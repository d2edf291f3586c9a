package ordering

import (
	"errors"
	"fmt"
)

var ErrNotDragging = errors.New("ordering: no drag in progress")

// Mover is a reorderable list as seen by a drag gesture.
type Mover interface {
	// IndexOf returns the current index of id.
	IndexOf(id string) (int, bool)
	// Move relocates the item at from to to.
	Move(from, to int) error
}

// Drag turns a pointer gesture into a series of Move calls. Each hover
// applies one move immediately; there is no pending state to commit.
type Drag struct {
	list   Mover
	id     string
	index  int
	active bool
}

// NewDrag returns a Drag over list.
func NewDrag(list Mover) *Drag {
	return &Drag{list: list}
}

// BeginDrag picks up the item id.
func (d *Drag) BeginDrag(id string) error {
	idx, ok := d.list.IndexOf(id)
	if !ok {
		return fmt.Errorf("ordering: drag %q: not in list", id)
	}
	d.id = id
	d.index = idx
	d.active = true
	return nil
}

// Hover moves the dragged item to target. Hovering over the current
// position is a no-op, so repeated events are harmless.
func (d *Drag) Hover(target int) error {
	if !d.active {
		return ErrNotDragging
	}
	if idx, ok := d.list.IndexOf(d.id); ok {
		d.index = idx
	}
	if target == d.index {
		return nil
	}
	if err := d.list.Move(d.index, target); err != nil {
		return err
	}
	d.index = target
	return nil
}

// Drop releases the item where it is.
func (d *Drag) Drop() {
	d.id = ""
	d.index = 0
	d.active = false
}

// Dragging returns the id being dragged, if any.
func (d *Drag) Dragging() (string, bool) {
	return d.id, d.active
}
