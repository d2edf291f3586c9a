package organizer

import (
	"fmt"

	"tableflip.dev/thinktank/pkg/item"
	"tableflip.dev/thinktank/pkg/lifecycle"
	"tableflip.dev/thinktank/pkg/ordering"
)

// Move relocates an item of a reorderable collection. from and to index the
// main list as displayed; hidden archived and deleted items keep their
// place relative to their neighbours.
func (o *Organizer) Move(k item.Kind, from, to int) error {
	if !k.Reorderable() {
		return fmt.Errorf("%w: %s", ErrNotReorderable, k.Plural())
	}
	items := o.collection(k)
	visible := make([]int, 0, len(items))
	for i, it := range items {
		if lifecycle.ViewOf(it.State) == lifecycle.ViewMain {
			visible = append(visible, i)
		}
	}
	if from < 0 || from >= len(visible) || to < 0 || to >= len(visible) {
		return fmt.Errorf("organizer: move %d to %d of %d: %w", from, to, len(visible), ordering.ErrIndexOutOfRange)
	}
	out, err := ordering.Move(items, visible[from], visible[to])
	if err != nil {
		return err
	}
	o.setCollection(k, out)
	o.log.Printf("moved %s %d -> %d", k, from, to)
	return nil
}

// MoveSpace is Move for spaces.
func (o *Organizer) MoveSpace(from, to int) error {
	return o.Move(item.KindSpace, from, to)
}

// Drag starts a drag gesture over the main list of spaces.
func (o *Organizer) Drag() *ordering.Drag {
	return ordering.NewDrag(viewMover{o: o, kind: item.KindSpace})
}

type viewMover struct {
	o    *Organizer
	kind item.Kind
}

func (m viewMover) IndexOf(id string) (int, bool) {
	for i, it := range m.o.List(m.kind, lifecycle.ViewMain) {
		if it.ID == id {
			return i, true
		}
	}
	return 0, false
}

func (m viewMover) Move(from, to int) error {
	return m.o.Move(m.kind, from, to)
}
