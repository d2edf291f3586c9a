package organizer

import (
	"fmt"
	"strings"

	"tableflip.dev/thinktank/pkg/item"
	"tableflip.dev/thinktank/pkg/lifecycle"
	"tableflip.dev/thinktank/pkg/ordering"
)

// Create adds an active item at the end of its collection.
func (o *Organizer) Create(k item.Kind, label string) (item.Item, error) {
	if strings.TrimSpace(label) == "" {
		return item.Item{}, ErrLabelRequired
	}
	if _, err := item.ParseKind(string(k)); err != nil {
		return item.Item{}, err
	}
	items := o.collection(k)
	it := item.New(k, label, o.now(), len(items))
	out := make([]item.Item, 0, len(items)+1)
	out = append(out, items...)
	out = append(out, it)
	o.setCollection(k, out)
	o.log.Printf("created %s %s %q", k, it.ID, it.Label)
	return it, nil
}

// Rename sets a new label and bumps the updated time.
func (o *Organizer) Rename(id, label string) (item.Item, error) {
	label = strings.TrimSpace(label)
	if label == "" {
		return item.Item{}, ErrLabelRequired
	}
	it, err := o.update(id, func(it item.Item) (item.Item, error) {
		it.Label = label
		it.Updated = item.At(o.now())
		return it, nil
	})
	if err == nil {
		o.log.Printf("renamed %s %s %q", it.Kind, id, label)
	}
	return it, err
}

// Pin marks an item pinned. Manual order is not touched.
func (o *Organizer) Pin(id string) (item.Item, error) {
	return o.setPinned(id, func(bool) bool { return true })
}

// Unpin clears the pin.
func (o *Organizer) Unpin(id string) (item.Item, error) {
	return o.setPinned(id, func(bool) bool { return false })
}

// TogglePin flips the pin.
func (o *Organizer) TogglePin(id string) (item.Item, error) {
	return o.setPinned(id, func(p bool) bool { return !p })
}

func (o *Organizer) setPinned(id string, fn func(bool) bool) (item.Item, error) {
	it, err := o.update(id, func(it item.Item) (item.Item, error) {
		it.Pinned = fn(it.Pinned)
		return it, nil
	})
	if err == nil {
		o.log.Printf("pinned=%t %s %s", it.Pinned, it.Kind, id)
	}
	return it, err
}

// Archive moves an active item to the archive.
func (o *Organizer) Archive(id string) (item.Item, error) {
	it, err := o.update(id, lifecycle.Archive)
	if err != nil {
		return it, err
	}
	o.releaseEdit(id)
	o.log.Printf("archived %s %s", it.Kind, id)
	return it, nil
}

// Delete moves an item to the trash, restarting its retention window.
func (o *Organizer) Delete(id string) (item.Item, error) {
	it, err := o.update(id, func(it item.Item) (item.Item, error) {
		return lifecycle.Delete(it, o.now()), nil
	})
	if err != nil {
		return it, err
	}
	o.releaseEdit(id)
	o.log.Printf("deleted %s %s", it.Kind, id)
	return it, nil
}

// Restore brings an archived or deleted item back to the main list.
func (o *Organizer) Restore(id string) (item.Item, error) {
	it, err := o.update(id, func(it item.Item) (item.Item, error) {
		return lifecycle.Restore(it), nil
	})
	if err == nil {
		o.log.Printf("restored %s %s", it.Kind, id)
	}
	return it, err
}

// Purge permanently removes a deleted item.
func (o *Organizer) Purge(id string) error {
	k, _, err := o.locate(id)
	if err != nil {
		return err
	}
	out, err := lifecycle.Purge(o.collection(k), id)
	if err != nil {
		return fmt.Errorf("organizer: purge: %w", err)
	}
	if k.Reorderable() {
		ordering.Renumber(out)
	}
	o.setCollection(k, out)
	o.releaseEdit(id)
	o.log.Printf("purged %s %s", k, id)
	return nil
}

// EmptyTrash purges every deleted item and returns how many were removed.
func (o *Organizer) EmptyTrash() int {
	removed := 0
	for _, k := range item.AllKinds() {
		items := o.collection(k)
		out := make([]item.Item, 0, len(items))
		for _, it := range items {
			if lifecycle.CanPurge(it) != nil {
				out = append(out, it)
			}
		}
		if len(out) == len(items) {
			continue
		}
		if k.Reorderable() {
			ordering.Renumber(out)
		}
		removed += len(items) - len(out)
		o.setCollection(k, out)
	}
	if o.editing != "" {
		if _, _, err := o.locate(o.editing); err != nil {
			o.editing = ""
		}
	}
	if removed > 0 {
		o.log.Printf("emptied trash, %d purged", removed)
	}
	return removed
}
