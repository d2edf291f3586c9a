// Package lifecycle moves items between the active, archived and deleted
// states. Archiving and deleting are reversible; only Purge removes an item.
package lifecycle

import (
	"errors"
	"fmt"
	"math"
	"time"

	"tableflip.dev/thinktank/pkg/item"
)

// DefaultRetentionDays is how long a deleted item stays recoverable.
const DefaultRetentionDays = 30

const day = 24 * time.Hour

var (
	ErrInvalidTransition = errors.New("lifecycle: invalid state transition")
	ErrNotFound          = errors.New("lifecycle: item not found")
)

// Archive moves an active item to the archive. Archiving an archived item is
// a no-op; deleted items must be restored first.
func Archive(it item.Item) (item.Item, error) {
	switch it.State {
	case item.StateActive:
		it.State = item.StateArchived
		return it, nil
	case item.StateArchived:
		return it, nil
	}
	return it, fmt.Errorf("%w: archive %s from %s", ErrInvalidTransition, it.ID, it.State)
}

// Delete moves an item to the trash and stamps DeletedAt. Deleting again
// refreshes the stamp, restarting the retention countdown.
func Delete(it item.Item, now time.Time) item.Item {
	ts := item.At(now)
	it.State = item.StateDeleted
	it.DeletedAt = &ts
	return it
}

// Restore returns an archived or deleted item to the active state.
func Restore(it item.Item) item.Item {
	it.State = item.StateActive
	it.DeletedAt = nil
	return it
}

// CanPurge reports whether the item may be removed permanently.
func CanPurge(it item.Item) error {
	if it.State != item.StateDeleted {
		return fmt.Errorf("%w: purge %s from %s", ErrInvalidTransition, it.ID, it.State)
	}
	return nil
}

// Purge returns items without the deleted item id.
func Purge(items []item.Item, id string) ([]item.Item, error) {
	idx := -1
	for i, it := range items {
		if it.ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return items, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	if err := CanPurge(items[idx]); err != nil {
		return items, err
	}
	out := make([]item.Item, 0, len(items)-1)
	out = append(out, items[:idx]...)
	out = append(out, items[idx+1:]...)
	return out, nil
}

// Policy holds the retention window.
type Policy struct {
	RetentionDays int
}

// DefaultPolicy keeps deleted items for DefaultRetentionDays.
func DefaultPolicy() Policy {
	return Policy{RetentionDays: DefaultRetentionDays}
}

// DaysRemaining is the number of whole days left before a deleted item is
// eligible for purge. Items that are not deleted report zero.
func (p Policy) DaysRemaining(it item.Item, now time.Time) int {
	if it.State != item.StateDeleted || it.DeletedAt == nil {
		return 0
	}
	elapsed := int(math.Floor(float64(now.Sub(it.DeletedAt.Time)) / float64(day)))
	remaining := p.RetentionDays - elapsed
	if remaining < 0 {
		return 0
	}
	return remaining
}

// Expired reports whether a deleted item has used up its retention window.
// Nothing purges expired items automatically.
func (p Policy) Expired(it item.Item, now time.Time) bool {
	return it.State == item.StateDeleted && p.DaysRemaining(it, now) == 0
}
