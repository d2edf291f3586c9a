// Package item defines the records managed by the organizer: threads, spaces
// and prompts share one Item shape, prompts may belong to a Category.
package item

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Kind names the collection an item belongs to.
type Kind string

const (
	// KindThread is a conversational thread.
	KindThread Kind = "thread"
	// KindSpace is a named folder. Spaces are the only manually ordered kind.
	KindSpace Kind = "space"
	// KindPrompt is a saved prompt, optionally grouped by category.
	KindPrompt Kind = "prompt"
)

// AllKinds returns the kinds in their fixed display order.
func AllKinds() []Kind {
	return []Kind{KindThread, KindSpace, KindPrompt}
}

// ParseKind converts user input ("threads", "Space", ...) to a Kind.
func ParseKind(raw string) (Kind, error) {
	k := strings.ToLower(strings.TrimSpace(raw))
	k = strings.TrimSuffix(k, "s")
	for _, candidate := range AllKinds() {
		if string(candidate) == k {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("item: unknown kind %q", raw)
}

// Reorderable reports whether items of this kind keep a manual order.
func (k Kind) Reorderable() bool {
	return k == KindSpace
}

// Plural is used for headings.
func (k Kind) Plural() string {
	return string(k) + "s"
}

// State is the soft lifecycle state of an item.
type State string

const (
	StateActive   State = "active"
	StateArchived State = "archived"
	StateDeleted  State = "deleted"
)

var ErrInvalid = errors.New("item: invalid")

// Item is one thread, space or prompt.
type Item struct {
	ID         string     `json:"id"`
	Kind       Kind       `json:"kind"`
	Label      string     `json:"label"`
	Updated    Timestamp  `json:"updated"`
	Pinned     bool       `json:"pinned,omitempty"`
	State      State      `json:"state"`
	DeletedAt  *Timestamp `json:"deletedAt,omitempty"`
	Order      int        `json:"order"`
	CategoryID string     `json:"categoryId,omitempty"`
}

// New returns an active, unpinned item with a fresh ID.
func New(kind Kind, label string, now time.Time, order int) Item {
	return Item{
		ID:      uuid.NewString(),
		Kind:    kind,
		Label:   strings.TrimSpace(label),
		Updated: At(now),
		State:   StateActive,
		Order:   order,
	}
}

// Validate checks the per-item invariants.
func (i Item) Validate() error {
	if i.ID == "" {
		return fmt.Errorf("%w: missing id", ErrInvalid)
	}
	if strings.TrimSpace(i.Label) == "" {
		return fmt.Errorf("%w: %s has no label", ErrInvalid, i.ID)
	}
	switch i.State {
	case StateDeleted:
		if i.DeletedAt == nil {
			return fmt.Errorf("%w: %s is deleted without deletedAt", ErrInvalid, i.ID)
		}
	case StateActive, StateArchived:
		if i.DeletedAt != nil {
			return fmt.Errorf("%w: %s is %s with deletedAt set", ErrInvalid, i.ID, i.State)
		}
	default:
		return fmt.Errorf("%w: %s has unknown state %q", ErrInvalid, i.ID, i.State)
	}
	if i.CategoryID != "" && i.Kind != KindPrompt {
		return fmt.Errorf("%w: only prompts carry a category, %s is a %s", ErrInvalid, i.ID, i.Kind)
	}
	return nil
}

func (i Item) String() string {
	return fmt.Sprintf("%s %q (%s)", i.Kind, i.Label, i.State)
}

// Category groups prompts.
type Category struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// NewCategory returns a category with a fresh ID.
func NewCategory(name string) Category {
	return Category{ID: uuid.NewString(), Name: strings.TrimSpace(name)}
}

// IndexByID maps ids to their position in items.
func IndexByID(items []Item) map[string]int {
	indexed := make(map[string]int, len(items))
	for i, it := range items {
		if it.ID == "" {
			continue
		}
		indexed[it.ID] = i
	}
	return indexed
}

// UniqueIDs reports whether no two items share an ID.
func UniqueIDs(items []Item) bool {
	return len(IndexByID(items)) == len(items)
}
