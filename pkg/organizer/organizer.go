// Package organizer owns one session of threads, spaces and prompts and
// exposes every organizer operation as a method. Mutations never modify a
// published slice; they build a new one and swap it in, so a Snapshot stays
// valid after later calls.
package organizer

import (
	"errors"
	"fmt"
	"io"
	"log"
	"time"

	"golang.org/x/text/language"

	"tableflip.dev/thinktank/pkg/item"
	"tableflip.dev/thinktank/pkg/lifecycle"
	"tableflip.dev/thinktank/pkg/ordering"
	"tableflip.dev/thinktank/pkg/pinned"
)

var (
	ErrNotFound         = errors.New("organizer: item not found")
	ErrLabelRequired    = errors.New("organizer: label is required")
	ErrNotReorderable   = errors.New("organizer: collection is not reorderable")
	ErrCategoryNotFound = errors.New("organizer: category not found")
	ErrNotEditing       = errors.New("organizer: no item is being edited")
	ErrWrongKind        = errors.New("organizer: wrong item kind")
)

// Session is the state held by an Organizer.
type Session struct {
	Threads    []item.Item
	Spaces     []item.Item
	Prompts    []item.Item
	Categories []item.Category
}

// Organizer is the command interface of the sidebar.
type Organizer struct {
	policy   lifecycle.Policy
	pinLimit int
	lang     language.Tag
	now      func() time.Time
	log      *log.Logger

	session Session
	editing string
}

// Option customises New.
type Option func(*Organizer)

// WithPolicy sets the trash retention policy.
func WithPolicy(p lifecycle.Policy) Option {
	return func(o *Organizer) {
		o.policy = p
	}
}

// WithPinLimit sets how many pinned items each collection contributes.
func WithPinLimit(n int) Option {
	return func(o *Organizer) {
		o.pinLimit = n
	}
}

// WithLanguage sets the collation language used when sorting labels.
func WithLanguage(tag language.Tag) Option {
	return func(o *Organizer) {
		o.lang = tag
	}
}

// WithClock replaces time.Now, mostly for tests.
func WithClock(now func() time.Time) Option {
	return func(o *Organizer) {
		if now != nil {
			o.now = now
		}
	}
}

// WithLogger receives a line per mutation.
func WithLogger(l *log.Logger) Option {
	return func(o *Organizer) {
		if l != nil {
			o.log = l
		}
	}
}

// WithSession starts from existing collections. Spaces are renumbered by
// their current Order.
func WithSession(s Session) Option {
	return func(o *Organizer) {
		spaces := ordering.Sorted(s.Spaces)
		ordering.Renumber(spaces)
		o.session = Session{
			Threads:    append([]item.Item(nil), s.Threads...),
			Spaces:     spaces,
			Prompts:    append([]item.Item(nil), s.Prompts...),
			Categories: append([]item.Category(nil), s.Categories...),
		}
	}
}

// New returns an empty organizer.
func New(opts ...Option) *Organizer {
	o := &Organizer{
		policy:   lifecycle.DefaultPolicy(),
		pinLimit: pinned.DefaultLimit,
		lang:     language.English,
		now:      time.Now,
		log:      log.New(io.Discard, "", 0),
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// Snapshot returns the current session. Callers must not modify it.
func (o *Organizer) Snapshot() Session {
	return o.session
}

// Policy returns the retention policy in use.
func (o *Organizer) Policy() lifecycle.Policy {
	return o.policy
}

// Now returns the organizer's clock reading.
func (o *Organizer) Now() time.Time {
	return o.now()
}

// Validate checks the session invariants.
func (o *Organizer) Validate() error {
	for _, k := range item.AllKinds() {
		items := o.collection(k)
		if !item.UniqueIDs(items) {
			return fmt.Errorf("organizer: duplicate id in %s", k.Plural())
		}
		for _, it := range items {
			if it.Kind != k {
				return fmt.Errorf("organizer: %s stored with %s: %w", it.ID, k.Plural(), ErrWrongKind)
			}
			if err := it.Validate(); err != nil {
				return err
			}
		}
		if k.Reorderable() && !ordering.Contiguous(items) {
			return fmt.Errorf("organizer: %s order is not contiguous", k.Plural())
		}
	}
	return nil
}

func (o *Organizer) collection(k item.Kind) []item.Item {
	switch k {
	case item.KindThread:
		return o.session.Threads
	case item.KindSpace:
		return o.session.Spaces
	case item.KindPrompt:
		return o.session.Prompts
	}
	return nil
}

func (o *Organizer) setCollection(k item.Kind, items []item.Item) {
	switch k {
	case item.KindThread:
		o.session.Threads = items
	case item.KindSpace:
		o.session.Spaces = items
	case item.KindPrompt:
		o.session.Prompts = items
	}
}

func (o *Organizer) locate(id string) (item.Kind, int, error) {
	for _, k := range item.AllKinds() {
		for i, it := range o.collection(k) {
			if it.ID == id {
				return k, i, nil
			}
		}
	}
	return "", -1, fmt.Errorf("%w: %s", ErrNotFound, id)
}

// update applies fn to a copy of the item and publishes a new collection.
func (o *Organizer) update(id string, fn func(item.Item) (item.Item, error)) (item.Item, error) {
	k, idx, err := o.locate(id)
	if err != nil {
		return item.Item{}, err
	}
	items := o.collection(k)
	next, err := fn(items[idx])
	if err != nil {
		return items[idx], err
	}
	out := append([]item.Item(nil), items...)
	out[idx] = next
	o.setCollection(k, out)
	return next, nil
}

// Find returns the item with id.
func (o *Organizer) Find(id string) (item.Item, error) {
	k, idx, err := o.locate(id)
	if err != nil {
		return item.Item{}, err
	}
	return o.collection(k)[idx], nil
}
