// Package recency groups time-stamped records into relative buckets such as
// "Today" and "Last 7 days".
package recency

import "time"

// Bucket is a relative time range. Buckets are declared in display order.
type Bucket int

const (
	Today Bucket = iota
	Yesterday
	LastWeek
	LastMonth
	Older
)

// AllBuckets returns every bucket in display order.
func AllBuckets() []Bucket {
	return []Bucket{Today, Yesterday, LastWeek, LastMonth, Older}
}

func (b Bucket) String() string {
	switch b {
	case Today:
		return "Today"
	case Yesterday:
		return "Yesterday"
	case LastWeek:
		return "Last 7 days"
	case LastMonth:
		return "Last 30 days"
	default:
		return "Older"
	}
}

// StartOfDay returns midnight of t's calendar day in t's location.
func StartOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// Classify picks the bucket for ts relative to now. Ranges are half-open
// and anchored to the start of now's day, so an instant exactly on a
// boundary belongs to the more recent bucket.
func Classify(ts, now time.Time) Bucket {
	sod := StartOfDay(now)
	switch {
	case !ts.Before(sod):
		return Today
	case !ts.Before(sod.AddDate(0, 0, -1)):
		return Yesterday
	case !ts.Before(sod.AddDate(0, 0, -7)):
		return LastWeek
	case !ts.Before(sod.AddDate(0, 0, -30)):
		return LastMonth
	}
	return Older
}

// Group is one non-empty bucket.
type Group[T any] struct {
	Bucket Bucket
	Items  []T
}

// GroupByRecency partitions items by the timestamp returned by at. Empty
// buckets are omitted; within a bucket the input order is kept.
func GroupByRecency[T any](items []T, now time.Time, at func(T) time.Time) []Group[T] {
	var buckets [Older + 1][]T
	for _, it := range items {
		b := Classify(at(it), now)
		buckets[b] = append(buckets[b], it)
	}
	groups := make([]Group[T], 0, len(buckets))
	for _, b := range AllBuckets() {
		if len(buckets[b]) == 0 {
			continue
		}
		groups = append(groups, Group[T]{Bucket: b, Items: buckets[b]})
	}
	return groups
}
