package recency

import (
	"testing"
	"time"
)

type note struct {
	id string
	at time.Time
}

func noteTime(n note) time.Time { return n.at }

var (
	now = time.Date(2025, 10, 11, 15, 30, 0, 0, time.UTC)
	sod = time.Date(2025, 10, 11, 0, 0, 0, 0, time.UTC)
)

func TestClassifyBoundaries(t *testing.T) {
	tests := []struct {
		name string
		at   time.Time
		want Bucket
	}{
		{"now", now, Today},
		{"future", now.Add(48 * time.Hour), Today},
		{"start of today", sod, Today},
		{"just before today", sod.Add(-time.Nanosecond), Yesterday},
		{"start of yesterday", sod.AddDate(0, 0, -1), Yesterday},
		{"just before yesterday", sod.AddDate(0, 0, -1).Add(-time.Nanosecond), LastWeek},
		{"seven days", sod.AddDate(0, 0, -7), LastWeek},
		{"just before seven days", sod.AddDate(0, 0, -7).Add(-time.Nanosecond), LastMonth},
		{"thirty days", sod.AddDate(0, 0, -30), LastMonth},
		{"just before thirty days", sod.AddDate(0, 0, -30).Add(-time.Nanosecond), Older},
		{"last year", now.AddDate(-1, 0, 0), Older},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Classify(tt.at, now); got != tt.want {
				t.Fatalf("expected %s, got %s", tt.want, got)
			}
		})
	}
}

func TestClassifyUsesNowLocation(t *testing.T) {
	tz := time.FixedZone("UTC+10", 10*60*60)
	localNow := time.Date(2025, 10, 11, 1, 0, 0, 0, tz)
	// 2025-10-10T16:00Z is 02:00 on the 11th in UTC+10.
	ts := time.Date(2025, 10, 10, 16, 0, 0, 0, time.UTC)
	if got := Classify(ts, localNow); got != Today {
		t.Fatalf("expected Today in now's zone, got %s", got)
	}
}

func TestGroupByRecencyPartition(t *testing.T) {
	notes := []note{
		{"old", sod.AddDate(0, 0, -90)},
		{"today-1", now},
		{"week", sod.AddDate(0, 0, -3)},
		{"yesterday-edge", sod.AddDate(0, 0, -1)},
		{"today-2", sod},
		{"month", sod.AddDate(0, 0, -30)},
	}
	groups := GroupByRecency(notes, now, noteTime)

	wantOrder := []Bucket{Today, Yesterday, LastWeek, LastMonth, Older}
	if len(groups) != len(wantOrder) {
		t.Fatalf("expected %d groups, got %d", len(wantOrder), len(groups))
	}
	seen := map[string]int{}
	for i, g := range groups {
		if g.Bucket != wantOrder[i] {
			t.Fatalf("group %d: expected %s, got %s", i, wantOrder[i], g.Bucket)
		}
		for _, n := range g.Items {
			seen[n.id]++
		}
	}
	if len(seen) != len(notes) {
		t.Fatalf("expected %d distinct notes, got %d", len(notes), len(seen))
	}
	for id, count := range seen {
		if count != 1 {
			t.Fatalf("note %s appeared %d times", id, count)
		}
	}
	if groups[0].Items[0].id != "today-1" || groups[0].Items[1].id != "today-2" {
		t.Fatalf("expected input order within a bucket, got %+v", groups[0].Items)
	}
	if groups[1].Items[0].id != "yesterday-edge" {
		t.Fatalf("expected boundary note in Yesterday, got %+v", groups[1].Items)
	}
}

func TestGroupByRecencyOmitsEmptyBuckets(t *testing.T) {
	notes := []note{{"a", sod.AddDate(0, 0, -100)}, {"b", now}}
	groups := GroupByRecency(notes, now, noteTime)
	if len(groups) != 2 {
		t.Fatalf("expected 2 groups, got %d", len(groups))
	}
	if groups[0].Bucket != Today || groups[1].Bucket != Older {
		t.Fatalf("expected Today then Older, got %s then %s", groups[0].Bucket, groups[1].Bucket)
	}
	if got := GroupByRecency([]note{}, now, noteTime); len(got) != 0 {
		t.Fatalf("expected no groups for empty input")
	}
}
