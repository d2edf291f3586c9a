package ui

import (
	"time"

	"tableflip.dev/thinktank/pkg/item"
	"tableflip.dev/thinktank/pkg/lifecycle"
	"tableflip.dev/thinktank/pkg/organizer"
)

// DemoSession is a small example session spread over the recency buckets.
func DemoSession(now time.Time) organizer.Session {
	day := 24 * time.Hour
	threads := []item.Item{
		item.New(item.KindThread, "Quarterly report outline", now.Add(-time.Hour), 0),
		item.New(item.KindThread, "Fix flaky deploy", now.Add(-3*time.Hour), 1),
		item.New(item.KindThread, "Interview questions", now.Add(-26*time.Hour), 2),
		item.New(item.KindThread, "Trip planning", now.Add(-4*day), 3),
		item.New(item.KindThread, "Reading list", now.Add(-12*day), 4),
		item.New(item.KindThread, "Old brainstorm", now.Add(-60*day), 5),
	}
	threads[0].Pinned = true
	threads[3].Pinned = true
	threads[5] = lifecycle.Delete(threads[5], now.Add(-2*day))

	spaces := []item.Item{
		item.New(item.KindSpace, "Research", now, 0),
		item.New(item.KindSpace, "Product", now, 1),
		item.New(item.KindSpace, "Personal", now, 2),
		item.New(item.KindSpace, "Side project", now, 3),
	}
	spaces[0].Pinned = true
	spaces[3], _ = lifecycle.Archive(spaces[3])

	writing := item.NewCategory("Writing")
	prompts := []item.Item{
		item.New(item.KindPrompt, "Summarize", now, 0),
		item.New(item.KindPrompt, "Tagline ideas", now, 1),
		item.New(item.KindPrompt, "Code review", now, 2),
		item.New(item.KindPrompt, "Translate", now, 3),
	}
	prompts[0].CategoryID = writing.ID
	prompts[1].CategoryID = writing.ID

	return organizer.Session{
		Threads:    threads,
		Spaces:     spaces,
		Prompts:    prompts,
		Categories: []item.Category{writing},
	}
}
