// Package timeutil parses the day-granular windows used for trash retention.
package timeutil

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// DefaultRetention is used when no retention window is configured.
const DefaultRetention = "30d"

// MaxDays bounds a retention window to a hundred years.
const MaxDays = 36500

var (
	segmentPattern = regexp.MustCompile(`^\s*(\d+)\s*([a-z]*)`)
	dayUnits       = map[string]int{
		"":      1,
		"d":     1,
		"day":   1,
		"days":  1,
		"w":     7,
		"wk":    7,
		"wks":   7,
		"week":  7,
		"weeks": 7,
	}
)

// ParseDays parses a retention window such as "30", "30d", "2w" or "1w3d"
// into whole days, returning the count and its canonical "<n>d" form.
// Zero is allowed and means deleted items are purgeable immediately.
func ParseDays(input string) (int, string, error) {
	trimmed := strings.ToLower(strings.TrimSpace(input))
	if trimmed == "" {
		trimmed = DefaultRetention
	}

	total := 0
	for remaining := trimmed; len(remaining) > 0; {
		m := segmentPattern.FindStringSubmatch(remaining)
		if len(m) != 3 || len(m[0]) == 0 {
			return 0, "", fmt.Errorf("invalid retention segment %q", strings.TrimSpace(remaining))
		}
		n, err := strconv.Atoi(m[1])
		if err != nil {
			return 0, "", fmt.Errorf("invalid retention value %q: %w", m[1], err)
		}
		mult, ok := dayUnits[m[2]]
		if !ok {
			return 0, "", fmt.Errorf("unsupported retention unit %q", m[2])
		}
		if n > (MaxDays-total)/mult {
			return 0, "", fmt.Errorf("retention %q is longer than %d days", strings.TrimSpace(input), MaxDays)
		}
		total += n * mult
		remaining = remaining[len(m[0]):]
	}
	return total, FormatDays(total), nil
}

// FormatDays renders a day count the way ParseDays reports it.
func FormatDays(days int) string {
	if days < 0 {
		days = 0
	}
	return strconv.Itoa(days) + "d"
}

// Countdown renders the days left before a deleted item is purged.
func Countdown(days int) string {
	switch {
	case days <= 0:
		return "purge due"
	case days == 1:
		return "1 day left"
	default:
		return fmt.Sprintf("%d days left", days)
	}
}
