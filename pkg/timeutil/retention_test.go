package timeutil

import "testing"

func TestParseDaysDefault(t *testing.T) {
	days, label, err := ParseDays("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if days != 30 {
		t.Fatalf("expected 30, got %d", days)
	}
	if label != "30d" {
		t.Fatalf("expected label 30d, got %s", label)
	}
}

func TestParseDaysForms(t *testing.T) {
	tests := map[string]int{
		"0":       0,
		"7":       7,
		"14d":     14,
		"2w":      14,
		"1w3d":    10,
		" 1 week": 7,
		"3 Days":  3,
	}
	for in, want := range tests {
		got, label, err := ParseDays(in)
		if err != nil {
			t.Fatalf("%q: unexpected error: %v", in, err)
		}
		if got != want {
			t.Fatalf("%q: expected %d, got %d", in, want, got)
		}
		if label != FormatDays(want) {
			t.Fatalf("%q: unexpected label %s", in, label)
		}
	}
}

func TestParseDaysInvalid(t *testing.T) {
	for _, in := range []string{"noop", "3h", "-2d", "1w?", "2000000000000000000w", "36501d", "5214w3d"} {
		if _, _, err := ParseDays(in); err == nil {
			t.Fatalf("expected error for %q", in)
		}
	}
}

func TestParseDaysLimit(t *testing.T) {
	days, canon, err := ParseDays("5214w2d")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if days != MaxDays || canon != "36500d" {
		t.Fatalf("expected %d days, got %d (%s)", MaxDays, days, canon)
	}
}

func TestCountdown(t *testing.T) {
	if got := Countdown(0); got != "purge due" {
		t.Fatalf("unexpected %q", got)
	}
	if got := Countdown(1); got != "1 day left" {
		t.Fatalf("unexpected %q", got)
	}
	if got := Countdown(27); got != "27 days left" {
		t.Fatalf("unexpected %q", got)
	}
}
