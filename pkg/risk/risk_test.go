package risk

import "testing"

func attributesFromBits(bits int) Attributes {
	return Attributes{
		A:           bits&1 != 0,
		B:           bits&2 != 0,
		C1:          bits&4 != 0,
		C2:          bits&8 != 0,
		C3:          bits&16 != 0,
		Profiling:   bits&32 != 0,
		HumanInLoop: bits&64 != 0,
	}
}

// expected restates the rule table independently of Classify.
func expected(a Attributes) Category {
	if a.Profiling {
		return High
	}
	triggered := a.B || a.C1 || a.C3
	if triggered && !a.HumanInLoop {
		return High
	}
	return Low
}

func TestClassifyAllCombinations(t *testing.T) {
	for bits := 0; bits < 1<<7; bits++ {
		a := attributesFromBits(bits)
		got := Classify(a)
		if got != Low && got != High {
			t.Fatalf("%+v: unexpected category %q", a, got)
		}
		if want := expected(a); got != want {
			t.Fatalf("%+v: expected %s, got %s", a, want, got)
		}
	}
}

func TestProfilingOverridesHumanInLoop(t *testing.T) {
	got := Classify(Attributes{Profiling: true, HumanInLoop: true})
	if got != High {
		t.Fatalf("expected high, got %s", got)
	}
}

func TestHarmFlagWithOversight(t *testing.T) {
	a := Attributes{B: true}
	if got := Classify(a); got != High {
		t.Fatalf("expected high, got %s", got)
	}
	a.HumanInLoop = true
	if got := Classify(a); got != Low {
		t.Fatalf("expected low once a human is in the loop, got %s", got)
	}
}

func TestProductSafetyClauses(t *testing.T) {
	tests := []struct {
		name string
		in   Attributes
		want Category
	}{
		{"c1", Attributes{C1: true}, High},
		{"c3", Attributes{C3: true}, High},
		{"c2 alone", Attributes{C2: true}, Low},
		{"c1 and c2", Attributes{C1: true, C2: true}, High},
		{"c3 overseen", Attributes{C3: true, HumanInLoop: true}, Low},
		{"a alone", Attributes{A: true}, Low},
		{"nothing", Attributes{}, Low},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Classify(tt.in); got != tt.want {
				t.Fatalf("expected %s, got %s", tt.want, got)
			}
		})
	}
}

func TestParseCategory(t *testing.T) {
	if c, err := ParseCategory(" HIGH "); err != nil || c != High {
		t.Fatalf("expected high, got %q (%v)", c, err)
	}
	if _, err := ParseCategory("medium"); err == nil {
		t.Fatalf("expected error for unknown category")
	}
}
