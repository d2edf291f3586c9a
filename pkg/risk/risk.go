// Package risk classifies an AI system into a low or high risk category from
// a handful of yes/no answers collected by the assessment form.
package risk

import (
	"fmt"
	"strings"
)

// Category is the outcome of a classification.
type Category string

const (
	Low  Category = "low"
	High Category = "high"
)

// ParseCategory converts a string to a Category.
func ParseCategory(raw string) (Category, error) {
	switch Category(strings.ToLower(strings.TrimSpace(raw))) {
	case Low:
		return Low, nil
	case High:
		return High, nil
	}
	return "", fmt.Errorf("risk: unknown category %q", raw)
}

func (c Category) String() string {
	return string(c)
}

// Attributes are the assessment answers.
type Attributes struct {
	// A: the system is used in one of the listed high-risk areas.
	A bool `json:"a"`
	// B: the system can cause significant harm.
	B bool `json:"b"`
	// C1, C2, C3: product safety criteria.
	C1 bool `json:"c1"`
	C2 bool `json:"c2"`
	C3 bool `json:"c3"`
	// Profiling: the system profiles natural persons.
	Profiling bool `json:"profiling"`
	// HumanInLoop: a human reviews every decision.
	HumanInLoop bool `json:"humanInLoop"`
}

// Classify evaluates the rule table top to bottom, first match wins.
// Profiling is high regardless of human oversight.
func Classify(a Attributes) Category {
	switch {
	case a.Profiling:
		return High
	case a.B:
		return overseen(a)
	case a.C1 || a.C3 || (a.C1 && a.C2):
		return overseen(a)
	case a.A && a.B:
		return overseen(a)
	}
	return Low
}

func overseen(a Attributes) Category {
	if a.HumanInLoop {
		return Low
	}
	return High
}
