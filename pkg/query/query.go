// Package query implements the filter and sort pipeline shared by every
// table-like view: a text search, multi-select field filters and a stable
// single-field sort.
package query

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Direction of a sort.
type Direction int

const (
	Ascending Direction = iota
	Descending
)

// ParseDirection accepts asc/ascending and desc/descending.
func ParseDirection(raw string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "", "asc", "ascending":
		return Ascending, nil
	case "desc", "descending":
		return Descending, nil
	}
	return Ascending, fmt.Errorf("query: unknown sort direction %q", raw)
}

func (d Direction) String() string {
	if d == Descending {
		return "desc"
	}
	return "asc"
}

// Sort selects the field to order by. An empty Field keeps input order.
type Sort struct {
	Field     string
	Direction Direction
}

// Criteria is what a view asks for.
type Criteria struct {
	// Text is matched case-insensitively as a substring of any text field.
	Text string
	// Fields maps a field name to the accepted values. An empty value set
	// places no restriction on that field.
	Fields map[string][]string
	Sort   Sort
}

// Field exposes one attribute of T. Exactly one of String or Number is set.
type Field[T any] struct {
	String func(T) string
	Number func(T) float64
}

func (f Field[T]) valid() bool {
	return f.String != nil || f.Number != nil
}

func (f Field[T]) value(v T) string {
	if f.String != nil {
		return f.String(v)
	}
	return strconv.FormatFloat(f.Number(v), 'f', -1, 64)
}

// Schema describes how the pipeline sees a record type.
type Schema[T any] struct {
	// Text lists the fields searched by Criteria.Text.
	Text []func(T) string
	// Fields are the filterable and sortable attributes by name.
	Fields map[string]Field[T]
	// Language drives string collation. The zero value collates with the
	// root locale.
	Language language.Tag
}

// Run filters and sorts items. The input slice is never modified.
func Run[T any](items []T, c Criteria, s Schema[T]) []T {
	out := Filter(items, c, s)
	SortStable(out, c.Sort, s)
	return out
}

// Filter returns the items matching both the text and the field filters.
func Filter[T any](items []T, c Criteria, s Schema[T]) []T {
	fold := cases.Fold()
	needle := fold.String(c.Text)

	groups := make(map[string]map[string]struct{}, len(c.Fields))
	for name, values := range c.Fields {
		f, ok := s.Fields[name]
		if !ok || !f.valid() || len(values) == 0 {
			continue
		}
		set := make(map[string]struct{}, len(values))
		for _, v := range values {
			set[v] = struct{}{}
		}
		groups[name] = set
	}

	out := make([]T, 0, len(items))
	for _, it := range items {
		if !matchesText(it, needle, s, fold) {
			continue
		}
		if !matchesFields(it, groups, s) {
			continue
		}
		out = append(out, it)
	}
	return out
}

func matchesText[T any](it T, needle string, s Schema[T], fold cases.Caser) bool {
	if needle == "" {
		return true
	}
	for _, text := range s.Text {
		if text == nil {
			continue
		}
		if strings.Contains(fold.String(text(it)), needle) {
			return true
		}
	}
	return false
}

func matchesFields[T any](it T, groups map[string]map[string]struct{}, s Schema[T]) bool {
	for name, set := range groups {
		if _, ok := set[s.Fields[name].value(it)]; !ok {
			return false
		}
	}
	return true
}

// SortStable orders items in place by the requested field. Unknown or empty
// fields leave the order untouched.
func SortStable[T any](items []T, by Sort, s Schema[T]) {
	f, ok := s.Fields[by.Field]
	if by.Field == "" || !ok || !f.valid() {
		return
	}
	cmp := compareFunc(f, s.Language)
	sort.SliceStable(items, func(i, j int) bool {
		r := cmp(items[i], items[j])
		if by.Direction == Descending {
			r = -r
		}
		return r < 0
	})
}

func compareFunc[T any](f Field[T], tag language.Tag) func(a, b T) int {
	if f.String != nil {
		col := collate.New(tag)
		return func(a, b T) int {
			return col.CompareString(f.String(a), f.String(b))
		}
	}
	return func(a, b T) int {
		x, y := f.Number(a), f.Number(b)
		switch {
		case x < y:
			return -1
		case x > y:
			return 1
		}
		return 0
	}
}
