package options

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/thinktank/pkg/query"
)

// QueryOptions select and order the items a listing shows.
type QueryOptions struct {
	View      ViewValue
	Search    string
	Sort      string
	Direction DirectionValue
	Desc      bool
	Filters   []string
}

func AddQueryArgs(cmd *cobra.Command, o *QueryOptions) {
	cmd.Flags().Var(&o.View, "view",
		"Which view to list, one of "+viewNames()+".")
	cmd.Flags().StringVarP(&o.Search, "search", "s", "",
		"Case-insensitive text to search labels and category names for.")
	cmd.Flags().StringVar(&o.Sort, "sort", "",
		"Field to sort by: label, state, pinned, category, updated or order.")
	cmd.Flags().Var(&o.Direction, "direction",
		"Sort direction, asc or desc.")
	cmd.Flags().BoolVar(&o.Desc, "desc", false,
		"Shorthand for --direction=desc.")
	cmd.Flags().StringArrayVarP(&o.Filters, "filter", "f", nil,
		"Keep items whose field equals value, as field=value. Repeat to combine.")
}

// Criteria converts the flags to a query.
func (o *QueryOptions) Criteria() (query.Criteria, error) {
	c := query.Criteria{
		Text: o.Search,
		Sort: query.Sort{Field: o.Sort, Direction: o.Direction.Direction},
	}
	if o.Desc {
		c.Sort.Direction = query.Descending
	}
	for _, f := range o.Filters {
		name, value, ok := strings.Cut(f, "=")
		name = strings.TrimSpace(name)
		if !ok || name == "" {
			return query.Criteria{}, fmt.Errorf("invalid filter %q, expected field=value", f)
		}
		if c.Fields == nil {
			c.Fields = make(map[string][]string)
		}
		c.Fields[name] = append(c.Fields[name], value)
	}
	return c, nil
}
