package options

import (
	"errors"
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/thinktank/pkg/item"
	"tableflip.dev/thinktank/pkg/lifecycle"
	"tableflip.dev/thinktank/pkg/query"
)

// KindValue is a pflag.Value for item kinds.
type KindValue struct {
	Kind item.Kind
}

func (v *KindValue) String() string { return string(v.Kind) }

func (v *KindValue) Set(s string) error {
	k, err := item.ParseKind(s)
	if err != nil {
		return err
	}
	v.Kind = k
	return nil
}

func (v *KindValue) Type() string { return "kind" }

// KindOptions picks a collection either from the first argument or --kind.
type KindOptions struct {
	Kind KindValue
}

var ErrKindRequired = errors.New("a kind is required: " + strings.Join(KindNames(), ", "))

func AddKindArg(cmd *cobra.Command, o *KindOptions) {
	cmd.Flags().VarP(&o.Kind, "kind", "k",
		"Collection to use, one of "+strings.Join(KindNames(), "|")+".")
}

// Resolve returns the kind named by args[0], falling back to --kind.
func (o *KindOptions) Resolve(args []string) (item.Kind, error) {
	if len(args) > 0 {
		return item.ParseKind(args[0])
	}
	if o.Kind.Kind == "" {
		return "", ErrKindRequired
	}
	return o.Kind.Kind, nil
}

// KindNames lists accepted kinds for completion and help.
func KindNames() []string {
	names := make([]string, 0, 3)
	for _, k := range item.AllKinds() {
		names = append(names, string(k))
	}
	return names
}

// ViewValue is a pflag.Value for lifecycle views.
type ViewValue struct {
	View lifecycle.View
}

func (v *ViewValue) String() string {
	if v.View == "" {
		return string(lifecycle.ViewMain)
	}
	return string(v.View)
}

func (v *ViewValue) Set(s string) error {
	view, err := lifecycle.ParseView(s)
	if err != nil {
		return err
	}
	v.View = view
	return nil
}

func (v *ViewValue) Type() string { return "view" }

func viewNames() string {
	names := make([]string, 0, 3)
	for _, v := range lifecycle.AllViews() {
		names = append(names, string(v))
	}
	return strings.Join(names, "|")
}

// DirectionValue is a pflag.Value for sort directions.
type DirectionValue struct {
	Direction query.Direction
}

func (v *DirectionValue) String() string {
	return v.Direction.String()
}

func (v *DirectionValue) Set(s string) error {
	d, err := query.ParseDirection(s)
	if err != nil {
		return err
	}
	v.Direction = d
	return nil
}

func (v *DirectionValue) Type() string { return "direction" }
