// Package key prints the glyph legend.
package key

import (
	"context"
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"tableflip.dev/thinktank/pkg/glyph"
)

// Key prints a legend describing kind glyphs and row markers.
type Key struct {
	// Out defaults to color.Output.
	Out io.Writer
}

// Do renders the kinds and markers tables.
func (k *Key) Do(ctx context.Context) error {
	out := k.Out
	if out == nil {
		out = color.Output
	}
	_, _ = fmt.Fprintln(out, "")
	k.Key(ctx, out, glyph.Legend(), false)
	_, _ = fmt.Fprintln(out, "")
	k.Key(ctx, out, glyph.Legend(), true)
	_, _ = fmt.Fprintln(out, "")
	return nil
}

// Key renders a glyph table; when markers is true, row markers are shown.
func (k *Key) Key(_ context.Context, out io.Writer, glyfs []glyph.Glyph, markers bool) {
	bold := color.New(color.Bold)

	tbl := uitable.New()
	tbl.Separator = "  "
	if markers {
		tbl.AddRow(bold.Sprint("Markers"), bold.Sprint("Meaning"))
	} else {
		tbl.AddRow(bold.Sprint("  Kinds"), bold.Sprint("Meaning"))
	}
	for _, v := range glyfs {
		if markers == v.Marker {
			tbl.AddRow(v.Symbol, v.Meaning)
		}
	}
	tbl.RightAlign(0)

	_, _ = fmt.Fprintln(out, tbl)
}
