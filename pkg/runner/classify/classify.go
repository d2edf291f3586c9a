// Package classify runs the risk classification from the command line.
package classify

import (
	"context"
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"tableflip.dev/thinktank/pkg/printers"
	"tableflip.dev/thinktank/pkg/risk"
)

type Classify struct {
	Attributes risk.Attributes
	JSON       bool
	// Out defaults to color.Output.
	Out io.Writer
}

type result struct {
	Attributes risk.Attributes `json:"attributes"`
	Category   risk.Category   `json:"category"`
}

func (c *Classify) Do(_ context.Context) error {
	out := c.Out
	if out == nil {
		out = color.Output
	}
	category := risk.Classify(c.Attributes)
	if c.JSON {
		return printers.JSON(out, result{Attributes: c.Attributes, Category: category})
	}

	bold := color.New(color.Bold)
	faint := color.New(color.Faint)
	yes := func(b bool) string {
		if b {
			return "yes"
		}
		return faint.Sprint("no")
	}

	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow(bold.Sprint("Attribute"), bold.Sprint("Answer"))
	a := c.Attributes
	tbl.AddRow("a", yes(a.A))
	tbl.AddRow("b", yes(a.B))
	tbl.AddRow("c1", yes(a.C1))
	tbl.AddRow("c2", yes(a.C2))
	tbl.AddRow("c3", yes(a.C3))
	tbl.AddRow("profiling", yes(a.Profiling))
	tbl.AddRow("human in loop", yes(a.HumanInLoop))
	tbl.RightAlign(0)
	_, _ = fmt.Fprintln(out, tbl)
	_, _ = fmt.Fprintln(out, "")

	cc := color.New(color.Bold, color.FgGreen)
	if category == risk.High {
		cc = color.New(color.Bold, color.FgRed)
	}
	_, _ = fmt.Fprintf(out, "Risk category: %s\n", cc.Sprint(category))
	return nil
}
