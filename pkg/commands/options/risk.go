package options

import (
	"github.com/spf13/cobra"

	"tableflip.dev/thinktank/pkg/risk"
)

// RiskOptions mirrors risk.Attributes as flags.
type RiskOptions struct {
	A           bool
	B           bool
	C1          bool
	C2          bool
	C3          bool
	Profiling   bool
	HumanInLoop bool
}

func AddRiskArgs(cmd *cobra.Command, o *RiskOptions) {
	cmd.Flags().BoolVar(&o.A, "a", false,
		"The system is used in one of the listed high-risk areas.")
	cmd.Flags().BoolVar(&o.B, "b", false,
		"The system can cause significant harm.")
	cmd.Flags().BoolVar(&o.C1, "c1", false,
		"Product safety criterion C1 applies.")
	cmd.Flags().BoolVar(&o.C2, "c2", false,
		"Product safety criterion C2 applies.")
	cmd.Flags().BoolVar(&o.C3, "c3", false,
		"Product safety criterion C3 applies.")
	cmd.Flags().BoolVar(&o.Profiling, "profiling", false,
		"The system profiles natural persons.")
	cmd.Flags().BoolVar(&o.HumanInLoop, "human-in-loop", false,
		"A human reviews every decision.")
}

func (o *RiskOptions) Attributes() risk.Attributes {
	return risk.Attributes{
		A:           o.A,
		B:           o.B,
		C1:          o.C1,
		C2:          o.C2,
		C3:          o.C3,
		Profiling:   o.Profiling,
		HumanInLoop: o.HumanInLoop,
	}
}
