package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/thinktank/pkg/commands/options"
	"tableflip.dev/thinktank/pkg/runner/classify"
	"tableflip.dev/thinktank/pkg/snake"
)

func addClassify(topLevel *cobra.Command) {
	ro := &options.RiskOptions{}
	oo := &options.OutputOptions{}
	i := &options.InteractiveOptions{}

	cmd := &cobra.Command{
		Use:   "classify",
		Short: "Classify an AI system as low or high risk",
		Long: options.Wrap80(`Classify an AI system from its assessment answers.
Profiling is always high risk. Otherwise a system that can cause significant
harm, or meets product safety criteria C1 or C3, is high risk unless a human
reviews every decision. Everything else is low risk.`),
		Example: `
thinktank classify --b
thinktank classify --c1 --human-in-loop --json
thinktank classify -i
`,
		Args: cobra.NoArgs,
		PreRunE: func(cmd *cobra.Command, args []string) error {
			if i.Interactive {
				return snake.PromptBools(cmd, snake.BoolFlags(cmd, "json", "interactive", "help"), nil)
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			oo.Out = cmd.OutOrStdout()
			c := classify.Classify{
				Attributes: ro.Attributes(),
				JSON:       oo.JSON,
				Out:        cmd.OutOrStdout(),
			}
			err := c.Do(context.Background())
			return oo.HandleError(err)
		},
	}

	options.AddRiskArgs(cmd, ro)
	options.AddOutputArg(cmd, oo)
	options.InteractiveArgs(cmd, i)

	topLevel.AddCommand(cmd)
}
