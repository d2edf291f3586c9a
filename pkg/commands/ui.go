package commands

import (
	"context"
	"time"

	"github.com/spf13/cobra"

	"tableflip.dev/thinktank/pkg/organizer"
	"tableflip.dev/thinktank/pkg/runner/ui"
)

var timeNow = time.Now

func addUI(topLevel *cobra.Command) {
	demo := false
	noColor := false

	cmd := &cobra.Command{
		Use:   "ui",
		Short: "open the terminal organizer",
		Example: `
thinktank ui
thinktank ui --demo
`,
		ValidArgs: []string{},
		RunE: func(cmd *cobra.Command, args []string) error {
			var seed *organizer.Session
			if demo {
				s := ui.DemoSession(timeNow())
				seed = &s
			}
			org, err := newOrganizer(seed)
			if err != nil {
				return err
			}
			i := ui.UI{Organizer: org, NoColor: noColor}
			return i.Do(context.Background())
		},
	}

	cmd.Flags().BoolVar(&demo, "demo", false, "Start from an example session.")
	cmd.Flags().BoolVar(&noColor, "no-color", false, "Render without colors.")

	topLevel.AddCommand(cmd)
}
