package commands

import (
	"context"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"tableflip.dev/thinktank/pkg/commands/options"
	"tableflip.dev/thinktank/pkg/organizer"
	"tableflip.dev/thinktank/pkg/runner/shell"
	"tableflip.dev/thinktank/pkg/runner/ui"
)

func addShell(topLevel *cobra.Command) {
	oo := &options.OutputOptions{}
	io := &options.IDOptions{}
	demo := false

	cmd := &cobra.Command{
		Use:   "shell",
		Short: "Run organizer commands read from stdin",
		Long: options.Wrap80(`Read organizer commands line by line from stdin and run them
against one in-memory session. Type "help" for the command list. A failing
line prints an error and the session continues.`),
		Example: `
thinktank shell --show-id
printf 'new space Research\nlist spaces\n' | thinktank shell --json
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var seed *organizer.Session
			if demo {
				s := ui.DemoSession(timeNow())
				seed = &s
			}
			org, err := newOrganizer(seed)
			if err != nil {
				return oo.HandleError(err)
			}
			fd := os.Stdin.Fd()
			s := shell.Shell{
				Organizer: org,
				In:        os.Stdin,
				JSON:      oo.JSON,
				ShowID:    io.ShowID,
				Prompt:    isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd),
			}
			err = s.Do(context.Background())
			return oo.HandleError(err)
		},
	}

	options.AddOutputArg(cmd, oo)
	options.AddShowIDArgs(cmd, io)
	cmd.Flags().BoolVar(&demo, "demo", false, "Start from an example session.")

	topLevel.AddCommand(cmd)
}
