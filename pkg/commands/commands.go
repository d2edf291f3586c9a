package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/thinktank/pkg/commands/options"
	"tableflip.dev/thinktank/pkg/config"
	"tableflip.dev/thinktank/pkg/organizer"
)

var (
	lo = &options.LogOptions{}
)

func New() *cobra.Command {

	cmd := &cobra.Command{
		Use:   "thinktank",
		Short: options.Wrap80("Organize AI threads, spaces and prompts, and classify AI system risk."),
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
		SilenceUsage: true,
	}
	options.AddLogArgs(cmd, lo)

	AddCommands(cmd)
	return cmd
}

func AddCommands(topLevel *cobra.Command) {
	addClassify(topLevel)
	addShell(topLevel)
	addUI(topLevel)
	addKey(topLevel)
	addVersion(topLevel)
	addCompletions(topLevel)
}

// newOrganizer builds an organizer from the config file and flags, optionally
// seeded with a session.
func newOrganizer(seed *organizer.Session) (*organizer.Organizer, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	opts := append(cfg.Options(), organizer.WithLogger(lo.Logger()))
	if seed != nil {
		opts = append(opts, organizer.WithSession(*seed))
	}
	return organizer.New(opts...), nil
}
