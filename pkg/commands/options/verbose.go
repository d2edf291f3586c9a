package options

import (
	"io"
	"log"
	"os"

	"github.com/spf13/cobra"
)

// LogOptions
type LogOptions struct {
	Verbose bool
}

func AddLogArgs(cmd *cobra.Command, o *LogOptions) {
	cmd.PersistentFlags().BoolVarP(&o.Verbose, "verbose", "v", false,
		"Log every change to stderr.")
}

// Logger is a stderr logger when verbose, otherwise a discarding one.
func (o *LogOptions) Logger() *log.Logger {
	if o.Verbose {
		return log.New(os.Stderr, "thinktank: ", log.LstdFlags)
	}
	return log.New(io.Discard, "", 0)
}
