// Package shell runs organizer commands read line by line against a single
// in-memory session.
package shell

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"tableflip.dev/thinktank/pkg/organizer"
	"tableflip.dev/thinktank/pkg/printers"
)

// PromptText is printed before each line when Prompt is set.
const PromptText = "thinktank> "

type Shell struct {
	Organizer *organizer.Organizer
	In        io.Reader
	// Out defaults to color.Output.
	Out    io.Writer
	JSON   bool
	ShowID bool
	Prompt bool
}

func (s *Shell) out() io.Writer {
	if s.Out == nil {
		return color.Output
	}
	return s.Out
}

func (s *Shell) printer() *printers.PrettyPrint {
	return &printers.PrettyPrint{ShowID: s.ShowID, Out: s.out(), Now: s.Organizer.Now()}
}

// Do reads until EOF or exit. A failing line is reported and the session
// continues.
func (s *Shell) Do(ctx context.Context) error {
	if s.Organizer == nil {
		s.Organizer = organizer.New()
	}
	scanner := bufio.NewScanner(s.In)
	for {
		if s.Prompt {
			_, _ = fmt.Fprint(s.out(), PromptText)
		}
		if !scanner.Scan() {
			break
		}
		if err := ctx.Err(); err != nil {
			return err
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		args, err := split(line)
		if err == nil && (args[0] == "exit" || args[0] == "quit") {
			return nil
		}
		if err == nil {
			err = s.Exec(ctx, args)
		}
		if err != nil {
			s.printError(err)
		}
	}
	if s.Prompt {
		_, _ = fmt.Fprintln(s.out(), "")
	}
	return scanner.Err()
}

// Exec runs one tokenized command line.
func (s *Shell) Exec(ctx context.Context, args []string) error {
	root := s.newCommand()
	root.SetArgs(args)
	root.SetOut(s.out())
	root.SetErr(s.out())
	return root.ExecuteContext(ctx)
}

func (s *Shell) printError(err error) {
	if s.JSON {
		_ = printers.JSON(s.out(), map[string]string{"error": err.Error()})
		return
	}
	_, _ = fmt.Fprintf(s.out(), "error: %v\n", err)
}
