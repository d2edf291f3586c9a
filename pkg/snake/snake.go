// Package snake asks for cobra flag values interactively.
package snake

import (
	"fmt"
	"io"
	"strconv"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// Asker answers one flag. The default asks on the terminal with promptui.
type Asker func(f *pflag.Flag) (string, error)

func asFlags(f *pflag.Flag) string {
	if f.Shorthand != "" {
		return fmt.Sprintf("--%s, -%s", f.Name, f.Shorthand)
	}
	return fmt.Sprintf("--%s", f.Name)
}

// BoolFlags returns the visible bool flags of cmd the user has not set,
// skipping names in except.
func BoolFlags(cmd *cobra.Command, except ...string) []*pflag.Flag {
	skip := make(map[string]bool, len(except))
	for _, e := range except {
		skip[e] = true
	}
	var fs []*pflag.Flag
	cmd.Flags().VisitAll(func(f *pflag.Flag) {
		if f.Hidden || f.Changed || skip[f.Name] || f.Value.Type() != "bool" {
			return
		}
		fs = append(fs, f)
	})
	return fs
}

// PromptBools asks for each flag in turn and sets the answers on the flag
// set.
func PromptBools(cmd *cobra.Command, fs []*pflag.Flag, ask Asker) error {
	if ask == nil {
		ask = TerminalAsker(cmd.InOrStdin(), cmd.OutOrStdout())
	}
	for _, f := range fs {
		answer, err := ask(f)
		if err != nil {
			return err
		}
		if answer == "" {
			answer = f.DefValue
		}
		b, err := ParseBool(answer)
		if err != nil {
			return fmt.Errorf("%s: %w", asFlags(f), err)
		}
		if err := cmd.Flags().Set(f.Name, strconv.FormatBool(b)); err != nil {
			return err
		}
	}
	return nil
}

// TerminalAsker prompts with promptui on in and out.
func TerminalAsker(in io.Reader, out io.Writer) Asker {
	return func(f *pflag.Flag) (string, error) {
		validInput := "yes/no"
		if def, err := ParseBool(f.DefValue); err == nil {
			if def {
				validInput = "[yes]/no"
			} else {
				validInput = "yes/[no]"
			}
		}

		templates := &promptui.PromptTemplates{
			Prompt:  "{{ . }} : ",
			Valid:   "{{ . | green }} : ",
			Invalid: "{{ . | red }} : ",
			Success: "{{ . | bold }} : ",
		}

		prompt := promptui.Prompt{
			Label:     fmt.Sprintf("%s %s", f.Usage, validInput),
			Templates: templates,
			Validate: func(input string) error {
				if input == "" {
					return nil
				}
				_, err := ParseBool(input)
				return err
			},
			Stdin:  io.NopCloser(in),
			Stdout: nopCloser{out},
		}
		return prompt.Run()
	}
}

type nopCloser struct {
	io.Writer
}

func (nopCloser) Close() error { return nil }

// ParseBool is strconv.ParseBool with the addition of Yes/No parsing.
func ParseBool(str string) (bool, error) {
	switch str {
	case "1", "t", "T", "true", "TRUE", "True", "y", "Y", "yes", "YES", "Yes":
		return true, nil
	case "0", "f", "F", "false", "FALSE", "False", "n", "N", "no", "NO", "No":
		return false, nil
	}
	return false, &strconv.NumError{Func: "ParseBool", Num: str, Err: strconv.ErrSyntax}
}
