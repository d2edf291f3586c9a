package shell

import (
	"errors"
	"fmt"

	"github.com/mattn/go-shellwords"
)

var errEmptyCommand = errors.New("shell: empty command")

// split breaks a line into words with shell quoting rules. Environment
// variables and backticks are left as typed.
func split(line string) ([]string, error) {
	words, err := shellwords.Parse(line)
	if err != nil {
		return nil, fmt.Errorf("shell: %w", err)
	}
	if len(words) == 0 {
		return nil, errEmptyCommand
	}
	return words, nil
}
