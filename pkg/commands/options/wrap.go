package options

import (
	"strings"

	"github.com/mitchellh/go-wordwrap"
)

func Wrap80(text string) string {
	return Wrap(text, 80)
}

// Wrap reflows text to width, collapsing runs of whitespace.
func Wrap(text string, width int) string {
	words := strings.Fields(text)
	if len(words) == 0 {
		return text
	}
	return wordwrap.WrapString(strings.Join(words, " "), uint(width))
}
