package printers

import (
	"encoding/json"
	"fmt"
	"io"
)

// JSON writes v as a single line of JSON.
func JSON(w io.Writer, v interface{}) error {
	b, err := json.Marshal(v)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, string(b))
	return err
}
