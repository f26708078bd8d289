package diag

import (
	"errors"
	"fmt"
	"io"
)

// Shower wraps the Show function.
type Shower interface {
	// Show takes an indentation string and shows.
	Show(indent string) string
}

// ShowError shows an error. It uses the Show method if the error (or any
// error it wraps) implements Shower, and prints the error message in bold and
// red otherwise.
func ShowError(w io.Writer, err error) {
	var shower Shower
	if errors.As(err, &shower) {
		fmt.Fprintln(w, shower.Show(""))
	} else {
		fmt.Fprintf(w, "%s%s%s\n", messageStart, err.Error(), messageEnd)
	}
}
