package fetch

import (
	"errors"
	"fmt"
	"io"
)

// Report writes a single human-readable line for err. Status errors are
// tagged as HTTP errors; every other failure, network and parse errors
// included, gets the generic form. Reporting never aborts the caller.
func Report(w io.Writer, err error) {
	var statusErr *StatusError
	if errors.As(err, &statusErr) {
		fmt.Fprintf(w, "HTTP error occurred: %v\n", err)
		return
	}

	fmt.Fprintf(w, "Other error occurred: %v\n", err)
}
