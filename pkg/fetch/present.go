package fetch

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"

	"github.com/tidwall/pretty"
)

const indent = "    "

// Indent renders raw JSON with 4-space indentation. It works on the raw bytes
// so the server's key order is preserved, and it is idempotent: re-indenting
// its own output yields identical bytes.
func Indent(raw json.RawMessage) ([]byte, error) {
	var buf bytes.Buffer
	if err := json.Indent(&buf, raw, "", indent); err != nil {
		return nil, &DecodeError{Err: err}
	}
	return buf.Bytes(), nil
}

// Print writes the indented rendering of raw to w, ANSI-colorized when color
// is set.
func Print(w io.Writer, raw json.RawMessage, color bool) error {
	out, err := Indent(raw)
	if err != nil {
		return err
	}

	if color {
		out = pretty.Color(out, nil)
	}

	_, err = fmt.Fprintln(w, string(out))
	return err
}
