package fetch

import (
	"bytes"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/go-playground/assert/v2"
)

func TestReportStatusError(t *testing.T) {
	var buf bytes.Buffer

	err := fmt.Errorf("apod fetch: %w", &StatusError{StatusCode: 404})
	Report(&buf, err)

	out := buf.String()
	assert.Equal(t, true, strings.HasPrefix(out, "HTTP error occurred:"))
	assert.Equal(t, 1, strings.Count(out, "\n"))
}

func TestReportOtherError(t *testing.T) {
	var buf bytes.Buffer

	Report(&buf, errors.New("dial tcp: connection refused"))

	out := buf.String()
	assert.Equal(t, true, strings.HasPrefix(out, "Other error occurred:"))
	assert.Equal(t, 1, strings.Count(out, "\n"))
}

func TestReportDecodeErrorIsGeneric(t *testing.T) {
	var buf bytes.Buffer

	Report(&buf, &DecodeError{Err: errors.New("body is not valid JSON")})

	assert.Equal(t, true, strings.HasPrefix(buf.String(), "Other error occurred:"))
}
