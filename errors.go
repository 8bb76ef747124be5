package hookfmt

import (
	"errors"
	"fmt"
	"strings"

	"github.com/hookfmt/hookfmt/i18n"
)

// Issue codes (exported consts for IDE completion and type safety by convention)
const (
	CodeRequired      = "required"
	CodeInvalidType   = "invalid_type"
	CodeEmptyString   = "empty_string"
	CodeTooLong       = "too_long"
	CodeNotInteger    = "not_integer"
	CodeOutOfRange    = "out_of_range"
	CodeInvalidScheme = "invalid_scheme"
	CodeInvalidInject = "invalid_inject"
	CodeUnknownSource = "unknown_source"
)

// Issue represents a single validation failure.
type Issue struct {
	Path    string // JSON Pointer over input keys (for example: /embed/0/author/name).
	Code    string // One of the codes listed above.
	Message string
	Cause   error // Optional: underlying error.
	// Params carries structured parameters (e.g., {"max":"256", "got":"300"})
	// for i18n and observability.
	Params map[string]string
}

// Issues is a collection of validation errors that implements error.
// Validation is fail-fast, so callers normally see exactly one entry.
type Issues []Issue

// Error summarizes the first few issues.
func (iss Issues) Error() string {
	if len(iss) == 0 {
		return ""
	}
	const maxShown = 3
	b := &strings.Builder{}
	n := len(iss)
	lim := n
	if lim > maxShown {
		lim = maxShown
	}
	for i := 0; i < lim; i++ {
		if i > 0 {
			b.WriteString("; ")
		}
		it := iss[i]
		// e.g. too_long at /embed/0/title: must be at most 256 characters (got 300)
		fmt.Fprintf(b, "%s at %s", it.Code, it.Path)
		if it.Message != "" {
			fmt.Fprintf(b, ": %s", it.Message)
		}
	}
	if n > lim {
		fmt.Fprintf(b, "; ... (total %d)", n)
	}
	return b.String()
}

// AsIssues extracts Issues from an error using errors.As internally.
func AsIssues(err error) (Issues, bool) {
	if err == nil {
		return nil, false
	}
	var iss Issues
	if errors.As(err, &iss) {
		return iss, true
	}
	return nil, false
}

// fail builds the single-issue Issues value the fail-fast validators return.
func fail(path, code string, data map[string]string) Issues {
	return Issues{Issue{Path: path, Code: code, Message: i18n.T(code, data), Params: data}}
}
