package keypath

import "fmt"

// SyntaxError reports malformed path input: a reserved character in a raw
// fragment, an empty segment, a misplaced relative token, or a relative pop
// with no accumulated segment left to remove. It is detected eagerly during
// normalization; a failed Normalize never partially applies.
type SyntaxError struct {
	Fragment string // offending fragment, empty when the whole input is at fault
	Reason   string
}

// Error implements the error interface for SyntaxError.
func (e *SyntaxError) Error() string {
	if e.Fragment == "" {
		return fmt.Sprintf("invalid path: %s", e.Reason)
	}
	return fmt.Sprintf("invalid path fragment %q: %s", e.Fragment, e.Reason)
}

// NotFoundError reports a syntactically valid path that does not resolve
// against a given mapping. Valid carries every canonical path reachable from
// the mapping's root, so callers can surface actionable diagnostics.
type NotFoundError struct {
	Path  string
	Valid []string
}

// Error implements the error interface for NotFoundError.
func (e *NotFoundError) Error() string {
	return fmt.Sprintf("path %q not found; available paths are %v", e.Path, e.Valid)
}
