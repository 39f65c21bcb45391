package keypath

import (
	"strings"
)

const (
	// Separator joins the segments of a canonical path.
	Separator = "."

	// popToken requests one "go up one level" pop when it prefixes a segment.
	popToken = ".."

	// marker is the internal byte each popToken is rewritten to before a
	// fragment is split on the separator. It is reserved: raw fragments must
	// never contain it. The same byte prefixes metadata keys such as
	// IndexKey, which keeps those keys unaddressable by canonical paths.
	marker = "@"
)

// Normalize merges path fragments into a single canonical dot-separated
// path, resolving relative "go up one level" tokens.
//
// Each leading popToken pair on a segment pops the most recently accumulated
// segment; pairs stack (`....x` pops two levels) and pops cross fragment
// boundaries, so Normalize("a.b", "..c") yields "a.c" and
// Normalize("a", "..b") yields "b".
//
// Normalize fails with *SyntaxError when a fragment contains the reserved
// marker byte, contains an empty segment, carries a relative token anywhere
// but a segment prefix (an odd leftover separator as in "a...c" counts),
// reduces a segment to nothing but pops, pops past the top level, or when
// the whole input resolves to an empty path.
func Normalize(fragments ...string) (string, error) {
	var stack []string

	for _, fragment := range fragments {
		if strings.Contains(fragment, marker) {
			return "", &SyntaxError{Fragment: fragment, Reason: "contains the reserved character " + marker}
		}

		// Rewriting pop tokens to a single reserved byte first means the
		// subsequent split cannot confuse pops with separators.
		for _, segment := range strings.Split(strings.ReplaceAll(fragment, popToken, marker), Separator) {
			if segment == "" {
				return "", &SyntaxError{Fragment: fragment, Reason: "empty path segment"}
			}

			name := strings.TrimLeft(segment, marker)
			switch {
			case strings.Contains(name, marker):
				return "", &SyntaxError{Fragment: fragment, Reason: "relative token is only valid at the start of a segment"}
			case name == "":
				return "", &SyntaxError{Fragment: fragment, Reason: "segment reduces to nothing but relative tokens"}
			}

			for pops := len(segment) - len(name); pops > 0; pops-- {
				if len(stack) == 0 {
					return "", &SyntaxError{Fragment: fragment, Reason: "cannot go up past the top level"}
				}
				stack = stack[:len(stack)-1]
			}
			stack = append(stack, name)
		}
	}

	if len(stack) == 0 {
		return "", &SyntaxError{Reason: "no path fragments given"}
	}
	return strings.Join(stack, Separator), nil
}
