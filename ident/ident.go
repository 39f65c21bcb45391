// Package ident validates the identifier-like names used as path segments
// and node names. The set of reserved names is a closed, explicitly
// populated registry: callers claim additional names with Reserve during
// startup wiring, never by runtime discovery.
package ident

import (
	"fmt"
	"regexp"
)

// namePattern matches identifier-like tokens: a letter or underscore
// followed by letters, digits, or underscores.
var namePattern = regexp.MustCompile(`^[_a-zA-Z][_a-zA-Z0-9]*$`)

// reserved holds names that are never valid identifiers because the
// surrounding system claims them for its own dispatch.
var reserved = map[string]struct{}{
	"default":  {},
	"fallback": {},
}

// Reserve adds a name to the reserved set. It panics when the name is
// already reserved: double registration is a programmer error. Reserve is
// meant for startup wiring and must not race with IsValidName.
func Reserve(name string) {
	if _, exists := reserved[name]; exists {
		panic(fmt.Sprintf("name %q already reserved", name))
	}
	reserved[name] = struct{}{}
}

// IsValidName reports whether s is an identifier-like token that is not
// reserved.
func IsValidName(s string) bool {
	if _, bad := reserved[s]; bad {
		return false
	}
	return namePattern.MatchString(s)
}
