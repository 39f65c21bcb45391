package keypath

import "strings"

// Get resolves a canonical dot-separated path against a nested mapping and
// returns the value it addresses, so Get(m, "foo.bar.baz") is
// m["foo"]["bar"]["baz"]. Every intermediate value along the path must itself
// be a nested mapping.
//
// A missing key, or a non-mapping value reached before the final segment,
// fails with *NotFoundError carrying the requested path and every canonical
// path reachable from root. Get is read-only and idempotent.
func Get(root map[string]any, path string) (any, error) {
	var current any = root
	for _, segment := range strings.Split(path, Separator) {
		m, ok := current.(map[string]any)
		if !ok {
			return nil, &NotFoundError{Path: path, Valid: FlattenKeys(root)}
		}
		if current, ok = m[segment]; !ok {
			return nil, &NotFoundError{Path: path, Valid: FlattenKeys(root)}
		}
	}
	return current, nil
}
