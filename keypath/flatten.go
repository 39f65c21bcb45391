package keypath

import (
	"cmp"
	"maps"
	"slices"
)

// IndexKey is the metadata entry OrderedKeys consults on child mappings. Its
// reserved-byte prefix keeps it out of reach of canonical paths.
const IndexKey = marker + "index"

// FlattenKeys enumerates every leaf-reachable canonical path in a nested
// mapping; these are exactly the paths Get accepts. A non-mapping root yields
// nil, not an error, and a mapping with no leaves (e.g. only empty child
// mappings) yields no paths.
//
// Sibling keys are visited in sorted order so the result is deterministic;
// callers that care about content rather than presentation should treat the
// result as a set.
func FlattenKeys(root any) []string {
	m, ok := root.(map[string]any)
	if !ok {
		return nil
	}

	var paths []string
	for _, key := range slices.Sorted(maps.Keys(m)) {
		if child, isMapping := m[key].(map[string]any); isMapping {
			for _, sub := range FlattenKeys(child) {
				paths = append(paths, key+Separator+sub)
			}
		} else {
			paths = append(paths, key)
		}
	}
	return paths
}

// OrderedKeys returns the keys of m ordered by the IndexKey entry of their
// child mappings. Keys whose value is not a mapping, or whose mapping has no
// IndexKey, sort first as index -1; ties keep lexical order so the result is
// deterministic.
func OrderedKeys(m map[string]any) []string {
	keys := slices.Sorted(maps.Keys(m))
	slices.SortStableFunc(keys, func(a, b string) int {
		return cmp.Compare(indexOf(m[a]), indexOf(m[b]))
	})
	return keys
}

// indexOf extracts the IndexKey entry from a child mapping, or -1.
func indexOf(v any) int {
	child, ok := v.(map[string]any)
	if !ok {
		return -1
	}
	switch n := child[IndexKey].(type) {
	case int:
		return n
	case float64:
		// Mappings decoded from JSON or HCL carry numbers as float64.
		return int(n)
	default:
		return -1
	}
}
