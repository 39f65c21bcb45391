/*
Package nest linearizes arbitrarily nested sequences.

A nested sequence is a []any whose elements are either leaves or further
sequences of any depth, e.g. []any{[]any{1, 2}, []any{3, []any{4, 5}}, 6}.
Flatten visits the leaves depth-first and left-to-right, and ToNestedIndices
replaces each leaf with its position in that traversal, preserving the shape.
The two share one classification of leaf versus sequence, so their orders
always agree: flattening ToNestedIndices output counts 0, 1, ..., N-1.

Inputs must be finite and acyclic; there is no cycle guard.
*/
package nest
