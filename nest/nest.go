package nest

import (
	"iter"
	"reflect"
)

// Flatten returns the depth-first, left-to-right sequence of leaf values in
// container. The sequence is lazy and restartable: every range over it walks
// the container afresh with its own traversal state, so independent loops
// (including concurrent ones) never interfere.
func Flatten(container []any) iter.Seq[any] {
	return func(yield func(any) bool) {
		// One frame per open sequence: the sequence itself and the next
		// element position within it.
		type frame struct {
			seq reflect.Value
			pos int
		}

		stack := []frame{{seq: reflect.ValueOf(container)}}
		for len(stack) > 0 {
			top := &stack[len(stack)-1]
			if top.pos >= top.seq.Len() {
				stack = stack[:len(stack)-1]
				continue
			}

			elem := element(top.seq, top.pos)
			top.pos++

			if isSequence(elem) {
				stack = append(stack, frame{seq: elem})
				continue
			}
			if !yield(leafValue(elem)) {
				return
			}
		}
	}
}

// ToNestedIndices returns a structure shaped exactly like container with
// every leaf replaced by its 0-based position in Flatten's traversal order,
// so Flatten(ToNestedIndices(c)) yields 0, 1, ..., N-1 for a container with
// N leaves. The running counter lives for one call only and is never shared.
func ToNestedIndices(container []any) []any {
	next := 0
	return nestedIndices(reflect.ValueOf(container), &next)
}

func nestedIndices(seq reflect.Value, next *int) []any {
	out := make([]any, 0, seq.Len())
	for i := 0; i < seq.Len(); i++ {
		if elem := element(seq, i); isSequence(elem) {
			out = append(out, nestedIndices(elem, next))
		} else {
			out = append(out, *next)
			*next++
		}
	}
	return out
}

// element returns the i-th element of a sequence value, unwrapped from its
// interface box so sequence-typed elements are recognized as such.
func element(seq reflect.Value, i int) reflect.Value {
	elem := seq.Index(i)
	if elem.Kind() == reflect.Interface {
		elem = elem.Elem()
	}
	return elem
}

// isSequence is the single leaf-versus-sequence classification shared by
// Flatten and ToNestedIndices. Any slice or array counts as a sequence,
// except byte slices, which stay opaque leaf blobs.
func isSequence(v reflect.Value) bool {
	switch v.Kind() {
	case reflect.Slice, reflect.Array:
		return v.Type().Elem().Kind() != reflect.Uint8
	default:
		return false
	}
}

// leafValue unboxes a leaf, mapping the invalid value (a nil interface
// element) back to nil.
func leafValue(v reflect.Value) any {
	if !v.IsValid() {
		return nil
	}
	return v.Interface()
}
