// Package ctyconv converts between cty values and the native nested
// mappings ([]any / map[string]any trees) the keypath and nest packages
// operate on. It is the bridge between configuration loaded through the cty
// type system and the addressing core.
package ctyconv

import (
	"fmt"

	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/gocty"
)

// FromCty recursively converts a cty.Value to its most natural Go
// counterpart: objects and maps become map[string]any, lists, sets, and
// tuples become []any, and scalars become string, float64, or bool. Null and
// unknown values become nil.
func FromCty(v cty.Value) (any, error) {
	if v.IsNull() || !v.IsKnown() {
		return nil, nil
	}

	ty := v.Type()
	switch {
	case ty == cty.String:
		return v.AsString(), nil

	case ty == cty.Number:
		// float64 is the common representation for an untyped number.
		var f float64
		if err := gocty.FromCtyValue(v, &f); err != nil {
			return nil, fmt.Errorf("could not convert cty.Number to float64: %w", err)
		}
		return f, nil

	case ty == cty.Bool:
		return v.True(), nil

	case ty.IsListType() || ty.IsSetType() || ty.IsTupleType():
		seq := make([]any, 0, v.LengthInt())
		for it := v.ElementIterator(); it.Next(); {
			_, elem := it.Element()
			native, err := FromCty(elem)
			if err != nil {
				return nil, err
			}
			seq = append(seq, native)
		}
		return seq, nil

	case ty.IsObjectType() || ty.IsMapType():
		mapping := make(map[string]any)
		for it := v.ElementIterator(); it.Next(); {
			key, elem := it.Element()
			native, err := FromCty(elem)
			if err != nil {
				return nil, fmt.Errorf("in attribute %q: %w", key.AsString(), err)
			}
			mapping[key.AsString()] = native
		}
		return mapping, nil

	default:
		return nil, fmt.Errorf("unsupported cty type %s", ty.FriendlyName())
	}
}

// FromCtyMapping converts a cty object or map value into a nested mapping,
// failing when the value is anything else.
func FromCtyMapping(v cty.Value) (map[string]any, error) {
	native, err := FromCty(v)
	if err != nil {
		return nil, err
	}
	mapping, ok := native.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("expected a mapping at the top level, got %s", v.Type().FriendlyName())
	}
	return mapping, nil
}

// ToCty converts a native Go value into its corresponding cty.Value.
func ToCty(v any) (cty.Value, error) {
	if v == nil {
		return cty.NilVal, nil
	}
	ty, err := gocty.ImpliedType(v)
	if err != nil {
		return cty.NilVal, fmt.Errorf("unable to infer cty.Type: %w", err)
	}
	return gocty.ToCtyValue(v, ty)
}
