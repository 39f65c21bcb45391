// Package hclmap loads HCL documents into the nested mappings the keypath
// package addresses. Top-level attributes become keys; blocks nest under
// their type and labels, so `step "print" "hello" { ... }` lands at the
// canonical path `step.print.hello`.
package hclmap

import (
	"context"
	"fmt"

	"dario.cat/mergo"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/hashicorp/hcl/v2/hclsyntax"

	"github.com/vk/deepkey/internal/ctxlog"
	"github.com/vk/deepkey/internal/ctyconv"
)

// Load parses a single HCL file into a nested mapping. Expressions are
// evaluated without a context, so only literal values are supported;
// references and functions are a configuration error here, not a feature.
func Load(ctx context.Context, path string) (map[string]any, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Loading HCL file into nested mapping.", "path", path)

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(path)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file %s: %w", path, diags)
	}

	body, ok := file.Body.(*hclsyntax.Body)
	if !ok {
		return nil, fmt.Errorf("unexpected body type in HCL file %s", path)
	}

	mapping, err := fromBody(body)
	if err != nil {
		return nil, fmt.Errorf("failed to translate HCL file %s: %w", path, err)
	}
	return mapping, nil
}

// fromBody translates one HCL body into a nested mapping, recursing into
// blocks.
func fromBody(body *hclsyntax.Body) (map[string]any, error) {
	mapping := make(map[string]any)

	for name, attr := range body.Attributes {
		val, diags := attr.Expr.Value(nil)
		if diags.HasErrors() {
			return nil, fmt.Errorf("failed to evaluate attribute %q: %w", name, diags)
		}
		native, err := ctyconv.FromCty(val)
		if err != nil {
			return nil, fmt.Errorf("attribute %q: %w", name, err)
		}
		mapping[name] = native
	}

	for _, block := range body.Blocks {
		child, err := fromBody(block.Body)
		if err != nil {
			return nil, fmt.Errorf("block %q: %w", block.Type, err)
		}
		if err := graft(mapping, append([]string{block.Type}, block.Labels...), child); err != nil {
			return nil, fmt.Errorf("block %q: %w", block.Type, err)
		}
	}

	return mapping, nil
}

// graft attaches child under the key chain keys, creating intermediate
// mappings as needed and deep-merging when two blocks share a chain.
func graft(mapping map[string]any, keys []string, child map[string]any) error {
	for _, key := range keys[:len(keys)-1] {
		next, ok := mapping[key].(map[string]any)
		if !ok {
			if _, taken := mapping[key]; taken {
				return fmt.Errorf("key %q holds both a value and nested blocks", key)
			}
			next = make(map[string]any)
			mapping[key] = next
		}
		mapping = next
	}

	leaf := keys[len(keys)-1]
	existing, ok := mapping[leaf].(map[string]any)
	if !ok {
		if _, taken := mapping[leaf]; taken {
			return fmt.Errorf("key %q holds both a value and nested blocks", leaf)
		}
		mapping[leaf] = child
		return nil
	}

	if err := mergo.Merge(&existing, child, mergo.WithOverride); err != nil {
		return fmt.Errorf("merging duplicate blocks at %q: %w", leaf, err)
	}
	mapping[leaf] = existing
	return nil
}
