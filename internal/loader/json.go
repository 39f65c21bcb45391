package loader

import (
	"context"
	"fmt"
	"os"

	ctyjson "github.com/zclconf/go-cty/cty/json"

	"github.com/vk/deepkey/internal/ctxlog"
	"github.com/vk/deepkey/internal/ctyconv"
)

// LoadJSON loads a JSON document into a nested mapping through the cty type
// system, so numbers, sequences, and nested objects land in the same shapes
// the HCL loader produces. The document's top level must be an object.
func LoadJSON(ctx context.Context, path string) (map[string]any, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Loading JSON file into nested mapping.", "path", path)

	src, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read JSON file %s: %w", path, err)
	}

	ty, err := ctyjson.ImpliedType(src)
	if err != nil {
		return nil, fmt.Errorf("failed to infer structure of JSON file %s: %w", path, err)
	}
	val, err := ctyjson.Unmarshal(src, ty)
	if err != nil {
		return nil, fmt.Errorf("failed to decode JSON file %s: %w", path, err)
	}

	mapping, err := ctyconv.FromCtyMapping(val)
	if err != nil {
		return nil, fmt.Errorf("JSON file %s: %w", path, err)
	}
	return mapping, nil
}
