// Package loader turns files on disk into the nested mappings the keypath
// package addresses. A Registry maps file extensions to format-specific
// load functions; it is populated by explicit Register calls during
// application startup, never by discovery.
package loader

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"dario.cat/mergo"

	"github.com/vk/deepkey/internal/ctxlog"
	"github.com/vk/deepkey/internal/fsutil"
)

// Func loads a single file into a nested mapping.
type Func func(ctx context.Context, path string) (map[string]any, error)

// Registry maps file extensions (with leading dot) to load functions.
type Registry struct {
	byExt map[string]Func
}

// NewRegistry returns an empty Registry.
func NewRegistry() *Registry {
	return &Registry{byExt: make(map[string]Func)}
}

// Register binds a file extension to a load function. It panics when the
// extension is already registered: double registration is a programmer error.
func (r *Registry) Register(ext string, fn Func) {
	if !strings.HasPrefix(ext, ".") {
		ext = "." + ext
	}
	if _, exists := r.byExt[ext]; exists {
		panic(fmt.Sprintf("loader for extension %q already registered", ext))
	}
	r.byExt[ext] = fn
}

// ForFile returns the load function registered for the file's extension.
func (r *Registry) ForFile(path string) (Func, bool) {
	for ext, fn := range r.byExt {
		if strings.HasSuffix(path, ext) {
			return fn, true
		}
	}
	return nil, false
}

// LoadAll loads every registered-format file at or under root and
// deep-merges the resulting mappings into one. Files are visited in sorted
// path order, later files overriding earlier ones, so the merge is
// deterministic. A root with no matching files is an error: there is nothing
// to address.
func (r *Registry) LoadAll(ctx context.Context, root string) (map[string]any, error) {
	logger := ctxlog.FromContext(ctx)

	var files []string
	for ext := range r.byExt {
		found, err := fsutil.FindFilesByExtension(root, ext)
		if err != nil {
			return nil, fmt.Errorf("failed to find %s files in %s: %w", ext, root, err)
		}
		files = append(files, found...)
	}
	sort.Strings(files)

	if len(files) == 0 {
		return nil, fmt.Errorf("no loadable files found at %s", root)
	}
	logger.Debug("Found files to load.", "count", len(files), "root", root)

	merged := make(map[string]any)
	for _, file := range files {
		fn, ok := r.ForFile(file)
		if !ok {
			// Unreachable: files were discovered by registered extension.
			continue
		}
		mapping, err := fn(ctx, file)
		if err != nil {
			return nil, err
		}
		if err := mergo.Merge(&merged, mapping, mergo.WithOverride); err != nil {
			return nil, fmt.Errorf("failed to merge %s: %w", file, err)
		}
		logger.Debug("Loaded and merged file.", "file", file)
	}

	return merged, nil
}
