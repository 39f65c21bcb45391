package loader

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vk/deepkey/internal/hclmap"
)

func newTestRegistry() *Registry {
	r := NewRegistry()
	r.Register(".hcl", hclmap.Load)
	r.Register(".json", LoadJSON)
	return r
}

func TestRegistry_Register(t *testing.T) {
	t.Parallel()

	r := NewRegistry()
	r.Register(".hcl", hclmap.Load)

	assert.Panics(t, func() { r.Register(".hcl", hclmap.Load) },
		"double registration is a programmer error")
	assert.Panics(t, func() { r.Register("hcl", hclmap.Load) },
		"the leading dot is normalized before the duplicate check")

	fn, ok := r.ForFile("some/dir/config.hcl")
	require.True(t, ok)
	require.NotNil(t, fn)

	_, ok = r.ForFile("some/dir/config.yaml")
	assert.False(t, ok)
}

func TestLoadJSON(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "log.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"training": {"epoch": 3, "tags": ["a", "b"]}}`), 0o600))

	mapping, err := LoadJSON(context.Background(), path)
	require.NoError(t, err)
	assert.Equal(t, map[string]any{
		"training": map[string]any{
			"epoch": float64(3),
			"tags":  []any{"a", "b"},
		},
	}, mapping)
}

func TestLoadJSON_TopLevelNotObject(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "log.json")
	require.NoError(t, os.WriteFile(path, []byte(`[1, 2, 3]`), 0o600))

	_, err := LoadJSON(context.Background(), path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "expected a mapping")
}

func TestLoadAll_MergesFormats(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "01_base.hcl"), []byte(`
training {
  epoch = 3
  rate  = 0.1
}
`), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "02_override.json"), []byte(`
{"training": {"rate": 0.5}, "run": "second"}
`), 0o600))

	mapping, err := newTestRegistry().LoadAll(context.Background(), dir)
	require.NoError(t, err)
	assert.Equal(t, map[string]any{
		"training": map[string]any{
			"epoch": float64(3),
			"rate":  0.5,
		},
		"run": "second",
	}, mapping)
}

func TestLoadAll_NoFiles(t *testing.T) {
	t.Parallel()

	_, err := newTestRegistry().LoadAll(context.Background(), t.TempDir())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no loadable files")
}
