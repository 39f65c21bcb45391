package fsutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFindFilesByExtension(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "sub"), 0o755))
	for _, name := range []string{"b.hcl", "a.hcl", "notes.txt", filepath.Join("sub", "c.hcl")} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte("x = 1\n"), 0o600))
	}

	files, err := FindFilesByExtension(dir, ".hcl")
	require.NoError(t, err)
	assert.Equal(t, []string{
		filepath.Join(dir, "a.hcl"),
		filepath.Join(dir, "b.hcl"),
		filepath.Join(dir, "sub", "c.hcl"),
	}, files, "results must be sorted and recursive")

	// Extension without the leading dot behaves the same.
	same, err := FindFilesByExtension(dir, "hcl")
	require.NoError(t, err)
	assert.Equal(t, files, same)
}

func TestFindFilesByExtension_SingleFileRoot(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	file := filepath.Join(dir, "only.hcl")
	require.NoError(t, os.WriteFile(file, []byte("x = 1\n"), 0o600))

	files, err := FindFilesByExtension(file, ".hcl")
	require.NoError(t, err)
	assert.Equal(t, []string{file}, files)
}

func TestFindFilesByExtension_MissingRoot(t *testing.T) {
	t.Parallel()

	_, err := FindFilesByExtension(filepath.Join(t.TempDir(), "missing"), ".hcl")
	assert.Error(t, err)
}
