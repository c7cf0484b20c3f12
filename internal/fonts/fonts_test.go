package fonts

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func touch(t *testing.T, path string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, nil, 0644))
}

func TestScanDir(t *testing.T) {
	dir := t.TempDir()
	touch(t, filepath.Join(dir, "Inter", "Inter-Bold.ttf"))
	touch(t, filepath.Join(dir, "Inter", "Inter-Regular.TTF"))
	touch(t, filepath.Join(dir, "Mono.otf"))
	touch(t, filepath.Join(dir, "README.md"))

	list, err := ScanDir(dir)
	require.NoError(t, err)
	assert.Equal(t, []string{"Inter/Inter-Bold.ttf", "Inter/Inter-Regular.TTF", "Mono.otf"}, list)

	list, err = ScanDir(filepath.Join(dir, "absent"))
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestFind(t *testing.T) {
	dir := t.TempDir()
	touch(t, filepath.Join(dir, "Inter", "Inter-Bold.ttf"))
	touch(t, filepath.Join(dir, "Inter", "Inter-Regular.ttf"))

	got, err := Find(dir)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "Inter", "Inter-Regular.ttf"), got)

	file := filepath.Join(dir, "Inter", "Inter-Bold.ttf")
	got, err = Find(file)
	require.NoError(t, err)
	assert.Equal(t, file, got)

	touch(t, filepath.Join(dir, "notes.txt"))
	for _, bad := range []string{"", filepath.Join(dir, "absent"), filepath.Join(dir, "notes.txt"), t.TempDir()} {
		_, err := Find(bad)
		assert.ErrorIs(t, err, ErrNoFont, bad)
	}
}
