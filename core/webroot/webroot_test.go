package webroot_test

import (
	"os"
	"path/filepath"
	"testing"

	"siteserve/core/webroot"

	"github.com/stretchr/testify/assert"
)

func TestResolveFrom(t *testing.T) {
	t.Run("Exists", func(t *testing.T) {
		base := t.TempDir()
		dir := filepath.Join(base, webroot.DirName)
		assert.NoError(t, os.Mkdir(dir, 0o755))

		got, err := webroot.ResolveFrom(base)
		assert.NoError(t, err)
		assert.Equal(t, dir, got)
	})

	t.Run("Missing", func(t *testing.T) {
		base := t.TempDir()

		_, err := webroot.ResolveFrom(base)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "public/ directory not found")
	})

	t.Run("NotADirectory", func(t *testing.T) {
		base := t.TempDir()
		assert.NoError(t, os.WriteFile(filepath.Join(base, webroot.DirName), []byte("file"), 0o644))

		_, err := webroot.ResolveFrom(base)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "not a directory")
	})
}

func TestEnsure_ReturnsAbsolutePath(t *testing.T) {
	base := t.TempDir()
	dir := filepath.Join(base, "site")
	assert.NoError(t, os.Mkdir(dir, 0o755))

	got, err := webroot.Ensure(dir)
	assert.NoError(t, err)
	assert.True(t, filepath.IsAbs(got))
	assert.Equal(t, dir, got)
}

func TestInspect(t *testing.T) {
	dir := t.TempDir()
	assert.NoError(t, os.WriteFile(filepath.Join(dir, "index.html"), []byte("<html></html>"), 0o644))
	assert.NoError(t, os.MkdirAll(filepath.Join(dir, "js"), 0o755))
	assert.NoError(t, os.WriteFile(filepath.Join(dir, "js", "app.js"), []byte("let x=1"), 0o644))

	report, err := webroot.Inspect(dir)
	assert.NoError(t, err)
	assert.Equal(t, 2, report.Files)
	assert.Equal(t, 1, report.Dirs)
	assert.Equal(t, int64(len("<html></html>")+len("let x=1")), report.Bytes)
	assert.True(t, report.HasIndex)
}

func TestInspect_NestedIndexDoesNotCount(t *testing.T) {
	dir := t.TempDir()
	assert.NoError(t, os.MkdirAll(filepath.Join(dir, "docs"), 0o755))
	assert.NoError(t, os.WriteFile(filepath.Join(dir, "docs", "index.html"), []byte("x"), 0o644))

	report, err := webroot.Inspect(dir)
	assert.NoError(t, err)
	assert.False(t, report.HasIndex)
}
