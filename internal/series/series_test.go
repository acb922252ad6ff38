package series

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func touch(t *testing.T, dir, name string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte("x"), 0o644))
}

func TestNewResolverMissingDir(t *testing.T) {
	_, err := NewResolver(filepath.Join(t.TempDir(), "nope"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestNewResolverNotADirectory(t *testing.T) {
	dir := t.TempDir()
	touch(t, dir, "file")
	_, err := NewResolver(filepath.Join(dir, "file"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not a directory")
}

func TestNextNumberEmptyDir(t *testing.T) {
	r, err := NewResolver(t.TempDir())
	require.NoError(t, err)

	n, err := r.NextNumber("acme-bob", 1)
	require.NoError(t, err)
	assert.Equal(t, uint64(1), n)
}

func TestNextNumberCountsSlugMatches(t *testing.T) {
	dir := t.TempDir()
	touch(t, dir, "acme-bob-ACM_1--2025-01-02.html")
	touch(t, dir, "acme-bob-ACM_2--2025-02-03.html")
	touch(t, dir, "acme-bob-ACM_3--2025-03-04.html")
	touch(t, dir, "other-client-OTH_1--2025-03-04.html")
	touch(t, dir, ".fakturo-log.csv")

	r, err := NewResolver(dir)
	require.NoError(t, err)

	n, err := r.NextNumber("acme-bob", 1)
	require.NoError(t, err)
	assert.Equal(t, uint64(4), n)

	n, err = r.NextNumber("acme-bob", 100)
	require.NoError(t, err)
	assert.Equal(t, uint64(103), n)
}

func TestWrite(t *testing.T) {
	dir := t.TempDir()
	r, err := NewResolver(dir)
	require.NoError(t, err)

	path, err := r.Write("acme-bob-ACM_1--2025-01-02.html", []byte("<html>"))
	require.NoError(t, err)
	assert.True(t, filepath.IsAbs(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "<html>", string(data))
}

func TestWriteCollision(t *testing.T) {
	dir := t.TempDir()
	touch(t, dir, "acme-bob-ACM_1--2025-01-02.html")

	r, err := NewResolver(dir)
	require.NoError(t, err)

	_, err = r.Write("acme-bob-ACM_1--2025-01-02.html", []byte("new content"))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrDocumentExists)

	// The original document must be untouched.
	data, err := os.ReadFile(filepath.Join(dir, "acme-bob-ACM_1--2025-01-02.html"))
	require.NoError(t, err)
	assert.Equal(t, "x", string(data))
}

func TestIssued(t *testing.T) {
	dir := t.TempDir()
	touch(t, dir, "acme-bob-ACM_2--2025-02-03.html")
	touch(t, dir, "acme-bob-ACM_1--2025-01-02.html")
	touch(t, dir, "other-client-OTH_1--2025-03-04.html")
	touch(t, dir, ".fakturo-log.csv")
	require.NoError(t, os.Mkdir(filepath.Join(dir, "acme-bob-subdir"), 0o755))

	r, err := NewResolver(dir)
	require.NoError(t, err)

	all, err := r.Issued("")
	require.NoError(t, err)
	assert.Equal(t, []string{
		"acme-bob-ACM_1--2025-01-02.html",
		"acme-bob-ACM_2--2025-02-03.html",
		"other-client-OTH_1--2025-03-04.html",
	}, all)

	filtered, err := r.Issued("acme-bob")
	require.NoError(t, err)
	assert.Len(t, filtered, 2)
}
