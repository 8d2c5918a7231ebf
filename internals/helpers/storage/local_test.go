package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSanitizeBase(t *testing.T) {
	assert.Equal(t, "abc-123_x.y", SanitizeBase("abc-123_x.y"))
	assert.Equal(t, "a_b", SanitizeBase("a b"))
	assert.Equal(t, "a_b", SanitizeBase("a/../b"))
	assert.Equal(t, "file", SanitizeBase("   "))
	assert.Equal(t, "file", SanitizeBase("../.."))
}

func TestAllocate_SequentialNamesAreDistinct(t *testing.T) {
	dir := t.TempDir()

	seen := map[string]bool{}
	for i := 0; i < 5; i++ {
		name, f, err := Allocate(dir, "voucher", "png")
		require.NoError(t, err)
		require.NotNil(t, f)
		require.NoError(t, f.Close())

		assert.False(t, seen[name], "name %q returned twice", name)
		seen[name] = true

		_, err = os.Stat(filepath.Join(dir, name))
		assert.NoError(t, err, "allocated file must exist")
	}

	assert.True(t, seen["voucher.png"])
	assert.True(t, seen["voucher-1.png"])
	assert.True(t, seen["voucher-4.png"])
}

func TestAllocate_CreatesMissingDirs(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "a", "b", "c")

	name, f, err := Allocate(dir, "cert", "pdf")
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, "cert.pdf", name)
	_, err = os.Stat(filepath.Join(dir, name))
	assert.NoError(t, err)
}

func TestAllocate_NoExtension(t *testing.T) {
	dir := t.TempDir()

	name, f, err := Allocate(dir, "blob", "")
	require.NoError(t, err)
	defer f.Close()
	assert.Equal(t, "blob", name)

	name2, f2, err := Allocate(dir, "blob", "")
	require.NoError(t, err)
	defer f2.Close()
	assert.Equal(t, "blob-1", name2)
}
