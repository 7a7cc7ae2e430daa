// Package hasher_test contains tests for the hasher package.
package hasher_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chromatools/agd/internal/core/hasher"
)

func TestCalculateSHA256(t *testing.T) {
	t.Parallel()

	hash, err := hasher.CalculateSHA256([]byte("hello world"))
	require.NoError(t, err)
	assert.Equal(t, "sha256:b94d27b9934d3e08a52e52d7da7dabfac484efe37a5380ee9088f7ace2efcde9", hash)
}

func TestCalculateSHA256_Empty(t *testing.T) {
	t.Parallel()

	hash, err := hasher.CalculateSHA256(nil)
	require.NoError(t, err)
	assert.Equal(t, "sha256:e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855", hash)
}

func TestHashFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "mhdac.zip")
	require.NoError(t, os.WriteFile(path, []byte("hello world"), 0o600))

	hash, err := hasher.HashFile(path)
	require.NoError(t, err)
	assert.Equal(t, "sha256:b94d27b9934d3e08a52e52d7da7dabfac484efe37a5380ee9088f7ace2efcde9", hash)
}

func TestHashFile_Missing(t *testing.T) {
	t.Parallel()

	_, err := hasher.HashFile(filepath.Join(t.TempDir(), "nope.zip"))
	assert.Error(t, err)
}
