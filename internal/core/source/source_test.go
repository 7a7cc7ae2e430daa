// Package source_test contains tests for manifest source resolution.
package source_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chromatools/agd/internal/core/source"
)

func TestResolve_LocalPath(t *testing.T) {
	t.Parallel()

	loc, err := source.Resolve("some/dir/package.toml")
	require.NoError(t, err)
	assert.False(t, loc.IsRemote())
	assert.Equal(t, "some/dir/package.toml", loc.Path)
}

func TestResolve_DirectURL(t *testing.T) {
	t.Parallel()

	loc, err := source.Resolve("https://example.com/pkg/package.toml")
	require.NoError(t, err)
	assert.True(t, loc.IsRemote())
	assert.Equal(t, "https://example.com/pkg/package.toml", loc.RawURL)
}

func TestResolve_GitHubShorthand(t *testing.T) {
	t.Parallel()

	loc, err := source.Resolve("github:owner/repo/pkg/package.toml@main")
	require.NoError(t, err)
	assert.True(t, loc.IsRemote())
	assert.Equal(t, "https://raw.githubusercontent.com/owner/repo/main/pkg/package.toml", loc.RawURL)
}

func TestResolve_GitHubShorthand_BaseURLOverride(t *testing.T) {
	restore := source.SetRawContentBaseURL("http://127.0.0.1:9999")
	defer restore()

	loc, err := source.Resolve("github:owner/repo/package.toml@v1.2.3")
	require.NoError(t, err)
	assert.Equal(t, "http://127.0.0.1:9999/owner/repo/v1.2.3/package.toml", loc.RawURL)
}

func TestResolve_GitHubShorthand_Invalid(t *testing.T) {
	t.Parallel()

	cases := []string{
		"github:owner/repo/package.toml",  // missing @ref
		"github:owner/repo/package.toml@", // empty ref
		"github:owner/repo@main",          // missing path
		"github://repo/file@main",         // empty owner
	}
	for _, ref := range cases {
		_, err := source.Resolve(ref)
		assert.Error(t, err, "expected error for %q", ref)
	}
}
