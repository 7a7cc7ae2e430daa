package validate

import (
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v2"

	"github.com/chromatools/agd/internal/core/source"
)

const minimalManifest = `
[package]
name = "pyms-agilent"
version = "0.1.1"

[[package.authors]]
name = "A. Author"
email = "a@example.com"
`

const brokenManifest = `
[package]
name = ""
version = "not-a-version"
`

// runValidate executes the validate command and captures its stdout.
func runValidate(t *testing.T, args ...string) (string, error) {
	t.Helper()

	originalStdout := os.Stdout
	r, w, err := os.Pipe()
	require.NoError(t, err)
	os.Stdout = w

	app := &cli.App{
		Name:     "agd",
		Commands: []*cli.Command{ValidateCmd},
		ExitErrHandler: func(context *cli.Context, err error) {
			// Do nothing, let the test assertions handle errors from app.Run()
		},
	}
	runErr := app.Run(append([]string{"agd", "validate"}, args...))

	require.NoError(t, w.Close())
	os.Stdout = originalStdout

	out, err := io.ReadAll(r)
	require.NoError(t, err)
	return string(out), runErr
}

func TestValidateCommand_LocalOK(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "package.toml")
	require.NoError(t, os.WriteFile(path, []byte(minimalManifest), 0o600))

	out, err := runValidate(t, path)
	require.NoError(t, err)
	assert.Contains(t, out, "OK")
	assert.Contains(t, out, "pyms-agilent 0.1.1")
}

func TestValidateCommand_LocalInvalid(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "package.toml")
	require.NoError(t, os.WriteFile(path, []byte(brokenManifest), 0o600))

	out, err := runValidate(t, path)
	require.Error(t, err)
	assert.Contains(t, out, "INVALID")
	assert.Contains(t, out, "package name must not be empty")
	assert.Contains(t, out, "not a valid version")
}

func TestValidateCommand_MissingArgument(t *testing.T) {
	_, err := runValidate(t)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "argument is required")
}

func TestValidateCommand_MissingFile(t *testing.T) {
	_, err := runValidate(t, filepath.Join(t.TempDir(), "nope.toml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Error loading manifest")
}

func TestValidateCommand_RemoteURL(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, minimalManifest)
	}))
	defer server.Close()

	out, err := runValidate(t, server.URL+"/package.toml")
	require.NoError(t, err)
	assert.Contains(t, out, "OK")
}

func TestValidateCommand_GitHubShorthand(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/owner/repo/main/package.toml", r.URL.Path)
		fmt.Fprint(w, minimalManifest)
	}))
	defer server.Close()

	restore := source.SetRawContentBaseURL(server.URL)
	defer restore()

	out, err := runValidate(t, "github:owner/repo/package.toml@main")
	require.NoError(t, err)
	assert.Contains(t, out, "OK")
}

func TestValidateCommand_RemoteDownloadError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(http.NotFound))
	defer server.Close()

	_, err := runValidate(t, server.URL+"/package.toml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Error downloading manifest")
}
