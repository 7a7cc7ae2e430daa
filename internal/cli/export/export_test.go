package export

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v2"

	"github.com/chromatools/agd/internal/testutil"
)

// runExport executes the export command and captures its stdout.
func runExport(t *testing.T, args ...string) (string, error) {
	t.Helper()

	originalStdout := os.Stdout
	r, w, err := os.Pipe()
	require.NoError(t, err)
	os.Stdout = w

	app := &cli.App{
		Name:     "agd",
		Commands: []*cli.Command{ExportCmd},
		ExitErrHandler: func(context *cli.Context, err error) {
			// Do nothing, let the test assertions handle errors from app.Run()
		},
	}
	runErr := app.Run(append([]string{"agd", "export"}, args...))

	require.NoError(t, w.Close())
	os.Stdout = originalStdout

	out, err := io.ReadAll(r)
	require.NoError(t, err)
	return string(out), runErr
}

func writeFixture(t *testing.T) string {
	t.Helper()
	scans := []testutil.FixtureScan{
		{RetentionTime: 0.125, Masses: []float64{40.0, 55.5}, Intensities: []float64{100, 250.5}},
		{RetentionTime: 0.25, Masses: []float64{41.0}, Intensities: []float64{300}},
	}
	return testutil.WriteDatafile(t, t.TempDir(), "sample.d", testutil.AllMetadataDocs(), scans)
}

func TestExportCommand(t *testing.T) {
	df := writeFixture(t)
	base := filepath.Join(t.TempDir(), "out", "sample")

	out, err := runExport(t, "--output", base, df)
	require.NoError(t, err)
	assert.Contains(t, out, "sample.I.csv")
	assert.Contains(t, out, "sample.mz.csv")

	assert.FileExists(t, base+".I.csv")
	assert.FileExists(t, base+".mz.csv")
	assert.NoFileExists(t, base+".dat")
}

func TestExportCommand_WithStream(t *testing.T) {
	df := writeFixture(t)
	base := filepath.Join(t.TempDir(), "out", "sample")

	out, err := runExport(t, "--output", base, "--stream", df)
	require.NoError(t, err)
	assert.Contains(t, out, "sample.dat")
	assert.FileExists(t, base+".dat")
}

func TestExportCommand_MissingArgument(t *testing.T) {
	_, err := runExport(t)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "argument is required")
}

func TestExportCommand_NotADatafile(t *testing.T) {
	_, err := runExport(t, t.TempDir())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Error reading")
}
