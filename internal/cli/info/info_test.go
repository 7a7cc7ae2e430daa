package info

import (
	"io"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v2"

	"github.com/chromatools/agd/internal/testutil"
)

// runInfo executes the info command and captures its stdout.
func runInfo(t *testing.T, args ...string) (string, error) {
	t.Helper()

	originalStdout := os.Stdout
	r, w, err := os.Pipe()
	require.NoError(t, err)
	os.Stdout = w

	app := &cli.App{
		Name:     "agd",
		Commands: []*cli.Command{InfoCmd},
		ExitErrHandler: func(context *cli.Context, err error) {
			// Do nothing, let the test assertions handle errors from app.Run()
		},
	}
	runErr := app.Run(append([]string{"agd", "info"}, args...))

	require.NoError(t, w.Close())
	os.Stdout = originalStdout

	out, err := io.ReadAll(r)
	require.NoError(t, err)
	return string(out), runErr
}

func TestInfoCommand(t *testing.T) {
	scans := []testutil.FixtureScan{
		{RetentionTime: 0.125, Masses: []float64{40.0, 55.5}, Intensities: []float64{100, 250.5}},
		{RetentionTime: 0.25, Masses: []float64{41.0, 999.0}, Intensities: []float64{300, 12}},
	}
	df := testutil.WriteDatafile(t, t.TempDir(), "sample.d", testutil.AllMetadataDocs(), scans)

	out, err := runInfo(t, df)
	require.NoError(t, err)

	assert.Contains(t, out, "Sample: Propellant Std 1ug")
	assert.Contains(t, out, "Instrument: Instrument 1")
	assert.Contains(t, out, "Method: propellant_1ug.m")
	assert.Contains(t, out, " Number of scans: 2")
	assert.Contains(t, out, " Minimum m/z measured: 40.000")
	assert.Contains(t, out, " Maximum m/z measured: 999.000")
}

func TestInfoCommand_MissingArgument(t *testing.T) {
	_, err := runInfo(t)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "argument is required")
}

func TestInfoCommand_NotADatafile(t *testing.T) {
	_, err := runInfo(t, t.TempDir())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Error reading")
}
