package metadatacmd

import (
	"io"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v2"

	"github.com/chromatools/agd/internal/testutil"
)

// runMetadata executes the metadata command and captures its stdout.
func runMetadata(t *testing.T, args ...string) (string, error) {
	t.Helper()

	originalStdout := os.Stdout
	r, w, err := os.Pipe()
	require.NoError(t, err)
	os.Stdout = w

	app := &cli.App{
		Name:     "agd",
		Commands: []*cli.Command{MetadataCmd},
		ExitErrHandler: func(context *cli.Context, err error) {
			// Do nothing, let the test assertions handle errors from app.Run()
		},
	}
	runErr := app.Run(append([]string{"agd", "metadata"}, args...))

	require.NoError(t, w.Close())
	os.Stdout = originalStdout

	out, err := io.ReadAll(r)
	require.NoError(t, err)
	return string(out), runErr
}

func TestMetadataCommand_AllDocuments(t *testing.T) {
	df := testutil.WriteDatafile(t, t.TempDir(), "sample.d", testutil.AllMetadataDocs(), nil)

	out, err := runMetadata(t, df)
	require.NoError(t, err)

	assert.Contains(t, out, "Contents")
	assert.Contains(t, out, "Instrument 1")
	assert.Contains(t, out, "Sample info")
	assert.Contains(t, out, "Devices")
	assert.Contains(t, out, "QTOF")
	assert.Contains(t, out, "Default mass calibration")
	assert.Contains(t, out, "Time segments")
	assert.Contains(t, out, "1333 scans total")
	assert.Contains(t, out, "Actuals")
	assert.Contains(t, out, "Acquisition method")
	assert.Contains(t, out, "propellant_1ug.m")
}

func TestMetadataCommand_SingleDocument(t *testing.T) {
	df := testutil.WriteDatafile(t, t.TempDir(), "sample.d", testutil.AllMetadataDocs(), nil)

	out, err := runMetadata(t, "--doc", "time-segments", df)
	require.NoError(t, err)

	assert.Contains(t, out, "Time segments")
	assert.Contains(t, out, "0.047 min -- 14.998 min, 1333 scans")
	assert.NotContains(t, out, "Acquisition method")
}

func TestMetadataCommand_UnknownDocument(t *testing.T) {
	df := testutil.WriteDatafile(t, t.TempDir(), "sample.d", testutil.AllMetadataDocs(), nil)

	_, err := runMetadata(t, "--doc", "bogus", df)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not present")
}

func TestMetadataCommand_AbsentDocument(t *testing.T) {
	docs := map[string]string{"Contents.xml": testutil.ContentsXML}
	df := testutil.WriteDatafile(t, t.TempDir(), "partial.d", docs, nil)

	_, err := runMetadata(t, "--doc", "acq-method", df)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not present")
}

func TestMetadataCommand_NotADatafile(t *testing.T) {
	_, err := runMetadata(t, t.TempDir())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Error extracting metadata")
}
