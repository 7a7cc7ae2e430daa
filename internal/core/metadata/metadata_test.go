// Package metadata_test contains tests for the XML document parsers.
package metadata_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chromatools/agd/internal/core/enums"
	"github.com/chromatools/agd/internal/core/metadata"
	"github.com/chromatools/agd/internal/testutil"
)

func TestParseContents(t *testing.T) {
	t.Parallel()

	path := testutil.WriteTestFile(t, t.TempDir(), "Contents.xml", testutil.ContentsXML)

	c, err := metadata.ParseContents(path)
	require.NoError(t, err)

	assert.Equal(t, 2, c.Version)
	assert.Equal(t, "End", c.AcqStatus)
	assert.Equal(t, "Instrument 1", c.InstrumentName)
	assert.False(t, c.LockedMode)
	assert.Equal(t, "B.08.00", c.AcqSoftwareVersion)

	expected := time.Date(2020, 1, 24, 11, 2, 10, 500_000_000, time.FixedZone("", -5*3600))
	assert.True(t, c.AcquiredTime.Equal(expected), "acquired time mismatch: %s", c.AcquiredTime)
}

func TestParseContents_BadTimestamp(t *testing.T) {
	t.Parallel()

	content := `<Contents><Version>1</Version><AcquiredTime>yesterday</AcquiredTime></Contents>`
	path := testutil.WriteTestFile(t, t.TempDir(), "Contents.xml", content)

	_, err := metadata.ParseContents(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid timestamp")
}

func TestParseSampleInfo(t *testing.T) {
	t.Parallel()

	path := testutil.WriteTestFile(t, t.TempDir(), "sample_info.xml", testutil.SampleInfoXML)

	s, err := metadata.ParseSampleInfo(path)
	require.NoError(t, err)

	assert.Equal(t, 1, s.Version)
	require.Len(t, s.Fields, 2)

	field, ok := s.Field("Sample Name")
	require.True(t, ok)
	assert.Equal(t, "Propellant Std 1ug", field.Value)
	assert.Equal(t, "Sample", field.FieldType)
	assert.False(t, field.Overridden)

	_, ok = s.Field("No Such Field")
	assert.False(t, ok)
}

func TestParseDevices(t *testing.T) {
	t.Parallel()

	path := testutil.WriteTestFile(t, t.TempDir(), "Devices.xml", testutil.DevicesXML)

	l, err := metadata.ParseDevices(path)
	require.NoError(t, err)

	assert.Equal(t, 1, l.Version)
	require.Len(t, l.Devices, 2)

	qtof, ok := l.DeviceByID(1)
	require.True(t, ok)
	assert.Equal(t, "QTOF", qtof.DisplayName)
	assert.Equal(t, "G6530B", qtof.ModelNumber)
	assert.Equal(t, enums.DeviceTypeQuadrupoleTOFLCMS, qtof.Type)
	assert.Equal(t, enums.StoredDataSpectra|enums.StoredDataMassSpectra, qtof.StoredDataType)

	sampler, ok := l.DeviceByID(2)
	require.True(t, ok)
	assert.Equal(t, enums.DeviceTypeAutosampler, sampler.Type)
	assert.Equal(t, enums.StoredDataNone, sampler.StoredDataType)

	_, ok = l.DeviceByID(42)
	assert.False(t, ok)
}

func TestParseDeviceConfigInfo(t *testing.T) {
	t.Parallel()

	path := testutil.WriteTestFile(t, t.TempDir(), "DeviceConfigInfo.xml", testutil.DeviceConfigInfoXML)

	info, err := metadata.ParseDeviceConfigInfo(path)
	require.NoError(t, err)

	require.Len(t, info.Devices, 1)
	assert.Equal(t, "QTOF", info.Devices[0].DisplayName)

	params := info.ParametersFor(1)
	require.Len(t, params, 2)
	assert.Equal(t, "DrivePressure", params[0].ResourceName)
	assert.Equal(t, "Torr", params[0].Units)

	assert.Empty(t, info.ParametersFor(99))
}

func TestParseDefaultMassCal(t *testing.T) {
	t.Parallel()

	path := testutil.WriteTestFile(t, t.TempDir(), "DefaultMassCal.xml", testutil.DefaultMassCalXML)

	l, err := metadata.ParseDefaultMassCal(path)
	require.NoError(t, err)

	require.Len(t, l.Calibrations, 1)
	cal := l.Calibrations[0]
	assert.Equal(t, 1, cal.CalibrationID)
	require.Len(t, cal.Steps, 2)

	assert.Equal(t, "Traditional", cal.Steps[0].Formula)
	assert.Equal(t, []float64{0.00034, 1006.4}, cal.Steps[0].Coefficients)
	assert.Equal(t, "Polynomial", cal.Steps[1].Formula)
	assert.Len(t, cal.Steps[1].Coefficients, 3)
}

func TestParseMSTimeSegments(t *testing.T) {
	t.Parallel()

	path := testutil.WriteTestFile(t, t.TempDir(), "MSTS.xml", testutil.MSTSXML)

	m, err := metadata.ParseMSTimeSegments(path)
	require.NoError(t, err)

	require.Len(t, m.Segments, 1)
	seg := m.Segments[0]
	assert.Equal(t, 0.047, seg.StartTime)
	assert.Equal(t, 14.998, seg.EndTime)
	assert.Equal(t, 1333, seg.NumOfScans)
	assert.True(t, seg.FixedCycleLength)
	assert.Equal(t, 1333, m.TotalScans())
}

func TestParseMSActualDefs(t *testing.T) {
	t.Parallel()

	path := testutil.WriteTestFile(t, t.TempDir(), "MSActualDefs.xml", testutil.MSActualDefsXML)

	a, err := metadata.ParseMSActualDefs(path)
	require.NoError(t, err)

	assert.Equal(t, 2, a.Version)
	require.Len(t, a.Actuals, 2)
	assert.Equal(t, 660, a.Actuals[0].ActualID)
	assert.Equal(t, "Fragmentor", a.Actuals[0].DisplayName)
	assert.Equal(t, "V", a.Actuals[0].Unit)
	assert.Equal(t, "Collision Cell", a.Actuals[1].Category)
}

func TestParseAcqMethod(t *testing.T) {
	t.Parallel()

	path := testutil.WriteTestFile(t, t.TempDir(), "AcqMethod.xml", testutil.AcqMethodXML)

	m, err := metadata.ParseAcqMethod(path)
	require.NoError(t, err)

	assert.Equal(t, "propellant_1ug.m", m.Name)
	require.Len(t, m.Devices, 1)
	assert.Equal(t, "QTOF", m.Devices[0].Name)
	require.Len(t, m.Devices[0].Parameters, 2)
	assert.Equal(t, "Gas Temp", m.Devices[0].Parameters[0].DisplayName)
	assert.Equal(t, "325", m.Devices[0].Parameters[0].Value)
}

func TestParse_MissingFile(t *testing.T) {
	t.Parallel()

	_, err := metadata.ParseContents(t.TempDir() + "/Contents.xml")
	assert.Error(t, err)
}

func TestParse_MalformedXML(t *testing.T) {
	t.Parallel()

	path := testutil.WriteTestFile(t, t.TempDir(), "Devices.xml", "<Devices><Device>")
	_, err := metadata.ParseDevices(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse")
}
