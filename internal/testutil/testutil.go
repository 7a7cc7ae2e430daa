// Package testutil builds synthetic .d datafile fixtures for tests.
package testutil

import (
	"encoding/binary"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/chromatools/agd/internal/core/msdata"
)

// WriteTestFile writes a file with the given content below dir, creating
// parent directories as needed. It returns the full path to the file.
func WriteTestFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	filePath := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(filePath), 0o755); err != nil {
		t.Fatalf("failed to create fixture directory: %v", err)
	}
	if err := os.WriteFile(filePath, []byte(content), 0o600); err != nil {
		t.Fatalf("failed to write test file: %v", err)
	}
	return filePath
}

// FixtureScan describes one scan to encode into a fixture datafile.
type FixtureScan struct {
	RetentionTime float64 // minutes
	Masses        []float64
	Intensities   []float64
}

// WriteScanData encodes the given scans as MSScan.bin and MSPeak.bin inside
// acqDataDir, using the same layout msdata reads back.
func WriteScanData(t *testing.T, acqDataDir string, scans []FixtureScan) {
	t.Helper()

	if err := os.MkdirAll(acqDataDir, 0o755); err != nil {
		t.Fatalf("failed to create AcqData directory: %v", err)
	}

	const (
		scanHeaderSize = 0x60
		peakHeaderSize = 0x10
		recordSize     = 0x40
	)

	peakBuf := make([]byte, peakHeaderSize)
	binary.LittleEndian.PutUint16(peakBuf, 0x0101)

	scanBuf := make([]byte, scanHeaderSize, scanHeaderSize+len(scans)*recordSize)
	binary.LittleEndian.PutUint16(scanBuf, 0x0101)
	binary.LittleEndian.PutUint32(scanBuf[0x58:], scanHeaderSize)

	for i, scan := range scans {
		if len(scan.Masses) != len(scan.Intensities) {
			t.Fatalf("fixture scan %d: %d masses but %d intensities", i, len(scan.Masses), len(scan.Intensities))
		}

		spectrumOffset := int64(len(peakBuf))
		tic := 0.0
		basePeakMZ := 0.0
		basePeakAbundance := 0.0
		for j := range scan.Masses {
			var pair [12]byte
			binary.LittleEndian.PutUint64(pair[0:], math.Float64bits(scan.Masses[j]))
			binary.LittleEndian.PutUint32(pair[8:], math.Float32bits(float32(scan.Intensities[j])))
			peakBuf = append(peakBuf, pair[:]...)

			tic += scan.Intensities[j]
			if scan.Intensities[j] > basePeakAbundance {
				basePeakAbundance = scan.Intensities[j]
				basePeakMZ = scan.Masses[j]
			}
		}

		var rec [recordSize]byte
		binary.LittleEndian.PutUint32(rec[0x00:], uint32(i+1))
		binary.LittleEndian.PutUint64(rec[0x08:], math.Float64bits(scan.RetentionTime))
		binary.LittleEndian.PutUint64(rec[0x10:], math.Float64bits(tic))
		binary.LittleEndian.PutUint64(rec[0x18:], math.Float64bits(basePeakMZ))
		binary.LittleEndian.PutUint64(rec[0x20:], math.Float64bits(basePeakAbundance))
		binary.LittleEndian.PutUint32(rec[0x28:], uint32(len(scan.Masses)))
		binary.LittleEndian.PutUint64(rec[0x30:], uint64(spectrumOffset))
		scanBuf = append(scanBuf, rec[:]...)
	}

	if err := os.WriteFile(filepath.Join(acqDataDir, msdata.ScanFileName), scanBuf, 0o600); err != nil {
		t.Fatalf("failed to write scan fixture: %v", err)
	}
	if err := os.WriteFile(filepath.Join(acqDataDir, msdata.PeakFileName), peakBuf, 0o600); err != nil {
		t.Fatalf("failed to write peak fixture: %v", err)
	}
}

// WriteDatafile creates a minimal .d datafile fixture below dir: the AcqData
// directory, the given XML documents (name -> content) and the scan stream.
// It returns the datafile path.
func WriteDatafile(t *testing.T, dir, name string, xmlDocs map[string]string, scans []FixtureScan) string {
	t.Helper()

	datafile := filepath.Join(dir, name)
	acqData := filepath.Join(datafile, "AcqData")
	if err := os.MkdirAll(acqData, 0o755); err != nil {
		t.Fatalf("failed to create datafile fixture: %v", err)
	}

	for docName, content := range xmlDocs {
		WriteTestFile(t, acqData, docName, content)
	}
	if scans != nil {
		WriteScanData(t, acqData, scans)
	}
	return datafile
}
