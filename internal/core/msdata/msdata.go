// Package msdata reads the binary scan stream of an Agilent .d datafile:
// the scan directory in MSScan.bin and the centroided spectra it points to
// in MSPeak.bin. All values are little-endian.
package msdata

import (
	"encoding/binary"
	"fmt"
	"math"
	"os"
	"path/filepath"
)

const (
	// ScanFileName and PeakFileName are the acquisition file names inside
	// the AcqData directory.
	ScanFileName = "MSScan.bin"
	PeakFileName = "MSPeak.bin"

	// fileMagic opens both acquisition files.
	fileMagic uint16 = 0x0101

	// recordOffsetPos is where the scan file header stores the byte offset
	// of the first scan record.
	recordOffsetPos = 0x58

	// scanHeaderSize is the minimum size of the scan file header.
	scanHeaderSize = 0x60

	// peakHeaderSize is the size of the peak file header.
	peakHeaderSize = 0x10

	// recordSize is the fixed size of one scan record.
	recordSize = 0x40
)

// ScanRecord is one entry of the scan directory.
type ScanRecord struct {
	ScanID            int
	RetentionTime     float64 // minutes
	TIC               float64
	BasePeakMZ        float64
	BasePeakAbundance float64
	PointCount        int
	SpectrumOffset    int64 // byte offset into MSPeak.bin
}

// Scan is a scan record together with its centroided spectrum.
type Scan struct {
	ScanRecord
	Masses      []float64
	Intensities []float64
}

// ReadScanRecords decodes the scan directory from an MSScan.bin file.
func ReadScanRecords(path string) ([]ScanRecord, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if len(data) < scanHeaderSize {
		return nil, fmt.Errorf("%s: truncated header (%d bytes)", path, len(data))
	}
	if magic := binary.LittleEndian.Uint16(data); magic != fileMagic {
		return nil, fmt.Errorf("%s: bad magic 0x%04x", path, magic)
	}

	start := int(binary.LittleEndian.Uint32(data[recordOffsetPos:]))
	if start < scanHeaderSize || start > len(data) {
		return nil, fmt.Errorf("%s: scan records start out of bounds (offset %d, file size %d)", path, start, len(data))
	}
	body := data[start:]
	if len(body)%recordSize != 0 {
		return nil, fmt.Errorf("%s: scan record section size %d is not a multiple of %d", path, len(body), recordSize)
	}

	records := make([]ScanRecord, 0, len(body)/recordSize)
	for off := 0; off < len(body); off += recordSize {
		rec := body[off : off+recordSize]
		records = append(records, ScanRecord{
			ScanID:            int(binary.LittleEndian.Uint32(rec[0x00:])),
			RetentionTime:     math.Float64frombits(binary.LittleEndian.Uint64(rec[0x08:])),
			TIC:               math.Float64frombits(binary.LittleEndian.Uint64(rec[0x10:])),
			BasePeakMZ:        math.Float64frombits(binary.LittleEndian.Uint64(rec[0x18:])),
			BasePeakAbundance: math.Float64frombits(binary.LittleEndian.Uint64(rec[0x20:])),
			PointCount:        int(binary.LittleEndian.Uint32(rec[0x28:])),
			SpectrumOffset:    int64(binary.LittleEndian.Uint64(rec[0x30:])),
		})
	}
	return records, nil
}

// readSpectrum decodes one centroided spectrum from peak file contents:
// PointCount pairs of (float64 m/z, float32 abundance).
func readSpectrum(peaks []byte, rec ScanRecord) ([]float64, []float64, error) {
	const pairSize = 8 + 4

	need := int64(rec.PointCount) * pairSize
	if rec.SpectrumOffset < peakHeaderSize || rec.SpectrumOffset+need > int64(len(peaks)) {
		return nil, nil, fmt.Errorf("scan %d: spectrum out of bounds (offset %d, %d points, file size %d)",
			rec.ScanID, rec.SpectrumOffset, rec.PointCount, len(peaks))
	}

	masses := make([]float64, rec.PointCount)
	intensities := make([]float64, rec.PointCount)
	base := rec.SpectrumOffset
	for i := 0; i < rec.PointCount; i++ {
		off := base + int64(i)*pairSize
		masses[i] = math.Float64frombits(binary.LittleEndian.Uint64(peaks[off:]))
		intensities[i] = float64(math.Float32frombits(binary.LittleEndian.Uint32(peaks[off+8:])))
	}
	return masses, intensities, nil
}

// ReadScans reads the full scan stream from an AcqData directory: the scan
// directory plus every spectrum it references.
func ReadScans(acqDataDir string) ([]Scan, error) {
	records, err := ReadScanRecords(filepath.Join(acqDataDir, ScanFileName))
	if err != nil {
		return nil, err
	}

	peakPath := filepath.Join(acqDataDir, PeakFileName)
	peaks, err := os.ReadFile(peakPath)
	if err != nil {
		return nil, err
	}
	if len(peaks) < peakHeaderSize {
		return nil, fmt.Errorf("%s: truncated header (%d bytes)", peakPath, len(peaks))
	}
	if magic := binary.LittleEndian.Uint16(peaks); magic != fileMagic {
		return nil, fmt.Errorf("%s: bad magic 0x%04x", peakPath, magic)
	}

	scans := make([]Scan, 0, len(records))
	for _, rec := range records {
		masses, intensities, err := readSpectrum(peaks, rec)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", peakPath, err)
		}
		scans = append(scans, Scan{ScanRecord: rec, Masses: masses, Intensities: intensities})
	}
	return scans, nil
}
