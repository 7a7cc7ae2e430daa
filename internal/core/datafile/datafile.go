// Package datafile handles the on-disk layout of Agilent .d datafiles:
// detection, well-known file paths and metadata extraction.
package datafile

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/chromatools/agd/internal/core/metadata"
)

// AcqDataDir is the subdirectory of a .d datafile holding acquisition data.
const AcqDataDir = "AcqData"

// Well-known files inside the AcqData directory.
const (
	ContentsFile         = "Contents.xml"
	SampleInfoFile       = "sample_info.xml"
	DevicesFile          = "Devices.xml"
	DeviceConfigInfoFile = "DeviceConfigInfo.xml"
	DefaultMassCalFile   = "DefaultMassCal.xml"
	MSTimeSegmentsFile   = "MSTS.xml"
	MSActualDefsFile     = "MSActualDefs.xml"
	AcqMethodFile        = "AcqMethod.xml"
	MSScanFile           = "MSScan.bin"
	MSPeakFile           = "MSPeak.bin"
)

// IsDatafile reports whether path points to an Agilent .d datafile: a
// directory with the .d extension containing an AcqData subdirectory.
func IsDatafile(path string) bool {
	if !strings.EqualFold(filepath.Ext(path), ".d") {
		return false
	}
	info, err := os.Stat(path)
	if err != nil || !info.IsDir() {
		return false
	}
	acq, err := os.Stat(filepath.Join(path, AcqDataDir))
	return err == nil && acq.IsDir()
}

// PrepareFilepath ensures the parent directory of path exists, creating it
// when needed, and returns the cleaned path.
func PrepareFilepath(path string) (string, error) {
	cleaned := filepath.Clean(path)
	dir := filepath.Dir(cleaned)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create directory %s: %w", dir, err)
	}
	return cleaned, nil
}

// AcqDataPath returns the path of a well-known file inside the datafile's
// AcqData directory.
func AcqDataPath(datafile, name string) string {
	return filepath.Join(datafile, AcqDataDir, name)
}

// Metadata aggregates the parsed XML metadata documents of a datafile.
// Documents absent from the datafile are left nil.
type Metadata struct {
	Contents         *metadata.Contents
	SampleInfo       *metadata.SampleInfo
	Devices          *metadata.DeviceList
	DeviceConfigInfo *metadata.DeviceConfigInfo
	DefaultMassCal   *metadata.CalibrationList
	TimeSegments     *metadata.MSTimeSegments
	ActualDefs       *metadata.ActualsDef
	AcqMethod        *metadata.AcqMethod
}

// ExtractMetadata parses every XML metadata document present in the
// datafile at path. It returns an error when path is not a .d datafile or
// when a present document fails to parse.
func ExtractMetadata(path string) (*Metadata, error) {
	if !IsDatafile(path) {
		return nil, fmt.Errorf("%s is not a valid .d datafile", path)
	}

	var md Metadata

	parsers := []struct {
		file  string
		parse func(string) error
	}{
		{ContentsFile, func(p string) (err error) { md.Contents, err = metadata.ParseContents(p); return }},
		{SampleInfoFile, func(p string) (err error) { md.SampleInfo, err = metadata.ParseSampleInfo(p); return }},
		{DevicesFile, func(p string) (err error) { md.Devices, err = metadata.ParseDevices(p); return }},
		{DeviceConfigInfoFile, func(p string) (err error) { md.DeviceConfigInfo, err = metadata.ParseDeviceConfigInfo(p); return }},
		{DefaultMassCalFile, func(p string) (err error) { md.DefaultMassCal, err = metadata.ParseDefaultMassCal(p); return }},
		{MSTimeSegmentsFile, func(p string) (err error) { md.TimeSegments, err = metadata.ParseMSTimeSegments(p); return }},
		{MSActualDefsFile, func(p string) (err error) { md.ActualDefs, err = metadata.ParseMSActualDefs(p); return }},
		{AcqMethodFile, func(p string) (err error) { md.AcqMethod, err = metadata.ParseAcqMethod(p); return }},
	}

	for _, entry := range parsers {
		full := AcqDataPath(path, entry.file)
		if _, err := os.Stat(full); err != nil {
			if os.IsNotExist(err) {
				continue
			}
			return nil, fmt.Errorf("failed to stat %s: %w", full, err)
		}
		if err := entry.parse(full); err != nil {
			return nil, err
		}
	}

	return &md, nil
}
