// Package reader assembles the scan stream and metadata of a .d datafile
// into a single Data value with derived statistics and export helpers.
package reader

import (
	"fmt"
	"io"
	"math"
	"path/filepath"
	"sort"

	"github.com/chromatools/agd/internal/core/chromatogram"
	"github.com/chromatools/agd/internal/core/datafile"
	"github.com/chromatools/agd/internal/core/enums"
	"github.com/chromatools/agd/internal/core/msdata"
)

// Data is the full content of a datafile: every scan, the acquisition
// metadata, and the retention times in seconds.
type Data struct {
	Path     string
	Metadata *datafile.Metadata
	Scans    []msdata.Scan

	// TimeList holds the retention time of each scan in seconds.
	TimeList []float64
}

// Open reads the datafile at path: metadata first, then the scan stream.
func Open(path string) (*Data, error) {
	md, err := datafile.ExtractMetadata(path)
	if err != nil {
		return nil, err
	}

	scans, err := msdata.ReadScans(filepath.Join(path, datafile.AcqDataDir))
	if err != nil {
		return nil, fmt.Errorf("failed to read scan data from %s: %w", path, err)
	}
	if len(scans) == 0 {
		return nil, fmt.Errorf("%s contains no scans", path)
	}

	times := make([]float64, len(scans))
	for i, s := range scans {
		times[i] = s.RetentionTime * 60.0
	}

	return &Data{Path: path, Metadata: md, Scans: scans, TimeList: times}, nil
}

// Len returns the number of scans.
func (d *Data) Len() int {
	return len(d.Scans)
}

// MinRT returns the first retention time in seconds.
func (d *Data) MinRT() float64 {
	return d.TimeList[0]
}

// MaxRT returns the last retention time in seconds.
func (d *Data) MaxRT() float64 {
	return d.TimeList[len(d.TimeList)-1]
}

// TimeStep returns the mean inter-scan delay in seconds.
func (d *Data) TimeStep() float64 {
	if len(d.TimeList) < 2 {
		return 0
	}
	return (d.MaxRT() - d.MinRT()) / float64(len(d.TimeList)-1)
}

// TimeStepStd returns the population standard deviation of the inter-scan
// delays in seconds.
func (d *Data) TimeStepStd() float64 {
	n := len(d.TimeList) - 1
	if n < 1 {
		return 0
	}
	mean := d.TimeStep()
	sum := 0.0
	for i := 1; i < len(d.TimeList); i++ {
		diff := d.TimeList[i] - d.TimeList[i-1] - mean
		sum += diff * diff
	}
	return math.Sqrt(sum / float64(n))
}

// MassRange returns the smallest and largest m/z measured across all scans.
func (d *Data) MassRange() (minMass, maxMass float64) {
	minMass = math.Inf(1)
	maxMass = math.Inf(-1)
	for _, s := range d.Scans {
		for _, mz := range s.Masses {
			if mz < minMass {
				minMass = mz
			}
			if mz > maxMass {
				maxMass = mz
			}
		}
	}
	return minMass, maxMass
}

// pointsPerScan returns the mean and median number of m/z values per scan.
func (d *Data) pointsPerScan() (mean float64, median float64) {
	counts := make([]int, len(d.Scans))
	total := 0
	for i, s := range d.Scans {
		counts[i] = len(s.Masses)
		total += counts[i]
	}
	sort.Ints(counts)

	mean = float64(total) / float64(len(counts))
	mid := len(counts) / 2
	if len(counts)%2 == 1 {
		median = float64(counts[mid])
	} else {
		median = float64(counts[mid-1]+counts[mid]) / 2.0
	}
	return mean, median
}

// TIC assembles the total ion chromatogram from the scan stream and the
// acquisition metadata.
func (d *Data) TIC() *chromatogram.TIC {
	xData := make([]float64, len(d.Scans))
	yData := make([]float64, len(d.Scans))
	for i, s := range d.Scans {
		xData[i] = s.RetentionTime
		yData[i] = s.TIC
	}

	tic := &chromatogram.TIC{
		Signal: chromatogram.Signal{
			Type:           enums.ChromTypeTotalIon,
			SignalName:     "TIC",
			IsChromatogram: true,
			XAxis: chromatogram.AxisInfo{
				ValueType: enums.ValueTypeAcqTime,
				Unit:      enums.UnitMinutes,
			},
			YAxis: chromatogram.AxisInfo{
				ValueType: enums.ValueTypeIonAbundance,
				Unit:      enums.UnitCounts,
			},
			XData: xData,
			YData: yData,
		},
		MSLevel:        enums.MSLevelMS,
		ScanType:       enums.ScanTypeScan,
		StorageMode:    enums.StorageModePeakDetectedSpectrum,
		SamplingPeriod: d.TimeStep(),
	}

	minMass, maxMass := d.MassRange()
	if !math.IsInf(minMass, 1) {
		tic.MeasuredMassRange = []chromatogram.Range{{Start: minMass, Stop: maxMass}}
	}

	if md := d.Metadata; md != nil {
		if md.TimeSegments != nil {
			for _, seg := range md.TimeSegments.Segments {
				tic.AcquiredTimeRanges = append(tic.AcquiredTimeRanges,
					chromatogram.Range{Start: seg.StartTime, Stop: seg.EndTime})
			}
		}
		if md.Devices != nil {
			for _, dev := range md.Devices.Devices {
				if dev.StoredDataType&enums.StoredDataMassSpectra != 0 {
					tic.DeviceName = dev.DisplayName
					tic.DeviceType = dev.Type
					tic.OrdinalNumber = dev.OrdinalNumber
					break
				}
			}
		}
	}
	return tic
}

// Info writes a human-readable summary of the data to w.
func (d *Data) Info(w io.Writer) {
	mean, median := d.pointsPerScan()
	minMass, maxMass := d.MassRange()

	fmt.Fprintf(w, " Data retention time range: %.3f min -- %.3f min\n", d.MinRT()/60.0, d.MaxRT()/60.0)
	fmt.Fprintf(w, " Time step: %.3f s (std=%.3f s)\n", d.TimeStep(), d.TimeStepStd())
	fmt.Fprintf(w, " Number of scans: %d\n", d.Len())
	fmt.Fprintf(w, " Minimum m/z measured: %.3f\n", minMass)
	fmt.Fprintf(w, " Maximum m/z measured: %.3f\n", maxMass)
	fmt.Fprintf(w, " Mean number of m/z values per scan: %d\n", int(mean))
	fmt.Fprintf(w, " Median number of m/z values per scan: %d\n", int(math.Round(median)))
}
