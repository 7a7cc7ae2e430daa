// Package chromatogram models the chromatographic signals recorded in an
// Agilent .d datafile: instrument curves, and the total ion chromatogram
// with its acquisition parameters.
package chromatogram

import (
	"fmt"

	"github.com/chromatools/agd/internal/core/enums"
)

// Range is a closed interval on some axis (time in minutes, or m/z).
type Range struct {
	Start float64
	Stop  float64
}

func (r Range) String() string {
	return fmt.Sprintf("%v -> %v", r.Start, r.Stop)
}

// Contains reports whether v lies within the range (inclusive).
func (r Range) Contains(v float64) bool {
	return v >= r.Start && v <= r.Stop
}

// AxisInfo describes what an axis represents and in which unit.
type AxisInfo struct {
	ValueType enums.DataValueType
	Unit      enums.DataUnit
	// Label carries the free-text unit label when Unit is ResponseUnits.
	Label string
}

// Signal is the surface common to every signal recorded by the instrument.
type Signal struct {
	Type              enums.ChromType
	DeviceName        string
	DeviceType        enums.DeviceType
	OrdinalNumber     int
	SignalName        string
	SignalDescription string

	IsChromatogram bool
	IsCycleSummed  bool
	IsMassSpectrum bool
	IsPrimaryMRM   bool
	IsUVSpectrum   bool
	IsICPData      bool

	XAxis AxisInfo
	YAxis AxisInfo

	// XData and YData have equal length.
	XData []float64
	YData []float64
}

// TotalDataPoints returns the number of points in the signal.
func (s *Signal) TotalDataPoints() int {
	return len(s.XData)
}

// InstrumentCurve is a non-MS signal recorded by an instrument module, such
// as a pump pressure or column temperature trace.
type InstrumentCurve struct {
	Signal
}

// TIC is the total ion chromatogram together with the overall scan record
// information it was acquired under.
type TIC struct {
	Signal

	// AbundanceLimit is the largest value that could appear in the data,
	// the theoretical full-scale value.
	AbundanceLimit float64

	// AcquiredTimeRanges holds the time range(s) the data was acquired over;
	// a single-segment acquisition yields one entry.
	AcquiredTimeRanges []Range

	CollisionEnergy   float64
	FragmentorVoltage float64
	IonPolarity       enums.IonPolarity
	IonizationMode    enums.IonizationMode
	MSLevel           enums.MSLevel
	ScanType          enums.MSScanType
	StorageMode       enums.MSStorageMode

	// MZOfInterest is unused for MS1 data.
	MZOfInterest      []Range
	MeasuredMassRange []Range
	MZRegionsExcluded bool
	SamplingPeriod    float64
	Threshold         float64
}

// TimeRange returns the overall acquired time range, collapsing multiple
// segments into their envelope. The second return is false when no time
// ranges were recorded.
func (t *TIC) TimeRange() (Range, bool) {
	if len(t.AcquiredTimeRanges) == 0 {
		return Range{}, false
	}
	overall := t.AcquiredTimeRanges[0]
	for _, r := range t.AcquiredTimeRanges[1:] {
		if r.Start < overall.Start {
			overall.Start = r.Start
		}
		if r.Stop > overall.Stop {
			overall.Stop = r.Stop
		}
	}
	return overall, true
}
