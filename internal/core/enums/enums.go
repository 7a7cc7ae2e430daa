// Package enums defines the integer enumerations used throughout Agilent
// MassHunter acquisition data: chromatogram and device kinds, ionization
// modes, scan types and the axis unit/value descriptors.
package enums

import "fmt"

// ChromType identifies the kind of chromatogram a signal represents.
type ChromType int

const (
	ChromTypeUnspecified ChromType = iota
	ChromTypeSignal
	ChromTypeInstrumentParameter
	ChromTypeTotalWavelength
	ChromTypeExtractedWavelength
	ChromTypeTotalIon
	ChromTypeBasePeak
	ChromTypeExtractedIon
	ChromTypeSelectedIonMonitoring
	ChromTypeMultipleReactionMonitoring
	ChromTypeTotalCompound
)

var chromTypeNames = map[ChromType]string{
	ChromTypeUnspecified:                "Unspecified",
	ChromTypeSignal:                     "Signal",
	ChromTypeInstrumentParameter:        "InstrumentParameter",
	ChromTypeTotalWavelength:            "TotalWavelength",
	ChromTypeExtractedWavelength:        "ExtractedWavelength",
	ChromTypeTotalIon:                   "TotalIon",
	ChromTypeBasePeak:                   "BasePeak",
	ChromTypeExtractedIon:               "ExtractedIon",
	ChromTypeSelectedIonMonitoring:      "SelectedIonMonitoring",
	ChromTypeMultipleReactionMonitoring: "MultipleReactionMonitoring",
	ChromTypeTotalCompound:              "TotalCompound",
}

func (c ChromType) String() string {
	if name, ok := chromTypeNames[c]; ok {
		return name
	}
	return fmt.Sprintf("ChromType(%d)", int(c))
}

// DeviceType identifies the instrument module that acquired a signal.
type DeviceType int

const (
	DeviceTypeUnknown DeviceType = iota
	DeviceTypeMixed
	DeviceTypeQuadrupoleLCMS
	DeviceTypeIsocraticPump
	DeviceTypeBinaryPump
	DeviceTypeQuaternaryPump
	DeviceTypeCapillaryPump
	DeviceTypeNanoPump
	DeviceTypeThermostattedColumnCompartment
	DeviceTypeDiodeArrayDetector
	DeviceTypeVariableWavelengthDetector
	DeviceTypeAutosampler
	DeviceTypeFluorescenceDetector
	DeviceTypeTandemQuadrupoleLCMS
	DeviceTypeQuadrupoleTOFLCMS
	DeviceTypeTOFLCMS
	DeviceTypeIonTrapLCMS
	DeviceTypeSingleQuadGCMS
)

var deviceTypeNames = map[DeviceType]string{
	DeviceTypeUnknown:                        "Unknown",
	DeviceTypeMixed:                          "Mixed",
	DeviceTypeQuadrupoleLCMS:                 "QuadrupoleLCMS",
	DeviceTypeIsocraticPump:                  "IsocraticPump",
	DeviceTypeBinaryPump:                     "BinaryPump",
	DeviceTypeQuaternaryPump:                 "QuaternaryPump",
	DeviceTypeCapillaryPump:                  "CapillaryPump",
	DeviceTypeNanoPump:                       "NanoPump",
	DeviceTypeThermostattedColumnCompartment: "ThermostattedColumnCompartment",
	DeviceTypeDiodeArrayDetector:             "DiodeArrayDetector",
	DeviceTypeVariableWavelengthDetector:     "VariableWavelengthDetector",
	DeviceTypeAutosampler:                    "Autosampler",
	DeviceTypeFluorescenceDetector:           "FluorescenceDetector",
	DeviceTypeTandemQuadrupoleLCMS:           "TandemQuadrupoleLCMS",
	DeviceTypeQuadrupoleTOFLCMS:              "QuadrupoleTOFLCMS",
	DeviceTypeTOFLCMS:                        "TOFLCMS",
	DeviceTypeIonTrapLCMS:                    "IonTrapLCMS",
	DeviceTypeSingleQuadGCMS:                 "SingleQuadGCMS",
}

func (d DeviceType) String() string {
	if name, ok := deviceTypeNames[d]; ok {
		return name
	}
	return fmt.Sprintf("DeviceType(%d)", int(d))
}

// IonizationMode is a bit-flag set describing how ions were generated.
type IonizationMode int

const (
	IonizationUnspecified IonizationMode = 0
	IonizationMixed       IonizationMode = 1 << iota
	IonizationEI
	IonizationCI
	IonizationMaldi
	IonizationAPPI
	IonizationAPCI
	IonizationESI
	IonizationNanoESI
	IonizationICP
	IonizationJetStream
)

var ionizationNames = []struct {
	mode IonizationMode
	name string
}{
	{IonizationMixed, "Mixed"},
	{IonizationEI, "EI"},
	{IonizationCI, "CI"},
	{IonizationMaldi, "Maldi"},
	{IonizationAPPI, "APPI"},
	{IonizationAPCI, "APCI"},
	{IonizationESI, "ESI"},
	{IonizationNanoESI, "NanoESI"},
	{IonizationICP, "ICP"},
	{IonizationJetStream, "JetStream"},
}

func (m IonizationMode) String() string {
	if m == IonizationUnspecified {
		return "Unspecified"
	}
	out := ""
	for _, entry := range ionizationNames {
		if m&entry.mode != 0 {
			if out != "" {
				out += "|"
			}
			out += entry.name
		}
	}
	if out == "" {
		return fmt.Sprintf("IonizationMode(%d)", int(m))
	}
	return out
}

// MSLevel distinguishes MS from MS/MS data.
type MSLevel int

const (
	MSLevelAll  MSLevel = 0
	MSLevelMS   MSLevel = 1
	MSLevelMSMS MSLevel = 2
)

func (l MSLevel) String() string {
	switch l {
	case MSLevelAll:
		return "All"
	case MSLevelMS:
		return "MS"
	case MSLevelMSMS:
		return "MSMS"
	}
	return fmt.Sprintf("MSLevel(%d)", int(l))
}

// MSScanType is a bit-flag set describing the scan mode.
type MSScanType int

const (
	ScanTypeUnspecified        MSScanType = 0
	ScanTypeScan               MSScanType = 1
	ScanTypeSelectedIon        MSScanType = 2
	ScanTypeHighResolutionScan MSScanType = 4
	ScanTypeTotalIon           MSScanType = 8
	ScanTypeMultipleReaction   MSScanType = 256
	ScanTypeProductIon         MSScanType = 512
	ScanTypePrecursorIon       MSScanType = 1024
	ScanTypeNeutralLoss        MSScanType = 2048
	ScanTypeNeutralGain        MSScanType = 4096

	// ScanTypeAllMS covers every MS-level scan mode.
	ScanTypeAllMS = ScanTypeScan | ScanTypeSelectedIon | ScanTypeHighResolutionScan | ScanTypeTotalIon
	// ScanTypeAllMSN covers every MS/MS scan mode.
	ScanTypeAllMSN = ScanTypeMultipleReaction | ScanTypeProductIon | ScanTypePrecursorIon |
		ScanTypeNeutralLoss | ScanTypeNeutralGain
)

var scanTypeNames = []struct {
	typ  MSScanType
	name string
}{
	{ScanTypeScan, "Scan"},
	{ScanTypeSelectedIon, "SelectedIon"},
	{ScanTypeHighResolutionScan, "HighResolutionScan"},
	{ScanTypeTotalIon, "TotalIon"},
	{ScanTypeMultipleReaction, "MultipleReaction"},
	{ScanTypeProductIon, "ProductIon"},
	{ScanTypePrecursorIon, "PrecursorIon"},
	{ScanTypeNeutralLoss, "NeutralLoss"},
	{ScanTypeNeutralGain, "NeutralGain"},
}

func (t MSScanType) String() string {
	if t == ScanTypeUnspecified {
		return "Unspecified"
	}
	out := ""
	for _, entry := range scanTypeNames {
		if t&entry.typ != 0 {
			if out != "" {
				out += "|"
			}
			out += entry.name
		}
	}
	if out == "" {
		return fmt.Sprintf("MSScanType(%d)", int(t))
	}
	return out
}

// MSStorageMode describes how spectra were stored during acquisition.
type MSStorageMode int

const (
	StorageModeUnspecified MSStorageMode = iota
	StorageModeMixed
	StorageModeProfileSpectrum
	StorageModePeakDetectedSpectrum
)

func (m MSStorageMode) String() string {
	switch m {
	case StorageModeUnspecified:
		return "Unspecified"
	case StorageModeMixed:
		return "Mixed"
	case StorageModeProfileSpectrum:
		return "ProfileSpectrum"
	case StorageModePeakDetectedSpectrum:
		return "PeakDetectedSpectrum"
	}
	return fmt.Sprintf("MSStorageMode(%d)", int(m))
}

// StoredDataType is a bit-flag set naming the kinds of data a device
// stored during the run.
type StoredDataType int

const (
	StoredDataNone             StoredDataType = 0
	StoredDataChromatograms    StoredDataType = 1
	StoredDataInstrumentCurves StoredDataType = 2
	StoredDataSpectra          StoredDataType = 4
	StoredDataMassSpectra      StoredDataType = 8
)

var storedDataNames = []struct {
	typ  StoredDataType
	name string
}{
	{StoredDataChromatograms, "Chromatograms"},
	{StoredDataInstrumentCurves, "InstrumentCurves"},
	{StoredDataSpectra, "Spectra"},
	{StoredDataMassSpectra, "MassSpectra"},
}

func (s StoredDataType) String() string {
	if s == StoredDataNone {
		return "None"
	}
	out := ""
	for _, entry := range storedDataNames {
		if s&entry.typ != 0 {
			if out != "" {
				out += "|"
			}
			out += entry.name
		}
	}
	if out == "" {
		return fmt.Sprintf("StoredDataType(%d)", int(s))
	}
	return out
}

// IonPolarity is the polarity of the ionization source.
type IonPolarity int

const (
	PolarityPositive IonPolarity = 0
	PolarityNegative IonPolarity = 1
	PolarityUnknown  IonPolarity = 2
	PolarityMixed    IonPolarity = 3
)

// Symbol returns the conventional display symbol for the polarity, or ""
// when the polarity is unknown.
func (p IonPolarity) Symbol() string {
	switch p {
	case PolarityPositive:
		return "+"
	case PolarityNegative:
		return "-"
	case PolarityMixed:
		return "+-"
	}
	return ""
}

func (p IonPolarity) String() string {
	switch p {
	case PolarityPositive:
		return "Positive"
	case PolarityNegative:
		return "Negative"
	case PolarityUnknown:
		return "Unknown"
	case PolarityMixed:
		return "Mixed"
	}
	return fmt.Sprintf("IonPolarity(%d)", int(p))
}

// DataUnit is the physical unit of an axis.
type DataUnit int

const (
	UnitUnspecified DataUnit = iota
	UnitMixed
	UnitScanNumber
	UnitMinutes
	UnitSeconds
	UnitMilliseconds
	UnitThomsons
	UnitNanometers
	UnitCounts
	UnitCountsPerSecond
	UnitMilliAbsorbanceUnits
	UnitVolts
	UnitAbundance
	UnitResponseUnits
)

var dataUnitNames = map[DataUnit]string{
	UnitUnspecified:          "Unspecified",
	UnitMixed:                "Mixed",
	UnitScanNumber:           "ScanNumber",
	UnitMinutes:              "Minutes",
	UnitSeconds:              "Seconds",
	UnitMilliseconds:         "Milliseconds",
	UnitThomsons:             "Thomsons",
	UnitNanometers:           "Nanometers",
	UnitCounts:               "Counts",
	UnitCountsPerSecond:      "CountsPerSecond",
	UnitMilliAbsorbanceUnits: "MilliAbsorbanceUnits",
	UnitVolts:                "Volts",
	UnitAbundance:            "Abundance",
	UnitResponseUnits:        "ResponseUnits",
}

func (u DataUnit) String() string {
	if name, ok := dataUnitNames[u]; ok {
		return name
	}
	return fmt.Sprintf("DataUnit(%d)", int(u))
}

// DataValueType is the quantity an axis represents.
type DataValueType int

const (
	ValueTypeUnspecified DataValueType = iota
	ValueTypeMixed
	ValueTypeAcqTime
	ValueTypeScanNumber
	ValueTypeMassToCharge
	ValueTypeMass
	ValueTypeWavelength
	ValueTypeIonAbundance
	ValueTypeOrdinateValue
)

var dataValueTypeNames = map[DataValueType]string{
	ValueTypeUnspecified:   "Unspecified",
	ValueTypeMixed:         "Mixed",
	ValueTypeAcqTime:       "AcqTime",
	ValueTypeScanNumber:    "ScanNumber",
	ValueTypeMassToCharge:  "MassToCharge",
	ValueTypeMass:          "Mass",
	ValueTypeWavelength:    "Wavelength",
	ValueTypeIonAbundance:  "IonAbundance",
	ValueTypeOrdinateValue: "OrdinateValue",
}

func (v DataValueType) String() string {
	if name, ok := dataValueTypeNames[v]; ok {
		return name
	}
	return fmt.Sprintf("DataValueType(%d)", int(v))
}
