package metadata

import "encoding/xml"

// CalibrationStep is one step of a default mass calibration: a formula
// identifier and its fitted coefficients.
type CalibrationStep struct {
	Number       int       `xml:"Number"`
	Formula      string    `xml:"Formula"`
	Coefficients []float64 `xml:"Coefficients>Coefficient"`
}

// Calibration is the default mass calibration stored for one device.
type Calibration struct {
	CalibrationID int               `xml:"CalibrationID"`
	DeviceID      int               `xml:"DeviceID"`
	Steps         []CalibrationStep `xml:"Step"`
}

// CalibrationList mirrors DefaultMassCal.xml.
type CalibrationList struct {
	XMLName xml.Name `xml:"DefaultMassCal"`

	Version      int           `xml:"Version"`
	Calibrations []Calibration `xml:"Calibration"`
}

// ParseDefaultMassCal reads and parses a DefaultMassCal.xml file.
func ParseDefaultMassCal(path string) (*CalibrationList, error) {
	var l CalibrationList
	if err := parseFile(path, &l); err != nil {
		return nil, err
	}
	return &l, nil
}
