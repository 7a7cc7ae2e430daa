package metadata

import "encoding/xml"

// Contents mirrors Contents.xml: the run-level acquisition record.
type Contents struct {
	XMLName xml.Name `xml:"Contents"`

	Version            int       `xml:"Version"`
	AcquiredTime       Timestamp `xml:"AcquiredTime"`
	AcqStatus          string    `xml:"AcqStatus"`
	InstrumentName     string    `xml:"InstrumentName"`
	LockedMode         bool      `xml:"LockedMode"`
	AcqSoftwareVersion string    `xml:"AcqSoftwareVersion"`
}

// ParseContents reads and parses a Contents.xml file.
func ParseContents(path string) (*Contents, error) {
	var c Contents
	if err := parseFile(path, &c); err != nil {
		return nil, err
	}
	return &c, nil
}
