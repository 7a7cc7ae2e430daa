package metadata

import "encoding/xml"

// Actual defines one per-scan instrument reading recorded during the run.
type Actual struct {
	ActualID       int    `xml:"ActualID"`
	DisplayName    string `xml:"DisplayName"`
	DataType       int    `xml:"DataType"`
	DisplayFormat  int    `xml:"DisplayFormat"`
	DisplayEffects int    `xml:"DisplayEffects"`
	DisplayDigits  int    `xml:"DisplayDigits"`
	Unit           string `xml:"Unit"`
	Category       string `xml:"Category"`
}

// ActualsDef mirrors MSActualDefs.xml: the definitions of the per-scan
// actuals streams.
type ActualsDef struct {
	XMLName xml.Name `xml:"Actuals"`

	Version int      `xml:"Version"`
	Actuals []Actual `xml:"Actual"`
}

// ParseMSActualDefs reads and parses an MSActualDefs.xml file.
func ParseMSActualDefs(path string) (*ActualsDef, error) {
	var a ActualsDef
	if err := parseFile(path, &a); err != nil {
		return nil, err
	}
	return &a, nil
}
