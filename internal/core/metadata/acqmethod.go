package metadata

import "encoding/xml"

// MethodParameter is one acquisition method setting for a device.
type MethodParameter struct {
	ID          int    `xml:"ID"`
	DisplayName string `xml:"DisplayName"`
	Value       string `xml:"Value"`
	Units       string `xml:"Units"`
}

// MethodDevice groups the method parameters belonging to one device.
type MethodDevice struct {
	Name       string            `xml:"Name"`
	DeviceID   int               `xml:"DeviceID"`
	Parameters []MethodParameter `xml:"Parameter"`
}

// AcqMethod mirrors AcqMethod.xml: the acquisition method the run was
// recorded with.
type AcqMethod struct {
	XMLName xml.Name `xml:"AcqMethod"`

	Version  int            `xml:"Version"`
	Name     string         `xml:"Name"`
	Filename string         `xml:"Filename"`
	Devices  []MethodDevice `xml:"Device"`
}

// ParseAcqMethod reads and parses an AcqMethod.xml file.
func ParseAcqMethod(path string) (*AcqMethod, error) {
	var m AcqMethod
	if err := parseFile(path, &m); err != nil {
		return nil, err
	}
	return &m, nil
}
