package metadata

import "encoding/xml"

// SampleField is one entry in sample_info.xml: a named value with display
// and typing hints.
type SampleField struct {
	Name        string `xml:"Name"`
	DisplayName string `xml:"DisplayName"`
	Value       string `xml:"Value"`
	DataType    int    `xml:"DataType"`
	Units       string `xml:"Units"`
	FieldType   string `xml:"FieldType"`
	Overridden  bool   `xml:"Overridden"`
}

// SampleInfo mirrors sample_info.xml: the sample description fields entered
// at acquisition time.
type SampleInfo struct {
	XMLName xml.Name `xml:"SampleInfo"`

	Version int           `xml:"Version"`
	Fields  []SampleField `xml:"Field"`
}

// Field returns the field with the given name; ok is false when absent.
func (s *SampleInfo) Field(name string) (SampleField, bool) {
	for _, f := range s.Fields {
		if f.Name == name {
			return f, true
		}
	}
	return SampleField{}, false
}

// ParseSampleInfo reads and parses a sample_info.xml file.
func ParseSampleInfo(path string) (*SampleInfo, error) {
	var s SampleInfo
	if err := parseFile(path, &s); err != nil {
		return nil, err
	}
	return &s, nil
}
