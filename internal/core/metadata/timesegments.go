package metadata

import "encoding/xml"

// TimeSegment is one acquisition time segment from MSTS.xml. Times are in
// minutes.
type TimeSegment struct {
	TimeSegmentID    int     `xml:"TimeSegmentID"`
	StartTime        float64 `xml:"StartTime"`
	EndTime          float64 `xml:"EndTime"`
	NumOfScans       int     `xml:"NumOfScans"`
	FixedCycleLength bool    `xml:"FixedCycleLength"`
}

// MSTimeSegments mirrors MSTS.xml: the time segments the MS acquisition was
// divided into.
type MSTimeSegments struct {
	XMLName xml.Name `xml:"TimeSegments"`

	Version   int           `xml:"Version"`
	IRMStatus int           `xml:"IRMStatus"`
	Segments  []TimeSegment `xml:"TimeSegment"`
}

// TotalScans returns the scan count summed over all segments.
func (m *MSTimeSegments) TotalScans() int {
	total := 0
	for _, s := range m.Segments {
		total += s.NumOfScans
	}
	return total
}

// ParseMSTimeSegments reads and parses an MSTS.xml file.
func ParseMSTimeSegments(path string) (*MSTimeSegments, error) {
	var m MSTimeSegments
	if err := parseFile(path, &m); err != nil {
		return nil, err
	}
	return &m, nil
}
