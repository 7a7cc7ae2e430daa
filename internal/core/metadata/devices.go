package metadata

import (
	"encoding/xml"

	"github.com/chromatools/agd/internal/core/enums"
)

// Device is one acquisition module listed in Devices.xml.
type Device struct {
	DeviceID       int                  `xml:"DeviceID"`
	DisplayName    string               `xml:"DisplayName"`
	ModelNumber    string               `xml:"ModelNumber"`
	OrdinalNumber  int                  `xml:"OrdinalNumber"`
	SerialNumber   string               `xml:"SerialNumber"`
	Type           enums.DeviceType     `xml:"Type"`
	StoredDataType enums.StoredDataType `xml:"StoredDataType"`
	Delay          float64              `xml:"Delay"`
	Vendor         int                  `xml:"Vendor"`
}

// DeviceList mirrors Devices.xml: the instrument modules that took part in
// the acquisition.
type DeviceList struct {
	XMLName xml.Name `xml:"Devices"`

	Version int      `xml:"Version"`
	Devices []Device `xml:"Device"`
}

// DeviceByID returns the device with the given id; ok is false when absent.
func (l *DeviceList) DeviceByID(id int) (Device, bool) {
	for _, d := range l.Devices {
		if d.DeviceID == id {
			return d, true
		}
	}
	return Device{}, false
}

// ParseDevices reads and parses a Devices.xml file.
func ParseDevices(path string) (*DeviceList, error) {
	var l DeviceList
	if err := parseFile(path, &l); err != nil {
		return nil, err
	}
	return &l, nil
}
