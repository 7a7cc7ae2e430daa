package metadata

import "encoding/xml"

// ConfigDevice identifies a device inside DeviceConfigInfo.xml.
type ConfigDevice struct {
	DeviceID    int    `xml:"DeviceID"`
	DisplayName string `xml:"DisplayName"`
}

// ConfigParameter is a single configuration value reported by a device.
type ConfigParameter struct {
	DeviceID     int    `xml:"DeviceID"`
	ResourceName string `xml:"ResourceName"`
	ResourceID   int    `xml:"ResourceID"`
	Value        string `xml:"Value"`
	Units        string `xml:"Units"`
}

// DeviceConfigInfo mirrors DeviceConfigInfo.xml: device identities plus the
// configuration parameters they reported at acquisition time.
type DeviceConfigInfo struct {
	XMLName xml.Name `xml:"DeviceConfigInfo"`

	Devices    []ConfigDevice    `xml:"Device"`
	Parameters []ConfigParameter `xml:"Parameter"`
}

// ParametersFor returns the configuration parameters reported by the device
// with the given id.
func (i *DeviceConfigInfo) ParametersFor(deviceID int) []ConfigParameter {
	var out []ConfigParameter
	for _, p := range i.Parameters {
		if p.DeviceID == deviceID {
			out = append(out, p)
		}
	}
	return out
}

// ParseDeviceConfigInfo reads and parses a DeviceConfigInfo.xml file.
func ParseDeviceConfigInfo(path string) (*DeviceConfigInfo, error) {
	var i DeviceConfigInfo
	if err := parseFile(path, &i); err != nil {
		return nil, err
	}
	return &i, nil
}
