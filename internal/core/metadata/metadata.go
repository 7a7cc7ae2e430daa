// Package metadata parses the XML metadata documents stored in the AcqData
// directory of an Agilent .d datafile. Each document gets a typed parser
// that reads the file from disk and returns a struct mirroring its content.
package metadata

import (
	"encoding/xml"
	"fmt"
	"os"
	"time"
)

// parseFile reads path and unmarshals its XML content into v.
func parseFile(path string, v interface{}) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	if err := xml.Unmarshal(data, v); err != nil {
		return fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return nil
}

// Timestamp is a time.Time that unmarshals from the RFC 3339 timestamps
// MassHunter writes (fractional seconds and zone offset included).
type Timestamp struct {
	time.Time
}

// UnmarshalXML implements xml.Unmarshaler.
func (t *Timestamp) UnmarshalXML(d *xml.Decoder, start xml.StartElement) error {
	var raw string
	if err := d.DecodeElement(&raw, &start); err != nil {
		return err
	}
	if raw == "" {
		t.Time = time.Time{}
		return nil
	}
	parsed, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return fmt.Errorf("invalid timestamp %q: %w", raw, err)
	}
	t.Time = parsed
	return nil
}

// MarshalXML implements xml.Marshaler.
func (t Timestamp) MarshalXML(e *xml.Encoder, start xml.StartElement) error {
	return e.EncodeElement(t.Format(time.RFC3339Nano), start)
}
