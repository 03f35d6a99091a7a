package fhir

import (
	"encoding/json"
	"fmt"
	"time"
)

// DateTime represents a FHIR dateTime with full precision
type DateTime struct {
	time.Time
}

// NewDateTime creates a new DateTime from a time.Time
func NewDateTime(t time.Time) DateTime {
	return DateTime{Time: t}
}

// String returns the datetime in FHIR format, millisecond precision
func (d DateTime) String() string {
	if d.Time.IsZero() {
		return ""
	}

	t := d.Time
	baseFormat := "2006-01-02T15:04:05.000"

	_, offset := t.Zone()
	if offset == 0 {
		return t.Format(baseFormat + "Z")
	}

	hours := offset / 3600
	minutes := (offset % 3600) / 60
	return fmt.Sprintf("%s%+03d:%02d", t.Format(baseFormat), hours, minutes)
}

// MarshalJSON implements the json.Marshaler interface
func (d DateTime) MarshalJSON() ([]byte, error) {
	if d.Time.IsZero() {
		return json.Marshal("")
	}
	return json.Marshal(d.String())
}
