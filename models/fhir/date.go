package fhir

import (
	"encoding/json"
	"time"
)

// Date represents a FHIR date (day precision)
type Date struct {
	time.Time
}

// NewDate creates a new Date from a time.Time
func NewDate(t time.Time) Date {
	return Date{Time: t}
}

// String returns the date in YYYY-MM-DD format
func (d Date) String() string {
	if d.Time.IsZero() {
		return ""
	}
	return d.Format("2006-01-02")
}

// MarshalJSON implements the json.Marshaler interface
func (d Date) MarshalJSON() ([]byte, error) {
	if d.Time.IsZero() {
		return json.Marshal("")
	}
	return json.Marshal(d.String())
}
