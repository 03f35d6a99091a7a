package deathrecord

import "fmt"

// MissingFieldError reports a required record key that was absent. The record
// it belongs to contributes no bundle.
type MissingFieldError struct {
	Field string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("record is missing required field %q", e.Field)
}

// NumericParseError reports a field that was expected to hold an integer
type NumericParseError struct {
	Field string
	Value string
}

func (e *NumericParseError) Error() string {
	return fmt.Sprintf("field %q: value %q is not an integer", e.Field, e.Value)
}

// DateParseError reports a date+time column pair that could not be combined
// into a timestamp. Failed names whichever of the two columns did not parse.
type DateParseError struct {
	DateField string
	TimeField string
	Failed    string
	Finding   string
	Err       error
}

func (e *DateParseError) Error() string {
	return fmt.Sprintf("finding %q: cannot parse field %q of pair (%s, %s): %v",
		e.Finding, e.Failed, e.DateField, e.TimeField, e.Err)
}

func (e *DateParseError) Unwrap() error { return e.Err }

// ConsistencyError reports a referential-integrity violation detected after
// assembly. It indicates an engine defect and aborts batch processing.
type ConsistencyError struct {
	Reason string
}

func (e *ConsistencyError) Error() string {
	return "document bundle inconsistent: " + e.Reason
}
