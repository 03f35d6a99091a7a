package deathrecord

import (
	"strconv"
	"strings"
	"time"
)

// Record is one parsed input row: a flat mapping from column name to the raw
// string value. Records are never mutated by the engine.
type Record map[string]string

// Column names of the flat death-record input schema
const (
	FieldPatientCity     = "PATIENTS_ADDRESS_CITY"
	FieldPatientCountry  = "PATIENTS_ADDRESS_COUNTRY"
	FieldPatientDistrict = "PATIENTS_ADDRESS_DISTRICT"
	FieldPatientState    = "PATIENTS_ADDRESS_STATE"
	FieldPatientLine     = "PATIENTS_ADDRESS_LINE"

	FieldGivenName  = "PATIENTS_GIVENNAME"
	FieldFamilyName = "PATIENTS_FAMILYNAME"
	FieldGender     = "PATIENT_GENDER_ATTIMEOFDEATH"
	FieldAge        = "PATIENT_AGE"

	FieldBirthCity     = "PATIENT_BIRTH_CITY"
	FieldBirthCountry  = "PATIENT_BIRTH_COUNTRY"
	FieldBirthDistrict = "PATIENT_BIRTH_DISTRICT"
	FieldBirthState    = "PATIENT_BIRTH_STATE"
	FieldBirthLine     = "PATIENT_BIRTH_LINE"

	FieldPlaceOfDeath = "PATIENT_PLACE_OF_DEATH"
	FieldEducation    = "PATIENTS_EDUCATION"
	FieldJob          = "PATIENTS_JOB"
	FieldIndustry     = "PATIENTS_INDUSTRY"
	FieldArmyService  = "PATIENTS_ARMY_SERVICE"

	FieldDispositionType         = "PATIENTS_DISPOSITION_TYPE"
	FieldDispositionFacilityName = "PATIENTS_DISPOSITION_FACLITY_NAME"
	FieldDispositionCity         = "PATIENTS_DISPOSITION_FACLITY_CITY"
	FieldDispositionCountry      = "PATIENTS_DISPOSITION_FACLITY_COUNTRY"
	FieldDispositionDistrict     = "PATIENTS_DISPOSITION_FACLITY_DISTRICT"
	FieldDispositionState        = "PATIENTS_DISPOSITION_FACLITY_STATE"
	FieldDispositionLine         = "PATIENTS_DISPOSITION_FACLITY_LINE"

	FieldFuneralFacilityName = "PATIENTS_FUNERAL_FACILITY_NAME"
	FieldFuneralCity         = "PATIENTS_FUNERAL_FACILITY_CITY"
	FieldFuneralCountry      = "PATIENTS_FUNERAL_FACILITY_COUNTRY"
	FieldFuneralDistrict     = "PATIENTS_FUNERAL_FACILITY_DISTRICT"
	FieldFuneralState        = "PATIENTS_FUNERAL_FACILITY_STATE"
	FieldFuneralLine         = "PATIENTS_FUNERAL_FACILITY_LINE"

	FieldRace1 = "RACE_OF_PATIENT_1"
	FieldRace2 = "RACE_OF_PATIENT_2"
	FieldRace3 = "RACE_OF_PATIENT_3"
	FieldRace4 = "RACE_OF_PATIENT_4"
	FieldRace5 = "RACE_OF_PATIENT_5"

	FieldPractitionerCity       = "PRACTITIONERS_ADDRESS_CITY"
	FieldPractitionerCountry    = "PRACTITIONERS_ADDRESS_COUNTRY"
	FieldPractitionerDistrict   = "PRACTITIONERS_ADDRESS_DISTRICT"
	FieldPractitionerState      = "PRACTITIONERS_ADDRESS_STATE"
	FieldPractitionerLine       = "PRACTITIONERS_ADDRESS_LINE"
	FieldPractitionerFamily     = "PRACTITIONERS_FAMILY_NAME"
	FieldPractitionerGiven      = "PRACTITIONERS_GIVEN_NAME"
	FieldPractitionerSuffix     = "PRACTITIONERS_SUFFIX"
	FieldPractitionerCredential = "PRACTITIONERS_EDUCATION"

	FieldMannerOfDeath  = "MANNER_OF_DEATH"
	FieldDateOfDeath    = "ACTUAL_OR_PRESUMERD_DATE_OF_DEATH"
	FieldTimeOfDeath    = "ACTUAL_OR_PRESUMERD_TIME_OF_DEATH"
	FieldDatePronounced = "DATE_PRONOUNCED_DEAD"
	FieldTimePronounced = "TIME_PRONOUNCED_DEAD"

	FieldCauseCondition1       = "CAUSE_OF_DEATH_CONDITION_1"
	FieldCauseCondition1Onset  = "TIME_CAUSE_OF_DEATH_CONDITION_1_OCCURED"
	FieldCauseCondition2       = "CAUSE_OF_DEATH_CONDITION_2"
	FieldCauseCondition2Onset  = "TIME_CAUSE_OF_DEATH_CONDITION_2_OCCURED"
	FieldContributingCondition = "CONTRIBUTED_TO_DEATH_CONDITION"

	FieldAutopsyPerformed        = "AUTOPSY_PERFORMED[TRUE/FALSE]"
	FieldAutopsyResultsAvailable = "AUTOPSY_RESULTS_AVALIABLE_[TRUE/FALSE]"
	FieldExaminerContacted       = "MEDICAL_EXAMINER_CONTACTED_[TRUE/FALSE]"
	FieldTobaccoUse              = "TOBACCO_CONTRIBUTED_TO_DEATH"
)

// Input date and time layouts of the upstream registry export
const (
	dateLayout = "02-Jan-06"
	timeLayout = "15:04:05"
)

// Field returns the raw value of a required column
func (r Record) Field(name string) (string, error) {
	v, ok := r[name]
	if !ok {
		return "", &MissingFieldError{Field: name}
	}
	return v, nil
}

// Bool parses a flag column. Only a case-insensitive exact "true" is true;
// every other value, including empty, is false.
func (r Record) Bool(name string) (bool, error) {
	v, err := r.Field(name)
	if err != nil {
		return false, err
	}
	return strings.EqualFold(v, "true"), nil
}

// Int parses an integer column
func (r Record) Int(name string) (int, error) {
	v, err := r.Field(name)
	if err != nil {
		return 0, err
	}
	n, err := strconv.Atoi(strings.TrimSpace(v))
	if err != nil {
		return 0, &NumericParseError{Field: name, Value: v}
	}
	return n, nil
}

// CombineDateTime merges a date column and a time column into one timestamp
// string, e.g. "01-JAN-20" + "14:30:00" -> "2020-01-01 14:30:00.0000000+00:00".
// The month token is matched case-insensitively.
func (r Record) CombineDateTime(dateField, timeField, finding string) (string, error) {
	dateVal, err := r.Field(dateField)
	if err != nil {
		return "", err
	}
	timeVal, err := r.Field(timeField)
	if err != nil {
		return "", err
	}

	d, err := time.Parse(dateLayout, normalizeMonth(strings.TrimSpace(dateVal)))
	if err != nil {
		return "", &DateParseError{DateField: dateField, TimeField: timeField, Failed: dateField, Finding: finding, Err: err}
	}
	t, err := time.Parse(timeLayout, strings.TrimSpace(timeVal))
	if err != nil {
		return "", &DateParseError{DateField: dateField, TimeField: timeField, Failed: timeField, Finding: finding, Err: err}
	}

	combined := time.Date(d.Year(), d.Month(), d.Day(), t.Hour(), t.Minute(), t.Second(), 0, time.UTC)
	return combined.Format("2006-01-02 15:04:05") + ".0000000+00:00", nil
}

// normalizeMonth rewrites the month token of a DD-MON-YY value to title case
// so that upper- and lowercase exports both parse
func normalizeMonth(s string) string {
	parts := strings.SplitN(s, "-", 3)
	if len(parts) != 3 || parts[1] == "" {
		return s
	}
	m := strings.ToLower(parts[1])
	parts[1] = strings.ToUpper(m[:1]) + m[1:]
	return strings.Join(parts, "-")
}
