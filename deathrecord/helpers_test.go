package deathrecord

import (
	"fmt"
	"sync"
	"time"
)

func timeFixed() time.Time {
	return time.Date(2020, 6, 1, 12, 0, 0, 0, time.UTC)
}

// seqGenerator hands out deterministic identifiers for tests
type seqGenerator struct {
	mu sync.Mutex
	n  int
}

func (g *seqGenerator) NewID() string {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.n++
	return fmt.Sprintf("id-%04d", g.n)
}

func (g *seqGenerator) NewSSN() string {
	return "123456789"
}

// validRecord returns a record carrying every required column
func validRecord() Record {
	return Record{
		FieldPatientCity:     "Boston",
		FieldPatientCountry:  "USA",
		FieldPatientDistrict: "Suffolk",
		FieldPatientState:    "MA",
		FieldPatientLine:     "1 Main St",

		FieldGivenName:  "Alice",
		FieldFamilyName: "Smith",
		FieldGender:     "Male",
		FieldAge:        "67",

		FieldBirthCity:     "Salem",
		FieldBirthCountry:  "USA",
		FieldBirthDistrict: "Essex",
		FieldBirthState:    "MA",
		FieldBirthLine:     "2 Elm St",

		FieldPlaceOfDeath: "Boston General",
		FieldEducation:    "Bachelor's Degree",
		FieldJob:          "Electrician",
		FieldIndustry:     "Construction",
		FieldArmyService:  "true",

		FieldDispositionType:         "Burial",
		FieldDispositionFacilityName: "Greenlawn Cemetery",
		FieldDispositionCity:         "Boston",
		FieldDispositionCountry:      "USA",
		FieldDispositionDistrict:     "Suffolk",
		FieldDispositionState:        "MA",
		FieldDispositionLine:         "3 Oak St",

		FieldFuneralFacilityName: "Smith Funeral Home",
		FieldFuneralCity:         "Boston",
		FieldFuneralCountry:      "USA",
		FieldFuneralDistrict:     "Suffolk",
		FieldFuneralState:        "MA",
		FieldFuneralLine:         "4 Pine St",

		FieldRace1: "White",
		FieldRace2: "Not Hispanic or Latino",
		FieldRace3: "White",
		FieldRace4: "White",
		FieldRace5: "White",

		FieldPractitionerCity:       "Boston",
		FieldPractitionerCountry:    "USA",
		FieldPractitionerDistrict:   "Suffolk",
		FieldPractitionerState:      "MA",
		FieldPractitionerLine:       "5 Ash St",
		FieldPractitionerFamily:     "Jones",
		FieldPractitionerGiven:      "Robert",
		FieldPractitionerSuffix:     "Jr",
		FieldPractitionerCredential: "MD",

		FieldMannerOfDeath:  "Natural",
		FieldDateOfDeath:    "01-JAN-20",
		FieldTimeOfDeath:    "14:30:00",
		FieldDatePronounced: "01-JAN-20",
		FieldTimePronounced: "15:00:00",

		FieldCauseCondition1:       "Cardiac arrest",
		FieldCauseCondition1Onset:  "minutes",
		FieldCauseCondition2:       "Coronary artery disease",
		FieldCauseCondition2Onset:  "years",
		FieldContributingCondition: "Diabetes",

		FieldAutopsyPerformed:        "false",
		FieldAutopsyResultsAvailable: "false",
		FieldExaminerContacted:       "true",
		FieldTobaccoUse:              "No",
	}
}
