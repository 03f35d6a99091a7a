package deathrecord

import (
	"strings"

	"github.com/nightingaleproject/csv2fhir/models/fhir"
	"github.com/nightingaleproject/csv2fhir/util"
)

// BuildFindings assembles the ordered clinical findings describing cause and
// circumstances of death. The first ten are unconditional; the pregnancy
// timing observation is appended only when the subject's gender is "female"
// (case-insensitive). Every finding references the subject.
func BuildFindings(r Record, ids IdentifierSet) ([]fhir.Resource, error) {
	subject := ids[RolePatient]

	manner, err := mannerOfDeathFinding(r, ids[FindingRole(1)], subject)
	if err != nil {
		return nil, err
	}
	dateOfDeath, err := dateTimeFinding(r, ids[FindingRole(2)], subject,
		profileDateOfDeath, loincDateOfDeath, "Date and time of death",
		FieldDateOfDeath, FieldTimeOfDeath)
	if err != nil {
		return nil, err
	}
	datePronounced, err := dateTimeFinding(r, ids[FindingRole(3)], subject,
		profileDatePronouncedDead, loincDatePronouncedDead, "Date and time pronounced dead",
		FieldDatePronounced, FieldTimePronounced)
	if err != nil {
		return nil, err
	}
	cause1, err := causeConditionFinding(r, ids[FindingRole(4)], subject,
		FieldCauseCondition1, FieldCauseCondition1Onset)
	if err != nil {
		return nil, err
	}
	cause2, err := causeConditionFinding(r, ids[FindingRole(5)], subject,
		FieldCauseCondition2, FieldCauseCondition2Onset)
	if err != nil {
		return nil, err
	}
	contributing, err := contributingConditionFinding(r, ids[FindingRole(6)], subject)
	if err != nil {
		return nil, err
	}
	autopsyPerformed, err := boolFinding(r, ids[FindingRole(7)], subject,
		profileAutopsyPerformed, loincAutopsyPerformed, "Autopsy was performed",
		FieldAutopsyPerformed)
	if err != nil {
		return nil, err
	}
	autopsyResults, err := boolFinding(r, ids[FindingRole(8)], subject,
		profileAutopsyResults, loincAutopsyResults, "Autopsy results available",
		FieldAutopsyResultsAvailable)
	if err != nil {
		return nil, err
	}
	examinerContacted, err := boolFinding(r, ids[FindingRole(9)], subject,
		profileExaminerContacted, loincExaminerContacted, "Medical examiner or coroner was contacted",
		FieldExaminerContacted)
	if err != nil {
		return nil, err
	}
	tobacco, err := tobaccoFinding(r, ids[FindingRole(10)], subject)
	if err != nil {
		return nil, err
	}

	findings := []fhir.Resource{
		manner, dateOfDeath, datePronounced, cause1, cause2, contributing,
		autopsyPerformed, autopsyResults, examinerContacted, tobacco,
	}

	gender, err := r.Field(FieldGender)
	if err != nil {
		return nil, err
	}
	if strings.EqualFold(gender, "female") {
		findings = append(findings, pregnancyFinding(ids[FindingRole(11)], subject))
	}

	return findings, nil
}

// observationBase assembles the shared observation skeleton
func observationBase(id, subject, profile, loincCode, loincDisplay string) *fhir.Observation {
	return &fhir.Observation{
		Id:      util.StringPtr(id),
		Meta:    &fhir.Meta{Profile: []string{profile}},
		Status:  util.StringPtr("final"),
		Subject: &fhir.Reference{Reference: util.StringPtr(subject)},
		Code: &fhir.CodeableConcept{
			Coding: []fhir.Coding{{
				System:  util.StringPtr(systemLOINC),
				Code:    util.StringPtr(loincCode),
				Display: util.StringPtr(loincDisplay),
			}},
		},
	}
}

func mannerOfDeathFinding(r Record, id, subject string) (*fhir.Observation, error) {
	manner, err := r.Field(FieldMannerOfDeath)
	if err != nil {
		return nil, err
	}
	obs := observationBase(id, subject, profileMannerOfDeath, loincMannerOfDeath, "Manner of death")
	concept := MannerTable.Concept(manner)
	obs.ValueCodeableConcept = &concept
	return obs, nil
}

func dateTimeFinding(r Record, id, subject, profile, code, display, dateField, timeField string) (*fhir.Observation, error) {
	timestamp, err := r.CombineDateTime(dateField, timeField, display)
	if err != nil {
		return nil, err
	}
	obs := observationBase(id, subject, profile, code, display)
	obs.ValueDateTime = util.StringPtr(timestamp)
	return obs, nil
}

func boolFinding(r Record, id, subject, profile, code, display, field string) (*fhir.Observation, error) {
	value, err := r.Bool(field)
	if err != nil {
		return nil, err
	}
	obs := observationBase(id, subject, profile, code, display)
	obs.ValueBoolean = util.BoolPtr(value)
	return obs, nil
}

func tobaccoFinding(r Record, id, subject string) (*fhir.Observation, error) {
	answer, err := r.Field(FieldTobaccoUse)
	if err != nil {
		return nil, err
	}
	obs := observationBase(id, subject, profileTobaccoUse, loincTobaccoUse, "Did tobacco use contribute to death")
	concept := TobaccoTable.Concept(answer)
	obs.ValueCodeableConcept = &concept
	return obs, nil
}

func causeConditionFinding(r Record, id, subject, narrativeField, onsetField string) (*fhir.Condition, error) {
	narrative, err := r.Field(narrativeField)
	if err != nil {
		return nil, err
	}
	onset, err := r.Field(onsetField)
	if err != nil {
		return nil, err
	}
	return &fhir.Condition{
		Id:             util.StringPtr(id),
		Meta:           &fhir.Meta{Profile: []string{profileCauseCondition}},
		ClinicalStatus: util.StringPtr("active"),
		OnsetString:    util.StringPtr(onset),
		Subject:        &fhir.Reference{Reference: util.StringPtr(subject)},
		Text:           narrativeText(narrative),
	}, nil
}

func contributingConditionFinding(r Record, id, subject string) (*fhir.Condition, error) {
	narrative, err := r.Field(FieldContributingCondition)
	if err != nil {
		return nil, err
	}
	return &fhir.Condition{
		Id:      util.StringPtr(id),
		Meta:    &fhir.Meta{Profile: []string{profileContributeCondition}},
		Subject: &fhir.Reference{Reference: util.StringPtr(subject)},
		Text:    narrativeText(narrative),
	}, nil
}

// pregnancyFinding is only assembled for female subjects. No source column
// carries the pregnancy status, so the value is the fixed "not pregnant
// within past year" concept.
func pregnancyFinding(id, subject string) *fhir.Observation {
	obs := observationBase(id, subject, profilePregnancyTiming, loincPregnancyTiming,
		"Timing of recent pregnancy in relation to death")
	obs.ValueCodeableConcept = &fhir.CodeableConcept{
		Coding: []fhir.Coding{{
			System:  util.StringPtr(systemPregnancy),
			Code:    util.StringPtr("PHC1260"),
			Display: util.StringPtr("Not pregnant within past year"),
		}},
	}
	return obs
}

func narrativeText(content string) *fhir.Narrative {
	div := "<div xmlns='http://www.w3.org/1999/xhtml'>" + content + "</div>"
	return &fhir.Narrative{
		Status: util.StringPtr("additional"),
		Div:    util.StringPtr(div),
	}
}
