package fhir

import "encoding/json"

// Resource is the closed set of resource variants that can appear in a death
// record document bundle. ResourceID returns the bundle-wide reference token
// the resource was assembled under.
type Resource interface {
	Kind() string
	ResourceID() string
}

// Patient represents the decedent
type Patient struct {
	Id               *string     `json:"id,omitempty"`
	Identifier       []Identifier `json:"identifier,omitempty"`
	Name             []HumanName `json:"name,omitempty"`
	Address          []Address   `json:"address,omitempty"`
	Gender           *string     `json:"gender,omitempty"`
	BirthDate        *string     `json:"birthDate,omitempty"`
	DeceasedBoolean  *bool       `json:"deceasedBoolean,omitempty"`
	DeceasedDateTime *string     `json:"deceasedDateTime,omitempty"`
	Extension        []Extension `json:"extension,omitempty"`
}

func (r *Patient) Kind() string       { return "Patient" }
func (r *Patient) ResourceID() string { return deref(r.Id) }

// MarshalJSON adds the resourceType discriminator
func (r Patient) MarshalJSON() ([]byte, error) {
	type otherPatient Patient
	return json.Marshal(struct {
		otherPatient
		ResourceType string `json:"resourceType"`
	}{otherPatient(r), "Patient"})
}

// Practitioner represents the certifying professional
type Practitioner struct {
	Id            *string                     `json:"id,omitempty"`
	Name          []HumanName                 `json:"name,omitempty"`
	Address       []Address                   `json:"address,omitempty"`
	Qualification []PractitionerQualification `json:"qualification,omitempty"`
}

// PractitionerQualification holds one credential entry
type PractitionerQualification struct {
	Code    *string `json:"code,omitempty"`
	Display *string `json:"display,omitempty"`
	System  *string `json:"system,omitempty"`
}

func (r *Practitioner) Kind() string       { return "Practitioner" }
func (r *Practitioner) ResourceID() string { return deref(r.Id) }

func (r Practitioner) MarshalJSON() ([]byte, error) {
	type otherPractitioner Practitioner
	return json.Marshal(struct {
		otherPractitioner
		ResourceType string `json:"resourceType"`
	}{otherPractitioner(r), "Practitioner"})
}

// Observation is a finding with a coded, boolean or datetime value
type Observation struct {
	Id                   *string          `json:"id,omitempty"`
	Meta                 *Meta            `json:"meta,omitempty"`
	Status               *string          `json:"status,omitempty"`
	Code                 *CodeableConcept `json:"code,omitempty"`
	Subject              *Reference       `json:"subject,omitempty"`
	ValueCodeableConcept *CodeableConcept `json:"valueCodeableConcept,omitempty"`
	ValueDateTime        *string          `json:"valueDateTime,omitempty"`
	ValueBoolean         *bool            `json:"valueBoolean,omitempty"`
}

func (r *Observation) Kind() string       { return "Observation" }
func (r *Observation) ResourceID() string { return deref(r.Id) }

func (r Observation) MarshalJSON() ([]byte, error) {
	type otherObservation Observation
	return json.Marshal(struct {
		otherObservation
		ResourceType string `json:"resourceType"`
	}{otherObservation(r), "Observation"})
}

// Condition is a narrative finding (cause of death, contributing condition)
type Condition struct {
	Id             *string    `json:"id,omitempty"`
	Meta           *Meta      `json:"meta,omitempty"`
	ClinicalStatus *string    `json:"clinicalStatus,omitempty"`
	OnsetString    *string    `json:"onsetString,omitempty"`
	Subject        *Reference `json:"subject,omitempty"`
	Text           *Narrative `json:"text,omitempty"`
}

func (r *Condition) Kind() string       { return "Condition" }
func (r *Condition) ResourceID() string { return deref(r.Id) }

func (r Condition) MarshalJSON() ([]byte, error) {
	type otherCondition Condition
	return json.Marshal(struct {
		otherCondition
		ResourceType string `json:"resourceType"`
	}{otherCondition(r), "Condition"})
}

// Composition is the cover document referencing every other resource
type Composition struct {
	Id       *string              `json:"id,omitempty"`
	Meta     *Meta                `json:"meta,omitempty"`
	Status   *string              `json:"status,omitempty"`
	Type     *CodeableConcept     `json:"type,omitempty"`
	Subject  *Reference           `json:"subject,omitempty"`
	Date     *string              `json:"date,omitempty"`
	Author   []Reference          `json:"author,omitempty"`
	Title    *string              `json:"title,omitempty"`
	Section  []CompositionSection `json:"section,omitempty"`
	Event    []CompositionEvent   `json:"event,omitempty"`
	Attester []CompositionAttester `json:"attester,omitempty"`
}

// CompositionSection lists the references the document covers
type CompositionSection struct {
	Code  *CodeableConcept `json:"code,omitempty"`
	Entry []Reference      `json:"entry,omitempty"`
}

// CompositionEvent records the clinical event the document is about
type CompositionEvent struct {
	Code   *CodeableConcept `json:"code,omitempty"`
	Detail []Reference      `json:"detail,omitempty"`
}

// CompositionAttester names who vouches for the document
type CompositionAttester struct {
	Mode  []string   `json:"mode,omitempty"`
	Party *Reference `json:"party,omitempty"`
	Time  *string    `json:"time,omitempty"`
}

func (r *Composition) Kind() string       { return "Composition" }
func (r *Composition) ResourceID() string { return deref(r.Id) }

func (r Composition) MarshalJSON() ([]byte, error) {
	type otherComposition Composition
	return json.Marshal(struct {
		otherComposition
		ResourceType string `json:"resourceType"`
	}{otherComposition(r), "Composition"})
}

// Bundle is the per-record document container
type Bundle struct {
	Id    *string       `json:"id,omitempty"`
	Type  *string       `json:"type,omitempty"`
	Entry []BundleEntry `json:"entry,omitempty"`
}

// BundleEntry pairs a full reference URL with the resource it identifies
type BundleEntry struct {
	FullUrl  *string  `json:"fullUrl,omitempty"`
	Resource Resource `json:"resource,omitempty"`
}

func (r Bundle) MarshalJSON() ([]byte, error) {
	type otherBundle Bundle
	return json.Marshal(struct {
		otherBundle
		ResourceType string `json:"resourceType"`
	}{otherBundle(r), "Bundle"})
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
