package fhir

// Coding represents a FHIR Coding
type Coding struct {
	System  *string `json:"system,omitempty"`
	Code    *string `json:"code,omitempty"`
	Display *string `json:"display,omitempty"`
}

// CodeableConcept represents a FHIR CodeableConcept
type CodeableConcept struct {
	Coding []Coding `json:"coding,omitempty"`
	Text   *string  `json:"text,omitempty"`
}

// Reference represents a FHIR Reference
type Reference struct {
	Reference *string `json:"reference,omitempty"`
	Display   *string `json:"display,omitempty"`
}

// Identifier represents a FHIR Identifier
type Identifier struct {
	Use    *string `json:"use,omitempty"`
	System *string `json:"system,omitempty"`
	Value  *string `json:"value,omitempty"`
}

// HumanName represents a FHIR HumanName
type HumanName struct {
	Use    *string  `json:"use,omitempty"`
	Family *string  `json:"family,omitempty"`
	Given  []string `json:"given,omitempty"`
	Suffix []string `json:"suffix,omitempty"`
}

// Address represents a FHIR Address
type Address struct {
	Use       *string     `json:"use,omitempty"`
	Type      *string     `json:"type,omitempty"`
	Line      []string    `json:"line,omitempty"`
	City      *string     `json:"city,omitempty"`
	District  *string     `json:"district,omitempty"`
	State     *string     `json:"state,omitempty"`
	Country   *string     `json:"country,omitempty"`
	Extension []Extension `json:"extension,omitempty"`
}

// Extension is a labeled attribute attached to a resource or to another
// extension. Exactly one of the value fields or Extension (children) is set.
type Extension struct {
	Url                  string           `json:"url"`
	ValueString          *string          `json:"valueString,omitempty"`
	ValueBoolean         *bool            `json:"valueBoolean,omitempty"`
	ValueDecimal         *int             `json:"valueDecimal,omitempty"`
	ValueAddress         *Address         `json:"valueAddress,omitempty"`
	ValueCoding          *Coding          `json:"valueCoding,omitempty"`
	ValueCodeableConcept *CodeableConcept `json:"valueCodeableConcept,omitempty"`
	Extension            []Extension      `json:"extension,omitempty"`
}

// Meta carries the profile URLs a resource claims conformance to
type Meta struct {
	Profile []string `json:"profile,omitempty"`
}

// Narrative represents a FHIR Narrative
type Narrative struct {
	Status *string `json:"status,omitempty"`
	Div    *string `json:"div,omitempty"`
}
