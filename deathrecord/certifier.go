package deathrecord

import (
	"github.com/nightingaleproject/csv2fhir/models/fhir"
	"github.com/nightingaleproject/csv2fhir/util"
)

// BuildCertifier assembles the certifying professional: name, address and a
// single qualification entry resolved from the credential title table.
func BuildCertifier(r Record, ids IdentifierSet) (*fhir.Practitioner, error) {
	fields := [5]string{
		FieldPractitionerCity, FieldPractitionerCountry, FieldPractitionerDistrict,
		FieldPractitionerState, FieldPractitionerLine,
	}
	values := [5]string{}
	for i, name := range fields {
		v, err := r.Field(name)
		if err != nil {
			return nil, err
		}
		values[i] = v
	}

	family, err := r.Field(FieldPractitionerFamily)
	if err != nil {
		return nil, err
	}
	given, err := r.Field(FieldPractitionerGiven)
	if err != nil {
		return nil, err
	}
	suffix, err := r.Field(FieldPractitionerSuffix)
	if err != nil {
		return nil, err
	}
	credential, err := r.Field(FieldPractitionerCredential)
	if err != nil {
		return nil, err
	}

	return &fhir.Practitioner{
		Id: util.StringPtr(ids[RolePractitioner]),
		Address: []fhir.Address{{
			City:     util.StringPtr(values[0]),
			Country:  util.StringPtr(values[1]),
			District: util.StringPtr(values[2]),
			State:    util.StringPtr(values[3]),
			Line:     []string{values[4]},
		}},
		Name: []fhir.HumanName{{
			Use:    util.StringPtr("official"),
			Family: util.StringPtr(family),
			Given:  []string{given},
			Suffix: []string{suffix},
		}},
		Qualification: []fhir.PractitionerQualification{{
			Code:    util.StringPtr(credential),
			Display: util.StringPtr(CredentialTitle(credential)),
			System:  util.StringPtr(systemV2Table0360),
		}},
	}, nil
}
