package deathrecord

import (
	"time"

	"github.com/nightingaleproject/csv2fhir/models/fhir"
	"github.com/nightingaleproject/csv2fhir/util"
)

// BuildDecedent assembles the subject resource: demographics, the official
// address, the synthetic SSN surrogate and the full extension tree.
//
// No authoritative birth or death timestamp column exists in the input
// schema, so both carry the assembly time.
func BuildDecedent(r Record, ids IdentifierSet, gen Generator, now time.Time) (*fhir.Patient, error) {
	address, err := officialAddress(r,
		FieldPatientCity, FieldPatientCountry, FieldPatientDistrict, FieldPatientState, FieldPatientLine)
	if err != nil {
		return nil, err
	}
	address.Extension = []fhir.Extension{{
		Url:          extInsideCityLimits,
		ValueBoolean: util.BoolPtr(true),
	}}

	given, err := r.Field(FieldGivenName)
	if err != nil {
		return nil, err
	}
	family, err := r.Field(FieldFamilyName)
	if err != nil {
		return nil, err
	}
	gender, err := r.Field(FieldGender)
	if err != nil {
		return nil, err
	}

	extensions, err := buildExtensions(r, decedentExtensionSchema())
	if err != nil {
		return nil, err
	}

	return &fhir.Patient{
		Id:      util.StringPtr(ids[RolePatient]),
		Address: []fhir.Address{*address},
		Name: []fhir.HumanName{{
			Use:    util.StringPtr("official"),
			Given:  []string{given},
			Family: util.StringPtr(family),
		}},
		Gender:           util.StringPtr(gender),
		BirthDate:        util.StringPtr(fhir.NewDate(now).String()),
		DeceasedBoolean:  util.BoolPtr(true),
		DeceasedDateTime: util.StringPtr(fhir.NewDateTime(now).String()),
		Identifier: []fhir.Identifier{{
			// synthetic surrogate, not a real identifying number
			System: util.StringPtr(systemSSN),
			Value:  util.StringPtr(gen.NewSSN()),
		}},
		Extension: extensions,
	}, nil
}

// officialAddress assembles a use=official address from the named columns
func officialAddress(r Record, city, country, district, state, line string) (*fhir.Address, error) {
	fields := [5]string{city, country, district, state, line}
	values := [5]string{}
	for i, name := range fields {
		v, err := r.Field(name)
		if err != nil {
			return nil, err
		}
		values[i] = v
	}
	return &fhir.Address{
		Use:      util.StringPtr("official"),
		City:     util.StringPtr(values[0]),
		Country:  util.StringPtr(values[1]),
		District: util.StringPtr(values[2]),
		State:    util.StringPtr(values[3]),
		Line:     []string{values[4]},
	}, nil
}
