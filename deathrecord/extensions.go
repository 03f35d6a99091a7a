package deathrecord

import (
	"fmt"

	"github.com/nightingaleproject/csv2fhir/models/fhir"
	"github.com/nightingaleproject/csv2fhir/util"
)

// The decedent extension tree has a static shape; only leaf values vary per
// record. The shape is declared as a schema of field bindings and coded-value
// specs, interpreted by one generic builder.

type extKind int

const (
	kindString extKind = iota
	kindBool
	kindInt
	kindAddress
	kindConcept
	kindCoding
	kindBirthSex
	kindGroup
)

// addressBinding names the record columns feeding one postal address
type addressBinding struct {
	city     string
	country  string
	district string
	state    string
	line     string
}

// codingSpec declares a coded leaf: a fixed system and code, with the display
// text either fixed or drawn from a record column
type codingSpec struct {
	system       string
	code         string
	display      string
	displayField string
	wrapConcept  bool // emit valueCodeableConcept instead of valueCoding
}

// extensionSpec declares one node of the tree
type extensionSpec struct {
	url      string
	kind     extKind
	field    string
	table    *CodeTable
	coding   *codingSpec
	address  *addressBinding
	children []extensionSpec
}

// decedentExtensionSchema declares the full extension tree attached to the
// subject resource. Sibling labels are unique at every level.
func decedentExtensionSchema() []extensionSpec {
	birthAddr := &addressBinding{
		city: FieldBirthCity, country: FieldBirthCountry, district: FieldBirthDistrict,
		state: FieldBirthState, line: FieldBirthLine,
	}
	dispositionAddr := &addressBinding{
		city: FieldDispositionCity, country: FieldDispositionCountry, district: FieldDispositionDistrict,
		state: FieldDispositionState, line: FieldDispositionLine,
	}
	funeralAddr := &addressBinding{
		city: FieldFuneralCity, country: FieldFuneralCountry, district: FieldFuneralDistrict,
		state: FieldFuneralState, line: FieldFuneralLine,
	}

	return []extensionSpec{
		{url: extAge, kind: kindInt, field: FieldAge},
		{url: extBirthSex, kind: kindBirthSex, field: FieldGender},
		{url: extBirthplace, kind: kindAddress, address: birthAddr},
		{url: extPlaceOfDeath, kind: kindGroup, children: []extensionSpec{
			{url: extPlaceOfDeathType, kind: kindCoding, coding: &codingSpec{
				system: systemSNOMED, code: "16983000", display: "Death in hospital", wrapConcept: true,
			}},
			{url: extFacilityName, kind: kindString, field: FieldPlaceOfDeath},
			// the registry export carries the facility address in the
			// funeral facility columns
			{url: extPostalAddress, kind: kindAddress, address: funeralAddr},
		}},
		{url: extEthnicity, kind: kindGroup, children: []extensionSpec{
			{url: "text", kind: kindString, field: FieldRace1},
			{url: "ombCategory", kind: kindCoding, coding: &codingSpec{
				system: systemRaceOMB, code: "2186-5", displayField: FieldRace2,
			}},
		}},
		{url: extRace, kind: kindGroup, children: []extensionSpec{
			{url: "text", kind: kindString, field: FieldRace3},
			{url: "ombCategory", kind: kindCoding, coding: &codingSpec{
				system: systemRaceOMB, code: "2106-3", displayField: FieldRace4,
			}},
			{url: "detailed", kind: kindCoding, coding: &codingSpec{
				system: systemRaceOMB, code: "2028-9", displayField: FieldRace5,
			}},
		}},
		{url: extEducation, kind: kindConcept, field: FieldEducation, table: EducationTable},
		{url: extOccupation, kind: kindGroup, children: []extensionSpec{
			{url: extJob, kind: kindString, field: FieldJob},
			{url: extIndustry, kind: kindString, field: FieldIndustry},
		}},
		{url: extServedInArmedForces, kind: kindBool, field: FieldArmyService},
		{url: extDisposition, kind: kindGroup, children: []extensionSpec{
			{url: extDispositionType, kind: kindConcept, field: FieldDispositionType, table: DispositionTable},
			{url: extDispositionFacility, kind: kindGroup, children: []extensionSpec{
				{url: extFacilityName, kind: kindString, field: FieldDispositionFacilityName},
				{url: extPostalAddress, kind: kindAddress, address: dispositionAddr},
			}},
			{url: extFuneralFacility, kind: kindGroup, children: []extensionSpec{
				{url: extFacilityName, kind: kindString, field: FieldFuneralFacilityName},
				{url: extPostalAddress, kind: kindAddress, address: funeralAddr},
			}},
		}},
	}
}

// buildExtensions interprets a schema level against one record
func buildExtensions(r Record, specs []extensionSpec) ([]fhir.Extension, error) {
	out := make([]fhir.Extension, 0, len(specs))
	for _, spec := range specs {
		ext, err := buildExtension(r, spec)
		if err != nil {
			return nil, err
		}
		out = append(out, ext)
	}
	return out, nil
}

func buildExtension(r Record, spec extensionSpec) (fhir.Extension, error) {
	ext := fhir.Extension{Url: spec.url}

	switch spec.kind {
	case kindString:
		v, err := r.Field(spec.field)
		if err != nil {
			return ext, err
		}
		ext.ValueString = util.StringPtr(v)

	case kindBool:
		v, err := r.Bool(spec.field)
		if err != nil {
			return ext, err
		}
		ext.ValueBoolean = util.BoolPtr(v)

	case kindInt:
		v, err := r.Int(spec.field)
		if err != nil {
			return ext, err
		}
		ext.ValueDecimal = util.IntPtr(v)

	case kindAddress:
		addr, err := buildPostalAddress(r, spec.address)
		if err != nil {
			return ext, err
		}
		ext.ValueAddress = addr

	case kindConcept:
		v, err := r.Field(spec.field)
		if err != nil {
			return ext, err
		}
		concept := spec.table.Concept(v)
		ext.ValueCodeableConcept = &concept

	case kindCoding:
		coding := fhir.Coding{
			System: util.StringPtr(spec.coding.system),
			Code:   util.StringPtr(spec.coding.code),
		}
		display := spec.coding.display
		if spec.coding.displayField != "" {
			v, err := r.Field(spec.coding.displayField)
			if err != nil {
				return ext, err
			}
			display = v
		}
		coding.Display = util.StringPtr(display)
		if spec.coding.wrapConcept {
			ext.ValueCodeableConcept = &fhir.CodeableConcept{Coding: []fhir.Coding{coding}}
		} else {
			ext.ValueCoding = &coding
		}

	case kindBirthSex:
		gender, err := r.Field(spec.field)
		if err != nil {
			return ext, err
		}
		ext.ValueCodeableConcept = &fhir.CodeableConcept{Coding: []fhir.Coding{birthSexCoding(gender)}}

	case kindGroup:
		children, err := buildExtensions(r, spec.children)
		if err != nil {
			return ext, err
		}
		ext.Extension = children

	default:
		return ext, fmt.Errorf("extension %s: unknown spec kind %d", spec.url, spec.kind)
	}

	return ext, nil
}

// buildPostalAddress assembles a postal-type address from bound columns
func buildPostalAddress(r Record, b *addressBinding) (*fhir.Address, error) {
	fields := [5]string{b.city, b.country, b.district, b.state, b.line}
	values := [5]string{}
	for i, name := range fields {
		v, err := r.Field(name)
		if err != nil {
			return nil, err
		}
		values[i] = v
	}
	return &fhir.Address{
		Type:     util.StringPtr("postal"),
		City:     util.StringPtr(values[0]),
		Country:  util.StringPtr(values[1]),
		District: util.StringPtr(values[2]),
		State:    util.StringPtr(values[3]),
		Line:     []string{values[4]},
	}, nil
}
