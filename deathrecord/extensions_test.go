package deathrecord

import (
	"errors"
	"testing"

	"github.com/nightingaleproject/csv2fhir/models/fhir"
)

func TestDecedentExtensionSchemaSiblingLabelsUnique(t *testing.T) {
	var walk func(t *testing.T, path string, specs []extensionSpec)
	walk = func(t *testing.T, path string, specs []extensionSpec) {
		seen := map[string]bool{}
		for _, spec := range specs {
			if seen[spec.url] {
				t.Errorf("duplicate sibling label %q under %s", spec.url, path)
			}
			seen[spec.url] = true
			if len(spec.children) > 0 {
				walk(t, path+"/"+spec.url, spec.children)
			}
		}
	}
	walk(t, "", decedentExtensionSchema())
}

func TestBuildExtensions(t *testing.T) {
	r := validRecord()
	exts, err := buildExtensions(r, decedentExtensionSchema())
	if err != nil {
		t.Fatalf("buildExtensions returned error: %v", err)
	}

	if len(exts) != 10 {
		t.Fatalf("top-level extension count = %d, want 10", len(exts))
	}

	byURL := map[string]fhir.Extension{}
	for _, ext := range exts {
		byURL[ext.Url] = ext
	}

	age, ok := byURL[extAge]
	if !ok || age.ValueDecimal == nil || *age.ValueDecimal != 67 {
		t.Errorf("age extension = %+v, want decimal 67", age)
	}

	armed, ok := byURL[extServedInArmedForces]
	if !ok || armed.ValueBoolean == nil || *armed.ValueBoolean != true {
		t.Errorf("armed forces extension = %+v, want boolean true", armed)
	}

	birthplace, ok := byURL[extBirthplace]
	if !ok || birthplace.ValueAddress == nil {
		t.Fatalf("birthplace extension missing an address")
	}
	if *birthplace.ValueAddress.City != "Salem" || *birthplace.ValueAddress.Type != "postal" {
		t.Errorf("birthplace address = %+v, want postal Salem", birthplace.ValueAddress)
	}

	education, ok := byURL[extEducation]
	if !ok || education.ValueCodeableConcept == nil {
		t.Fatalf("education extension missing a concept")
	}
	if *education.ValueCodeableConcept.Coding[0].Code != "PHC1453" {
		t.Errorf("education code = %s, want PHC1453", *education.ValueCodeableConcept.Coding[0].Code)
	}

	race, ok := byURL[extRace]
	if !ok || len(race.Extension) != 3 {
		t.Fatalf("race extension children = %d, want 3", len(race.Extension))
	}
	if race.Extension[0].Url != "text" || race.Extension[1].Url != "ombCategory" || race.Extension[2].Url != "detailed" {
		t.Errorf("race child labels = %s/%s/%s, want text/ombCategory/detailed",
			race.Extension[0].Url, race.Extension[1].Url, race.Extension[2].Url)
	}
	if *race.Extension[2].ValueCoding.Display != "White" {
		t.Errorf("detailed race display = %s, want White", *race.Extension[2].ValueCoding.Display)
	}

	disposition, ok := byURL[extDisposition]
	if !ok || len(disposition.Extension) != 3 {
		t.Fatalf("disposition extension children = %d, want 3", len(disposition.Extension))
	}
	dispType := disposition.Extension[0]
	if *dispType.ValueCodeableConcept.Coding[0].Code != "449971000124106" {
		t.Errorf("disposition type code = %s, want burial", *dispType.ValueCodeableConcept.Coding[0].Code)
	}

	place, ok := byURL[extPlaceOfDeath]
	if !ok || len(place.Extension) != 3 {
		t.Fatalf("place-of-death extension children = %d, want 3", len(place.Extension))
	}
	placeType := place.Extension[0]
	if placeType.ValueCodeableConcept == nil || *placeType.ValueCodeableConcept.Coding[0].Code != "16983000" {
		t.Errorf("place-of-death type = %+v, want wrapped 16983000 concept", placeType)
	}
}

func TestBuildExtensionsBadAge(t *testing.T) {
	r := validRecord()
	r[FieldAge] = "unknown"

	_, err := buildExtensions(r, decedentExtensionSchema())

	var numeric *NumericParseError
	if !errors.As(err, &numeric) {
		t.Fatalf("err = %v, want NumericParseError", err)
	}
	if numeric.Field != FieldAge {
		t.Errorf("failed field = %s, want %s", numeric.Field, FieldAge)
	}
}

func TestBuildExtensionsMissingColumn(t *testing.T) {
	r := validRecord()
	delete(r, FieldRace4)

	_, err := buildExtensions(r, decedentExtensionSchema())

	var missing *MissingFieldError
	if !errors.As(err, &missing) {
		t.Fatalf("err = %v, want MissingFieldError", err)
	}
	if missing.Field != FieldRace4 {
		t.Errorf("missing field = %s, want %s", missing.Field, FieldRace4)
	}
}
