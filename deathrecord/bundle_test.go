package deathrecord

import (
	"errors"
	"testing"

	"github.com/nightingaleproject/csv2fhir/models/fhir"
	"github.com/nightingaleproject/csv2fhir/util"
)

// consistentParts builds a minimal internally consistent document: subject,
// certifier, one finding, and a cover document listing all three.
func consistentParts(ids IdentifierSet) (*fhir.Composition, []fhir.Resource) {
	resources := []fhir.Resource{
		&fhir.Patient{Id: util.StringPtr(ids[RolePatient])},
		&fhir.Practitioner{Id: util.StringPtr(ids[RolePractitioner])},
		&fhir.Observation{
			Id:      util.StringPtr(ids[FindingRole(1)]),
			Subject: &fhir.Reference{Reference: util.StringPtr(ids[RolePatient])},
		},
	}

	entries := make([]fhir.Reference, 0, len(resources))
	for _, res := range resources {
		entries = append(entries, fhir.Reference{Reference: util.StringPtr(res.ResourceID())})
	}
	composition := &fhir.Composition{
		Id:      util.StringPtr(ids[RoleComposition]),
		Subject: &fhir.Reference{Reference: util.StringPtr(ids[RolePatient])},
		Author:  []fhir.Reference{{Reference: util.StringPtr(ids[RolePractitioner])}},
		Section: []fhir.CompositionSection{{Entry: entries}},
	}
	return composition, resources
}

func TestComposeBundle(t *testing.T) {
	gen := &seqGenerator{}
	ids := NewIdentifierSet(gen)
	composition, resources := consistentParts(ids)

	doc, err := ComposeBundle(ids, composition, resources, gen)
	if err != nil {
		t.Fatalf("ComposeBundle returned error: %v", err)
	}

	if doc["resourceType"] != "Bundle" {
		t.Errorf("resourceType = %v, want Bundle", doc["resourceType"])
	}
	if doc["type"] != "document" {
		t.Errorf("type = %v, want document", doc["type"])
	}
	entries := doc["entry"].([]any)
	if len(entries) != len(resources)+1 {
		t.Errorf("entry count = %d, want %d", len(entries), len(resources)+1)
	}
	first := entries[0].(map[string]any)
	if first["fullUrl"] != ids[RoleComposition] {
		t.Errorf("first entry fullUrl = %v, want the cover document", first["fullUrl"])
	}
}

func TestValidateIntegrityViolations(t *testing.T) {
	tests := []struct {
		name  string
		corrupt func(ids IdentifierSet, composition *fhir.Composition, resources []fhir.Resource) []fhir.Resource
	}{
		{
			name: "section references a resource missing from the bundle",
			corrupt: func(ids IdentifierSet, composition *fhir.Composition, resources []fhir.Resource) []fhir.Resource {
				return resources[:len(resources)-1]
			},
		},
		{
			name: "bundle holds a resource the section does not list",
			corrupt: func(ids IdentifierSet, composition *fhir.Composition, resources []fhir.Resource) []fhir.Resource {
				return append(resources, &fhir.Observation{
					Id:      util.StringPtr(ids[FindingRole(2)]),
					Subject: &fhir.Reference{Reference: util.StringPtr(ids[RolePatient])},
				})
			},
		},
		{
			name: "finding references a foreign subject",
			corrupt: func(ids IdentifierSet, composition *fhir.Composition, resources []fhir.Resource) []fhir.Resource {
				resources[2].(*fhir.Observation).Subject = &fhir.Reference{Reference: util.StringPtr("urn:uuid:someone-else")}
				return resources
			},
		},
		{
			name: "resource without identity",
			corrupt: func(ids IdentifierSet, composition *fhir.Composition, resources []fhir.Resource) []fhir.Resource {
				resources[2].(*fhir.Observation).Id = nil
				return resources
			},
		},
		{
			name: "cover document subject detached",
			corrupt: func(ids IdentifierSet, composition *fhir.Composition, resources []fhir.Resource) []fhir.Resource {
				composition.Subject = nil
				return resources
			},
		},
		{
			name: "cover document author is not the certifier",
			corrupt: func(ids IdentifierSet, composition *fhir.Composition, resources []fhir.Resource) []fhir.Resource {
				composition.Author = []fhir.Reference{{Reference: util.StringPtr(ids[RolePatient])}}
				return resources
			},
		},
		{
			name: "multiple sections",
			corrupt: func(ids IdentifierSet, composition *fhir.Composition, resources []fhir.Resource) []fhir.Resource {
				composition.Section = append(composition.Section, fhir.CompositionSection{})
				return resources
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gen := &seqGenerator{}
			ids := NewIdentifierSet(gen)
			composition, resources := consistentParts(ids)
			resources = tt.corrupt(ids, composition, resources)

			_, err := ComposeBundle(ids, composition, resources, gen)

			var consistency *ConsistencyError
			if !errors.As(err, &consistency) {
				t.Fatalf("err = %v, want ConsistencyError", err)
			}
		})
	}
}
