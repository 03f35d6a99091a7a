package deathrecord

import (
	"fmt"

	"golang.org/x/exp/slices"

	"github.com/nightingaleproject/csv2fhir/models/fhir"
	"github.com/nightingaleproject/csv2fhir/util"
)

// ComposeBundle aggregates the cover document and the other resources into
// one document bundle, validates referential integrity and returns the
// stripped nested key-value form.
func ComposeBundle(ids IdentifierSet, composition *fhir.Composition, resources []fhir.Resource, gen Generator) (map[string]any, error) {
	entries := make([]fhir.BundleEntry, 0, len(resources)+1)
	entries = append(entries, fhir.BundleEntry{
		FullUrl:  util.StringPtr(ids[RoleComposition]),
		Resource: composition,
	})
	for _, res := range resources {
		entries = append(entries, fhir.BundleEntry{
			FullUrl:  util.StringPtr(res.ResourceID()),
			Resource: res,
		})
	}

	bundle := &fhir.Bundle{
		Id:    util.StringPtr(gen.NewID()),
		Type:  util.StringPtr("document"),
		Entry: entries,
	}

	if err := validateIntegrity(ids, composition, resources); err != nil {
		return nil, err
	}

	return ToDocument(bundle)
}

// validateIntegrity checks the cover-document invariants: the section entry
// list and the set of non-cover resources must be a bijection, and every
// subject and author reference must resolve inside the bundle.
func validateIntegrity(ids IdentifierSet, composition *fhir.Composition, resources []fhir.Resource) error {
	if len(composition.Section) != 1 {
		return &ConsistencyError{Reason: fmt.Sprintf("cover document has %d sections, want 1", len(composition.Section))}
	}

	sectionRefs := make([]string, 0, len(composition.Section[0].Entry))
	for _, ref := range composition.Section[0].Entry {
		if ref.Reference == nil {
			return &ConsistencyError{Reason: "cover document section holds an empty reference"}
		}
		sectionRefs = append(sectionRefs, *ref.Reference)
	}

	resourceIDs := make([]string, 0, len(resources))
	for _, res := range resources {
		id := res.ResourceID()
		if id == "" {
			return &ConsistencyError{Reason: fmt.Sprintf("%s resource has no identity", res.Kind())}
		}
		resourceIDs = append(resourceIDs, id)
	}

	slices.Sort(sectionRefs)
	slices.Sort(resourceIDs)
	if !slices.Equal(sectionRefs, resourceIDs) {
		return &ConsistencyError{
			Reason: fmt.Sprintf("cover document references %v but bundle holds %v", sectionRefs, resourceIDs),
		}
	}

	subject := ids[RolePatient]
	for _, res := range resources {
		switch r := res.(type) {
		case *fhir.Patient, *fhir.Practitioner:
			// demographic resources carry no subject reference
		case *fhir.Observation:
			if r.Subject == nil || r.Subject.Reference == nil || *r.Subject.Reference != subject {
				return &ConsistencyError{Reason: "observation finding does not reference the subject"}
			}
		case *fhir.Condition:
			if r.Subject == nil || r.Subject.Reference == nil || *r.Subject.Reference != subject {
				return &ConsistencyError{Reason: "condition finding does not reference the subject"}
			}
		default:
			return &ConsistencyError{Reason: fmt.Sprintf("unexpected resource kind %s in bundle", res.Kind())}
		}
	}

	if composition.Subject == nil || composition.Subject.Reference == nil || *composition.Subject.Reference != subject {
		return &ConsistencyError{Reason: "cover document does not reference the subject"}
	}
	certifier := ids[RolePractitioner]
	if len(composition.Author) != 1 || composition.Author[0].Reference == nil || *composition.Author[0].Reference != certifier {
		return &ConsistencyError{Reason: "cover document author is not the certifier"}
	}

	return nil
}
