package deathrecord

import (
	"time"

	"github.com/nightingaleproject/csv2fhir/models/fhir"
	"github.com/nightingaleproject/csv2fhir/util"
)

// BuildComposition assembles the cover document. Its single section lists
// exactly the resources passed in (subject, certifier and every finding),
// which the bundle composer later verifies against the bundle entries. The
// creation timestamp is the assembly time; the input schema has no
// authoritative source timestamp.
func BuildComposition(ids IdentifierSet, resources []fhir.Resource, now time.Time) *fhir.Composition {
	entries := make([]fhir.Reference, 0, len(resources))
	for _, res := range resources {
		entries = append(entries, fhir.Reference{Reference: util.StringPtr(res.ResourceID())})
	}

	stamp := fhir.NewDateTime(now).String()

	return &fhir.Composition{
		Id:     util.StringPtr(ids[RoleComposition]),
		Meta:   &fhir.Meta{Profile: []string{profileDeathRecordContents}},
		Status: util.StringPtr("final"),
		Title:  util.StringPtr("Record of Death"),
		Date:   util.StringPtr(stamp),
		Type: &fhir.CodeableConcept{
			Coding: []fhir.Coding{{
				System: util.StringPtr(systemLOINC),
				Code:   util.StringPtr(loincDeathCertificate),
			}},
		},
		Subject: &fhir.Reference{Reference: util.StringPtr(ids[RolePatient])},
		Author:  []fhir.Reference{{Reference: util.StringPtr(ids[RolePractitioner])}},
		Section: []fhir.CompositionSection{{
			Code: &fhir.CodeableConcept{
				Coding: []fhir.Coding{{
					System: util.StringPtr(systemLOINC),
					Code:   util.StringPtr(loincDeathCertification),
				}},
			},
			Entry: entries,
		}},
		Event: []fhir.CompositionEvent{{
			Code: &fhir.CodeableConcept{
				Coding: []fhir.Coding{{
					System:  util.StringPtr(systemSNOMED),
					Code:    util.StringPtr("103693007"),
					Display: util.StringPtr("Diagnostic procedure"),
				}},
			},
			Detail: []fhir.Reference{{Reference: util.StringPtr(ids[RoleCompositionEvent])}},
		}},
		Attester: []fhir.CompositionAttester{{
			Mode:  []string{"legal"},
			Party: &fhir.Reference{Reference: util.StringPtr(ids[RolePractitioner])},
			Time:  util.StringPtr(stamp),
		}},
	}
}
