package deathrecord

import (
	"fmt"
	"math/rand"

	"github.com/google/uuid"
)

// Role names a logical slot in the per-record identifier set
type Role string

const (
	RolePatient          Role = "Patient"
	RolePractitioner     Role = "Practitioner"
	RoleComposition      Role = "Composition"
	RoleCompositionEvent Role = "CompositionEvent"
)

// findingSlots is the fixed number of finding identifiers allocated per
// record: ten unconditional findings plus the pregnancy-timing slot.
const findingSlots = 11

// FindingRole returns the role of the n-th finding slot (1-based)
func FindingRole(n int) Role {
	return Role(fmt.Sprintf("Finding%d", n))
}

// IdentifierSet maps each logical resource role of one record to its opaque
// reference token. A set is private to its record; tokens are write-once and
// never reused across records.
type IdentifierSet map[Role]string

// Generator is the uniqueness boundary of the engine. Production code uses
// UUIDs; tests substitute deterministic sequences.
type Generator interface {
	// NewID returns a globally unique opaque token
	NewID() string
	// NewSSN returns a synthetic 9-digit surrogate. It is random, carries no
	// meaning and is not derived from any input.
	NewSSN() string
}

type uuidGenerator struct{}

func (uuidGenerator) NewID() string {
	return uuid.NewString()
}

func (uuidGenerator) NewSSN() string {
	return fmt.Sprintf("%09d", 100000000+rand.Intn(900000000))
}

// DefaultGenerator returns the production Generator. Each call site gets a
// stateless value, so independent records can allocate concurrently.
func DefaultGenerator() Generator {
	return uuidGenerator{}
}

// NewIdentifierSet allocates one reference token per resource role: subject,
// certifier, cover document, cover event and every finding slot.
func NewIdentifierSet(gen Generator) IdentifierSet {
	ids := IdentifierSet{
		RolePatient:          urn(gen.NewID()),
		RolePractitioner:     urn(gen.NewID()),
		RoleComposition:      urn(gen.NewID()),
		RoleCompositionEvent: urn(gen.NewID()),
	}
	for i := 1; i <= findingSlots; i++ {
		ids[FindingRole(i)] = urn(gen.NewID())
	}
	return ids
}

func urn(id string) string {
	return "urn:uuid:" + id
}
