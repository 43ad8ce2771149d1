package builtin

import (
	"strings"

	"github.com/google/uuid"
)

// Guid is a 128-bit value, rendered in JSON as an upper-case hyphenated
// string (OPC UA Part 6). It is backed by google/uuid.
type Guid struct {
	id uuid.UUID
}

// NewGuid returns a new random (version 4) Guid.
func NewGuid() Guid {
	return Guid{id: uuid.New()}
}

// GuidFromUUID wraps an existing uuid.UUID as a Guid.
func GuidFromUUID(id uuid.UUID) Guid {
	return Guid{id: id}
}

// ParseGuid parses the canonical hyphenated form (case-insensitive) into a
// Guid.
func ParseGuid(s string) (Guid, error) {
	id, err := uuid.Parse(s)
	if err != nil {
		return Guid{}, err
	}
	return Guid{id: id}, nil
}

// UUID returns the underlying uuid.UUID value.
func (g Guid) UUID() uuid.UUID {
	return g.id
}

// String renders the canonical hyphenated, upper-case form mandated by
// the Part 6 JSON mapping (e.g. "72962B91-FA75-4AE6-8D28-B404DC7DAF63").
func (g Guid) String() string {
	return strings.ToUpper(g.id.String())
}

// IsZero reports whether g is the all-zero Guid.
func (g Guid) IsZero() bool {
	return g.id == uuid.Nil
}
