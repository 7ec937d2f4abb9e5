package entities

import (
	"fmt"
	"strings"
)

// EntityType categorizes an entity in the output graph.
type EntityType string

const (
	EntityCompany EntityType = "Company"
	EntityPerson  EntityType = "Person"
)

// Entity represents a deduplicated subject (a company or a person) extracted
// from the filing. Attributes is nil while the entity is still accumulating
// values in a registry; after finalization each value is either a string or a
// lexicographically sorted []string.
type Entity struct {
	EntityID      string         `json:"entityId"`
	Type          EntityType     `json:"type"`
	CanonicalName string         `json:"canonicalName"`
	Mentions      []string       `json:"mentions"`
	Attributes    map[string]any `json:"attributes"`
}

// EntityID formats the identifier for the nth entity of a type, 1-based,
// e.g. "COMPANY_1", "PERSON_3".
func EntityID(t EntityType, ordinal int) string {
	return fmt.Sprintf("%s_%d", strings.ToUpper(string(t)), ordinal)
}

// CanonicalName trims a surface form into the exact-match identity string
// used to deduplicate entities of a given type.
func CanonicalName(name string) string {
	return strings.TrimSpace(name)
}
