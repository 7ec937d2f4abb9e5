// Package services contains the extraction core: the contact field
// interpreter, the entity registries and the row pipeline.
package services

import (
	"sort"
	"strings"

	"github.com/quayside/fidgraph/internal/domain/entities"
)

// Registry is an append-only, lookup-by-canonical-name store for entities of
// one type. Matching is exact-string on the trimmed canonical name;
// identifiers are assigned sequentially in first-seen order. Attribute values
// accumulate in per-attribute sets until FinalizeAll.
type Registry struct {
	entityType entities.EntityType
	byName     map[string]*entities.Entity
	order      []*entities.Entity
	values     map[string]map[string]map[string]struct{}
}

// NewRegistry creates an empty registry for the given entity type.
func NewRegistry(t entities.EntityType) *Registry {
	return &Registry{
		entityType: t,
		byName:     make(map[string]*entities.Entity),
		values:     make(map[string]map[string]map[string]struct{}),
	}
}

// GetOrCreate returns the entity registered under the canonical name,
// allocating it with the next sequential identifier on first sight. The name
// must be non-empty and already trimmed; the pipeline guarantees both.
func (r *Registry) GetOrCreate(canonicalName string) *entities.Entity {
	if e, ok := r.byName[canonicalName]; ok {
		return e
	}
	e := &entities.Entity{
		EntityID:      entities.EntityID(r.entityType, len(r.order)+1),
		Type:          r.entityType,
		CanonicalName: canonicalName,
		Mentions:      []string{canonicalName},
	}
	r.byName[canonicalName] = e
	r.order = append(r.order, e)
	return e
}

// AddAttribute records one attribute value for an entity. Blank values are
// ignored; re-adding a value already seen is a no-op.
func (r *Registry) AddAttribute(e *entities.Entity, name, value string) {
	value = strings.TrimSpace(value)
	if value == "" {
		return
	}
	attrs := r.values[e.CanonicalName]
	if attrs == nil {
		attrs = make(map[string]map[string]struct{})
		r.values[e.CanonicalName] = attrs
	}
	set := attrs[name]
	if set == nil {
		set = make(map[string]struct{})
		attrs[name] = set
	}
	set[value] = struct{}{}
}

// FinalizeAll collapses every entity's accumulated value sets into their
// output representation (singleton set → bare string, larger set → sorted
// slice) and returns the entities in insertion order. Call once, after all
// rows are processed; the registry must not be mutated afterward.
func (r *Registry) FinalizeAll() []*entities.Entity {
	for _, e := range r.order {
		e.Attributes = make(map[string]any)
		for name, set := range r.values[e.CanonicalName] {
			if len(set) == 1 {
				for v := range set {
					e.Attributes[name] = v
				}
				continue
			}
			sorted := make([]string, 0, len(set))
			for v := range set {
				sorted = append(sorted, v)
			}
			sort.Strings(sorted)
			e.Attributes[name] = sorted
		}
	}
	return r.order
}
