package services

import (
	"strings"

	"github.com/quayside/fidgraph/internal/domain/entities"
	"github.com/quayside/fidgraph/internal/infrastructure/parsers"
)

// relationshipKey deduplicates role edges. Role enters the key before
// lower-casing, so two rows differing only in role case produce two edges.
type relationshipKey struct {
	source string
	target string
	role   string
}

// Pipeline turns an ordered sequence of filing rows into deduplicated
// entities and relationships. Rows must be fed strictly in file order:
// identifier assignment is an observable contract tied to first-seen order.
type Pipeline struct {
	orgColumn     string
	contactColumn string

	companies     *Registry
	persons       *Registry
	seen          map[relationshipKey]struct{}
	relationships []entities.Relationship
}

// NewPipeline creates a pipeline reading the organisation name and the
// contact field from the named columns.
func NewPipeline(orgColumn, contactColumn string) *Pipeline {
	return &Pipeline{
		orgColumn:     orgColumn,
		contactColumn: contactColumn,
		companies:     NewRegistry(entities.EntityCompany),
		persons:       NewRegistry(entities.EntityPerson),
		seen:          make(map[relationshipKey]struct{}),
		relationships: []entities.Relationship{},
	}
}

// Process consumes one row. Rows with a blank organisation name contribute
// nothing; every other defect (blank attribute, uninterpretable contact
// field) degrades to the affected aspect being skipped. Process never fails.
func (p *Pipeline) Process(row parsers.Row) {
	companyName := entities.CanonicalName(row[p.orgColumn])
	if companyName == "" {
		return
	}

	company := p.companies.GetOrCreate(companyName)
	for column, value := range row {
		if column == p.orgColumn {
			continue
		}
		p.companies.AddAttribute(company, column, value)
	}

	contact := ParseContact(row[p.contactColumn])
	if contact == nil {
		return
	}

	person := p.persons.GetOrCreate(entities.CanonicalName(contact.Name))
	if contact.Phone != "" {
		p.persons.AddAttribute(person, "Phone Number", contact.Phone)
	}

	key := relationshipKey{
		source: person.EntityID,
		target: company.EntityID,
		role:   contact.Role,
	}
	if _, ok := p.seen[key]; ok {
		return
	}
	p.seen[key] = struct{}{}

	var role *string
	if contact.Role != "" {
		lowered := strings.ToLower(contact.Role)
		role = &lowered
	}
	p.relationships = append(p.relationships, entities.Relationship{
		SourceEntityID: person.EntityID,
		TargetEntityID: company.EntityID,
		Role:           role,
	})
}

// Finalize collapses both registries and returns all companies followed by
// all persons, each in first-seen order, together with the relationship
// edges. Call once, after the last row.
func (p *Pipeline) Finalize() ([]*entities.Entity, []entities.Relationship) {
	all := append([]*entities.Entity{}, p.companies.FinalizeAll()...)
	all = append(all, p.persons.FinalizeAll()...)
	return all, p.relationships
}
