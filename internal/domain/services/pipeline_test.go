package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quayside/fidgraph/internal/domain/entities"
	"github.com/quayside/fidgraph/internal/infrastructure/parsers"
)

const (
	orgColumn     = "Organisation Name"
	contactColumn = "Phone Number"
)

func newTestPipeline() *Pipeline {
	return NewPipeline(orgColumn, contactColumn)
}

func TestPipelineSkipsBlankOrganisation(t *testing.T) {
	p := newTestPipeline()

	p.Process(parsers.Row{orgColumn: "   ", contactColumn: "John (CEO) -6221"})
	p.Process(parsers.Row{contactColumn: "John (CEO) -6221"})

	ents, rels := p.Finalize()
	assert.Empty(t, ents)
	assert.Empty(t, rels)
}

func TestPipelineMergesCompaniesByName(t *testing.T) {
	p := newTestPipeline()

	p.Process(parsers.Row{orgColumn: " Acme Bank ", "Address": "1 Marina Blvd"})
	p.Process(parsers.Row{orgColumn: "Acme Bank", "Address": "2 Shenton Way"})
	p.Process(parsers.Row{orgColumn: "Acme Bank", "Licence": "Wholesale", "Address": ""})

	ents, _ := p.Finalize()
	require.Len(t, ents, 1)

	acme := ents[0]
	assert.Equal(t, "COMPANY_1", acme.EntityID)
	assert.Equal(t, "Acme Bank", acme.CanonicalName)
	assert.Equal(t, map[string]any{
		"Address": []string{"1 Marina Blvd", "2 Shenton Way"},
		"Licence": "Wholesale",
	}, acme.Attributes)
}

func TestPipelineExtractsPersonAndRelationship(t *testing.T) {
	p := newTestPipeline()

	p.Process(parsers.Row{
		orgColumn:     "Acme Bank",
		contactColumn: "Oleg Leonov (CEO-designate) -6221 9876",
	})

	ents, rels := p.Finalize()
	require.Len(t, ents, 2)

	person := ents[1]
	assert.Equal(t, "PERSON_1", person.EntityID)
	assert.Equal(t, "Oleg Leonov", person.CanonicalName)
	assert.Equal(t, map[string]any{"Phone Number": "6221 9876"}, person.Attributes)

	require.Len(t, rels, 1)
	assert.Equal(t, "PERSON_1", rels[0].SourceEntityID)
	assert.Equal(t, "COMPANY_1", rels[0].TargetEntityID)
	require.NotNil(t, rels[0].Role)
	assert.Equal(t, "ceo-designate", *rels[0].Role)
	assert.Nil(t, rels[0].EffectiveDate)
}

func TestPipelineContactColumnDoublesAsCompanyAttribute(t *testing.T) {
	p := newTestPipeline()

	p.Process(parsers.Row{
		orgColumn:     "Acme Bank",
		contactColumn: "+65 6221 9876 (Tan Wee)",
	})

	ents, _ := p.Finalize()
	require.Len(t, ents, 2)
	// The raw contact field is an ordinary column from the company's view.
	assert.Equal(t, map[string]any{
		"Phone Number": "+65 6221 9876 (Tan Wee)",
	}, ents[0].Attributes)
}

func TestPipelineUninterpretableContactYieldsNoPerson(t *testing.T) {
	p := newTestPipeline()

	p.Process(parsers.Row{orgColumn: "Acme Bank", contactColumn: "+65 6221 1234"})
	p.Process(parsers.Row{orgColumn: "Beta Trust", contactColumn: ""})
	p.Process(parsers.Row{orgColumn: "Gamma Capital"})

	ents, rels := p.Finalize()
	require.Len(t, ents, 3)
	for _, e := range ents {
		assert.Equal(t, entities.EntityCompany, e.Type)
	}
	assert.Empty(t, rels)
}

func TestPipelineDeduplicatesRelationships(t *testing.T) {
	p := newTestPipeline()

	row := parsers.Row{
		orgColumn:     "Acme Bank",
		contactColumn: "Oleg Leonov (CEO) -6221 9876",
	}
	p.Process(row)
	p.Process(row)
	p.Process(row)

	ents, rels := p.Finalize()
	assert.Len(t, ents, 2)
	assert.Len(t, rels, 1)
}

func TestPipelineRoleCaseMattersForDeduplication(t *testing.T) {
	p := newTestPipeline()

	// The dedup key carries the role before lower-casing, so rows differing
	// only in role case produce two edges with the same lowered role.
	p.Process(parsers.Row{orgColumn: "Acme Bank", contactColumn: "John Smith (CEO) -6221"})
	p.Process(parsers.Row{orgColumn: "Acme Bank", contactColumn: "John Smith (ceo) -6221"})

	_, rels := p.Finalize()
	require.Len(t, rels, 2)
	assert.Equal(t, "ceo", *rels[0].Role)
	assert.Equal(t, "ceo", *rels[1].Role)
}

func TestPipelineNullRoleStaysNull(t *testing.T) {
	p := newTestPipeline()

	p.Process(parsers.Row{orgColumn: "Acme Bank", contactColumn: "+65 6221 9876 (Tan Wee)"})

	_, rels := p.Finalize()
	require.Len(t, rels, 1)
	assert.Nil(t, rels[0].Role)
}

func TestPipelinePersonSharedAcrossCompanies(t *testing.T) {
	p := newTestPipeline()

	p.Process(parsers.Row{orgColumn: "Acme Bank", contactColumn: "Tan Wee (Director) -6221 9876"})
	p.Process(parsers.Row{orgColumn: "Beta Trust", contactColumn: "Tan Wee (Director) -6333 0000"})

	ents, rels := p.Finalize()
	require.Len(t, ents, 3)

	// Companies strictly before persons, each group in first-seen order.
	assert.Equal(t, "COMPANY_1", ents[0].EntityID)
	assert.Equal(t, "COMPANY_2", ents[1].EntityID)
	assert.Equal(t, "PERSON_1", ents[2].EntityID)

	// Both phones accumulated on the one person.
	assert.Equal(t, map[string]any{
		"Phone Number": []string{"6221 9876", "6333 0000"},
	}, ents[2].Attributes)

	require.Len(t, rels, 2)
	assert.Equal(t, "COMPANY_1", rels[0].TargetEntityID)
	assert.Equal(t, "COMPANY_2", rels[1].TargetEntityID)
}
