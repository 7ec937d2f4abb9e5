// Package entities defines the output graph model: entities, relationships
// and the document wrapping one parse run.
package entities

// Document is the serializable result of parsing one filing: all companies
// first, then all persons, each group in first-seen order, plus the
// deduplicated role edges between them. ReportYear is advisory metadata
// derived from the source file name; nil when the name carries no year.
type Document struct {
	ReportYear    *int           `json:"reportYear"`
	Entities      []*Entity      `json:"entities"`
	Relationships []Relationship `json:"relationships"`
}
