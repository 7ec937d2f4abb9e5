// Package handlers wires file access to the extraction core.
package handlers

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strconv"

	"github.com/quayside/fidgraph/internal/domain/entities"
	"github.com/quayside/fidgraph/internal/domain/services"
	"github.com/quayside/fidgraph/internal/infrastructure/parsers"
)

var reYear = regexp.MustCompile(`\d{4}`)

// ParseOptions controls parse behavior.
type ParseOptions struct {
	Format string // "tsv", "csv", or "auto"
}

// ParseHandler reads a filing file and produces its entity graph document.
type ParseHandler struct {
	orgColumn     string
	contactColumn string
}

// NewParseHandler creates a parse handler reading the given columns.
func NewParseHandler(orgColumn, contactColumn string) *ParseHandler {
	return &ParseHandler{
		orgColumn:     orgColumn,
		contactColumn: contactColumn,
	}
}

// Handle parses the file in a single pass and returns the finalized
// document. Only whole-file access failures are errors; defective rows
// contribute nothing and never abort the pass.
func (h *ParseHandler) Handle(ctx context.Context, filePath string, opts ParseOptions) (*entities.Document, error) {
	var parser parsers.Parser
	if opts.Format == "" || opts.Format == "auto" {
		parser = parsers.ForFile(filePath)
	} else {
		parser = parsers.ForFormat(opts.Format)
	}
	if parser == nil {
		return nil, fmt.Errorf("unsupported format %q (valid: tsv, csv, auto)", opts.Format)
	}

	file, err := os.Open(filePath)
	if err != nil {
		return nil, fmt.Errorf("opening file: %w", err)
	}
	defer file.Close()

	pipeline := services.NewPipeline(h.orgColumn, h.contactColumn)
	err = parser.Parse(file, func(row parsers.Row) error {
		pipeline.Process(row)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("parsing file: %w", err)
	}

	allEntities, relationships := pipeline.Finalize()
	return &entities.Document{
		ReportYear:    ReportYear(filePath),
		Entities:      allEntities,
		Relationships: relationships,
	}, nil
}

// ReportYear extracts the first run of four consecutive digits from the
// file's base name, e.g. 2025 from "MAS_FID_2025-06-19.xls". Nil when the
// name carries no year.
func ReportYear(filePath string) *int {
	m := reYear.FindString(filepath.Base(filePath))
	if m == "" {
		return nil
	}
	year, err := strconv.Atoi(m)
	if err != nil {
		return nil
	}
	return &year
}
