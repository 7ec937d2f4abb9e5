package handlers

import (
	"context"
	"fmt"

	"github.com/quayside/fidgraph/internal/domain/ports"
)

// StoreHandler parses a filing and persists the resulting document.
type StoreHandler struct {
	parser *ParseHandler
	store  ports.GraphStore
}

// NewStoreHandler creates a store handler.
func NewStoreHandler(parser *ParseHandler, store ports.GraphStore) *StoreHandler {
	return &StoreHandler{
		parser: parser,
		store:  store,
	}
}

// StoreResult summarizes one persisted parse run.
type StoreResult struct {
	DocumentID    string
	Entities      int
	Relationships int
}

// Handle parses the file and saves the document through the graph store.
func (h *StoreHandler) Handle(ctx context.Context, filePath string, opts ParseOptions) (*StoreResult, error) {
	doc, err := h.parser.Handle(ctx, filePath, opts)
	if err != nil {
		return nil, err
	}

	if err := h.store.EnsureSchema(ctx); err != nil {
		return nil, fmt.Errorf("ensuring schema: %w", err)
	}

	id, err := h.store.SaveDocument(ctx, filePath, doc)
	if err != nil {
		return nil, fmt.Errorf("saving document: %w", err)
	}

	return &StoreResult{
		DocumentID:    id,
		Entities:      len(doc.Entities),
		Relationships: len(doc.Relationships),
	}, nil
}
