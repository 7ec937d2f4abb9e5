// Package ports defines interfaces for infrastructure collaborators.
package ports

import (
	"context"

	"github.com/quayside/fidgraph/internal/domain/entities"
)

// GraphStore persists parsed documents. It is a pure output sink: the
// extraction core never reads stored state back.
type GraphStore interface {
	// EnsureSchema creates the storage schema if it does not exist.
	EnsureSchema(ctx context.Context) error
	// SaveDocument persists one document atomically and returns its
	// generated identifier.
	SaveDocument(ctx context.Context, sourceFile string, doc *entities.Document) (string, error)
	Close() error
}
