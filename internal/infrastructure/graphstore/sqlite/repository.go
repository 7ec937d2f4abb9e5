// Package sqlite provides a SQLite implementation of the GraphStore port.
package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/quayside/fidgraph/internal/domain/entities"
)

// timeNow returns the current time (can be mocked in tests).
var timeNow = time.Now

// Repository implements ports.GraphStore using SQLite.
type Repository struct {
	db   *sql.DB
	path string
}

// NewRepository opens (creating if needed) the SQLite database at path.
func NewRepository(path string) (*Repository, error) {
	if path == "" {
		return nil, errors.New("sqlite path is required")
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening sqlite database: %w", err)
	}

	// Enable foreign keys for referential integrity
	if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		db.Close()
		return nil, fmt.Errorf("enabling foreign keys: %w", err)
	}

	// Set busy timeout to avoid "database is locked" errors
	if _, err := db.Exec("PRAGMA busy_timeout = 5000"); err != nil {
		db.Close()
		return nil, fmt.Errorf("setting busy timeout: %w", err)
	}

	return &Repository{
		db:   db,
		path: path,
	}, nil
}

// Close closes the database connection.
func (r *Repository) Close() error {
	return r.db.Close()
}

// Path returns the database file path.
func (r *Repository) Path() string {
	return r.path
}

// EnsureSchema creates the database schema if it doesn't exist.
func (r *Repository) EnsureSchema(ctx context.Context) error {
	schema := `
	CREATE TABLE IF NOT EXISTS documents (
		id TEXT PRIMARY KEY,
		source_file TEXT NOT NULL,
		report_year INTEGER,
		created_at TIMESTAMP NOT NULL
	);

	CREATE TABLE IF NOT EXISTS entities (
		document_id TEXT NOT NULL REFERENCES documents(id) ON DELETE CASCADE,
		entity_id TEXT NOT NULL,
		type TEXT NOT NULL,
		canonical_name TEXT NOT NULL,
		mentions TEXT NOT NULL,
		attributes TEXT NOT NULL,
		position INTEGER NOT NULL,
		PRIMARY KEY (document_id, entity_id)
	);

	CREATE TABLE IF NOT EXISTS relationships (
		id TEXT PRIMARY KEY,
		document_id TEXT NOT NULL REFERENCES documents(id) ON DELETE CASCADE,
		source_entity_id TEXT NOT NULL,
		target_entity_id TEXT NOT NULL,
		role TEXT,
		effective_date TEXT
	);

	CREATE INDEX IF NOT EXISTS idx_entities_name
		ON entities(document_id, canonical_name);
	CREATE INDEX IF NOT EXISTS idx_relationships_source
		ON relationships(document_id, source_entity_id);
	`

	if _, err := r.db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("creating schema: %w", err)
	}
	return nil
}

// SaveDocument persists the document and all its entities and relationships
// in a single transaction, returning the generated document id.
func (r *Repository) SaveDocument(ctx context.Context, sourceFile string, doc *entities.Document) (string, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return "", fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	docID := uuid.New().String()
	var year sql.NullInt64
	if doc.ReportYear != nil {
		year = sql.NullInt64{Int64: int64(*doc.ReportYear), Valid: true}
	}

	_, err = tx.ExecContext(ctx,
		`INSERT INTO documents (id, source_file, report_year, created_at) VALUES (?, ?, ?, ?)`,
		docID, sourceFile, year, timeNow(),
	)
	if err != nil {
		return "", fmt.Errorf("inserting document: %w", err)
	}

	for position, e := range doc.Entities {
		if err := insertEntity(ctx, tx, docID, position, e); err != nil {
			return "", err
		}
	}

	for i := range doc.Relationships {
		if err := insertRelationship(ctx, tx, docID, &doc.Relationships[i]); err != nil {
			return "", err
		}
	}

	if err := tx.Commit(); err != nil {
		return "", fmt.Errorf("committing transaction: %w", err)
	}
	return docID, nil
}

func insertEntity(ctx context.Context, tx *sql.Tx, docID string, position int, e *entities.Entity) error {
	mentions, err := json.Marshal(e.Mentions)
	if err != nil {
		return fmt.Errorf("marshaling mentions for %s: %w", e.EntityID, err)
	}
	attributes, err := json.Marshal(e.Attributes)
	if err != nil {
		return fmt.Errorf("marshaling attributes for %s: %w", e.EntityID, err)
	}

	_, err = tx.ExecContext(ctx,
		`INSERT INTO entities (document_id, entity_id, type, canonical_name, mentions, attributes, position)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		docID, e.EntityID, string(e.Type), e.CanonicalName, string(mentions), string(attributes), position,
	)
	if err != nil {
		return fmt.Errorf("inserting entity %s: %w", e.EntityID, err)
	}
	return nil
}

func insertRelationship(ctx context.Context, tx *sql.Tx, docID string, rel *entities.Relationship) error {
	var role sql.NullString
	if rel.Role != nil {
		role = sql.NullString{String: *rel.Role, Valid: true}
	}
	var effectiveDate sql.NullString
	if rel.EffectiveDate != nil {
		effectiveDate = sql.NullString{String: *rel.EffectiveDate, Valid: true}
	}

	_, err := tx.ExecContext(ctx,
		`INSERT INTO relationships (id, document_id, source_entity_id, target_entity_id, role, effective_date)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		uuid.New().String(), docID, rel.SourceEntityID, rel.TargetEntityID, role, effectiveDate,
	)
	if err != nil {
		return fmt.Errorf("inserting relationship %s -> %s: %w", rel.SourceEntityID, rel.TargetEntityID, err)
	}
	return nil
}

// CountEntities returns the number of stored entities for a document.
func (r *Repository) CountEntities(ctx context.Context, docID string) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM entities WHERE document_id = ?`, docID,
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("counting entities: %w", err)
	}
	return count, nil
}

// CountRelationships returns the number of stored relationships for a document.
func (r *Repository) CountRelationships(ctx context.Context, docID string) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM relationships WHERE document_id = ?`, docID,
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("counting relationships: %w", err)
	}
	return count, nil
}
