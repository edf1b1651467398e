package docstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"rental-admin-api/internal/infra"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Store is a document-collection adapter backed by a single jsonb table.
// Collections are namespaces, documents are schemaless json objects keyed by a
// string id. Set with merge keeps unspecified fields intact, matching the
// upsert-merge contract every write endpoint relies on.
type Store struct {
	pool *pgxpool.Pool
}

type Document struct {
	ID   string
	Data []byte // raw json object
}

func New(pool *pgxpool.Pool) *Store {
	return &Store{pool: pool}
}

const Schema = `
CREATE TABLE IF NOT EXISTS documents (
    collection TEXT NOT NULL,
    id         TEXT NOT NULL,
    data       JSONB NOT NULL DEFAULT '{}'::jsonb,
    PRIMARY KEY (collection, id)
);
`

func (s *Store) Get(ctx context.Context, collection, id string) (Document, error) {
	var data []byte
	err := s.pool.QueryRow(ctx,
		`SELECT data FROM documents WHERE collection = $1 AND id = $2`,
		collection, id,
	).Scan(&data)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Document{}, infra.WrapRepoErr("document not found", err, infra.KindNotFound)
		}
		return Document{}, infra.WrapRepoErr("failed to get document", err)
	}
	return Document{ID: id, Data: data}, nil
}

func (s *Store) List(ctx context.Context, collection string) ([]Document, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT id, data FROM documents WHERE collection = $1`,
		collection,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list documents", err)
	}
	defer rows.Close()
	return collectDocuments(rows)
}

// Find returns documents whose json fields equal all given values. Filters
// compare as text (data->>field), which matches the string-keyed document
// shape used throughout.
func (s *Store) Find(ctx context.Context, collection string, eq map[string]string) ([]Document, error) {
	query := strings.Builder{}
	query.WriteString(`SELECT id, data FROM documents WHERE collection = $1`)
	args := []any{collection}
	for field, value := range eq {
		args = append(args, field, value)
		fmt.Fprintf(&query, " AND data->>$%d = $%d", len(args)-1, len(args))
	}

	rows, err := s.pool.Query(ctx, query.String(), args...)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to query documents", err)
	}
	defer rows.Close()
	return collectDocuments(rows)
}

// Set writes fields to the document at id. With merge, existing fields not
// present in data survive; without merge the document is replaced.
func (s *Store) Set(ctx context.Context, collection, id string, data any, merge bool) error {
	raw, err := json.Marshal(data)
	if err != nil {
		return infra.WrapRepoErr("failed to encode document", err)
	}

	assign := `EXCLUDED.data`
	if merge {
		assign = `documents.data || EXCLUDED.data`
	}
	_, err = s.pool.Exec(ctx,
		`INSERT INTO documents (collection, id, data) VALUES ($1, $2, $3)
		 ON CONFLICT (collection, id) DO UPDATE SET data = `+assign,
		collection, id, raw,
	)
	if err != nil {
		return infra.WrapRepoErr("failed to set document", err)
	}
	return nil
}

// Insert creates the document at id and fails with KindDuplicateKey when it
// already exists.
func (s *Store) Insert(ctx context.Context, collection, id string, data any) error {
	raw, err := json.Marshal(data)
	if err != nil {
		return infra.WrapRepoErr("failed to encode document", err)
	}

	_, err = s.pool.Exec(ctx,
		`INSERT INTO documents (collection, id, data) VALUES ($1, $2, $3)`,
		collection, id, raw,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return infra.WrapRepoErr("document already exists", err, infra.KindDuplicateKey)
		}
		return infra.WrapRepoErr("failed to insert document", err)
	}
	return nil
}

// Add stores data under a fresh store-assigned id and returns it.
func (s *Store) Add(ctx context.Context, collection string, data any) (string, error) {
	id := uuid.NewString()
	if err := s.Insert(ctx, collection, id, data); err != nil {
		return "", err
	}
	return id, nil
}

func (s *Store) Delete(ctx context.Context, collection, id string) error {
	_, err := s.pool.Exec(ctx,
		`DELETE FROM documents WHERE collection = $1 AND id = $2`,
		collection, id,
	)
	if err != nil {
		return infra.WrapRepoErr("failed to delete document", err)
	}
	return nil
}

func (s *Store) Exists(ctx context.Context, collection, id string) (bool, error) {
	var exists bool
	err := s.pool.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM documents WHERE collection = $1 AND id = $2)`,
		collection, id,
	).Scan(&exists)
	if err != nil {
		return false, infra.WrapRepoErr("failed to check document existence", err)
	}
	return exists, nil
}

func (d Document) Decode(target any) error {
	if err := json.Unmarshal(d.Data, target); err != nil {
		return infra.WrapRepoErr("failed to decode document", err)
	}
	return nil
}

func collectDocuments(rows pgx.Rows) ([]Document, error) {
	var docs []Document
	for rows.Next() {
		var d Document
		if err := rows.Scan(&d.ID, &d.Data); err != nil {
			return nil, infra.WrapRepoErr("failed to scan document row", err)
		}
		docs = append(docs, d)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read document rows", err)
	}
	return docs, nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505"
	}
	return false
}
