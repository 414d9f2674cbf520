// Package pgstore implements the document store on PostgreSQL. Documents of
// every collection live in one jsonb table keyed by (collection, id).
package pgstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"regexp"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"

	"github.com/smmpanel/backend/internal/store"
)

// Database is the subset of pgxpool.Pool the store needs. pgx.Tx satisfies
// it too, which is how transactional calls are routed.
type Database interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type Store struct {
	db Database
}

func New(db Database) *Store {
	return &Store{db: db}
}

// querier returns the transaction carried in ctx, if any, so that calls made
// inside TXManager.Begin stay on the transaction connection.
func (s *Store) querier(ctx context.Context) Database {
	if tx, ok := txFromContext(ctx); ok {
		return tx
	}
	return s.db
}

func (s *Store) Get(ctx context.Context, collection, id string) (store.Document, error) {
	query := `
        SELECT doc
        FROM documents
        WHERE collection = $1 AND id = $2
    `
	var raw []byte
	err := s.querier(ctx).QueryRow(ctx, query, collection, id).Scan(&raw)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, store.ErrNotFound
	}
	if err != nil {
		zap.L().Error("failed to get document", zap.String("collection", collection), zap.Error(err))
		return nil, fmt.Errorf("%w: %w", store.ErrUnavailable, err)
	}
	var doc store.Document
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, err
	}
	return doc, nil
}

func (s *Store) Put(ctx context.Context, collection, id string, doc store.Document) error {
	query := `
        INSERT INTO documents (collection, id, doc)
        VALUES ($1, $2, $3)
        ON CONFLICT (collection, id) DO UPDATE
        SET doc = EXCLUDED.doc, updated_at = now()
    `
	raw, err := json.Marshal(doc)
	if err != nil {
		return err
	}
	if _, err := s.querier(ctx).Exec(ctx, query, collection, id, raw); err != nil {
		zap.L().Error("failed to put document", zap.String("collection", collection), zap.Error(err))
		return fmt.Errorf("%w: %w", store.ErrUnavailable, err)
	}
	return nil
}

func (s *Store) Insert(ctx context.Context, collection string, doc store.Document) (string, error) {
	query := `
        INSERT INTO documents (collection, id, doc)
        VALUES ($1, $2, $3)
    `
	raw, err := json.Marshal(doc)
	if err != nil {
		return "", err
	}
	id := uuid.NewString()
	if _, err := s.querier(ctx).Exec(ctx, query, collection, id, raw); err != nil {
		zap.L().Error("failed to insert document", zap.String("collection", collection), zap.Error(err))
		return "", fmt.Errorf("%w: %w", store.ErrUnavailable, err)
	}
	return id, nil
}

func (s *Store) Update(ctx context.Context, collection, id string, fields store.Document) error {
	query := `
        UPDATE documents
        SET doc = doc || $3::jsonb, updated_at = now()
        WHERE collection = $1 AND id = $2
    `
	raw, err := json.Marshal(fields)
	if err != nil {
		return err
	}
	tag, err := s.querier(ctx).Exec(ctx, query, collection, id, raw)
	if err != nil {
		zap.L().Error("failed to update document", zap.String("collection", collection), zap.Error(err))
		return fmt.Errorf("%w: %w", store.ErrUnavailable, err)
	}
	if tag.RowsAffected() == 0 {
		return store.ErrNotFound
	}
	return nil
}

// fieldName guards the jsonb paths interpolated into Query SQL: field names
// are part of the statement text, not bind parameters.
var fieldName = regexp.MustCompile(`^[a-z][a-z0-9_]*$`)

func (s *Store) Query(ctx context.Context, collection string, q store.Query) ([]store.Entry, error) {
	query := `SELECT id, doc FROM documents WHERE collection = $1`
	args := []any{collection}
	for _, f := range q.Filters {
		if !fieldName.MatchString(f.Field) {
			return nil, fmt.Errorf("invalid query field: %q", f.Field)
		}
		args = append(args, f.Value)
		query += fmt.Sprintf(" AND doc->>'%s' = $%d", f.Field, len(args))
	}
	if q.OrderBy != "" {
		if !fieldName.MatchString(q.OrderBy) {
			return nil, fmt.Errorf("invalid query field: %q", q.OrderBy)
		}
		dir := "ASC"
		if q.Desc {
			dir = "DESC"
		}
		query += fmt.Sprintf(" ORDER BY (doc->>'%s')::timestamptz %s", q.OrderBy, dir)
	}

	rows, err := s.querier(ctx).Query(ctx, query, args...)
	if err != nil {
		zap.L().Error("failed to query documents", zap.String("collection", collection), zap.Error(err))
		return nil, fmt.Errorf("%w: %w", store.ErrUnavailable, err)
	}
	defer rows.Close()

	entries := make([]store.Entry, 0)
	for rows.Next() {
		var (
			id  string
			raw []byte
		)
		if err := rows.Scan(&id, &raw); err != nil {
			zap.L().Error("failed to scan document row", zap.Error(err))
			return nil, fmt.Errorf("%w: %w", store.ErrUnavailable, err)
		}
		var doc store.Document
		if err := json.Unmarshal(raw, &doc); err != nil {
			return nil, err
		}
		entries = append(entries, store.Entry{ID: id, Doc: doc})
	}
	return entries, rows.Err()
}

func (s *Store) Delete(ctx context.Context, collection, id string) error {
	query := `
        DELETE FROM documents
        WHERE collection = $1 AND id = $2
    `
	tag, err := s.querier(ctx).Exec(ctx, query, collection, id)
	if err != nil {
		zap.L().Error("failed to delete document", zap.String("collection", collection), zap.Error(err))
		return fmt.Errorf("%w: %w", store.ErrUnavailable, err)
	}
	if tag.RowsAffected() == 0 {
		return store.ErrNotFound
	}
	return nil
}
