// Package store defines the document-store contract the ledger is built on.
// Implementations live in pgstore (PostgreSQL) and memstore (in-process).
package store

import (
	"context"
	"encoding/json"
	"errors"
)

const (
	UsersCollection  = "users"
	OrdersCollection = "orders"
)

var (
	// ErrNotFound is returned when no document exists under the requested id.
	ErrNotFound = errors.New("document not found")
	// ErrConflict is returned when the bounded transaction retries are
	// exhausted by serialization failures.
	ErrConflict = errors.New("transaction conflict")
	// ErrUnavailable wraps infrastructure failures of the store itself.
	ErrUnavailable = errors.New("store unavailable")
)

// Document is a schemaless record as stored under (collection, id).
type Document map[string]any

// Filter is an equality predicate on a top-level document field.
type Filter struct {
	Field string
	Value string
}

// Query selects documents within a collection. A zero Query matches all.
type Query struct {
	Filters []Filter
	OrderBy string
	Desc    bool
}

// Entry pairs a document with its key, since the key is not a field.
type Entry struct {
	ID  string
	Doc Document
}

// Store is the abstract persistence contract. All methods honour a
// transaction carried in ctx by the implementation's TXManager.
type Store interface {
	Get(ctx context.Context, collection, id string) (Document, error)
	Put(ctx context.Context, collection, id string, doc Document) error
	Insert(ctx context.Context, collection string, doc Document) (string, error)
	Update(ctx context.Context, collection, id string, fields Document) error
	Query(ctx context.Context, collection string, q Query) ([]Entry, error)
	Delete(ctx context.Context, collection, id string) error
}

// TXManager runs fn so that every Store call made with the ctx it passes in
// commits atomically or not at all.
type TXManager interface {
	Begin(ctx context.Context, fn func(ctx context.Context) error) error
}

// Marshal converts a domain struct into a Document via its json tags.
func Marshal(v any) (Document, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	var doc Document
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, err
	}
	return doc, nil
}

// Unmarshal decodes a Document into the struct pointed to by v.
func Unmarshal(doc Document, v any) error {
	raw, err := json.Marshal(doc)
	if err != nil {
		return err
	}
	return json.Unmarshal(raw, v)
}
