// Package memstore is an in-process Store used in dev mode and by tests that
// need real transactional semantics rather than mocked calls.
package memstore

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/smmpanel/backend/internal/store"
)

type txKey struct{}

// Store keeps all collections in memory behind a single mutex. Transactions
// are fully serialized: Begin holds the mutex for the whole callback, so a
// transaction never observes another writer's intermediate state.
type Store struct {
	mu          sync.Mutex
	collections map[string]map[string]store.Document
}

func New() *Store {
	return &Store{
		collections: make(map[string]map[string]store.Document),
	}
}

// Begin runs fn under the store mutex and rolls every change back if fn
// returns an error.
func (s *Store) Begin(ctx context.Context, fn func(ctx context.Context) error) error {
	if ctx.Value(txKey{}) != nil {
		return fn(ctx)
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	snapshot := s.clone()
	if err := fn(context.WithValue(ctx, txKey{}, struct{}{})); err != nil {
		s.collections = snapshot
		return err
	}
	return nil
}

func (s *Store) Get(ctx context.Context, collection, id string) (store.Document, error) {
	defer s.lock(ctx)()

	doc, ok := s.collections[collection][id]
	if !ok {
		return nil, store.ErrNotFound
	}
	return cloneDoc(doc), nil
}

func (s *Store) Put(ctx context.Context, collection, id string, doc store.Document) error {
	defer s.lock(ctx)()

	s.coll(collection)[id] = cloneDoc(doc)
	return nil
}

func (s *Store) Insert(ctx context.Context, collection string, doc store.Document) (string, error) {
	defer s.lock(ctx)()

	id := uuid.NewString()
	s.coll(collection)[id] = cloneDoc(doc)
	return id, nil
}

func (s *Store) Update(ctx context.Context, collection, id string, fields store.Document) error {
	defer s.lock(ctx)()

	doc, ok := s.collections[collection][id]
	if !ok {
		return store.ErrNotFound
	}
	merged := cloneDoc(doc)
	for k, v := range fields {
		merged[k] = v
	}
	s.coll(collection)[id] = merged
	return nil
}

func (s *Store) Query(ctx context.Context, collection string, q store.Query) ([]store.Entry, error) {
	defer s.lock(ctx)()

	entries := make([]store.Entry, 0)
	for id, doc := range s.collections[collection] {
		if !matches(doc, q.Filters) {
			continue
		}
		entries = append(entries, store.Entry{ID: id, Doc: cloneDoc(doc)})
	}
	if q.OrderBy != "" {
		sortEntries(entries, q.OrderBy, q.Desc)
	}
	return entries, nil
}

func (s *Store) Delete(ctx context.Context, collection, id string) error {
	defer s.lock(ctx)()

	if _, ok := s.collections[collection][id]; !ok {
		return store.ErrNotFound
	}
	delete(s.collections[collection], id)
	return nil
}

// lock takes the store mutex unless ctx already runs inside Begin.
func (s *Store) lock(ctx context.Context) func() {
	if ctx.Value(txKey{}) != nil {
		return func() {}
	}
	s.mu.Lock()
	return s.mu.Unlock
}

func (s *Store) coll(collection string) map[string]store.Document {
	c, ok := s.collections[collection]
	if !ok {
		c = make(map[string]store.Document)
		s.collections[collection] = c
	}
	return c
}

func (s *Store) clone() map[string]map[string]store.Document {
	out := make(map[string]map[string]store.Document, len(s.collections))
	for name, c := range s.collections {
		cc := make(map[string]store.Document, len(c))
		for id, doc := range c {
			cc[id] = cloneDoc(doc)
		}
		out[name] = cc
	}
	return out
}

func cloneDoc(doc store.Document) store.Document {
	out := make(store.Document, len(doc))
	for k, v := range doc {
		out[k] = v
	}
	return out
}

func matches(doc store.Document, filters []store.Filter) bool {
	for _, f := range filters {
		v, ok := doc[f.Field].(string)
		if !ok || v != f.Value {
			return false
		}
	}
	return true
}

func sortEntries(entries []store.Entry, field string, desc bool) {
	less := func(a, b store.Entry) bool {
		av, _ := a.Doc[field].(string)
		bv, _ := b.Doc[field].(string)
		at, aerr := time.Parse(time.RFC3339Nano, av)
		bt, berr := time.Parse(time.RFC3339Nano, bv)
		if aerr == nil && berr == nil {
			return at.Before(bt)
		}
		return av < bv
	}
	sort.SliceStable(entries, func(i, j int) bool {
		if desc {
			return less(entries[j], entries[i])
		}
		return less(entries[i], entries[j])
	})
}
