package docstore

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"sync"
	"time"
)

// MemoryStore is an in-memory Store for tests and local-only runs.
type MemoryStore struct {
	mu   sync.RWMutex
	docs map[string]map[string]*Document // collection -> id -> document
	now  func() time.Time
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		docs: make(map[string]map[string]*Document),
		now:  time.Now,
	}
}

// WithClock overrides the server clock, for tests.
func (s *MemoryStore) WithClock(now func() time.Time) *MemoryStore {
	s.now = now
	return s
}

// Get retrieves a document by id.
func (s *MemoryStore) Get(_ context.Context, collection, id string) (*Document, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	doc, ok := s.docs[collection][id]
	if !ok {
		return nil, ErrNotFound
	}
	cp := *doc
	cp.Data = append([]byte(nil), doc.Data...)
	return &cp, nil
}

// Query retrieves documents whose payload field equals value, newest
// update first.
func (s *MemoryStore) Query(_ context.Context, collection, field, value string) ([]Document, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var docs []Document
	for _, doc := range s.docs[collection] {
		var payload map[string]any
		if err := json.Unmarshal(doc.Data, &payload); err != nil {
			continue
		}
		if fmt.Sprint(payload[field]) != value {
			continue
		}
		cp := *doc
		cp.Data = append([]byte(nil), doc.Data...)
		docs = append(docs, cp)
	}
	sort.SliceStable(docs, func(i, j int) bool {
		return docs[i].UpdatedAt.After(docs[j].UpdatedAt)
	})
	return docs, nil
}

// Set creates or replaces a document.
func (s *MemoryStore) Set(_ context.Context, collection, id string, data []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.docs[collection] == nil {
		s.docs[collection] = make(map[string]*Document)
	}
	now := s.now()
	createdAt := now
	if existing, ok := s.docs[collection][id]; ok {
		createdAt = existing.CreatedAt
	}
	s.docs[collection][id] = &Document{
		ID:        id,
		Data:      append([]byte(nil), data...),
		CreatedAt: createdAt,
		UpdatedAt: now,
	}
	return nil
}

// Update merges a partial JSON patch into an existing document. The
// merge replaces top-level fields, matching the Postgres jsonb ||
// operator.
func (s *MemoryStore) Update(_ context.Context, collection, id string, patch []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, ok := s.docs[collection][id]
	if !ok {
		return ErrNotFound
	}

	var payload, overlay map[string]json.RawMessage
	if err := json.Unmarshal(doc.Data, &payload); err != nil {
		return fmt.Errorf("decoding document: %w", err)
	}
	if err := json.Unmarshal(patch, &overlay); err != nil {
		return fmt.Errorf("decoding patch: %w", err)
	}
	for k, v := range overlay {
		payload[k] = v
	}
	merged, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("encoding document: %w", err)
	}

	doc.Data = merged
	doc.UpdatedAt = s.now()
	return nil
}

// Delete removes a document by id.
func (s *MemoryStore) Delete(_ context.Context, collection, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.docs[collection][id]; !ok {
		return ErrNotFound
	}
	delete(s.docs[collection], id)
	return nil
}

var _ Store = (*MemoryStore)(nil)
