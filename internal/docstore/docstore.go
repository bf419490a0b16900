// Package docstore provides the remote per-user document collection the
// capsule features sync against: keyed documents in named collections
// with equality queries and server-side timestamps on write.
package docstore

import (
	"context"
	"errors"
	"time"
)

// Collection names.
const (
	CollectionCapsules = "capsules"
	CollectionWrapped  = "wrapped"
)

// Common errors.
var (
	ErrNotFound = errors.New("document not found")
)

// Document is a stored JSON payload with its server-managed timestamps.
type Document struct {
	ID        string
	Data      []byte
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Store is the structural contract of the remote collection: get by id,
// query by field equality, create-or-replace, partial update, delete.
// The server assigns createdAt on first write and bumps updatedAt on
// every write.
type Store interface {
	Get(ctx context.Context, collection, id string) (*Document, error)
	Query(ctx context.Context, collection, field, value string) ([]Document, error)
	Set(ctx context.Context, collection, id string, data []byte) error
	Update(ctx context.Context, collection, id string, patch []byte) error
	Delete(ctx context.Context, collection, id string) error
}
