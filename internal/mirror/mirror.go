// Package mirror pushes snapshots of locally-owned documents to the
// remote document store on a best-effort basis. Writes are fire and
// forget: a full queue drops the snapshot and a failed write is logged
// and abandoned, never retried, so the local copy stays authoritative.
package mirror

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/rewindhq/rewind/internal/docstore"
)

// DefaultQueueSize is the snapshot buffer used when none is configured.
const DefaultQueueSize = 64

// Snapshot is one document to mirror.
type Snapshot struct {
	Collection string
	ID         string
	Payload    any
}

// Mirror owns a single background worker draining a bounded queue of
// snapshots into a document store.
type Mirror struct {
	store   docstore.Store
	log     zerolog.Logger
	queue   chan Snapshot
	timeout time.Duration

	closeOnce sync.Once
	done      chan struct{}
}

// Option configures a Mirror.
type Option func(*Mirror)

// WithQueueSize sets the snapshot buffer size.
func WithQueueSize(n int) Option {
	return func(m *Mirror) {
		if n > 0 {
			m.queue = make(chan Snapshot, n)
		}
	}
}

// WithWriteTimeout bounds each remote write.
func WithWriteTimeout(d time.Duration) Option {
	return func(m *Mirror) { m.timeout = d }
}

// New starts a mirror worker writing to store.
func New(store docstore.Store, log zerolog.Logger, opts ...Option) *Mirror {
	m := &Mirror{
		store:   store,
		log:     log,
		queue:   make(chan Snapshot, DefaultQueueSize),
		timeout: 10 * time.Second,
		done:    make(chan struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	go m.run()
	return m
}

// Enqueue offers a snapshot to the worker without blocking. When the
// queue is full the snapshot is dropped; a later snapshot of the same
// document supersedes it anyway.
func (m *Mirror) Enqueue(s Snapshot) {
	select {
	case m.queue <- s:
	default:
		m.log.Warn().
			Str("collection", s.Collection).
			Str("id", s.ID).
			Msg("mirror queue full, dropping snapshot")
	}
}

// Close stops accepting snapshots, drains what is already queued and
// waits for the worker to finish.
func (m *Mirror) Close() {
	m.closeOnce.Do(func() { close(m.queue) })
	<-m.done
}

func (m *Mirror) run() {
	defer close(m.done)
	for s := range m.queue {
		m.write(s)
	}
}

func (m *Mirror) write(s Snapshot) {
	data, err := json.Marshal(s.Payload)
	if err != nil {
		m.log.Error().Err(err).
			Str("collection", s.Collection).
			Str("id", s.ID).
			Msg("encoding snapshot")
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), m.timeout)
	defer cancel()
	if err := m.store.Set(ctx, s.Collection, s.ID, data); err != nil {
		m.log.Error().Err(err).
			Str("collection", s.Collection).
			Str("id", s.ID).
			Msg("mirroring snapshot")
	}
}
