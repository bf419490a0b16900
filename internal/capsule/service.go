package capsule

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/rewindhq/rewind/internal/docstore"
)

// ErrSealed is returned when a mutation targets a capsule that has
// already been sealed.
var ErrSealed = errors.New("capsule is sealed")

// ErrNotFound is returned when the requested capsule does not exist or
// belongs to another user.
var ErrNotFound = errors.New("capsule not found")

// ValidationError reports a rejected capsule or entry payload.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// Service implements capsule operations on top of a document store.
type Service struct {
	store docstore.Store
	now   func() time.Time
	newID func() string
}

// Option configures a Service.
type Option func(*Service)

// WithClock overrides the wall clock, used by tests.
func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

// WithIDs overrides the id generator, used by tests.
func WithIDs(newID func() string) Option {
	return func(s *Service) { s.newID = newID }
}

// NewService builds a capsule service backed by store.
func NewService(store docstore.Store, opts ...Option) *Service {
	s := &Service{
		store: store,
		now:   time.Now,
		newID: uuid.NewString,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Create starts a new open capsule for userID.
func (s *Service) Create(ctx context.Context, userID, yearID, title, description string, public bool) (*Capsule, error) {
	if title == "" {
		return nil, &ValidationError{Field: "title", Reason: "must not be empty"}
	}
	if yearID == "" {
		return nil, &ValidationError{Field: "yearId", Reason: "must not be empty"}
	}
	now := s.now()
	c := &Capsule{
		ID:          s.newID(),
		UserID:      userID,
		YearID:      yearID,
		Title:       title,
		Description: description,
		Entries:     []Entry{},
		IsPublic:    public,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.put(ctx, c); err != nil {
		return nil, fmt.Errorf("creating capsule: %w", err)
	}
	return c, nil
}

// Get returns userID's capsule with the given id.
func (s *Service) Get(ctx context.Context, userID, id string) (*Capsule, error) {
	doc, err := s.store.Get(ctx, docstore.CollectionCapsules, id)
	if errors.Is(err, docstore.ErrNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("loading capsule %s: %w", id, err)
	}
	var c Capsule
	if err := json.Unmarshal(doc.Data, &c); err != nil {
		return nil, fmt.Errorf("decoding capsule %s: %w", id, err)
	}
	if c.UserID != userID {
		return nil, ErrNotFound
	}
	return &c, nil
}

// ForUser lists all of userID's capsules, most recently updated first.
func (s *Service) ForUser(ctx context.Context, userID string) ([]Capsule, error) {
	docs, err := s.store.Query(ctx, docstore.CollectionCapsules, "userId", userID)
	if err != nil {
		return nil, fmt.Errorf("listing capsules for %s: %w", userID, err)
	}
	capsules := make([]Capsule, 0, len(docs))
	for _, doc := range docs {
		var c Capsule
		if err := json.Unmarshal(doc.Data, &c); err != nil {
			continue
		}
		capsules = append(capsules, c)
	}
	return capsules, nil
}

// AddEntry appends a memory to an open capsule. Sealed capsules reject
// new entries permanently.
func (s *Service) AddEntry(ctx context.Context, userID, capsuleID, title, description, mediaURL string, mediaType MediaType) (*Capsule, error) {
	if title == "" && mediaURL == "" {
		return nil, &ValidationError{Field: "entry", Reason: "needs a title or media"}
	}
	if mediaType == "" {
		mediaType = MediaText
	}
	c, err := s.Get(ctx, userID, capsuleID)
	if err != nil {
		return nil, err
	}
	if c.IsSealed {
		return nil, ErrSealed
	}
	now := s.now()
	c.Entries = append(c.Entries, Entry{
		ID:          s.newID(),
		Title:       title,
		Description: description,
		MediaURL:    mediaURL,
		MediaType:   mediaType,
		CreatedAt:   now,
	})
	c.UpdatedAt = now
	if err := s.put(ctx, c); err != nil {
		return nil, fmt.Errorf("saving capsule %s: %w", capsuleID, err)
	}
	return c, nil
}

// Seal closes a capsule. Sealing is one-way; an optional until time
// schedules when the capsule unlocks again. Sealing an already sealed
// capsule is a no-op.
func (s *Service) Seal(ctx context.Context, userID, capsuleID string, until *time.Time) (*Capsule, error) {
	c, err := s.Get(ctx, userID, capsuleID)
	if err != nil {
		return nil, err
	}
	if c.IsSealed {
		return c, nil
	}
	c.IsSealed = true
	c.SealedUntil = until
	c.UpdatedAt = s.now()
	if err := s.put(ctx, c); err != nil {
		return nil, fmt.Errorf("sealing capsule %s: %w", capsuleID, err)
	}
	return c, nil
}

// Delete removes userID's capsule.
func (s *Service) Delete(ctx context.Context, userID, capsuleID string) error {
	if _, err := s.Get(ctx, userID, capsuleID); err != nil {
		return err
	}
	if err := s.store.Delete(ctx, docstore.CollectionCapsules, capsuleID); err != nil {
		if errors.Is(err, docstore.ErrNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("deleting capsule %s: %w", capsuleID, err)
	}
	return nil
}

func (s *Service) put(ctx context.Context, c *Capsule) error {
	data, err := json.Marshal(c)
	if err != nil {
		return err
	}
	return s.store.Set(ctx, docstore.CollectionCapsules, c.ID, data)
}
