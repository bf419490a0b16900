// Package favorites maintains the device-local set of favorited items
// and derives year-scoped "Wrapped" summaries from it.
package favorites

import (
	"encoding/json"
	"sort"
	"strconv"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/rewindhq/rewind/internal/blob"
	"github.com/rewindhq/rewind/internal/catalog"
)

// ExportFilename is the fixed name of the downloadable export artifact.
const ExportFilename = "rewind-wrapped.json"

// Entry is a favorited item with the moment it was saved.
type Entry struct {
	Item    catalog.Item `json:"item"`
	AddedAt time.Time    `json:"addedAt"`
	Notes   string       `json:"notes,omitempty"`
}

// CategoryCount ranks a category by how many favorites fall into it.
type CategoryCount struct {
	Category catalog.Category `json:"category"`
	Count    int              `json:"count"`
}

// UserWrapped is the derived year-end summary of a user's favorites.
// It is computed fresh on each request and never persisted.
type UserWrapped struct {
	ID             string          `json:"id"`
	Year           int             `json:"year"`
	FavoriteItems  []Entry         `json:"favoriteItems"`
	TopCategories  []CategoryCount `json:"topCategories"`
	TotalFavorites int             `json:"totalFavorites"`
	CreatedAt      time.Time       `json:"createdAt"`
}

// Aggregator owns the "favorites" document. Mutations update the
// in-memory set first and then persist; persistence faults are logged
// and swallowed, so local state stays authoritative for the session.
type Aggregator struct {
	mu      sync.Mutex
	store   blob.Store
	catalog *catalog.Store
	log     zerolog.Logger
	now     func() time.Time
	entries []Entry
}

// Option configures an Aggregator.
type Option func(*Aggregator)

// WithClock overrides the time source, for tests.
func WithClock(now func() time.Time) Option {
	return func(a *Aggregator) { a.now = now }
}

// New creates an Aggregator and loads the persisted favorites document.
// A missing or corrupt document reads as an empty set.
func New(store blob.Store, cat *catalog.Store, log zerolog.Logger, opts ...Option) *Aggregator {
	a := &Aggregator{
		store:   store,
		catalog: cat,
		log:     log,
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(a)
	}
	a.load()
	return a
}

func (a *Aggregator) load() {
	data, ok, err := a.store.Get(blob.KeyFavorites)
	if err != nil {
		a.log.Warn().Err(err).Msg("loading favorites, starting empty")
		return
	}
	if !ok {
		return
	}
	var entries []Entry
	if err := json.Unmarshal(data, &entries); err != nil {
		a.log.Warn().Err(err).Msg("corrupt favorites document, starting empty")
		return
	}
	// Uniqueness is an application invariant, not a storage one.
	seen := make(map[string]bool, len(entries))
	for _, e := range entries {
		if seen[e.Item.ID] {
			continue
		}
		seen[e.Item.ID] = true
		a.entries = append(a.entries, e)
	}
}

func (a *Aggregator) persist() {
	data, err := json.Marshal(a.entries)
	if err != nil {
		a.log.Warn().Err(err).Msg("encoding favorites")
		return
	}
	if err := a.store.Put(blob.KeyFavorites, data); err != nil {
		a.log.Warn().Err(err).Msg("persisting favorites")
	}
}

// Add favorites an item. Adding an already-favorited item is a no-op
// that returns the existing entry.
func (a *Aggregator) Add(item catalog.Item, notes string) Entry {
	a.mu.Lock()
	defer a.mu.Unlock()

	for _, e := range a.entries {
		if e.Item.ID == item.ID {
			return e
		}
	}
	entry := Entry{Item: item, AddedAt: a.now(), Notes: notes}
	a.entries = append(a.entries, entry)
	a.persist()
	return entry
}

// Remove unfavorites an item. Removing an absent item is a no-op.
func (a *Aggregator) Remove(itemID string) {
	a.mu.Lock()
	defer a.mu.Unlock()

	for i, e := range a.entries {
		if e.Item.ID == itemID {
			a.entries = append(a.entries[:i], a.entries[i+1:]...)
			a.persist()
			return
		}
	}
}

// Toggle removes the item if favorited, otherwise adds it. Returns
// whether the item is favorited after the call.
func (a *Aggregator) Toggle(item catalog.Item) bool {
	if a.IsFavorite(item.ID) {
		a.Remove(item.ID)
		return false
	}
	a.Add(item, "")
	return true
}

// IsFavorite reports whether an item is in the favorite set.
func (a *Aggregator) IsFavorite(itemID string) bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	for _, e := range a.entries {
		if e.Item.ID == itemID {
			return true
		}
	}
	return false
}

// Entries returns a snapshot of the favorite set in insertion order.
func (a *Aggregator) Entries() []Entry {
	a.mu.Lock()
	defer a.mu.Unlock()
	snapshot := make([]Entry, len(a.entries))
	copy(snapshot, a.entries)
	return snapshot
}

// Total returns the size of the favorite set.
func (a *Aggregator) Total() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return len(a.entries)
}

// Wrapped computes the year-end summary for the given year. Categories
// are ranked by count descending; ties keep the insertion order of their
// first occurrence.
func (a *Aggregator) Wrapped(year int) UserWrapped {
	a.mu.Lock()
	defer a.mu.Unlock()

	yearID := strconv.Itoa(year)
	var yearEntries []Entry
	counts := make(map[string]int)
	var order []string
	for _, e := range a.entries {
		if e.Item.YearID != yearID {
			continue
		}
		yearEntries = append(yearEntries, e)
		if counts[e.Item.CategoryID] == 0 {
			order = append(order, e.Item.CategoryID)
		}
		counts[e.Item.CategoryID]++
	}

	top := make([]CategoryCount, 0, len(order))
	for _, categoryID := range order {
		top = append(top, CategoryCount{
			Category: a.resolveCategory(categoryID),
			Count:    counts[categoryID],
		})
	}
	// Stable sort keeps first-occurrence order for equal counts.
	sort.SliceStable(top, func(i, j int) bool {
		return top[i].Count > top[j].Count
	})

	return UserWrapped{
		ID:             "wrapped-" + yearID,
		Year:           year,
		FavoriteItems:  yearEntries,
		TopCategories:  top,
		TotalFavorites: len(yearEntries),
		CreatedAt:      a.now(),
	}
}

func (a *Aggregator) resolveCategory(id string) catalog.Category {
	if a.catalog != nil {
		if c, ok := a.catalog.CategoryByID(id); ok {
			return c
		}
	}
	return catalog.Category{ID: id, Name: id, Type: catalog.CategoryOther}
}

// Clear empties the favorite set and erases the persisted document.
func (a *Aggregator) Clear() {
	a.mu.Lock()
	defer a.mu.Unlock()

	a.entries = nil
	if err := a.store.Delete(blob.KeyFavorites); err != nil {
		a.log.Warn().Err(err).Msg("clearing favorites document")
	}
}

// Export serializes the favorite set into the downloadable artifact.
// It does not mutate state.
func (a *Aggregator) Export() (filename string, data []byte) {
	a.mu.Lock()
	entries := make([]Entry, len(a.entries))
	copy(entries, a.entries)
	now := a.now()
	a.mu.Unlock()

	payload := struct {
		Favorites  []Entry   `json:"favorites"`
		ExportedAt time.Time `json:"exportedAt"`
	}{Favorites: entries, ExportedAt: now}

	data, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		a.log.Warn().Err(err).Msg("encoding export")
		return ExportFilename, []byte("{}")
	}
	return ExportFilename, data
}
