package favorites

import (
	"encoding/json"
	"errors"
	"reflect"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/rewindhq/rewind/internal/blob"
	"github.com/rewindhq/rewind/internal/catalog"
)

func fixedClock() func() time.Time {
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	return func() time.Time { return now }
}

func item(id, categoryID, yearID string) catalog.Item {
	return catalog.Item{ID: id, Title: id, CategoryID: categoryID, YearID: yearID}
}

func newTestAggregator(t *testing.T, store blob.Store) *Aggregator {
	t.Helper()
	if store == nil {
		store = blob.NewMemoryStore()
	}
	return New(store, nil, zerolog.Nop(), WithClock(fixedClock()))
}

func TestAddIsIdempotent(t *testing.T) {
	a := newTestAggregator(t, nil)
	i := item("i1", "memes", "2016")

	first := a.Add(i, "loved this")
	second := a.Add(i, "different notes")

	if a.Total() != 1 {
		t.Fatalf("favorites = %d entries after double add, want 1", a.Total())
	}
	if !reflect.DeepEqual(first, second) {
		t.Error("second Add should return the existing entry unchanged")
	}
	if second.Notes != "loved this" {
		t.Errorf("existing notes were overwritten: %q", second.Notes)
	}
}

func TestRemoveIsIdempotent(t *testing.T) {
	a := newTestAggregator(t, nil)
	a.Add(item("i1", "memes", "2016"), "")

	a.Remove("i1")
	a.Remove("i1") // absent, must not panic or error
	a.Remove("never-existed")

	if a.Total() != 0 {
		t.Errorf("favorites = %d entries after removal, want 0", a.Total())
	}
}

func TestToggleSymmetry(t *testing.T) {
	a := newTestAggregator(t, nil)
	i := item("i1", "memes", "2016")
	a.Add(item("i0", "music", "2016"), "")
	before := a.Entries()

	if on := a.Toggle(i); !on {
		t.Error("first Toggle should favorite the item")
	}
	if on := a.Toggle(i); on {
		t.Error("second Toggle should unfavorite the item")
	}
	if !reflect.DeepEqual(a.Entries(), before) {
		t.Error("double Toggle should return the set to its prior state")
	}
}

func TestWrappedIdempotence(t *testing.T) {
	a := newTestAggregator(t, nil)
	a.Add(item("i1", "memes", "2016"), "")
	a.Add(item("i2", "memes", "2016"), "")
	a.Add(item("i3", "music", "2016"), "")
	a.Add(item("i4", "music", "2017"), "")

	first := a.Wrapped(2016)
	second := a.Wrapped(2016)
	if !reflect.DeepEqual(first, second) {
		t.Error("Wrapped called twice without mutation should be structurally equal")
	}
}

func TestWrappedGroupsAndRanks(t *testing.T) {
	a := newTestAggregator(t, nil)
	a.Add(item("i1", "memes", "2016"), "")
	a.Add(item("i2", "memes", "2016"), "")
	a.Add(item("i3", "music", "2016"), "")
	a.Add(item("i4", "dances", "2016"), "")
	a.Add(item("i5", "other", "2017"), "")

	w := a.Wrapped(2016)

	if w.TotalFavorites != 4 || len(w.FavoriteItems) != 4 {
		t.Fatalf("TotalFavorites = %d (items %d), want 4", w.TotalFavorites, len(w.FavoriteItems))
	}
	if w.TotalFavorites != len(w.FavoriteItems) {
		t.Error("TotalFavorites must equal len(FavoriteItems)")
	}
	if len(w.TopCategories) != 3 {
		t.Fatalf("TopCategories = %d, want 3", len(w.TopCategories))
	}
	if w.TopCategories[0].Category.ID != "memes" || w.TopCategories[0].Count != 2 {
		t.Errorf("top category = %s (%d), want memes (2)", w.TopCategories[0].Category.ID, w.TopCategories[0].Count)
	}
	// music and dances tie at 1; music was favorited first.
	if w.TopCategories[1].Category.ID != "music" || w.TopCategories[2].Category.ID != "dances" {
		t.Errorf("tie order = %s, %s; want music, dances (first occurrence wins)",
			w.TopCategories[1].Category.ID, w.TopCategories[2].Category.ID)
	}
}

func TestWrappedResolvesCategoriesFromCatalog(t *testing.T) {
	cat := catalog.NewStore(nil, nil, []catalog.Category{
		{ID: "memes", Name: "Memes", Type: catalog.CategoryMemes, Icon: "😂"},
	}, nil)
	a := New(blob.NewMemoryStore(), cat, zerolog.Nop(), WithClock(fixedClock()))
	a.Add(item("i1", "memes", "2016"), "")
	a.Add(item("i2", "mystery", "2016"), "")

	w := a.Wrapped(2016)
	if w.TopCategories[0].Category.Name != "Memes" {
		t.Errorf("known category not resolved: %+v", w.TopCategories[0].Category)
	}
	// Unknown categories fall back to a placeholder, not a lookup error.
	if w.TopCategories[1].Category.Type != catalog.CategoryOther {
		t.Errorf("unknown category fallback = %+v", w.TopCategories[1].Category)
	}
}

func TestClearResetsEverything(t *testing.T) {
	store := blob.NewMemoryStore()
	a := newTestAggregator(t, store)
	a.Add(item("i1", "memes", "2016"), "")
	a.Add(item("i2", "music", "2017"), "")

	a.Clear()

	if a.Total() != 0 {
		t.Errorf("favorites = %d after Clear, want 0", a.Total())
	}
	for _, year := range []int{2015, 2016, 2017} {
		if got := a.Wrapped(year).TotalFavorites; got != 0 {
			t.Errorf("Wrapped(%d).TotalFavorites = %d after Clear, want 0", year, got)
		}
	}
	if _, ok, _ := store.Get(blob.KeyFavorites); ok {
		t.Error("persisted document should be erased by Clear")
	}
}

func TestPersistenceRoundTrip(t *testing.T) {
	store := blob.NewMemoryStore()
	a := newTestAggregator(t, store)
	a.Add(item("i1", "memes", "2016"), "a note")
	a.Add(item("i2", "music", "2016"), "")

	reloaded := newTestAggregator(t, store)
	if !reflect.DeepEqual(reloaded.Entries(), a.Entries()) {
		t.Error("reloaded favorites differ from persisted favorites")
	}
}

func TestLoadDeduplicates(t *testing.T) {
	store := blob.NewMemoryStore()
	dupes := []Entry{
		{Item: item("i1", "memes", "2016")},
		{Item: item("i1", "memes", "2016")},
		{Item: item("i2", "music", "2016")},
	}
	data, _ := json.Marshal(dupes)
	_ = store.Put(blob.KeyFavorites, data)

	a := newTestAggregator(t, store)
	if a.Total() != 2 {
		t.Errorf("loaded %d entries from duplicated document, want 2", a.Total())
	}
}

func TestCorruptDocumentReadsAsEmpty(t *testing.T) {
	store := blob.NewMemoryStore()
	_ = store.Put(blob.KeyFavorites, []byte("{not json"))

	a := newTestAggregator(t, store)
	if a.Total() != 0 {
		t.Errorf("corrupt document loaded %d entries, want 0", a.Total())
	}
}

type failingStore struct{}

func (failingStore) Get(string) ([]byte, bool, error) { return nil, false, errors.New("disk gone") }
func (failingStore) Put(string, []byte) error         { return errors.New("disk gone") }
func (failingStore) Delete(string) error              { return errors.New("disk gone") }

func TestPersistenceFaultsAreSwallowed(t *testing.T) {
	a := New(failingStore{}, nil, zerolog.Nop(), WithClock(fixedClock()))

	// None of these may panic or surface the storage error.
	a.Add(item("i1", "memes", "2016"), "")
	a.Remove("i1")
	a.Add(item("i2", "music", "2016"), "")
	a.Clear()
	a.Add(item("i3", "memes", "2016"), "")

	// In-memory state stays authoritative despite the broken store.
	if a.Total() != 1 || !a.IsFavorite("i3") {
		t.Error("in-memory favorites should survive persistence faults")
	}
}

func TestExport(t *testing.T) {
	a := newTestAggregator(t, nil)
	a.Add(item("i1", "memes", "2016"), "")

	name, data := a.Export()
	if name != ExportFilename {
		t.Errorf("export filename = %q, want %q", name, ExportFilename)
	}

	var payload struct {
		Favorites  []Entry   `json:"favorites"`
		ExportedAt time.Time `json:"exportedAt"`
	}
	if err := json.Unmarshal(data, &payload); err != nil {
		t.Fatalf("export is not valid JSON: %v", err)
	}
	if len(payload.Favorites) != 1 || payload.ExportedAt.IsZero() {
		t.Errorf("export payload = %+v", payload)
	}

	// Export must not mutate state.
	if a.Total() != 1 {
		t.Error("Export mutated the favorite set")
	}
}
