package catalog

import (
	"testing"
	"time"
)

func testStore() *Store {
	years := []Year{
		{ID: "2016", Year: 2016},
		{ID: "2017", Year: 2017},
	}
	months := []Month{
		{ID: "jan-2016", Name: "January", YearID: "2016", ShortName: "Jan"},
		{ID: "feb-2016", Name: "February", YearID: "2016", ShortName: "Feb"},
		{ID: "jan-2017", Name: "January", YearID: "2017", ShortName: "Jan"},
	}
	categories := []Category{
		{ID: "memes", Name: "Memes", Type: CategoryMemes},
		{ID: "music", Name: "Music", Type: CategoryMusic},
	}
	items := []Item{
		{ID: "i1", Title: "Damn Daniel", Description: "white vans", CategoryID: "memes", MonthID: "jan-2016", YearID: "2016", Slug: "damn-daniel"},
		{ID: "i2", Title: "Life of Pablo", Description: "seventh album", CategoryID: "music", MonthID: "feb-2016", YearID: "2016", Slug: "life-of-pablo"},
		{ID: "i3", Title: "Despacito", Description: "song of the summer", CategoryID: "music", MonthID: "jan-2017", YearID: "2017", Slug: "despacito"},
	}
	return NewStore(years, months, categories, items)
}

func TestYearLookups(t *testing.T) {
	s := testStore()

	if _, ok := s.YearByID("2016"); !ok {
		t.Fatal("expected year 2016 to exist")
	}
	if _, ok := s.YearByID("1999"); ok {
		t.Fatal("expected year 1999 to be absent")
	}
	if got := len(s.MonthsByYear("2016")); got != 2 {
		t.Errorf("MonthsByYear(2016) = %d months, want 2", got)
	}
	if got := len(s.MonthsByYear("1999")); got != 0 {
		t.Errorf("MonthsByYear(1999) = %d months, want 0", got)
	}
}

func TestItemLookups(t *testing.T) {
	s := testStore()

	tests := []struct {
		name string
		got  []Item
		want int
	}{
		{"items by month", s.ItemsByMonth("jan-2016"), 1},
		{"items by missing month", s.ItemsByMonth("dec-2016"), 0},
		{"items by year", s.ItemsByYear("2016"), 2},
		{"items by category in month", s.ItemsByCategory("feb-2016", "music"), 1},
		{"items by wrong category in month", s.ItemsByCategory("feb-2016", "memes"), 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if len(tt.got) != tt.want {
				t.Errorf("got %d items, want %d", len(tt.got), tt.want)
			}
		})
	}

	item, ok := s.ItemBySlug("despacito")
	if !ok || item.ID != "i3" {
		t.Errorf("ItemBySlug(despacito) = %v, %v; want i3, true", item.ID, ok)
	}
	if _, ok := s.ItemBySlug("nope"); ok {
		t.Error("expected slug miss to report absence")
	}
}

func TestRandomItem(t *testing.T) {
	s := testStore()
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		item, ok := s.RandomItem()
		if !ok {
			t.Fatal("RandomItem on non-empty catalog reported absence")
		}
		seen[item.ID] = true
	}
	if len(seen) < 2 {
		t.Errorf("RandomItem over 100 draws hit %d distinct items, want at least 2", len(seen))
	}

	empty := NewStore(nil, nil, nil, nil)
	if _, ok := empty.RandomItem(); ok {
		t.Error("RandomItem on empty catalog should report absence")
	}
}

func TestSearch(t *testing.T) {
	s := testStore()

	tests := []struct {
		query string
		want  int
	}{
		{"daniel", 1},
		{"DANIEL", 1},
		{"summer", 1}, // matches description
		{"", 0},
		{"   ", 0},
		{"zzz", 0},
	}
	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			if got := len(s.Search(tt.query)); got != tt.want {
				t.Errorf("Search(%q) = %d items, want %d", tt.query, got, tt.want)
			}
		})
	}
}

func TestOnThisDay(t *testing.T) {
	s := testStore()
	// January exists in both 2016 and 2017.
	if got := len(s.OnThisDay(time.January)); got != 2 {
		t.Errorf("OnThisDay(January) = %d items, want 2", got)
	}
	if got := len(s.OnThisDay(time.December)); got != 0 {
		t.Errorf("OnThisDay(December) = %d items, want 0", got)
	}
}

func TestRelated(t *testing.T) {
	s := testStore()
	item, _ := s.ItemByID("i2")

	related := s.Related(item, 10)
	if len(related) != 2 {
		t.Fatalf("Related = %d items, want 2", len(related))
	}
	// The category match (i3, music) ranks before the year-only match (i1).
	if related[0].ID != "i3" {
		t.Errorf("first related item = %s, want i3 (category match first)", related[0].ID)
	}
	for _, r := range related {
		if r.ID == item.ID {
			t.Error("Related must exclude the item itself")
		}
	}

	if got := len(s.Related(item, 1)); got != 1 {
		t.Errorf("Related with n=1 returned %d items", got)
	}
}

func TestSeededStore(t *testing.T) {
	s := NewSeededStore()
	if len(s.Years()) != 7 {
		t.Errorf("seeded years = %d, want 7", len(s.Years()))
	}
	if len(s.Categories()) != 8 {
		t.Errorf("seeded categories = %d, want 8", len(s.Categories()))
	}
	if len(s.MonthsByYear("2016")) != 12 {
		t.Errorf("seeded 2016 months = %d, want 12", len(s.MonthsByYear("2016")))
	}
	if _, ok := s.ItemBySlug("pokemon-go"); !ok {
		t.Error("expected pokemon-go in seed catalog")
	}
	// Every seeded item must reference a known month, category and year.
	for _, item := range s.ItemsByYear("2016") {
		if _, ok := s.CategoryByID(item.CategoryID); !ok {
			t.Errorf("item %s references unknown category %s", item.ID, item.CategoryID)
		}
	}
}
