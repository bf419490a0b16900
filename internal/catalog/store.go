package catalog

import (
	"math/rand"
	"strings"
	"time"
)

// Store is the read model over the seeded catalog. All lookups are pure;
// misses are reported as ok=false or empty slices, never errors.
type Store struct {
	years      []Year
	months     []Month
	categories []Category
	items      []Item

	rand *rand.Rand
}

// NewStore builds a Store over the given reference data. The slices are
// not copied; callers must not mutate them afterwards.
func NewStore(years []Year, months []Month, categories []Category, items []Item) *Store {
	return &Store{
		years:      years,
		months:     months,
		categories: categories,
		items:      items,
		rand:       rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// NewSeededStore builds a Store over the built-in seed data.
func NewSeededStore() *Store {
	return NewStore(seedYears, seedMonths, seedCategories, seedItems)
}

// Years returns all catalogued years, oldest first.
func (s *Store) Years() []Year {
	return s.years
}

// YearByID looks up a year by its id.
func (s *Store) YearByID(id string) (Year, bool) {
	for _, y := range s.years {
		if y.ID == id {
			return y, true
		}
	}
	return Year{}, false
}

// MonthsByYear returns the months catalogued for a year.
func (s *Store) MonthsByYear(yearID string) []Month {
	var months []Month
	for _, m := range s.months {
		if m.YearID == yearID {
			months = append(months, m)
		}
	}
	return months
}

// Categories returns all categories.
func (s *Store) Categories() []Category {
	return s.categories
}

// CategoryByID looks up a category by its id.
func (s *Store) CategoryByID(id string) (Category, bool) {
	for _, c := range s.categories {
		if c.ID == id {
			return c, true
		}
	}
	return Category{}, false
}

// ItemByID looks up an item by its id.
func (s *Store) ItemByID(id string) (Item, bool) {
	for _, i := range s.items {
		if i.ID == id {
			return i, true
		}
	}
	return Item{}, false
}

// ItemBySlug looks up an item by its URL slug.
func (s *Store) ItemBySlug(slug string) (Item, bool) {
	for _, i := range s.items {
		if i.Slug == slug {
			return i, true
		}
	}
	return Item{}, false
}

// ItemsByMonth returns the items catalogued for a month.
func (s *Store) ItemsByMonth(monthID string) []Item {
	var items []Item
	for _, i := range s.items {
		if i.MonthID == monthID {
			items = append(items, i)
		}
	}
	return items
}

// ItemsByYear returns the items catalogued for a year.
func (s *Store) ItemsByYear(yearID string) []Item {
	var items []Item
	for _, i := range s.items {
		if i.YearID == yearID {
			items = append(items, i)
		}
	}
	return items
}

// ItemsByCategory returns the items of a category within a month.
func (s *Store) ItemsByCategory(monthID, categoryID string) []Item {
	var items []Item
	for _, i := range s.items {
		if i.MonthID == monthID && i.CategoryID == categoryID {
			items = append(items, i)
		}
	}
	return items
}

// RandomItem picks a uniformly random item from the full catalog.
// Returns ok=false when the catalog is empty.
func (s *Store) RandomItem() (Item, bool) {
	if len(s.items) == 0 {
		return Item{}, false
	}
	return s.items[s.rand.Intn(len(s.items))], true
}

// Search returns items whose title or description contains the query,
// case-insensitively. An empty query matches nothing.
func (s *Store) Search(query string) []Item {
	query = strings.TrimSpace(strings.ToLower(query))
	if query == "" {
		return nil
	}
	var items []Item
	for _, i := range s.items {
		if strings.Contains(strings.ToLower(i.Title), query) ||
			strings.Contains(strings.ToLower(i.Description), query) {
			items = append(items, i)
		}
	}
	return items
}

// OnThisDay returns items from any year whose month matches the given
// calendar month.
func (s *Store) OnThisDay(month time.Month) []Item {
	short := month.String()[:3]
	var items []Item
	for _, i := range s.items {
		for _, m := range s.months {
			if m.ID == i.MonthID && m.ShortName == short {
				items = append(items, i)
				break
			}
		}
	}
	return items
}

// Related returns up to n items sharing the given item's category or
// year, excluding the item itself. Category matches rank before
// year-only matches.
func (s *Store) Related(item Item, n int) []Item {
	if n <= 0 {
		return nil
	}
	var sameCategory, sameYear []Item
	for _, i := range s.items {
		if i.ID == item.ID {
			continue
		}
		switch {
		case i.CategoryID == item.CategoryID:
			sameCategory = append(sameCategory, i)
		case i.YearID == item.YearID:
			sameYear = append(sameYear, i)
		}
	}
	related := append(sameCategory, sameYear...)
	if len(related) > n {
		related = related[:n]
	}
	return related
}
