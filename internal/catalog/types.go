// Package catalog exposes the immutable trend catalog: years, months,
// categories and the items inside them. The catalog is seeded at process
// start and never mutated afterwards.
package catalog

// Year is a calendar year with its cultural summary.
type Year struct {
	ID          string   `json:"id"`
	Year        int      `json:"year"`
	Description string   `json:"description"`
	Theme       string   `json:"theme,omitempty"`
	TopTrends   []string `json:"topTrends,omitempty"`
}

// Month is a month within a catalogued year.
type Month struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	YearID    string `json:"yearId"`
	ShortName string `json:"shortName,omitempty"`
}

// CategoryType is the fixed enumeration of category kinds.
type CategoryType string

const (
	CategoryMemes       CategoryType = "memes"
	CategoryMusic       CategoryType = "music"
	CategoryDances      CategoryType = "dances"
	CategoryStyle       CategoryType = "style"
	CategoryTrends      CategoryType = "trends"
	CategoryMovies      CategoryType = "movies"
	CategoryCelebrities CategoryType = "celebrities"
	CategoryOther       CategoryType = "other"
)

// Category groups items by kind.
type Category struct {
	ID   string       `json:"id"`
	Name string       `json:"name"`
	Type CategoryType `json:"type"`
	Icon string       `json:"icon,omitempty"`
}

// Timeline describes when an item started, peaked and faded.
type Timeline struct {
	Start string `json:"start"`
	Peak  string `json:"peak,omitempty"`
	End   string `json:"end,omitempty"`
}

// Item is a single catalogued cultural artifact: a meme, a song, a viral
// moment. Items are immutable reference data.
type Item struct {
	ID              string    `json:"id"`
	Title           string    `json:"title"`
	Description     string    `json:"description"`
	ImageURL        string    `json:"imageUrl,omitempty"`
	CategoryID      string    `json:"categoryId"`
	MonthID         string    `json:"monthId"`
	YearID          string    `json:"yearId"`
	PopularityScore int       `json:"popularityScore,omitempty"`
	Slug            string    `json:"slug,omitempty"`
	Timeline        *Timeline `json:"timeline,omitempty"`
	Impact          string    `json:"impact,omitempty"`
}
