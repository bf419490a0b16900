package gamification

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/rewindhq/rewind/internal/blob"
	"github.com/rewindhq/rewind/internal/catalog"
)

type clock struct {
	t time.Time
}

func (c *clock) now() time.Time { return c.t }

func (c *clock) set(year int, month time.Month, day int) {
	c.t = time.Date(year, month, day, 15, 0, 0, 0, time.UTC)
}

func newTestEngine(t *testing.T, store blob.Store, c *clock) *Engine {
	t.Helper()
	if store == nil {
		store = blob.NewMemoryStore()
	}
	return NewEngine(store, zerolog.Nop(), WithClock(c.now))
}

func exploreItem(id, categoryID, yearID string) catalog.Item {
	return catalog.Item{ID: id, CategoryID: categoryID, YearID: yearID}
}

func TestStreakContinuity(t *testing.T) {
	c := &clock{}
	c.set(2024, time.January, 1)
	e := newTestEngine(t, nil, c)

	e.RecordExploration(exploreItem("i1", "memes", "2016"))
	if got := e.Stats().Streak; got != 1 {
		t.Fatalf("streak after first activity = %d, want 1", got)
	}

	// Consecutive day increments.
	c.set(2024, time.January, 2)
	e.RecordExploration(exploreItem("i2", "memes", "2016"))
	if got := e.Stats().Streak; got != 2 {
		t.Fatalf("streak after consecutive day = %d, want 2", got)
	}

	// Second exploration the same day does not double count.
	e.RecordExploration(exploreItem("i3", "memes", "2016"))
	if got := e.Stats().Streak; got != 2 {
		t.Fatalf("streak after same-day repeat = %d, want 2", got)
	}

	// A gap resets to 1.
	c.set(2024, time.January, 5)
	e.RecordExploration(exploreItem("i4", "memes", "2016"))
	if got := e.Stats().Streak; got != 1 {
		t.Fatalf("streak after gap = %d, want 1", got)
	}
}

func TestStreakFromSpecificDates(t *testing.T) {
	tests := []struct {
		name       string
		lastActive string
		streak     int
		today      [3]int // year, month, day
		want       int
	}{
		{"yesterday increments", "2024-01-01", 3, [3]int{2024, 1, 2}, 4},
		{"gap resets", "2024-01-01", 3, [3]int{2024, 1, 5}, 1},
		{"same day unchanged", "2024-01-02", 4, [3]int{2024, 1, 2}, 4},
		{"never active starts at one", "", 0, [3]int{2024, 1, 2}, 1},
		{"future-dated last resets", "2024-02-10", 7, [3]int{2024, 1, 2}, 1},
		{"month boundary increments", "2024-01-31", 2, [3]int{2024, 2, 1}, 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := blob.NewMemoryStore()
			seed := UserStats{Streak: tt.streak, LastActiveDate: tt.lastActive}
			data, _ := json.Marshal(seed)
			_ = store.Put(blob.KeyGamification, data)

			c := &clock{}
			c.set(tt.today[0], time.Month(tt.today[1]), tt.today[2])
			e := newTestEngine(t, store, c)

			e.RecordExploration(exploreItem("i1", "memes", "2016"))
			if got := e.Stats().Streak; got != tt.want {
				t.Errorf("streak = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestCollectorThresholdExactness(t *testing.T) {
	c := &clock{}
	c.set(2024, time.January, 1)
	e := newTestEngine(t, nil, c)

	for i := 0; i < 4; i++ {
		e.RecordFavorite()
	}
	p, ok := e.AchievementProgress("collector-1")
	if !ok {
		t.Fatal("collector-1 missing from catalog")
	}
	if p.IsEarned {
		t.Fatal("collector-1 earned after 4 favorites, requirement is 5")
	}
	if p.Progress != 4 {
		t.Errorf("collector-1 progress = %d, want 4", p.Progress)
	}

	unlocked := e.RecordFavorite()
	p, _ = e.AchievementProgress("collector-1")
	if !p.IsEarned || p.Progress != 5 {
		t.Errorf("collector-1 after 5th favorite = %+v, want earned at 5", p)
	}
	if len(unlocked) != 1 || unlocked[0].ID != "collector-1" {
		t.Errorf("RecordFavorite unlocked %v, want [collector-1]", unlocked)
	}
}

func TestAchievementMonotonicity(t *testing.T) {
	c := &clock{}
	c.set(2024, time.January, 1)
	e := newTestEngine(t, nil, c)

	e.RecordExploration(exploreItem("i1", "memes", "2016"))
	p, _ := e.AchievementProgress("explorer-1")
	if !p.IsEarned {
		t.Fatal("explorer-1 should unlock after the first explored year")
	}
	earnedAt := e.EarnedAchievements()[0].EarnedAt

	// No further sequence of operations removes the unlock or changes
	// its frozen progress.
	c.set(2024, time.February, 10)
	for i := 0; i < 30; i++ {
		e.RecordExploration(exploreItem("x", "music", "2017"))
		e.RecordFavorite()
		e.RecordShare()
	}
	p, _ = e.AchievementProgress("explorer-1")
	if !p.IsEarned || p.Progress != 1 {
		t.Errorf("explorer-1 after later activity = %+v, want frozen at 1", p)
	}
	for _, ea := range e.EarnedAchievements() {
		if ea.ID == "explorer-1" && !ea.EarnedAt.Equal(earnedAt) {
			t.Error("earnedAt changed after later activity")
		}
	}

	// No duplicates either.
	seen := map[string]int{}
	for _, ua := range e.Stats().Achievements {
		seen[ua.AchievementID]++
	}
	for id, n := range seen {
		if n > 1 {
			t.Errorf("achievement %s recorded %d times", id, n)
		}
	}
}

func TestProgressUnlockFreezesAtRequirement(t *testing.T) {
	c := &clock{}
	c.set(2024, time.January, 1)
	e := newTestEngine(t, nil, c)

	for i := 0; i < 4; i++ {
		e.RecordShare()
	}
	// social-butterfly requires 3; the unlock froze at 3 even though the
	// raw counter is now 4.
	p, _ := e.AchievementProgress("social-butterfly")
	if !p.IsEarned || p.Progress != 3 {
		t.Errorf("social-butterfly = %+v, want earned frozen at 3", p)
	}
	for _, ua := range e.Stats().Achievements {
		if ua.AchievementID == "social-butterfly" && ua.Progress != 3 {
			t.Errorf("stored progress = %d, want requirement 3", ua.Progress)
		}
	}
}

func TestExplorationSetSemantics(t *testing.T) {
	c := &clock{}
	c.set(2024, time.January, 1)
	e := newTestEngine(t, nil, c)

	for i := 0; i < 5; i++ {
		e.RecordExploration(exploreItem("same", "memes", "2016"))
	}
	stats := e.Stats()
	if stats.TotalItemsExplored != 5 {
		t.Errorf("totalItemsExplored = %d, want 5", stats.TotalItemsExplored)
	}
	if len(stats.YearsExplored) != 1 || len(stats.CategoriesExplored) != 1 {
		t.Errorf("sets = %v / %v, want one entry each", stats.YearsExplored, stats.CategoriesExplored)
	}

	// An item with no year still counts its category.
	e.RecordExploration(exploreItem("x", "music", ""))
	stats = e.Stats()
	if len(stats.YearsExplored) != 1 {
		t.Errorf("yearless item added a year: %v", stats.YearsExplored)
	}
	if len(stats.CategoriesExplored) != 2 {
		t.Errorf("categories = %v, want 2", stats.CategoriesExplored)
	}
}

func TestUnknownAchievementReportsAbsence(t *testing.T) {
	c := &clock{}
	c.set(2024, time.January, 1)
	e := newTestEngine(t, nil, c)

	if _, ok := e.AchievementProgress("no-such-badge"); ok {
		t.Error("unknown achievement id should report absence")
	}
}

func TestEarnedAndAvailableViews(t *testing.T) {
	c := &clock{}
	c.set(2024, time.January, 1)
	e := newTestEngine(t, nil, c)

	if got := len(e.AvailableAchievements()); got != len(Achievements) {
		t.Fatalf("available = %d before any activity, want %d", got, len(Achievements))
	}

	e.RecordExploration(exploreItem("i1", "memes", "2016"))

	earned := e.EarnedAchievements()
	if len(earned) != 1 || earned[0].ID != "explorer-1" {
		t.Fatalf("earned = %v, want [explorer-1]", earned)
	}
	if earned[0].EarnedAt.IsZero() {
		t.Error("earnedAt not set")
	}
	if got := len(e.AvailableAchievements()); got != len(Achievements)-1 {
		t.Errorf("available = %d, want %d", got, len(Achievements)-1)
	}
}

func TestPersistenceRoundTrip(t *testing.T) {
	store := blob.NewMemoryStore()
	c := &clock{}
	c.set(2024, time.January, 1)

	e := newTestEngine(t, store, c)
	e.RecordExploration(exploreItem("i1", "memes", "2016"))
	e.RecordFavorite()
	e.RecordShare()
	before := e.Stats()

	reloaded := newTestEngine(t, store, c)
	after := reloaded.Stats()
	if after.TotalItemsExplored != before.TotalItemsExplored ||
		after.Streak != before.Streak ||
		after.LastActiveDate != before.LastActiveDate ||
		after.TotalFavorites != before.TotalFavorites ||
		after.Shares != before.Shares ||
		len(after.Achievements) != len(before.Achievements) {
		t.Errorf("reloaded stats = %+v, want %+v", after, before)
	}
}

func TestLoadDeduplicatesSetsAndUnlocks(t *testing.T) {
	store := blob.NewMemoryStore()
	seed := UserStats{
		YearsExplored:      []string{"2016", "2016", "2017"},
		CategoriesExplored: []string{"memes", "memes"},
		Achievements: []UserAchievement{
			{AchievementID: "explorer-1", Progress: 1},
			{AchievementID: "explorer-1", Progress: 1},
		},
	}
	data, _ := json.Marshal(seed)
	_ = store.Put(blob.KeyGamification, data)

	c := &clock{}
	c.set(2024, time.January, 1)
	e := newTestEngine(t, store, c)

	stats := e.Stats()
	if len(stats.YearsExplored) != 2 {
		t.Errorf("years = %v, want deduplicated pair", stats.YearsExplored)
	}
	if len(stats.CategoriesExplored) != 1 {
		t.Errorf("categories = %v, want deduplicated single", stats.CategoriesExplored)
	}
	if len(stats.Achievements) != 1 {
		t.Errorf("achievements = %v, want deduplicated single", stats.Achievements)
	}
}

func TestCorruptDocumentStartsFresh(t *testing.T) {
	store := blob.NewMemoryStore()
	_ = store.Put(blob.KeyGamification, []byte("not json at all"))

	c := &clock{}
	c.set(2024, time.January, 1)
	e := newTestEngine(t, store, c)

	stats := e.Stats()
	if stats.TotalItemsExplored != 0 || stats.Streak != 0 {
		t.Errorf("stats from corrupt document = %+v, want zero value", stats)
	}
}

func TestReset(t *testing.T) {
	c := &clock{}
	c.set(2024, time.January, 1)
	e := newTestEngine(t, nil, c)
	e.RecordExploration(exploreItem("i1", "memes", "2016"))
	e.RecordFavorite()

	e.Reset()

	stats := e.Stats()
	if stats.TotalItemsExplored != 0 || stats.TotalFavorites != 0 || len(stats.Achievements) != 0 {
		t.Errorf("stats after Reset = %+v", stats)
	}
}

func TestStreakMessageTiers(t *testing.T) {
	tests := []struct {
		streak int
		want   string
	}{
		{0, "Start exploring to build your streak!"},
		{1, "Day 1! Keep it going!"},
		{5, "5 day streak! Keep exploring!"},
		{10, "10 day streak! You're on fire! 🔥"},
		{100, "100 day streak! Incredible dedication! 🏆"},
		{400, "400 day streak! You're a legend! 👑"},
	}
	for _, tt := range tests {
		store := blob.NewMemoryStore()
		data, _ := json.Marshal(UserStats{Streak: tt.streak})
		_ = store.Put(blob.KeyGamification, data)

		c := &clock{}
		c.set(2024, time.January, 1)
		e := newTestEngine(t, store, c)

		if got := e.StreakMessage(); got != tt.want {
			t.Errorf("StreakMessage(streak=%d) = %q, want %q", tt.streak, got, tt.want)
		}
	}
}
