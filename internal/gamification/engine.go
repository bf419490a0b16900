// Package gamification tracks exploration counters and unlocks badges
// when they cross fixed thresholds. Each achievement moves locked →
// earned exactly once and never back.
package gamification

import (
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/rewindhq/rewind/internal/blob"
	"github.com/rewindhq/rewind/internal/catalog"
)

// dateLayout is the calendar-date format of LastActiveDate. Streaks are
// counted in device-local calendar days.
const dateLayout = "2006-01-02"

// UserAchievement records a single unlock. Progress is frozen at the
// requirement value at unlock time.
type UserAchievement struct {
	AchievementID string    `json:"achievementId"`
	EarnedAt      time.Time `json:"earnedAt"`
	Progress      int       `json:"progress"`
}

// UserStats is the persisted gamification document. The explored sets
// are serialized as arrays; set semantics are restored on load.
type UserStats struct {
	TotalItemsExplored int               `json:"totalItemsExplored"`
	YearsExplored      []string          `json:"yearsExplored"`
	CategoriesExplored []string          `json:"categoriesExplored"`
	Streak             int               `json:"streak"`
	LastActiveDate     string            `json:"lastActiveDate"`
	TotalFavorites     int               `json:"totalFavorites"`
	Shares             int               `json:"shares"`
	Achievements       []UserAchievement `json:"achievements"`
}

// Progress is the live progress of a single achievement, capped at its
// requirement.
type Progress struct {
	Progress int  `json:"progress"`
	IsEarned bool `json:"isEarned"`
}

// EarnedAchievement joins a catalog entry with its unlock time.
type EarnedAchievement struct {
	Achievement
	EarnedAt time.Time `json:"earnedAt"`
}

// Engine owns the "gamification" document and evaluates the fixed rule
// table on every recording operation.
type Engine struct {
	mu    sync.Mutex
	store blob.Store
	log   zerolog.Logger
	now   func() time.Time
	stats UserStats
}

// Option configures an Engine.
type Option func(*Engine)

// WithClock overrides the time source, for tests.
func WithClock(now func() time.Time) Option {
	return func(e *Engine) { e.now = now }
}

// NewEngine creates an Engine and loads the persisted stats document.
// A missing or corrupt document reads as zero-valued stats.
func NewEngine(store blob.Store, log zerolog.Logger, opts ...Option) *Engine {
	e := &Engine{
		store: store,
		log:   log,
		now:   time.Now,
	}
	for _, opt := range opts {
		opt(e)
	}
	e.load()
	return e
}

func (e *Engine) load() {
	data, ok, err := e.store.Get(blob.KeyGamification)
	if err != nil {
		e.log.Warn().Err(err).Msg("loading gamification stats, starting fresh")
		return
	}
	if !ok {
		return
	}
	var stats UserStats
	if err := json.Unmarshal(data, &stats); err != nil {
		e.log.Warn().Err(err).Msg("corrupt gamification document, starting fresh")
		return
	}
	// The storage format is an array; the set invariant is restored here.
	stats.YearsExplored = dedupe(stats.YearsExplored)
	stats.CategoriesExplored = dedupe(stats.CategoriesExplored)
	stats.Achievements = dedupeAchievements(stats.Achievements)
	e.stats = stats
}

func (e *Engine) persist() {
	data, err := json.Marshal(e.stats)
	if err != nil {
		e.log.Warn().Err(err).Msg("encoding gamification stats")
		return
	}
	if err := e.store.Put(blob.KeyGamification, data); err != nil {
		e.log.Warn().Err(err).Msg("persisting gamification stats")
	}
}

// RecordExploration counts one item view: bumps the exploration counter,
// the explored year/category sets and the streak, then unlocks any
// achievements whose threshold is now met. Returns the newly unlocked
// achievements.
func (e *Engine) RecordExploration(item catalog.Item) []Achievement {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.stats.Streak = e.nextStreak()
	e.stats.LastActiveDate = e.today()
	e.stats.TotalItemsExplored++
	if item.YearID != "" {
		e.stats.YearsExplored = addUnique(e.stats.YearsExplored, item.YearID)
	}
	e.stats.CategoriesExplored = addUnique(e.stats.CategoriesExplored, item.CategoryID)

	unlocked := e.unlockEarned()
	e.persist()
	return unlocked
}

// RecordFavorite counts one favorite added and unlocks any collection
// achievements whose threshold is now met.
func (e *Engine) RecordFavorite() []Achievement {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.stats.TotalFavorites++
	unlocked := e.unlockEarned()
	e.persist()
	return unlocked
}

// RecordShare counts one share and unlocks any social achievements whose
// threshold is now met.
func (e *Engine) RecordShare() []Achievement {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.stats.Shares++
	unlocked := e.unlockEarned()
	e.persist()
	return unlocked
}

// nextStreak applies the streak rule against the current calendar date.
// Callers hold the lock.
func (e *Engine) nextStreak() int {
	today := e.today()
	last := e.stats.LastActiveDate

	switch {
	case last == today:
		// Already counted today.
		return e.stats.Streak
	case last == e.now().AddDate(0, 0, -1).Format(dateLayout):
		return e.stats.Streak + 1
	case last == "":
		return 1
	default:
		// Gap of two or more days, or a future-dated last activity.
		return 1
	}
}

func (e *Engine) today() string {
	return e.now().Format(dateLayout)
}

// unlockEarned evaluates every locked achievement against the current
// counters. Unlocks are idempotent and frozen at the requirement value.
// Callers hold the lock.
func (e *Engine) unlockEarned() []Achievement {
	var unlocked []Achievement
	for _, a := range Achievements {
		if e.isEarned(a.ID) {
			continue
		}
		metric, ok := achievementMetrics[a.ID]
		if !ok {
			continue
		}
		if e.metricValue(metric) >= a.Requirement {
			e.stats.Achievements = append(e.stats.Achievements, UserAchievement{
				AchievementID: a.ID,
				EarnedAt:      e.now(),
				Progress:      a.Requirement,
			})
			unlocked = append(unlocked, a)
		}
	}
	return unlocked
}

func (e *Engine) isEarned(id string) bool {
	for _, ua := range e.stats.Achievements {
		if ua.AchievementID == id {
			return true
		}
	}
	return false
}

func (e *Engine) metricValue(m Metric) int {
	switch m {
	case MetricYearsExplored:
		return len(e.stats.YearsExplored)
	case MetricCategoriesExplored:
		return len(e.stats.CategoriesExplored)
	case MetricTotalFavorites:
		return e.stats.TotalFavorites
	case MetricShares:
		return e.stats.Shares
	default:
		return 0
	}
}

// AchievementProgress returns the live progress for an achievement.
// Unknown ids report absence.
func (e *Engine) AchievementProgress(id string) (Progress, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()

	a, ok := AchievementByID(id)
	if !ok {
		return Progress{}, false
	}
	if e.isEarned(id) {
		return Progress{Progress: a.Requirement, IsEarned: true}, true
	}
	metric := achievementMetrics[id]
	progress := e.metricValue(metric)
	if progress > a.Requirement {
		progress = a.Requirement
	}
	return Progress{Progress: progress, IsEarned: false}, true
}

// EarnedAchievements joins the unlock records against the catalog.
func (e *Engine) EarnedAchievements() []EarnedAchievement {
	e.mu.Lock()
	defer e.mu.Unlock()

	earned := make([]EarnedAchievement, 0, len(e.stats.Achievements))
	for _, ua := range e.stats.Achievements {
		a, ok := AchievementByID(ua.AchievementID)
		if !ok {
			continue
		}
		earned = append(earned, EarnedAchievement{Achievement: a, EarnedAt: ua.EarnedAt})
	}
	return earned
}

// AvailableAchievements returns the catalog entries not yet earned.
func (e *Engine) AvailableAchievements() []Achievement {
	e.mu.Lock()
	defer e.mu.Unlock()

	var available []Achievement
	for _, a := range Achievements {
		if !e.isEarned(a.ID) {
			available = append(available, a)
		}
	}
	return available
}

// Stats returns a snapshot of the current stats.
func (e *Engine) Stats() UserStats {
	e.mu.Lock()
	defer e.mu.Unlock()

	snapshot := e.stats
	snapshot.YearsExplored = append([]string(nil), e.stats.YearsExplored...)
	snapshot.CategoriesExplored = append([]string(nil), e.stats.CategoriesExplored...)
	snapshot.Achievements = append([]UserAchievement(nil), e.stats.Achievements...)
	return snapshot
}

// StreakMessage returns the streak copy shown on the streak counter.
func (e *Engine) StreakMessage() string {
	e.mu.Lock()
	streak := e.stats.Streak
	e.mu.Unlock()

	switch {
	case streak == 0:
		return "Start exploring to build your streak!"
	case streak == 1:
		return "Day 1! Keep it going!"
	case streak < 7:
		return fmt.Sprintf("%d day streak! Keep exploring!", streak)
	case streak < 30:
		return fmt.Sprintf("%d day streak! You're on fire! 🔥", streak)
	case streak < 365:
		return fmt.Sprintf("%d day streak! Incredible dedication! 🏆", streak)
	default:
		return fmt.Sprintf("%d day streak! You're a legend! 👑", streak)
	}
}

// Reset clears all stats and persists the zero state.
func (e *Engine) Reset() {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.stats = UserStats{}
	e.persist()
}

func addUnique(values []string, value string) []string {
	for _, v := range values {
		if v == value {
			return values
		}
	}
	return append(values, value)
}

func dedupe(values []string) []string {
	var out []string
	for _, v := range values {
		out = addUnique(out, v)
	}
	return out
}

func dedupeAchievements(achievements []UserAchievement) []UserAchievement {
	var out []UserAchievement
	seen := make(map[string]bool, len(achievements))
	for _, ua := range achievements {
		if seen[ua.AchievementID] {
			continue
		}
		seen[ua.AchievementID] = true
		out = append(out, ua)
	}
	return out
}
