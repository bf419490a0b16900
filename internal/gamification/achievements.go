package gamification

// AchievementCategory groups achievements on the badges page.
type AchievementCategory string

const (
	CategoryExploration AchievementCategory = "exploration"
	CategoryCollection  AchievementCategory = "collection"
	CategoryKnowledge   AchievementCategory = "knowledge"
	CategorySocial      AchievementCategory = "social"
)

// Rarity is the display tier of an achievement.
type Rarity string

const (
	RarityCommon    Rarity = "common"
	RarityRare      Rarity = "rare"
	RarityEpic      Rarity = "epic"
	RarityLegendary Rarity = "legendary"
)

// Achievement is a static badge definition. The catalog is fixed at
// process start.
type Achievement struct {
	ID          string              `json:"id"`
	Name        string              `json:"name"`
	Description string              `json:"description"`
	Icon        string              `json:"icon"`
	Category    AchievementCategory `json:"category"`
	Requirement int                 `json:"requirement"`
	Rarity      Rarity              `json:"rarity"`
}

// Metric identifies which running counter feeds an achievement's
// progress.
type Metric int

const (
	MetricYearsExplored Metric = iota
	MetricCategoriesExplored
	MetricTotalFavorites
	MetricShares
)

// Achievements is the fixed badge catalog.
var Achievements = []Achievement{
	{
		ID:          "explorer-1",
		Name:        "Time Traveler",
		Description: "Explore your first year",
		Icon:        "🗺️",
		Category:    CategoryExploration,
		Requirement: 1,
		Rarity:      RarityCommon,
	},
	{
		ID:          "explorer-2",
		Name:        "Decade Diver",
		Description: "Explore 10 different years",
		Icon:        "🏃",
		Category:    CategoryExploration,
		Requirement: 10,
		Rarity:      RarityRare,
	},
	{
		ID:          "explorer-3",
		Name:        "Chronologist",
		Description: "Explore all available years",
		Icon:        "👑",
		Category:    CategoryExploration,
		Requirement: 20,
		Rarity:      RarityLegendary,
	},
	{
		ID:          "collector-1",
		Name:        "Memory Keeper",
		Description: "Save 5 items to your favorites",
		Icon:        "💾",
		Category:    CategoryCollection,
		Requirement: 5,
		Rarity:      RarityCommon,
	},
	{
		ID:          "collector-2",
		Name:        "Archive Master",
		Description: "Save 25 items to your favorites",
		Icon:        "📚",
		Category:    CategoryCollection,
		Requirement: 25,
		Rarity:      RarityRare,
	},
	{
		ID:          "collector-3",
		Name:        "Museum Curator",
		Description: "Save 50 items to your favorites",
		Icon:        "🏛️",
		Category:    CategoryCollection,
		Requirement: 50,
		Rarity:      RarityEpic,
	},
	{
		ID:          "meme-historian",
		Name:        "Meme Historian",
		Description: "Explore 10 memes from any year",
		Icon:        "😂",
		Category:    CategoryKnowledge,
		Requirement: 10,
		Rarity:      RarityRare,
	},
	{
		ID:          "music-expert",
		Name:        "Music Expert",
		Description: "Explore 10 songs from any year",
		Icon:        "🎵",
		Category:    CategoryKnowledge,
		Requirement: 10,
		Rarity:      RarityRare,
	},
	{
		ID:          "trends-scout",
		Name:        "Trends Scout",
		Description: "Explore 15 trends from any year",
		Icon:        "📈",
		Category:    CategoryKnowledge,
		Requirement: 15,
		Rarity:      RarityRare,
	},
	{
		ID:          "pop-culture",
		Name:        "Pop Culture Guru",
		Description: "Explore items from 5 different categories",
		Icon:        "🎭",
		Category:    CategoryKnowledge,
		Requirement: 5,
		Rarity:      RarityRare,
	},
	{
		ID:          "2016-expert",
		Name:        "2016 Expert",
		Description: "Explore 10 items from 2016",
		Icon:        "🔮",
		Category:    CategoryKnowledge,
		Requirement: 10,
		Rarity:      RarityEpic,
	},
	{
		ID:          "2017-master",
		Name:        "2017 Master",
		Description: "Explore 10 items from 2017",
		Icon:        "🔥",
		Category:    CategoryKnowledge,
		Requirement: 10,
		Rarity:      RarityEpic,
	},
	{
		ID:          "2018-champion",
		Name:        "2018 Champion",
		Description: "Explore 10 items from 2018",
		Icon:        "⭐",
		Category:    CategoryKnowledge,
		Requirement: 10,
		Rarity:      RarityEpic,
	},
	{
		ID:          "social-butterfly",
		Name:        "Social Butterfly",
		Description: "Share your wrapped results 3 times",
		Icon:        "🦋",
		Category:    CategorySocial,
		Requirement: 3,
		Rarity:      RarityRare,
	},
}

// achievementMetrics maps each achievement id to the counter that feeds
// its progress. This table is product data, reproduced as-is: several
// knowledge badges deliberately share categoriesExplored, and the
// year-specific badges key off yearsExplored rather than per-year item
// counts.
var achievementMetrics = map[string]Metric{
	"explorer-1":       MetricYearsExplored,
	"explorer-2":       MetricYearsExplored,
	"explorer-3":       MetricYearsExplored,
	"collector-1":      MetricTotalFavorites,
	"collector-2":      MetricTotalFavorites,
	"collector-3":      MetricTotalFavorites,
	"meme-historian":   MetricCategoriesExplored,
	"music-expert":     MetricCategoriesExplored,
	"trends-scout":     MetricCategoriesExplored,
	"pop-culture":      MetricCategoriesExplored,
	"2016-expert":      MetricYearsExplored,
	"2017-master":      MetricYearsExplored,
	"2018-champion":    MetricYearsExplored,
	"social-butterfly": MetricShares,
}

// AchievementByID looks up a catalog entry.
func AchievementByID(id string) (Achievement, bool) {
	for _, a := range Achievements {
		if a.ID == id {
			return a, true
		}
	}
	return Achievement{}, false
}

// MetricFor returns the progress metric for an achievement id.
func MetricFor(id string) (Metric, bool) {
	m, ok := achievementMetrics[id]
	return m, ok
}
