// Package insights groups a year's favorites into "nostalgia waves" by
// clustering items on popularity and time of year. The result decorates
// the Wrapped view and is never persisted.
package insights

import (
	"fmt"
	"sort"
	"strings"

	"github.com/muesli/clusters"
	"github.com/muesli/kmeans"

	"github.com/rewindhq/rewind/internal/catalog"
)

// WaveConfig holds clustering parameters.
type WaveConfig struct {
	NumClusters int // number of waves to look for (default 3)
	MinWaveSize int // smaller clusters become outliers
}

// DefaultWaveConfig returns the recommended default configuration.
func DefaultWaveConfig() WaveConfig {
	return WaveConfig{
		NumClusters: 3,
		MinWaveSize: 2,
	}
}

// Wave is a cluster of items with a similar popularity profile and
// season.
type Wave struct {
	Name     string             // descriptive name: "Mainstream Wave (mid-year)"
	Items    []catalog.Item     // items in this wave, most popular first
	Centroid map[string]float64 // average coordinate values
}

// itemObservation adapts a catalog.Item to the clusters.Observation
// interface.
type itemObservation struct {
	item   *catalog.Item
	coords clusters.Coordinates
}

func (o itemObservation) Coordinates() clusters.Coordinates {
	return o.coords
}

func (o itemObservation) Distance(point clusters.Coordinates) float64 {
	return o.coords.Distance(point)
}

var monthIndex = map[string]int{
	"jan": 1, "feb": 2, "mar": 3, "apr": 4, "may": 5, "jun": 6,
	"jul": 7, "aug": 8, "sep": 9, "oct": 10, "nov": 11, "dec": 12,
}

// DetectWaves groups items by popularity/season similarity using k-means
// clustering. Returns waves plus outlier items that didn't fit any wave.
// Items without a popularity score or a recognizable month are treated
// as outliers.
func DetectWaves(items []catalog.Item, cfg WaveConfig) ([]Wave, []catalog.Item) {
	if len(items) == 0 {
		return nil, nil
	}
	if cfg.NumClusters <= 0 {
		cfg.NumClusters = DefaultWaveConfig().NumClusters
	}

	var valid []*catalog.Item
	var outliers []catalog.Item
	for i := range items {
		item := &items[i]
		if _, ok := itemCoords(item); ok {
			valid = append(valid, item)
		} else {
			outliers = append(outliers, *item)
		}
	}

	if len(valid) < cfg.NumClusters {
		for _, item := range valid {
			outliers = append(outliers, *item)
		}
		return nil, outliers
	}

	var obs clusters.Observations
	for _, item := range valid {
		coords, _ := itemCoords(item)
		obs = append(obs, itemObservation{item: item, coords: coords})
	}

	km := kmeans.New()
	result, err := km.Partition(obs, cfg.NumClusters)
	if err != nil {
		for _, item := range valid {
			outliers = append(outliers, *item)
		}
		return nil, outliers
	}

	var waves []Wave
	for _, cluster := range result {
		var waveItems []catalog.Item
		for _, o := range cluster.Observations {
			if io, ok := o.(itemObservation); ok {
				waveItems = append(waveItems, *io.item)
			}
		}
		if len(waveItems) < cfg.MinWaveSize {
			outliers = append(outliers, waveItems...)
			continue
		}

		sort.SliceStable(waveItems, func(i, j int) bool {
			return waveItems[i].PopularityScore > waveItems[j].PopularityScore
		})

		centroid := map[string]float64{
			"popularity": cluster.Center[0],
			"season":     cluster.Center[1],
		}
		waves = append(waves, Wave{
			Name:     waveName(centroid),
			Items:    waveItems,
			Centroid: centroid,
		})
	}

	// Most popular wave first.
	sort.SliceStable(waves, func(i, j int) bool {
		return waves[i].Centroid["popularity"] > waves[j].Centroid["popularity"]
	})

	return waves, outliers
}

// itemCoords maps an item to normalized (popularity, season) coordinates.
func itemCoords(item *catalog.Item) (clusters.Coordinates, bool) {
	if item.PopularityScore <= 0 {
		return nil, false
	}
	month, ok := monthOf(item.MonthID)
	if !ok {
		return nil, false
	}
	return clusters.Coordinates{
		float64(item.PopularityScore) / 100,
		float64(month-1) / 11,
	}, true
}

// monthOf extracts the calendar month from a month id like "jun-2016".
func monthOf(monthID string) (int, bool) {
	prefix, _, ok := strings.Cut(monthID, "-")
	if !ok {
		return 0, false
	}
	m, ok := monthIndex[strings.ToLower(prefix)]
	return m, ok
}

// waveName builds a descriptive name from the cluster centroid.
func waveName(centroid map[string]float64) string {
	var tier string
	switch pop := centroid["popularity"]; {
	case pop >= 0.9:
		tier = "Mainstream Wave"
	case pop >= 0.7:
		tier = "Rising Wave"
	default:
		tier = "Deep Cut Wave"
	}

	var season string
	switch s := centroid["season"]; {
	case s < 0.33:
		season = "early year"
	case s < 0.66:
		season = "mid-year"
	default:
		season = "year's end"
	}

	return fmt.Sprintf("%s (%s)", tier, season)
}
