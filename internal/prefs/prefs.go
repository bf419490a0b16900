// Package prefs persists the per-device display preferences.
package prefs

import (
	"encoding/json"
	"sync"

	"github.com/rs/zerolog"

	"github.com/rewindhq/rewind/internal/blob"
)

// Theme is the display theme.
type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

// Preferences is the persisted preferences document.
type Preferences struct {
	Theme                Theme `json:"theme"`
	ShowNostalgiaEffects bool  `json:"showNostalgiaEffects"`
	AutoPlaySounds       bool  `json:"autoPlaySounds"`
}

// Defaults returns the out-of-the-box preferences.
func Defaults() Preferences {
	return Preferences{
		Theme:                ThemeLight,
		ShowNostalgiaEffects: true,
		AutoPlaySounds:       false,
	}
}

// Manager owns the "preferences" document. Persistence faults degrade
// to defaults on read and are dropped on write.
type Manager struct {
	mu    sync.Mutex
	store blob.Store
	log   zerolog.Logger
	prefs Preferences
}

// New creates a Manager and loads the persisted document, falling back
// to defaults when it is missing or corrupt.
func New(store blob.Store, log zerolog.Logger) *Manager {
	m := &Manager{store: store, log: log, prefs: Defaults()}
	data, ok, err := store.Get(blob.KeyPreferences)
	if err != nil {
		log.Warn().Err(err).Msg("loading preferences, using defaults")
		return m
	}
	if !ok {
		return m
	}
	var prefs Preferences
	if err := json.Unmarshal(data, &prefs); err != nil {
		log.Warn().Err(err).Msg("corrupt preferences document, using defaults")
		return m
	}
	if prefs.Theme != ThemeLight && prefs.Theme != ThemeDark {
		prefs.Theme = ThemeLight
	}
	m.prefs = prefs
	return m
}

// Get returns the current preferences.
func (m *Manager) Get() Preferences {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.prefs
}

// Set replaces the preferences and persists them.
func (m *Manager) Set(prefs Preferences) {
	if prefs.Theme != ThemeLight && prefs.Theme != ThemeDark {
		prefs.Theme = ThemeLight
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.prefs = prefs

	data, err := json.Marshal(prefs)
	if err != nil {
		m.log.Warn().Err(err).Msg("encoding preferences")
		return
	}
	if err := m.store.Put(blob.KeyPreferences, data); err != nil {
		m.log.Warn().Err(err).Msg("persisting preferences")
	}
}
