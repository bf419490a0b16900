// Package blob provides the key-addressed local blob store that backs the
// per-device aggregates (favorites, gamification stats, preferences).
// Each key holds one logical JSON document; last write wins.
package blob

// Well-known document keys.
const (
	KeyFavorites    = "favorites"
	KeyGamification = "gamification"
	KeyPreferences  = "preferences"
)

// Store is a key-addressed blob store surviving across process restarts.
// A missing key is reported as ok=false, not an error.
type Store interface {
	Get(key string) (value []byte, ok bool, err error)
	Put(key string, value []byte) error
	Delete(key string) error
}
