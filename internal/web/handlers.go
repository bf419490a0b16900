package web

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/rewindhq/rewind/internal/auth"
	"github.com/rewindhq/rewind/internal/capsule"
	"github.com/rewindhq/rewind/internal/catalog"
	"github.com/rewindhq/rewind/internal/docstore"
	"github.com/rewindhq/rewind/internal/favorites"
	"github.com/rewindhq/rewind/internal/gamification"
	"github.com/rewindhq/rewind/internal/insights"
	"github.com/rewindhq/rewind/internal/mirror"
	"github.com/rewindhq/rewind/internal/prefs"
)

type contextKey string

const sessionContextKey contextKey = "session"

// Handlers contains HTTP handlers for the Rewind API.
type Handlers struct {
	catalog   *catalog.Store
	favorites *favorites.Aggregator
	progress  *gamification.Engine
	prefs     *prefs.Manager

	auth     *auth.Provider
	capsules *capsule.Service
	mirror   *mirror.Mirror

	sessions *SessionStore
}

// NewHandlers creates a new Handlers instance.
func NewHandlers(cfg ServerConfig, sessions *SessionStore) *Handlers {
	return &Handlers{
		catalog:   cfg.Catalog,
		favorites: cfg.Favorites,
		progress:  cfg.Progress,
		prefs:     cfg.Prefs,
		auth:      cfg.Auth,
		capsules:  cfg.Capsules,
		mirror:    cfg.Mirror,
		sessions:  sessions,
	}
}

// ----------------------------------------------------------------------------
// Auth
// ----------------------------------------------------------------------------

// Login initiates the OAuth flow (GET /auth/login).
func (h *Handlers) Login(w http.ResponseWriter, r *http.Request) {
	if h.auth == nil {
		respondError(w, http.StatusServiceUnavailable, "login is not configured")
		return
	}

	state, err := auth.GenerateState()
	if err != nil {
		respondError(w, http.StatusInternalServerError, "failed to generate state")
		return
	}

	// Store state in cookie for validation on callback.
	http.SetCookie(w, &http.Cookie{
		Name:     "oauth_state",
		Value:    state,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   300,
	})

	http.Redirect(w, r, h.auth.AuthURL(state), http.StatusTemporaryRedirect)
}

// Callback handles the OAuth callback (GET /callback).
func (h *Handlers) Callback(w http.ResponseWriter, r *http.Request) {
	if h.auth == nil {
		respondError(w, http.StatusServiceUnavailable, "login is not configured")
		return
	}

	stateCookie, err := r.Cookie("oauth_state")
	if err != nil {
		respondError(w, http.StatusBadRequest, "missing state cookie")
		return
	}
	if r.URL.Query().Get("state") != stateCookie.Value {
		respondError(w, http.StatusBadRequest, "state mismatch")
		return
	}

	// Clear state cookie.
	http.SetCookie(w, &http.Cookie{
		Name:     "oauth_state",
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		MaxAge:   -1,
	})

	if errMsg := r.URL.Query().Get("error"); errMsg != "" {
		respondError(w, http.StatusBadRequest, fmt.Sprintf("provider error: %s", errMsg))
		return
	}

	identity, err := h.auth.Exchange(r.Context(), r.URL.Query().Get("code"))
	if err != nil {
		respondError(w, http.StatusInternalServerError, "failed to complete login")
		return
	}

	session, err := h.sessions.Create(*identity)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "failed to create session")
		return
	}
	h.sessions.SetCookie(w, session)

	http.Redirect(w, r, "/", http.StatusTemporaryRedirect)
}

// Logout clears the session (POST /auth/logout).
func (h *Handlers) Logout(w http.ResponseWriter, r *http.Request) {
	if session := h.sessions.GetFromRequest(r); session != nil {
		h.sessions.Delete(session.ID)
	}
	h.sessions.ClearCookie(w)
	respondJSON(w, http.StatusOK, map[string]bool{"ok": true})
}

// Me reports the signed-in user, if any (GET /api/me).
func (h *Handlers) Me(w http.ResponseWriter, r *http.Request) {
	session := h.sessions.GetFromRequest(r)
	if session == nil {
		respondJSON(w, http.StatusOK, map[string]any{"authenticated": false})
		return
	}
	respondJSON(w, http.StatusOK, map[string]any{
		"authenticated": true,
		"user": map[string]string{
			"id":          session.User.ID,
			"displayName": session.User.DisplayName,
		},
	})
}

// RequireSession rejects requests without a valid session.
func (h *Handlers) RequireSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		session := h.sessions.GetFromRequest(r)
		if session == nil {
			respondError(w, http.StatusUnauthorized, "sign in required")
			return
		}
		ctx := context.WithValue(r.Context(), sessionContextKey, session)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func sessionFrom(r *http.Request) *Session {
	session, _ := r.Context().Value(sessionContextKey).(*Session)
	return session
}

// ----------------------------------------------------------------------------
// Catalog
// ----------------------------------------------------------------------------

// ListYears handles GET /api/years.
func (h *Handlers) ListYears(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.catalog.Years())
}

// GetYear handles GET /api/years/{yearID}.
func (h *Handlers) GetYear(w http.ResponseWriter, r *http.Request) {
	year, ok := h.catalog.YearByID(chi.URLParam(r, "yearID"))
	if !ok {
		respondNotFound(w)
		return
	}
	respondJSON(w, http.StatusOK, year)
}

// ListMonths handles GET /api/years/{yearID}/months.
func (h *Handlers) ListMonths(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.catalog.MonthsByYear(chi.URLParam(r, "yearID")))
}

// ListYearItems handles GET /api/years/{yearID}/items.
func (h *Handlers) ListYearItems(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.catalog.ItemsByYear(chi.URLParam(r, "yearID")))
}

// ListCategories handles GET /api/categories.
func (h *Handlers) ListCategories(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.catalog.Categories())
}

// ListMonthItems handles GET /api/months/{monthID}/items. An optional
// category query parameter narrows the result.
func (h *Handlers) ListMonthItems(w http.ResponseWriter, r *http.Request) {
	monthID := chi.URLParam(r, "monthID")
	if categoryID := r.URL.Query().Get("category"); categoryID != "" {
		respondJSON(w, http.StatusOK, h.catalog.ItemsByCategory(monthID, categoryID))
		return
	}
	respondJSON(w, http.StatusOK, h.catalog.ItemsByMonth(monthID))
}

// GetItem handles GET /api/items/{itemID}.
func (h *Handlers) GetItem(w http.ResponseWriter, r *http.Request) {
	item, ok := h.catalog.ItemByID(chi.URLParam(r, "itemID"))
	if !ok {
		respondNotFound(w)
		return
	}
	respondJSON(w, http.StatusOK, item)
}

// GetItemBySlug handles GET /api/items/slug/{slug}.
func (h *Handlers) GetItemBySlug(w http.ResponseWriter, r *http.Request) {
	item, ok := h.catalog.ItemBySlug(chi.URLParam(r, "slug"))
	if !ok {
		respondNotFound(w)
		return
	}
	respondJSON(w, http.StatusOK, item)
}

// RandomItem handles GET /api/items/random.
func (h *Handlers) RandomItem(w http.ResponseWriter, r *http.Request) {
	item, ok := h.catalog.RandomItem()
	if !ok {
		respondNotFound(w)
		return
	}
	respondJSON(w, http.StatusOK, item)
}

// RelatedItems handles GET /api/items/{itemID}/related.
func (h *Handlers) RelatedItems(w http.ResponseWriter, r *http.Request) {
	item, ok := h.catalog.ItemByID(chi.URLParam(r, "itemID"))
	if !ok {
		respondNotFound(w)
		return
	}
	n := 4
	if raw := r.URL.Query().Get("limit"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil && parsed > 0 {
			n = parsed
		}
	}
	respondJSON(w, http.StatusOK, h.catalog.Related(item, n))
}

// Search handles GET /api/search?q=.
func (h *Handlers) Search(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")
	if query == "" {
		respondError(w, http.StatusBadRequest, "missing q parameter")
		return
	}
	respondJSON(w, http.StatusOK, h.catalog.Search(query))
}

// OnThisDay handles GET /api/on-this-day.
func (h *Handlers) OnThisDay(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.catalog.OnThisDay(time.Now().Month()))
}

// ----------------------------------------------------------------------------
// Favorites and wrapped
// ----------------------------------------------------------------------------

// ListFavorites handles GET /api/favorites.
func (h *Handlers) ListFavorites(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]any{
		"favorites": h.favorites.Entries(),
		"total":     h.favorites.Total(),
	})
}

// AddFavorite handles PUT /api/favorites/{itemID}. Adding an existing
// favorite is a no-op and returns the existing entry.
func (h *Handlers) AddFavorite(w http.ResponseWriter, r *http.Request) {
	item, ok := h.catalog.ItemByID(chi.URLParam(r, "itemID"))
	if !ok {
		respondNotFound(w)
		return
	}

	var body struct {
		Notes string `json:"notes"`
	}
	_ = json.NewDecoder(r.Body).Decode(&body)

	wasFavorite := h.favorites.IsFavorite(item.ID)
	entry := h.favorites.Add(item, body.Notes)

	var unlocked []gamification.Achievement
	if !wasFavorite {
		unlocked = h.progress.RecordFavorite()
	}
	respondJSON(w, http.StatusOK, map[string]any{
		"entry":    entry,
		"unlocked": unlocked,
	})
}

// RemoveFavorite handles DELETE /api/favorites/{itemID}.
func (h *Handlers) RemoveFavorite(w http.ResponseWriter, r *http.Request) {
	h.favorites.Remove(chi.URLParam(r, "itemID"))
	respondJSON(w, http.StatusOK, map[string]bool{"ok": true})
}

// ToggleFavorite handles POST /api/favorites/{itemID}/toggle.
func (h *Handlers) ToggleFavorite(w http.ResponseWriter, r *http.Request) {
	item, ok := h.catalog.ItemByID(chi.URLParam(r, "itemID"))
	if !ok {
		respondNotFound(w)
		return
	}

	added := h.favorites.Toggle(item)
	var unlocked []gamification.Achievement
	if added {
		unlocked = h.progress.RecordFavorite()
	}
	respondJSON(w, http.StatusOK, map[string]any{
		"isFavorite": added,
		"unlocked":   unlocked,
	})
}

// ClearFavorites handles DELETE /api/favorites.
func (h *Handlers) ClearFavorites(w http.ResponseWriter, r *http.Request) {
	h.favorites.Clear()
	respondJSON(w, http.StatusOK, map[string]bool{"ok": true})
}

// GetWrapped handles GET /api/wrapped/{year}. When the caller is
// signed in, the summary is also mirrored to the remote store.
func (h *Handlers) GetWrapped(w http.ResponseWriter, r *http.Request) {
	year, err := strconv.Atoi(chi.URLParam(r, "year"))
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid year")
		return
	}
	wrapped := h.favorites.Wrapped(year)

	if session := h.sessions.GetFromRequest(r); session != nil && h.mirror != nil {
		h.mirror.Enqueue(mirror.Snapshot{
			Collection: docstore.CollectionWrapped,
			ID:         fmt.Sprintf("%s-%s", session.User.ID, wrapped.ID),
			Payload:    wrapped,
		})
	}
	respondJSON(w, http.StatusOK, wrapped)
}

// ExportWrapped handles GET /api/wrapped/{year}/export, serving the
// favorites export as a download.
func (h *Handlers) ExportWrapped(w http.ResponseWriter, r *http.Request) {
	filename, data := h.favorites.Export()
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}

// WrappedWaves handles GET /api/wrapped/{year}/waves, clustering the
// year's favorites into nostalgia waves.
func (h *Handlers) WrappedWaves(w http.ResponseWriter, r *http.Request) {
	year, err := strconv.Atoi(chi.URLParam(r, "year"))
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid year")
		return
	}
	wrapped := h.favorites.Wrapped(year)

	items := make([]catalog.Item, 0, len(wrapped.FavoriteItems))
	for _, entry := range wrapped.FavoriteItems {
		items = append(items, entry.Item)
	}
	waves, outliers := insights.DetectWaves(items, insights.DefaultWaveConfig())
	respondJSON(w, http.StatusOK, map[string]any{
		"waves":    waves,
		"outliers": outliers,
	})
}

// ----------------------------------------------------------------------------
// Progress and achievements
// ----------------------------------------------------------------------------

// RecordExploration handles POST /api/progress/explorations/{itemID}.
func (h *Handlers) RecordExploration(w http.ResponseWriter, r *http.Request) {
	item, ok := h.catalog.ItemByID(chi.URLParam(r, "itemID"))
	if !ok {
		respondNotFound(w)
		return
	}
	unlocked := h.progress.RecordExploration(item)
	respondJSON(w, http.StatusOK, map[string]any{
		"unlocked": unlocked,
		"stats":    h.progress.Stats(),
	})
}

// RecordShare handles POST /api/progress/shares.
func (h *Handlers) RecordShare(w http.ResponseWriter, r *http.Request) {
	unlocked := h.progress.RecordShare()
	respondJSON(w, http.StatusOK, map[string]any{
		"unlocked": unlocked,
		"stats":    h.progress.Stats(),
	})
}

// ResetProgress handles DELETE /api/progress.
func (h *Handlers) ResetProgress(w http.ResponseWriter, r *http.Request) {
	h.progress.Reset()
	respondJSON(w, http.StatusOK, map[string]bool{"ok": true})
}

// ListAchievements handles GET /api/achievements.
func (h *Handlers) ListAchievements(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.progress.AvailableAchievements())
}

// ListEarnedAchievements handles GET /api/achievements/earned.
func (h *Handlers) ListEarnedAchievements(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.progress.EarnedAchievements())
}

// AchievementProgress handles GET /api/achievements/{achievementID}/progress.
func (h *Handlers) AchievementProgress(w http.ResponseWriter, r *http.Request) {
	progress, ok := h.progress.AchievementProgress(chi.URLParam(r, "achievementID"))
	if !ok {
		respondNotFound(w)
		return
	}
	respondJSON(w, http.StatusOK, progress)
}

// GetStats handles GET /api/stats.
func (h *Handlers) GetStats(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.progress.Stats())
}

// StreakMessage handles GET /api/streak-message.
func (h *Handlers) StreakMessage(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{"message": h.progress.StreakMessage()})
}

// ----------------------------------------------------------------------------
// Preferences
// ----------------------------------------------------------------------------

// GetPreferences handles GET /api/preferences.
func (h *Handlers) GetPreferences(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.prefs.Get())
}

// PutPreferences handles PUT /api/preferences.
func (h *Handlers) PutPreferences(w http.ResponseWriter, r *http.Request) {
	var p prefs.Preferences
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
		respondError(w, http.StatusBadRequest, "invalid preferences payload")
		return
	}
	h.prefs.Set(p)
	respondJSON(w, http.StatusOK, h.prefs.Get())
}

// ----------------------------------------------------------------------------
// Capsules
// ----------------------------------------------------------------------------

func (h *Handlers) capsulesReady(w http.ResponseWriter) bool {
	if h.capsules == nil {
		respondError(w, http.StatusServiceUnavailable, "capsules are not configured")
		return false
	}
	return true
}

func respondCapsuleError(w http.ResponseWriter, err error) {
	var verr *capsule.ValidationError
	switch {
	case errors.Is(err, capsule.ErrNotFound):
		respondNotFound(w)
	case errors.Is(err, capsule.ErrSealed):
		respondError(w, http.StatusConflict, "capsule is sealed")
	case errors.As(err, &verr):
		respondError(w, http.StatusUnprocessableEntity, verr.Error())
	default:
		respondError(w, http.StatusInternalServerError, "capsule operation failed")
	}
}

// ListCapsules handles GET /api/capsules.
func (h *Handlers) ListCapsules(w http.ResponseWriter, r *http.Request) {
	if !h.capsulesReady(w) {
		return
	}
	session := sessionFrom(r)
	capsules, err := h.capsules.ForUser(r.Context(), session.User.ID)
	if err != nil {
		respondCapsuleError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, capsules)
}

// CreateCapsule handles POST /api/capsules.
func (h *Handlers) CreateCapsule(w http.ResponseWriter, r *http.Request) {
	if !h.capsulesReady(w) {
		return
	}
	var body struct {
		YearID      string `json:"yearId"`
		Title       string `json:"title"`
		Description string `json:"description"`
		IsPublic    bool   `json:"isPublic"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		respondError(w, http.StatusBadRequest, "invalid capsule payload")
		return
	}

	session := sessionFrom(r)
	c, err := h.capsules.Create(r.Context(), session.User.ID, body.YearID, body.Title, body.Description, body.IsPublic)
	if err != nil {
		respondCapsuleError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, c)
}

// GetCapsule handles GET /api/capsules/{capsuleID}.
func (h *Handlers) GetCapsule(w http.ResponseWriter, r *http.Request) {
	if !h.capsulesReady(w) {
		return
	}
	session := sessionFrom(r)
	c, err := h.capsules.Get(r.Context(), session.User.ID, chi.URLParam(r, "capsuleID"))
	if err != nil {
		respondCapsuleError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]any{
		"capsule": c,
		"status":  c.Status(time.Now()),
	})
}

// DeleteCapsule handles DELETE /api/capsules/{capsuleID}.
func (h *Handlers) DeleteCapsule(w http.ResponseWriter, r *http.Request) {
	if !h.capsulesReady(w) {
		return
	}
	session := sessionFrom(r)
	if err := h.capsules.Delete(r.Context(), session.User.ID, chi.URLParam(r, "capsuleID")); err != nil {
		respondCapsuleError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]bool{"ok": true})
}

// AddCapsuleEntry handles POST /api/capsules/{capsuleID}/entries.
func (h *Handlers) AddCapsuleEntry(w http.ResponseWriter, r *http.Request) {
	if !h.capsulesReady(w) {
		return
	}
	var body struct {
		Title       string            `json:"title"`
		Description string            `json:"description"`
		MediaURL    string            `json:"mediaUrl"`
		MediaType   capsule.MediaType `json:"mediaType"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		respondError(w, http.StatusBadRequest, "invalid entry payload")
		return
	}

	session := sessionFrom(r)
	c, err := h.capsules.AddEntry(r.Context(), session.User.ID, chi.URLParam(r, "capsuleID"),
		body.Title, body.Description, body.MediaURL, body.MediaType)
	if err != nil {
		respondCapsuleError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, c)
}

// SealCapsule handles POST /api/capsules/{capsuleID}/seal.
func (h *Handlers) SealCapsule(w http.ResponseWriter, r *http.Request) {
	if !h.capsulesReady(w) {
		return
	}
	var body struct {
		SealedUntil *time.Time `json:"sealedUntil"`
	}
	if r.Body != nil {
		_ = json.NewDecoder(r.Body).Decode(&body)
	}

	session := sessionFrom(r)
	c, err := h.capsules.Seal(r.Context(), session.User.ID, chi.URLParam(r, "capsuleID"), body.SealedUntil)
	if err != nil {
		respondCapsuleError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]any{
		"capsule": c,
		"status":  c.Status(time.Now()),
	})
}
