package web

import (
	"net/http"
	"strings"
	"sync"
	"time"

	"beardball/internal/adapters/http/middleware"
	"beardball/internal/application/editor"
	"beardball/internal/domain/photo"
)

// editModeRegistry maps session tokens to edit-mode controllers. Edit mode
// is per session and in-memory only: a restart or re-login always starts
// with editing off.
type editModeRegistry struct {
	mu      sync.Mutex
	byToken map[string]editModeEntry
}

type editModeEntry struct {
	ctrl     *editor.Controller
	lastSeen time.Time
}

func newEditModeRegistry() *editModeRegistry {
	return &editModeRegistry{byToken: make(map[string]editModeEntry)}
}

// controllerFor returns the session's controller, creating one on first use.
// Anonymous requests share a single non-admin controller that never activates.
func (reg *editModeRegistry) controllerFor(r *http.Request, isAdmin bool) *editor.Controller {
	token := ""
	if cookie, err := r.Cookie(middleware.SessionCookieName); err == nil {
		token = cookie.Value
	}

	reg.mu.Lock()
	defer reg.mu.Unlock()
	now := time.Now()
	reg.evictStale(now)
	entry, ok := reg.byToken[token]
	if !ok {
		entry = editModeEntry{ctrl: editor.NewController(isAdmin)}
	}
	entry.lastSeen = now
	reg.byToken[token] = entry
	return entry.ctrl
}

// evictStale drops controllers whose session token cannot still be valid.
// Logout removes entries eagerly; this sweep covers sessions that simply
// aged past their TTL. Caller holds reg.mu.
func (reg *editModeRegistry) evictStale(now time.Time) {
	for token, entry := range reg.byToken {
		if now.Sub(entry.lastSeen) > middleware.SessionTTL {
			delete(reg.byToken, token)
		}
	}
}

func (reg *editModeRegistry) drop(token string) {
	reg.mu.Lock()
	defer reg.mu.Unlock()
	delete(reg.byToken, token)
}

// handleContentDocument handles GET /api/content — the full merged document.
func handleContentDocument(w http.ResponseWriter, r *http.Request) {
	if r.Method != "GET" {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	doc, err := stores.ContentService.Document(r.Context())
	if err != nil {
		internalError(w, err)
		return
	}
	writeJSON(w, doc)
}

// handleContentValue handles GET /api/content/value?path=hero.title
// The response carries an explicit found flag so clients can tell a stored
// falsy value apart from a missing path.
func handleContentValue(w http.ResponseWriter, r *http.Request) {
	if r.Method != "GET" {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	path := r.URL.Query().Get("path")
	if path == "" {
		http.Error(w, "path is required", http.StatusBadRequest)
		return
	}

	value, found, err := stores.ContentService.GetValue(r.Context(), path)
	if err != nil {
		internalError(w, err)
		return
	}
	writeJSON(w, map[string]any{
		"path":  path,
		"value": value,
		"found": found,
	})
}

// handleContentUpdate handles POST /api/content/update (admin only).
func handleContentUpdate(w http.ResponseWriter, r *http.Request) {
	if r.Method != "POST" {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	if _, ok := requireAdmin(w, r); !ok {
		return
	}

	var input struct {
		Path  string `json:"path"`
		Value any    `json:"value"`
	}
	if err := strictDecode(r, &input); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}
	if input.Path == "" {
		http.Error(w, "path is required", http.StatusBadRequest)
		return
	}
	// A data URI value is an inlined file, typically an image upload from
	// the in-place editor. It is checked here, not just in the browser, so
	// a direct API call cannot store a non-image or oversized payload.
	if s, ok := input.Value.(string); ok && strings.HasPrefix(s, "data:") {
		if err := photo.ValidateDataURI(s); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
	}

	status, err := stores.ContentService.Update(r.Context(), input.Path, input.Value)
	if err != nil {
		internalError(w, err)
		return
	}
	writeJSON(w, map[string]any{
		"path":      input.Path,
		"saved":     true,
		"persisted": status.Persisted(),
	})
}

// handleContentReset handles POST /api/content/reset (admin only).
func handleContentReset(w http.ResponseWriter, r *http.Request) {
	if r.Method != "POST" {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	if _, ok := requireAdmin(w, r); !ok {
		return
	}

	doc, err := stores.ContentService.Reset(r.Context())
	if err != nil {
		internalError(w, err)
		return
	}
	writeJSON(w, doc)
}

// handleEditModeToggle handles POST /api/editmode/toggle. The client posts
// the keyboard chord it saw; the controller decides whether it flips edit
// mode. Non-admin sessions always come back inactive — the shortcut is a
// silent no-op for them, indistinguishable from an unbound key.
func handleEditModeToggle(w http.ResponseWriter, r *http.Request) {
	if r.Method != "POST" {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	var input struct {
		Key      string `json:"key"`
		Modifier bool   `json:"modifier"`
	}
	if err := strictDecode(r, &input); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}

	ctrl := editModes.controllerFor(r, middleware.IsAdmin(r.Context()))
	ctrl.HandleShortcut(input.Modifier, input.Key)
	writeJSON(w, map[string]any{"active": ctrl.Active()})
}

// handleEditModeStatus handles GET /api/editmode.
func handleEditModeStatus(w http.ResponseWriter, r *http.Request) {
	if r.Method != "GET" {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	ctrl := editModes.controllerFor(r, middleware.IsAdmin(r.Context()))
	writeJSON(w, map[string]any{"active": ctrl.Active()})
}
