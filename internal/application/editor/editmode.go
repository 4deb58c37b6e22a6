package editor

import (
	"strings"
	"sync"
)

// ShortcutKey is the letter of the global edit-mode chord (Ctrl/Cmd+E).
const ShortcutKey = "e"

// Controller owns the session's edit-mode state. It is created once per
// admin session by the HTTP layer and injected into every field that needs
// the flag — never read from ambient globals, so components stay
// deterministic under test.
//
// isAdmin is fixed at creation from the session; it does not change without
// an explicit login/logout, which replaces the controller entirely.
// Edit mode always starts off and is never persisted across reloads.
type Controller struct {
	mu      sync.Mutex
	isAdmin bool
	active  bool
}

// NewController creates a controller for a session.
// PRE: isAdmin reflects the session's role at creation time
// POST: edit mode starts inactive
func NewController(isAdmin bool) *Controller {
	return &Controller{isAdmin: isAdmin}
}

// HandleShortcut processes a keyboard chord. Only modifier+ShortcutKey from
// an admin session flips edit mode; everything else is silently ignored —
// not an error, no state change.
// POST: returns the (possibly unchanged) edit-mode state
func (c *Controller) HandleShortcut(modifier bool, key string) bool {
	if !modifier || !strings.EqualFold(key, ShortcutKey) {
		return c.Active()
	}
	return c.Toggle()
}

// Toggle flips edit mode via the floating pointer control. Gated on the
// admin flag the same way the shortcut is.
// POST: returns the (possibly unchanged) edit-mode state
func (c *Controller) Toggle() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.isAdmin {
		return c.active
	}
	c.active = !c.active
	return c.active
}

// Active reports whether edit mode is on.
func (c *Controller) Active() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.active
}

// IsAdmin reports whether the owning session is an admin session.
func (c *Controller) IsAdmin() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.isAdmin
}
