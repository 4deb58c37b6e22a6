package browser_test

import (
	"strings"
	"testing"

	"github.com/playwright-community/playwright-go"
)

// TestEditMode_ToggleWithKeyboardShortcut verifies Ctrl+E flips edit mode for
// an admin and that the edit banner appears and disappears with it.
func TestEditMode_ToggleWithKeyboardShortcut(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping browser test in short mode")
	}
	app := newTestApp(t)
	page := app.newPage(t)
	app.login(t, page)

	if _, err := page.Goto(app.BaseURL + "/"); err != nil {
		t.Fatalf("failed to navigate home: %v", err)
	}

	banner := page.Locator("#edit-banner")
	if visible, _ := banner.IsVisible(); visible {
		t.Fatal("edit banner visible before toggling edit mode")
	}

	if err := page.Keyboard().Press("Control+e"); err != nil {
		t.Fatalf("failed to press Ctrl+E: %v", err)
	}
	if err := page.WaitForURL(app.BaseURL + "/"); err != nil {
		t.Fatalf("page did not reload after toggle: %v", err)
	}
	if err := banner.WaitFor(playwright.LocatorWaitForOptions{
		State:   playwright.WaitForSelectorStateVisible,
		Timeout: playwright.Float(5000),
	}); err != nil {
		t.Fatalf("edit banner did not appear after Ctrl+E: %v", err)
	}

	// Toggle back off
	if err := page.Keyboard().Press("Control+e"); err != nil {
		t.Fatalf("failed to press Ctrl+E again: %v", err)
	}
	if err := banner.WaitFor(playwright.LocatorWaitForOptions{
		State:   playwright.WaitForSelectorStateHidden,
		Timeout: playwright.Float(5000),
	}); err != nil {
		t.Fatalf("edit banner did not disappear after second Ctrl+E: %v", err)
	}
}

// TestEditMode_EditHeroTitleInPlace verifies clicking the hero title in edit
// mode, typing a new value, and confirming with Enter persists the change
// across reloads.
func TestEditMode_EditHeroTitleInPlace(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping browser test in short mode")
	}
	app := newTestApp(t)
	page := app.newPage(t)
	app.login(t, page)

	if _, err := page.Goto(app.BaseURL + "/"); err != nil {
		t.Fatalf("failed to navigate home: %v", err)
	}
	if err := page.Keyboard().Press("Control+e"); err != nil {
		t.Fatalf("failed to enter edit mode: %v", err)
	}
	if err := page.Locator("#edit-banner").WaitFor(playwright.LocatorWaitForOptions{
		State:   playwright.WaitForSelectorStateVisible,
		Timeout: playwright.Float(5000),
	}); err != nil {
		t.Fatalf("edit mode did not activate: %v", err)
	}

	title := page.Locator(`h1[data-edit-path="hero.title"]`)
	if err := title.Click(); err != nil {
		t.Fatalf("failed to click hero title: %v", err)
	}

	input := title.Locator("input")
	if err := input.Fill("Dominate the Court"); err != nil {
		t.Fatalf("failed to fill new title: %v", err)
	}
	if err := input.Press("Enter"); err != nil {
		t.Fatalf("failed to confirm with Enter: %v", err)
	}

	// Save toast confirms the write went through
	if err := page.Locator(".edit-toast").WaitFor(playwright.LocatorWaitForOptions{
		State:   playwright.WaitForSelectorStateVisible,
		Timeout: playwright.Float(5000),
	}); err != nil {
		t.Fatalf("no save notification appeared: %v", err)
	}

	if _, err := page.Reload(); err != nil {
		t.Fatalf("failed to reload: %v", err)
	}
	text, err := page.Locator(`h1[data-edit-path="hero.title"]`).TextContent()
	if err != nil {
		t.Fatalf("failed to read hero title: %v", err)
	}
	if !strings.Contains(text, "Dominate the Court") {
		t.Fatalf("edited title did not survive reload, got %q", text)
	}
}

// TestEditMode_ClickingAwayAbandonsDraft verifies that leaving the inline
// editor without pressing Enter discards the typed value. Only an explicit
// save commits.
func TestEditMode_ClickingAwayAbandonsDraft(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping browser test in short mode")
	}
	app := newTestApp(t)
	page := app.newPage(t)
	app.login(t, page)

	if _, err := page.Goto(app.BaseURL + "/"); err != nil {
		t.Fatalf("failed to navigate home: %v", err)
	}
	if err := page.Keyboard().Press("Control+e"); err != nil {
		t.Fatalf("failed to enter edit mode: %v", err)
	}
	if err := page.Locator("#edit-banner").WaitFor(playwright.LocatorWaitForOptions{
		State:   playwright.WaitForSelectorStateVisible,
		Timeout: playwright.Float(5000),
	}); err != nil {
		t.Fatalf("edit mode did not activate: %v", err)
	}

	title := page.Locator(`h1[data-edit-path="hero.title"]`)
	before, err := title.TextContent()
	if err != nil {
		t.Fatalf("failed to read hero title: %v", err)
	}
	if err := title.Click(); err != nil {
		t.Fatalf("failed to click hero title: %v", err)
	}
	if err := title.Locator("input").Fill("Abandoned Draft"); err != nil {
		t.Fatalf("failed to fill new title: %v", err)
	}
	if err := title.Locator("input").Blur(); err != nil {
		t.Fatalf("failed to blur input: %v", err)
	}

	after, err := title.TextContent()
	if err != nil {
		t.Fatalf("failed to read hero title: %v", err)
	}
	if strings.TrimSpace(after) != strings.TrimSpace(before) {
		t.Fatalf("blur changed the title: %q -> %q", before, after)
	}

	if _, err := page.Reload(); err != nil {
		t.Fatalf("failed to reload: %v", err)
	}
	text, err := page.Locator(`h1[data-edit-path="hero.title"]`).TextContent()
	if err != nil {
		t.Fatalf("failed to read hero title: %v", err)
	}
	if strings.Contains(text, "Abandoned Draft") {
		t.Fatalf("abandoned draft was persisted: %q", text)
	}
}

// TestEditMode_InertForAnonymousVisitors verifies the shortcut does nothing
// without an admin session.
func TestEditMode_InertForAnonymousVisitors(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping browser test in short mode")
	}
	app := newTestApp(t)
	page := app.newPage(t)

	if _, err := page.Goto(app.BaseURL + "/"); err != nil {
		t.Fatalf("failed to navigate home: %v", err)
	}
	if err := page.Keyboard().Press("Control+e"); err != nil {
		t.Fatalf("failed to press Ctrl+E: %v", err)
	}
	page.WaitForTimeout(500)

	if visible, _ := page.Locator("#edit-banner").IsVisible(); visible {
		t.Fatal("edit banner appeared for an anonymous visitor")
	}
}
