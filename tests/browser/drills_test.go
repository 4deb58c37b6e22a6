package browser_test

import (
	"testing"

	"github.com/playwright-community/playwright-go"
)

// TestDrills_CategoryFilter verifies the seeded library renders grouped by
// category and that the filter narrows to one group.
func TestDrills_CategoryFilter(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping browser test in short mode")
	}
	app := newTestApp(t)
	page := app.newPage(t)

	if _, err := page.Goto(app.BaseURL + "/drills"); err != nil {
		t.Fatalf("failed to navigate to drills: %v", err)
	}

	// Seeded library spans shooting, ball handling, and defense
	groups := page.Locator(".drill-group")
	count, err := groups.Count()
	if err != nil {
		t.Fatalf("failed to count groups: %v", err)
	}
	if count < 3 {
		t.Fatalf("got %d category groups, want at least 3", count)
	}

	if err := page.Locator(`a.filter[href="/drills?category=shooting"]`).Click(); err != nil {
		t.Fatalf("failed to click shooting filter: %v", err)
	}
	if err := page.WaitForURL(app.BaseURL + "/drills?category=shooting"); err != nil {
		t.Fatalf("filter did not navigate: %v", err)
	}

	heading := page.Locator(".drill-group h2").Filter(playwright.LocatorFilterOptions{HasText: "Shooting"})
	if err := heading.WaitFor(playwright.LocatorWaitForOptions{
		State:   playwright.WaitForSelectorStateVisible,
		Timeout: playwright.Float(5000),
	}); err != nil {
		t.Fatalf("shooting group not shown: %v", err)
	}

	count, err = page.Locator(".drill-group").Count()
	if err != nil {
		t.Fatalf("failed to recount groups: %v", err)
	}
	if count != 1 {
		t.Fatalf("filtered view shows %d groups, want 1", count)
	}
}
