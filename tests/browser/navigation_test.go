package browser_test

import (
	"testing"

	"github.com/playwright-community/playwright-go"
)

// TestNavigation_AdminPortalToProject drives an admin through the context
// switcher: portal dashboard, into a client organization, into one of its
// projects, and back out.
func TestNavigation_AdminPortalToProject(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping browser test in short mode")
	}
	app := newTestApp(t)
	page := app.newPage(t)
	app.login(t, page)

	// Admin portal shows the Clients entry
	if err := page.Locator("nav >> text=Clients").WaitFor(playwright.LocatorWaitForOptions{
		Timeout: playwright.Float(5000),
	}); err != nil {
		t.Fatalf("expected Clients entry in admin portal nav: %v", err)
	}

	// Enter the first seeded client organization
	if _, err := page.Goto(app.BaseURL + "/clients"); err != nil {
		t.Fatalf("failed to open clients list: %v", err)
	}
	if err := page.Locator("form[action='/context/org'] button").First().Click(); err != nil {
		t.Fatalf("failed to enter organization: %v", err)
	}
	if err := page.WaitForURL(app.BaseURL+"/dashboard", playwright.PageWaitForURLOptions{
		Timeout: playwright.Float(10000),
	}); err != nil {
		t.Fatalf("org switch did not land on dashboard: %v", err)
	}

	// Organization context shows the services divider
	if err := page.Locator("nav >> text=Services").WaitFor(playwright.LocatorWaitForOptions{
		Timeout: playwright.Float(5000),
	}); err != nil {
		t.Fatalf("expected org services segment after switch: %v", err)
	}

	// Exit back to the admin portal
	if err := page.Locator("form[action='/context/org/exit'] button").Click(); err != nil {
		t.Fatalf("failed to exit organization: %v", err)
	}
	if err := page.Locator("nav >> text=Clients").WaitFor(playwright.LocatorWaitForOptions{
		Timeout: playwright.Float(5000),
	}); err != nil {
		t.Fatalf("expected admin portal nav after exit: %v", err)
	}
}
