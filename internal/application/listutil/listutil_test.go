package listutil

import (
	"net/url"
	"testing"
)

// TestParsePageParams_Defaults verifies default page params when no query values provided.
func TestParsePageParams_Defaults(t *testing.T) {
	p := ParsePageParams(url.Values{})
	if p.Page != 1 {
		t.Errorf("expected page 1, got %d", p.Page)
	}
	if p.PerPage != DefaultPerPage {
		t.Errorf("expected per_page %d, got %d", DefaultPerPage, p.PerPage)
	}
}

// TestParsePageParams_InvalidPerPage verifies unsupported per_page values fall back.
func TestParsePageParams_InvalidPerPage(t *testing.T) {
	q := url.Values{"page": {"3"}, "per_page": {"37"}}
	p := ParsePageParams(q)
	if p.Page != 3 {
		t.Errorf("expected page 3, got %d", p.Page)
	}
	if p.PerPage != DefaultPerPage {
		t.Errorf("expected fallback per_page, got %d", p.PerPage)
	}
}

// TestParseFilterParams_OnlyAllowedKeys verifies unrecognised filters are dropped.
func TestParseFilterParams_OnlyAllowedKeys(t *testing.T) {
	q := url.Values{"q": {"dental"}, "status": {"new"}, "admin": {"1"}}
	fp := ParseFilterParams(q, []string{"status", "source"})
	if fp.Search != "dental" {
		t.Errorf("expected search=dental, got %s", fp.Search)
	}
	if fp.Filters["status"] != "new" {
		t.Errorf("expected status filter, got %v", fp.Filters)
	}
	if _, ok := fp.Filters["admin"]; ok {
		t.Error("expected unrecognised filter key to be dropped")
	}
}

// TestNewPageInfo_ClampsPage verifies the page is clamped to the valid range.
func TestNewPageInfo_ClampsPage(t *testing.T) {
	info := NewPageInfo(99, 20, 45)
	if info.TotalPages != 3 {
		t.Errorf("expected 3 total pages, got %d", info.TotalPages)
	}
	if info.Page != 3 {
		t.Errorf("expected page clamped to 3, got %d", info.Page)
	}
	if info.Offset() != 40 {
		t.Errorf("expected offset 40, got %d", info.Offset())
	}
}

// TestNewPageInfo_EmptyResult verifies an empty result still has one page.
func TestNewPageInfo_EmptyResult(t *testing.T) {
	info := NewPageInfo(1, 20, 0)
	if info.TotalPages != 1 {
		t.Errorf("expected 1 total page, got %d", info.TotalPages)
	}
	if info.ShowPagination() {
		t.Error("expected no pagination controls for empty result")
	}
}

// TestPageNumbers_CenteredWindow verifies at most 5 pages centered on current.
func TestPageNumbers_CenteredWindow(t *testing.T) {
	info := NewPageInfo(6, 10, 200) // 20 pages
	pages := info.PageNumbers()
	if len(pages) != 5 {
		t.Fatalf("expected 5 page buttons, got %d", len(pages))
	}
	if pages[0] != 4 || pages[4] != 8 {
		t.Errorf("expected window 4..8, got %v", pages)
	}
}
