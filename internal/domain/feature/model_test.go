package feature

import "testing"

// TestFlags_Lookup_TriState verifies set/unset flags are distinguishable.
func TestFlags_Lookup_TriState(t *testing.T) {
	f := Flags{KeySEO: true, KeyBlog: false}

	if v, ok := f.Lookup(KeySEO); !ok || !v {
		t.Fatalf("expected seo explicitly enabled, got v=%v ok=%v", v, ok)
	}
	if v, ok := f.Lookup(KeyBlog); !ok || v {
		t.Fatalf("expected blog explicitly disabled, got v=%v ok=%v", v, ok)
	}
	if _, ok := f.Lookup(KeyEcommerce); ok {
		t.Fatalf("expected ecommerce unset")
	}
}

// TestFlags_Enabled_DefaultsDisabled verifies unset keys are disabled.
func TestFlags_Enabled_DefaultsDisabled(t *testing.T) {
	f := Flags{KeySEO: true}

	if !f.Enabled(KeySEO) {
		t.Fatalf("expected seo enabled")
	}
	if f.Enabled(KeyBlog) {
		t.Fatalf("expected unset blog disabled")
	}
	if (Flags)(nil).Enabled(KeySEO) {
		t.Fatalf("expected nil flags disabled")
	}
}

// TestFlags_ExplicitlyDisabled verifies only a stored false counts.
func TestFlags_ExplicitlyDisabled(t *testing.T) {
	f := Flags{KeyBlog: false, KeySEO: true}

	if !f.ExplicitlyDisabled(KeyBlog) {
		t.Fatalf("expected blog explicitly disabled")
	}
	if f.ExplicitlyDisabled(KeySEO) {
		t.Fatalf("seo is enabled, not disabled")
	}
	if f.ExplicitlyDisabled(KeyForms) {
		t.Fatalf("unset forms is not explicitly disabled")
	}
}

// TestIsAdminTool_AllowList verifies the fixed admin-tools allow-list.
func TestIsAdminTool_AllowList(t *testing.T) {
	for _, key := range []string{KeySEO, KeyEcommerce, KeyBlog, KeyPortfolio, KeyEmail, KeyTeam, KeyTeamMetrics, KeyForms} {
		if !IsAdminTool(key) {
			t.Errorf("expected %s in admin-tools allow-list", key)
		}
	}
	for _, key := range []string{KeyAnalytics, KeyBooking, "unknown"} {
		if IsAdminTool(key) {
			t.Errorf("expected %s outside admin-tools allow-list", key)
		}
	}
}
