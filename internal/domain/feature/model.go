package feature

// Feature keys referenced by navigation, routes and templates. Keys are stable
// and stored per tenant in the feature_flag table.
const (
	KeySEO         = "seo"
	KeyEcommerce   = "ecommerce"
	KeyBlog        = "blog"
	KeyPortfolio   = "portfolio"
	KeyEmail       = "email"
	KeyTeam        = "team"
	KeyTeamMetrics = "team_metrics"
	KeyForms       = "forms"
	KeyAnalytics   = "analytics"
	KeyBooking     = "booking"
)

// Flags holds the feature toggles for a single tenant (organization or
// project). Presence in the map means the flag was explicitly set; an absent
// key is unset and callers decide the default.
type Flags map[string]bool

// Lookup returns the raw flag value and whether the key was explicitly set.
// INVARIANT: f is not mutated
func (f Flags) Lookup(key string) (enabled, ok bool) {
	enabled, ok = f[key]
	return enabled, ok
}

// Enabled returns the flag value with unset keys defaulting to disabled.
// This is the client-tenant default: portal modules are opt-in per tenant.
// INVARIANT: f is not mutated
func (f Flags) Enabled(key string) bool {
	return f[key]
}

// ExplicitlyDisabled returns true only when the key was set to false.
// INVARIANT: f is not mutated
func (f Flags) ExplicitlyDisabled(key string) bool {
	v, ok := f[key]
	return ok && !v
}

// adminToolKeys is the fixed allow-list of modules agency staff see by default
// in their own admin portal without per-org configuration. Client tenants are
// always opt-in regardless of this list.
var adminToolKeys = map[string]bool{
	KeySEO:         true,
	KeyEcommerce:   true,
	KeyBlog:        true,
	KeyPortfolio:   true,
	KeyEmail:       true,
	KeyTeam:        true,
	KeyTeamMetrics: true,
	KeyForms:       true,
}

// IsAdminTool returns true if the key is in the admin-tools allow-list.
func IsAdminTool(key string) bool {
	return adminToolKeys[key]
}
