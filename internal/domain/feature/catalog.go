package feature

// IsKnown returns true if the key appears in the catalog.
func IsKnown(key string) bool {
	for _, f := range Catalog() {
		if f.Key == key {
			return true
		}
	}
	return false
}

// Feature describes a known feature key for the admin toggle UI.
type Feature struct {
	Key         string
	Description string
}

// Catalog returns the known feature keys and their descriptions.
//
// These represent broad, client-visible modules of the portal. As new major
// modules are added, append to this list.
func Catalog() []Feature {
	return []Feature{
		{Key: KeySEO, Description: "SEO (rankings, keyword tracking, audits)"},
		{Key: KeyEcommerce, Description: "Ecommerce (products, orders)"},
		{Key: KeyBlog, Description: "Blog (posts, drafts, publishing)"},
		{Key: KeyPortfolio, Description: "Portfolio (case studies, showcases)"},
		{Key: KeyEmail, Description: "Email marketing (campaigns, templates)"},
		{Key: KeyTeam, Description: "Team (members, roles)"},
		{Key: KeyTeamMetrics, Description: "Team metrics (workload, performance)"},
		{Key: KeyForms, Description: "Forms (lead capture, submissions)"},
		{Key: KeyAnalytics, Description: "Analytics (traffic, conversions)"},
		{Key: KeyBooking, Description: "Sync scheduling (event types, booking pages)"},
	}
}
