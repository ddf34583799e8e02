package navigation

import (
	"strconv"

	"portal/internal/domain/feature"
)

// Entry is a single navigation item. Entries are value objects recomputed on
// every render; only the badge text changes when async counts resolve. An
// empty Route means the entry switches an in-page section instead of
// navigating.
type Entry struct {
	ID      string
	Label   string
	Icon    string
	Route   string
	Badge   string
	Divider bool
}

// Entry IDs referenced by handlers and templates.
const (
	EntryDashboard   = "dashboard"
	EntryMyClients   = "my_clients"
	EntryClients     = "clients"
	EntrySEO         = "seo"
	EntryEcommerce   = "ecommerce"
	EntryForms       = "forms"
	EntryEmail       = "email"
	EntryBlog        = "blog"
	EntryAnalytics   = "analytics"
	EntrySync        = "sync"
	EntryTeam        = "team"
	EntryTeamMetrics = "team_metrics"
	EntryMessages    = "messages"
	EntryProposals   = "proposals"
	EntryBilling     = "billing"
	EntryFiles       = "files"
	EntryAudits      = "audits"
	EntryProjects    = "projects"
	EntryPortfolio   = "portfolio"
)

// Badges carries the async count results overlaid on entries. A nil count
// means the fetch is still pending or failed; the badge is simply omitted —
// counts never affect ordering or visibility.
type Badges struct {
	UnreadMessages *int
	UnreadAudits   *int
	UnpaidInvoices *int
	NewLeads       *int
}

// item pairs an entry with its visibility predicate. Segments are declarative
// tables filtered in one pass; a nil predicate is always visible.
type item struct {
	entry   Entry
	visible func() bool
}

// Build assembles the ordered navigation list for a context. Segment
// precedence is fixed: sales-rep short circuit, project modules, organization
// services, admin portal core, admin tools, manager view. Non-empty segments
// are concatenated in that order.
// PRE: c was produced by Resolve
// POST: Returns the full entry list; no side effects
func Build(c Context, b Badges) []Entry {
	if c.IsSalesRep() {
		return []Entry{
			{ID: EntryDashboard, Label: "Dashboard", Icon: "home", Route: "/dashboard"},
			{ID: EntryMyClients, Label: "My Clients", Icon: "users", Route: "/leads/mine"},
		}
	}

	var items []item
	items = append(items, projectSegment(c)...)
	items = append(items, orgServicesSegment(c, b)...)
	items = append(items, adminCoreSegment(c, b)...)
	items = append(items, adminToolsSegment(c, b)...)
	items = append(items, managerSegment(c)...)

	out := make([]Entry, 0, len(items))
	for _, it := range items {
		if it.visible == nil || it.visible() {
			out = append(out, it.entry)
		}
	}
	return out
}

// projectSegment lists the modules of the current project. Module entries have
// no route: they switch sections on the project dashboard. Clients (CRM) is
// always on; the rest are gated by the tenant's flags.
func projectSegment(c Context) []item {
	if !c.IsInProject {
		return nil
	}
	gated := func(key string) func() bool {
		return func() bool { return c.HasFeature(key) }
	}
	return []item{
		{entry: Entry{ID: "project_divider", Label: c.Project.Title, Divider: true}},
		{entry: Entry{ID: EntryDashboard, Label: "Dashboard", Icon: "home"}},
		{entry: Entry{ID: EntryClients, Label: "Clients", Icon: "users"}},
		{entry: Entry{ID: EntrySEO, Label: "SEO", Icon: "search"}, visible: gated(feature.KeySEO)},
		{entry: Entry{ID: EntryEcommerce, Label: "Ecommerce", Icon: "cart"}, visible: gated(feature.KeyEcommerce)},
		{entry: Entry{ID: EntryForms, Label: "Forms", Icon: "clipboard"}, visible: gated(feature.KeyForms)},
		{entry: Entry{ID: EntryEmail, Label: "Email", Icon: "mail"}, visible: gated(feature.KeyEmail)},
		{entry: Entry{ID: EntryBlog, Label: "Blog", Icon: "pencil"}, visible: gated(feature.KeyBlog)},
		{entry: Entry{ID: EntryAnalytics, Label: "Analytics", Icon: "chart"}, visible: gated(feature.KeyAnalytics)},
		{entry: Entry{ID: EntrySync, Label: "Sync", Icon: "calendar"}, visible: gated(feature.KeyBooking)},
	}
}

// orgServicesSegment lists the services delivered to the tenant organization.
// Dashboard appears here only when the project segment did not already show
// one; Proposals and Billing require org-level access.
func orgServicesSegment(c Context, b Badges) []item {
	if !c.IsInTenantContext {
		return nil
	}
	return []item{
		{entry: Entry{ID: "org_divider", Label: c.OrgName() + " Services", Divider: true}},
		{entry: Entry{ID: EntryDashboard, Label: "Dashboard", Icon: "home", Route: "/dashboard"},
			visible: func() bool { return !c.IsInProject }},
		{entry: Entry{ID: EntryTeam, Label: "Team", Icon: "users", Route: "/team"}},
		{entry: Entry{ID: EntryMessages, Label: "Messages", Icon: "chat", Route: "/messages", Badge: formatBadge(b.UnreadMessages)}},
		{entry: Entry{ID: EntryProposals, Label: "Proposals", Icon: "document", Route: "/proposals"},
			visible: func() bool { return c.HasOrgLevelAccess }},
		{entry: Entry{ID: EntryBilling, Label: "Billing", Icon: "credit-card", Route: "/billing"},
			visible: func() bool { return c.HasOrgLevelAccess }},
		{entry: Entry{ID: EntryFiles, Label: "Files", Icon: "folder"}},
	}
}

// adminCoreSegment is the agency admin portal: only for admin viewers with no
// tenant in view.
func adminCoreSegment(c Context, b Badges) []item {
	if !c.IsAdminViewer() || c.IsInTenantContext {
		return nil
	}
	return []item{
		{entry: Entry{ID: EntryDashboard, Label: "Dashboard", Icon: "home", Route: "/dashboard"}},
		{entry: Entry{ID: EntryAudits, Label: "Audits", Icon: "shield", Route: "/audits", Badge: formatBadge(b.UnreadAudits)}},
		{entry: Entry{ID: EntryProposals, Label: "Proposals", Icon: "document", Route: "/proposals"}},
		{entry: Entry{ID: EntryProjects, Label: "Projects", Icon: "briefcase", Route: "/projects"}},
		{entry: Entry{ID: EntryFiles, Label: "Files", Icon: "folder"}},
		{entry: Entry{ID: EntryMessages, Label: "Messages", Icon: "chat", Route: "/messages", Badge: formatBadge(b.UnreadMessages)}},
		{entry: Entry{ID: EntryBilling, Label: "Billing", Icon: "credit-card", Route: "/billing", Badge: formatBadge(b.UnpaidInvoices)}},
	}
}

// adminToolsSegment lists the agency's internal tool modules, gated by
// HasFeature so the allow-list defaults apply. Modules without a dedicated
// page carry no route and switch in-page sections instead.
func adminToolsSegment(c Context, b Badges) []item {
	if !c.IsAdminViewer() || c.IsInTenantContext {
		return nil
	}
	gated := func(key string) func() bool {
		return func() bool { return c.HasFeature(key) }
	}
	return []item{
		{entry: Entry{ID: "admin_tools_divider", Label: "Admin Tools", Divider: true}},
		{entry: Entry{ID: EntryClients, Label: "Clients", Icon: "users", Route: "/clients", Badge: formatBadge(b.NewLeads)}},
		{entry: Entry{ID: EntrySEO, Label: "SEO", Icon: "search"}, visible: gated(feature.KeySEO)},
		{entry: Entry{ID: EntryEcommerce, Label: "Ecommerce", Icon: "cart"}, visible: gated(feature.KeyEcommerce)},
		{entry: Entry{ID: EntryTeam, Label: "Team", Icon: "users", Route: "/team"}, visible: gated(feature.KeyTeam)},
		{entry: Entry{ID: EntryTeamMetrics, Label: "Team Metrics", Icon: "chart"}, visible: gated(feature.KeyTeamMetrics)},
		{entry: Entry{ID: EntryForms, Label: "Forms", Icon: "clipboard"}, visible: gated(feature.KeyForms)},
		{entry: Entry{ID: EntryBlog, Label: "Blog", Icon: "pencil", Route: "/blog"}, visible: gated(feature.KeyBlog)},
		{entry: Entry{ID: EntryPortfolio, Label: "Portfolio", Icon: "image"}, visible: gated(feature.KeyPortfolio)},
		{entry: Entry{ID: EntryEmail, Label: "Email", Icon: "mail"}, visible: gated(feature.KeyEmail)},
		{entry: Entry{ID: EntryAnalytics, Label: "Analytics", Icon: "chart"}, visible: gated(feature.KeyAnalytics)},
	}
}

// managerSegment is the reduced view for managers who are neither admins nor
// inside a tenant context.
func managerSegment(c Context) []item {
	if !c.IsManager() || c.IsAdminViewer() || c.IsInTenantContext {
		return nil
	}
	gated := func(key string) func() bool {
		return func() bool { return c.HasFeature(key) }
	}
	return []item{
		{entry: Entry{ID: EntryDashboard, Label: "Dashboard", Icon: "home", Route: "/dashboard"}},
		{entry: Entry{ID: EntryClients, Label: "Clients", Icon: "users", Route: "/clients"}},
		{entry: Entry{ID: EntryTeam, Label: "Team", Icon: "users", Route: "/team"}, visible: gated(feature.KeyTeam)},
		{entry: Entry{ID: EntryTeamMetrics, Label: "Team Metrics", Icon: "chart"}, visible: gated(feature.KeyTeamMetrics)},
	}
}

// formatBadge renders a count overlay. Pending (nil) and zero counts produce
// no badge.
func formatBadge(count *int) string {
	if count == nil || *count <= 0 {
		return ""
	}
	return strconv.Itoa(*count)
}
