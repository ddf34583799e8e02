package navigation

// Mode is the active rendering mode. Modes are mutually exclusive: exactly one
// is active for any context, and the mode is derived — never stored.
type Mode string

const (
	ModeAdminPortal           Mode = "admin_portal"
	ModeOrganizationDashboard Mode = "organization_dashboard"
	ModeProjectDashboard      Mode = "project_dashboard"
	ModeSalesRepView          Mode = "sales_rep_view"
)

// ResolveMode selects the rendering mode for a context. The sales-rep view
// overrides everything else and is terminal for the session; otherwise project
// context wins over organization context, and no context at all falls through
// to the admin portal (which renders empty for non-admin viewers).
// PRE: c was produced by Resolve
// POST: Returns exactly one mode; no transient "unknown" state exists
func ResolveMode(c Context) Mode {
	switch {
	case c.IsSalesRep():
		return ModeSalesRepView
	case c.IsInProject:
		return ModeProjectDashboard
	case c.IsInOrg:
		return ModeOrganizationDashboard
	default:
		return ModeAdminPortal
	}
}
