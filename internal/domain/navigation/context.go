package navigation

import (
	"portal/internal/domain/account"
	"portal/internal/domain/feature"
	"portal/internal/domain/organization"
	"portal/internal/domain/project"
)

// Viewer is the slice of session state the context resolver needs.
type Viewer struct {
	Role         string
	TeamRole     string
	AccessLevel  string
	OrgID        string // home organization
	IsSuperAdmin bool
}

// ViewerFromAccount builds a Viewer from a portal account.
func ViewerFromAccount(a account.Account) Viewer {
	return Viewer{
		Role:         a.Role,
		TeamRole:     a.TeamRole,
		AccessLevel:  a.AccessLevel,
		OrgID:        a.OrgID,
		IsSuperAdmin: a.IsSuperAdmin,
	}
}

// Context is the single consistent view of "where am I" derived from raw
// session, organization and project state. It is a value object recomputed per
// request; every derived boolean is a pure function of the inputs and the
// resolver never fails — absent inputs degrade to "no context".
//
// Tie-break: when both Org and Project are set, the Project wins for tenant
// module decisions while the Organization remains the parent shown in
// breadcrumbs and the switcher.
type Context struct {
	Viewer  Viewer
	Org     *organization.Organization
	Project *project.Project

	// HomeFlags is the feature-flag bag of the viewer's own (agency)
	// organization, used when no tenant is in view.
	HomeFlags feature.Flags

	IsInProject       bool
	IsInOrg           bool
	IsInOrgContext    bool
	IsAgencyOrg       bool
	IsClientOrg       bool
	IsInTenantContext bool
	HasOrgLevelAccess bool
	IsViewingTenant   bool
}

// Resolve derives the context booleans from the raw inputs.
// PRE: none — all inputs may be nil/zero
// POST: Returns a fully derived Context; no side effects
func Resolve(v Viewer, org *organization.Organization, proj *project.Project, homeFlags feature.Flags) Context {
	c := Context{Viewer: v, Org: org, Project: proj, HomeFlags: homeFlags}
	c.IsInProject = proj != nil
	c.IsInOrg = org != nil
	c.IsInOrgContext = c.IsInProject || c.IsInOrg
	c.IsAgencyOrg = org != nil && org.OrgType == organization.TypeAgency
	c.IsClientOrg = c.IsInOrg && !c.IsAgencyOrg
	c.IsInTenantContext = c.IsInProject || c.IsClientOrg
	c.HasOrgLevelAccess = v.Role == account.RoleAdmin || v.IsSuperAdmin || v.AccessLevel == account.AccessOrganization
	c.IsViewingTenant = org != nil && v.OrgID != "" && org.ID != v.OrgID
	return c
}

// IsAdminViewer returns true for admins and super admins.
// INVARIANT: c is not mutated
func (c Context) IsAdminViewer() bool {
	return c.Viewer.Role == account.RoleAdmin || c.Viewer.IsSuperAdmin
}

// IsSalesRep returns true when the viewer gets the simplified sales-rep view.
// Super admins never do.
// INVARIANT: c is not mutated
func (c Context) IsSalesRep() bool {
	return c.Viewer.TeamRole == account.TeamRoleSalesRep && !c.Viewer.IsSuperAdmin
}

// IsManager returns true when the viewer has the manager team role.
// INVARIANT: c is not mutated
func (c Context) IsManager() bool {
	return c.Viewer.TeamRole == account.TeamRoleManager
}

// OrgName returns the display name of the parent organization, or a fallback
// when the project was entered without its organization loaded.
// INVARIANT: c is not mutated
func (c Context) OrgName() string {
	if c.Org != nil {
		return c.Org.Name
	}
	return "Organization"
}
