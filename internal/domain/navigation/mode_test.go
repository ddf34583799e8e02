package navigation

import (
	"testing"

	"portal/internal/domain/account"
	"portal/internal/domain/organization"
	"portal/internal/domain/project"
)

// TestResolveMode_ExactlyOne verifies exactly one mode is active for every
// combination of viewer, org and project.
func TestResolveMode_ExactlyOne(t *testing.T) {
	viewers := []Viewer{
		{Role: account.RoleAdmin},
		{Role: account.RoleAdmin, IsSuperAdmin: true},
		{Role: account.RoleMember, AccessLevel: account.AccessOrganization},
		{Role: account.RoleMember, TeamRole: account.TeamRoleSalesRep},
		{Role: account.RoleMember, TeamRole: account.TeamRoleManager},
	}
	orgs := []*organization.Organization{nil, clientOrg("o1"), agencyOrg("a1")}
	projects := []*project.Project{nil, testProject("o1")}

	valid := map[Mode]bool{
		ModeAdminPortal:           true,
		ModeOrganizationDashboard: true,
		ModeProjectDashboard:      true,
		ModeSalesRepView:          true,
	}

	for _, v := range viewers {
		for _, org := range orgs {
			for _, p := range projects {
				mode := ResolveMode(Resolve(v, org, p, nil))
				if !valid[mode] {
					t.Fatalf("unknown mode %q for viewer=%+v", mode, v)
				}
			}
		}
	}
}

// TestResolveMode_Selection verifies the precedence rules.
func TestResolveMode_Selection(t *testing.T) {
	admin := Viewer{Role: account.RoleAdmin}
	rep := Viewer{Role: account.RoleMember, TeamRole: account.TeamRoleSalesRep}

	tests := []struct {
		name string
		c    Context
		want Mode
	}{
		{"no context admin", Resolve(admin, nil, nil, nil), ModeAdminPortal},
		{"org selected", Resolve(admin, clientOrg("o1"), nil, nil), ModeOrganizationDashboard},
		{"project selected", Resolve(admin, clientOrg("o1"), testProject("o1"), nil), ModeProjectDashboard},
		{"sales rep overrides org", Resolve(rep, clientOrg("o1"), nil, nil), ModeSalesRepView},
		{"sales rep overrides project", Resolve(rep, clientOrg("o1"), testProject("o1"), nil), ModeSalesRepView},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ResolveMode(tt.c); got != tt.want {
				t.Fatalf("ResolveMode = %q, want %q", got, tt.want)
			}
		})
	}
}

// TestResolveMode_SuperAdminRepKeepsFullView verifies super admins never get
// the terminal sales-rep view.
func TestResolveMode_SuperAdminRepKeepsFullView(t *testing.T) {
	v := Viewer{Role: account.RoleMember, TeamRole: account.TeamRoleSalesRep, IsSuperAdmin: true}
	if got := ResolveMode(Resolve(v, nil, nil, nil)); got == ModeSalesRepView {
		t.Fatalf("super admin resolved to sales-rep view")
	}
}
