package navigation

import (
	"testing"

	"portal/internal/domain/account"
	"portal/internal/domain/organization"
	"portal/internal/domain/project"
)

func clientOrg(id string) *organization.Organization {
	return &organization.Organization{ID: id, Name: "Acme Co", Slug: "acme", OrgType: organization.TypeClient}
}

func agencyOrg(id string) *organization.Organization {
	return &organization.Organization{ID: id, Name: "Studio", Slug: "studio", OrgType: organization.TypeAgency}
}

func testProject(orgID string) *project.Project {
	return &project.Project{ID: "p1", OrgID: orgID, Title: "Acme Website", Status: project.StatusActive}
}

// TestResolve_DerivedBooleans verifies each derived flag over representative inputs.
func TestResolve_DerivedBooleans(t *testing.T) {
	admin := Viewer{Role: account.RoleAdmin, OrgID: "agency1"}
	member := Viewer{Role: account.RoleMember, AccessLevel: account.AccessProject, OrgID: "o1"}

	tests := []struct {
		name string
		ctx  Context
		want Context
	}{
		{
			name: "no context",
			ctx:  Resolve(admin, nil, nil, nil),
			want: Context{IsInProject: false, IsInOrg: false, IsInOrgContext: false, IsInTenantContext: false, HasOrgLevelAccess: true},
		},
		{
			name: "client org only",
			ctx:  Resolve(member, clientOrg("o1"), nil, nil),
			want: Context{IsInOrg: true, IsInOrgContext: true, IsClientOrg: true, IsInTenantContext: true},
		},
		{
			name: "project inside org",
			ctx:  Resolve(member, clientOrg("o1"), testProject("o1"), nil),
			want: Context{IsInProject: true, IsInOrg: true, IsInOrgContext: true, IsClientOrg: true, IsInTenantContext: true},
		},
		{
			name: "admin viewing foreign tenant",
			ctx:  Resolve(admin, clientOrg("o2"), nil, nil),
			want: Context{IsInOrg: true, IsInOrgContext: true, IsClientOrg: true, IsInTenantContext: true, HasOrgLevelAccess: true, IsViewingTenant: true},
		},
		{
			name: "admin in own agency org",
			ctx:  Resolve(admin, agencyOrg("agency1"), nil, nil),
			want: Context{IsInOrg: true, IsInOrgContext: true, IsAgencyOrg: true, HasOrgLevelAccess: true},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := tt.ctx
			if c.IsInProject != tt.want.IsInProject {
				t.Errorf("IsInProject = %v, want %v", c.IsInProject, tt.want.IsInProject)
			}
			if c.IsInOrg != tt.want.IsInOrg {
				t.Errorf("IsInOrg = %v, want %v", c.IsInOrg, tt.want.IsInOrg)
			}
			if c.IsInOrgContext != tt.want.IsInOrgContext {
				t.Errorf("IsInOrgContext = %v, want %v", c.IsInOrgContext, tt.want.IsInOrgContext)
			}
			if c.IsAgencyOrg != tt.want.IsAgencyOrg {
				t.Errorf("IsAgencyOrg = %v, want %v", c.IsAgencyOrg, tt.want.IsAgencyOrg)
			}
			if c.IsClientOrg != tt.want.IsClientOrg {
				t.Errorf("IsClientOrg = %v, want %v", c.IsClientOrg, tt.want.IsClientOrg)
			}
			if c.IsInTenantContext != tt.want.IsInTenantContext {
				t.Errorf("IsInTenantContext = %v, want %v", c.IsInTenantContext, tt.want.IsInTenantContext)
			}
			if c.HasOrgLevelAccess != tt.want.HasOrgLevelAccess {
				t.Errorf("HasOrgLevelAccess = %v, want %v", c.HasOrgLevelAccess, tt.want.HasOrgLevelAccess)
			}
			if c.IsViewingTenant != tt.want.IsViewingTenant {
				t.Errorf("IsViewingTenant = %v, want %v", c.IsViewingTenant, tt.want.IsViewingTenant)
			}
		})
	}
}

// TestResolve_ProjectImpliesOrgContext verifies the invariant over all combinations.
func TestResolve_ProjectImpliesOrgContext(t *testing.T) {
	viewers := []Viewer{
		{Role: account.RoleAdmin},
		{Role: account.RoleMember, AccessLevel: account.AccessOrganization},
		{Role: account.RoleMember, TeamRole: account.TeamRoleSalesRep},
	}
	orgs := []*organization.Organization{nil, clientOrg("o1"), agencyOrg("a1")}
	projects := []*project.Project{nil, testProject("o1")}

	for _, v := range viewers {
		for _, org := range orgs {
			for _, p := range projects {
				c := Resolve(v, org, p, nil)
				if c.IsInProject && !c.IsInOrgContext {
					t.Fatalf("IsInProject without IsInOrgContext for viewer=%+v org=%v proj=%v", v, org, p)
				}
			}
		}
	}
}

// TestResolve_OrgLevelAccess verifies the access-level derivation.
func TestResolve_OrgLevelAccess(t *testing.T) {
	tests := []struct {
		name string
		v    Viewer
		want bool
	}{
		{"admin", Viewer{Role: account.RoleAdmin}, true},
		{"super admin member", Viewer{Role: account.RoleMember, IsSuperAdmin: true}, true},
		{"org-level member", Viewer{Role: account.RoleMember, AccessLevel: account.AccessOrganization}, true},
		{"project-level member", Viewer{Role: account.RoleMember, AccessLevel: account.AccessProject}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Resolve(tt.v, nil, nil, nil).HasOrgLevelAccess; got != tt.want {
				t.Fatalf("HasOrgLevelAccess = %v, want %v", got, tt.want)
			}
		})
	}
}
