package projections

import (
	"context"
	"errors"
	"testing"

	"portal/internal/domain/account"
	"portal/internal/domain/feature"
	"portal/internal/domain/navigation"
	"portal/internal/domain/organization"
	"portal/internal/domain/project"
)

type mockNavAccountStore struct {
	accounts map[string]account.Account
}

func (m *mockNavAccountStore) GetByID(_ context.Context, id string) (account.Account, error) {
	a, ok := m.accounts[id]
	if !ok {
		return account.Account{}, errors.New("not found")
	}
	return a, nil
}

type mockNavOrgStore struct {
	orgs map[string]organization.Organization
}

func (m *mockNavOrgStore) GetByID(_ context.Context, id string) (organization.Organization, error) {
	o, ok := m.orgs[id]
	if !ok {
		return organization.Organization{}, errors.New("not found")
	}
	return o, nil
}

type mockNavProjectStore struct {
	projects map[string]project.Project
}

func (m *mockNavProjectStore) GetByID(_ context.Context, id string) (project.Project, error) {
	p, ok := m.projects[id]
	if !ok {
		return project.Project{}, errors.New("not found")
	}
	return p, nil
}

type mockNavFlagStore struct {
	flags map[string]feature.Flags // keyed by tenantType/tenantID
}

func (m *mockNavFlagStore) GetForTenant(_ context.Context, tenantType, tenantID string) (feature.Flags, error) {
	return m.flags[tenantType+"/"+tenantID], nil
}

func newNavDeps() GetNavigationDeps {
	return GetNavigationDeps{
		AccountStore: &mockNavAccountStore{accounts: map[string]account.Account{
			"admin-1": {ID: "admin-1", Role: account.RoleAdmin, AccessLevel: account.AccessOrganization},
			"rep-1":   {ID: "rep-1", Role: account.RoleMember, TeamRole: account.TeamRoleSalesRep, AccessLevel: account.AccessProject},
			"member-1": {ID: "member-1", Role: account.RoleMember, AccessLevel: account.AccessOrganization, OrgID: "org-client"},
		}},
		OrgStore: &mockNavOrgStore{orgs: map[string]organization.Organization{
			"org-client": {ID: "org-client", Name: "Client Co", Slug: "client-co", OrgType: organization.TypeClient},
		}},
		ProjectStore: &mockNavProjectStore{projects: map[string]project.Project{
			"proj-1": {ID: "proj-1", OrgID: "org-client", Title: "Redesign", Status: project.StatusActive},
		}},
		FlagStore: &mockNavFlagStore{flags: map[string]feature.Flags{
			"organization/org-client": {feature.KeyBlog: true},
			"project/proj-1":          {feature.KeySEO: true, feature.KeyBooking: true},
			"organization/org-agency": {feature.KeySEO: false},
		}},
		AgencyOrgID: "org-agency",
	}
}

func TestQueryGetNavigation_AdminPortal(t *testing.T) {
	deps := newNavDeps()
	res, err := QueryGetNavigation(context.Background(), GetNavigationQuery{AccountID: "admin-1"}, deps)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Mode != navigation.ModeAdminPortal {
		t.Errorf("expected admin portal mode, got %s", res.Mode)
	}
	// The agency's seo:false override must flow into HomeFlags
	if res.Context.HasFeature(feature.KeySEO) {
		t.Error("expected seo disabled via agency flag override")
	}
	if !res.Context.HasFeature(feature.KeyBlog) {
		t.Error("expected blog enabled by the admin-tools default")
	}
}

func TestQueryGetNavigation_ProjectContextAttachesFlags(t *testing.T) {
	deps := newNavDeps()
	res, err := QueryGetNavigation(context.Background(), GetNavigationQuery{
		AccountID:        "admin-1",
		CurrentOrgID:     "org-client",
		CurrentProjectID: "proj-1",
	}, deps)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Mode != navigation.ModeProjectDashboard {
		t.Errorf("expected project dashboard mode, got %s", res.Mode)
	}
	// Project flags win over org flags in tenant context
	if !res.Context.HasFeature(feature.KeySEO) {
		t.Error("expected seo enabled from project flags")
	}
	if res.Context.HasFeature(feature.KeyBlog) {
		t.Error("expected blog disabled: project flags replace org flags in project context")
	}
	var hasSync bool
	for _, e := range res.Entries {
		if e.ID == navigation.EntrySync {
			hasSync = true
		}
	}
	if !hasSync {
		t.Error("expected Sync entry gated open by the project booking flag")
	}
}

func TestQueryGetNavigation_StaleOrgDegrades(t *testing.T) {
	deps := newNavDeps()
	res, err := QueryGetNavigation(context.Background(), GetNavigationQuery{
		AccountID:    "admin-1",
		CurrentOrgID: "org-deleted",
	}, deps)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Context.IsInOrg {
		t.Error("expected stale org reference to degrade to no org context")
	}
	if res.Mode != navigation.ModeAdminPortal {
		t.Errorf("expected fallback to admin portal mode, got %s", res.Mode)
	}
}

func TestQueryGetNavigation_SalesRepShortCircuit(t *testing.T) {
	deps := newNavDeps()
	res, err := QueryGetNavigation(context.Background(), GetNavigationQuery{AccountID: "rep-1"}, deps)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Mode != navigation.ModeSalesRepView {
		t.Errorf("expected sales rep view, got %s", res.Mode)
	}
	if len(res.Entries) != 2 {
		t.Fatalf("expected 2 entries in sales rep view, got %d", len(res.Entries))
	}
}

func TestQueryGetNavigation_UnknownAccount(t *testing.T) {
	deps := newNavDeps()
	if _, err := QueryGetNavigation(context.Background(), GetNavigationQuery{AccountID: "ghost"}, deps); err == nil {
		t.Error("expected error for unknown account")
	}
}
