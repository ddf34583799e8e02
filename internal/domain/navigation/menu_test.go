package navigation

import (
	"reflect"
	"testing"

	"portal/internal/domain/account"
	"portal/internal/domain/feature"
)

func intPtr(n int) *int { return &n }

func entryIDs(entries []Entry) []string {
	ids := make([]string, 0, len(entries))
	for _, e := range entries {
		ids = append(ids, e.ID)
	}
	return ids
}

func findEntry(entries []Entry, id string) (Entry, bool) {
	for _, e := range entries {
		if e.ID == id && !e.Divider {
			return e, true
		}
	}
	return Entry{}, false
}

// TestBuild_SalesRepShortCircuit verifies the simplified list regardless of
// any other input.
func TestBuild_SalesRepShortCircuit(t *testing.T) {
	rep := Viewer{Role: account.RoleMember, TeamRole: account.TeamRoleSalesRep}
	org := clientOrg("o1")
	org.Features = feature.Flags{feature.KeySEO: true, feature.KeyBlog: true}
	proj := testProject("o1")

	for _, c := range []Context{
		Resolve(rep, nil, nil, nil),
		Resolve(rep, org, nil, nil),
		Resolve(rep, org, proj, feature.Flags{feature.KeyTeam: true}),
	} {
		got := entryIDs(Build(c, Badges{UnreadMessages: intPtr(7)}))
		want := []string{EntryDashboard, EntryMyClients}
		if !reflect.DeepEqual(got, want) {
			t.Fatalf("sales rep nav = %v, want %v", got, want)
		}
	}
}

// TestBuild_AdminPortalScenario covers: admin, no tenant in view, seo
// explicitly false. Core + tools segments present, seo absent, ecommerce
// present via the allow-list default.
func TestBuild_AdminPortalScenario(t *testing.T) {
	admin := Viewer{Role: account.RoleAdmin, OrgID: "agency1"}
	c := Resolve(admin, nil, nil, feature.Flags{feature.KeySEO: false})

	entries := Build(c, Badges{})
	ids := entryIDs(entries)

	for _, want := range []string{EntryDashboard, EntryAudits, EntryProposals, EntryProjects, EntryFiles, EntryMessages, EntryBilling, "admin_tools_divider", EntryClients, EntryEcommerce} {
		if _, ok := findEntry(entries, want); !ok && want != "admin_tools_divider" {
			t.Errorf("expected %s in admin nav, got %v", want, ids)
		}
	}
	if _, ok := findEntry(entries, EntrySEO); ok {
		t.Errorf("seo explicitly disabled; should be absent, got %v", ids)
	}
	hasDivider := false
	for _, e := range entries {
		if e.Divider && e.Label == "Admin Tools" {
			hasDivider = true
		}
	}
	if !hasDivider {
		t.Errorf("expected Admin Tools divider")
	}
}

// TestBuild_ClientOrgScenario covers: member in a client org with features
// [seo] and no project. Only the organization-services segment shows; the
// seo-gated project entries are absent; Proposals/Billing depend on access
// level.
func TestBuild_ClientOrgScenario(t *testing.T) {
	org := clientOrg("o1")
	org.Features = feature.Flags{feature.KeySEO: true}

	orgLevel := Viewer{Role: account.RoleMember, AccessLevel: account.AccessOrganization, OrgID: "o1"}
	projLevel := Viewer{Role: account.RoleMember, AccessLevel: account.AccessProject, OrgID: "o1"}

	entries := Build(Resolve(orgLevel, org, nil, nil), Badges{})
	ids := entryIDs(entries)

	if _, ok := findEntry(entries, EntrySEO); ok {
		t.Errorf("no project in view; seo project entry should be absent, got %v", ids)
	}
	for _, want := range []string{EntryDashboard, EntryTeam, EntryMessages, EntryFiles, EntryProposals, EntryBilling} {
		if _, ok := findEntry(entries, want); !ok {
			t.Errorf("expected %s for org-level member, got %v", want, ids)
		}
	}
	if _, ok := findEntry(entries, EntryAudits); ok {
		t.Errorf("admin core segment must not render in tenant context, got %v", ids)
	}

	limited := Build(Resolve(projLevel, org, nil, nil), Badges{})
	if _, ok := findEntry(limited, EntryProposals); ok {
		t.Errorf("proposals require org-level access")
	}
	if _, ok := findEntry(limited, EntryBilling); ok {
		t.Errorf("billing requires org-level access")
	}
}

// TestBuild_ProjectSegment verifies project modules, the always-on CRM entry,
// the Sync gating and the dashboard dedup between segments 2 and 3.
func TestBuild_ProjectSegment(t *testing.T) {
	org := clientOrg("o1")
	proj := testProject("o1")
	proj.Features = feature.Flags{feature.KeyBlog: true, feature.KeyBooking: true}
	member := Viewer{Role: account.RoleMember, AccessLevel: account.AccessOrganization, OrgID: "o1"}

	entries := Build(Resolve(member, org, proj, nil), Badges{})
	ids := entryIDs(entries)

	if entries[0].Label != proj.Title || !entries[0].Divider {
		t.Fatalf("expected leading divider with project title, got %+v", entries[0])
	}
	for _, want := range []string{EntryClients, EntryBlog, EntrySync} {
		if _, ok := findEntry(entries, want); !ok {
			t.Errorf("expected %s in project nav, got %v", want, ids)
		}
	}
	for _, absent := range []string{EntrySEO, EntryEcommerce, EntryForms, EntryAnalytics} {
		if _, ok := findEntry(entries, absent); ok {
			t.Errorf("unset %s should be absent in project nav, got %v", absent, ids)
		}
	}

	dashboards := 0
	for _, e := range entries {
		if e.ID == EntryDashboard && !e.Divider {
			dashboards++
		}
	}
	if dashboards != 1 {
		t.Errorf("expected exactly one Dashboard entry across segments, got %d (%v)", dashboards, ids)
	}

	services := false
	for _, e := range entries {
		if e.Divider && e.Label == org.Name+" Services" {
			services = true
		}
	}
	if !services {
		t.Errorf("expected org services divider, got %v", ids)
	}
}

// TestBuild_ManagerSegment verifies the manager view and its feature gates.
func TestBuild_ManagerSegment(t *testing.T) {
	mgr := Viewer{Role: account.RoleMember, TeamRole: account.TeamRoleManager, OrgID: "agency1"}

	entries := Build(Resolve(mgr, nil, nil, feature.Flags{feature.KeyTeam: true}), Badges{})
	got := entryIDs(entries)
	want := []string{EntryDashboard, EntryClients, EntryTeam}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("manager nav = %v, want %v", got, want)
	}
}

// TestBuild_Badges verifies badge overlays: live counts render, pending (nil)
// and zero counts are omitted, and badges never change visibility.
func TestBuild_Badges(t *testing.T) {
	admin := Viewer{Role: account.RoleAdmin, OrgID: "agency1"}
	c := Resolve(admin, nil, nil, feature.Flags{})

	entries := Build(c, Badges{UnreadMessages: intPtr(3), UnpaidInvoices: intPtr(0), NewLeads: intPtr(12)})

	msgs, ok := findEntry(entries, EntryMessages)
	if !ok || msgs.Badge != "3" {
		t.Fatalf("expected messages badge 3, got %+v", msgs)
	}
	billing, _ := findEntry(entries, EntryBilling)
	if billing.Badge != "" {
		t.Fatalf("zero count must omit badge, got %q", billing.Badge)
	}
	audits, ok := findEntry(entries, EntryAudits)
	if !ok {
		t.Fatalf("pending badge must not hide the entry")
	}
	if audits.Badge != "" {
		t.Fatalf("pending count must omit badge, got %q", audits.Badge)
	}
	clients, _ := findEntry(entries, EntryClients)
	if clients.Badge != "12" {
		t.Fatalf("expected leads badge 12, got %q", clients.Badge)
	}
}

// TestBuild_SwitchRoundTrip verifies entering a project and exiting restores
// the identical pre-switch list.
func TestBuild_SwitchRoundTrip(t *testing.T) {
	org := clientOrg("o1")
	org.Features = feature.Flags{feature.KeySEO: true}
	proj := testProject("o1")
	member := Viewer{Role: account.RoleMember, AccessLevel: account.AccessOrganization, OrgID: "o1"}
	badges := Badges{UnreadMessages: intPtr(2)}

	before := Build(Resolve(member, org, nil, nil), badges)
	inProject := Build(Resolve(member, org, proj, nil), badges)
	after := Build(Resolve(member, org, nil, nil), badges)

	if reflect.DeepEqual(before, inProject) {
		t.Fatalf("project context should change the nav list")
	}
	if !reflect.DeepEqual(before, after) {
		t.Fatalf("exit project must restore the pre-switch list\nbefore: %v\nafter:  %v", before, after)
	}
}
