package orchestrators

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"portal/internal/domain/account"
	"portal/internal/domain/booking"
	"portal/internal/domain/feature"
	"portal/internal/domain/invoice"
	"portal/internal/domain/lead"
	"portal/internal/domain/message"
	"portal/internal/domain/organization"
	"portal/internal/domain/project"
	"portal/internal/domain/proposal"

	orgFilter "portal/internal/adapters/storage/organization"

	"github.com/google/uuid"
)

// SyntheticSeedDeps holds all stores needed for synthetic data seeding.
type SyntheticSeedDeps struct {
	OrgStore     synOrgStore
	ProjectStore synProjectStore
	AccountStore synAccountStore
	FlagStore    synFlagStore
	MessageStore synMessageStore
	InvoiceStore synInvoiceStore
	LeadStore    synLeadStore
	ProposalStore synProposalStore
	BookingStore synBookingStore
}

type synOrgStore interface {
	Save(ctx context.Context, o organization.Organization) error
	List(ctx context.Context, filter orgFilter.ListFilter) ([]organization.Organization, error)
}
type synProjectStore interface {
	Save(ctx context.Context, p project.Project) error
}
type synAccountStore interface {
	Save(ctx context.Context, a account.Account) error
	GetByEmail(ctx context.Context, email string) (account.Account, error)
}
type synFlagStore interface {
	Set(ctx context.Context, tenantType, tenantID, key string, enabled bool) error
}
type synMessageStore interface {
	Save(ctx context.Context, m message.Message) error
}
type synInvoiceStore interface {
	Save(ctx context.Context, i invoice.Invoice) error
}
type synLeadStore interface {
	Save(ctx context.Context, l lead.Lead) error
}
type synProposalStore interface {
	Save(ctx context.Context, p proposal.Proposal) error
}
type synBookingStore interface {
	Save(ctx context.Context, e booking.EventType) error
}

// ExecuteSeedSynthetic populates the database with realistic agency data for
// development. It is idempotent — skips when client organizations already exist.
func ExecuteSeedSynthetic(ctx context.Context, deps SyntheticSeedDeps, adminAccountID string) error {
	existing, err := deps.OrgStore.List(ctx, orgFilter.ListFilter{OrgType: organization.TypeClient})
	if err != nil {
		return fmt.Errorf("seed_synthetic: list organizations: %w", err)
	}
	if len(existing) > 0 {
		slog.Info("seed_event", "event", "synthetic_skip", "reason", "already_seeded")
		return nil
	}
	now := time.Now()

	// --- Client organizations ---
	type orgSeed struct {
		Name       string
		Slug       string
		Domain     string
		ThemeColor string
		Features   []string
	}
	clients := []orgSeed{
		{"Harbourview Dental", "harbourview-dental", "harbourviewdental.example", "#0e7490", []string{feature.KeySEO, feature.KeyBlog, feature.KeyForms}},
		{"Peak Outfitters", "peak-outfitters", "peakoutfitters.example", "#b45309", []string{feature.KeyEcommerce, feature.KeyEmail, feature.KeyAnalytics}},
	}

	orgIDs := make([]string, len(clients))
	for i, cs := range clients {
		org := organization.Organization{
			ID:         uuid.New().String(),
			Name:       cs.Name,
			Slug:       cs.Slug,
			Domain:     cs.Domain,
			OrgType:    organization.TypeClient,
			ThemeColor: cs.ThemeColor,
			Status:     organization.StatusActive,
			CreatedAt:  now,
		}
		if err := deps.OrgStore.Save(ctx, org); err != nil {
			return fmt.Errorf("seed org %s: %w", cs.Slug, err)
		}
		orgIDs[i] = org.ID
		for _, key := range cs.Features {
			if err := deps.FlagStore.Set(ctx, "organization", org.ID, key, true); err != nil {
				return fmt.Errorf("seed flags for %s: %w", cs.Slug, err)
			}
		}
	}

	// --- Projects for the first client ---
	proj := project.Project{
		ID:        uuid.New().String(),
		OrgID:     orgIDs[0],
		Title:     "Website Redesign",
		Domain:    "new.harbourviewdental.example",
		Status:    project.StatusActive,
		CreatedAt: now,
	}
	if err := deps.ProjectStore.Save(ctx, proj); err != nil {
		return fmt.Errorf("seed project: %w", err)
	}
	// The redesign project gets its own narrower flag set
	if err := deps.FlagStore.Set(ctx, "project", proj.ID, feature.KeySEO, true); err != nil {
		return fmt.Errorf("seed project flags: %w", err)
	}
	if err := deps.FlagStore.Set(ctx, "project", proj.ID, feature.KeyBooking, true); err != nil {
		return fmt.Errorf("seed project flags: %w", err)
	}

	// --- Team accounts ---
	type acctSeed struct {
		Email       string
		Role        string
		TeamRole    string
		AccessLevel string
		OrgID       string
	}
	team := []acctSeed{
		{"manager@agency.example", account.RoleAdmin, account.TeamRoleManager, account.AccessOrganization, ""},
		{"rep@agency.example", account.RoleMember, account.TeamRoleSalesRep, account.AccessProject, ""},
		{"owner@harbourviewdental.example", account.RoleMember, "", account.AccessOrganization, orgIDs[0]},
		{"staff@peakoutfitters.example", account.RoleMember, "", account.AccessProject, orgIDs[1]},
	}
	acctIDs := map[string]string{}
	for _, as := range team {
		if existing, err := deps.AccountStore.GetByEmail(ctx, as.Email); err == nil {
			acctIDs[as.Email] = existing.ID
			continue
		}
		acct := account.Account{
			ID:          uuid.New().String(),
			Email:       as.Email,
			Role:        as.Role,
			TeamRole:    as.TeamRole,
			AccessLevel: as.AccessLevel,
			OrgID:       as.OrgID,
			Status:      account.StatusActive,
			CreatedAt:   now,
		}
		if err := acct.SetPassword("portal12345!seed"); err != nil {
			return fmt.Errorf("seed password for %s: %w", as.Email, err)
		}
		if err := deps.AccountStore.Save(ctx, acct); err != nil {
			return fmt.Errorf("seed account %s: %w", as.Email, err)
		}
		acctIDs[as.Email] = acct.ID
	}

	// --- A message, proposal and invoices so badges have something to count ---
	msg := message.Message{
		ID:         uuid.New().String(),
		OrgID:      orgIDs[0],
		SenderID:   acctIDs["owner@harbourviewdental.example"],
		ReceiverID: adminAccountID,
		Subject:    "Homepage copy",
		Content:    "Can we review the new homepage copy this week?",
		CreatedAt:  now,
	}
	if err := deps.MessageStore.Save(ctx, msg); err != nil {
		return fmt.Errorf("seed message: %w", err)
	}

	prop := proposal.Proposal{
		ID:          uuid.New().String(),
		OrgID:       orgIDs[1],
		Title:       "Q4 Email Campaign",
		Content:     "## Scope\n\nThree campaigns targeting the holiday season.",
		AmountCents: 450000,
		Status:      proposal.StatusDraft,
		CreatedBy:   adminAccountID,
		CreatedAt:   now,
	}
	if err := deps.ProposalStore.Save(ctx, prop); err != nil {
		return fmt.Errorf("seed proposal: %w", err)
	}

	inv := invoice.Invoice{
		ID:          uuid.New().String(),
		OrgID:       orgIDs[0],
		ProjectID:   proj.ID,
		Number:      "INV-1001",
		AmountCents: 220000,
		Currency:    "USD",
		Status:      invoice.StatusSent,
		DueDate:     now.AddDate(0, 0, 14),
		IssuedAt:    now,
		CreatedAt:   now,
	}
	if err := deps.InvoiceStore.Save(ctx, inv); err != nil {
		return fmt.Errorf("seed invoice: %w", err)
	}

	// --- Leads for the sales pipeline ---
	leads := []lead.Lead{
		{ID: uuid.New().String(), Name: "Rosa Alvarez", Email: "rosa@cafeluna.example", Company: "Cafe Luna", Source: "form", Status: lead.StatusNew, CreatedAt: now},
		{ID: uuid.New().String(), Name: "Tom Whitfield", Email: "tom@whitfieldlegal.example", Company: "Whitfield Legal", Source: "referral", Status: lead.StatusContacted, AssignedTo: acctIDs["rep@agency.example"], CreatedAt: now},
	}
	for _, l := range leads {
		if err := deps.LeadStore.Save(ctx, l); err != nil {
			return fmt.Errorf("seed lead %s: %w", l.Name, err)
		}
	}

	// --- A Sync event type on the redesign project ---
	et := booking.EventType{
		ID:              uuid.New().String(),
		TenantType:      booking.TenantProject,
		TenantID:        proj.ID,
		Name:            "Design Review",
		Slug:            "design-review",
		DurationMinutes: 30,
		BufferMinutes:   10,
		Routing:         booking.RoutingRoundRobin,
		Hosts: []booking.Host{
			{AccountID: adminAccountID},
			{AccountID: acctIDs["manager@agency.example"]},
		},
		CreatedAt: now,
	}
	if err := deps.BookingStore.Save(ctx, et); err != nil {
		return fmt.Errorf("seed event type: %w", err)
	}

	slog.Info("seed_event", "event", "synthetic_seeded", "orgs", len(clients), "leads", len(leads))
	return nil
}
