package projections

import (
	"context"

	"portal/internal/domain/audit"
	"portal/internal/domain/booking"
	"portal/internal/domain/invoice"
	"portal/internal/domain/lead"
	"portal/internal/domain/message"
	"portal/internal/domain/navigation"
	"portal/internal/domain/organization"
	"portal/internal/domain/project"
	"portal/internal/domain/proposal"

	auditFilter "portal/internal/adapters/storage/audit"
	leadFilter "portal/internal/adapters/storage/lead"
	orgFilter "portal/internal/adapters/storage/organization"
)

// DashboardOrgStore defines the organization store interface needed by the dashboard projection.
type DashboardOrgStore interface {
	List(ctx context.Context, filter orgFilter.ListFilter) ([]organization.Organization, error)
}

// DashboardProjectStore defines the project store interface needed by the dashboard projection.
type DashboardProjectStore interface {
	ListByOrgID(ctx context.Context, orgID string) ([]project.Project, error)
}

// DashboardProposalStore defines the proposal store interface needed by the dashboard projection.
type DashboardProposalStore interface {
	ListByOrgID(ctx context.Context, orgID string) ([]proposal.Proposal, error)
	List(ctx context.Context) ([]proposal.Proposal, error)
}

// DashboardInvoiceStore defines the invoice store interface needed by the dashboard projection.
type DashboardInvoiceStore interface {
	ListByOrgID(ctx context.Context, orgID string) ([]invoice.Invoice, error)
}

// DashboardMessageStore defines the message store interface needed by the dashboard projection.
type DashboardMessageStore interface {
	ListByReceiverID(ctx context.Context, receiverID string) ([]message.Message, error)
}

// DashboardAuditStore defines the audit store interface needed by the dashboard projection.
type DashboardAuditStore interface {
	List(ctx context.Context, filter auditFilter.ListFilter) ([]audit.Entry, error)
}

// DashboardLeadStore defines the lead store interface needed by the dashboard projection.
type DashboardLeadStore interface {
	List(ctx context.Context, filter leadFilter.ListFilter) ([]lead.Lead, error)
}

// DashboardBookingStore defines the Sync store interface needed by the dashboard projection.
type DashboardBookingStore interface {
	ListByTenant(ctx context.Context, tenantType, tenantID string) ([]booking.EventType, error)
}

// GetDashboardDeps holds dependencies for the dashboard projection.
type GetDashboardDeps struct {
	OrgStore      DashboardOrgStore
	ProjectStore  DashboardProjectStore
	ProposalStore DashboardProposalStore
	InvoiceStore  DashboardInvoiceStore
	MessageStore  DashboardMessageStore
	AuditStore    DashboardAuditStore
	LeadStore     DashboardLeadStore
	BookingStore  DashboardBookingStore
}

// DashboardResult carries the output of the dashboard projection. Only the
// fields for the active rendering mode are populated.
type DashboardResult struct {
	Mode navigation.Mode

	// Admin portal
	ClientOrgs    []organization.Organization
	RecentAudits  []audit.Entry
	OpenProposals int

	// Organization dashboard
	Projects []project.Project
	Invoices []invoice.Invoice
	Messages []message.Message

	// Project dashboard
	EventTypes []booking.EventType

	// Sales rep view
	MyLeads []lead.Lead
}

// QueryGetDashboard aggregates dashboard data for the active rendering mode.
// Sections fail independently: an errored store leaves its section empty
// rather than failing the page.
// PRE: navResult was produced by QueryGetNavigation
// POST: Returns the sections for navResult.Mode
func QueryGetDashboard(ctx context.Context, accountID string, navResult NavigationResult, deps GetDashboardDeps) DashboardResult {
	result := DashboardResult{Mode: navResult.Mode}

	switch navResult.Mode {
	case navigation.ModeSalesRepView:
		leads, err := deps.LeadStore.List(ctx, leadFilter.ListFilter{AssignedTo: accountID})
		if err == nil {
			result.MyLeads = leads
		}

	case navigation.ModeProjectDashboard:
		proj := navResult.Context.Project
		events, err := deps.BookingStore.ListByTenant(ctx, booking.TenantProject, proj.ID)
		if err == nil {
			result.EventTypes = events
		}
		if navResult.Context.Org != nil {
			invoices, err := deps.InvoiceStore.ListByOrgID(ctx, navResult.Context.Org.ID)
			if err == nil {
				result.Invoices = invoices
			}
		}

	case navigation.ModeOrganizationDashboard:
		orgID := navResult.Context.Org.ID
		projects, err := deps.ProjectStore.ListByOrgID(ctx, orgID)
		if err == nil {
			result.Projects = projects
		}
		invoices, err := deps.InvoiceStore.ListByOrgID(ctx, orgID)
		if err == nil {
			result.Invoices = invoices
		}
		messages, err := deps.MessageStore.ListByReceiverID(ctx, accountID)
		if err == nil {
			result.Messages = messages
		}

	case navigation.ModeAdminPortal:
		orgs, err := deps.OrgStore.List(ctx, orgFilter.ListFilter{OrgType: organization.TypeClient})
		if err == nil {
			result.ClientOrgs = orgs
		}
		audits, err := deps.AuditStore.List(ctx, auditFilter.ListFilter{Limit: 10})
		if err == nil {
			result.RecentAudits = audits
		}
		proposals, err := deps.ProposalStore.List(ctx)
		if err == nil {
			open := 0
			for _, p := range proposals {
				if p.Status == proposal.StatusDraft || p.Status == proposal.StatusSent {
					open++
				}
			}
			result.OpenProposals = open
		}
	}

	return result
}
