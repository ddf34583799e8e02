package projections

import (
	"context"

	"portal/internal/domain/navigation"
)

// BadgeMessageStore defines the message store interface needed by the badge projection.
type BadgeMessageStore interface {
	CountUnread(ctx context.Context, receiverID string) (int, error)
}

// BadgeAuditStore defines the audit store interface needed by the badge projection.
type BadgeAuditStore interface {
	CountUnread(ctx context.Context) (int, error)
}

// BadgeInvoiceStore defines the invoice store interface needed by the badge projection.
type BadgeInvoiceStore interface {
	CountUnpaid(ctx context.Context) (int, error)
	CountUnpaidByOrgID(ctx context.Context, orgID string) (int, error)
}

// BadgeLeadStore defines the lead store interface needed by the badge projection.
type BadgeLeadStore interface {
	CountNew(ctx context.Context) (int, error)
}

// GetBadgesQuery carries input for the badge projection.
type GetBadgesQuery struct {
	AccountID string
	OrgID     string // scope unpaid invoices to one org; empty means portal-wide
	IsAdmin   bool   // admin-only counts are skipped otherwise
}

// GetBadgesDeps holds dependencies for the badge projection. Any store may be
// nil; its count is then left pending.
type GetBadgesDeps struct {
	MessageStore BadgeMessageStore
	AuditStore   BadgeAuditStore
	InvoiceStore BadgeInvoiceStore
	LeadStore    BadgeLeadStore
}

// QueryGetBadges gathers the async counts overlaid on navigation entries.
// Each count fails independently: a store error leaves that count nil and the
// corresponding badge simply does not render.
// PRE: query.AccountID identifies the viewer
// POST: Returns whichever counts resolved; never returns an error
func QueryGetBadges(ctx context.Context, query GetBadgesQuery, deps GetBadgesDeps) navigation.Badges {
	var badges navigation.Badges

	if deps.MessageStore != nil {
		count, err := deps.MessageStore.CountUnread(ctx, query.AccountID)
		if err == nil {
			badges.UnreadMessages = &count
		}
	}

	if query.IsAdmin && deps.AuditStore != nil {
		count, err := deps.AuditStore.CountUnread(ctx)
		if err == nil {
			badges.UnreadAudits = &count
		}
	}

	if query.IsAdmin && deps.InvoiceStore != nil {
		var count int
		var err error
		if query.OrgID != "" {
			count, err = deps.InvoiceStore.CountUnpaidByOrgID(ctx, query.OrgID)
		} else {
			count, err = deps.InvoiceStore.CountUnpaid(ctx)
		}
		if err == nil {
			badges.UnpaidInvoices = &count
		}
	}

	if query.IsAdmin && deps.LeadStore != nil {
		count, err := deps.LeadStore.CountNew(ctx)
		if err == nil {
			badges.NewLeads = &count
		}
	}

	return badges
}
