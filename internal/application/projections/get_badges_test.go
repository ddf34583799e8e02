package projections

import (
	"context"
	"errors"
	"testing"
)

type stubMessageCounts struct {
	count int
	err   error
}

func (s *stubMessageCounts) CountUnread(_ context.Context, _ string) (int, error) {
	return s.count, s.err
}

type stubAuditCounts struct {
	count int
	err   error
}

func (s *stubAuditCounts) CountUnread(_ context.Context) (int, error) {
	return s.count, s.err
}

type stubInvoiceCounts struct {
	total int
	byOrg int
	err   error
}

func (s *stubInvoiceCounts) CountUnpaid(_ context.Context) (int, error) {
	return s.total, s.err
}

func (s *stubInvoiceCounts) CountUnpaidByOrgID(_ context.Context, _ string) (int, error) {
	return s.byOrg, s.err
}

type stubLeadCounts struct {
	count int
	err   error
}

func (s *stubLeadCounts) CountNew(_ context.Context) (int, error) {
	return s.count, s.err
}

func TestQueryGetBadges_AllResolved(t *testing.T) {
	badges := QueryGetBadges(context.Background(), GetBadgesQuery{AccountID: "acct-1", IsAdmin: true}, GetBadgesDeps{
		MessageStore: &stubMessageCounts{count: 3},
		AuditStore:   &stubAuditCounts{count: 7},
		InvoiceStore: &stubInvoiceCounts{total: 2},
		LeadStore:    &stubLeadCounts{count: 5},
	})
	if badges.UnreadMessages == nil || *badges.UnreadMessages != 3 {
		t.Errorf("expected 3 unread messages, got %v", badges.UnreadMessages)
	}
	if badges.UnreadAudits == nil || *badges.UnreadAudits != 7 {
		t.Errorf("expected 7 unread audits, got %v", badges.UnreadAudits)
	}
	if badges.UnpaidInvoices == nil || *badges.UnpaidInvoices != 2 {
		t.Errorf("expected 2 unpaid invoices, got %v", badges.UnpaidInvoices)
	}
	if badges.NewLeads == nil || *badges.NewLeads != 5 {
		t.Errorf("expected 5 new leads, got %v", badges.NewLeads)
	}
}

func TestQueryGetBadges_FailuresLeaveCountsPending(t *testing.T) {
	badges := QueryGetBadges(context.Background(), GetBadgesQuery{AccountID: "acct-1", IsAdmin: true}, GetBadgesDeps{
		MessageStore: &stubMessageCounts{err: errors.New("db closed")},
		AuditStore:   &stubAuditCounts{count: 4},
		InvoiceStore: &stubInvoiceCounts{err: errors.New("db closed")},
		LeadStore:    &stubLeadCounts{err: errors.New("db closed")},
	})
	if badges.UnreadMessages != nil {
		t.Error("expected failed message count to stay nil")
	}
	if badges.UnreadAudits == nil || *badges.UnreadAudits != 4 {
		t.Errorf("expected audit count to resolve independently, got %v", badges.UnreadAudits)
	}
	if badges.UnpaidInvoices != nil || badges.NewLeads != nil {
		t.Error("expected failed counts to stay nil")
	}
}

func TestQueryGetBadges_NonAdminSkipsAdminCounts(t *testing.T) {
	badges := QueryGetBadges(context.Background(), GetBadgesQuery{AccountID: "acct-1"}, GetBadgesDeps{
		MessageStore: &stubMessageCounts{count: 1},
		AuditStore:   &stubAuditCounts{count: 9},
		InvoiceStore: &stubInvoiceCounts{total: 9},
		LeadStore:    &stubLeadCounts{count: 9},
	})
	if badges.UnreadMessages == nil || *badges.UnreadMessages != 1 {
		t.Errorf("expected message count for every viewer, got %v", badges.UnreadMessages)
	}
	if badges.UnreadAudits != nil || badges.UnpaidInvoices != nil || badges.NewLeads != nil {
		t.Error("expected admin-only counts skipped for non-admin viewer")
	}
}

func TestQueryGetBadges_OrgScopedInvoices(t *testing.T) {
	badges := QueryGetBadges(context.Background(), GetBadgesQuery{AccountID: "acct-1", OrgID: "org-1", IsAdmin: true}, GetBadgesDeps{
		InvoiceStore: &stubInvoiceCounts{total: 10, byOrg: 2},
	})
	if badges.UnpaidInvoices == nil || *badges.UnpaidInvoices != 2 {
		t.Errorf("expected org-scoped unpaid count 2, got %v", badges.UnpaidInvoices)
	}
}
