package orchestrators

import (
	"context"
	"log/slog"
	"time"

	"portal/internal/domain/audit"

	"github.com/google/uuid"
)

// AuditRecorder defines the store interface orchestrators use to append
// audit-trail entries.
type AuditRecorder interface {
	Save(ctx context.Context, e audit.Entry) error
}

// recordAudit appends an audit entry, filling in ID and timestamp. Audit
// failures are logged but never fail the action being audited.
func recordAudit(ctx context.Context, store AuditRecorder, e audit.Entry) {
	if store == nil {
		return
	}
	e.ID = uuid.New().String()
	e.CreatedAt = time.Now()
	if err := store.Save(ctx, e); err != nil {
		slog.Error("audit_event", "event", "record_failed", "action", e.Action, "error", err)
	}
}
