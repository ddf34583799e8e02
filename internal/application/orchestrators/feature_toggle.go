package orchestrators

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"portal/internal/domain/audit"
	"portal/internal/domain/feature"
)

// FlagStoreForToggle defines the flag store interface needed by ToggleFeature.
type FlagStoreForToggle interface {
	Set(ctx context.Context, tenantType, tenantID, key string, enabled bool) error
	Clear(ctx context.Context, tenantType, tenantID, key string) error
}

// ToggleFeatureInput carries input for the feature-toggle orchestrator.
// Unset reverts the key to its default instead of pinning a value.
type ToggleFeatureInput struct {
	ActorID    string
	TenantType string // organization, project
	TenantID   string
	Key        string
	Enabled    bool
	Unset      bool
}

// ToggleFeatureDeps holds dependencies for ToggleFeature.
type ToggleFeatureDeps struct {
	FlagStore  FlagStoreForToggle
	AuditStore AuditRecorder
}

var (
	ErrUnknownFeature = errors.New("unknown feature key")
	ErrEmptyTenant    = errors.New("tenant type and ID are required")
)

// ExecuteToggleFeature sets, overrides or unsets one feature flag for a tenant.
// PRE: Key is a known feature; tenant identifies an organization or project
// POST: Flag state updated; change recorded in the audit trail
func ExecuteToggleFeature(ctx context.Context, input ToggleFeatureInput, deps ToggleFeatureDeps) error {
	if input.TenantType == "" || input.TenantID == "" {
		return ErrEmptyTenant
	}
	if !feature.IsKnown(input.Key) {
		return ErrUnknownFeature
	}

	var err error
	detail := ""
	if input.Unset {
		err = deps.FlagStore.Clear(ctx, input.TenantType, input.TenantID, input.Key)
		detail = fmt.Sprintf("%s unset", input.Key)
	} else {
		err = deps.FlagStore.Set(ctx, input.TenantType, input.TenantID, input.Key, input.Enabled)
		detail = fmt.Sprintf("%s=%t", input.Key, input.Enabled)
	}
	if err != nil {
		return err
	}

	orgID := ""
	if input.TenantType == "organization" {
		orgID = input.TenantID
	}
	recordAudit(ctx, deps.AuditStore, audit.Entry{
		ActorID:    input.ActorID,
		Action:     audit.ActionFeatureToggled,
		TargetType: input.TenantType,
		TargetID:   input.TenantID,
		OrgID:      orgID,
		Detail:     detail,
	})

	slog.Info("feature_event", "event", "flag_toggled", "tenant_type", input.TenantType, "tenant_id", input.TenantID, "detail", detail)
	return nil
}
