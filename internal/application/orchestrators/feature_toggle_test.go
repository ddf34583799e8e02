package orchestrators

import (
	"context"
	"errors"
	"testing"

	"portal/internal/domain/audit"
	"portal/internal/domain/feature"
)

// mockFlagStore implements FlagStoreForToggle for testing.
type mockFlagStore struct {
	flags map[string]bool // keyed by tenantType/tenantID/key
}

func (m *mockFlagStore) Set(_ context.Context, tenantType, tenantID, key string, enabled bool) error {
	m.flags[tenantType+"/"+tenantID+"/"+key] = enabled
	return nil
}

func (m *mockFlagStore) Clear(_ context.Context, tenantType, tenantID, key string) error {
	delete(m.flags, tenantType+"/"+tenantID+"/"+key)
	return nil
}

func TestExecuteToggleFeature_SetAndUnset(t *testing.T) {
	store := &mockFlagStore{flags: map[string]bool{}}
	audits := &mockAuditRecorder{}
	deps := ToggleFeatureDeps{FlagStore: store, AuditStore: audits}

	err := ExecuteToggleFeature(context.Background(), ToggleFeatureInput{
		ActorID:    "admin-1",
		TenantType: "organization",
		TenantID:   "org-1",
		Key:        feature.KeySEO,
		Enabled:    false,
	}, deps)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v, ok := store.flags["organization/org-1/seo"]; !ok || v {
		t.Errorf("expected seo explicitly disabled, got %v (set=%v)", v, ok)
	}

	err = ExecuteToggleFeature(context.Background(), ToggleFeatureInput{
		ActorID:    "admin-1",
		TenantType: "organization",
		TenantID:   "org-1",
		Key:        feature.KeySEO,
		Unset:      true,
	}, deps)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := store.flags["organization/org-1/seo"]; ok {
		t.Error("expected seo flag removed after unset")
	}

	if len(audits.entries) != 2 {
		t.Fatalf("expected 2 audit entries, got %d", len(audits.entries))
	}
	for _, e := range audits.entries {
		if e.Action != audit.ActionFeatureToggled {
			t.Errorf("expected feature_toggled action, got %s", e.Action)
		}
	}
}

func TestExecuteToggleFeature_UnknownKey(t *testing.T) {
	store := &mockFlagStore{flags: map[string]bool{}}
	err := ExecuteToggleFeature(context.Background(), ToggleFeatureInput{
		ActorID:    "admin-1",
		TenantType: "project",
		TenantID:   "proj-1",
		Key:        "crm",
		Enabled:    true,
	}, ToggleFeatureDeps{FlagStore: store})
	if !errors.Is(err, ErrUnknownFeature) {
		t.Errorf("expected ErrUnknownFeature, got %v", err)
	}
	if len(store.flags) != 0 {
		t.Error("unknown key must not be stored")
	}
}

func TestExecuteToggleFeature_EmptyTenant(t *testing.T) {
	err := ExecuteToggleFeature(context.Background(), ToggleFeatureInput{
		ActorID: "admin-1",
		Key:     feature.KeyBlog,
		Enabled: true,
	}, ToggleFeatureDeps{FlagStore: &mockFlagStore{flags: map[string]bool{}}})
	if !errors.Is(err, ErrEmptyTenant) {
		t.Errorf("expected ErrEmptyTenant, got %v", err)
	}
}
