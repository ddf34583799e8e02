package orchestrators

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"portal/internal/domain/organization"

	orgFilter "portal/internal/adapters/storage/organization"

	"github.com/google/uuid"
)

// ExecuteSeedAgency ensures the operating agency's own organization exists and
// returns its ID. The agency org is the home for staff accounts and admin-tool
// flag overrides.
// PRE: Database is initialized
// POST: Exactly one agency organization exists
func ExecuteSeedAgency(ctx context.Context, store synOrgStore, name, slug string) (string, error) {
	existing, err := store.List(ctx, orgFilter.ListFilter{OrgType: organization.TypeAgency})
	if err != nil {
		return "", fmt.Errorf("seed_agency: list organizations: %w", err)
	}
	if len(existing) > 0 {
		return existing[0].ID, nil
	}

	org := organization.Organization{
		ID:        uuid.New().String(),
		Name:      name,
		Slug:      slug,
		OrgType:   organization.TypeAgency,
		Status:    organization.StatusActive,
		CreatedAt: time.Now(),
	}
	if err := org.Validate(); err != nil {
		return "", err
	}
	if err := store.Save(ctx, org); err != nil {
		return "", fmt.Errorf("seed_agency: save: %w", err)
	}

	slog.Info("seed_event", "event", "agency_seeded", "org_id", org.ID, "slug", slug)
	return org.ID, nil
}
