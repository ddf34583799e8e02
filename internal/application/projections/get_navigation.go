package projections

import (
	"context"

	"portal/internal/domain/account"
	"portal/internal/domain/feature"
	"portal/internal/domain/navigation"
	"portal/internal/domain/organization"
	"portal/internal/domain/project"
)

// NavAccountStore defines the account store interface needed by the navigation projection.
type NavAccountStore interface {
	GetByID(ctx context.Context, id string) (account.Account, error)
}

// NavOrgStore defines the organization store interface needed by the navigation projection.
type NavOrgStore interface {
	GetByID(ctx context.Context, id string) (organization.Organization, error)
}

// NavProjectStore defines the project store interface needed by the navigation projection.
type NavProjectStore interface {
	GetByID(ctx context.Context, id string) (project.Project, error)
}

// NavFlagStore defines the flag store interface needed by the navigation projection.
type NavFlagStore interface {
	GetForTenant(ctx context.Context, tenantType, tenantID string) (feature.Flags, error)
}

// GetNavigationQuery carries the session's view of the current context.
type GetNavigationQuery struct {
	AccountID        string
	CurrentOrgID     string
	CurrentProjectID string
}

// GetNavigationDeps holds dependencies for the navigation projection.
type GetNavigationDeps struct {
	AccountStore NavAccountStore
	OrgStore     NavOrgStore
	ProjectStore NavProjectStore
	FlagStore    NavFlagStore
	BadgeDeps    GetBadgesDeps

	// AgencyOrgID is the operator's own organization, the flag home for staff
	// accounts that have no OrgID of their own.
	AgencyOrgID string
}

// NavigationResult carries the resolved context, rendering mode and menu.
type NavigationResult struct {
	Context navigation.Context
	Mode    navigation.Mode
	Entries []navigation.Entry
	Badges  navigation.Badges
}

// QueryGetNavigation loads the session's org and project, attaches their flag
// bags, resolves the viewing context and builds the menu. Stale references
// degrade gracefully: an org or project that no longer loads is treated as
// absent rather than failing the render.
// PRE: query.AccountID identifies a stored account
// POST: Returns the complete navigation state for one render
func QueryGetNavigation(ctx context.Context, query GetNavigationQuery, deps GetNavigationDeps) (NavigationResult, error) {
	acct, err := deps.AccountStore.GetByID(ctx, query.AccountID)
	if err != nil {
		return NavigationResult{}, err
	}
	viewer := navigation.ViewerFromAccount(acct)

	var org *organization.Organization
	if query.CurrentOrgID != "" {
		if o, err := deps.OrgStore.GetByID(ctx, query.CurrentOrgID); err == nil {
			if flags, err := deps.FlagStore.GetForTenant(ctx, "organization", o.ID); err == nil {
				o.Features = flags
			}
			org = &o
		}
	}

	var proj *project.Project
	if query.CurrentProjectID != "" {
		if p, err := deps.ProjectStore.GetByID(ctx, query.CurrentProjectID); err == nil {
			if flags, err := deps.FlagStore.GetForTenant(ctx, "project", p.ID); err == nil {
				p.Features = flags
			}
			proj = &p
		}
	}

	homeOrgID := acct.OrgID
	if homeOrgID == "" {
		homeOrgID = deps.AgencyOrgID
	}
	var homeFlags feature.Flags
	if homeOrgID != "" {
		if flags, err := deps.FlagStore.GetForTenant(ctx, "organization", homeOrgID); err == nil {
			homeFlags = flags
		}
	}

	navCtx := navigation.Resolve(viewer, org, proj, homeFlags)
	mode := navigation.ResolveMode(navCtx)

	badges := QueryGetBadges(ctx, GetBadgesQuery{
		AccountID: acct.ID,
		OrgID:     query.CurrentOrgID,
		IsAdmin:   navCtx.IsAdminViewer(),
	}, deps.BadgeDeps)

	return NavigationResult{
		Context: navCtx,
		Mode:    mode,
		Entries: navigation.Build(navCtx, badges),
		Badges:  badges,
	}, nil
}
