package navigation

import "portal/internal/domain/feature"

// HasFeature reports whether the feature key is visible in this context.
//
// Precedence:
//  1. Viewing a tenant (client org or project): the active tenant's raw flag,
//     unset defaulting to disabled. Client portals are opt-in per feature.
//  2. Admin viewing their own agency portal: keys on the admin-tools
//     allow-list default to enabled unless the flag is explicitly false, so
//     agency staff see internal tool modules without per-org configuration.
//  3. Anything else: the raw flag value, default disabled.
//
// INVARIANT: c is not mutated
func (c Context) HasFeature(key string) bool {
	if c.IsViewingTenant || c.IsInTenantContext {
		return c.tenantFlags().Enabled(key)
	}
	if feature.IsAdminTool(key) && c.IsAdminViewer() {
		return !c.HomeFlags.ExplicitlyDisabled(key)
	}
	return c.HomeFlags.Enabled(key)
}

// tenantFlags returns the active tenant's flag bag: the project's when in
// project context, else the organization's.
func (c Context) tenantFlags() feature.Flags {
	if c.Project != nil {
		return c.Project.Features
	}
	if c.Org != nil {
		return c.Org.Features
	}
	return nil
}
