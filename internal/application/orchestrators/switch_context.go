package orchestrators

import (
	"context"
	"errors"
	"log/slog"

	"portal/internal/domain/account"
	"portal/internal/domain/audit"
	"portal/internal/domain/organization"
	"portal/internal/domain/project"
)

// AccountStoreForSwitch defines the account lookup needed by context switches.
type AccountStoreForSwitch interface {
	GetByID(ctx context.Context, id string) (account.Account, error)
}

// OrgStoreForSwitch defines the organization lookup needed by context switches.
type OrgStoreForSwitch interface {
	GetByID(ctx context.Context, id string) (organization.Organization, error)
}

// ProjectStoreForSwitch defines the project lookup needed by context switches.
type ProjectStoreForSwitch interface {
	GetByID(ctx context.Context, id string) (project.Project, error)
}

// SwitchContextDeps holds dependencies shared by the context-switch orchestrators.
type SwitchContextDeps struct {
	AccountStore AccountStoreForSwitch
	OrgStore     OrgStoreForSwitch
	ProjectStore ProjectStoreForSwitch
	AuditStore   AuditRecorder
}

// Context-switch errors. A failed switch leaves the caller's session context
// untouched.
var (
	ErrOrgNotFound      = errors.New("organization not found")
	ErrProjectNotFound  = errors.New("project not found")
	ErrOrgAccessDenied  = errors.New("account cannot view this organization")
	ErrProjectNotInOrg  = errors.New("project does not belong to the current organization")
	ErrRepCannotSwitch  = errors.New("sales reps cannot switch contexts")
	ErrMemberCannotExit = errors.New("only agency staff can leave organization context")
)

// SwitchOrganizationInput carries input for ExecuteSwitchOrganization.
type SwitchOrganizationInput struct {
	AccountID   string
	TargetOrgID string
}

// ExecuteSwitchOrganization enters organization context. Agency admins and
// super admins can enter any organization; members only their home one.
// PRE: Account and target organization exist
// POST: Returns the organization; switch recorded in the audit trail
// INVARIANT: Failure leaves the caller's context unchanged
func ExecuteSwitchOrganization(ctx context.Context, input SwitchOrganizationInput, deps SwitchContextDeps) (organization.Organization, error) {
	acct, err := deps.AccountStore.GetByID(ctx, input.AccountID)
	if err != nil {
		return organization.Organization{}, err
	}
	if acct.IsSalesRep() {
		return organization.Organization{}, ErrRepCannotSwitch
	}

	org, err := deps.OrgStore.GetByID(ctx, input.TargetOrgID)
	if err != nil {
		return organization.Organization{}, ErrOrgNotFound
	}

	if !acct.IsAdmin() && !acct.IsSuperAdmin && acct.OrgID != org.ID {
		slog.Info("context_event", "event", "org_switch_denied", "account_id", acct.ID, "org_id", org.ID)
		return organization.Organization{}, ErrOrgAccessDenied
	}

	recordAudit(ctx, deps.AuditStore, audit.Entry{
		ActorID:    acct.ID,
		Action:     audit.ActionOrgSwitched,
		TargetType: "organization",
		TargetID:   org.ID,
		OrgID:      org.ID,
		Detail:     org.Name,
	})

	slog.Info("context_event", "event", "org_switched", "account_id", acct.ID, "org_id", org.ID)
	return org, nil
}

// SwitchProjectInput carries input for ExecuteSwitchProject.
type SwitchProjectInput struct {
	AccountID       string
	CurrentOrgID    string // empty when switching straight from the admin portal
	TargetProjectID string
}

// SwitchProjectResult carries the project entered and the organization it
// belongs to. When the caller had no organization context, the project's
// organization becomes the current one.
type SwitchProjectResult struct {
	Project project.Project
	Org     organization.Organization
}

// ExecuteSwitchProject enters project context within an organization.
// PRE: Account and target project exist
// POST: Returns project and owning org; switch recorded in the audit trail
// INVARIANT: The project must belong to the caller's current organization,
// when one is set; failure leaves the caller's context unchanged
func ExecuteSwitchProject(ctx context.Context, input SwitchProjectInput, deps SwitchContextDeps) (SwitchProjectResult, error) {
	acct, err := deps.AccountStore.GetByID(ctx, input.AccountID)
	if err != nil {
		return SwitchProjectResult{}, err
	}
	if acct.IsSalesRep() {
		return SwitchProjectResult{}, ErrRepCannotSwitch
	}

	proj, err := deps.ProjectStore.GetByID(ctx, input.TargetProjectID)
	if err != nil {
		return SwitchProjectResult{}, ErrProjectNotFound
	}
	if input.CurrentOrgID != "" && proj.OrgID != input.CurrentOrgID {
		return SwitchProjectResult{}, ErrProjectNotInOrg
	}
	if !acct.IsAdmin() && !acct.IsSuperAdmin && proj.OrgID != acct.OrgID {
		return SwitchProjectResult{}, ErrOrgAccessDenied
	}

	org, err := deps.OrgStore.GetByID(ctx, proj.OrgID)
	if err != nil {
		return SwitchProjectResult{}, ErrOrgNotFound
	}

	recordAudit(ctx, deps.AuditStore, audit.Entry{
		ActorID:    acct.ID,
		Action:     audit.ActionProjectSwitched,
		TargetType: "project",
		TargetID:   proj.ID,
		OrgID:      org.ID,
		Detail:     proj.Title,
	})

	slog.Info("context_event", "event", "project_switched", "account_id", acct.ID, "project_id", proj.ID, "org_id", org.ID)
	return SwitchProjectResult{Project: proj, Org: org}, nil
}

// ExitProjectInput carries input for ExecuteExitProject.
type ExitProjectInput struct {
	AccountID    string
	ProjectID    string
	CurrentOrgID string
}

// ExecuteExitProject leaves project context, falling back to the enclosing
// organization context.
// PRE: Account exists and is in project context
// POST: Exit recorded in the audit trail
func ExecuteExitProject(ctx context.Context, input ExitProjectInput, deps SwitchContextDeps) error {
	acct, err := deps.AccountStore.GetByID(ctx, input.AccountID)
	if err != nil {
		return err
	}

	recordAudit(ctx, deps.AuditStore, audit.Entry{
		ActorID:    acct.ID,
		Action:     audit.ActionProjectExited,
		TargetType: "project",
		TargetID:   input.ProjectID,
		OrgID:      input.CurrentOrgID,
	})

	slog.Info("context_event", "event", "project_exited", "account_id", acct.ID, "project_id", input.ProjectID)
	return nil
}

// ExitOrganizationInput carries input for ExecuteExitOrganization.
type ExitOrganizationInput struct {
	AccountID string
	OrgID     string
}

// ExecuteExitOrganization leaves organization context entirely, returning the
// caller to the admin portal. Members live inside their home organization and
// have nowhere to exit to.
// PRE: Account exists and is in organization context
// POST: Exit recorded in the audit trail
// INVARIANT: Only admins and super admins can exit
func ExecuteExitOrganization(ctx context.Context, input ExitOrganizationInput, deps SwitchContextDeps) error {
	acct, err := deps.AccountStore.GetByID(ctx, input.AccountID)
	if err != nil {
		return err
	}
	if acct.IsSalesRep() {
		return ErrRepCannotSwitch
	}
	if !acct.IsAdmin() && !acct.IsSuperAdmin {
		return ErrMemberCannotExit
	}

	recordAudit(ctx, deps.AuditStore, audit.Entry{
		ActorID:    acct.ID,
		Action:     audit.ActionOrgExited,
		TargetType: "organization",
		TargetID:   input.OrgID,
		OrgID:      input.OrgID,
	})

	slog.Info("context_event", "event", "org_exited", "account_id", acct.ID, "org_id", input.OrgID)
	return nil
}
