package web

import (
	"errors"
	"net/http"

	"portal/internal/adapters/http/middleware"
	"portal/internal/application/orchestrators"
)

// switchDeps assembles the context-switch dependencies from the global stores.
func switchDeps() orchestrators.SwitchContextDeps {
	return orchestrators.SwitchContextDeps{
		AccountStore: stores.AccountStore,
		OrgStore:     stores.OrganizationStore,
		ProjectStore: stores.ProjectStore,
		AuditStore:   stores.AuditStore,
	}
}

// switchError maps context-switch errors to HTTP status codes.
func switchError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, orchestrators.ErrOrgNotFound),
		errors.Is(err, orchestrators.ErrProjectNotFound):
		http.Error(w, err.Error(), http.StatusNotFound)
	case errors.Is(err, orchestrators.ErrOrgAccessDenied),
		errors.Is(err, orchestrators.ErrRepCannotSwitch),
		errors.Is(err, orchestrators.ErrMemberCannotExit):
		http.Error(w, err.Error(), http.StatusForbidden)
	case errors.Is(err, orchestrators.ErrProjectNotInOrg):
		http.Error(w, err.Error(), http.StatusBadRequest)
	default:
		internalError(w, err)
	}
}

// handleGetNavigation handles GET /api/navigation.
// Returns the resolved context, rendering mode, menu entries and badge counts
// for the current session in one payload.
func handleGetNavigation(w http.ResponseWriter, r *http.Request) {
	sess, ok := middleware.GetSessionFromContext(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}
	nav, err := resolveNavigation(r, sess)
	if err != nil {
		internalError(w, err)
		return
	}
	writeJSON(w, nav)
}

// handleSwitchOrg handles POST /context/org. The session context changes only
// after the orchestrator allows the switch.
func handleSwitchOrg(w http.ResponseWriter, r *http.Request) {
	sess, ok := middleware.GetSessionFromContext(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	input := orchestrators.SwitchOrganizationInput{AccountID: sess.AccountID}
	if isFormRequest(r) {
		if err := r.ParseForm(); err != nil {
			http.Error(w, "Invalid form submission", http.StatusBadRequest)
			return
		}
		input.TargetOrgID = r.FormValue("OrgID")
	} else {
		var body struct{ OrgID string }
		if err := strictDecode(r, &body); err != nil {
			http.Error(w, "Invalid request", http.StatusBadRequest)
			return
		}
		input.TargetOrgID = body.OrgID
	}

	org, err := orchestrators.ExecuteSwitchOrganization(r.Context(), input, switchDeps())
	if err != nil {
		switchError(w, err)
		return
	}

	sess.CurrentOrgID = org.ID
	sess.CurrentProjectID = ""
	sessions.Update(middleware.SessionToken(r), sess)

	if isHTMLRequest(r) {
		http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// handleSwitchProject handles POST /context/project. Entering a project from
// the admin portal also enters the project's organization.
func handleSwitchProject(w http.ResponseWriter, r *http.Request) {
	sess, ok := middleware.GetSessionFromContext(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	input := orchestrators.SwitchProjectInput{
		AccountID:    sess.AccountID,
		CurrentOrgID: sess.CurrentOrgID,
	}
	if isFormRequest(r) {
		if err := r.ParseForm(); err != nil {
			http.Error(w, "Invalid form submission", http.StatusBadRequest)
			return
		}
		input.TargetProjectID = r.FormValue("ProjectID")
	} else {
		var body struct{ ProjectID string }
		if err := strictDecode(r, &body); err != nil {
			http.Error(w, "Invalid request", http.StatusBadRequest)
			return
		}
		input.TargetProjectID = body.ProjectID
	}

	result, err := orchestrators.ExecuteSwitchProject(r.Context(), input, switchDeps())
	if err != nil {
		switchError(w, err)
		return
	}

	sess.CurrentOrgID = result.Org.ID
	sess.CurrentProjectID = result.Project.ID
	sessions.Update(middleware.SessionToken(r), sess)

	if isHTMLRequest(r) {
		http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// handleExitProject handles POST /context/project/exit. Falls back to the
// enclosing organization context.
func handleExitProject(w http.ResponseWriter, r *http.Request) {
	sess, ok := middleware.GetSessionFromContext(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}
	if sess.CurrentProjectID == "" {
		http.Error(w, "not in project context", http.StatusBadRequest)
		return
	}

	err := orchestrators.ExecuteExitProject(r.Context(), orchestrators.ExitProjectInput{
		AccountID:    sess.AccountID,
		ProjectID:    sess.CurrentProjectID,
		CurrentOrgID: sess.CurrentOrgID,
	}, switchDeps())
	if err != nil {
		switchError(w, err)
		return
	}

	sess.CurrentProjectID = ""
	sessions.Update(middleware.SessionToken(r), sess)

	if isHTMLRequest(r) {
		http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// handleExitOrg handles POST /context/org/exit. Agency staff return to the
// admin portal; members cannot leave their home organization.
func handleExitOrg(w http.ResponseWriter, r *http.Request) {
	sess, ok := middleware.GetSessionFromContext(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}
	if sess.CurrentOrgID == "" {
		http.Error(w, "not in organization context", http.StatusBadRequest)
		return
	}

	err := orchestrators.ExecuteExitOrganization(r.Context(), orchestrators.ExitOrganizationInput{
		AccountID: sess.AccountID,
		OrgID:     sess.CurrentOrgID,
	}, switchDeps())
	if err != nil {
		switchError(w, err)
		return
	}

	sess.CurrentOrgID = ""
	sess.CurrentProjectID = ""
	sessions.Update(middleware.SessionToken(r), sess)

	if isHTMLRequest(r) {
		http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
