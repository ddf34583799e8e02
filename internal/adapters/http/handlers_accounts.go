package web

import (
	"errors"
	"net/http"

	"portal/internal/adapters/http/middleware"
	accountStore "portal/internal/adapters/storage/account"
	"portal/internal/application/orchestrators"
)

// handleAccounts handles GET (list) and POST (provision) for /team/accounts.
// Members see their own organization's team; admins can list across orgs.
// Accounts are provisioned by agency admins; there is no self-signup.
func handleAccounts(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	sess, ok := middleware.GetSessionFromContext(ctx)
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}
	isHTML := isHTMLRequest(r)

	if r.Method == "GET" {
		orgID := r.URL.Query().Get("org_id")
		if !sess.IsAdminViewer() {
			orgID = sess.CurrentOrgID
			if orgID == "" {
				orgID = sess.OrgID
			}
		}
		accounts, err := stores.AccountStore.List(ctx, accountStore.ListFilter{
			OrgID:    orgID,
			Role:     r.URL.Query().Get("role"),
			TeamRole: r.URL.Query().Get("team_role"),
		})
		if err != nil {
			internalError(w, err)
			return
		}
		// Password hashes never leave the storage layer, but blank them anyway
		for i := range accounts {
			accounts[i].PasswordHash = ""
		}
		if isHTML {
			renderTemplate(w, r, "accounts.html", map[string]any{
				"Accounts": accounts,
			})
			return
		}
		writeJSON(w, map[string]any{"Accounts": accounts})
		return
	}

	if r.Method == "POST" {
		if !sess.IsAdminViewer() {
			http.Error(w, "Forbidden", http.StatusForbidden)
			return
		}
		input := orchestrators.CreateAccountInput{ActorID: sess.AccountID}
		if isFormRequest(r) {
			if err := r.ParseForm(); err != nil {
				http.Error(w, "Invalid form submission", http.StatusBadRequest)
				return
			}
			input.Email = r.FormValue("Email")
			input.Password = r.FormValue("Password")
			input.Role = r.FormValue("Role")
			input.TeamRole = r.FormValue("TeamRole")
			input.AccessLevel = r.FormValue("AccessLevel")
			input.OrgID = r.FormValue("OrgID")
		} else {
			var body struct {
				Email, Password, Role, TeamRole, AccessLevel, OrgID string
			}
			if err := strictDecode(r, &body); err != nil {
				http.Error(w, "Invalid request", http.StatusBadRequest)
				return
			}
			input.Email = body.Email
			input.Password = body.Password
			input.Role = body.Role
			input.TeamRole = body.TeamRole
			input.AccessLevel = body.AccessLevel
			input.OrgID = body.OrgID
		}

		id, err := orchestrators.ExecuteCreateAccount(ctx, input, orchestrators.CreateAccountDeps{
			AccountStore: stores.AccountStore,
			AuditStore:   stores.AuditStore,
		})
		if err != nil {
			status := http.StatusBadRequest
			if errors.Is(err, orchestrators.ErrEmailAlreadyExists) {
				status = http.StatusConflict
			}
			http.Error(w, err.Error(), status)
			return
		}

		if isHTML {
			http.Redirect(w, r, "/team/accounts", http.StatusSeeOther)
		} else {
			w.WriteHeader(http.StatusCreated)
			writeJSON(w, map[string]string{"ID": id})
		}
		return
	}

	w.WriteHeader(http.StatusMethodNotAllowed)
}
