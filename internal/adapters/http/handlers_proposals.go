package web

import (
	"net/http"
	"strconv"

	"portal/internal/adapters/http/middleware"
	"portal/internal/application/orchestrators"
	"portal/internal/domain/proposal"
)

func proposalDeps() orchestrators.ProposalDeps {
	return orchestrators.ProposalDeps{
		ProposalStore: stores.ProposalStore,
		OrgStore:      stores.OrganizationStore,
		AuditStore:    stores.AuditStore,
		EmailSender:   emailSender,
		ContactEmail:  orgContactEmail,
	}
}

// handleProposals handles GET (list) and POST (create) for /proposals.
// Admins see all proposals; org members only their organization's.
func handleProposals(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	sess, ok := middleware.GetSessionFromContext(ctx)
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}
	isHTML := isHTMLRequest(r)

	if r.Method == "GET" {
		var (
			proposals []proposal.Proposal
			err       error
		)
		orgID := sess.CurrentOrgID
		if orgID == "" && !sess.IsAdminViewer() {
			orgID = sess.OrgID
		}
		if orgID != "" {
			proposals, err = stores.ProposalStore.ListByOrgID(ctx, orgID)
		} else if sess.IsAdminViewer() {
			proposals, err = stores.ProposalStore.List(ctx)
		}
		if err != nil {
			internalError(w, err)
			return
		}

		if isHTML {
			renderTemplate(w, r, "proposals.html", map[string]any{
				"Proposals": proposals,
			})
			return
		}
		writeJSON(w, map[string]any{"Proposals": proposals})
		return
	}

	if r.Method == "POST" {
		if !sess.IsAdminViewer() {
			http.Error(w, "Forbidden", http.StatusForbidden)
			return
		}
		input := orchestrators.CreateProposalInput{CreatedBy: sess.AccountID}
		if isFormRequest(r) {
			if err := r.ParseForm(); err != nil {
				http.Error(w, "Invalid form submission", http.StatusBadRequest)
				return
			}
			input.OrgID = r.FormValue("OrgID")
			input.Title = r.FormValue("Title")
			input.Content = r.FormValue("Content")
			input.AmountCents, _ = strconv.ParseInt(r.FormValue("AmountCents"), 10, 64)
		} else {
			var body struct {
				OrgID, Title, Content string
				AmountCents           int64
			}
			if err := strictDecode(r, &body); err != nil {
				http.Error(w, "Invalid request", http.StatusBadRequest)
				return
			}
			input.OrgID = body.OrgID
			input.Title = body.Title
			input.Content = body.Content
			input.AmountCents = body.AmountCents
		}

		id, err := orchestrators.ExecuteCreateProposal(ctx, input, proposalDeps())
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		if isHTML {
			http.Redirect(w, r, "/proposals", http.StatusSeeOther)
		} else {
			w.WriteHeader(http.StatusCreated)
			writeJSON(w, map[string]string{"ID": id})
		}
		return
	}

	w.WriteHeader(http.StatusMethodNotAllowed)
}

// handleProposalSend handles POST /proposals/{id}/send.
func handleProposalSend(w http.ResponseWriter, r *http.Request) {
	sess, ok := middleware.GetSessionFromContext(r.Context())
	if !ok || !sess.IsAdminViewer() {
		http.Error(w, "Forbidden", http.StatusForbidden)
		return
	}
	err := orchestrators.ExecuteSendProposal(r.Context(), orchestrators.SendProposalInput{
		ProposalID: r.PathValue("id"),
		SenderID:   sess.AccountID,
	}, proposalDeps())
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if isHTMLRequest(r) {
		http.Redirect(w, r, "/proposals", http.StatusSeeOther)
	} else {
		w.WriteHeader(http.StatusNoContent)
	}
}

// handleProposalRespond handles POST /proposals/{id}/respond.
// The client organization accepts or declines a sent proposal.
func handleProposalRespond(w http.ResponseWriter, r *http.Request) {
	if _, ok := middleware.GetSessionFromContext(r.Context()); !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	accept := false
	if isFormRequest(r) {
		if err := r.ParseForm(); err != nil {
			http.Error(w, "Invalid form submission", http.StatusBadRequest)
			return
		}
		accept = r.FormValue("Accept") == "true"
	} else {
		var body struct{ Accept bool }
		if err := strictDecode(r, &body); err != nil {
			http.Error(w, "Invalid request", http.StatusBadRequest)
			return
		}
		accept = body.Accept
	}

	err := orchestrators.ExecuteRespondProposal(r.Context(), orchestrators.RespondProposalInput{
		ProposalID: r.PathValue("id"),
		Accept:     accept,
	}, proposalDeps())
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if isHTMLRequest(r) {
		http.Redirect(w, r, "/proposals", http.StatusSeeOther)
	} else {
		w.WriteHeader(http.StatusNoContent)
	}
}
