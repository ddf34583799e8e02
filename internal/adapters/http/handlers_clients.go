package web

import (
	"context"
	"net/http"
	"strings"

	"portal/internal/adapters/http/middleware"
	accountStore "portal/internal/adapters/storage/account"
	leadStore "portal/internal/adapters/storage/lead"
	orgStore "portal/internal/adapters/storage/organization"
	"portal/internal/application/listutil"
	"portal/internal/application/orchestrators"
	orgDomain "portal/internal/domain/organization"
)

// handleClients handles GET (list) and POST (create) for /clients.
// Lists client organizations with search and pagination.
func handleClients(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	isHTML := isHTMLRequest(r)

	if r.Method == "GET" {
		pp := listutil.ParsePageParams(r.URL.Query())
		fp := listutil.ParseFilterParams(r.URL.Query(), []string{"status"})

		orgs, err := stores.OrganizationStore.List(ctx, orgStore.ListFilter{
			OrgType: orgDomain.TypeClient,
			Status:  fp.Filters["status"],
		})
		if err != nil {
			internalError(w, err)
			return
		}

		if fp.Search != "" {
			q := strings.ToLower(fp.Search)
			filtered := orgs[:0]
			for _, o := range orgs {
				if strings.Contains(strings.ToLower(o.Name), q) || strings.Contains(o.Slug, q) {
					filtered = append(filtered, o)
				}
			}
			orgs = filtered
		}

		info := listutil.NewPageInfo(pp.Page, pp.PerPage, len(orgs))
		start := info.Offset()
		end := start + info.PerPage
		if end > len(orgs) {
			end = len(orgs)
		}
		page := orgs[start:end]

		if isHTML {
			renderTemplate(w, r, "clients.html", map[string]any{
				"Orgs":           page,
				"PageInfo":       info,
				"Search":         fp.Search,
				"Status":         fp.Filters["status"],
				"PerPageOptions": listutil.PerPageOptions,
			})
			return
		}
		writeJSON(w, map[string]any{"Orgs": page, "PageInfo": info})
		return
	}

	if r.Method == "POST" {
		org := orgDomain.Organization{
			ID:      generateID(),
			OrgType: orgDomain.TypeClient,
			Status:  orgDomain.StatusActive,
		}
		if isFormRequest(r) {
			if err := r.ParseForm(); err != nil {
				http.Error(w, "Invalid form submission", http.StatusBadRequest)
				return
			}
			org.Name = r.FormValue("Name")
			org.Slug = r.FormValue("Slug")
			org.Domain = r.FormValue("Domain")
			org.ThemeColor = r.FormValue("ThemeColor")
		} else {
			var body struct {
				Name, Slug, Domain, ThemeColor string
			}
			if err := strictDecode(r, &body); err != nil {
				http.Error(w, "Invalid request", http.StatusBadRequest)
				return
			}
			org.Name = body.Name
			org.Slug = body.Slug
			org.Domain = body.Domain
			org.ThemeColor = body.ThemeColor
		}
		if org.Slug == "" {
			org.Slug = orchestrators.Slugify(org.Name)
		}
		org.CreatedAt = timeNow()
		org.UpdatedAt = org.CreatedAt

		if err := org.Validate(); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		if err := stores.OrganizationStore.Save(ctx, org); err != nil {
			internalError(w, err)
			return
		}

		if isHTML {
			http.Redirect(w, r, "/clients", http.StatusSeeOther)
		} else {
			w.WriteHeader(http.StatusCreated)
			writeJSON(w, map[string]string{"ID": org.ID})
		}
		return
	}

	w.WriteHeader(http.StatusMethodNotAllowed)
}

// handleLeads handles GET (list) and POST (intake) for /leads.
func handleLeads(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	isHTML := isHTMLRequest(r)

	if r.Method == "GET" {
		fp := listutil.ParseFilterParams(r.URL.Query(), []string{"status"})
		leads, err := stores.LeadStore.List(ctx, leadStore.ListFilter{
			Status: fp.Filters["status"],
		})
		if err != nil {
			internalError(w, err)
			return
		}
		if isHTML {
			renderTemplate(w, r, "leads.html", map[string]any{
				"Leads":  leads,
				"Status": fp.Filters["status"],
			})
			return
		}
		writeJSON(w, map[string]any{"Leads": leads})
		return
	}

	if r.Method == "POST" {
		input := orchestrators.IntakeLeadInput{}
		if isFormRequest(r) {
			if err := r.ParseForm(); err != nil {
				http.Error(w, "Invalid form submission", http.StatusBadRequest)
				return
			}
			input.Name = r.FormValue("Name")
			input.Email = r.FormValue("Email")
			input.Company = r.FormValue("Company")
			input.Source = r.FormValue("Source")
			input.Notes = r.FormValue("Notes")
		} else {
			if err := strictDecode(r, &input); err != nil {
				http.Error(w, "Invalid request", http.StatusBadRequest)
				return
			}
		}

		id, err := orchestrators.ExecuteIntakeLead(ctx, input, orchestrators.LeadDeps{
			LeadStore: stores.LeadStore,
		})
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		if isHTML {
			http.Redirect(w, r, "/leads", http.StatusSeeOther)
		} else {
			w.WriteHeader(http.StatusCreated)
			writeJSON(w, map[string]string{"ID": id})
		}
		return
	}

	w.WriteHeader(http.StatusMethodNotAllowed)
}

// handleMyLeads handles GET /leads/mine: the sales rep's assigned pipeline.
func handleMyLeads(w http.ResponseWriter, r *http.Request) {
	sess, ok := middleware.GetSessionFromContext(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}
	leads, err := stores.LeadStore.List(r.Context(), leadStore.ListFilter{
		AssignedTo: sess.AccountID,
	})
	if err != nil {
		internalError(w, err)
		return
	}
	if isHTMLRequest(r) {
		renderTemplate(w, r, "leads.html", map[string]any{"Leads": leads, "Mine": true})
		return
	}
	writeJSON(w, map[string]any{"Leads": leads})
}

// handleLeadAssign handles POST /leads/{id}/assign.
func handleLeadAssign(w http.ResponseWriter, r *http.Request) {
	leadID := r.PathValue("id")

	accountID := ""
	if isFormRequest(r) {
		if err := r.ParseForm(); err != nil {
			http.Error(w, "Invalid form submission", http.StatusBadRequest)
			return
		}
		accountID = r.FormValue("AccountID")
	} else {
		var body struct{ AccountID string }
		if err := strictDecode(r, &body); err != nil {
			http.Error(w, "Invalid request", http.StatusBadRequest)
			return
		}
		accountID = body.AccountID
	}

	err := orchestrators.ExecuteAssignLead(r.Context(), leadID, accountID, orchestrators.LeadDeps{
		LeadStore: stores.LeadStore,
	})
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if isHTMLRequest(r) {
		http.Redirect(w, r, "/leads", http.StatusSeeOther)
	} else {
		w.WriteHeader(http.StatusNoContent)
	}
}

// handleLeadAdvance handles POST /leads/{id}/status.
func handleLeadAdvance(w http.ResponseWriter, r *http.Request) {
	leadID := r.PathValue("id")

	status := ""
	if isFormRequest(r) {
		if err := r.ParseForm(); err != nil {
			http.Error(w, "Invalid form submission", http.StatusBadRequest)
			return
		}
		status = r.FormValue("Status")
	} else {
		var body struct{ Status string }
		if err := strictDecode(r, &body); err != nil {
			http.Error(w, "Invalid request", http.StatusBadRequest)
			return
		}
		status = body.Status
	}

	err := orchestrators.ExecuteAdvanceLead(r.Context(), leadID, status, orchestrators.LeadDeps{
		LeadStore: stores.LeadStore,
	})
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if isHTMLRequest(r) {
		http.Redirect(w, r, "/leads", http.StatusSeeOther)
	} else {
		w.WriteHeader(http.StatusNoContent)
	}
}

// orgContactEmail looks up a notification address for a client organization:
// the first account homed in the org.
func orgContactEmail(ctx context.Context, orgID string) (string, error) {
	accounts, err := stores.AccountStore.List(ctx, accountStore.ListFilter{OrgID: orgID})
	if err != nil {
		return "", err
	}
	if len(accounts) == 0 {
		return "", nil
	}
	return accounts[0].Email, nil
}
