package web

import (
	"net/http"

	orgStore "portal/internal/adapters/storage/organization"
	orgDomain "portal/internal/domain/organization"
	projectDomain "portal/internal/domain/project"
)

// handleProjects handles GET (list) and POST (create) for /projects.
// Projects are managed by agency admins; members reach theirs through the
// organization dashboard. Admin-only via routing.
func handleProjects(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	isHTML := isHTMLRequest(r)

	if r.Method == "GET" {
		var (
			projects []projectDomain.Project
			err      error
		)
		if orgID := r.URL.Query().Get("org_id"); orgID != "" {
			projects, err = stores.ProjectStore.ListByOrgID(ctx, orgID)
		} else {
			projects, err = stores.ProjectStore.List(ctx)
		}
		if err != nil {
			internalError(w, err)
			return
		}

		if isHTML {
			orgs, err := stores.OrganizationStore.List(ctx, orgStore.ListFilter{OrgType: orgDomain.TypeClient})
			if err != nil {
				internalError(w, err)
				return
			}
			renderTemplate(w, r, "projects.html", map[string]any{
				"Projects": projects,
				"Orgs":     orgs,
			})
			return
		}
		writeJSON(w, map[string]any{"Projects": projects})
		return
	}

	if r.Method == "POST" {
		proj := projectDomain.Project{
			ID:     generateID(),
			Status: projectDomain.StatusActive,
		}
		if isFormRequest(r) {
			if err := r.ParseForm(); err != nil {
				http.Error(w, "Invalid form submission", http.StatusBadRequest)
				return
			}
			proj.OrgID = r.FormValue("OrgID")
			proj.Title = r.FormValue("Title")
			proj.Domain = r.FormValue("Domain")
		} else {
			var body struct {
				OrgID, Title, Domain string
			}
			if err := strictDecode(r, &body); err != nil {
				http.Error(w, "Invalid request", http.StatusBadRequest)
				return
			}
			proj.OrgID = body.OrgID
			proj.Title = body.Title
			proj.Domain = body.Domain
		}
		proj.CreatedAt = timeNow()
		proj.UpdatedAt = proj.CreatedAt

		if err := proj.Validate(); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		// The org must exist; a typoed ID would orphan the project
		if _, err := stores.OrganizationStore.GetByID(ctx, proj.OrgID); err != nil {
			http.Error(w, "organization not found", http.StatusBadRequest)
			return
		}
		if err := stores.ProjectStore.Save(ctx, proj); err != nil {
			internalError(w, err)
			return
		}

		if isHTML {
			http.Redirect(w, r, "/projects", http.StatusSeeOther)
		} else {
			w.WriteHeader(http.StatusCreated)
			writeJSON(w, map[string]string{"ID": proj.ID})
		}
		return
	}

	w.WriteHeader(http.StatusMethodNotAllowed)
}

// handleProjectArchive handles POST /projects/{id}/archive.
func handleProjectArchive(w http.ResponseWriter, r *http.Request) {
	proj, err := stores.ProjectStore.GetByID(r.Context(), r.PathValue("id"))
	if err != nil {
		http.Error(w, "project not found", http.StatusNotFound)
		return
	}
	proj.Status = projectDomain.StatusArchived
	proj.UpdatedAt = timeNow()
	if err := stores.ProjectStore.Save(r.Context(), proj); err != nil {
		internalError(w, err)
		return
	}
	if isHTMLRequest(r) {
		http.Redirect(w, r, "/projects", http.StatusSeeOther)
	} else {
		w.WriteHeader(http.StatusNoContent)
	}
}

// handleProjectDelete handles POST /projects/{id}/delete.
func handleProjectDelete(w http.ResponseWriter, r *http.Request) {
	if _, err := stores.ProjectStore.GetByID(r.Context(), r.PathValue("id")); err != nil {
		http.Error(w, "project not found", http.StatusNotFound)
		return
	}
	if err := stores.ProjectStore.Delete(r.Context(), r.PathValue("id")); err != nil {
		internalError(w, err)
		return
	}
	if isHTMLRequest(r) {
		http.Redirect(w, r, "/projects", http.StatusSeeOther)
	} else {
		w.WriteHeader(http.StatusNoContent)
	}
}
