package web

import (
	"net/http"

	"portal/internal/adapters/http/middleware"
	"portal/internal/application/orchestrators"
	"portal/internal/domain/blog"
)

// blogTenant derives the blog tenant from the session context: project when
// one is entered, otherwise the current (or home) organization.
func blogTenant(sess middleware.Session) (tenantType, tenantID string) {
	if sess.CurrentProjectID != "" {
		return blog.TenantProject, sess.CurrentProjectID
	}
	if sess.CurrentOrgID != "" {
		return blog.TenantOrganization, sess.CurrentOrgID
	}
	return blog.TenantOrganization, sess.OrgID
}

// handleBlog handles GET (list) and POST (draft) for /blog.
func handleBlog(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	sess, ok := middleware.GetSessionFromContext(ctx)
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}
	isHTML := isHTMLRequest(r)
	tenantType, tenantID := blogTenant(sess)
	if tenantID == "" {
		http.Error(w, "no blog tenant in context", http.StatusBadRequest)
		return
	}

	if r.Method == "GET" {
		posts, err := stores.BlogStore.ListByTenant(ctx, tenantType, tenantID)
		if err != nil {
			internalError(w, err)
			return
		}
		if isHTML {
			renderTemplate(w, r, "blog.html", map[string]any{
				"Posts": posts,
			})
			return
		}
		writeJSON(w, map[string]any{"Posts": posts})
		return
	}

	if r.Method == "POST" {
		input := orchestrators.CreatePostInput{
			TenantType: tenantType,
			TenantID:   tenantID,
			AuthorID:   sess.AccountID,
		}
		if isFormRequest(r) {
			if err := r.ParseForm(); err != nil {
				http.Error(w, "Invalid form submission", http.StatusBadRequest)
				return
			}
			input.Title = r.FormValue("Title")
			input.Slug = r.FormValue("Slug")
			input.Body = r.FormValue("Body")
		} else {
			var body struct {
				Title, Slug, Body string
			}
			if err := strictDecode(r, &body); err != nil {
				http.Error(w, "Invalid request", http.StatusBadRequest)
				return
			}
			input.Title = body.Title
			input.Slug = body.Slug
			input.Body = body.Body
		}

		id, err := orchestrators.ExecuteCreatePost(ctx, input, orchestrators.BlogDeps{
			BlogStore: stores.BlogStore,
		})
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		if isHTML {
			http.Redirect(w, r, "/blog", http.StatusSeeOther)
		} else {
			w.WriteHeader(http.StatusCreated)
			writeJSON(w, map[string]string{"ID": id})
		}
		return
	}

	w.WriteHeader(http.StatusMethodNotAllowed)
}

// handleBlogPublish handles POST /blog/{id}/publish.
func handleBlogPublish(w http.ResponseWriter, r *http.Request) {
	if _, ok := middleware.GetSessionFromContext(r.Context()); !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}
	err := orchestrators.ExecutePublishPost(r.Context(), r.PathValue("id"), orchestrators.BlogDeps{
		BlogStore: stores.BlogStore,
	})
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if isHTMLRequest(r) {
		http.Redirect(w, r, "/blog", http.StatusSeeOther)
	} else {
		w.WriteHeader(http.StatusNoContent)
	}
}
