package web

import (
	"net/http"
	"strconv"

	"portal/internal/adapters/http/middleware"
	"portal/internal/application/orchestrators"
	"portal/internal/domain/booking"
)

// syncTenant derives the Sync tenant from the session context, project first.
func syncTenant(sess middleware.Session) (tenantType, tenantID string) {
	if sess.CurrentProjectID != "" {
		return booking.TenantProject, sess.CurrentProjectID
	}
	if sess.CurrentOrgID != "" {
		return booking.TenantOrganization, sess.CurrentOrgID
	}
	return booking.TenantOrganization, sess.OrgID
}

// handleSyncEventTypes handles GET (list) and POST (upsert) for /sync/event-types.
// Routing config is stored here; scheduling happens in the booking backend.
func handleSyncEventTypes(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	sess, ok := middleware.GetSessionFromContext(ctx)
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}
	isHTML := isHTMLRequest(r)
	tenantType, tenantID := syncTenant(sess)
	if tenantID == "" {
		http.Error(w, "no Sync tenant in context", http.StatusBadRequest)
		return
	}

	if r.Method == "GET" {
		events, err := stores.BookingStore.ListByTenant(ctx, tenantType, tenantID)
		if err != nil {
			internalError(w, err)
			return
		}
		if isHTML {
			renderTemplate(w, r, "sync.html", map[string]any{
				"EventTypes": events,
			})
			return
		}
		writeJSON(w, map[string]any{"EventTypes": events})
		return
	}

	if r.Method == "POST" {
		input := orchestrators.UpsertEventTypeInput{
			TenantType: tenantType,
			TenantID:   tenantID,
		}
		if isFormRequest(r) {
			if err := r.ParseForm(); err != nil {
				http.Error(w, "Invalid form submission", http.StatusBadRequest)
				return
			}
			input.ID = r.FormValue("ID")
			input.Name = r.FormValue("Name")
			input.Slug = r.FormValue("Slug")
			input.Routing = r.FormValue("Routing")
			input.DurationMinutes, _ = strconv.Atoi(r.FormValue("DurationMinutes"))
			input.BufferMinutes, _ = strconv.Atoi(r.FormValue("BufferMinutes"))
			for _, id := range r.Form["HostAccountID"] {
				input.Hosts = append(input.Hosts, booking.Host{AccountID: id, Weight: 1})
			}
		} else {
			var body struct {
				ID, Name, Slug, Routing        string
				DurationMinutes, BufferMinutes int
				Hosts                          []booking.Host
			}
			if err := strictDecode(r, &body); err != nil {
				http.Error(w, "Invalid request", http.StatusBadRequest)
				return
			}
			input.ID = body.ID
			input.Name = body.Name
			input.Slug = body.Slug
			input.Routing = body.Routing
			input.DurationMinutes = body.DurationMinutes
			input.BufferMinutes = body.BufferMinutes
			input.Hosts = body.Hosts
		}

		id, err := orchestrators.ExecuteUpsertEventType(ctx, input, orchestrators.BookingDeps{
			BookingStore: stores.BookingStore,
		})
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		if isHTML {
			http.Redirect(w, r, "/sync/event-types", http.StatusSeeOther)
		} else {
			w.WriteHeader(http.StatusCreated)
			writeJSON(w, map[string]string{"ID": id})
		}
		return
	}

	w.WriteHeader(http.StatusMethodNotAllowed)
}

// handleSyncEventTypeDelete handles POST /sync/event-types/{id}/delete.
func handleSyncEventTypeDelete(w http.ResponseWriter, r *http.Request) {
	if _, ok := middleware.GetSessionFromContext(r.Context()); !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}
	err := orchestrators.ExecuteDeleteEventType(r.Context(), r.PathValue("id"), orchestrators.BookingDeps{
		BookingStore: stores.BookingStore,
	})
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if isHTMLRequest(r) {
		http.Redirect(w, r, "/sync/event-types", http.StatusSeeOther)
	} else {
		w.WriteHeader(http.StatusNoContent)
	}
}
