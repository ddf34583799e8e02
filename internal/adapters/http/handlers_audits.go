package web

import (
	"net/http"
	"strconv"

	auditStore "portal/internal/adapters/storage/audit"
)

// handleAudits handles GET /audits: the append-only audit trail, newest first.
// Admin-only via routing.
func handleAudits(w http.ResponseWriter, r *http.Request) {
	filter := auditStore.ListFilter{
		OrgID:   r.URL.Query().Get("org_id"),
		ActorID: r.URL.Query().Get("actor_id"),
		Limit:   50,
	}
	if limit, err := strconv.Atoi(r.URL.Query().Get("limit")); err == nil && limit > 0 && limit <= 500 {
		filter.Limit = limit
	}

	entries, err := stores.AuditStore.List(r.Context(), filter)
	if err != nil {
		internalError(w, err)
		return
	}

	if isHTMLRequest(r) {
		renderTemplate(w, r, "audits.html", map[string]any{
			"Entries": entries,
		})
		return
	}
	writeJSON(w, map[string]any{"Entries": entries})
}

// handleAuditsMarkRead handles POST /audits/read. Clears the Audits badge.
func handleAuditsMarkRead(w http.ResponseWriter, r *http.Request) {
	if err := stores.AuditStore.MarkAllRead(r.Context()); err != nil {
		internalError(w, err)
		return
	}
	if isHTMLRequest(r) {
		http.Redirect(w, r, "/audits", http.StatusSeeOther)
	} else {
		w.WriteHeader(http.StatusNoContent)
	}
}
