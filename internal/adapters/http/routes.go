package web

import (
	"net/http"

	"portal/internal/adapters/http/middleware"
)

// registerRoutes wires every portal route. Handlers that serve both GET and
// POST register without a method prefix and branch internally; action
// endpoints use method patterns.
func registerRoutes(mux *http.ServeMux) {
	mux.HandleFunc("GET /healthz", handleHealthz)
	mux.HandleFunc("/login", handleLogin)
	mux.HandleFunc("POST /logout", handleLogout)

	requireAuth := func(h http.HandlerFunc) http.Handler {
		return middleware.RequireAuth(h)
	}
	requireAdmin := func(h http.HandlerFunc) http.Handler {
		return middleware.RequireAdmin(h)
	}

	// Dashboard and navigation
	mux.Handle("GET /{$}", requireAuth(func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
	}))
	mux.Handle("GET /dashboard", requireAuth(handleDashboard))
	mux.Handle("GET /api/navigation", requireAuth(handleGetNavigation))

	// Context switching
	mux.Handle("POST /context/org", requireAuth(handleSwitchOrg))
	mux.Handle("POST /context/org/exit", requireAuth(handleExitOrg))
	mux.Handle("POST /context/project", requireAuth(handleSwitchProject))
	mux.Handle("POST /context/project/exit", requireAuth(handleExitProject))

	// Clients, projects and leads
	mux.Handle("/clients", requireAdmin(handleClients))
	mux.Handle("/projects", requireAdmin(handleProjects))
	mux.Handle("POST /projects/{id}/archive", requireAdmin(handleProjectArchive))
	mux.Handle("POST /projects/{id}/delete", requireAdmin(handleProjectDelete))
	mux.Handle("/leads", requireAuth(handleLeads))
	mux.Handle("GET /leads/mine", requireAuth(handleMyLeads))
	mux.Handle("POST /leads/{id}/assign", requireAdmin(handleLeadAssign))
	mux.Handle("POST /leads/{id}/status", requireAuth(handleLeadAdvance))

	// Proposals
	mux.Handle("/proposals", requireAuth(handleProposals))
	mux.Handle("POST /proposals/{id}/send", requireAdmin(handleProposalSend))
	mux.Handle("POST /proposals/{id}/respond", requireAuth(handleProposalRespond))

	// Billing. The nav entry routes to the section root.
	mux.Handle("GET /billing", requireAuth(func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/billing/invoices", http.StatusSeeOther)
	}))
	mux.Handle("/billing/invoices", requireAuth(handleInvoices))
	mux.Handle("POST /billing/invoices/{id}/issue", requireAdmin(handleInvoiceIssue))
	mux.Handle("POST /billing/invoices/{id}/paid", requireAdmin(handleInvoicePaid))
	mux.Handle("POST /billing/invoices/{id}/void", requireAdmin(handleInvoiceVoid))

	// Messages
	mux.Handle("/messages", requireAuth(handleMessages))
	mux.Handle("POST /messages/{id}/read", requireAuth(handleMessageRead))

	// Audit trail
	mux.Handle("GET /audits", requireAdmin(handleAudits))
	mux.Handle("POST /audits/read", requireAdmin(handleAuditsMarkRead))

	// Feature flags
	mux.Handle("GET /features", requireAdmin(handleFeatures))
	mux.Handle("POST /features/toggle", requireAdmin(handleFeatureToggle))

	// Blog
	mux.Handle("/blog", requireAuth(handleBlog))
	mux.Handle("POST /blog/{id}/publish", requireAuth(handleBlogPublish))

	// Sync scheduling
	mux.Handle("/sync/event-types", requireAuth(handleSyncEventTypes))
	mux.Handle("POST /sync/event-types/{id}/delete", requireAuth(handleSyncEventTypeDelete))

	// Team. Listing is org-scoped for members; provisioning stays admin-only
	// inside the handler.
	mux.Handle("GET /team", requireAuth(func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/team/accounts", http.StatusSeeOther)
	}))
	mux.Handle("/team/accounts", requireAuth(handleAccounts))
}
