package web

import (
	"bytes"
	"encoding/json"
	"fmt"
	"html/template"
	"log/slog"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/csrf"
	"github.com/yuin/goldmark"
	goldmarkHTML "github.com/yuin/goldmark/renderer/html"

	"portal/internal/adapters/http/middleware"
	"portal/internal/application/orchestrators"
	"portal/internal/application/projections"
)

// timeNow is a variable for testability.
var timeNow = time.Now

// mdRenderer is a goldmark instance configured for safe HTML output.
// Raw HTML in markdown input is escaped (WithUnsafe is NOT set), preventing XSS.
var mdRenderer = goldmark.New(
	goldmark.WithRendererOptions(
		goldmarkHTML.WithHardWraps(),
	),
)

// generateID creates a new UUID string.
func generateID() string {
	return uuid.New().String()
}

// internalError logs the real error and returns a generic message to the client.
// This prevents leaking internal details per OWASP A05.
func internalError(w http.ResponseWriter, err error) {
	slog.Error("internal_error", "error", err.Error())
	http.Error(w, "internal server error", http.StatusInternalServerError)
}

// strictDecode decodes JSON from the request body, rejecting unknown fields.
func strictDecode(r *http.Request, v any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	return dec.Decode(v)
}

const templatesDir = "internal/adapters/http/templates"

func isHTMLRequest(r *http.Request) bool {
	accept := r.Header.Get("Accept")
	return strings.Contains(accept, "text/html") || strings.Contains(accept, "application/xhtml+xml")
}

func isFormRequest(r *http.Request) bool {
	return strings.HasPrefix(r.Header.Get("Content-Type"), "application/x-www-form-urlencoded")
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(v)
}

// navigationDeps assembles the projection dependencies from the global stores.
func navigationDeps() projections.GetNavigationDeps {
	return projections.GetNavigationDeps{
		AccountStore: stores.AccountStore,
		OrgStore:     stores.OrganizationStore,
		ProjectStore: stores.ProjectStore,
		FlagStore:    stores.FeatureFlagStore,
		BadgeDeps: projections.GetBadgesDeps{
			MessageStore: stores.MessageStore,
			AuditStore:   stores.AuditStore,
			InvoiceStore: stores.InvoiceStore,
			LeadStore:    stores.LeadStore,
		},
		AgencyOrgID: AgencyOrgID,
	}
}

// resolveNavigation runs the navigation projection for the current session.
func resolveNavigation(r *http.Request, sess middleware.Session) (projections.NavigationResult, error) {
	return projections.QueryGetNavigation(r.Context(), projections.GetNavigationQuery{
		AccountID:        sess.AccountID,
		CurrentOrgID:     sess.CurrentOrgID,
		CurrentProjectID: sess.CurrentProjectID,
	}, navigationDeps())
}

func renderTemplate(w http.ResponseWriter, r *http.Request, templateName string, data any) {
	sess, ok := middleware.GetSessionFromContext(r.Context())
	role := ""
	email := ""
	isAdmin := false
	if ok {
		role = sess.Role
		email = sess.Email
		isAdmin = sess.IsAdminViewer()
	}

	funcMap := template.FuncMap{
		"currentRole":  func() string { return role },
		"currentEmail": func() string { return email },
		"isLoggedIn":   func() bool { return role != "" },
		"isAdmin":      func() bool { return isAdmin },
		"csrfToken":    func() string { return csrf.Token(r) },
		"list":         func(items ...string) []string { return items },
		"renderMarkdown": func(md string) template.HTML {
			var buf bytes.Buffer
			if err := mdRenderer.Convert([]byte(md), &buf); err != nil {
				return template.HTML(template.HTMLEscapeString(md))
			}
			return template.HTML(buf.String())
		},
		"add": func(a, b int) int { return a + b },
		"sub": func(a, b int) int { return a - b },
		"cents": func(c int64) string {
			return fmt.Sprintf("%d.%02d", c/100, c%100)
		},
		"paginationQuery": func(page int, search, status string, perPage int) template.URL {
			q := fmt.Sprintf("page=%d", page)
			if search != "" {
				q += "&q=" + search
			}
			if status != "" {
				q += "&status=" + status
			}
			if perPage > 0 {
				q += fmt.Sprintf("&per_page=%d", perPage)
			}
			return template.URL(q)
		},
	}

	layoutPath := filepath.Join(templatesDir, "layout.html")
	pagePath := filepath.Join(templatesDir, templateName)
	tpl, err := template.New("layout.html").Funcs(funcMap).ParseFiles(layoutPath, pagePath)
	if err != nil {
		http.Error(w, "Template error: "+err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := tpl.Execute(w, data); err != nil {
		http.Error(w, "Render error: "+err.Error(), http.StatusInternalServerError)
		return
	}
}

// handleLogin handles GET (form) and POST (authenticate) for /login
func handleLogin(w http.ResponseWriter, r *http.Request) {
	if r.Method == "GET" {
		// If already logged in, redirect to dashboard
		if _, ok := middleware.GetSessionFromContext(r.Context()); ok {
			http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
			return
		}
		renderTemplate(w, r, "login.html", map[string]any{
			"CSRFToken": csrf.Token(r),
		})
		return
	}

	if r.Method == "POST" {
		if err := r.ParseForm(); err != nil {
			http.Error(w, "Invalid form submission", http.StatusBadRequest)
			return
		}

		input := orchestrators.LoginInput{
			Email:    r.FormValue("Email"),
			Password: r.FormValue("Password"),
		}

		deps := orchestrators.LoginDeps{
			AccountStore: stores.AccountStore,
		}

		result, err := orchestrators.ExecuteLogin(r.Context(), input, deps)
		if err != nil {
			renderTemplate(w, r, "login.html", map[string]any{
				"CSRFToken": csrf.Token(r),
				"Error":     err.Error(),
			})
			return
		}

		token, err := sessions.Create(middleware.Session{
			AccountID:    result.AccountID,
			Email:        result.Email,
			Role:         result.Role,
			TeamRole:     result.TeamRole,
			AccessLevel:  result.AccessLevel,
			OrgID:        result.OrgID,
			IsSuperAdmin: result.IsSuperAdmin,
		})
		if err != nil {
			http.Error(w, "Session error", http.StatusInternalServerError)
			return
		}

		middleware.SetSessionCookie(w, token)
		http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
		return
	}

	w.WriteHeader(http.StatusMethodNotAllowed)
}

// handleLogout handles POST /logout
func handleLogout(w http.ResponseWriter, r *http.Request) {
	if r.Method != "POST" {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	if token := middleware.SessionToken(r); token != "" {
		sessions.Delete(token)
	}
	middleware.ClearSessionCookie(w)
	http.Redirect(w, r, "/login", http.StatusSeeOther)
}

// handleDashboard renders the dashboard for the session's rendering mode.
// The same route serves the admin portal, the organization and project
// dashboards and the sales rep view; the resolved context decides which.
func handleDashboard(w http.ResponseWriter, r *http.Request) {
	sess, ok := middleware.GetSessionFromContext(r.Context())
	if !ok {
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	}

	nav, err := resolveNavigation(r, sess)
	if err != nil {
		internalError(w, err)
		return
	}

	dash := projections.QueryGetDashboard(r.Context(), sess.AccountID, nav, projections.GetDashboardDeps{
		OrgStore:      stores.OrganizationStore,
		ProjectStore:  stores.ProjectStore,
		ProposalStore: stores.ProposalStore,
		InvoiceStore:  stores.InvoiceStore,
		MessageStore:  stores.MessageStore,
		AuditStore:    stores.AuditStore,
		LeadStore:     stores.LeadStore,
		BookingStore:  stores.BookingStore,
	})

	if isHTMLRequest(r) {
		renderTemplate(w, r, "dashboard.html", map[string]any{
			"Mode":      string(nav.Mode),
			"Entries":   nav.Entries,
			"Badges":    nav.Badges,
			"Dashboard": dash,
			"OrgName":   nav.Context.OrgName(),
		})
		return
	}
	writeJSON(w, map[string]any{
		"Mode":      nav.Mode,
		"Entries":   nav.Entries,
		"Badges":    nav.Badges,
		"Dashboard": dash,
	})
}

// handleHealthz reports process liveness.
func handleHealthz(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	fmt.Fprintln(w, "ok")
}
