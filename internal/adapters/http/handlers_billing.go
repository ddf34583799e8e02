package web

import (
	"net/http"
	"strconv"
	"time"

	"portal/internal/adapters/http/middleware"
	"portal/internal/application/orchestrators"
	"portal/internal/domain/invoice"
)

func invoiceDeps() orchestrators.InvoiceDeps {
	return orchestrators.InvoiceDeps{
		InvoiceStore: stores.InvoiceStore,
		AuditStore:   stores.AuditStore,
	}
}

// handleInvoices handles GET (list) and POST (create) for /billing/invoices.
// Admins see every invoice; org members only their organization's.
func handleInvoices(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	sess, ok := middleware.GetSessionFromContext(ctx)
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}
	isHTML := isHTMLRequest(r)

	if r.Method == "GET" {
		orgID := sess.CurrentOrgID
		if orgID == "" && !sess.IsAdminViewer() {
			orgID = sess.OrgID
		}

		invoices, err := listInvoices(r, orgID, sess.IsAdminViewer())
		if err != nil {
			internalError(w, err)
			return
		}

		if isHTML {
			renderTemplate(w, r, "invoices.html", map[string]any{
				"Invoices": invoices,
			})
			return
		}
		writeJSON(w, map[string]any{"Invoices": invoices})
		return
	}

	if r.Method == "POST" {
		if !sess.IsAdminViewer() {
			http.Error(w, "Forbidden", http.StatusForbidden)
			return
		}
		input := orchestrators.CreateInvoiceInput{}
		if isFormRequest(r) {
			if err := r.ParseForm(); err != nil {
				http.Error(w, "Invalid form submission", http.StatusBadRequest)
				return
			}
			input.OrgID = r.FormValue("OrgID")
			input.ProjectID = r.FormValue("ProjectID")
			input.Number = r.FormValue("Number")
			input.Currency = r.FormValue("Currency")
			input.AmountCents, _ = strconv.ParseInt(r.FormValue("AmountCents"), 10, 64)
			if due := r.FormValue("DueDate"); due != "" {
				if t, err := time.Parse("2006-01-02", due); err == nil {
					input.DueDate = t
				}
			}
		} else {
			var body struct {
				OrgID, ProjectID, Number, Currency string
				AmountCents                        int64
				DueDate                            string
			}
			if err := strictDecode(r, &body); err != nil {
				http.Error(w, "Invalid request", http.StatusBadRequest)
				return
			}
			input.OrgID = body.OrgID
			input.ProjectID = body.ProjectID
			input.Number = body.Number
			input.Currency = body.Currency
			input.AmountCents = body.AmountCents
			if body.DueDate != "" {
				if t, err := time.Parse("2006-01-02", body.DueDate); err == nil {
					input.DueDate = t
				}
			}
		}

		id, err := orchestrators.ExecuteCreateInvoice(ctx, input, invoiceDeps())
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		if isHTML {
			http.Redirect(w, r, "/billing/invoices", http.StatusSeeOther)
		} else {
			w.WriteHeader(http.StatusCreated)
			writeJSON(w, map[string]string{"ID": id})
		}
		return
	}

	w.WriteHeader(http.StatusMethodNotAllowed)
}

func listInvoices(r *http.Request, orgID string, isAdmin bool) ([]invoice.Invoice, error) {
	ctx := r.Context()
	if orgID != "" {
		return stores.InvoiceStore.ListByOrgID(ctx, orgID)
	}
	if !isAdmin {
		return nil, nil
	}
	return stores.InvoiceStore.List(ctx)
}

// handleInvoiceIssue handles POST /billing/invoices/{id}/issue.
func handleInvoiceIssue(w http.ResponseWriter, r *http.Request) {
	sess, ok := middleware.GetSessionFromContext(r.Context())
	if !ok || !sess.IsAdminViewer() {
		http.Error(w, "Forbidden", http.StatusForbidden)
		return
	}
	err := orchestrators.ExecuteIssueInvoice(r.Context(), r.PathValue("id"), sess.AccountID, invoiceDeps())
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if isHTMLRequest(r) {
		http.Redirect(w, r, "/billing/invoices", http.StatusSeeOther)
	} else {
		w.WriteHeader(http.StatusNoContent)
	}
}

// handleInvoicePaid handles POST /billing/invoices/{id}/paid.
func handleInvoicePaid(w http.ResponseWriter, r *http.Request) {
	sess, ok := middleware.GetSessionFromContext(r.Context())
	if !ok || !sess.IsAdminViewer() {
		http.Error(w, "Forbidden", http.StatusForbidden)
		return
	}
	err := orchestrators.ExecuteMarkInvoicePaid(r.Context(), r.PathValue("id"), invoiceDeps())
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if isHTMLRequest(r) {
		http.Redirect(w, r, "/billing/invoices", http.StatusSeeOther)
	} else {
		w.WriteHeader(http.StatusNoContent)
	}
}

// handleInvoiceVoid handles POST /billing/invoices/{id}/void.
func handleInvoiceVoid(w http.ResponseWriter, r *http.Request) {
	sess, ok := middleware.GetSessionFromContext(r.Context())
	if !ok || !sess.IsAdminViewer() {
		http.Error(w, "Forbidden", http.StatusForbidden)
		return
	}
	err := orchestrators.ExecuteVoidInvoice(r.Context(), r.PathValue("id"), invoiceDeps())
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if isHTMLRequest(r) {
		http.Redirect(w, r, "/billing/invoices", http.StatusSeeOther)
	} else {
		w.WriteHeader(http.StatusNoContent)
	}
}
