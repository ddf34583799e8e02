package web

import (
	"net/http"

	"portal/internal/adapters/http/middleware"
	"portal/internal/application/orchestrators"
	"portal/internal/domain/feature"
)

// handleFeatures handles GET /features: the catalog plus the flag bag of one
// tenant, for the admin toggle screen. Admin-only via routing.
func handleFeatures(w http.ResponseWriter, r *http.Request) {
	tenantType := r.URL.Query().Get("tenant_type")
	tenantID := r.URL.Query().Get("tenant_id")

	var flags feature.Flags
	if tenantType != "" && tenantID != "" {
		f, err := stores.FeatureFlagStore.GetForTenant(r.Context(), tenantType, tenantID)
		if err != nil {
			internalError(w, err)
			return
		}
		flags = f
	}

	if isHTMLRequest(r) {
		renderTemplate(w, r, "features.html", map[string]any{
			"Catalog":    feature.Catalog(),
			"Flags":      flags,
			"TenantType": tenantType,
			"TenantID":   tenantID,
		})
		return
	}
	writeJSON(w, map[string]any{"Catalog": feature.Catalog(), "Flags": flags})
}

// handleFeatureToggle handles POST /features/toggle. Sets, overrides or
// unsets one flag for a tenant.
func handleFeatureToggle(w http.ResponseWriter, r *http.Request) {
	sess, ok := middleware.GetSessionFromContext(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	input := orchestrators.ToggleFeatureInput{ActorID: sess.AccountID}
	if isFormRequest(r) {
		if err := r.ParseForm(); err != nil {
			http.Error(w, "Invalid form submission", http.StatusBadRequest)
			return
		}
		input.TenantType = r.FormValue("TenantType")
		input.TenantID = r.FormValue("TenantID")
		input.Key = r.FormValue("Key")
		input.Enabled = r.FormValue("Enabled") == "true"
		input.Unset = r.FormValue("Unset") == "true"
	} else {
		var body struct {
			TenantType, TenantID, Key string
			Enabled, Unset            bool
		}
		if err := strictDecode(r, &body); err != nil {
			http.Error(w, "Invalid request", http.StatusBadRequest)
			return
		}
		input.TenantType = body.TenantType
		input.TenantID = body.TenantID
		input.Key = body.Key
		input.Enabled = body.Enabled
		input.Unset = body.Unset
	}

	err := orchestrators.ExecuteToggleFeature(r.Context(), input, orchestrators.ToggleFeatureDeps{
		FlagStore:  stores.FeatureFlagStore,
		AuditStore: stores.AuditStore,
	})
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if isHTMLRequest(r) {
		http.Redirect(w, r, "/features?tenant_type="+input.TenantType+"&tenant_id="+input.TenantID, http.StatusSeeOther)
	} else {
		w.WriteHeader(http.StatusNoContent)
	}
}
