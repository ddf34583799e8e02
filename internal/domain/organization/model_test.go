package organization

import "testing"

// TestOrganization_Validate verifies required fields and org_type.
func TestOrganization_Validate(t *testing.T) {
	tests := []struct {
		name    string
		org     Organization
		wantErr error
	}{
		{"valid client", Organization{Name: "Acme Co", Slug: "acme-co", OrgType: TypeClient}, nil},
		{"valid agency", Organization{Name: "Studio", Slug: "studio", OrgType: TypeAgency}, nil},
		{"empty name", Organization{Slug: "acme", OrgType: TypeClient}, ErrEmptyName},
		{"empty slug", Organization{Name: "Acme", OrgType: TypeClient}, ErrEmptySlug},
		{"bad slug", Organization{Name: "Acme", Slug: "Acme Co", OrgType: TypeClient}, ErrInvalidSlug},
		{"bad type", Organization{Name: "Acme", Slug: "acme", OrgType: "vendor"}, ErrInvalidType},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.org.Validate(); err != tt.wantErr {
				t.Fatalf("Validate() = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

// TestOrganization_IsAgency verifies the agency check.
func TestOrganization_IsAgency(t *testing.T) {
	agency := Organization{OrgType: TypeAgency}
	client := Organization{OrgType: TypeClient}

	if !agency.IsAgency() {
		t.Fatalf("expected agency org")
	}
	if client.IsAgency() {
		t.Fatalf("expected client org")
	}
}
