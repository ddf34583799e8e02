package project

import "testing"

// TestProject_Validate verifies required fields and status values.
func TestProject_Validate(t *testing.T) {
	tests := []struct {
		name    string
		proj    Project
		wantErr error
	}{
		{"valid", Project{Title: "Acme Website", OrgID: "o1", Status: StatusActive}, nil},
		{"empty title", Project{OrgID: "o1", Status: StatusActive}, ErrEmptyTitle},
		{"missing org", Project{Title: "Site", Status: StatusActive}, ErrEmptyOrgID},
		{"bad status", Project{Title: "Site", OrgID: "o1", Status: "live"}, ErrInvalidStatus},
		{"paused ok", Project{Title: "Site", OrgID: "o1", Status: StatusPaused}, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.proj.Validate(); err != tt.wantErr {
				t.Fatalf("Validate() = %v, want %v", err, tt.wantErr)
			}
		})
	}
}
