package blog

import (
	"errors"
	"testing"
	"time"
)

func TestPostValidate(t *testing.T) {
	valid := Post{
		Title:      "Launch notes",
		Slug:       "launch-notes",
		Body:       "We shipped.",
		TenantType: TenantOrganization,
		TenantID:   "org-1",
	}

	tests := []struct {
		name    string
		mutate  func(p *Post)
		wantErr error
	}{
		{"valid", func(p *Post) {}, nil},
		{"empty title", func(p *Post) { p.Title = " " }, ErrEmptyTitle},
		{"empty slug", func(p *Post) { p.Slug = "" }, ErrEmptySlug},
		{"empty body", func(p *Post) { p.Body = "" }, ErrEmptyBody},
		{"missing tenant", func(p *Post) { p.TenantID = "" }, ErrEmptyTenant},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := valid
			tt.mutate(&p)
			if err := p.Validate(); !errors.Is(err, tt.wantErr) {
				t.Errorf("Validate() = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestPostPublish(t *testing.T) {
	now := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	p := Post{Title: "Launch notes", Slug: "launch-notes", Body: "x", TenantType: TenantProject, TenantID: "proj-1", Status: StatusDraft}

	if err := p.Publish(now); err != nil {
		t.Fatalf("Publish() = %v", err)
	}
	if !p.IsPublished() {
		t.Error("IsPublished() = false after Publish")
	}
	if !p.PublishedAt.Equal(now) {
		t.Errorf("PublishedAt = %v, want %v", p.PublishedAt, now)
	}

	if err := p.Publish(now.Add(time.Hour)); !errors.Is(err, ErrAlreadyPublished) {
		t.Errorf("second Publish() = %v, want ErrAlreadyPublished", err)
	}
}
