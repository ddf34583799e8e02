package blog

import (
	"errors"
	"strings"
	"time"
)

// Post status constants
const (
	StatusDraft     = "draft"
	StatusPublished = "published"
)

// Tenant type constants for post ownership.
const (
	TenantOrganization = "organization"
	TenantProject      = "project"
)

// Domain errors
var (
	ErrEmptyTitle       = errors.New("post title cannot be empty")
	ErrEmptySlug        = errors.New("post slug cannot be empty")
	ErrEmptyBody        = errors.New("post body cannot be empty")
	ErrEmptyTenant      = errors.New("post must belong to a tenant")
	ErrAlreadyPublished = errors.New("post is already published")
)

// Post is a blog entry owned by a tenant (organization or project). Body is
// markdown, rendered safely when displayed.
type Post struct {
	ID          string
	TenantType  string // organization, project
	TenantID    string
	Title       string
	Slug        string
	Body        string
	AuthorID    string
	Status      string
	PublishedAt time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Validate checks if the Post has valid data.
// PRE: Post struct is populated
// POST: Returns nil if valid, error otherwise
func (p *Post) Validate() error {
	if strings.TrimSpace(p.Title) == "" {
		return ErrEmptyTitle
	}
	if p.Slug == "" {
		return ErrEmptySlug
	}
	if strings.TrimSpace(p.Body) == "" {
		return ErrEmptyBody
	}
	if p.TenantType == "" || p.TenantID == "" {
		return ErrEmptyTenant
	}
	return nil
}

// Publish transitions a draft post to published.
// PRE: Post is in draft status
// POST: Status is published, PublishedAt recorded
func (p *Post) Publish(now time.Time) error {
	if p.Status == StatusPublished {
		return ErrAlreadyPublished
	}
	p.Status = StatusPublished
	p.PublishedAt = now
	return nil
}

// IsPublished returns true for live posts.
// INVARIANT: Post fields are not mutated
func (p *Post) IsPublished() bool {
	return p.Status == StatusPublished
}
