package orchestrators

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"portal/internal/domain/blog"

	"github.com/google/uuid"
)

// BlogStore defines the store interface needed by the blog orchestrators.
type BlogStore interface {
	GetByID(ctx context.Context, id string) (blog.Post, error)
	Save(ctx context.Context, p blog.Post) error
}

// BlogDeps holds dependencies for the blog orchestrators.
type BlogDeps struct {
	BlogStore BlogStore
}

// CreatePostInput carries input for ExecuteCreatePost.
type CreatePostInput struct {
	TenantType string // organization, project
	TenantID   string
	Title      string
	Slug       string // derived from title when empty
	Body       string
	AuthorID   string
}

// ExecuteCreatePost drafts a new blog post for a tenant.
// PRE: Valid title, body and tenant
// POST: Post persisted in draft status
func ExecuteCreatePost(ctx context.Context, input CreatePostInput, deps BlogDeps) (string, error) {
	p := blog.Post{
		ID:         uuid.New().String(),
		TenantType: input.TenantType,
		TenantID:   input.TenantID,
		Title:      input.Title,
		Slug:       input.Slug,
		Body:       input.Body,
		AuthorID:   input.AuthorID,
		Status:     blog.StatusDraft,
		CreatedAt:  time.Now(),
	}
	if p.Slug == "" {
		p.Slug = Slugify(input.Title)
	}
	if err := p.Validate(); err != nil {
		return "", err
	}
	if err := deps.BlogStore.Save(ctx, p); err != nil {
		return "", err
	}

	slog.Info("blog_event", "event", "post_created", "post_id", p.ID, "tenant_id", p.TenantID)
	return p.ID, nil
}

// ExecutePublishPost takes a draft post live.
// PRE: Post is in draft status
// POST: Status is published, PublishedAt recorded
func ExecutePublishPost(ctx context.Context, postID string, deps BlogDeps) error {
	p, err := deps.BlogStore.GetByID(ctx, postID)
	if err != nil {
		return err
	}
	if err := p.Publish(time.Now()); err != nil {
		return err
	}
	p.UpdatedAt = time.Now()
	if err := deps.BlogStore.Save(ctx, p); err != nil {
		return err
	}

	slog.Info("blog_event", "event", "post_published", "post_id", p.ID)
	return nil
}

// Slugify lowercases a title and collapses non-alphanumeric runs to hyphens.
func Slugify(title string) string {
	var b strings.Builder
	lastHyphen := true // suppress a leading hyphen
	for _, r := range strings.ToLower(title) {
		switch {
		case r >= 'a' && r <= 'z' || r >= '0' && r <= '9':
			b.WriteRune(r)
			lastHyphen = false
		default:
			if !lastHyphen {
				b.WriteByte('-')
				lastHyphen = true
			}
		}
	}
	return strings.TrimSuffix(b.String(), "-")
}
