package post

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/yun0-0514/dev-blog/internal/domain/category"
)

type PostStatus string

const (
	StatusDraft     PostStatus = "draft"
	StatusPublished PostStatus = "published"
	StatusArchived  PostStatus = "archived"
)

type Post struct {
	ID            uuid.UUID          `json:"id"`
	Title         string             `json:"title"`
	Slug          string             `json:"slug"`
	Excerpt       *string            `json:"excerpt"`
	Content       string             `json:"content"`
	CoverImageURL *string            `json:"cover_image_url"`
	ViewCount     int                `json:"view_count"`
	Status        PostStatus         `json:"status"`
	AuthorID      *string            `json:"author_id"`
	CategoryID    *uuid.UUID         `json:"category_id"`
	Category      *category.Category `json:"category,omitempty"`
	CreatedAt     time.Time          `json:"created_at"`
	UpdatedAt     time.Time          `json:"updated_at"`
}

// Summary is the excerpt when present, otherwise the first runes of content.
func (p *Post) Summary(maxRunes int) string {
	if p.Excerpt != nil && *p.Excerpt != "" {
		return *p.Excerpt
	}
	runes := []rune(p.Content)
	if len(runes) <= maxRunes {
		return p.Content
	}
	return string(runes[:maxRunes]) + "…"
}

type Repository interface {
	// ListPublished returns published posts newest first, each with its category.
	ListPublished(ctx context.Context, limit, offset int) ([]*Post, error)
}
