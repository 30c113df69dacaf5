package news

import (
	"time"

	"github.com/angelmondragon/clubhouse-backend/internal/media"
	"github.com/angelmondragon/clubhouse-backend/pkg/db/models"
	"github.com/angelmondragon/clubhouse-backend/pkg/types"
	"github.com/google/uuid"
)

// Summary is the list representation of a post.
type Summary struct {
	ID          uuid.UUID  `json:"id"`
	Slug        string     `json:"slug"`
	Title       string     `json:"title"`
	Excerpt     *string    `json:"excerpt"`
	PublishedAt *time.Time `json:"publishedAt"`
	IsFeatured  bool       `json:"isFeatured"`
	HeroURL     *string    `json:"heroUrl"`
}

// Post is the full article, used by the detail page and the admin console.
type Post struct {
	Summary
	ContentHTML string           `json:"contentHtml"`
	HeroMediaID *uuid.UUID       `json:"heroMediaId"`
	HeroMedia   *media.AssetView `json:"heroMedia,omitempty"`
	CreatedAt   time.Time        `json:"createdAt"`
	UpdatedAt   time.Time        `json:"updatedAt"`
}

// Page is a page of published posts.
type Page struct {
	Page     int       `json:"page"`
	PageSize int       `json:"pageSize"`
	Total    int64     `json:"total"`
	Items    []Summary `json:"items"`
}

func toSummary(p models.NewsPost, urls media.URLResolver) Summary {
	return Summary{
		ID:          p.ID,
		Slug:        p.Slug,
		Title:       p.Title,
		Excerpt:     p.Excerpt,
		PublishedAt: p.PublishedAt,
		IsFeatured:  p.IsFeatured,
		HeroURL:     urls.AssetURL(p.HeroMedia),
	}
}

func toPost(p models.NewsPost, urls media.URLResolver) Post {
	return Post{
		Summary:     toSummary(p, urls),
		ContentHTML: p.ContentHTML,
		HeroMediaID: p.HeroMediaID,
		HeroMedia:   urls.View(p.HeroMedia),
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

type CreatePostInput struct {
	Slug        string     `json:"slug" validate:"required,min=2"`
	Title       string     `json:"title" validate:"required,min=2"`
	Excerpt     *string    `json:"excerpt,omitempty"`
	ContentHTML string     `json:"contentHtml" validate:"required"`
	IsFeatured  bool       `json:"isFeatured"`
	HeroMediaID *uuid.UUID `json:"heroMediaId,omitempty"`
	PublishedAt *time.Time `json:"publishedAt,omitempty"`
}

// UpdatePostInput is a partial update. Sending publishedAt null unpublishes.
type UpdatePostInput struct {
	Slug        *string                   `json:"slug,omitempty" validate:"omitempty,min=2"`
	Title       *string                   `json:"title,omitempty" validate:"omitempty,min=2"`
	Excerpt     types.NullableString      `json:"excerpt"`
	ContentHTML *string                   `json:"contentHtml,omitempty"`
	IsFeatured  *bool                     `json:"isFeatured,omitempty"`
	HeroMediaID types.NullableUUID        `json:"heroMediaId"`
	PublishedAt types.Nullable[time.Time] `json:"publishedAt"`
}

func (in UpdatePostInput) updates() map[string]any {
	out := map[string]any{}
	if in.Slug != nil {
		out["slug"] = *in.Slug
	}
	if in.Title != nil {
		out["title"] = *in.Title
	}
	if in.Excerpt.Set {
		out["excerpt"] = in.Excerpt.Value
	}
	if in.ContentHTML != nil {
		out["content_html"] = *in.ContentHTML
	}
	if in.IsFeatured != nil {
		out["is_featured"] = *in.IsFeatured
	}
	if in.HeroMediaID.Set {
		out["hero_media_id"] = in.HeroMediaID.Value
	}
	if in.PublishedAt.Set {
		out["published_at"] = in.PublishedAt.Value
	}
	return out
}
