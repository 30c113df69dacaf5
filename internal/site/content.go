package site

import (
	"time"

	"github.com/angelmondragon/clubhouse-backend/internal/media"
	"github.com/angelmondragon/clubhouse-backend/pkg/db/models"
	"github.com/angelmondragon/clubhouse-backend/pkg/types"
	"github.com/google/uuid"
)

type CreateFAQInput struct {
	Question   string `json:"question" validate:"required,min=2"`
	AnswerHTML string `json:"answerHtml" validate:"required,min=1"`
	Sort       *int   `json:"sort,omitempty"`
	IsActive   *bool  `json:"isActive,omitempty"`
}

type UpdateFAQInput struct {
	Question   *string `json:"question,omitempty" validate:"omitempty,min=2"`
	AnswerHTML *string `json:"answerHtml,omitempty" validate:"omitempty,min=1"`
	Sort       *int    `json:"sort,omitempty"`
	IsActive   *bool   `json:"isActive,omitempty"`
}

func (in UpdateFAQInput) updates() map[string]any {
	out := map[string]any{}
	if in.Question != nil {
		out["question"] = *in.Question
	}
	if in.AnswerHTML != nil {
		out["answer_html"] = *in.AnswerHTML
	}
	if in.Sort != nil {
		out["sort"] = *in.Sort
	}
	if in.IsActive != nil {
		out["is_active"] = *in.IsActive
	}
	return out
}

type HighlightView struct {
	ID           uuid.UUID        `json:"id"`
	Title        string           `json:"title"`
	VideoURL     string           `json:"videoUrl"`
	DurationSec  *int             `json:"durationSec"`
	PublishedAt  *time.Time       `json:"publishedAt"`
	Sort         int              `json:"sort"`
	IsActive     bool             `json:"isActive"`
	ThumbnailID  *uuid.UUID       `json:"thumbnailId"`
	ThumbnailURL *string          `json:"thumbnailUrl"`
	Thumbnail    *media.AssetView `json:"thumbnail,omitempty"`
	CreatedAt    time.Time        `json:"createdAt"`
}

func toHighlightView(h models.Highlight, urls media.URLResolver) HighlightView {
	return HighlightView{
		ID:           h.ID,
		Title:        h.Title,
		VideoURL:     h.VideoURL,
		DurationSec:  h.DurationSec,
		PublishedAt:  h.PublishedAt,
		Sort:         h.Sort,
		IsActive:     h.IsActive,
		ThumbnailID:  h.ThumbnailID,
		ThumbnailURL: urls.AssetURL(h.Thumbnail),
		Thumbnail:    urls.View(h.Thumbnail),
		CreatedAt:    h.CreatedAt,
	}
}

// CreateHighlightInput accepts absolute or relative video URLs.
type CreateHighlightInput struct {
	Title       string     `json:"title" validate:"required,min=2"`
	VideoURL    string     `json:"videoUrl" validate:"required,min=1"`
	DurationSec *int       `json:"durationSec,omitempty" validate:"omitempty,min=0"`
	PublishedAt *time.Time `json:"publishedAt,omitempty"`
	ThumbnailID *uuid.UUID `json:"thumbnailId,omitempty"`
	Sort        *int       `json:"sort,omitempty"`
	IsActive    *bool      `json:"isActive,omitempty"`
}

type UpdateHighlightInput struct {
	Title       *string                   `json:"title,omitempty" validate:"omitempty,min=2"`
	VideoURL    *string                   `json:"videoUrl,omitempty" validate:"omitempty,min=1"`
	DurationSec types.Nullable[int]       `json:"durationSec"`
	PublishedAt types.Nullable[time.Time] `json:"publishedAt"`
	ThumbnailID types.NullableUUID        `json:"thumbnailId"`
	Sort        *int                      `json:"sort,omitempty"`
	IsActive    *bool                     `json:"isActive,omitempty"`
}

func (in UpdateHighlightInput) updates() map[string]any {
	out := map[string]any{}
	if in.Title != nil {
		out["title"] = *in.Title
	}
	if in.VideoURL != nil {
		out["video_url"] = *in.VideoURL
	}
	if in.DurationSec.Set {
		out["duration_sec"] = in.DurationSec.Value
	}
	if in.PublishedAt.Set {
		out["published_at"] = in.PublishedAt.Value
	}
	if in.ThumbnailID.Set {
		out["thumbnail_id"] = in.ThumbnailID.Value
	}
	if in.Sort != nil {
		out["sort"] = *in.Sort
	}
	if in.IsActive != nil {
		out["is_active"] = *in.IsActive
	}
	return out
}
