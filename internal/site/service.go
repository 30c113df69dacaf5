package site

import (
	"context"
	"fmt"

	"github.com/angelmondragon/clubhouse-backend/internal/media"
	"github.com/angelmondragon/clubhouse-backend/internal/repo"
	"github.com/angelmondragon/clubhouse-backend/pkg/db"
	"github.com/angelmondragon/clubhouse-backend/pkg/db/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var (
	activeOnly     = repo.Query{Where: "is_active = ?", Args: []any{true}}
	highlightOrder = []string{"sort ASC", "created_at DESC"}
)

// Service owns the global settings row and the small editorial tables shown
// around the public site.
type Service interface {
	// Settings returns nil when the row has never been saved.
	Settings(ctx context.Context) (*SettingsView, error)
	UpsertSettings(ctx context.Context, input SettingsInput) (*SettingsView, error)

	ActiveFAQs(ctx context.Context) ([]models.FAQ, error)
	AdminFAQs(ctx context.Context) ([]models.FAQ, error)
	CreateFAQ(ctx context.Context, input CreateFAQInput) (*models.FAQ, error)
	UpdateFAQ(ctx context.Context, id uuid.UUID, input UpdateFAQInput) (*models.FAQ, error)
	DeleteFAQ(ctx context.Context, id uuid.UUID) error

	ActiveHighlights(ctx context.Context, limit int) ([]HighlightView, error)
	AdminHighlights(ctx context.Context) ([]HighlightView, error)
	CreateHighlight(ctx context.Context, input CreateHighlightInput) (*HighlightView, error)
	UpdateHighlight(ctx context.Context, id uuid.UUID, input UpdateHighlightInput) (*HighlightView, error)
	DeleteHighlight(ctx context.Context, id uuid.UUID) error

	ActiveSocials(ctx context.Context) ([]models.SocialLink, error)
}

type service struct {
	settings   repo.Base
	faqs       repo.CRUD[models.FAQ]
	highlights repo.CRUD[models.Highlight]
	socials    repo.CRUD[models.SocialLink]
	urls       media.URLResolver
}

func NewService(conn *gorm.DB, urls media.URLResolver) (Service, error) {
	if conn == nil {
		return nil, fmt.Errorf("db required")
	}
	return &service{
		settings:   repo.NewBase(conn),
		faqs:       repo.NewCRUD[models.FAQ](conn),
		highlights: repo.NewCRUD[models.Highlight](conn),
		socials:    repo.NewCRUD[models.SocialLink](conn),
		urls:       urls,
	}, nil
}

func (s *service) Settings(ctx context.Context) (*SettingsView, error) {
	row, err := s.loadSettings(ctx, settingsMedia...)
	if err != nil {
		if db.IsNotFound(err) {
			return nil, nil
		}
		return nil, repo.MapError(err, "load settings")
	}
	view := toSettingsView(*row, s.urls)
	return &view, nil
}

func (s *service) UpsertSettings(ctx context.Context, input SettingsInput) (*SettingsView, error) {
	row, err := s.loadSettings(ctx)
	switch {
	case db.IsNotFound(err):
		row = &models.SiteSetting{ID: models.GlobalSettingsID, ClubName: defaultClubName}
	case err != nil:
		return nil, repo.MapError(err, "load settings")
	}
	input.apply(row)

	err = s.settings.DB(ctx).
		Omit(clause.Associations).
		Clauses(clause.OnConflict{Columns: []clause.Column{{Name: "id"}}, UpdateAll: true}).
		Create(row).Error
	if err != nil {
		return nil, repo.MapError(err, "save settings")
	}
	return s.Settings(ctx)
}

func (s *service) loadSettings(ctx context.Context, preload ...string) (*models.SiteSetting, error) {
	q := s.settings.DB(ctx)
	for _, assoc := range preload {
		q = q.Preload(assoc)
	}
	var row models.SiteSetting
	if err := q.Where("id = ?", models.GlobalSettingsID).First(&row).Error; err != nil {
		return nil, err
	}
	return &row, nil
}

func (s *service) ActiveFAQs(ctx context.Context) ([]models.FAQ, error) {
	q := activeOnly
	q.Order = []string{"sort ASC"}
	rows, err := s.faqs.List(ctx, q)
	return rows, repo.MapError(err, "list faqs")
}

func (s *service) AdminFAQs(ctx context.Context) ([]models.FAQ, error) {
	rows, err := s.faqs.List(ctx, repo.Query{Order: []string{"sort ASC"}})
	return rows, repo.MapError(err, "list faqs")
}

func (s *service) CreateFAQ(ctx context.Context, input CreateFAQInput) (*models.FAQ, error) {
	row := &models.FAQ{Question: input.Question, AnswerHTML: input.AnswerHTML, IsActive: true}
	if input.Sort != nil {
		row.Sort = *input.Sort
	}
	if input.IsActive != nil {
		row.IsActive = *input.IsActive
	}
	if err := s.faqs.Create(ctx, row); err != nil {
		return nil, repo.MapError(err, "create faq")
	}
	return row, nil
}

func (s *service) UpdateFAQ(ctx context.Context, id uuid.UUID, input UpdateFAQInput) (*models.FAQ, error) {
	if err := s.faqs.Update(ctx, id, input.updates()); err != nil {
		return nil, repo.MapError(err, "update faq")
	}
	row, err := s.faqs.FindByID(ctx, id)
	return row, repo.MapError(err, "reload faq")
}

func (s *service) DeleteFAQ(ctx context.Context, id uuid.UUID) error {
	return repo.MapError(s.faqs.Delete(ctx, id), "delete faq")
}

func (s *service) ActiveHighlights(ctx context.Context, limit int) ([]HighlightView, error) {
	q := activeOnly
	q.Order = highlightOrder
	q.Limit = limit
	q.Preload = []string{"Thumbnail"}
	return s.listHighlights(ctx, q)
}

func (s *service) AdminHighlights(ctx context.Context) ([]HighlightView, error) {
	return s.listHighlights(ctx, repo.Query{Order: highlightOrder, Preload: []string{"Thumbnail"}})
}

func (s *service) listHighlights(ctx context.Context, q repo.Query) ([]HighlightView, error) {
	rows, err := s.highlights.List(ctx, q)
	if err != nil {
		return nil, repo.MapError(err, "list highlights")
	}
	out := make([]HighlightView, 0, len(rows))
	for _, row := range rows {
		out = append(out, toHighlightView(row, s.urls))
	}
	return out, nil
}

func (s *service) CreateHighlight(ctx context.Context, input CreateHighlightInput) (*HighlightView, error) {
	row := &models.Highlight{
		Title:       input.Title,
		VideoURL:    input.VideoURL,
		DurationSec: input.DurationSec,
		PublishedAt: input.PublishedAt,
		ThumbnailID: input.ThumbnailID,
		IsActive:    true,
	}
	if input.Sort != nil {
		row.Sort = *input.Sort
	}
	if input.IsActive != nil {
		row.IsActive = *input.IsActive
	}
	if err := s.highlights.Create(ctx, row); err != nil {
		return nil, repo.MapError(err, "create highlight")
	}
	return s.reloadHighlight(ctx, row.ID)
}

func (s *service) UpdateHighlight(ctx context.Context, id uuid.UUID, input UpdateHighlightInput) (*HighlightView, error) {
	if err := s.highlights.Update(ctx, id, input.updates()); err != nil {
		return nil, repo.MapError(err, "update highlight")
	}
	return s.reloadHighlight(ctx, id)
}

func (s *service) DeleteHighlight(ctx context.Context, id uuid.UUID) error {
	return repo.MapError(s.highlights.Delete(ctx, id), "delete highlight")
}

func (s *service) reloadHighlight(ctx context.Context, id uuid.UUID) (*HighlightView, error) {
	row, err := s.highlights.FindByID(ctx, id, "Thumbnail")
	if err != nil {
		return nil, repo.MapError(err, "reload highlight")
	}
	view := toHighlightView(*row, s.urls)
	return &view, nil
}

func (s *service) ActiveSocials(ctx context.Context) ([]models.SocialLink, error) {
	q := activeOnly
	q.Order = []string{"sort ASC"}
	rows, err := s.socials.List(ctx, q)
	return rows, repo.MapError(err, "list socials")
}
