package sponsors

import (
	"context"
	"fmt"

	"github.com/angelmondragon/clubhouse-backend/internal/media"
	"github.com/angelmondragon/clubhouse-backend/internal/repo"
	"github.com/angelmondragon/clubhouse-backend/pkg/db/models"
	"github.com/angelmondragon/clubhouse-backend/pkg/types"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

var sponsorOrder = []string{"tier ASC", "sort ASC"}

type SponsorView struct {
	ID       uuid.UUID        `json:"id"`
	Name     string           `json:"name"`
	Tier     *string          `json:"tier"`
	Website  *string          `json:"website"`
	Sort     int              `json:"sort"`
	IsActive bool             `json:"isActive"`
	LogoID   *uuid.UUID       `json:"logoId"`
	LogoURL  *string          `json:"logoUrl"`
	Logo     *media.AssetView `json:"logo,omitempty"`
}

func toView(s models.Sponsor, urls media.URLResolver) SponsorView {
	return SponsorView{
		ID:       s.ID,
		Name:     s.Name,
		Tier:     s.Tier,
		Website:  s.Website,
		Sort:     s.Sort,
		IsActive: s.IsActive,
		LogoID:   s.LogoID,
		LogoURL:  urls.AssetURL(s.Logo),
		Logo:     urls.View(s.Logo),
	}
}

type CreateSponsorInput struct {
	Name     string     `json:"name" validate:"required,min=1"`
	Tier     string     `json:"tier" validate:"required,min=1"`
	Website  *string    `json:"website,omitempty" validate:"omitempty,url"`
	LogoID   *uuid.UUID `json:"logoId,omitempty"`
	Sort     *int       `json:"sort,omitempty"`
	IsActive *bool      `json:"isActive,omitempty"`
}

type UpdateSponsorInput struct {
	Name     *string              `json:"name,omitempty" validate:"omitempty,min=1"`
	Tier     *string              `json:"tier,omitempty" validate:"omitempty,min=1"`
	Website  types.NullableString `json:"website"`
	LogoID   types.NullableUUID   `json:"logoId"`
	Sort     *int                 `json:"sort,omitempty"`
	IsActive *bool                `json:"isActive,omitempty"`
}

func (in UpdateSponsorInput) updates() map[string]any {
	out := map[string]any{}
	if in.Name != nil {
		out["name"] = *in.Name
	}
	if in.Tier != nil {
		out["tier"] = *in.Tier
	}
	if in.Website.Set {
		out["website"] = in.Website.Value
	}
	if in.LogoID.Set {
		out["logo_id"] = in.LogoID.Value
	}
	if in.Sort != nil {
		out["sort"] = *in.Sort
	}
	if in.IsActive != nil {
		out["is_active"] = *in.IsActive
	}
	return out
}

// Service manages club sponsors. Public reads only see active sponsors.
type Service interface {
	ListActive(ctx context.Context) ([]SponsorView, error)
	AdminList(ctx context.Context) ([]SponsorView, error)
	Create(ctx context.Context, input CreateSponsorInput) (*SponsorView, error)
	Update(ctx context.Context, id uuid.UUID, input UpdateSponsorInput) (*SponsorView, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type service struct {
	repo repo.CRUD[models.Sponsor]
	urls media.URLResolver
}

func NewService(db *gorm.DB, urls media.URLResolver) (Service, error) {
	if db == nil {
		return nil, fmt.Errorf("db required")
	}
	return &service{repo: repo.NewCRUD[models.Sponsor](db), urls: urls}, nil
}

func (s *service) ListActive(ctx context.Context) ([]SponsorView, error) {
	return s.list(ctx, repo.Query{Where: "is_active = ?", Args: []any{true}, Order: sponsorOrder, Preload: []string{"Logo"}})
}

func (s *service) AdminList(ctx context.Context) ([]SponsorView, error) {
	return s.list(ctx, repo.Query{Order: sponsorOrder, Preload: []string{"Logo"}})
}

func (s *service) list(ctx context.Context, q repo.Query) ([]SponsorView, error) {
	rows, err := s.repo.List(ctx, q)
	if err != nil {
		return nil, repo.MapError(err, "list sponsors")
	}
	out := make([]SponsorView, 0, len(rows))
	for _, row := range rows {
		out = append(out, toView(row, s.urls))
	}
	return out, nil
}

func (s *service) Create(ctx context.Context, input CreateSponsorInput) (*SponsorView, error) {
	row := &models.Sponsor{
		Name:     input.Name,
		Tier:     &input.Tier,
		Website:  input.Website,
		LogoID:   input.LogoID,
		IsActive: true,
	}
	if input.Sort != nil {
		row.Sort = *input.Sort
	}
	if input.IsActive != nil {
		row.IsActive = *input.IsActive
	}
	if err := s.repo.Create(ctx, row); err != nil {
		return nil, repo.MapError(err, "create sponsor")
	}
	return s.reload(ctx, row.ID)
}

func (s *service) Update(ctx context.Context, id uuid.UUID, input UpdateSponsorInput) (*SponsorView, error) {
	if err := s.repo.Update(ctx, id, input.updates()); err != nil {
		return nil, repo.MapError(err, "update sponsor")
	}
	return s.reload(ctx, id)
}

func (s *service) Delete(ctx context.Context, id uuid.UUID) error {
	return repo.MapError(s.repo.Delete(ctx, id), "delete sponsor")
}

func (s *service) reload(ctx context.Context, id uuid.UUID) (*SponsorView, error) {
	row, err := s.repo.FindByID(ctx, id, "Logo")
	if err != nil {
		return nil, repo.MapError(err, "reload sponsor")
	}
	view := toView(*row, s.urls)
	return &view, nil
}
