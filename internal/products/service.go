package product

import (
	"context"
	"fmt"
	"strings"

	"github.com/angelmondragon/clubhouse-backend/internal/media"
	"github.com/angelmondragon/clubhouse-backend/internal/repo"
	"github.com/angelmondragon/clubhouse-backend/pkg/db/models"
	"github.com/google/uuid"
)

const adminListLimit = 300

// Service exposes shop reads and admin product management.
type Service interface {
	ListActive(ctx context.Context) ([]ProductDTO, error)
	GetBySlug(ctx context.Context, slug string) (*ProductDTO, error)
	ListKits(ctx context.Context, limit int) ([]ProductDTO, error)
	AdminList(ctx context.Context) ([]ProductDTO, error)
	Create(ctx context.Context, input CreateProductInput) (*ProductDTO, error)
	Update(ctx context.Context, id uuid.UUID, input UpdateProductInput) (*ProductDTO, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type service struct {
	repo            *Repository
	urls            media.URLResolver
	defaultCurrency string
}

// NewService builds the product service.
func NewService(repository *Repository, urls media.URLResolver, defaultCurrency string) (Service, error) {
	if repository == nil {
		return nil, fmt.Errorf("product repository required")
	}
	if defaultCurrency == "" {
		return nil, fmt.Errorf("default currency required")
	}
	return &service{repo: repository, urls: urls, defaultCurrency: defaultCurrency}, nil
}

func (s *service) ListActive(ctx context.Context) ([]ProductDTO, error) {
	rows, err := s.repo.ListActive(ctx, "", 0)
	if err != nil {
		return nil, repo.MapError(err, "list products")
	}
	return s.toDTOs(rows), nil
}

func (s *service) GetBySlug(ctx context.Context, slug string) (*ProductDTO, error) {
	row, err := s.repo.FindActiveBySlug(ctx, strings.TrimSpace(slug))
	if err != nil {
		return nil, repo.MapError(err, "load product")
	}
	dto := toDTO(*row, s.urls)
	return &dto, nil
}

func (s *service) ListKits(ctx context.Context, limit int) ([]ProductDTO, error) {
	rows, err := s.repo.ListActive(ctx, KitCategory, limit)
	if err != nil {
		return nil, repo.MapError(err, "list kits")
	}
	return s.toDTOs(rows), nil
}

func (s *service) AdminList(ctx context.Context) ([]ProductDTO, error) {
	rows, err := s.repo.List(ctx, repo.Query{
		Order:   []string{"created_at DESC"},
		Limit:   adminListLimit,
		Preload: []string{"HeroMedia"},
	})
	if err != nil {
		return nil, repo.MapError(err, "list products")
	}
	return s.toDTOs(rows), nil
}

func (s *service) Create(ctx context.Context, input CreateProductInput) (*ProductDTO, error) {
	currency := input.Currency
	if currency == "" {
		currency = s.defaultCurrency
	}
	active := true
	if input.IsActive != nil {
		active = *input.IsActive
	}
	row := &models.Product{
		Slug:        strings.TrimSpace(input.Slug),
		Title:       input.Title,
		Description: input.Description,
		Price:       input.Price,
		Currency:    currency,
		Category:    input.Category,
		KitType:     input.KitType,
		IsActive:    active,
		HeroMediaID: input.HeroMediaID,
	}
	if err := s.repo.Create(ctx, row); err != nil {
		return nil, repo.MapError(err, "create product")
	}
	return s.reload(ctx, row.ID)
}

func (s *service) Update(ctx context.Context, id uuid.UUID, input UpdateProductInput) (*ProductDTO, error) {
	if err := s.repo.Update(ctx, id, input.updates()); err != nil {
		return nil, repo.MapError(err, "update product")
	}
	return s.reload(ctx, id)
}

func (s *service) Delete(ctx context.Context, id uuid.UUID) error {
	return repo.MapError(s.repo.Delete(ctx, id), "delete product")
}

func (s *service) reload(ctx context.Context, id uuid.UUID) (*ProductDTO, error) {
	row, err := s.repo.FindByID(ctx, id, "HeroMedia")
	if err != nil {
		return nil, repo.MapError(err, "reload product")
	}
	dto := toDTO(*row, s.urls)
	return &dto, nil
}

func (s *service) toDTOs(rows []models.Product) []ProductDTO {
	out := make([]ProductDTO, 0, len(rows))
	for _, row := range rows {
		out = append(out, toDTO(row, s.urls))
	}
	return out
}
