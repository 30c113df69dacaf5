package news

import (
	"context"
	"fmt"
	"strings"

	"github.com/angelmondragon/clubhouse-backend/internal/media"
	"github.com/angelmondragon/clubhouse-backend/internal/repo"
	"github.com/angelmondragon/clubhouse-backend/pkg/db"
	"github.com/angelmondragon/clubhouse-backend/pkg/db/models"
	"github.com/angelmondragon/clubhouse-backend/pkg/pagination"
	"github.com/google/uuid"
)

const adminListLimit = 200

type Service interface {
	ListPublished(ctx context.Context, page, pageSize int) (*Page, error)
	GetBySlug(ctx context.Context, slug string) (*Post, error)
	// Featured returns nil when no published post is featured.
	Featured(ctx context.Context) (*Summary, error)
	Latest(ctx context.Context, limit int) ([]Summary, error)

	AdminList(ctx context.Context) ([]Post, error)
	Create(ctx context.Context, input CreatePostInput) (*Post, error)
	Update(ctx context.Context, id uuid.UUID, input UpdatePostInput) (*Post, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type service struct {
	repo *Repository
	urls media.URLResolver
}

func NewService(repository *Repository, urls media.URLResolver) (Service, error) {
	if repository == nil {
		return nil, fmt.Errorf("news repository required")
	}
	return &service{repo: repository, urls: urls}, nil
}

func (s *service) ListPublished(ctx context.Context, page, pageSize int) (*Page, error) {
	p := pagination.Normalize(page, pageSize)
	rows, total, err := s.repo.ListPublished(ctx, p.PageSize, p.Offset())
	if err != nil {
		return nil, repo.MapError(err, "list news")
	}
	return &Page{Page: p.Page, PageSize: p.PageSize, Total: total, Items: s.summaries(rows)}, nil
}

func (s *service) GetBySlug(ctx context.Context, slug string) (*Post, error) {
	row, err := s.repo.FindPublishedBySlug(ctx, strings.TrimSpace(slug))
	if err != nil {
		return nil, repo.MapError(err, "load news post")
	}
	post := toPost(*row, s.urls)
	return &post, nil
}

func (s *service) Featured(ctx context.Context) (*Summary, error) {
	row, err := s.repo.LatestFeatured(ctx)
	if err != nil {
		if db.IsNotFound(err) {
			return nil, nil
		}
		return nil, repo.MapError(err, "load featured news")
	}
	summary := toSummary(*row, s.urls)
	return &summary, nil
}

func (s *service) Latest(ctx context.Context, limit int) ([]Summary, error) {
	rows, _, err := s.repo.ListPublished(ctx, limit, 0)
	if err != nil {
		return nil, repo.MapError(err, "list latest news")
	}
	return s.summaries(rows), nil
}

func (s *service) AdminList(ctx context.Context) ([]Post, error) {
	rows, err := s.repo.List(ctx, repo.Query{
		Order:   []string{"created_at DESC"},
		Limit:   adminListLimit,
		Preload: []string{"HeroMedia"},
	})
	if err != nil {
		return nil, repo.MapError(err, "list news")
	}
	out := make([]Post, 0, len(rows))
	for _, row := range rows {
		out = append(out, toPost(row, s.urls))
	}
	return out, nil
}

func (s *service) Create(ctx context.Context, input CreatePostInput) (*Post, error) {
	row := &models.NewsPost{
		Slug:        strings.TrimSpace(input.Slug),
		Title:       input.Title,
		Excerpt:     input.Excerpt,
		ContentHTML: input.ContentHTML,
		IsFeatured:  input.IsFeatured,
		HeroMediaID: input.HeroMediaID,
		PublishedAt: input.PublishedAt,
	}
	if err := s.repo.Create(ctx, row); err != nil {
		return nil, repo.MapError(err, "create news post")
	}
	return s.reload(ctx, row.ID)
}

func (s *service) Update(ctx context.Context, id uuid.UUID, input UpdatePostInput) (*Post, error) {
	if err := s.repo.Update(ctx, id, input.updates()); err != nil {
		return nil, repo.MapError(err, "update news post")
	}
	return s.reload(ctx, id)
}

func (s *service) Delete(ctx context.Context, id uuid.UUID) error {
	return repo.MapError(s.repo.Delete(ctx, id), "delete news post")
}

func (s *service) reload(ctx context.Context, id uuid.UUID) (*Post, error) {
	row, err := s.repo.FindByID(ctx, id, "HeroMedia")
	if err != nil {
		return nil, repo.MapError(err, "reload news post")
	}
	post := toPost(*row, s.urls)
	return &post, nil
}

func (s *service) summaries(rows []models.NewsPost) []Summary {
	out := make([]Summary, 0, len(rows))
	for _, row := range rows {
		out = append(out, toSummary(row, s.urls))
	}
	return out
}
