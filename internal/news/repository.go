package news

import (
	"context"

	"github.com/angelmondragon/clubhouse-backend/internal/repo"
	"github.com/angelmondragon/clubhouse-backend/pkg/db/models"
	"gorm.io/gorm"
)

const publishedClause = "published_at IS NOT NULL"

// Repository persists news posts.
type Repository struct {
	repo.CRUD[models.NewsPost]
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{CRUD: repo.NewCRUD[models.NewsPost](db)}
}

func (r *Repository) WithTx(tx *gorm.DB) *Repository {
	return &Repository{CRUD: r.CRUD.WithTx(tx)}
}

// ListPublished returns one page of published posts, newest first, and the
// total number of published posts.
func (r *Repository) ListPublished(ctx context.Context, limit, offset int) ([]models.NewsPost, int64, error) {
	q := repo.Query{
		Where:   publishedClause,
		Order:   []string{"published_at DESC"},
		Limit:   limit,
		Offset:  offset,
		Preload: []string{"HeroMedia"},
	}
	total, err := r.Count(ctx, q)
	if err != nil {
		return nil, 0, err
	}
	rows, err := r.List(ctx, q)
	if err != nil {
		return nil, 0, err
	}
	return rows, total, nil
}

func (r *Repository) FindPublishedBySlug(ctx context.Context, slug string) (*models.NewsPost, error) {
	return r.FindOne(ctx, repo.Query{
		Where:   "slug = ? AND " + publishedClause,
		Args:    []any{slug},
		Preload: []string{"HeroMedia"},
	})
}

// LatestFeatured returns the newest published post flagged as featured.
func (r *Repository) LatestFeatured(ctx context.Context) (*models.NewsPost, error) {
	return r.FindOne(ctx, repo.Query{
		Where:   "is_featured = ? AND " + publishedClause,
		Args:    []any{true},
		Order:   []string{"published_at DESC"},
		Preload: []string{"HeroMedia"},
	})
}
