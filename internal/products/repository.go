package product

import (
	"context"

	"github.com/angelmondragon/clubhouse-backend/internal/repo"
	"github.com/angelmondragon/clubhouse-backend/pkg/db/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// KitCategory marks products shown in the home page kit strip.
const KitCategory = "KIT"

// Repository wires together product persistence helpers.
type Repository struct {
	repo.CRUD[models.Product]
}

// NewRepository builds a repository tied to the provided GORM DB.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{CRUD: repo.NewCRUD[models.Product](db)}
}

// WithTx returns a repository bound to the provided transaction.
func (r *Repository) WithTx(tx *gorm.DB) *Repository {
	return &Repository{CRUD: r.CRUD.WithTx(tx)}
}

// FindActiveByIDs returns the active products among ids. Missing or inactive
// ids are simply absent from the result.
func (r *Repository) FindActiveByIDs(ctx context.Context, ids []uuid.UUID) ([]models.Product, error) {
	if len(ids) == 0 {
		return []models.Product{}, nil
	}
	return r.List(ctx, repo.Query{Where: "id IN ? AND is_active = ?", Args: []any{ids, true}})
}

// FindActiveBySlug loads an active product with its hero image.
func (r *Repository) FindActiveBySlug(ctx context.Context, slug string) (*models.Product, error) {
	return r.FindOne(ctx, repo.Query{
		Where:   "slug = ? AND is_active = ?",
		Args:    []any{slug, true},
		Preload: []string{"HeroMedia"},
	})
}

// ListActive returns active products newest first. A category narrows the list.
func (r *Repository) ListActive(ctx context.Context, category string, limit int) ([]models.Product, error) {
	q := repo.Query{
		Where:   "is_active = ?",
		Args:    []any{true},
		Order:   []string{"created_at DESC"},
		Limit:   limit,
		Preload: []string{"HeroMedia"},
	}
	if category != "" {
		q.Where += " AND category = ?"
		q.Args = append(q.Args, category)
	}
	return r.List(ctx, q)
}
