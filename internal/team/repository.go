package team

import (
	"context"
	"strings"

	"github.com/angelmondragon/clubhouse-backend/internal/repo"
	"github.com/angelmondragon/clubhouse-backend/pkg/db/models"
	"gorm.io/gorm"
)

// Filter narrows the public roster. Nil fields are not applied.
type Filter struct {
	Team    *string
	IsStaff *bool
}

func (f Filter) query() repo.Query {
	clauses := []string{}
	args := []any{}
	if f.Team != nil {
		clauses = append(clauses, "team = ?")
		args = append(args, *f.Team)
	}
	if f.IsStaff != nil {
		clauses = append(clauses, "is_staff = ?")
		args = append(args, *f.IsStaff)
	}
	return repo.Query{
		Where:   strings.Join(clauses, " AND "),
		Args:    args,
		Order:   []string{"is_staff ASC", "position ASC", "jersey_no ASC"},
		Preload: []string{"Portrait"},
	}
}

type Repository struct {
	repo.CRUD[models.TeamMember]
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{CRUD: repo.NewCRUD[models.TeamMember](db)}
}

func (r *Repository) ListRoster(ctx context.Context, f Filter) ([]models.TeamMember, error) {
	return r.List(ctx, f.query())
}

func (r *Repository) FindBySlug(ctx context.Context, slug string) (*models.TeamMember, error) {
	return r.FindOne(ctx, repo.Query{Where: "slug = ?", Args: []any{slug}, Preload: []string{"Portrait"}})
}
