package matches

import (
	"context"
	"strings"
	"time"

	"github.com/angelmondragon/clubhouse-backend/internal/repo"
	"github.com/angelmondragon/clubhouse-backend/pkg/db/models"
	"gorm.io/gorm"
)

// Filter narrows the fixture list. Zero values are not applied.
type Filter struct {
	Season string
	From   *time.Time
	To     *time.Time
}

type Repository struct {
	repo.CRUD[models.Match]
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{CRUD: repo.NewCRUD[models.Match](db)}
}

func (r *Repository) Upcoming(ctx context.Context, now time.Time, limit int) ([]models.Match, error) {
	return r.List(ctx, repo.Query{
		Where: "kickoff_at > ?",
		Args:  []any{now},
		Order: []string{"kickoff_at ASC"},
		Limit: limit,
	})
}

func (r *Repository) Results(ctx context.Context, limit int) ([]models.Match, error) {
	return r.List(ctx, repo.Query{
		Where: "status = ?",
		Args:  []any{models.MatchStatusFullTime},
		Order: []string{"kickoff_at DESC"},
		Limit: limit,
	})
}

func (r *Repository) Search(ctx context.Context, f Filter) ([]models.Match, error) {
	clauses := []string{}
	args := []any{}
	if f.Season != "" {
		clauses = append(clauses, "season = ?")
		args = append(args, f.Season)
	}
	if f.From != nil {
		clauses = append(clauses, "kickoff_at >= ?")
		args = append(args, *f.From)
	}
	if f.To != nil {
		clauses = append(clauses, "kickoff_at <= ?")
		args = append(args, *f.To)
	}
	return r.List(ctx, repo.Query{
		Where: strings.Join(clauses, " AND "),
		Args:  args,
		Order: []string{"kickoff_at ASC"},
	})
}
