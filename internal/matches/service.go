package matches

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/angelmondragon/clubhouse-backend/internal/repo"
	"github.com/angelmondragon/clubhouse-backend/pkg/db"
	"github.com/angelmondragon/clubhouse-backend/pkg/db/models"
	"github.com/angelmondragon/clubhouse-backend/pkg/enums"
	pkgerrors "github.com/angelmondragon/clubhouse-backend/pkg/errors"
	"github.com/angelmondragon/clubhouse-backend/pkg/pagination"
	"github.com/google/uuid"
)

const (
	defaultTake    = 10
	maxTake        = 50
	adminListLimit = 300
)

type Service interface {
	Upcoming(ctx context.Context, take int) ([]models.Match, error)
	Results(ctx context.Context, take int) ([]models.Match, error)
	List(ctx context.Context, f Filter) ([]models.Match, error)
	// Next returns the first fixture after now, or nil when none is scheduled.
	Next(ctx context.Context) (*models.Match, error)

	AdminList(ctx context.Context) ([]models.Match, error)
	Create(ctx context.Context, input CreateMatchInput) (*models.Match, error)
	Update(ctx context.Context, id uuid.UUID, input UpdateMatchInput) (*models.Match, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type service struct {
	repo *Repository
	now  func() time.Time
}

func NewService(repository *Repository, now func() time.Time) (Service, error) {
	if repository == nil {
		return nil, fmt.Errorf("match repository required")
	}
	if now == nil {
		now = time.Now
	}
	return &service{repo: repository, now: now}, nil
}

func (s *service) Upcoming(ctx context.Context, take int) ([]models.Match, error) {
	rows, err := s.repo.Upcoming(ctx, s.now(), pagination.Take(take, defaultTake, maxTake))
	if err != nil {
		return nil, repo.MapError(err, "list upcoming matches")
	}
	return rows, nil
}

func (s *service) Results(ctx context.Context, take int) ([]models.Match, error) {
	rows, err := s.repo.Results(ctx, pagination.Take(take, defaultTake, maxTake))
	if err != nil {
		return nil, repo.MapError(err, "list results")
	}
	return rows, nil
}

func (s *service) List(ctx context.Context, f Filter) ([]models.Match, error) {
	rows, err := s.repo.Search(ctx, f)
	if err != nil {
		return nil, repo.MapError(err, "list matches")
	}
	return rows, nil
}

func (s *service) Next(ctx context.Context) (*models.Match, error) {
	rows, err := s.repo.Upcoming(ctx, s.now(), 1)
	if err != nil {
		return nil, repo.MapError(err, "load next match")
	}
	if len(rows) == 0 {
		return nil, nil
	}
	return &rows[0], nil
}

func (s *service) AdminList(ctx context.Context) ([]models.Match, error) {
	rows, err := s.repo.List(ctx, repo.Query{
		Order:   []string{"kickoff_at DESC"},
		Limit:   adminListLimit,
		Preload: []string{"TicketEvent"},
	})
	if err != nil {
		return nil, repo.MapError(err, "list matches")
	}
	return rows, nil
}

func (s *service) Create(ctx context.Context, input CreateMatchInput) (*models.Match, error) {
	if err := validateMatchType(input.MatchType); err != nil {
		return nil, err
	}
	status := strings.TrimSpace(input.Status)
	if status == "" {
		status = models.MatchStatusScheduled
	}
	row := &models.Match{
		Competition: input.Competition,
		MatchType:   input.MatchType,
		Season:      input.Season,
		KickoffAt:   input.KickoffAt,
		Venue:       input.Venue,
		IsHome:      input.IsHome,
		Opponent:    input.Opponent,
		HomeScore:   input.HomeScore,
		AwayScore:   input.AwayScore,
		Status:      status,
	}
	if err := s.repo.Create(ctx, row); err != nil {
		return nil, repo.MapError(err, "create match")
	}
	return s.reload(ctx, row.ID)
}

func (s *service) Update(ctx context.Context, id uuid.UUID, input UpdateMatchInput) (*models.Match, error) {
	if input.MatchType.Set {
		if err := validateMatchType(input.MatchType.Value); err != nil {
			return nil, err
		}
	}
	if err := s.repo.Update(ctx, id, input.updates()); err != nil {
		return nil, repo.MapError(err, "update match")
	}
	return s.reload(ctx, id)
}

// Delete removes a fixture. A match with a ticket event is kept.
func (s *service) Delete(ctx context.Context, id uuid.UUID) error {
	row, err := s.repo.FindByID(ctx, id, "TicketEvent")
	if err != nil {
		return repo.MapError(err, "delete match")
	}
	if row.TicketEvent != nil {
		return pkgerrors.New(pkgerrors.CodeConflict, "Match has a ticket event")
	}
	if err := s.repo.Delete(ctx, id); err != nil && !db.IsNotFound(err) {
		return repo.MapError(err, "delete match")
	}
	return nil
}

func (s *service) reload(ctx context.Context, id uuid.UUID) (*models.Match, error) {
	row, err := s.repo.FindByID(ctx, id, "TicketEvent")
	if err != nil {
		return nil, repo.MapError(err, "reload match")
	}
	return row, nil
}

func validateMatchType(t *enums.MatchType) error {
	if t != nil && !t.IsValid() {
		return pkgerrors.New(pkgerrors.CodeValidation, "Invalid match type")
	}
	return nil
}
