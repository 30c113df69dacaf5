package team

import (
	"context"
	"fmt"
	"strings"

	"github.com/angelmondragon/clubhouse-backend/internal/media"
	"github.com/angelmondragon/clubhouse-backend/internal/repo"
	"github.com/angelmondragon/clubhouse-backend/pkg/db/models"
	"github.com/google/uuid"
)

const adminListLimit = 400

type Service interface {
	Roster(ctx context.Context, f Filter) (*Roster, error)
	GetBySlug(ctx context.Context, slug string) (*MemberView, error)

	AdminList(ctx context.Context) ([]MemberView, error)
	Create(ctx context.Context, input CreateMemberInput) (*MemberView, error)
	Update(ctx context.Context, id uuid.UUID, input UpdateMemberInput) (*MemberView, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type service struct {
	repo *Repository
	urls media.URLResolver
}

func NewService(repository *Repository, urls media.URLResolver) (Service, error) {
	if repository == nil {
		return nil, fmt.Errorf("team repository required")
	}
	return &service{repo: repository, urls: urls}, nil
}

// Roster groups members by position. Staff always land in a single group.
func (s *service) Roster(ctx context.Context, f Filter) (*Roster, error) {
	rows, err := s.repo.ListRoster(ctx, f)
	if err != nil {
		return nil, repo.MapError(err, "list team")
	}
	grouped := map[string][]MemberView{}
	for _, row := range rows {
		name := groupName(row)
		grouped[name] = append(grouped[name], toView(row, s.urls, false))
	}
	return &Roster{Team: f.Team, IsStaff: f.IsStaff, Grouped: grouped}, nil
}

func (s *service) GetBySlug(ctx context.Context, slug string) (*MemberView, error) {
	row, err := s.repo.FindBySlug(ctx, strings.TrimSpace(slug))
	if err != nil {
		return nil, repo.MapError(err, "load team member")
	}
	view := toView(*row, s.urls, true)
	return &view, nil
}

func (s *service) AdminList(ctx context.Context) ([]MemberView, error) {
	rows, err := s.repo.List(ctx, repo.Query{
		Order:   []string{"is_staff ASC", "team ASC", "position ASC"},
		Limit:   adminListLimit,
		Preload: []string{"Portrait"},
	})
	if err != nil {
		return nil, repo.MapError(err, "list team")
	}
	out := make([]MemberView, 0, len(rows))
	for _, row := range rows {
		out = append(out, toView(row, s.urls, true))
	}
	return out, nil
}

func (s *service) Create(ctx context.Context, input CreateMemberInput) (*MemberView, error) {
	row := &models.TeamMember{
		Slug:       strings.TrimSpace(input.Slug),
		FullName:   input.FullName,
		JerseyNo:   input.JerseyNo,
		Position:   input.Position,
		Team:       input.Team,
		BioHTML:    input.BioHTML,
		FunFact:    input.FunFact,
		IsStaff:    input.IsStaff,
		PortraitID: input.PortraitID,
	}
	if err := s.repo.Create(ctx, row); err != nil {
		return nil, repo.MapError(err, "create team member")
	}
	return s.reload(ctx, row.ID)
}

func (s *service) Update(ctx context.Context, id uuid.UUID, input UpdateMemberInput) (*MemberView, error) {
	if err := s.repo.Update(ctx, id, input.updates()); err != nil {
		return nil, repo.MapError(err, "update team member")
	}
	return s.reload(ctx, id)
}

func (s *service) Delete(ctx context.Context, id uuid.UUID) error {
	return repo.MapError(s.repo.Delete(ctx, id), "delete team member")
}

func (s *service) reload(ctx context.Context, id uuid.UUID) (*MemberView, error) {
	row, err := s.repo.FindByID(ctx, id, "Portrait")
	if err != nil {
		return nil, repo.MapError(err, "reload team member")
	}
	view := toView(*row, s.urls, true)
	return &view, nil
}
