package tickets

import (
	"context"
	"fmt"
	"time"

	"github.com/angelmondragon/clubhouse-backend/pkg/db"
	"github.com/angelmondragon/clubhouse-backend/pkg/db/models"
	pkgerrors "github.com/angelmondragon/clubhouse-backend/pkg/errors"
	"github.com/google/uuid"
)

const (
	featuredLimit = 12
	myTicketLimit = 50
)

// Service exposes ticket event reads, the caller's tickets and event creation.
type Service interface {
	Featured(ctx context.Context) ([]EventView, error)
	GetEvent(ctx context.Context, id uuid.UUID) (*EventView, error)
	ListMine(ctx context.Context, userID uuid.UUID) ([]TicketView, error)
	CreateEvent(ctx context.Context, input CreateEventInput) (*EventView, error)
}

type ServiceParams struct {
	Repo            Repository
	DefaultCurrency string
	Now             func() time.Time
}

type service struct {
	repo     Repository
	currency string
	now      func() time.Time
}

func NewService(params ServiceParams) (Service, error) {
	if params.Repo == nil {
		return nil, fmt.Errorf("tickets repository required")
	}
	if params.DefaultCurrency == "" {
		return nil, fmt.Errorf("default currency required")
	}
	now := params.Now
	if now == nil {
		now = time.Now
	}
	return &service{repo: params.Repo, currency: params.DefaultCurrency, now: now}, nil
}

func (s *service) Featured(ctx context.Context) ([]EventView, error) {
	rows, err := s.repo.ListFeatured(ctx, s.now(), featuredLimit)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "list featured events")
	}
	out := make([]EventView, 0, len(rows))
	for _, row := range rows {
		out = append(out, toEventView(row))
	}
	return out, nil
}

func (s *service) GetEvent(ctx context.Context, id uuid.UUID) (*EventView, error) {
	event, err := s.repo.FindEvent(ctx, id)
	if err != nil {
		if db.IsNotFound(err) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "Not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "load ticket event")
	}
	if !event.IsActive {
		return nil, pkgerrors.New(pkgerrors.CodeNotFound, "Not found")
	}
	view := toEventView(*event)
	return &view, nil
}

func (s *service) ListMine(ctx context.Context, userID uuid.UUID) ([]TicketView, error) {
	rows, err := s.repo.ListByUser(ctx, userID, myTicketLimit)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "list tickets")
	}
	out := make([]TicketView, 0, len(rows))
	for _, row := range rows {
		out = append(out, toTicketView(row))
	}
	return out, nil
}

func (s *service) CreateEvent(ctx context.Context, input CreateEventInput) (*EventView, error) {
	if len(input.Tiers) == 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "at least one tier is required")
	}
	if input.SalesCloseAt.Before(input.SalesOpenAt) {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "salesCloseAt must not precede salesOpenAt")
	}
	currency := input.Currency
	if currency == "" {
		currency = s.currency
	}
	active := true
	if input.IsActive != nil {
		active = *input.IsActive
	}

	event := &models.TicketEvent{
		MatchID:      input.MatchID,
		Title:        input.Title,
		Currency:     currency,
		SalesOpenAt:  input.SalesOpenAt,
		SalesCloseAt: input.SalesCloseAt,
		IsActive:     active,
	}
	for _, tier := range input.Tiers {
		event.Tiers = append(event.Tiers, models.TicketTier{Name: tier.Name, Price: tier.Price, Capacity: tier.Capacity})
	}
	if err := s.repo.CreateEvent(ctx, event); err != nil {
		if db.IsUniqueViolation(err, "") {
			return nil, pkgerrors.New(pkgerrors.CodeConflict, "Match already has a ticket event")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "create ticket event")
	}
	created, err := s.repo.FindEvent(ctx, event.ID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "reload ticket event")
	}
	view := toEventView(*created)
	return &view, nil
}
