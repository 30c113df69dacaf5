package admin

import (
	"context"
	"fmt"

	"github.com/angelmondragon/clubhouse-backend/internal/repo"
	"github.com/angelmondragon/clubhouse-backend/pkg/db/models"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"
)

// Counts is the dashboard summary of content rows. Tickets counts ticket events.
type Counts struct {
	News     int64 `json:"news"`
	Matches  int64 `json:"matches"`
	Team     int64 `json:"team"`
	Sponsors int64 `json:"sponsors"`
	Products int64 `json:"products"`
	Media    int64 `json:"media"`
	Tickets  int64 `json:"tickets"`
}

type Overview struct {
	Counts Counts `json:"counts"`
}

type Service interface {
	Overview(ctx context.Context) (*Overview, error)
}

type counter func(ctx context.Context) (int64, error)

func countOf[T any](conn *gorm.DB) counter {
	crud := repo.NewCRUD[T](conn)
	return func(ctx context.Context) (int64, error) {
		return crud.Count(ctx, repo.Query{})
	}
}

type service struct {
	news, matches, team, sponsors, products, media, tickets counter
}

func NewService(conn *gorm.DB) (Service, error) {
	if conn == nil {
		return nil, fmt.Errorf("db required")
	}
	return &service{
		news:     countOf[models.NewsPost](conn),
		matches:  countOf[models.Match](conn),
		team:     countOf[models.TeamMember](conn),
		sponsors: countOf[models.Sponsor](conn),
		products: countOf[models.Product](conn),
		media:    countOf[models.MediaAsset](conn),
		tickets:  countOf[models.TicketEvent](conn),
	}, nil
}

func (s *service) Overview(ctx context.Context) (*Overview, error) {
	var out Overview
	g, gctx := errgroup.WithContext(ctx)
	run := func(dst *int64, count counter) {
		g.Go(func() error {
			n, err := count(gctx)
			if err != nil {
				return repo.MapError(err, "count rows")
			}
			*dst = n
			return nil
		})
	}
	run(&out.Counts.News, s.news)
	run(&out.Counts.Matches, s.matches)
	run(&out.Counts.Team, s.team)
	run(&out.Counts.Sponsors, s.sponsors)
	run(&out.Counts.Products, s.products)
	run(&out.Counts.Media, s.media)
	run(&out.Counts.Tickets, s.tickets)
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &out, nil
}
