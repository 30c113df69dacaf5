package public

import (
	"context"
	"fmt"

	"github.com/angelmondragon/clubhouse-backend/internal/news"
	product "github.com/angelmondragon/clubhouse-backend/internal/products"
	"github.com/angelmondragon/clubhouse-backend/internal/site"
	"github.com/angelmondragon/clubhouse-backend/internal/sponsors"
	"github.com/angelmondragon/clubhouse-backend/pkg/db/models"
	"golang.org/x/sync/errgroup"
)

const (
	latestNewsLimit = 5
	highlightLimit  = 6
	kitLimit        = 6
)

// Home is the landing page payload. Settings, Featured and NextMatch are null
// when nothing qualifies.
type Home struct {
	Settings   *site.SettingsView     `json:"settings"`
	Featured   *news.Summary          `json:"featured"`
	LatestNews []news.Summary         `json:"latestNews"`
	NextMatch  *models.Match          `json:"nextMatch"`
	Sponsors   []sponsors.SponsorView `json:"sponsors"`
	Socials    []models.SocialLink    `json:"socials"`
	Highlights []site.HighlightView   `json:"highlights"`
	Kits       []product.ProductDTO   `json:"kits"`
}

type matchReader interface {
	Next(ctx context.Context) (*models.Match, error)
}

type Service interface {
	Home(ctx context.Context) (*Home, error)
	FAQs(ctx context.Context) ([]models.FAQ, error)
}

type ServiceParams struct {
	Site     site.Service
	News     news.Service
	Matches  matchReader
	Sponsors sponsors.Service
	Products product.Service
}

type service struct {
	site     site.Service
	news     news.Service
	matches  matchReader
	sponsors sponsors.Service
	products product.Service
}

func NewService(params ServiceParams) (Service, error) {
	switch {
	case params.Site == nil:
		return nil, fmt.Errorf("site service required")
	case params.News == nil:
		return nil, fmt.Errorf("news service required")
	case params.Matches == nil:
		return nil, fmt.Errorf("match service required")
	case params.Sponsors == nil:
		return nil, fmt.Errorf("sponsor service required")
	case params.Products == nil:
		return nil, fmt.Errorf("product service required")
	}
	return &service{
		site:     params.Site,
		news:     params.News,
		matches:  params.Matches,
		sponsors: params.Sponsors,
		products: params.Products,
	}, nil
}

// Home loads every section concurrently. Any failing section fails the page.
func (s *service) Home(ctx context.Context) (*Home, error) {
	var home Home
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		home.Settings, err = s.site.Settings(gctx)
		return err
	})
	g.Go(func() (err error) {
		home.Featured, err = s.news.Featured(gctx)
		return err
	})
	g.Go(func() (err error) {
		home.LatestNews, err = s.news.Latest(gctx, latestNewsLimit)
		return err
	})
	g.Go(func() (err error) {
		home.NextMatch, err = s.matches.Next(gctx)
		return err
	})
	g.Go(func() (err error) {
		home.Sponsors, err = s.sponsors.ListActive(gctx)
		return err
	})
	g.Go(func() (err error) {
		home.Socials, err = s.site.ActiveSocials(gctx)
		return err
	})
	g.Go(func() (err error) {
		home.Highlights, err = s.site.ActiveHighlights(gctx, highlightLimit)
		return err
	})
	g.Go(func() (err error) {
		home.Kits, err = s.products.ListKits(gctx, kitLimit)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &home, nil
}

func (s *service) FAQs(ctx context.Context) ([]models.FAQ, error) {
	return s.site.ActiveFAQs(ctx)
}
