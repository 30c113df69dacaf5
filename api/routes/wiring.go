package routes

import (
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/angelmondragon/clubhouse-backend/internal/admin"
	"github.com/angelmondragon/clubhouse-backend/internal/auth"
	"github.com/angelmondragon/clubhouse-backend/internal/matches"
	"github.com/angelmondragon/clubhouse-backend/internal/media"
	"github.com/angelmondragon/clubhouse-backend/internal/memberships"
	"github.com/angelmondragon/clubhouse-backend/internal/news"
	"github.com/angelmondragon/clubhouse-backend/internal/orders"
	"github.com/angelmondragon/clubhouse-backend/internal/payments"
	product "github.com/angelmondragon/clubhouse-backend/internal/products"
	"github.com/angelmondragon/clubhouse-backend/internal/public"
	"github.com/angelmondragon/clubhouse-backend/internal/site"
	"github.com/angelmondragon/clubhouse-backend/internal/sponsors"
	"github.com/angelmondragon/clubhouse-backend/internal/team"
	"github.com/angelmondragon/clubhouse-backend/internal/tickets"
	"github.com/angelmondragon/clubhouse-backend/internal/users"
	"github.com/angelmondragon/clubhouse-backend/pkg/config"
	"github.com/angelmondragon/clubhouse-backend/pkg/db"
	"github.com/angelmondragon/clubhouse-backend/pkg/logger"
	"github.com/angelmondragon/clubhouse-backend/pkg/metrics"
	"github.com/angelmondragon/clubhouse-backend/pkg/qr"
	"github.com/angelmondragon/clubhouse-backend/pkg/redis"
)

// WiringParams are the process-level handles the services are built from.
// Redis and Registry may be nil.
type WiringParams struct {
	Config   *config.Config
	Logger   *logger.Logger
	DB       *db.Client
	Redis    *redis.Client
	Registry *prometheus.Registry
	Now      func() time.Time
}

// NewDependencies constructs every domain service over a single database handle.
func NewDependencies(p WiringParams) (*Dependencies, error) {
	if p.Config == nil || p.DB == nil {
		return nil, fmt.Errorf("config and database are required")
	}
	now := p.Now
	if now == nil {
		now = time.Now
	}
	cfg := p.Config
	conn := p.DB.DB()
	urls := media.NewURLResolver(cfg.Assets.PublicURL)

	var reg prometheus.Registerer
	var gatherer prometheus.Gatherer
	if p.Registry != nil {
		reg, gatherer = p.Registry, p.Registry
	}

	userRepo := users.NewRepository(conn)
	productRepo := product.NewRepository(conn)
	ticketRepo := tickets.NewRepository(conn)
	orderRepo := orders.NewRepository(conn)

	authSvc, err := auth.NewService(auth.ServiceParams{
		UserRepo:       userRepo,
		JWTConfig:      cfg.JWT,
		PasswordConfig: cfg.Password,
		Now:            now,
		Logger:         p.Logger,
	})
	if err != nil {
		return nil, fmt.Errorf("auth service: %w", err)
	}

	checker, err := memberships.NewChecker(userRepo, now)
	if err != nil {
		return nil, fmt.Errorf("membership checker: %w", err)
	}

	renderer, err := qr.NewRenderer(cfg.Payments.QRWidth, cfg.Payments.QRMargin)
	if err != nil {
		return nil, fmt.Errorf("qr renderer: %w", err)
	}

	paymentsSvc, err := payments.NewService(payments.ServiceParams{
		Tx:              p.DB,
		Orders:          orderRepo,
		Transactions:    payments.NewTransactionRepository(conn),
		Tickets:         ticketRepo,
		Products:        productRepo,
		Users:           userRepo,
		QR:              renderer,
		Metrics:         metrics.NewPaymentMetrics(reg),
		Logger:          p.Logger,
		MembershipPrice: cfg.Payments.MembershipPrice,
		Currency:        cfg.Payments.Currency,
		Now:             now,
	})
	if err != nil {
		return nil, fmt.Errorf("payments service: %w", err)
	}

	productSvc, err := product.NewService(productRepo, urls, cfg.Payments.Currency)
	if err != nil {
		return nil, fmt.Errorf("product service: %w", err)
	}
	orderSvc, err := orders.NewService(orderRepo, urls)
	if err != nil {
		return nil, fmt.Errorf("orders service: %w", err)
	}
	ticketSvc, err := tickets.NewService(tickets.ServiceParams{Repo: ticketRepo, DefaultCurrency: cfg.Payments.Currency, Now: now})
	if err != nil {
		return nil, fmt.Errorf("tickets service: %w", err)
	}
	newsSvc, err := news.NewService(news.NewRepository(conn), urls)
	if err != nil {
		return nil, fmt.Errorf("news service: %w", err)
	}
	teamSvc, err := team.NewService(team.NewRepository(conn), urls)
	if err != nil {
		return nil, fmt.Errorf("team service: %w", err)
	}
	matchSvc, err := matches.NewService(matches.NewRepository(conn), now)
	if err != nil {
		return nil, fmt.Errorf("matches service: %w", err)
	}
	mediaSvc, err := media.NewService(media.NewRepository(conn), urls)
	if err != nil {
		return nil, fmt.Errorf("media service: %w", err)
	}
	sponsorSvc, err := sponsors.NewService(conn, urls)
	if err != nil {
		return nil, fmt.Errorf("sponsors service: %w", err)
	}
	siteSvc, err := site.NewService(conn, urls)
	if err != nil {
		return nil, fmt.Errorf("site service: %w", err)
	}
	publicSvc, err := public.NewService(public.ServiceParams{
		Site:     siteSvc,
		News:     newsSvc,
		Matches:  matchSvc,
		Sponsors: sponsorSvc,
		Products: productSvc,
	})
	if err != nil {
		return nil, fmt.Errorf("public service: %w", err)
	}
	adminSvc, err := admin.NewService(conn)
	if err != nil {
		return nil, fmt.Errorf("admin service: %w", err)
	}

	return &Dependencies{
		Config:      cfg,
		Logger:      p.Logger,
		DB:          p.DB,
		Redis:       p.Redis,
		Gatherer:    gatherer,
		HTTPMetrics: metrics.NewHTTPMetrics(reg),
		Membership:  checker,
		Auth:        authSvc,
		Payments:    paymentsSvc,
		Products:    productSvc,
		Orders:      orderSvc,
		Tickets:     ticketSvc,
		News:        newsSvc,
		Team:        teamSvc,
		Matches:     matchSvc,
		Public:      publicSvc,
		Media:       mediaSvc,
		Sponsors:    sponsorSvc,
		Site:        siteSvc,
		Admin:       adminSvc,
	}, nil
}
