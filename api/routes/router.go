package routes

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/angelmondragon/clubhouse-backend/api/controllers"
	admincontrollers "github.com/angelmondragon/clubhouse-backend/api/controllers/admin"
	matchcontrollers "github.com/angelmondragon/clubhouse-backend/api/controllers/matches"
	newscontrollers "github.com/angelmondragon/clubhouse-backend/api/controllers/news"
	paymentcontrollers "github.com/angelmondragon/clubhouse-backend/api/controllers/payments"
	shopcontrollers "github.com/angelmondragon/clubhouse-backend/api/controllers/shop"
	teamcontrollers "github.com/angelmondragon/clubhouse-backend/api/controllers/team"
	ticketcontrollers "github.com/angelmondragon/clubhouse-backend/api/controllers/tickets"
	"github.com/angelmondragon/clubhouse-backend/api/middleware"
	"github.com/angelmondragon/clubhouse-backend/internal/admin"
	"github.com/angelmondragon/clubhouse-backend/internal/auth"
	"github.com/angelmondragon/clubhouse-backend/internal/matches"
	"github.com/angelmondragon/clubhouse-backend/internal/media"
	"github.com/angelmondragon/clubhouse-backend/internal/news"
	"github.com/angelmondragon/clubhouse-backend/internal/orders"
	"github.com/angelmondragon/clubhouse-backend/internal/payments"
	product "github.com/angelmondragon/clubhouse-backend/internal/products"
	"github.com/angelmondragon/clubhouse-backend/internal/public"
	"github.com/angelmondragon/clubhouse-backend/internal/site"
	"github.com/angelmondragon/clubhouse-backend/internal/sponsors"
	"github.com/angelmondragon/clubhouse-backend/internal/team"
	"github.com/angelmondragon/clubhouse-backend/internal/tickets"
	"github.com/angelmondragon/clubhouse-backend/pkg/config"
	"github.com/angelmondragon/clubhouse-backend/pkg/enums"
	"github.com/angelmondragon/clubhouse-backend/pkg/logger"
	"github.com/angelmondragon/clubhouse-backend/pkg/metrics"
	"github.com/angelmondragon/clubhouse-backend/pkg/redis"
)

type pinger interface {
	Ping(ctx context.Context) error
}

type membershipChecker interface {
	IsActiveUser(ctx context.Context, userID uuid.UUID) (bool, error)
}

// Dependencies is everything the HTTP surface needs. Redis is optional: without
// it idempotent replay and auth throttling are disabled.
type Dependencies struct {
	Config      *config.Config
	Logger      *logger.Logger
	DB          pinger
	Redis       *redis.Client
	Gatherer    prometheus.Gatherer
	HTTPMetrics *metrics.HTTPMetrics
	Membership  membershipChecker

	Auth     auth.Service
	Payments payments.Service
	Products product.Service
	Orders   orders.Service
	Tickets  tickets.Service
	News     news.Service
	Team     team.Service
	Matches  matches.Service
	Public   public.Service
	Media    media.Service
	Sponsors sponsors.Service
	Site     site.Service
	Admin    admin.Service
}

func NewRouter(deps Dependencies) http.Handler {
	cfg := deps.Config
	logg := deps.Logger

	r := chi.NewRouter()
	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.Logging(logg, deps.HTTPMetrics),
		middleware.CORS(cfg.CORS.AllowedOrigins()),
	)

	var cache pinger
	rateLimit := func(middleware.AuthThrottle) func(http.Handler) http.Handler { return passthrough }
	idempotent := passthrough
	if deps.Redis != nil {
		cache = deps.Redis
		rateLimit = func(throttle middleware.AuthThrottle) func(http.Handler) http.Handler {
			return middleware.AuthRateLimit(throttle, deps.Redis, logg)
		}
		idempotent = middleware.Idempotency(deps.Redis, logg)
	}

	requireAuth := middleware.Auth(cfg.JWT, logg)

	r.Route("/health", func(r chi.Router) {
		r.Get("/", controllers.Health(deps.DB, logg))
		r.Get("/ready", controllers.HealthReady(deps.DB, cache, logg))
	})
	if deps.Gatherer != nil {
		r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(deps.Gatherer, promhttp.HandlerOpts{}))
	}

	r.Route("/auth", func(r chi.Router) {
		r.With(rateLimit(middleware.RegisterThrottle(cfg.AuthRateLimit))).Post("/register", controllers.AuthRegister(deps.Auth, logg))
		r.With(rateLimit(middleware.LoginThrottle(cfg.AuthRateLimit))).Post("/login", controllers.AuthLogin(deps.Auth, logg))
		r.With(requireAuth).Get("/me", controllers.AuthMe(deps.Auth, logg))
	})

	r.Route("/public", func(r chi.Router) {
		r.Get("/home", controllers.PublicHome(deps.Public, logg))
		r.Get("/faqs", controllers.PublicFAQs(deps.Public, logg))
	})

	r.Route("/news", func(r chi.Router) {
		r.Get("/", newscontrollers.List(deps.News, logg))
		r.Get("/{slug}", newscontrollers.Detail(deps.News, logg))
	})

	r.Route("/team", func(r chi.Router) {
		r.Get("/", teamcontrollers.Roster(deps.Team, logg))
		r.Get("/{slug}", teamcontrollers.Member(deps.Team, logg))
	})

	r.Route("/matches", func(r chi.Router) {
		r.Get("/", matchcontrollers.List(deps.Matches, logg))
		r.Get("/upcoming", matchcontrollers.Upcoming(deps.Matches, logg))
		r.Get("/results", matchcontrollers.Results(deps.Matches, logg))
	})

	r.Route("/shop", func(r chi.Router) {
		r.Use(requireAuth)
		r.Use(middleware.RequireMembership(deps.Membership, logg))
		r.Get("/products", shopcontrollers.Products(deps.Products, logg))
		r.Get("/products/{slug}", shopcontrollers.ProductDetail(deps.Products, logg))
		r.Get("/orders/me", shopcontrollers.MyOrders(deps.Orders, logg))
	})

	r.Route("/tickets", func(r chi.Router) {
		r.Get("/events/featured", ticketcontrollers.Featured(deps.Tickets, logg))
		r.Get("/events/{id}", ticketcontrollers.Event(deps.Tickets, logg))
		r.With(requireAuth).Get("/me", ticketcontrollers.Mine(deps.Tickets, logg))
	})

	r.Route("/payments", func(r chi.Router) {
		r.Use(requireAuth)
		r.With(idempotent).Post("/membership/checkout", paymentcontrollers.MembershipCheckout(deps.Payments, logg))
		r.With(idempotent).Post("/shop/checkout", paymentcontrollers.ShopCheckout(deps.Payments, logg))
		r.With(idempotent).Post("/tickets/checkout", paymentcontrollers.TicketsCheckout(deps.Payments, logg))
		r.Post("/mock/confirm", paymentcontrollers.MockConfirm(deps.Payments, logg))
	})

	r.Route("/admin", func(r chi.Router) {
		r.Use(requireAuth)
		r.Use(middleware.RequireRoles(logg, enums.StaffRoles...))

		r.Get("/overview", admincontrollers.Overview(deps.Admin, logg))
		r.Get("/media", admincontrollers.MediaList(deps.Media, logg))
		r.Post("/media", admincontrollers.MediaRegister(deps.Media, logg))
		r.Post("/ticket-events", admincontrollers.CreateTicketEvent(deps.Tickets, logg))
		r.Get("/settings", admincontrollers.Settings(deps.Site, logg))
		r.Put("/settings", admincontrollers.UpsertSettings(deps.Site, logg))

		mountResource(r, "/news", admincontrollers.News(deps.News, logg))
		mountResource(r, "/matches", admincontrollers.Matches(deps.Matches, logg))
		mountResource(r, "/team", admincontrollers.Team(deps.Team, logg))
		mountResource(r, "/sponsors", admincontrollers.Sponsors(deps.Sponsors, logg))
		mountResource(r, "/products", admincontrollers.Products(deps.Products, logg))
		mountResource(r, "/faqs", admincontrollers.FAQs(deps.Site, logg))
		mountResource(r, "/highlights", admincontrollers.Highlights(deps.Site, logg))
	})

	return r
}

func mountResource(r chi.Router, path string, res admincontrollers.Resource) {
	r.Route(path, func(r chi.Router) {
		r.Get("/", res.List)
		r.Post("/", res.Create)
		r.Put("/{id}", res.Update)
		r.Delete("/{id}", res.Delete)
	})
}

func passthrough(next http.Handler) http.Handler {
	return next
}
