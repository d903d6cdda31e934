package router

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"shegamart/internal/domain"
	"shegamart/internal/http/handlers"
	"shegamart/internal/http/middleware"
	"shegamart/internal/logx"
)

const defaultTimeout = 5 * time.Second

// Deps carries everything the route table needs.
type Deps struct {
	Base       *handlers.Handlers
	Auth       *handlers.AuthHandler
	Accounts   *handlers.AccountHandler
	Location   *handlers.LocationHandler
	Deliveries *handlers.DeliveryHandler
	Products   *handlers.ProductHandler

	Tokens middleware.TokenParser
	Logger logx.Logger

	// RateLimit guards the credential endpoints; nil disables it.
	RateLimit func(http.Handler) http.Handler
	// Metrics defaults to the global prometheus registry.
	Metrics http.Handler
	Timeout time.Duration
}

// New constructs a chi-based http.Handler with base middleware and routes.
func New(d Deps) http.Handler {
	d.Logger = logx.OrNop(d.Logger)
	if d.Metrics == nil {
		d.Metrics = promhttp.Handler()
	}
	if d.Timeout <= 0 {
		d.Timeout = defaultTimeout
	}

	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.Observability(d.Logger))
	r.Use(chimw.Recoverer)
	r.Use(chimw.Timeout(d.Timeout))

	r.Get("/ping", d.Base.Ping)
	r.Method(http.MethodHead, "/healthcheck", http.HandlerFunc(d.Base.HealthcheckHead))
	r.Method(http.MethodGet, "/metrics", d.Metrics)
	r.NotFound(d.Base.NotFound)
	r.MethodNotAllowed(d.Base.MethodNotAllowed)

	authenticate := middleware.Authenticate(d.Tokens, d.Logger)
	driversOnly := middleware.RequireRole(d.Logger, domain.RoleDriver)
	adminsOnly := middleware.RequireRole(d.Logger, domain.RoleAdmin)

	r.Route("/api", func(r chi.Router) {
		r.Route("/auth", func(r chi.Router) {
			if d.RateLimit != nil {
				r.Use(d.RateLimit)
			}
			r.Post("/register", d.Auth.Register)
			r.Post("/login", d.Auth.Login)
		})

		r.Get("/location/reverse", d.Location.Reverse)
		r.Get("/location/search", d.Location.Search)
		r.Get("/products", d.Products.List)

		r.Group(func(r chi.Router) {
			r.Use(authenticate)

			r.Get("/accounts/me", d.Accounts.Me)
			r.Put("/location/me", d.Accounts.UpdateLocation)
			r.Post("/orders/checkout", d.Deliveries.Checkout)
			r.Get("/deliveries/{id}", d.Deliveries.Get)
			r.Post("/products/add", d.Products.Add)

			r.Route("/driver", func(r chi.Router) {
				r.Post("/apply", d.Accounts.Apply)
				r.Get("/deliveries", d.Deliveries.Available)

				r.Group(func(r chi.Router) {
					r.Use(driversOnly)
					r.Get("/my-list", d.Deliveries.MyList)
					r.Post("/accept", d.Deliveries.Accept)
					r.Post("/start", d.Deliveries.Start)
					r.Post("/complete", d.Deliveries.Complete)
				})
			})
		})

		r.Route("/admin", func(r chi.Router) {
			r.Group(func(r chi.Router) {
				if d.RateLimit != nil {
					r.Use(d.RateLimit)
				}
				r.Post("/login", d.Auth.AdminLogin)
				r.Post("/check-access", d.Auth.CheckAccess)
			})

			r.Group(func(r chi.Router) {
				r.Use(authenticate, adminsOnly)
				r.Get("/drivers/pending", d.Accounts.PendingDrivers)
				r.Post("/drivers/verify", d.Accounts.VerifyDriver)
				r.Post("/deliveries/{id}/cancel", d.Deliveries.Cancel)
			})
		})
	})

	return r
}
