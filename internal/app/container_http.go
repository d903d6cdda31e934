package app

import (
	"fmt"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/dig"

	"shegamart/internal/auth"
	"shegamart/internal/config"
	"shegamart/internal/gateway/geocoding"
	"shegamart/internal/http/handlers"
	"shegamart/internal/http/middleware/ratelimit"
	"shegamart/internal/http/pprofserver"
	"shegamart/internal/http/router"
	"shegamart/internal/logx"
	"shegamart/internal/service/account"
	"shegamart/internal/service/delivery"
	"shegamart/internal/service/product"
)

const debugServerName = "debug_server"

type rateLimitIn struct {
	dig.In

	Logger  logx.Logger
	Counter prometheus.Counter `name:"rate_limit_exceeded_total"`
	Limiter ratelimit.Limiter
}

type routerIn struct {
	dig.In

	Base       *handlers.Handlers
	Auth       *handlers.AuthHandler
	Accounts   *handlers.AccountHandler
	Location   *handlers.LocationHandler
	Deliveries *handlers.DeliveryHandler
	Products   *handlers.ProductHandler
	Tokens     *auth.Tokens
	Logger     logx.Logger
	RateLimit  *ratelimit.Middleware
}

type debugServerOut struct {
	dig.Out

	Server *http.Server `name:"debug_server"`
}

func registerHTTP(container *dig.Container) error {
	return provideAll(container,
		handlers.New,
		func(logger logx.Logger, svc *account.Service) *handlers.AuthHandler {
			return handlers.NewAuthHandler(logger, svc)
		},
		func(logger logx.Logger, svc *account.Service) *handlers.AccountHandler {
			return handlers.NewAccountHandler(logger, svc)
		},
		func(logger logx.Logger, geo *geocoding.RetryingGateway) *handlers.LocationHandler {
			return handlers.NewLocationHandler(logger, geo)
		},
		func(logger logx.Logger, deliveries *delivery.Service, accounts *account.Service) *handlers.DeliveryHandler {
			return handlers.NewDeliveryHandler(logger, deliveries, accounts)
		},
		func(logger logx.Logger, products *product.Service) *handlers.ProductHandler {
			return handlers.NewProductHandler(logger, products)
		},
		newRateLimitClock,
		newRateLimiter,
		newRateLimitMiddleware,
		newRouter,
		newServer,
		newDebugServer,
	)
}

func newRateLimiter(cfg *config.Config, clock ratelimit.Clock) ratelimit.Limiter {
	return ratelimit.FromConfig(clock, cfg.RateLimit)
}

func newRateLimitClock() ratelimit.Clock {
	return ratelimit.SystemClock{}
}

func newRateLimitMiddleware(in rateLimitIn) *ratelimit.Middleware {
	return ratelimit.New(in.Logger, in.Counter, in.Limiter, ratelimit.WithKeyFunc(ratelimit.CredentialKey))
}

func newRouter(in routerIn) http.Handler {
	return router.New(router.Deps{
		Base:       in.Base,
		Auth:       in.Auth,
		Accounts:   in.Accounts,
		Location:   in.Location,
		Deliveries: in.Deliveries,
		Products:   in.Products,
		Tokens:     in.Tokens,
		Logger:     in.Logger,
		RateLimit:  in.RateLimit.Handler(),
	})
}

func newServer(cfg *config.Config, mux http.Handler) *http.Server {
	return &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Port),
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
}

// newDebugServer returns a nil server when DEBUG_ADDR is empty.
func newDebugServer(cfg *config.Config) debugServerOut {
	if cfg.Debug.Addr == "" {
		return debugServerOut{}
	}
	return debugServerOut{Server: &http.Server{
		Addr:              cfg.Debug.Addr,
		Handler:           pprofserver.Handler(pprofserver.Config{User: cfg.Debug.User, Pass: cfg.Debug.Pass}),
		ReadHeaderTimeout: 5 * time.Second,
	}}
}
