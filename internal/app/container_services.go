package app

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/dig"

	"shegamart/internal/auth"
	"shegamart/internal/config"
	"shegamart/internal/domain"
	"shegamart/internal/gateway/geocoding"
	"shegamart/internal/logx"
	"shegamart/internal/repository"
	"shegamart/internal/service/account"
	"shegamart/internal/service/delivery"
	"shegamart/internal/service/product"
)

// operationTimeout bounds every store round trip made by a service call.
type operationTimeout time.Duration

type geocoderIn struct {
	dig.In

	Config  *config.Config
	Logger  logx.Logger
	Retries prometheus.Counter `name:"gateway_retries_total"`
}

func registerDomainServices(container *dig.Container) error {
	return provideAll(container,
		func() operationTimeout { return operationTimeout(3 * time.Second) },
		repository.NewDeliveryRepo,
		repository.NewAccountRepo,
		repository.NewProductRepo,
		newTokens,
		newDeliveryConfig,
		newDeliveryService,
		newAccountService,
		newProductService,
		newGeocoder,
	)
}

func newTokens(cfg *config.Config) (*auth.Tokens, error) {
	return auth.NewTokens(cfg.Auth.Secret, cfg.Auth.TokenTTL)
}

func newDeliveryConfig(cfg *config.Config) delivery.Config {
	d := cfg.Delivery
	return delivery.Config{
		BaseFee:        d.BaseFee,
		CommissionRate: d.CommissionRate,
		Warehouse: domain.Location{
			Lat:     d.Warehouse.Lat,
			Lng:     d.Warehouse.Lng,
			Address: d.Warehouse.Address,
		},
	}
}

func newDeliveryService(
	repo *repository.DeliveryRepo,
	cfg delivery.Config,
	timeout operationTimeout,
	logger logx.Logger,
	m lifecycleMetricsIn,
) *delivery.Service {
	return delivery.NewDeliveryService(repo, delivery.NewOrderIDGenerator(), cfg, time.Duration(timeout), logger,
		delivery.WithMetrics(delivery.Metrics{Created: m.Created, PayoutCredited: m.PayoutCredited}),
	)
}

func newAccountService(
	cfg *config.Config,
	repo *repository.AccountRepo,
	tokens *auth.Tokens,
	timeout operationTimeout,
	logger logx.Logger,
) *account.Service {
	return account.NewService(repo, tokens, time.Duration(timeout), logger).
		WithAdminEmails(cfg.Auth.AdminEmails...)
}

func newProductService(repo *repository.ProductRepo, timeout operationTimeout, logger logx.Logger) *product.Service {
	return product.NewService(repo, time.Duration(timeout), logger)
}

func newGeocoder(in geocoderIn) *geocoding.RetryingGateway {
	g := in.Config.Geocoder
	client := geocoding.NewClient(geocoding.Config{
		BaseURL:     g.BaseURL,
		UserAgent:   g.UserAgent,
		CountryCode: g.CountryCode,
		Timeout:     g.Timeout,
	})
	return geocoding.NewRetryingGateway(client, in.Logger, in.Retries, geocoding.RetryConfig{
		MaxAttempts: g.MaxAttempts,
		BaseDelay:   g.BaseDelay,
		MaxDelay:    g.MaxDelay,
	})
}
