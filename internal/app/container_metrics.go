package app

import (
	"errors"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/dig"

	"shegamart/internal/metrics"
)

const (
	rateLimitExceededName = "rate_limit_exceeded_total"
	gatewayRetriesName    = "gateway_retries_total"
	deliveriesCreatedName = "deliveries_created_total"
	payoutCreditedName    = "delivery_payout_credited_total"
)

type lifecycleMetricsIn struct {
	dig.In

	Created        prometheus.Counter `name:"deliveries_created_total"`
	PayoutCredited prometheus.Counter `name:"delivery_payout_credited_total"`
}

func registerMetrics(container *dig.Container, reg prometheus.Registerer) error {
	counter := func(build func() prometheus.Counter) func() (prometheus.Counter, error) {
		return func() (prometheus.Counter, error) {
			c, err := register(reg, build())
			if err != nil {
				return nil, err
			}
			return c.(prometheus.Counter), nil
		}
	}

	for name, build := range map[string]func() prometheus.Counter{
		rateLimitExceededName: metrics.NewRateLimitExceededTotal,
		gatewayRetriesName:    metrics.NewGatewayRetriesTotal,
		deliveriesCreatedName: metrics.NewDeliveriesCreatedTotal,
		payoutCreditedName:    metrics.NewPayoutCreditedTotal,
	} {
		if err := provideNamed(container, name, counter(build)); err != nil {
			return err
		}
	}

	return provideAll(container, func() (*prometheus.GaugeVec, error) {
		g, err := register(reg, metrics.NewDeliveriesByStatus())
		if err != nil {
			return nil, err
		}
		return g.(*prometheus.GaugeVec), nil
	})
}

// register returns the already registered collector when an identical one exists.
func register(reg prometheus.Registerer, c prometheus.Collector) (prometheus.Collector, error) {
	err := reg.Register(c)
	if err == nil {
		return c, nil
	}
	var are prometheus.AlreadyRegisteredError
	if errors.As(err, &are) {
		return are.ExistingCollector, nil
	}
	return nil, err
}
