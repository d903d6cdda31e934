package metrics

import "github.com/prometheus/client_golang/prometheus"

// NewRateLimitExceededTotal returns a Prometheus counter for the number of rejected HTTP requests due to rate limiting
func NewRateLimitExceededTotal() prometheus.Counter {
	return prometheus.NewCounter(prometheus.CounterOpts{
		Name: "rate_limit_exceeded_total",
		Help: "Total number of rejected HTTP requests due to rate limiting",
	})
}

// NewGatewayRetriesTotal returns a Prometheus counter for the number of retry attempts performed by gateways
func NewGatewayRetriesTotal() prometheus.Counter {
	return prometheus.NewCounter(prometheus.CounterOpts{
		Name: "gateway_retries_total",
		Help: "Total number of retry attempts performed by gateways",
	})
}

// NewDeliveriesCreatedTotal returns a Prometheus counter for deliveries created at checkout
func NewDeliveriesCreatedTotal() prometheus.Counter {
	return prometheus.NewCounter(prometheus.CounterOpts{
		Name: "deliveries_created_total",
		Help: "Total number of deliveries created at checkout",
	})
}

// NewPayoutCreditedTotal returns a Prometheus counter for the payout amount credited to drivers
func NewPayoutCreditedTotal() prometheus.Counter {
	return prometheus.NewCounter(prometheus.CounterOpts{
		Name: "delivery_payout_credited_total",
		Help: "Total payout amount credited to drivers on completed deliveries",
	})
}

// NewDeliveriesByStatus returns a gauge of deliveries per lifecycle status
func NewDeliveriesByStatus() *prometheus.GaugeVec {
	return prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Name: "deliveries_by_status",
		Help: "Current number of deliveries per lifecycle status",
	}, []string{"status"})
}
