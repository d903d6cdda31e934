package app

import (
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/dig"

	"shegamart/internal/config"
	"shegamart/internal/jobs"
	"shegamart/internal/logx"
	"shegamart/internal/service/delivery"
)

func registerJobs(container *dig.Container) error {
	return provideAll(container,
		func(cfg *config.Config, svc *delivery.Service, gauge *prometheus.GaugeVec, logger logx.Logger) *jobs.StatusGaugeJob {
			return jobs.NewStatusGaugeJob(svc, gauge, cfg.Delivery.StatsInterval, logger)
		},
		func(statusGauge *jobs.StatusGaugeJob) *jobs.Manager {
			return jobs.NewManager(statusGauge)
		},
	)
}
