package jobs

import (
	"context"
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/robfig/cron/v3"

	"shegamart/internal/domain"
	"shegamart/internal/logx"
)

// StatusCounter reports how many deliveries sit in each lifecycle status.
type StatusCounter interface {
	CountByStatus(ctx context.Context) (map[domain.DeliveryStatus]int64, error)
}

// StatusGaugeJob periodically copies delivery counts into the deliveries_by_status gauge.
type StatusGaugeJob struct {
	counter  StatusCounter
	gauge    *prometheus.GaugeVec
	interval time.Duration
	timeout  time.Duration
	cron     *cron.Cron
	logger   logx.Logger
}

// NewStatusGaugeJob creates the job; it does nothing until Start.
func NewStatusGaugeJob(counter StatusCounter, gauge *prometheus.GaugeVec, interval time.Duration, logger logx.Logger) *StatusGaugeJob {
	logger = logx.OrNop(logger)
	if interval <= 0 {
		interval = 30 * time.Second
	}
	return &StatusGaugeJob{
		counter:  counter,
		gauge:    gauge,
		interval: interval,
		timeout:  interval,
		cron:     cron.New(cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger))),
		logger:   logger.With(logx.String("component", "status_gauge_job")),
	}
}

// Start refreshes the gauge once and then on every tick.
func (j *StatusGaugeJob) Start() error {
	schedule := fmt.Sprintf("@every %s", j.interval)
	if _, err := j.cron.AddFunc(schedule, j.tick); err != nil {
		return fmt.Errorf("schedule %q: %w", schedule, err)
	}
	j.tick()
	j.cron.Start()
	j.logger.Info("status gauge job started", logx.Duration("interval", j.interval))
	return nil
}

// Stop halts scheduling; the returned context is done once a running refresh finishes.
func (j *StatusGaugeJob) Stop() context.Context {
	ctx := j.cron.Stop()
	j.logger.Info("status gauge job stopped")
	return ctx
}

func (j *StatusGaugeJob) tick() {
	ctx, cancel := context.WithTimeout(context.Background(), j.timeout)
	defer cancel()
	if err := j.Refresh(ctx); err != nil {
		j.logger.Error("status gauge refresh failed", logx.Err(err))
	}
}

// Refresh reads current counts and updates every status label.
func (j *StatusGaugeJob) Refresh(ctx context.Context) error {
	counts, err := j.counter.CountByStatus(ctx)
	if err != nil {
		return err
	}
	for _, s := range domain.AllStatuses {
		j.gauge.WithLabelValues(string(s)).Set(float64(counts[s]))
	}
	return nil
}
