package geocoding

import (
	"context"
	"encoding/json"
	"time"

	"shegamart/internal/logx"
)

type gateway interface {
	Reverse(ctx context.Context, lat, lng float64) (json.RawMessage, error)
	Search(ctx context.Context, q string) (json.RawMessage, error)
}

type counter interface {
	Inc()
}

// RetryConfig describes RetryingGateway behaviour.
type RetryConfig struct {
	MaxAttempts int
	BaseDelay   time.Duration
	MaxDelay    time.Duration
}

// RetryingGateway retries transient geocoder failures with capped exponential backoff.
type RetryingGateway struct {
	next    gateway
	logger  logx.Logger
	retries counter
	cfg     RetryConfig
}

// NewRetryingGateway wraps next; returns nil if next is nil.
func NewRetryingGateway(next gateway, logger logx.Logger, retries counter, cfg RetryConfig) *RetryingGateway {
	if next == nil {
		return nil
	}
	if cfg.MaxAttempts <= 0 {
		cfg.MaxAttempts = 1
	}
	logger = logx.OrNop(logger)
	return &RetryingGateway{next: next, logger: logger, retries: retries, cfg: cfg}
}

// Reverse retries the wrapped Reverse.
func (g *RetryingGateway) Reverse(ctx context.Context, lat, lng float64) (json.RawMessage, error) {
	return g.do(ctx, "Reverse", func() (json.RawMessage, error) {
		return g.next.Reverse(ctx, lat, lng)
	})
}

// Search retries the wrapped Search.
func (g *RetryingGateway) Search(ctx context.Context, q string) (json.RawMessage, error) {
	return g.do(ctx, "Search", func() (json.RawMessage, error) {
		return g.next.Search(ctx, q)
	})
}

func (g *RetryingGateway) do(ctx context.Context, method string, call func() (json.RawMessage, error)) (json.RawMessage, error) {
	var lastErr error
	for attempt := 1; attempt <= g.cfg.MaxAttempts; attempt++ {
		out, err := call()
		if err == nil {
			return out, nil
		}
		lastErr = err

		if ctx.Err() != nil || attempt == g.cfg.MaxAttempts || !isRetryable(err) {
			break
		}

		delay := backoff(g.cfg.BaseDelay, g.cfg.MaxDelay, attempt)
		if g.retries != nil {
			g.retries.Inc()
		}
		g.logger.Warn("geocoding gateway retry",
			logx.String("method", method),
			logx.Int("attempt", attempt),
			logx.Duration("delay", delay),
			logx.Err(err),
		)
		if !sleepWithContext(ctx, delay) {
			break
		}
	}
	return nil, lastErr
}

func backoff(base, max time.Duration, attempt int) time.Duration {
	d := base << (attempt - 1)
	if d > max || d < 0 {
		return max
	}
	return d
}

func sleepWithContext(ctx context.Context, d time.Duration) bool {
	if d <= 0 {
		return ctx.Err() == nil
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-t.C:
		return true
	}
}
