package ratelimit

import (
	"sync"
	"time"

	"shegamart/internal/config"
)

// minSweepInterval is the shortest gap between two idle sweeps.
const minSweepInterval = time.Minute

// Buckets keeps one token bucket per key. Each bucket starts full at Burst
// and refills at Rate tokens per second.
type Buckets struct {
	rate    float64
	burst   float64
	idleTTL time.Duration
	maxKeys int
	clock   Clock

	mu        sync.Mutex
	keys      map[string]*allowance
	nextSweep time.Time
}

type allowance struct {
	tokens float64
	seen   time.Time
}

// FromConfig builds the limiter for the credential endpoints.
func FromConfig(clock Clock, cfg config.RateLimit) Limiter {
	if !cfg.Enabled {
		return Unlimited{}
	}
	return NewBuckets(clock, cfg)
}

// NewBuckets creates a Buckets limiter. Non-positive Rate and Burst fall back to 1.
func NewBuckets(clock Clock, cfg config.RateLimit) *Buckets {
	if clock == nil {
		clock = SystemClock{}
	}
	b := &Buckets{
		rate:    cfg.Rate,
		burst:   float64(cfg.Burst),
		idleTTL: cfg.TTL,
		maxKeys: cfg.MaxBuckets,
		clock:   clock,
		keys:    make(map[string]*allowance),
	}
	if b.rate <= 0 {
		b.rate = 1
	}
	if b.burst <= 0 {
		b.burst = 1
	}
	if b.maxKeys < 0 {
		b.maxKeys = 0
	}
	return b
}

// Allow spends one token of key. A new key is refused while the table is full.
func (b *Buckets) Allow(key string) bool {
	now := b.clock.Now()

	b.mu.Lock()
	defer b.mu.Unlock()

	b.sweep(now, false)

	a, ok := b.keys[key]
	if !ok {
		if b.full() {
			b.sweep(now, true)
			if b.full() {
				return false
			}
		}
		a = &allowance{tokens: b.burst, seen: now}
		b.keys[key] = a
	}

	if elapsed := now.Sub(a.seen); elapsed > 0 {
		a.tokens = min(b.burst, a.tokens+elapsed.Seconds()*b.rate)
	}
	a.seen = now

	if a.tokens < 1 {
		return false
	}
	a.tokens--
	return true
}

// Len reports how many keys are tracked.
func (b *Buckets) Len() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.keys)
}

func (b *Buckets) full() bool {
	return b.maxKeys > 0 && len(b.keys) >= b.maxKeys
}

// sweep drops keys idle longer than idleTTL. Caller holds mu.
func (b *Buckets) sweep(now time.Time, force bool) {
	if b.idleTTL <= 0 {
		return
	}
	if !force && now.Before(b.nextSweep) {
		return
	}
	b.nextSweep = now.Add(max(b.idleTTL, minSweepInterval))

	for k, a := range b.keys {
		if now.Sub(a.seen) > b.idleTTL {
			delete(b.keys, k)
		}
	}
}
