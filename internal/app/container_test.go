package app

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/dig"

	"shegamart/internal/config"
	"shegamart/internal/http/handlers"
	"shegamart/internal/http/middleware/ratelimit"
	"shegamart/internal/jobs"
	"shegamart/internal/service/account"
	"shegamart/internal/service/delivery"
	"shegamart/internal/service/orders"
	"shegamart/internal/transport/kafka"
)

func testConfig() *config.Config {
	return &config.Config{
		Port:      8080,
		DB:        config.DefaultDB(),
		Delivery:  config.DefaultDelivery(),
		Auth:      config.Auth{Secret: "test-secret", TokenTTL: time.Hour},
		Geocoder:  config.DefaultGeocoder(),
		RateLimit: config.DefaultRateLimit(),
		Log:       config.Log{Level: "error", Backend: "slog"},
	}
}

func stubConnect(context.Context, string, int, time.Duration) (*pgxpool.Pool, error) {
	return &pgxpool.Pool{}, nil
}

func newTestBuilder(cfg *config.Config) *ContainerBuilder {
	return NewContainerBuilder().
		WithConfig(cfg).
		WithDBConnect(stubConnect).
		WithRegisterer(prometheus.NewRegistry()).
		WithLogFatalf(func(format string, args ...interface{}) {
			panic("unexpected fatal")
		})
}

func TestProvideAll_WrapsProviderError(t *testing.T) {
	t.Parallel()

	c := dig.New()
	err := provideAll(c, func() int { return 1 }, func() int { return 2 })
	require.Error(t, err)
	assert.Contains(t, err.Error(), "provide func() int")
}

func TestRegisterDb_UsesConnectFunc(t *testing.T) {
	t.Parallel()

	var gotDSN string
	connect := func(_ context.Context, dsn string, retries int, _ time.Duration) (*pgxpool.Pool, error) {
		gotDSN = dsn
		assert.Equal(t, 10, retries)
		return &pgxpool.Pool{}, nil
	}

	cfg := testConfig()
	c := dig.New()
	require.NoError(t, c.Provide(func() context.Context { return context.Background() }))
	require.NoError(t, c.Provide(func() *config.Config { return cfg }))
	require.NoError(t, registerDb(c, connect))

	require.NoError(t, c.Invoke(func(pool *pgxpool.Pool) {
		assert.NotNil(t, pool)
	}))
	assert.Equal(t, cfg.DB.DSN(), gotDSN)
}

func TestRegisterDb_PropagatesConnectError(t *testing.T) {
	t.Parallel()

	connect := func(context.Context, string, int, time.Duration) (*pgxpool.Pool, error) {
		return nil, errors.New("db down")
	}
	c := dig.New()
	require.NoError(t, c.Provide(func() context.Context { return context.Background() }))
	require.NoError(t, c.Provide(testConfig))
	require.NoError(t, registerDb(c, connect))

	err := c.Invoke(func(*pgxpool.Pool) {})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "db down")
}

func TestBuild_ProvidesServerHandlersAndJobs(t *testing.T) {
	t.Parallel()

	c := newTestBuilder(testConfig()).MustBuild(context.Background())

	type in struct {
		dig.In

		Server      *http.Server
		DebugServer *http.Server `name:"debug_server"`
		Base        *handlers.Handlers
		Deliveries  *handlers.DeliveryHandler
		Products    *handlers.ProductHandler
		Jobs        *jobs.Manager
		Limiter     ratelimit.Limiter
	}
	err := c.Invoke(func(p in) {
		require.NotNil(t, p.Server)
		assert.Equal(t, ":8080", p.Server.Addr)
		assert.Greater(t, p.Server.ReadHeaderTimeout, time.Duration(0))
		assert.Greater(t, p.Server.ReadTimeout, time.Duration(0))
		assert.Greater(t, p.Server.WriteTimeout, time.Duration(0))
		assert.Greater(t, p.Server.IdleTimeout, time.Duration(0))
		assert.Nil(t, p.DebugServer)
		assert.NotNil(t, p.Base)
		assert.NotNil(t, p.Deliveries)
		assert.NotNil(t, p.Products)
		assert.NotNil(t, p.Jobs)
		assert.IsType(t, &ratelimit.Buckets{}, p.Limiter)
	})
	require.NoError(t, err)
}

func TestBuild_RateLimitDisabledIsUnlimited(t *testing.T) {
	t.Parallel()

	cfg := testConfig()
	cfg.RateLimit.Enabled = false
	c := newTestBuilder(cfg).MustBuild(context.Background())

	require.NoError(t, c.Invoke(func(l ratelimit.Limiter) {
		assert.IsType(t, ratelimit.Unlimited{}, l)
	}))
}

func TestBuild_DebugServerWhenAddrSet(t *testing.T) {
	t.Parallel()

	cfg := testConfig()
	cfg.Debug = config.Debug{Addr: "127.0.0.1:6060", User: "u", Pass: "p"}
	c := newTestBuilder(cfg).MustBuild(context.Background())

	type in struct {
		dig.In

		DebugServer *http.Server `name:"debug_server"`
	}
	require.NoError(t, c.Invoke(func(p in) {
		require.NotNil(t, p.DebugServer)
		assert.Equal(t, "127.0.0.1:6060", p.DebugServer.Addr)
	}))
}

func TestBuild_AccountServiceKnowsAdminEmails(t *testing.T) {
	t.Parallel()

	cfg := testConfig()
	cfg.Auth.AdminEmails = []string{"Boss@Shega.et"}
	c := newTestBuilder(cfg).MustBuild(context.Background())

	require.NoError(t, c.Invoke(func(svc *account.Service) {
		ok, err := svc.CheckAccess(context.Background(), " boss@shega.et")
		require.NoError(t, err)
		assert.True(t, ok)
	}))
}

func TestBuild_MissingSecretFailsOnInvoke(t *testing.T) {
	t.Parallel()

	cfg := testConfig()
	cfg.Auth.Secret = ""
	c := newTestBuilder(cfg).MustBuild(context.Background())

	err := c.Invoke(func(*account.Service) {})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "jwt secret is empty")
}

func TestBuildWorker_ProvidesProcessorAndNilConsumerWithoutBrokers(t *testing.T) {
	t.Parallel()

	c := newTestBuilder(testConfig()).MustBuildWorker(context.Background())

	err := c.Invoke(func(p *orders.Processor, consumer *kafka.Consumer, svc *delivery.Service) {
		assert.NotNil(t, p)
		assert.NotNil(t, svc)
		assert.Nil(t, consumer)
	})
	require.NoError(t, err)
}

func TestMustBuild_CallsFatalOnConfigError(t *testing.T) {
	t.Parallel()

	var fatal string
	b := NewContainerBuilder().
		WithRegisterer(prometheus.NewRegistry()).
		WithLogFatalf(func(format string, _ ...interface{}) { fatal = format })
	b.loadConfig = func() (*config.Config, error) { return nil, errors.New("bad env") }

	c := b.MustBuild(context.Background())
	require.NotNil(t, c)

	// config is resolved lazily, so the failure surfaces on invoke
	err := c.Invoke(func(*config.Config) {})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "bad env")
	assert.Empty(t, fatal)
}

func TestRegisterMetrics_SharedRegistryReturnsExistingCollectors(t *testing.T) {
	t.Parallel()

	reg := prometheus.NewRegistry()
	type in struct {
		dig.In

		Created prometheus.Counter `name:"deliveries_created_total"`
		Gauge   *prometheus.GaugeVec
	}

	var first, second in
	for i, dst := range []*in{&first, &second} {
		c := dig.New()
		require.NoError(t, registerMetrics(c, reg), "container %d", i)
		require.NoError(t, c.Invoke(func(p in) { *dst = p }))
	}

	assert.Same(t, first.Created, second.Created)
	assert.Same(t, first.Gauge, second.Gauge)
}
