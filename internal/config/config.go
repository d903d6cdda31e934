package config

import (
	"errors"
	"fmt"
	"log"
	"math"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
)

// Config stores service settings.
type Config struct {
	Port      int
	DB        DB
	Delivery  Delivery
	Auth      Auth
	Geocoder  Geocoder
	Kafka     Kafka
	RateLimit RateLimit
	Log       Log
	Debug     Debug
}

// DB stores Postgres connection settings.
type DB struct {
	Host string
	Port string
	User string
	Pass string
	Name string
}

// DSN builds a postgres connection string.
func (d DB) DSN() string {
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(d.User, d.Pass),
		Host:     d.Host + ":" + d.Port,
		Path:     d.Name,
		RawQuery: "sslmode=disable",
	}
	return u.String()
}

// Warehouse is the fixed pickup point of every delivery.
type Warehouse struct {
	Lat     float64
	Lng     float64
	Address string
}

// Delivery stores payout and pickup settings of the delivery lifecycle.
type Delivery struct {
	BaseFee        float64
	CommissionRate float64
	Warehouse      Warehouse
	StatsInterval  time.Duration
}

// Auth stores token settings.
type Auth struct {
	Secret      string
	TokenTTL    time.Duration
	AdminEmails []string
}

// Geocoder stores location proxy settings.
type Geocoder struct {
	BaseURL     string
	UserAgent   string
	CountryCode string
	Timeout     time.Duration
	MaxAttempts int
	BaseDelay   time.Duration
	MaxDelay    time.Duration
}

// Kafka stores checkout consumer settings. No brokers means disabled.
type Kafka struct {
	Brokers []string
	Topic   string
	GroupID string
}

// RateLimit stores per-client limiter settings.
type RateLimit struct {
	Enabled    bool
	Rate       float64
	Burst      int
	TTL        time.Duration
	MaxBuckets int
}

// Log stores logger settings.
type Log struct {
	Level   string
	Backend string
}

// Debug stores the pprof/metrics listener settings. Empty Addr disables it.
type Debug struct {
	Addr string
	User string
	Pass string
}

// Load reads configuration in order: .env (if present) → environment → flags.
func Load() (*Config, error) {
	if err := godotenv.Load(".env"); err != nil && !os.IsNotExist(err) {
		log.Printf("warning: .env not loaded: %v", err)
	}

	cfg := &Config{
		Port:      defaultPort,
		DB:        defaultDB,
		Delivery:  defaultDelivery,
		Auth:      defaultAuth,
		Geocoder:  defaultGeocoder,
		Kafka:     defaultKafka,
		RateLimit: defaultRateLimit,
		Log:       defaultLog,
	}

	var e envReader
	cfg.Port = e.int("PORT", cfg.Port)

	cfg.DB.Host = e.str("POSTGRES_HOST", cfg.DB.Host)
	cfg.DB.Port = e.str("POSTGRES_PORT", cfg.DB.Port)
	cfg.DB.User = e.str("POSTGRES_USER", cfg.DB.User)
	cfg.DB.Pass = e.str("POSTGRES_PASSWORD", cfg.DB.Pass)
	cfg.DB.Name = e.str("POSTGRES_DB", cfg.DB.Name)
	if _, err := strconv.Atoi(cfg.DB.Port); err != nil {
		return nil, fmt.Errorf("invalid POSTGRES_PORT %q: %w", cfg.DB.Port, err)
	}

	cfg.Delivery.BaseFee = e.float("DELIVERY_BASE_FEE", cfg.Delivery.BaseFee)
	cfg.Delivery.CommissionRate = e.float("DELIVERY_COMMISSION_RATE", cfg.Delivery.CommissionRate)
	cfg.Delivery.Warehouse.Lat = e.float("WAREHOUSE_LAT", cfg.Delivery.Warehouse.Lat)
	cfg.Delivery.Warehouse.Lng = e.float("WAREHOUSE_LNG", cfg.Delivery.Warehouse.Lng)
	cfg.Delivery.Warehouse.Address = e.str("WAREHOUSE_ADDRESS", cfg.Delivery.Warehouse.Address)
	cfg.Delivery.StatsInterval = e.duration("DELIVERY_STATS_INTERVAL", cfg.Delivery.StatsInterval)

	cfg.Auth.Secret = e.str("JWT_SECRET", cfg.Auth.Secret)
	cfg.Auth.TokenTTL = e.duration("JWT_TTL", cfg.Auth.TokenTTL)
	cfg.Auth.AdminEmails = splitList(e.str("ADMIN_EMAILS", ""))

	cfg.Geocoder.BaseURL = e.str("GEOCODER_URL", cfg.Geocoder.BaseURL)
	cfg.Geocoder.UserAgent = e.str("GEOCODER_USER_AGENT", cfg.Geocoder.UserAgent)
	cfg.Geocoder.CountryCode = e.str("GEOCODER_COUNTRY", cfg.Geocoder.CountryCode)
	cfg.Geocoder.MaxAttempts = e.int("GEOCODER_MAX_ATTEMPTS", cfg.Geocoder.MaxAttempts)
	cfg.Geocoder.BaseDelay = e.duration("GEOCODER_BASE_DELAY", cfg.Geocoder.BaseDelay)
	cfg.Geocoder.MaxDelay = e.duration("GEOCODER_MAX_DELAY", cfg.Geocoder.MaxDelay)

	cfg.Kafka.Brokers = splitList(e.str("KAFKA_BROKERS", ""))
	cfg.Kafka.Topic = e.str("KAFKA_TOPIC", cfg.Kafka.Topic)
	cfg.Kafka.GroupID = e.str("KAFKA_GROUP_ID", cfg.Kafka.GroupID)

	cfg.RateLimit.Enabled = e.bool("RATE_LIMIT_ENABLED", cfg.RateLimit.Enabled)
	cfg.RateLimit.Rate = e.float("RATE_LIMIT_RATE", cfg.RateLimit.Rate)
	cfg.RateLimit.Burst = e.int("RATE_LIMIT_BURST", cfg.RateLimit.Burst)
	cfg.RateLimit.TTL = e.duration("RATE_LIMIT_TTL", cfg.RateLimit.TTL)
	cfg.RateLimit.MaxBuckets = e.int("RATE_LIMIT_MAX_BUCKETS", cfg.RateLimit.MaxBuckets)

	cfg.Log.Level = e.str("LOG_LEVEL", cfg.Log.Level)
	cfg.Log.Backend = e.str("LOG_BACKEND", cfg.Log.Backend)

	cfg.Debug.Addr = e.str("DEBUG_ADDR", "")
	cfg.Debug.User = e.str("DEBUG_USER", "")
	cfg.Debug.Pass = e.str("DEBUG_PASS", "")

	if e.err != nil {
		return nil, e.err
	}

	pflag.CommandLine.ParseErrorsWhitelist.UnknownFlags = true
	pflag.IntVarP(&cfg.Port, "port", "p", cfg.Port, "port to listen on")
	if err := pflag.CommandLine.Parse(os.Args[1:]); err != nil {
		return nil, fmt.Errorf("parse flags: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("invalid port: %d", c.Port)
	}
	if c.Delivery.BaseFee < 0 {
		return fmt.Errorf("invalid DELIVERY_BASE_FEE: %v", c.Delivery.BaseFee)
	}
	if c.Delivery.CommissionRate < 0 || c.Delivery.CommissionRate > 1 {
		return fmt.Errorf("invalid DELIVERY_COMMISSION_RATE: %v", c.Delivery.CommissionRate)
	}
	if c.Delivery.StatsInterval <= 0 {
		return fmt.Errorf("invalid DELIVERY_STATS_INTERVAL: %v", c.Delivery.StatsInterval)
	}
	switch c.Log.Backend {
	case "slog", "zap":
	default:
		return fmt.Errorf("invalid LOG_BACKEND: %q", c.Log.Backend)
	}
	return nil
}

// envReader reads typed environment values and keeps the first parse error.
type envReader struct{ err error }

func (e *envReader) str(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}

func (e *envReader) int(key string, def int) int {
	v := e.str(key, "")
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		e.fail(key, v, err)
		return def
	}
	return n
}

func (e *envReader) float(key string, def float64) float64 {
	v := e.str(key, "")
	if v == "" {
		return def
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		e.fail(key, v, err)
		return def
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		e.fail(key, v, errors.New("value must be finite"))
		return def
	}
	return f
}

func (e *envReader) bool(key string, def bool) bool {
	v := e.str(key, "")
	if v == "" {
		return def
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		e.fail(key, v, err)
		return def
	}
	return b
}

func (e *envReader) duration(key string, def time.Duration) time.Duration {
	v := e.str(key, "")
	if v == "" {
		return def
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		e.fail(key, v, err)
		return def
	}
	return d
}

func (e *envReader) fail(key, raw string, err error) {
	if e.err == nil {
		e.err = fmt.Errorf("invalid %s %q: %w", key, raw, err)
	}
}

func splitList(raw string) []string {
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
