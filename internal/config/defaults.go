package config

import "time"

const defaultPort = 8080

var defaultDB = DB{
	Host: "127.0.0.1",
	Port: "5432",
	User: "myuser",
	Pass: "mypassword",
	Name: "shegamart",
}

var defaultDelivery = Delivery{
	BaseFee:        150,
	CommissionRate: 0.05,
	Warehouse: Warehouse{
		Lat:     9.005401,
		Lng:     38.763611,
		Address: "ShegaMart Central Warehouse",
	},
	StatsInterval: 30 * time.Second,
}

var defaultAuth = Auth{
	TokenTTL: 7 * 24 * time.Hour,
}

var defaultGeocoder = Geocoder{
	BaseURL:     "https://nominatim.openstreetmap.org",
	UserAgent:   "ShegaMart-App/1.0",
	CountryCode: "et",
	Timeout:     5 * time.Second,
	MaxAttempts: 3,
	BaseDelay:   150 * time.Millisecond,
	MaxDelay:    time.Second,
}

var defaultKafka = Kafka{
	Topic:   "orders",
	GroupID: "shegamart-delivery",
}

var defaultRateLimit = RateLimit{
	Enabled:    true,
	Rate:       5,
	Burst:      10,
	TTL:        5 * time.Minute,
	MaxBuckets: 10000,
}

var defaultLog = Log{
	Level:   "info",
	Backend: "slog",
}

// DefaultPort returns the default port.
func DefaultPort() int {
	return defaultPort
}

// DefaultDB returns the default database settings.
func DefaultDB() DB {
	return defaultDB
}

// DefaultDelivery returns the default delivery lifecycle settings.
func DefaultDelivery() Delivery {
	return defaultDelivery
}

// DefaultGeocoder returns the default geocoder settings.
func DefaultGeocoder() Geocoder {
	return defaultGeocoder
}

// DefaultRateLimit returns the default rate limit settings.
func DefaultRateLimit() RateLimit {
	return defaultRateLimit
}
