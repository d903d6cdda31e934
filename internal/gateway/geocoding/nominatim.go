package geocoding

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/go-resty/resty/v2"
)

const searchLimit = 5

// ErrBadResponse - the geocoder answered 200 with a body that is not JSON.
var ErrBadResponse = errors.New("geocoder: invalid json body")

// StatusError is returned when the geocoder answers with a non-2xx status.
type StatusError struct {
	Code int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("geocoder status: %d", e.Code)
}

// Config describes the upstream geocoder.
type Config struct {
	BaseURL     string
	UserAgent   string
	CountryCode string
	Timeout     time.Duration
}

// Client talks to a Nominatim compatible API and passes its JSON through.
type Client struct {
	http    *resty.Client
	country string
}

// NewClient creates a Nominatim client.
func NewClient(cfg Config) *Client {
	c := resty.New().
		SetBaseURL(cfg.BaseURL).
		SetHeader("User-Agent", cfg.UserAgent).
		SetHeader("Accept", "application/json")
	if cfg.Timeout > 0 {
		c.SetTimeout(cfg.Timeout)
	}
	return &Client{http: c, country: cfg.CountryCode}
}

// Reverse resolves a coordinate to an address.
func (c *Client) Reverse(ctx context.Context, lat, lng float64) (json.RawMessage, error) {
	req := c.http.R().
		SetContext(ctx).
		SetHeader("Accept-Language", "en").
		SetQueryParams(map[string]string{
			"format": "json",
			"lat":    strconv.FormatFloat(lat, 'f', -1, 64),
			"lon":    strconv.FormatFloat(lng, 'f', -1, 64),
		})
	return send(req, "/reverse")
}

// Search looks up places matching q in the configured country.
func (c *Client) Search(ctx context.Context, q string) (json.RawMessage, error) {
	params := map[string]string{
		"format":         "json",
		"q":              q,
		"addressdetails": "1",
		"limit":          strconv.Itoa(searchLimit),
	}
	if c.country != "" {
		params["countrycodes"] = c.country
	}
	req := c.http.R().SetContext(ctx).SetQueryParams(params)
	return send(req, "/search")
}

func send(req *resty.Request, path string) (json.RawMessage, error) {
	resp, err := req.Get(path)
	if err != nil {
		return nil, fmt.Errorf("geocoder request %s: %w", path, err)
	}
	if resp.StatusCode() != http.StatusOK {
		return nil, &StatusError{Code: resp.StatusCode()}
	}
	body := resp.Body()
	if !json.Valid(body) {
		return nil, fmt.Errorf("%s: %w", path, ErrBadResponse)
	}
	return json.RawMessage(body), nil
}

// isRetryable - transport failures, 429 and 5xx are retried.
func isRetryable(err error) bool {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}
	var st *StatusError
	if errors.As(err, &st) {
		return st.Code == http.StatusTooManyRequests || st.Code >= http.StatusInternalServerError
	}
	return !errors.Is(err, ErrBadResponse)
}
