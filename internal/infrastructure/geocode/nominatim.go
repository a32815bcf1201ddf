// Package geocode implements the Geocoder port against a Nominatim-style
// lookup service, with an optional Redis read-through cache on top.
package geocode

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/time/rate"

	"github.com/globalway/tracking-service/internal/api/metrics"
	"github.com/globalway/tracking-service/internal/core/domain"
)

const defaultTimeout = 5 * time.Second

// Config captures the settings for the external geocoding service.
type Config struct {
	// BaseURL of the Nominatim-compatible endpoint, without trailing slash.
	BaseURL string
	// UserAgent identifies this service to the lookup provider, which
	// requires a meaningful agent string.
	UserAgent string
	// Timeout bounds a single lookup. Defaults to 5s.
	Timeout time.Duration
	// RatePerSec caps outbound lookups; public Nominatim allows 1/s.
	RatePerSec float64
}

// Client resolves free-text locations against the configured service. One
// attempt per call, no retries: the caller treats any failure as unresolved.
type Client struct {
	cfg     Config
	http    *http.Client
	limiter *rate.Limiter
	log     zerolog.Logger
}

// NewClient builds a geocoding client.
func NewClient(cfg Config, log zerolog.Logger) *Client {
	if cfg.Timeout <= 0 {
		cfg.Timeout = defaultTimeout
	}
	if cfg.RatePerSec <= 0 {
		cfg.RatePerSec = 1
	}
	return &Client{
		cfg:     cfg,
		http:    &http.Client{Timeout: cfg.Timeout},
		limiter: rate.NewLimiter(rate.Limit(cfg.RatePerSec), 1),
		log:     log,
	}
}

// nominatimResult is the subset of a search hit this client consumes.
// Nominatim serialises coordinates as strings.
type nominatimResult struct {
	Lat string `json:"lat"`
	Lon string `json:"lon"`
}

// Resolve implements ports.Geocoder. Blank input short-circuits to
// unresolved without touching the network. Network errors, empty result
// sets, malformed payloads, and timeouts all report ok=false; none of them
// are surfaced as errors.
func (c *Client) Resolve(ctx context.Context, location string) (domain.Coordinates, bool) {
	if strings.TrimSpace(location) == "" {
		metrics.GeocodeLookupsTotal.WithLabelValues("empty").Inc()
		return domain.Coordinates{}, false
	}

	if err := c.limiter.Wait(ctx); err != nil {
		metrics.GeocodeLookupsTotal.WithLabelValues("error").Inc()
		return domain.Coordinates{}, false
	}

	start := time.Now()
	coords, ok := c.lookup(ctx, location)
	metrics.GeocodeDuration.Observe(time.Since(start).Seconds())

	result := "miss"
	if ok {
		result = "hit"
	}
	metrics.GeocodeLookupsTotal.WithLabelValues(result).Inc()
	return coords, ok
}

func (c *Client) lookup(ctx context.Context, location string) (domain.Coordinates, bool) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.searchURL(location), nil)
	if err != nil {
		return domain.Coordinates{}, false
	}
	req.Header.Set("User-Agent", c.cfg.UserAgent)

	resp, err := c.http.Do(req)
	if err != nil {
		c.log.Debug().Err(err).Str("location", location).Msg("geocode lookup failed")
		return domain.Coordinates{}, false
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		c.log.Debug().Int("status", resp.StatusCode).Str("location", location).Msg("geocode lookup rejected")
		return domain.Coordinates{}, false
	}

	var results []nominatimResult
	if err := json.NewDecoder(resp.Body).Decode(&results); err != nil || len(results) == 0 {
		return domain.Coordinates{}, false
	}

	lat, latErr := strconv.ParseFloat(results[0].Lat, 64)
	lng, lngErr := strconv.ParseFloat(results[0].Lon, 64)
	if latErr != nil || lngErr != nil {
		return domain.Coordinates{}, false
	}
	return domain.Coordinates{Lat: lat, Lng: lng}, true
}

// searchURL builds the structured search query for a location string.
func (c *Client) searchURL(location string) string {
	parts := SplitLocation(location)

	q := url.Values{}
	q.Set("format", "json")
	q.Set("limit", "1")
	if parts.City != "" {
		q.Set("city", parts.City)
	}
	if parts.Region != "" {
		q.Set("state", parts.Region)
	}
	if parts.Country != "" {
		q.Set("country", parts.Country)
	}
	return c.cfg.BaseURL + "/search?" + q.Encode()
}

// LocationParts is the structured form of a free-text location.
type LocationParts struct {
	City    string
	Region  string
	Country string
}

// SplitLocation parses "city[, region][, country]" by commas.
//
// With exactly two segments the second is ambiguous: "Hartford, CT" names a
// region while "Paris, France" names a country. A 2 or 3 character second
// segment is read as a region code, anything longer as a country. Short
// country names like "UK" therefore land in Region; tracking data has always
// been entered this way.
func SplitLocation(text string) LocationParts {
	raw := strings.Split(text, ",")
	parts := make([]string, 0, len(raw))
	for _, p := range raw {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			parts = append(parts, trimmed)
		}
	}

	switch len(parts) {
	case 0:
		return LocationParts{}
	case 1:
		return LocationParts{City: parts[0]}
	case 2:
		second := parts[1]
		if len(second) >= 2 && len(second) <= 3 {
			return LocationParts{City: parts[0], Region: second}
		}
		return LocationParts{City: parts[0], Country: second}
	default:
		return LocationParts{City: parts[0], Region: parts[1], Country: parts[2]}
	}
}
