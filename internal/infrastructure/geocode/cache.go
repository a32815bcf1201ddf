package geocode

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/globalway/tracking-service/internal/api/metrics"
	"github.com/globalway/tracking-service/internal/core/domain"
	"github.com/globalway/tracking-service/internal/core/ports"
)

const cacheTTL = 24 * time.Hour

// CachedGeocoder is a read-through Redis cache in front of another Geocoder.
// Only successful resolutions are cached; misses go back to the inner lookup
// on the next call. Key format: geo:<lowercased location text>
type CachedGeocoder struct {
	inner  ports.Geocoder
	client *redis.Client
	log    zerolog.Logger
}

// NewCachedGeocoder wraps inner with a Redis cache.
func NewCachedGeocoder(inner ports.Geocoder, client *redis.Client, log zerolog.Logger) *CachedGeocoder {
	return &CachedGeocoder{inner: inner, client: client, log: log}
}

// Resolve implements ports.Geocoder. Cache errors degrade to a plain inner
// lookup; the cache can never make a resolvable location unresolvable.
func (c *CachedGeocoder) Resolve(ctx context.Context, location string) (domain.Coordinates, bool) {
	key := c.key(location)

	if cached, err := c.client.Get(ctx, key).Result(); err == nil {
		var coords domain.Coordinates
		if _, scanErr := fmt.Sscanf(cached, "%f,%f", &coords.Lat, &coords.Lng); scanErr == nil {
			metrics.GeocodeLookupsTotal.WithLabelValues("cached").Inc()
			return coords, true
		}
	}

	coords, ok := c.inner.Resolve(ctx, location)
	if ok {
		value := fmt.Sprintf("%f,%f", coords.Lat, coords.Lng)
		if err := c.client.Set(ctx, key, value, cacheTTL).Err(); err != nil {
			c.log.Warn().Err(err).Str("location", location).Msg("failed to cache geocode result")
		}
	}
	return coords, ok
}

func (c *CachedGeocoder) key(location string) string {
	return "geo:" + strings.ToLower(strings.TrimSpace(location))
}
