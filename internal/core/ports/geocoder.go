package ports

import (
	"context"

	"github.com/globalway/tracking-service/internal/core/domain"
)

// Geocoder resolves a free-text location ("city, region, country") to a
// coordinate pair. It never returns an error: an unreliable lookup (network
// failure, no match, malformed response, timeout) simply reports ok=false,
// and the caller omits that location from the coordinate set. One attempt
// per call; retries are the implementation's business, not the contract's.
type Geocoder interface {
	Resolve(ctx context.Context, location string) (domain.Coordinates, bool)
}
