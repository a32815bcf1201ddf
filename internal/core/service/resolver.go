package service

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/globalway/tracking-service/internal/core/domain"
	"github.com/globalway/tracking-service/internal/core/ports"
)

const defaultGeocodeTimeout = 5 * time.Second

// CoordinateResolver fans out geocode lookups for every location a shipment
// references and joins them into one ResolvedCoordinates set.
type CoordinateResolver struct {
	geo     ports.Geocoder
	timeout time.Duration
	log     zerolog.Logger
}

// NewCoordinateResolver builds a resolver. timeout bounds each individual
// geocode call; a timed-out lookup counts as unresolved, not as a failure.
func NewCoordinateResolver(geo ports.Geocoder, timeout time.Duration, log zerolog.Logger) *CoordinateResolver {
	if timeout <= 0 {
		timeout = defaultGeocodeTimeout
	}
	return &CoordinateResolver{geo: geo, timeout: timeout, log: log}
}

// geocodeResult is one keyed lookup outcome. Results are independently keyed,
// so completion order is irrelevant.
type geocodeResult struct {
	coords domain.Coordinates
	ok     bool
}

// ResolveAll geocodes the shipment's current location (when present), origin,
// destination, and every history waypoint concurrently, then assembles the
// coordinate set. A lookup that fails is simply dropped: the route keeps its
// history order minus the gaps, and the center falls back through
// current → origin → destination → FallbackCenter. ResolveAll always returns
// a usable result, even when nothing resolved.
func (r *CoordinateResolver) ResolveAll(ctx context.Context, rec *domain.ShipmentRecord) *domain.ResolvedCoordinates {
	var (
		wg      sync.WaitGroup
		current geocodeResult
		origin  geocodeResult
		dest    geocodeResult
		route   = make([]geocodeResult, len(rec.History))
	)

	lookup := func(location string, out *geocodeResult) {
		defer wg.Done()
		callCtx, cancel := context.WithTimeout(ctx, r.timeout)
		defer cancel()
		out.coords, out.ok = r.geo.Resolve(callCtx, location)
	}

	if rec.CurrentLocation != "" {
		wg.Add(1)
		go lookup(rec.CurrentLocation, &current)
	}
	wg.Add(2)
	go lookup(rec.Origin, &origin)
	go lookup(rec.Destination, &dest)
	for i, ev := range rec.History {
		wg.Add(1)
		go lookup(ev.Location, &route[i])
	}
	wg.Wait()

	resolved := &domain.ResolvedCoordinates{
		Center: domain.FallbackCenter,
		Route:  make([]domain.Coordinates, 0, len(route)),
	}

	switch {
	case current.ok:
		resolved.Center = current.coords
	case origin.ok:
		resolved.Center = origin.coords
	case dest.ok:
		resolved.Center = dest.coords
	}
	resolved.Current = resolved.Center
	if current.ok {
		resolved.Current = current.coords
	}
	if origin.ok {
		c := origin.coords
		resolved.Origin = &c
	}
	if dest.ok {
		c := dest.coords
		resolved.Destination = &c
	}
	for _, res := range route {
		if res.ok {
			resolved.Route = append(resolved.Route, res.coords)
		}
	}

	r.log.Debug().
		Str("tracking_number", rec.TrackingNumber).
		Int("history", len(rec.History)).
		Int("route", len(resolved.Route)).
		Bool("current_resolved", current.ok).
		Msg("coordinate resolution complete")

	return resolved
}
