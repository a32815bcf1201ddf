package service

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/globalway/tracking-service/internal/core/domain"
)

// ---------------------------------------------------------------------------
// Stub geocoder
// ---------------------------------------------------------------------------

// stubGeocoder resolves only the locations present in its table. Locations
// listed in gates block until the corresponding channel closes, which lets
// tests control completion order.
type stubGeocoder struct {
	mu     sync.Mutex
	coords map[string]domain.Coordinates
	gates  map[string]chan struct{}
	calls  []string
}

func newStubGeocoder(coords map[string]domain.Coordinates) *stubGeocoder {
	return &stubGeocoder{coords: coords, gates: make(map[string]chan struct{})}
}

func (g *stubGeocoder) gate(location string) chan struct{} {
	g.mu.Lock()
	defer g.mu.Unlock()
	ch := make(chan struct{})
	g.gates[location] = ch
	return ch
}

func (g *stubGeocoder) Resolve(ctx context.Context, location string) (domain.Coordinates, bool) {
	g.mu.Lock()
	g.calls = append(g.calls, location)
	gate := g.gates[location]
	g.mu.Unlock()

	if gate != nil {
		select {
		case <-gate:
		case <-ctx.Done():
			return domain.Coordinates{}, false
		}
	}

	g.mu.Lock()
	defer g.mu.Unlock()
	c, ok := g.coords[location]
	return c, ok
}

var (
	hartford = domain.Coordinates{Lat: 41.7658, Lng: -72.6734}
	newYork  = domain.Coordinates{Lat: 40.7128, Lng: -74.0060}
	boston   = domain.Coordinates{Lat: 42.3601, Lng: -71.0589}
)

func sampleRecord() *domain.ShipmentRecord {
	return &domain.ShipmentRecord{
		TrackingNumber:  "GW123456",
		Status:          domain.StatusInTransit,
		Origin:          "New York, NY, USA",
		Destination:     "Boston, MA, USA",
		CurrentLocation: "Hartford, CT, USA",
		History: []domain.TrackingEvent{
			{Location: "Hartford, CT, USA", Date: "2024-06-01", Status: "In Transit"},
			{Location: "New York, NY, USA", Date: "2024-05-30", Status: "Picked Up"},
		},
	}
}

// ---------------------------------------------------------------------------
// ResolveAll tests
// ---------------------------------------------------------------------------

func TestResolveAll_CenterPrefersCurrentLocation(t *testing.T) {
	geo := newStubGeocoder(map[string]domain.Coordinates{
		"Hartford, CT, USA": hartford,
		"New York, NY, USA": newYork,
		"Boston, MA, USA":   boston,
	})
	resolver := NewCoordinateResolver(geo, time.Second, zerolog.Nop())

	resolved := resolver.ResolveAll(context.Background(), sampleRecord())

	if resolved.Center != hartford {
		t.Errorf("center: want current location %v, got %v", hartford, resolved.Center)
	}
	if resolved.Current != hartford {
		t.Errorf("current: want %v, got %v", hartford, resolved.Current)
	}
	if resolved.Origin == nil || *resolved.Origin != newYork {
		t.Errorf("origin: want %v, got %v", newYork, resolved.Origin)
	}
	if resolved.Destination == nil || *resolved.Destination != boston {
		t.Errorf("destination: want %v, got %v", boston, resolved.Destination)
	}
}

func TestResolveAll_CenterFallsBackToOriginThenDestination(t *testing.T) {
	cases := []struct {
		name   string
		coords map[string]domain.Coordinates
		want   domain.Coordinates
	}{
		{
			"origin when current unresolvable",
			map[string]domain.Coordinates{"New York, NY, USA": newYork, "Boston, MA, USA": boston},
			newYork,
		},
		{
			"destination when current and origin unresolvable",
			map[string]domain.Coordinates{"Boston, MA, USA": boston},
			boston,
		},
		{
			"sentinel when nothing resolves",
			map[string]domain.Coordinates{},
			domain.FallbackCenter,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			resolver := NewCoordinateResolver(newStubGeocoder(tc.coords), time.Second, zerolog.Nop())
			resolved := resolver.ResolveAll(context.Background(), sampleRecord())
			if resolved.Center != tc.want {
				t.Errorf("center: want %v, got %v", tc.want, resolved.Center)
			}
		})
	}
}

func TestResolveAll_RouteKeepsHistoryOrderAndDropsFailures(t *testing.T) {
	rec := sampleRecord()
	rec.History = []domain.TrackingEvent{
		{Location: "Boston, MA, USA"},
		{Location: "Nowhere, ZZ"}, // unresolvable
		{Location: "Hartford, CT, USA"},
		{Location: "New York, NY, USA"},
	}
	geo := newStubGeocoder(map[string]domain.Coordinates{
		"Boston, MA, USA":   boston,
		"Hartford, CT, USA": hartford,
		"New York, NY, USA": newYork,
	})
	resolver := NewCoordinateResolver(geo, time.Second, zerolog.Nop())

	resolved := resolver.ResolveAll(context.Background(), rec)

	want := []domain.Coordinates{boston, hartford, newYork}
	if len(resolved.Route) != len(want) {
		t.Fatalf("route length: want %d, got %d", len(want), len(resolved.Route))
	}
	for i, c := range want {
		if resolved.Route[i] != c {
			t.Errorf("route[%d]: want %v, got %v", i, c, resolved.Route[i])
		}
	}
}

func TestResolveAll_EmptyRouteWhenNothingGeocodable(t *testing.T) {
	rec := sampleRecord()
	resolver := NewCoordinateResolver(newStubGeocoder(nil), time.Second, zerolog.Nop())

	resolved := resolver.ResolveAll(context.Background(), rec)

	if resolved == nil {
		t.Fatal("ResolveAll must always return a result object")
	}
	if len(resolved.Route) != 0 {
		t.Errorf("route: want empty, got %d entries", len(resolved.Route))
	}
	if resolved.Center != domain.FallbackCenter {
		t.Errorf("center: want sentinel, got %v", resolved.Center)
	}
}

func TestResolveAll_SkipsCurrentLocationWhenAbsent(t *testing.T) {
	rec := sampleRecord()
	rec.CurrentLocation = ""
	rec.History = nil
	geo := newStubGeocoder(map[string]domain.Coordinates{
		"New York, NY, USA": newYork,
		"Boston, MA, USA":   boston,
	})
	resolver := NewCoordinateResolver(geo, time.Second, zerolog.Nop())

	resolved := resolver.ResolveAll(context.Background(), rec)

	for _, call := range geo.calls {
		if call == "" {
			t.Error("resolver issued a lookup for an absent current location")
		}
	}
	if len(geo.calls) != 2 {
		t.Errorf("want 2 lookups (origin, destination), got %d", len(geo.calls))
	}
	if resolved.Current != newYork {
		t.Errorf("current must fall back to center: want %v, got %v", newYork, resolved.Current)
	}
}
