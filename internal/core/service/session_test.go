package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/globalway/tracking-service/internal/core/domain"
	"github.com/globalway/tracking-service/internal/core/ports"
)

// waitFor polls cond until it holds or the deadline passes.
func waitFor(t *testing.T, d time.Duration, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(d)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatal("condition not met before deadline")
}

func newTestSession(geo *stubGeocoder) *TrackingSession {
	resolver := NewCoordinateResolver(geo, 2*time.Second, zerolog.Nop())
	return NewTrackingSession(resolver, zerolog.Nop())
}

func TestSession_DisplayReachesReady(t *testing.T) {
	geo := newStubGeocoder(map[string]domain.Coordinates{
		"Hartford, CT, USA": hartford,
		"New York, NY, USA": newYork,
		"Boston, MA, USA":   boston,
	})
	session := newTestSession(geo)

	if session.Snapshot().State != ports.ResolutionIdle {
		t.Fatal("new session must start idle")
	}

	session.Display(context.Background(), sampleRecord())
	if state := session.Snapshot().State; state != ports.ResolutionResolving {
		t.Fatalf("after Display: want resolving, got %s", state)
	}

	waitFor(t, time.Second, func() bool {
		return session.Snapshot().State == ports.ResolutionReady
	})

	view := session.Snapshot()
	if view.Coordinates == nil {
		t.Fatal("ready session must carry coordinates")
	}
	if view.Coordinates.Center != hartford {
		t.Errorf("center: want %v, got %v", hartford, view.Coordinates.Center)
	}
}

// A resolution that finishes after a newer shipment was accepted must be
// discarded, regardless of completion order.
func TestSession_StaleResolutionDiscarded(t *testing.T) {
	slow := &domain.ShipmentRecord{
		TrackingNumber: "GW-SLOW",
		Origin:         "Slowville, SL",
		Destination:    "Slowville, SL",
	}
	fast := &domain.ShipmentRecord{
		TrackingNumber: "GW-FAST",
		Origin:         "Fastville, FA",
		Destination:    "Fastville, FA",
	}
	slowCoords := domain.Coordinates{Lat: 1, Lng: 1}
	fastCoords := domain.Coordinates{Lat: 2, Lng: 2}

	geo := newStubGeocoder(map[string]domain.Coordinates{
		"Slowville, SL": slowCoords,
		"Fastville, FA": fastCoords,
	})
	gate := geo.gate("Slowville, SL")
	session := newTestSession(geo)

	session.Display(context.Background(), slow) // blocks on the gate
	session.Display(context.Background(), fast) // supersedes it

	waitFor(t, time.Second, func() bool {
		return session.Snapshot().State == ports.ResolutionReady
	})
	view := session.Snapshot()
	if view.TrackingNumber != "GW-FAST" {
		t.Fatalf("session must display the newer shipment, got %s", view.TrackingNumber)
	}
	if view.Coordinates.Center != fastCoords {
		t.Fatalf("center: want %v, got %v", fastCoords, view.Coordinates.Center)
	}

	// Let the stale resolution finish, then confirm it was ignored.
	close(gate)
	time.Sleep(50 * time.Millisecond)
	view = session.Snapshot()
	if view.Coordinates.Center != fastCoords {
		t.Errorf("stale resolution overwrote the newer result: got %v", view.Coordinates.Center)
	}
}

func TestSession_MultipleSupersessions(t *testing.T) {
	recFor := func(n string, loc string) *domain.ShipmentRecord {
		return &domain.ShipmentRecord{TrackingNumber: n, Origin: loc, Destination: loc}
	}
	geo := newStubGeocoder(map[string]domain.Coordinates{
		"A, AA": {Lat: 1}, "B, BB": {Lat: 2}, "C, CC": {Lat: 3},
	})
	gateA := geo.gate("A, AA")
	gateB := geo.gate("B, BB")
	session := newTestSession(geo)

	session.Display(context.Background(), recFor("GW-A", "A, AA"))
	session.Display(context.Background(), recFor("GW-B", "B, BB"))
	session.Display(context.Background(), recFor("GW-C", "C, CC"))

	waitFor(t, time.Second, func() bool {
		return session.Snapshot().State == ports.ResolutionReady
	})

	// Release the superseded resolutions in reverse order.
	close(gateB)
	close(gateA)
	time.Sleep(50 * time.Millisecond)

	view := session.Snapshot()
	if view.TrackingNumber != "GW-C" {
		t.Errorf("want GW-C displayed, got %s", view.TrackingNumber)
	}
	if view.Coordinates.Center.Lat != 3 {
		t.Errorf("center: want lat 3, got %v", view.Coordinates.Center.Lat)
	}
}

// The upstream source mutates records while a package is in flight. An
// unchanged record must not restart resolution; a mutated one must.
func TestSession_DisplayIfChangedRefreshesOnRecordChange(t *testing.T) {
	geo := newStubGeocoder(map[string]domain.Coordinates{
		"Hartford, CT, USA": hartford,
		"New York, NY, USA": newYork,
		"Boston, MA, USA":   boston,
	})
	session := newTestSession(geo)

	if !session.DisplayIfChanged(context.Background(), sampleRecord()) {
		t.Fatal("idle session must accept the first record")
	}
	waitFor(t, time.Second, func() bool {
		return session.Snapshot().State == ports.ResolutionReady
	})

	if session.DisplayIfChanged(context.Background(), sampleRecord()) {
		t.Error("unchanged record must not restart resolution")
	}
	if session.Snapshot().State != ports.ResolutionReady {
		t.Error("session must stay ready for an unchanged record")
	}

	moved := sampleRecord()
	moved.CurrentLocation = "Boston, MA, USA"
	moved.History = append([]domain.TrackingEvent{
		{Location: "Boston, MA, USA", Date: "2024-06-02", Status: "In Transit"},
	}, moved.History...)

	if !session.DisplayIfChanged(context.Background(), moved) {
		t.Fatal("changed record must restart resolution")
	}
	waitFor(t, time.Second, func() bool {
		v := session.Snapshot()
		return v.State == ports.ResolutionReady && len(v.Coordinates.Route) == 3
	})
	if center := session.Snapshot().Coordinates.Center; center != boston {
		t.Errorf("center: want %v after the move, got %v", boston, center)
	}
}

func TestSession_ToggleDetailsIndependentOfResolution(t *testing.T) {
	session := newTestSession(newStubGeocoder(nil))

	if session.Snapshot().DetailsOpen {
		t.Fatal("details panel must start closed")
	}
	if !session.ToggleDetails() {
		t.Error("first toggle must open the panel")
	}
	if session.ToggleDetails() {
		t.Error("second toggle must close the panel")
	}
	// Toggling never touches the resolution state.
	if session.Snapshot().State != ports.ResolutionIdle {
		t.Error("toggle must not affect resolution state")
	}
}

func TestSession_DownloadBusyMarkers(t *testing.T) {
	session := newTestSession(newStubGeocoder(nil))

	if !session.BeginDownload(DownloadDetails) {
		t.Fatal("first details download must start")
	}
	if session.BeginDownload(DownloadDetails) {
		t.Error("details download already in flight, second must be refused")
	}
	session.EndDownload(DownloadDetails)
	if !session.BeginDownload(DownloadInvoice) {
		t.Error("invoice download must start after details finished")
	}
	session.EndDownload(DownloadInvoice)
	if len(session.Snapshot().Downloading) != 0 {
		t.Error("busy markers must clear after EndDownload")
	}
}

// Each document kind carries its own busy marker: starting the invoice while
// the details report is still generating must not release the details guard.
func TestSession_ConcurrentDownloadKinds(t *testing.T) {
	session := newTestSession(newStubGeocoder(nil))

	if !session.BeginDownload(DownloadDetails) {
		t.Fatal("details download must start")
	}
	if !session.BeginDownload(DownloadInvoice) {
		t.Fatal("invoice download must start alongside details")
	}
	if session.BeginDownload(DownloadDetails) {
		t.Error("details still in flight, repeat must be refused")
	}
	if session.BeginDownload(DownloadInvoice) {
		t.Error("invoice still in flight, repeat must be refused")
	}

	view := session.Snapshot()
	if len(view.Downloading) != 2 {
		t.Fatalf("want both kinds in flight, got %v", view.Downloading)
	}

	session.EndDownload(DownloadInvoice)
	if session.BeginDownload(DownloadDetails) {
		t.Error("ending the invoice must not release the details guard")
	}
	session.EndDownload(DownloadDetails)
	if !session.BeginDownload(DownloadDetails) {
		t.Error("details must restart after its own EndDownload")
	}
}

// ---------------------------------------------------------------------------
// Share tests
// ---------------------------------------------------------------------------

type stubShareSurface struct {
	err    error
	shared string
}

func (s *stubShareSurface) Share(_ context.Context, _, url string) error {
	if s.err != nil {
		return s.err
	}
	s.shared = url
	return nil
}

type stubClipboard struct {
	err    error
	copied string
}

func (c *stubClipboard) Copy(_ context.Context, text string) error {
	if c.err != nil {
		return c.err
	}
	c.copied = text
	return nil
}

func TestSession_SharePrefersNativeSurface(t *testing.T) {
	session := newTestSession(newStubGeocoder(nil))
	surface := &stubShareSurface{}
	clip := &stubClipboard{}

	outcome, err := session.Share(context.Background(), surface, clip, "Track GW123", "https://example.com/t/abc")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if outcome != ShareNative {
		t.Errorf("want native outcome, got %s", outcome)
	}
	if surface.shared != "https://example.com/t/abc" {
		t.Errorf("surface did not receive the url: %q", surface.shared)
	}
	if clip.copied != "" {
		t.Error("clipboard must not be used when native share succeeds")
	}
}

func TestSession_ShareFallsBackToClipboard(t *testing.T) {
	session := newTestSession(newStubGeocoder(nil))
	surface := &stubShareSurface{err: errors.New("not supported")}
	clip := &stubClipboard{}

	outcome, err := session.Share(context.Background(), surface, clip, "Track", "https://example.com/t/abc")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if outcome != ShareClipboard {
		t.Errorf("want clipboard outcome, got %s", outcome)
	}
	if clip.copied != "https://example.com/t/abc" {
		t.Errorf("clipboard did not receive the url: %q", clip.copied)
	}
}

func TestSession_ShareBothPathsFailing(t *testing.T) {
	session := newTestSession(newStubGeocoder(nil))
	surface := &stubShareSurface{err: errors.New("no surface")}
	clip := &stubClipboard{err: errors.New("denied")}

	_, err := session.Share(context.Background(), surface, clip, "Track", "https://example.com/t/abc")
	if !errors.Is(err, domain.ErrShareUnavailable) {
		t.Errorf("want ErrShareUnavailable, got %v", err)
	}
}

func TestSession_ShareWithNoSurfacesAtAll(t *testing.T) {
	session := newTestSession(newStubGeocoder(nil))

	_, err := session.Share(context.Background(), nil, nil, "Track", "https://example.com/t/abc")
	if !errors.Is(err, domain.ErrShareUnavailable) {
		t.Errorf("want ErrShareUnavailable, got %v", err)
	}
}
