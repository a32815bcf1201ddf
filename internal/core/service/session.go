package service

import (
	"context"
	"reflect"
	"sync"

	"github.com/rs/zerolog"

	"github.com/globalway/tracking-service/internal/api/metrics"
	"github.com/globalway/tracking-service/internal/core/domain"
	"github.com/globalway/tracking-service/internal/core/ports"
)

// DownloadKind marks which document a session is currently generating.
type DownloadKind string

const (
	DownloadDetails DownloadKind = "details"
	DownloadInvoice DownloadKind = "invoice"
)

// ShareOutcome reports which path a share action took.
type ShareOutcome string

const (
	ShareNative    ShareOutcome = "native"
	ShareClipboard ShareOutcome = "clipboard"
)

// SessionView is an immutable snapshot of a session's observable state.
// Downloading lists the kinds currently being generated, details first.
type SessionView struct {
	TrackingNumber string
	State          ports.ResolutionState
	Coordinates    *domain.ResolvedCoordinates
	DetailsOpen    bool
	Downloading    []DownloadKind
}

// TrackingSession displays one shipment at a time and owns the coordinate
// resolution lifecycle for it: Idle → Resolving → Ready.
//
// Every accepted shipment bumps a generation counter before its resolution
// is dispatched, so a resolution finishing after a newer shipment was
// accepted is recognised as stale and discarded. A counter rather than a
// boolean: displays can be superseded more than once while the first
// resolution is still in flight.
type TrackingSession struct {
	resolver *CoordinateResolver
	log      zerolog.Logger

	mu          sync.Mutex
	generation  uint64
	record      *domain.ShipmentRecord
	state       ports.ResolutionState
	coords      *domain.ResolvedCoordinates
	detailsOpen bool
	downloading map[DownloadKind]bool
}

// NewTrackingSession returns an idle session.
func NewTrackingSession(resolver *CoordinateResolver, log zerolog.Logger) *TrackingSession {
	return &TrackingSession{
		resolver:    resolver,
		log:         log,
		state:       ports.ResolutionIdle,
		downloading: make(map[DownloadKind]bool),
	}
}

// Display accepts a new shipment record and kicks off coordinate resolution
// for it in the background. Any in-flight resolution for a previous record
// keeps running but its result will be ignored on completion. The generation
// marker is advanced synchronously, before the resolution goroutine is
// dispatched, so there is no window in which a stale result could be taken
// for current.
func (s *TrackingSession) Display(ctx context.Context, rec *domain.ShipmentRecord) {
	s.mu.Lock()
	gen := s.accept(rec)
	s.mu.Unlock()

	s.resolve(ctx, rec, gen)
}

// DisplayIfChanged accepts rec only when it differs from the record the
// session currently shows, restarting coordinate resolution in that case.
// Shipment records mutate upstream while a package is in flight (new history
// events, a new current location), so a ready session is not a final one.
// It reports whether a resolution was started.
func (s *TrackingSession) DisplayIfChanged(ctx context.Context, rec *domain.ShipmentRecord) bool {
	s.mu.Lock()
	if s.state != ports.ResolutionIdle && reflect.DeepEqual(s.record, rec) {
		s.mu.Unlock()
		return false
	}
	gen := s.accept(rec)
	s.mu.Unlock()

	s.resolve(ctx, rec, gen)
	return true
}

// accept installs rec as the displayed record and advances the generation
// marker. Callers must hold s.mu.
func (s *TrackingSession) accept(rec *domain.ShipmentRecord) uint64 {
	s.generation++
	s.record = rec
	s.state = ports.ResolutionResolving
	s.coords = nil
	return s.generation
}

func (s *TrackingSession) resolve(ctx context.Context, rec *domain.ShipmentRecord, gen uint64) {
	go func() {
		resolved := s.resolver.ResolveAll(ctx, rec)

		s.mu.Lock()
		defer s.mu.Unlock()
		if gen != s.generation {
			metrics.ResolutionsDiscardedTotal.Inc()
			s.log.Debug().
				Str("tracking_number", rec.TrackingNumber).
				Uint64("generation", gen).
				Msg("discarding stale coordinate resolution")
			return
		}
		s.coords = resolved
		s.state = ports.ResolutionReady
	}()
}

// Snapshot returns the session's current observable state.
func (s *TrackingSession) Snapshot() SessionView {
	s.mu.Lock()
	defer s.mu.Unlock()

	view := SessionView{
		State:       s.state,
		Coordinates: s.coords,
		DetailsOpen: s.detailsOpen,
	}
	for _, kind := range []DownloadKind{DownloadDetails, DownloadInvoice} {
		if s.downloading[kind] {
			view.Downloading = append(view.Downloading, kind)
		}
	}
	if s.record != nil {
		view.TrackingNumber = s.record.TrackingNumber
	}
	return view
}

// ToggleDetails flips the payment/clearance disclosure panel and returns the
// new state. The toggle is independent of the resolution lifecycle.
func (s *TrackingSession) ToggleDetails() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.detailsOpen = !s.detailsOpen
	return s.detailsOpen
}

// BeginDownload marks kind as in flight. It returns false when that same
// kind is already being generated; each kind carries its own busy marker,
// so the two kinds never block each other.
func (s *TrackingSession) BeginDownload(kind DownloadKind) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.downloading[kind] {
		return false
	}
	s.downloading[kind] = true
	return true
}

// EndDownload clears the busy marker for kind.
func (s *TrackingSession) EndDownload(kind DownloadKind) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.downloading, kind)
}

// Share pushes url to the native share surface when one is available, and
// falls back to the clipboard otherwise. When both paths fail the caller
// receives domain.ErrShareUnavailable so the failure can be surfaced to the
// user; a share is never a silent no-op.
func (s *TrackingSession) Share(ctx context.Context, surface ports.ShareSurface, clip ports.Clipboard, title, url string) (ShareOutcome, error) {
	if surface != nil {
		if err := surface.Share(ctx, title, url); err == nil {
			return ShareNative, nil
		} else {
			s.log.Warn().Err(err).Msg("native share failed, falling back to clipboard")
		}
	}
	if clip != nil {
		if err := clip.Copy(ctx, url); err == nil {
			return ShareClipboard, nil
		} else {
			s.log.Warn().Err(err).Msg("clipboard copy failed")
		}
	}
	return "", domain.ErrShareUnavailable
}
