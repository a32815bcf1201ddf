package service

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/globalway/tracking-service/internal/api/metrics"
	"github.com/globalway/tracking-service/internal/core/domain"
	"github.com/globalway/tracking-service/internal/core/ports"
)

// TrackingService implements ports.TrackingService: record lookup plus the
// synchronous derivations (progress, payment) and the async map resolution,
// one session per tracking number.
type TrackingService struct {
	repo         ports.ShipmentRepository
	resolver     *CoordinateResolver
	shareStore   ports.ShareStore
	shareBaseURL string
	log          zerolog.Logger

	mu       sync.Mutex
	sessions map[string]*TrackingSession
}

// NewTrackingService wires the tracking use cases.
func NewTrackingService(
	repo ports.ShipmentRepository,
	resolver *CoordinateResolver,
	shareStore ports.ShareStore,
	shareBaseURL string,
	log zerolog.Logger,
) *TrackingService {
	return &TrackingService{
		repo:         repo,
		resolver:     resolver,
		shareStore:   shareStore,
		shareBaseURL: shareBaseURL,
		log:          log,
		sessions:     make(map[string]*TrackingSession),
	}
}

// GetTracking fetches the record and derives its progress and payment views.
// Monetary gaps are absorbed (coerced to zero); an unknown status is a
// contract violation and propagates as domain.ErrInvalidStatus.
func (s *TrackingService) GetTracking(ctx context.Context, trackingNumber string) (*ports.TrackingDetail, error) {
	rec, err := s.repo.FindByTrackingNumber(ctx, trackingNumber)
	if err != nil {
		return nil, err
	}

	progress, err := ProgressOf(rec.Status)
	if err != nil {
		s.log.Error().
			Str("tracking_number", trackingNumber).
			Str("status", string(rec.Status)).
			Msg("record carries an unknown status")
		return nil, fmt.Errorf("get tracking %s: %w", trackingNumber, err)
	}

	summary := ports.PaymentSummary{Currency: "USD"}
	if rec.Payment != nil {
		if rec.Payment.Currency != "" {
			summary.Currency = rec.Payment.Currency
		}
		summary.Status = rec.Payment.Status
	}
	summary.Total = PaymentTotal(rec.Payment)
	summary.FormattedTotal = FormatAmount(summary.Total, summary.Currency)

	return &ports.TrackingDetail{
		Record:   rec,
		Progress: progress,
		Payment:  summary,
	}, nil
}

// GetMap returns the coordinate resolution state for a shipment. The first
// call (or a call after the stored record changed) starts a background
// resolution and reports "resolving"; later calls report "ready" with the
// coordinate set. Partial geocode failure is not an error, it just leaves
// the set sparser.
func (s *TrackingService) GetMap(ctx context.Context, trackingNumber string) (*ports.MapView, error) {
	rec, err := s.repo.FindByTrackingNumber(ctx, trackingNumber)
	if err != nil {
		return nil, err
	}

	session := s.session(trackingNumber)
	// Resolution runs beyond this request; it must not die with it.
	session.DisplayIfChanged(context.WithoutCancel(ctx), rec)
	view := session.Snapshot()

	return &ports.MapView{
		TrackingNumber: trackingNumber,
		State:          view.State,
		Coordinates:    view.Coordinates,
	}, nil
}

// session returns the display session for a tracking number, creating an
// idle one on first use.
func (s *TrackingService) session(trackingNumber string) *TrackingSession {
	s.mu.Lock()
	defer s.mu.Unlock()
	session, ok := s.sessions[trackingNumber]
	if !ok {
		session = NewTrackingSession(s.resolver, s.log)
		s.sessions[trackingNumber] = session
	}
	return session
}

// CreateShareLink mints an opaque token for the shipment and stores it so
// the link resolves for its configured lifetime.
func (s *TrackingService) CreateShareLink(ctx context.Context, trackingNumber string) (*ports.ShareLink, error) {
	if _, err := s.repo.FindByTrackingNumber(ctx, trackingNumber); err != nil {
		return nil, err
	}

	token := uuid.NewString()
	if err := s.shareStore.Put(ctx, token, trackingNumber); err != nil {
		return nil, fmt.Errorf("create share link: %w", err)
	}

	metrics.ShareLinksCreatedTotal.Inc()
	s.log.Info().Str("tracking_number", trackingNumber).Msg("share link created")

	return &ports.ShareLink{
		Token: token,
		URL:   fmt.Sprintf("%s/t/%s", s.shareBaseURL, token),
	}, nil
}

// ResolveShareToken maps a share token back to its tracking number.
func (s *TrackingService) ResolveShareToken(ctx context.Context, token string) (string, error) {
	trackingNumber, err := s.shareStore.Get(ctx, token)
	if err != nil {
		return "", domain.ErrShipmentNotFound
	}
	return trackingNumber, nil
}
