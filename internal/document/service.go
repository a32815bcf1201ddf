package document

import (
	"context"
	"fmt"

	"github.com/globalway/tracking-service/internal/core/domain"
	"github.com/globalway/tracking-service/internal/core/ports"
)

// Service combines generation with delivery to a document sink. The sink is
// an injected capability (print window, file, HTTP response) so the content
// pipeline stays testable without a platform surface behind it.
type Service struct {
	gen  *Generator
	sink ports.DocumentSink
}

// NewService wires a generator to a sink.
func NewService(gen *Generator, sink ports.DocumentSink) *Service {
	return &Service{gen: gen, sink: sink}
}

// Deliver generates the requested document and hands it to the sink,
// returning the sink's handle for the rendered document.
func (s *Service) Deliver(ctx context.Context, rec *domain.ShipmentRecord, kind Kind) (string, error) {
	content, err := s.gen.Generate(rec, kind)
	if err != nil {
		return "", err
	}

	title := fmt.Sprintf("%s-%s", kind, rec.TrackingNumber)
	handle, err := s.sink.Render(ctx, title, content)
	if err != nil {
		return "", fmt.Errorf("deliver %s document: %w", kind, err)
	}
	return handle, nil
}
