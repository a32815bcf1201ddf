package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/globalway/tracking-service/internal/core/ports"
	"github.com/globalway/tracking-service/internal/document"
)

// TrackingHandler handles HTTP requests for shipment tracking views.
type TrackingHandler struct {
	service   ports.TrackingService
	documents *document.Generator
}

func NewTrackingHandler(service ports.TrackingService, documents *document.Generator) *TrackingHandler {
	return &TrackingHandler{service: service, documents: documents}
}

// Get handles GET /v1/tracking/:tracking_number.
//
// @Summary      Get tracking details for a shipment
// @Tags         tracking
// @Produce      json
// @Param        tracking_number  path      string  true  "Tracking number (e.g. GW123456)"
// @Success      200              {object}  getTrackingResponse
// @Failure      404              {object}  errorResponse
// @Failure      422              {object}  errorResponse
// @Router       /v1/tracking/{tracking_number} [get]
func (h *TrackingHandler) Get(c echo.Context) error {
	var req trackingRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	detail, err := h.service.GetTracking(c.Request().Context(), req.TrackingNumber)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toTrackingResponse(detail))
}

// GetMap handles GET /v1/tracking/:tracking_number/map.
//
// The first request for a shipment kicks off coordinate resolution and
// answers with state "resolving"; clients poll until state is "ready".
// Locations that could not be geocoded are simply absent from the set.
//
// @Summary      Get resolved map coordinates for a shipment
// @Tags         tracking
// @Produce      json
// @Param        tracking_number  path      string  true  "Tracking number"
// @Success      200              {object}  getMapResponse
// @Failure      404              {object}  errorResponse
// @Router       /v1/tracking/{tracking_number}/map [get]
func (h *TrackingHandler) GetMap(c echo.Context) error {
	var req trackingRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	view, err := h.service.GetMap(c.Request().Context(), req.TrackingNumber)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toMapResponse(view))
}

// GetDocument handles GET /v1/tracking/:tracking_number/documents/:kind.
//
// @Summary      Generate a printable document for a shipment
// @Tags         tracking
// @Produce      html
// @Param        tracking_number  path      string  true  "Tracking number"
// @Param        kind             path      string  true  "Document kind"  Enums(details, invoice)
// @Success      200              {string}  string  "Self-contained printable HTML"
// @Failure      404              {object}  errorResponse
// @Failure      422              {object}  errorResponse
// @Router       /v1/tracking/{tracking_number}/documents/{kind} [get]
func (h *TrackingHandler) GetDocument(c echo.Context) error {
	var req documentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	detail, err := h.service.GetTracking(c.Request().Context(), req.TrackingNumber)
	if err != nil {
		return err
	}

	content, err := h.documents.Generate(detail.Record, document.Kind(req.Kind))
	if err != nil {
		return err
	}
	return c.HTML(http.StatusOK, content)
}

// CreateShare handles POST /v1/tracking/:tracking_number/share.
//
// @Summary      Create a shareable link for a shipment
// @Tags         tracking
// @Accept       json
// @Produce      json
// @Param        tracking_number  path      string        true   "Tracking number"
// @Param        body             body      shareRequest  false  "Preferred share surface"
// @Success      201              {object}  createShareResponse
// @Failure      404              {object}  errorResponse
// @Router       /v1/tracking/{tracking_number}/share [post]
func (h *TrackingHandler) CreateShare(c echo.Context) error {
	var req shareRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	link, err := h.service.CreateShareLink(c.Request().Context(), req.TrackingNumber)
	if err != nil {
		return err
	}

	surface := req.Surface
	if surface == "" {
		surface = "auto"
	}
	return c.JSON(http.StatusCreated, createShareResponse{
		Token:   link.Token,
		URL:     link.URL,
		Surface: surface,
	})
}

// ResolveShare handles GET /t/:token, the public share link target. It
// redirects to the tracking view for the shipment the token was minted for.
//
// @Summary      Resolve a share token
// @Tags         tracking
// @Param        token  path  string  true  "Share token"
// @Success      302
// @Failure      404    {object}  errorResponse
// @Router       /t/{token} [get]
func (h *TrackingHandler) ResolveShare(c echo.Context) error {
	token := c.Param("token")

	trackingNumber, err := h.service.ResolveShareToken(c.Request().Context(), token)
	if err != nil {
		return err
	}
	return c.Redirect(http.StatusFound, "/v1/tracking/"+trackingNumber)
}
