package handler

import (
	"github.com/globalway/tracking-service/internal/core/domain"
	"github.com/globalway/tracking-service/internal/core/ports"
)

// toTrackingResponse flattens a TrackingDetail into the wire representation.
func toTrackingResponse(detail *ports.TrackingDetail) getTrackingResponse {
	rec := detail.Record

	resp := getTrackingResponse{
		TrackingNumber:    rec.TrackingNumber,
		Status:            string(rec.Status),
		Service:           rec.Service,
		Weight:            rec.Weight,
		Dimensions:        rec.Dimensions,
		Origin:            rec.Origin,
		Destination:       rec.Destination,
		CurrentLocation:   rec.CurrentLocation,
		EstimatedDelivery: rec.EstimatedDelivery,
		DeliveredDate:     rec.DeliveredDate,
		SignedBy:          rec.SignedBy,
		CO2Saved:          rec.CO2Saved,
		History:           make([]trackingEventResponse, 0, len(rec.History)),
		Sender:            toPartyResponse(rec.Sender),
		Receiver:          toPartyResponse(rec.Receiver),
		Customs:           toCustomsResponse(rec.Customs),
		Progress: progressResponse{
			Percent: detail.Progress.Percent,
			Stages:  make([]stageResponse, 0, len(detail.Progress.Stages)),
		},
		Payment: paymentSummaryResponse{
			Total:          detail.Payment.Total,
			FormattedTotal: detail.Payment.FormattedTotal,
			Currency:       detail.Payment.Currency,
			Status:         detail.Payment.Status,
		},
		Links: trackingLinks{
			Self:      "/v1/tracking/" + rec.TrackingNumber,
			Map:       "/v1/tracking/" + rec.TrackingNumber + "/map",
			Documents: "/v1/tracking/" + rec.TrackingNumber + "/documents",
		},
	}

	for _, ev := range rec.History {
		resp.History = append(resp.History, trackingEventResponse{
			Date:        ev.Date,
			Status:      ev.Status,
			Location:    ev.Location,
			Description: ev.Description,
		})
	}
	for _, st := range detail.Progress.Stages {
		resp.Progress.Stages = append(resp.Progress.Stages, stageResponse{
			Label:     st.Label,
			Completed: st.Completed,
		})
	}
	return resp
}

func toPartyResponse(p *domain.Party) *partyResponse {
	if p == nil {
		return nil
	}
	return &partyResponse{
		Name:         p.Name,
		Address:      p.Address,
		Phone:        p.Phone,
		Email:        p.Email,
		Instructions: p.Instructions,
	}
}

func toCustomsResponse(c *domain.CustomsInfo) *customsResponse {
	if c == nil {
		return nil
	}
	resp := &customsResponse{
		Status:           string(c.Status),
		EntryNumber:      c.EntryNumber,
		Declaration:      c.Declaration,
		ClearedDate:      c.ClearedDate,
		InspectionStatus: c.InspectionStatus,
		Notes:            c.Notes,
	}
	for _, d := range c.Documents {
		resp.Documents = append(resp.Documents, customsDocumentResponse{Name: d.Name, Received: d.Received})
	}
	return resp
}

func toMapResponse(view *ports.MapView) getMapResponse {
	resp := getMapResponse{
		TrackingNumber: view.TrackingNumber,
		State:          string(view.State),
	}
	if view.Coordinates != nil {
		coords := resolvedCoordinatesResponse{
			Center:  coordinatesResponse(view.Coordinates.Center),
			Current: coordinatesResponse(view.Coordinates.Current),
			Route:   make([]coordinatesResponse, 0, len(view.Coordinates.Route)),
		}
		if view.Coordinates.Origin != nil {
			c := coordinatesResponse(*view.Coordinates.Origin)
			coords.Origin = &c
		}
		if view.Coordinates.Destination != nil {
			c := coordinatesResponse(*view.Coordinates.Destination)
			coords.Destination = &c
		}
		for _, p := range view.Coordinates.Route {
			coords.Route = append(coords.Route, coordinatesResponse(p))
		}
		resp.Coordinates = &coords
	}
	return resp
}
