package handler

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

// --- Request types ---

type trackingRequest struct {
	TrackingNumber string `param:"tracking_number" validate:"required,min=5"`
}

type documentRequest struct {
	TrackingNumber string `param:"tracking_number" validate:"required,min=5"`
	Kind           string `param:"kind"            validate:"required,oneof=details invoice"`
}

// shareRequest lets the client declare which share surfaces it can offer.
// "auto" (the default) prefers native share and falls back to clipboard.
type shareRequest struct {
	TrackingNumber string `param:"tracking_number" validate:"required,min=5"`
	Surface        string `json:"surface" validate:"omitempty,oneof=auto native clipboard"`
}

// --- Response types ---
// Response-only types owned by the transport layer. These are intentionally
// separate from ports/domain types so the JSON contract is not coupled to
// internal service changes.

type stageResponse struct {
	Label     string `json:"label"`
	Completed bool   `json:"completed"`
}

type progressResponse struct {
	Percent int             `json:"percent"`
	Stages  []stageResponse `json:"stages"`
}

type paymentSummaryResponse struct {
	Total          float64 `json:"total"`
	FormattedTotal string  `json:"formatted_total"`
	Currency       string  `json:"currency"`
	Status         string  `json:"status,omitempty"`
}

type trackingEventResponse struct {
	Date        string `json:"date"`
	Status      string `json:"status"`
	Location    string `json:"location"`
	Description string `json:"description"`
}

type partyResponse struct {
	Name         string `json:"name,omitempty"`
	Address      string `json:"address,omitempty"`
	Phone        string `json:"phone,omitempty"`
	Email        string `json:"email,omitempty"`
	Instructions string `json:"instructions,omitempty"`
}

type customsDocumentResponse struct {
	Name     string `json:"name"`
	Received bool   `json:"received"`
}

type customsResponse struct {
	Status           string                    `json:"status"`
	EntryNumber      string                    `json:"entry_number,omitempty"`
	Declaration      string                    `json:"declaration,omitempty"`
	ClearedDate      string                    `json:"cleared_date,omitempty"`
	InspectionStatus string                    `json:"inspection_status,omitempty"`
	Notes            string                    `json:"notes,omitempty"`
	Documents        []customsDocumentResponse `json:"documents,omitempty"`
}

type trackingLinks struct {
	Self      string `json:"self"`
	Map       string `json:"map"`
	Documents string `json:"documents"`
}

type getTrackingResponse struct {
	TrackingNumber    string                  `json:"tracking_number"`
	Status            string                  `json:"status"`
	Service           string                  `json:"service"`
	Weight            string                  `json:"weight"`
	Dimensions        string                  `json:"dimensions,omitempty"`
	Origin            string                  `json:"origin"`
	Destination       string                  `json:"destination"`
	CurrentLocation   string                  `json:"current_location,omitempty"`
	EstimatedDelivery string                  `json:"estimated_delivery,omitempty"`
	DeliveredDate     string                  `json:"delivered_date,omitempty"`
	SignedBy          string                  `json:"signed_by,omitempty"`
	CO2Saved          string                  `json:"co2_saved,omitempty"`
	History           []trackingEventResponse `json:"history"`
	Sender            *partyResponse          `json:"sender,omitempty"`
	Receiver          *partyResponse          `json:"receiver,omitempty"`
	Customs           *customsResponse        `json:"customs,omitempty"`
	Progress          progressResponse        `json:"progress"`
	Payment           paymentSummaryResponse  `json:"payment"`
	Links             trackingLinks           `json:"_links"`
}

type coordinatesResponse struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

type resolvedCoordinatesResponse struct {
	Center      coordinatesResponse   `json:"center"`
	Current     coordinatesResponse   `json:"current"`
	Origin      *coordinatesResponse  `json:"origin,omitempty"`
	Destination *coordinatesResponse  `json:"destination,omitempty"`
	Route       []coordinatesResponse `json:"route"`
}

type getMapResponse struct {
	TrackingNumber string                       `json:"tracking_number"`
	State          string                       `json:"state"`
	Coordinates    *resolvedCoordinatesResponse `json:"coordinates,omitempty"`
}

type createShareResponse struct {
	Token   string `json:"token"`
	URL     string `json:"url"`
	Surface string `json:"surface"`
}
