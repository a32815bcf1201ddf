package domain

// Coordinates represents a geographic point.
type Coordinates struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// FallbackCenter is the sentinel map center used when nothing on a shipment
// could be geocoded. The map still renders, centered on the null island
// origin.
var FallbackCenter = Coordinates{Lat: 0, Lng: 0}

// ResolvedCoordinates is the ephemeral coordinate set derived for one view
// session of one shipment. It is recomputed whenever the displayed shipment
// changes and is never persisted back onto the record.
type ResolvedCoordinates struct {
	// Center is where the map should focus: the current location when it
	// resolved, else origin, else destination, else FallbackCenter.
	Center Coordinates `json:"center"`
	// Current is the shipment's present position marker; it falls back to
	// Center when the current location is absent or unresolvable.
	Current Coordinates `json:"current"`
	// Origin and Destination are nil when their geocode did not resolve.
	Origin      *Coordinates `json:"origin,omitempty"`
	Destination *Coordinates `json:"destination,omitempty"`
	// Route holds one point per successfully geocoded history event, in
	// history order (most recent first). Failed geocodes are dropped, so
	// len(Route) <= len(History).
	Route []Coordinates `json:"route"`
}
