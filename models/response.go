package models

// PathEdge is one traversed leg of a returned route.
type PathEdge struct {
	From     string  `json:"from"`
	To       string  `json:"to"`
	Mode     Mode    `json:"mode"`
	Time     float64 `json:"time"`
	Price    float64 `json:"price"`
	Distance float64 `json:"distance"`
}

// Coordinate carries a path node's position for map plotting.
type Coordinate struct {
	Node      string  `json:"node"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// RoutePath is one candidate route. The four sums are the physical totals of
// the traversed edges; search penalties are never reflected here.
type RoutePath struct {
	Path        []string     `json:"path"`
	Coordinates []Coordinate `json:"coordinates"`
	Edges       []PathEdge   `json:"edges"`
	TimeSum     float64      `json:"time_sum"`
	PriceSum    float64      `json:"price_sum"`
	DistanceSum float64      `json:"distance_sum"`
	CO2Sum      float64      `json:"CO2_sum"`
}

// PathsError is the "paths" payload when planning completed but every route
// was eliminated. It is delivered at HTTP 200 so clients can tell it apart
// from a transport-level failure.
type PathsError struct {
	Error string `json:"error"`
}

// RouteResponse is the planning result. Paths holds either []RoutePath
// (ranked best-first) or a PathsError.
type RouteResponse struct {
	AvoidedCountries []string    `json:"avoided_countries"`
	PenaltyCountries []string    `json:"penalty_countries"`
	Paths            interface{} `json:"paths"`
}

// ApiError is the envelope for request and server errors (HTTP 4xx/5xx).
type ApiError struct {
	Code      string `json:"code"`
	Message   string `json:"message"`
	RequestID string `json:"request_id"`
}
