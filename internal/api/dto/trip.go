package dto

// StopRequest is one intermediate stop in an optimize-route request.
type StopRequest struct {
	Address string `json:"address"`
	State   string `json:"state"`
}

// OptimizeRouteRequest is the POST /optimize-route body. Field names match
// the web client's camelCase convention.
type OptimizeRouteRequest struct {
	Origin           string        `json:"origin" validate:"required"`
	Destination      string        `json:"destination" validate:"required"`
	OriginState      string        `json:"originState"`
	DestinationState string        `json:"destinationState"`
	FuelEfficiency   float64       `json:"fuelEfficiency" validate:"required,gt=0"`
	FuelPrice        *float64      `json:"fuelPrice" validate:"omitempty,gt=0"`
	Units            string        `json:"units" validate:"omitempty,oneof=miles km"`
	FuelType         string        `json:"fuelType" validate:"omitempty,oneof=Regular Midgrade Premium Diesel"`
	IncludeRoundTrip bool          `json:"includeRoundTrip"`
	PreferredType    string        `json:"preferredRouteType" validate:"omitempty,oneof=none fastest shortest fuel_efficient cheapest"`
	Stops            []StopRequest `json:"stops"`
	// UseEzpass defaults to true when omitted.
	UseEzpass  *bool `json:"useEzpass"`
	AvoidTolls bool  `json:"avoidTolls"`
}

// RouteResponse is one annotated route alternative.
type RouteResponse struct {
	Summary     string  `json:"summary"`
	Distance    float64 `json:"distance"`
	Units       string  `json:"units"`
	DurationMin int     `json:"duration_min"`
	FuelUsed    float64 `json:"fuel_used"`
	// EstimatedCost is the fuel-only cost, kept separate for tags/sorting.
	EstimatedCost float64 `json:"estimated_cost"`
	// EstimatedToll is null when toll data was absent or unpriced; zero
	// means confirmed toll-free.
	EstimatedToll *float64    `json:"estimated_toll"`
	TotalCost     float64     `json:"total_cost"`
	RouteType     *string     `json:"route_type"`
	RouteID       string      `json:"route_id"`
	Path          [][]float64 `json:"path"`
}

// StopResponse echoes a stop with its resolved marker coordinate.
type StopResponse struct {
	Address string      `json:"address"`
	State   string      `json:"state"`
	Path    [][]float64 `json:"path"`
}

// OptimizeRouteResponse is the full trip cost computation result.
type OptimizeRouteResponse struct {
	Origin             string          `json:"origin"`
	Destination        string          `json:"destination"`
	RoundTrip          bool            `json:"round_trip"`
	OriginStateUsed    string          `json:"origin_state_used"`
	FuelPrice          float64         `json:"fuel_price"`
	PreferredRouteType string          `json:"preferred_route_type"`
	OutboundRoutes     []RouteResponse `json:"outbound_routes"`
	ReturnRoutes       []RouteResponse `json:"return_routes"`
	Stops              []StopResponse  `json:"stops"`
}

// FuelPriceResponse is the ad hoc GET /fuel-price result.
type FuelPriceResponse struct {
	Date      string  `json:"date"`
	FuelPrice float64 `json:"fuel_price"`
	FuelType  string  `json:"fuelType"`
	Product   string  `json:"product"`
}
