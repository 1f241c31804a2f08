package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"log"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"

	"fuel-route-service/internal/api/dto"
	"fuel-route-service/internal/domain"
	"fuel-route-service/internal/services"
)

// TripHandler exposes the trip cost computation endpoint.
type TripHandler struct {
	Optimizer *services.Optimizer
	Validate  *validator.Validate
}

// OptimizeRoute handles POST /optimize-route: it normalizes the request,
// runs the cost pipeline (or serves the cached result), and renders the
// annotated route lists.
func (h *TripHandler) OptimizeRoute(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	var req dto.OptimizeRouteRequest

	dec := json.NewDecoder(r.Body)
	defer r.Body.Close()

	if err := dec.Decode(&req); err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid json body")
		return
	}
	if err := dec.Decode(&struct{}{}); err != io.EOF {
		writeError(w, r, http.StatusBadRequest, "body must contain only one JSON object")
		return
	}

	if err := h.Validate.Struct(req); err != nil {
		writeError(w, r, http.StatusBadRequest, validationMessage(err))
		return
	}

	trip := toTripRequest(req)

	result, err := h.Optimizer.Optimize(r.Context(), trip)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrValidation):
			writeError(w, r, http.StatusBadRequest, err.Error())
		case errors.Is(err, domain.ErrNoPriceData):
			log.Printf("optimize route failed: %v", err)
			writeError(w, r, http.StatusInternalServerError, "No fuel price available for selected fuel type")
		default:
			log.Printf("optimize route failed: %v", err)
			writeError(w, r, http.StatusInternalServerError, "Error processing fuel cost estimation")
		}
		return
	}

	writeJSON(w, r, http.StatusOK, toTripResponse(result))
}

// validationMessage keeps the caller-facing messages of the original API
// for its two fail-fast checks, with a generic field message otherwise.
func validationMessage(err error) string {
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return "invalid request"
	}

	switch fieldErrs[0].Field() {
	case "FuelEfficiency":
		return "Missing fuel efficiency (MPG) in request body"
	case "FuelType":
		return "Invalid fuel type selected"
	default:
		return "invalid field " + fieldErrs[0].Field()
	}
}

func toTripRequest(req dto.OptimizeRouteRequest) domain.TripRequest {
	units := req.Units
	if units == "" {
		units = domain.UnitsMiles
	}

	fuelType := domain.FuelType(req.FuelType)
	if req.FuelType == "" {
		fuelType = domain.FuelRegular
	}

	criterion := req.PreferredType
	if criterion == "" {
		criterion = domain.CriterionNone
	}

	useEzpass := true
	if req.UseEzpass != nil {
		useEzpass = *req.UseEzpass
	}

	stops := make([]domain.Stop, 0, len(req.Stops))
	for _, s := range req.Stops {
		stops = append(stops, domain.Stop{Address: s.Address, State: s.State})
	}

	return domain.TripRequest{
		Origin:           req.Origin,
		Destination:      req.Destination,
		OriginState:      req.OriginState,
		DestinationState: req.DestinationState,
		FuelEfficiency:   req.FuelEfficiency,
		FuelPrice:        req.FuelPrice,
		Units:            units,
		FuelType:         fuelType,
		RoundTrip:        req.IncludeRoundTrip,
		Criterion:        criterion,
		Stops:            stops,
		UseEzpass:        useEzpass,
		AvoidTolls:       req.AvoidTolls,
	}
}

func toRouteResponses(routes []domain.Route) []dto.RouteResponse {
	out := make([]dto.RouteResponse, 0, len(routes))
	for _, r := range routes {
		var routeType *string
		if len(r.Tags) > 0 {
			joined := strings.Join(r.Tags, ",")
			routeType = &joined
		}

		path := r.Path
		if path == nil {
			path = [][]float64{}
		}

		out = append(out, dto.RouteResponse{
			Summary:       r.Summary,
			Distance:      r.Distance,
			Units:         r.Units,
			DurationMin:   r.DurationMin,
			FuelUsed:      r.FuelUsed,
			EstimatedCost: r.FuelCost,
			EstimatedToll: r.TollCost,
			TotalCost:     r.TotalCost,
			RouteType:     routeType,
			RouteID:       r.ID,
			Path:          path,
		})
	}
	return out
}

func toTripResponse(result domain.TripResult) dto.OptimizeRouteResponse {
	stops := make([]dto.StopResponse, 0, len(result.Stops))
	for _, s := range result.Stops {
		path := [][]float64{}
		if s.Location != nil {
			path = append(path, s.Location.PathPoint())
		}
		stops = append(stops, dto.StopResponse{
			Address: s.Address,
			State:   s.State,
			Path:    path,
		})
	}

	return dto.OptimizeRouteResponse{
		Origin:             result.Origin,
		Destination:        result.Destination,
		RoundTrip:          result.RoundTrip,
		OriginStateUsed:    result.PriceArea,
		FuelPrice:          result.FuelPrice,
		PreferredRouteType: result.Criterion,
		OutboundRoutes:     toRouteResponses(result.Outbound),
		ReturnRoutes:       toRouteResponses(result.Return),
		Stops:              stops,
	}
}
