package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/go-playground/validator/v10"

	"fuel-route-service/internal/api/dto"
	"fuel-route-service/internal/domain"
	"fuel-route-service/internal/ports"
	"fuel-route-service/internal/services"
)

// VehicleHandler exposes vehicle menu passthroughs and the MPG lookup over
// the external vehicle-data provider.
type VehicleHandler struct {
	Provider ports.VehicleDataProvider
	Menu     *services.VehicleMenu
	Validate *validator.Validate
}

// Years handles GET /vehicle-years.
func (h *VehicleHandler) Years(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	years, err := h.Provider.Years(r.Context())
	if err != nil {
		log.Printf("vehicle years failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "Could not retrieve available years")
		return
	}

	writeJSON(w, r, http.StatusOK, dto.YearsResponse{Years: years})
}

// Makes handles GET /vehicle-makes?year=.
func (h *VehicleHandler) Makes(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	year := r.URL.Query().Get("year")
	if year == "" {
		writeError(w, r, http.StatusBadRequest, "Missing year parameter")
		return
	}

	makes, err := h.Provider.Makes(r.Context(), year)
	if err != nil {
		log.Printf("vehicle makes failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "Failed to fetch vehicle makes")
		return
	}

	writeJSON(w, r, http.StatusOK, dto.MakesResponse{Makes: makes})
}

// Models handles GET /vehicle-models?year=&make=, filtered to models with
// MPG data.
func (h *VehicleHandler) Models(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	year := r.URL.Query().Get("year")
	makeName := r.URL.Query().Get("make")
	if year == "" || makeName == "" {
		writeError(w, r, http.StatusBadRequest, "Missing year or make parameter")
		return
	}

	models, err := h.Menu.ValidModels(r.Context(), year, makeName)
	if err != nil {
		log.Printf("vehicle models failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "Failed to fetch valid vehicle models")
		return
	}

	writeJSON(w, r, http.StatusOK, dto.ModelsResponse{Models: models})
}

// MPG handles POST /get-mpg.
func (h *VehicleHandler) MPG(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	var req dto.MPGRequest
	dec := json.NewDecoder(r.Body)
	defer r.Body.Close()

	if err := dec.Decode(&req); err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid json body")
		return
	}
	if err := h.Validate.Struct(req); err != nil {
		writeError(w, r, http.StatusBadRequest, "Missing year, make or model")
		return
	}

	mpg, err := h.Menu.CombinedMPG(r.Context(), req.Year, req.Make, req.Model)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			writeError(w, r, http.StatusNotFound, "MPG data not available for this vehicle")
			return
		}
		log.Printf("mpg lookup failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "Failed to fetch MPG data")
		return
	}

	writeJSON(w, r, http.StatusOK, dto.MPGResponse{MPG: mpg})
}
