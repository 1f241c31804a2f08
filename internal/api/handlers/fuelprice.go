package handlers

import (
	"errors"
	"log"
	"net/http"

	"fuel-route-service/internal/api/dto"
	"fuel-route-service/internal/domain"
	"fuel-route-service/internal/ports"
	"fuel-route-service/internal/services"
)

// FuelPriceHandler exposes the ad hoc national-average price lookup.
// It queries the provider directly and is independent of the trip cache.
type FuelPriceHandler struct {
	Prices ports.FuelPriceProvider
}

// Latest handles GET /fuel-price?fuelType=. Unknown fuel types fall back
// to Regular; the pseudo type "All" selects the all-grades series.
func (h *FuelPriceHandler) Latest(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	fuelType := domain.FuelType(r.URL.Query().Get("fuelType"))
	product, ok := fuelType.ProductCode()
	if !ok {
		fuelType = domain.FuelRegular
		product, _ = fuelType.ProductCode()
	}

	point, err := h.Prices.LatestPrice(r.Context(), product, domain.NationalArea)
	if err != nil {
		if errors.Is(err, domain.ErrNoPriceData) {
			writeError(w, r, http.StatusNotFound, "No fuel price data available")
			return
		}
		log.Printf("fuel price lookup failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "Failed to fetch fuel price")
		return
	}

	writeJSON(w, r, http.StatusOK, dto.FuelPriceResponse{
		Date:      point.Period,
		FuelPrice: services.Round2(point.Value),
		FuelType:  string(fuelType),
		Product:   product,
	})
}
