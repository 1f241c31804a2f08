package handlers

import "net/http"

type healthResponse struct {
	Status  string `json:"status"`
	Service string `json:"service"`
}

// Health is a liveness probe. It reports without touching any upstream
// provider, so it stays green when Google or EIA are down.
func Health(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	writeJSON(w, r, http.StatusOK, healthResponse{Status: "ok", Service: "fuel-route-service"})
}
