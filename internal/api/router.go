package api

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/rs/cors"

	"fuel-route-service/internal/api/handlers"
	"fuel-route-service/internal/ports"
	"fuel-route-service/internal/services"
)

// NewRouter wires HTTP handlers with their dependencies and returns an
// http.Handler. This is the API composition root (handlers stay unaware of
// concrete adapters).
func NewRouter(
	optimizer *services.Optimizer,
	prices ports.FuelPriceProvider,
	vehicleData ports.VehicleDataProvider,
	menu *services.VehicleMenu,
	corsOrigin string,
) http.Handler {
	mux := http.NewServeMux()

	validate := validator.New()

	tripHandler := &handlers.TripHandler{Optimizer: optimizer, Validate: validate}
	priceHandler := &handlers.FuelPriceHandler{Prices: prices}
	vehicleHandler := &handlers.VehicleHandler{
		Provider: vehicleData,
		Menu:     menu,
		Validate: validate,
	}

	mux.HandleFunc("/health", handlers.Health)
	mux.HandleFunc("/optimize-route", tripHandler.OptimizeRoute)
	mux.HandleFunc("/fuel-price", priceHandler.Latest)
	mux.HandleFunc("/vehicle-years", vehicleHandler.Years)
	mux.HandleFunc("/vehicle-makes", vehicleHandler.Makes)
	mux.HandleFunc("/vehicle-models", vehicleHandler.Models)
	mux.HandleFunc("/get-mpg", vehicleHandler.MPG)

	allowed := []string{"*"}
	if corsOrigin != "" {
		allowed = []string{corsOrigin}
	}
	c := cors.New(cors.Options{
		AllowedOrigins: allowed,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Content-Type"},
	})

	return c.Handler(loggingMiddleware(mux))
}
