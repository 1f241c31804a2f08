package main

import (
	"log"
	"net/http"
	"time"

	"fuel-route-service/internal/adapters/cache"
	"fuel-route-service/internal/adapters/directions"
	"fuel-route-service/internal/adapters/fuelprice"
	"fuel-route-service/internal/adapters/geocode"
	"fuel-route-service/internal/adapters/vehicles"
	"fuel-route-service/internal/api"
	"fuel-route-service/internal/config"
	"fuel-route-service/internal/domain"
	"fuel-route-service/internal/services"

	"github.com/joho/godotenv"
)

// main is the application composition root.
// It wires concrete adapters (Google Maps, EIA, FuelEconomy.gov) behind ports
// and starts the HTTP server.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found (using environment variables)")
	}

	port := config.Get("PORT", "8080")
	corsOrigin := config.Get("CORS_ORIGIN", "")

	mapsKey, err := config.MustGet("GOOGLE_MAPS_API_KEY")
	if err != nil {
		log.Fatal(err)
	}
	eiaKey, err := config.MustGet("EIA_API_KEY")
	if err != nil {
		log.Fatal(err)
	}

	geocoder, err := geocode.NewGoogleGeocoder(mapsKey)
	if err != nil {
		log.Fatal(err)
	}
	router, err := directions.NewGoogleRoutes(mapsKey)
	if err != nil {
		log.Fatal(err)
	}
	prices, err := fuelprice.NewEIAClient(eiaKey)
	if err != nil {
		log.Fatal(err)
	}
	vehicleData := vehicles.NewFuelEconomyClient()

	// Route results are cached for an hour; vehicle model menus change rarely
	// and keep for a day.
	resultCache := cache.NewMemory[domain.TripResult](time.Hour)
	modelCache := cache.NewMemory[[]string](24 * time.Hour)

	optimizer := services.NewOptimizer(geocoder, router, prices, resultCache)
	menu := services.NewVehicleMenu(vehicleData, modelCache)

	handler := api.NewRouter(optimizer, prices, vehicleData, menu, corsOrigin)

	// Timeouts are tuned for cold-cache trips (geocode plus directions latency).
	log.Printf("Server listening addr=:%s", port)
	srv := &http.Server{
		Addr:              ":" + port,
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      120 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
	log.Fatal(srv.ListenAndServe())
}
