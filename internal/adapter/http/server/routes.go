package server

import (
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/adilkhan-sa/bluelink-gateway/docs"
)

// setupRoutes - setups http routes
func (a *API) setupRoutes() {
	// System
	a.mux.HandleFunc("GET /health", a.routes.health.HealthCheck)
	a.mux.Handle("/metrics", promhttp.Handler())
	a.mux.HandleFunc("/swagger/", httpSwagger.Handler(httpSwagger.InstanceName("gateway")))

	// Session
	a.mux.HandleFunc("POST /api/login", a.routes.session.Login)

	// Vehicles
	a.mux.HandleFunc("GET /api/vehicles", a.routes.vehicle.List)
	a.mux.HandleFunc("POST /api/vehicles/{vin}/status", a.routes.vehicle.Status)
	a.mux.HandleFunc("GET /api/vehicles/{vin}/location", a.routes.vehicle.Location)

	// Remote commands
	a.mux.HandleFunc("POST /api/vehicles/{vin}/lock", a.routes.vehicle.Lock)
	a.mux.HandleFunc("POST /api/vehicles/{vin}/unlock", a.routes.vehicle.Unlock)
	a.mux.HandleFunc("POST /api/vehicles/{vin}/start", a.routes.vehicle.Start)
	a.mux.HandleFunc("POST /api/vehicles/{vin}/stop", a.routes.vehicle.Stop)
}
