package api

import (
	"net/http"
	"train-dispatch-service/internal/api/handlers"
	"train-dispatch-service/internal/ports"
	"train-dispatch-service/internal/services"

	"github.com/gorilla/mux"
)

// NewRouter wires HTTP handlers with their dependencies and returns an http.Handler.
// This is the API composition root (handlers stay unaware of concrete adapters).
func NewRouter(network *services.TrackNetwork, catalog *services.CargoLedger, sinks ...ports.TravelLogSink) http.Handler {
	r := mux.NewRouter()
	r.NotFoundHandler = http.HandlerFunc(handlers.NotFound)
	r.MethodNotAllowedHandler = http.HandlerFunc(handlers.MethodNotAllowed)

	networkHandler := &handlers.NetworkHandler{Network: network, Catalog: catalog}
	simHandler := &handlers.SimulationHandler{
		Network: network,
		Catalog: catalog,
		Sinks:   sinks,
	}

	r.HandleFunc("/health", handlers.Health).Methods(http.MethodGet)
	r.HandleFunc("/stations", networkHandler.Stations).Methods(http.MethodGet)
	r.HandleFunc("/items", networkHandler.Items).Methods(http.MethodGet)
	r.HandleFunc("/paths", networkHandler.Path).Methods(http.MethodGet)
	r.HandleFunc("/simulations", simHandler.Run).Methods(http.MethodPost)

	return loggingMiddleware(r)
}
