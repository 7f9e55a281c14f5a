package api

import (
	"net/http"
	"shipment-routing-service/internal/api/handlers"
	"shipment-routing-service/internal/services"
	"time"
)

// NewRouter wires HTTP handlers with the planned depot and returns an http.Handler.
// day is the service date that ?at= clock times are resolved against.
func NewRouter(depot *services.Depot, day time.Time) http.Handler {
	mux := http.NewServeMux()

	itemHandler := &handlers.ItemHandler{Depot: depot, Day: day}
	vehicleHandler := &handlers.VehicleHandler{Depot: depot}

	mux.HandleFunc("GET /health", handlers.Health(day.Format(time.DateOnly)))
	mux.HandleFunc("GET /items", itemHandler.List)
	mux.HandleFunc("GET /items/{id}", itemHandler.Get)
	mux.HandleFunc("GET /vehicles", vehicleHandler.List)

	return loggingMiddleware(mux)
}
