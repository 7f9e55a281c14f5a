package main

import (
	"context"
	"log"
	"net/http"
	"shipment-routing-service/internal/api"
	"shipment-routing-service/internal/app"
	"shipment-routing-service/internal/config"
	"time"
)

// main is the application composition root.
// It plans and simulates the service day, then serves status queries over HTTP.
func main() {
	config.LoadEnv()
	cfg := config.Load()

	ctx := context.Background()
	a, err := app.Open(ctx, cfg)
	if err != nil {
		log.Fatal(err)
	}
	defer a.Close()

	router := api.NewRouter(a.Depot, a.Manifest.Day())

	log.Printf("Server listening addr=:%s driver=%s cache=%t", cfg.Port, cfg.DBDriver, cfg.RedisURL != "")
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
	log.Fatal(srv.ListenAndServe())
}
