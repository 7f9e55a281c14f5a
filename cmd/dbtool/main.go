package main

import (
	"context"
	"database/sql"
	"log"
	"shipment-routing-service/internal/adapters/repositories"
	"shipment-routing-service/internal/config"
	"shipment-routing-service/internal/platform/db"
)

func main() {
	config.LoadEnv()
	cfg := config.Load()

	conn, err := db.OpenFor(cfg.DBDriver, cfg.DBPath, cfg.DatabaseURL)
	if err != nil {
		log.Fatal(err)
	}
	defer conn.Close()

	dialect, err := repositories.DialectFor(cfg.DBDriver)
	if err != nil {
		log.Fatal(err)
	}

	if err := initAndSeed(context.Background(), conn, dialect, cfg); err != nil {
		log.Fatal(err)
	}
}

func initAndSeed(ctx context.Context, conn *sql.DB, dialect repositories.Dialect, cfg config.Config) error {
	log.Println("Initializing database schema...")
	if err := repositories.InitSchema(ctx, conn); err != nil {
		return err
	}
	log.Println("Schema ready.")

	log.Printf("Seeding database from items=%s addresses=%s distances=%s", cfg.ItemsCSV, cfg.AddressesCSV, cfg.DistancesCSV)
	if err := repositories.SeedFromCSV(ctx, conn, dialect, cfg.ItemsCSV, cfg.AddressesCSV, cfg.DistancesCSV); err != nil {
		return err
	}
	log.Println("Seeding complete.")

	return nil
}
