package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"math"
	"shipment-routing-service/internal/adapters/csvload"
)

// Initialize the database schema. Statements are valid for SQLite and Postgres.
func InitSchema(ctx context.Context, db *sql.DB) error {
	if db == nil {
		return errors.New("init schema: DB is nil")
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("init schema: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	createItemsQuery := `
	CREATE TABLE IF NOT EXISTS items (
		item_id INTEGER PRIMARY KEY,
		address TEXT NOT NULL,
		city TEXT NOT NULL,
		state TEXT NOT NULL,
		zip TEXT NOT NULL,
		deadline TEXT NOT NULL,
		weight INTEGER NOT NULL,
		notes TEXT NOT NULL
	);
	`

	createAddressesQuery := `
	CREATE TABLE IF NOT EXISTS addresses (
		location_id INTEGER PRIMARY KEY,
		name TEXT NOT NULL,
		street TEXT NOT NULL
	);
	`

	createDistancesQuery := `
	CREATE TABLE IF NOT EXISTS distances (
		from_location INTEGER NOT NULL,
		to_location INTEGER NOT NULL,
		distance DOUBLE PRECISION NOT NULL,
		PRIMARY KEY (from_location, to_location)
	);
	`

	createDeliveriesQuery := `
	CREATE TABLE IF NOT EXISTS deliveries (
		item_id INTEGER PRIMARY KEY,
		vehicle_id INTEGER NOT NULL,
		delivered_at TEXT NOT NULL
	);
	`

	createIndexQuery := `
	CREATE INDEX IF NOT EXISTS idx_deliveries_vehicle
	ON deliveries(vehicle_id);
	`

	statements := []string{
		createItemsQuery,
		createAddressesQuery,
		createDistancesQuery,
		createDeliveriesQuery,
		createIndexQuery,
	}

	for i, stmt := range statements {
		if _, err := tx.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("init schema: exec statement #%d: %w", i+1, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("init schema: commit tx: %w", err)
	}

	return nil
}

// Populate the database with the static input tables.
// Rows are upserted, so seeding twice is safe.
func Seed(ctx context.Context, db *sql.DB, dialect Dialect, ds *csvload.Dataset) error {
	if db == nil || ds == nil {
		return errors.New("seed: DB and dataset must be non-nil")
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("seed: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	itemStmt, err := tx.PrepareContext(ctx, dialect.rebind(`
	INSERT INTO items (item_id, address, city, state, zip, deadline, weight, notes)
	VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	ON CONFLICT (item_id) DO UPDATE
	SET address = excluded.address,
		city = excluded.city,
		state = excluded.state,
		zip = excluded.zip,
		deadline = excluded.deadline,
		weight = excluded.weight,
		notes = excluded.notes;
	`))
	if err != nil {
		return fmt.Errorf("seed: prepare items insert: %w", err)
	}
	defer itemStmt.Close()

	for _, it := range ds.Items {
		if _, err := itemStmt.ExecContext(ctx,
			it.ItemID, it.Address, it.City, it.State, it.Zip, it.Deadline, it.Weight, it.Notes,
		); err != nil {
			return fmt.Errorf("seed: insert item_id=%d: %w", it.ItemID, err)
		}
	}

	addrStmt, err := tx.PrepareContext(ctx, dialect.rebind(`
	INSERT INTO addresses (location_id, name, street)
	VALUES (?, ?, ?)
	ON CONFLICT (location_id) DO UPDATE
	SET name = excluded.name,
		street = excluded.street;
	`))
	if err != nil {
		return fmt.Errorf("seed: prepare addresses insert: %w", err)
	}
	defer addrStmt.Close()

	for _, a := range ds.Addresses {
		if _, err := addrStmt.ExecContext(ctx, a.LocationID, a.Name, a.Street); err != nil {
			return fmt.Errorf("seed: insert location_id=%d: %w", a.LocationID, err)
		}
	}

	distStmt, err := tx.PrepareContext(ctx, dialect.rebind(`
	INSERT INTO distances (from_location, to_location, distance)
	VALUES (?, ?, ?)
	ON CONFLICT (from_location, to_location) DO UPDATE
	SET distance = excluded.distance;
	`))
	if err != nil {
		return fmt.Errorf("seed: prepare distances insert: %w", err)
	}
	defer distStmt.Close()

	// Only populated cells are stored; undefined cells stay absent.
	for i, row := range ds.Distances {
		for j, v := range row {
			if math.IsNaN(v) {
				continue
			}
			if _, err := distStmt.ExecContext(ctx, i, j, v); err != nil {
				return fmt.Errorf("seed: insert distance (%d,%d): %w", i, j, err)
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("seed: commit tx: %w", err)
	}

	return nil
}

// SeedFromCSV loads the three CSV tables and seeds them into db.
func SeedFromCSV(ctx context.Context, db *sql.DB, dialect Dialect, itemsPath, addressesPath, distancesPath string) error {
	ds, err := csvload.LoadDataset(itemsPath, addressesPath, distancesPath)
	if err != nil {
		return fmt.Errorf("seed from csv: %w", err)
	}
	if err := Seed(ctx, db, dialect, ds); err != nil {
		return fmt.Errorf("seed from csv: %w", err)
	}
	return nil
}
