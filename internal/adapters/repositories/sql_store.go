package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"math"
	"shipment-routing-service/internal/domain"
	"shipment-routing-service/internal/platform/obs"
	"time"
)

// SQL-backed implementation of the ItemRepository, LocationRepository and
// DeliveryRecorder ports. Works with SQLite and Postgres.
type SQLStore struct {
	DB      *sql.DB
	Dialect Dialect
}

func NewSQLStore(db *sql.DB, dialect Dialect) *SQLStore {
	return &SQLStore{DB: db, Dialect: dialect}
}

// Return all items stored in the database.
func (s *SQLStore) ListItems(ctx context.Context) (_ []*domain.Item, err error) {
	defer obs.Time(ctx, "store.ListItems")(&err)

	if s.DB == nil {
		return nil, errors.New("sql store: DB is nil")
	}

	query := `
	SELECT
		item_id,
		address,
		city,
		state,
		zip,
		deadline,
		weight,
		notes
	FROM items
	ORDER BY item_id;
	`
	rows, err := s.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list items: query items table: %w", err)
	}
	defer rows.Close()

	items := make([]*domain.Item, 0, 64)
	for rows.Next() {
		var it domain.Item
		if err := rows.Scan(&it.ItemID, &it.Address, &it.City, &it.State, &it.Zip, &it.Deadline, &it.Weight, &it.Notes); err != nil {
			return nil, fmt.Errorf("list items: scan row: %w", err)
		}
		items = append(items, &it)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list items: row iteration: %w", err)
	}

	return items, nil
}

// Return the address table ordered by location id.
func (s *SQLStore) ListAddresses(ctx context.Context) (_ []domain.Address, err error) {
	defer obs.Time(ctx, "store.ListAddresses")(&err)

	if s.DB == nil {
		return nil, errors.New("sql store: DB is nil")
	}

	rows, err := s.DB.QueryContext(ctx, `
	SELECT location_id, name, street
	FROM addresses
	ORDER BY location_id;
	`)
	if err != nil {
		return nil, fmt.Errorf("list addresses: query addresses table: %w", err)
	}
	defer rows.Close()

	out := make([]domain.Address, 0, 32)
	for rows.Next() {
		var a domain.Address
		if err := rows.Scan(&a.LocationID, &a.Name, &a.Street); err != nil {
			return nil, fmt.Errorf("list addresses: scan row: %w", err)
		}
		out = append(out, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list addresses: row iteration: %w", err)
	}

	return out, nil
}

// Rebuild the distance table from stored cells. The table is sized to the
// largest location id present; cells never stored are NaN.
func (s *SQLStore) LoadDistances(ctx context.Context) (_ [][]float64, err error) {
	defer obs.Time(ctx, "store.LoadDistances")(&err)

	if s.DB == nil {
		return nil, errors.New("sql store: DB is nil")
	}

	rows, err := s.DB.QueryContext(ctx, `
	SELECT from_location, to_location, distance
	FROM distances;
	`)
	if err != nil {
		return nil, fmt.Errorf("load distances: query distances table: %w", err)
	}
	defer rows.Close()

	type cell struct {
		from, to int
		d        float64
	}
	cells := make([]cell, 0, 512)
	n := 0
	for rows.Next() {
		var c cell
		if err := rows.Scan(&c.from, &c.to, &c.d); err != nil {
			return nil, fmt.Errorf("load distances: scan row: %w", err)
		}
		if c.from < 0 || c.to < 0 {
			return nil, fmt.Errorf("load distances: negative location in (%d,%d)", c.from, c.to)
		}
		n = max(n, c.from+1, c.to+1)
		cells = append(cells, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("load distances: row iteration: %w", err)
	}

	table := make([][]float64, n)
	for i := range table {
		table[i] = make([]float64, n)
		for j := range table[i] {
			table[i][j] = math.NaN()
		}
	}
	for _, c := range cells {
		table[c.from][c.to] = c.d
	}

	return table, nil
}

// Store delivery timestamps. Re-running a plan overwrites earlier timestamps.
func (s *SQLStore) SaveDeliveries(ctx context.Context, deliveries []domain.Delivery) (err error) {
	defer obs.Time(ctx, "store.SaveDeliveries")(&err)

	if s.DB == nil {
		return errors.New("sql store: DB is nil")
	}

	if len(deliveries) == 0 {
		return nil
	}

	tx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("save deliveries: db begin: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	stmt, err := tx.PrepareContext(ctx, s.Dialect.rebind(`
	INSERT INTO deliveries (item_id, vehicle_id, delivered_at)
	VALUES (?, ?, ?)
	ON CONFLICT (item_id) DO UPDATE
	SET vehicle_id = excluded.vehicle_id,
		delivered_at = excluded.delivered_at;
	`))
	if err != nil {
		return fmt.Errorf("save deliveries: db prepare: %w", err)
	}
	defer stmt.Close()

	for _, d := range deliveries {
		at := d.DeliveredAt.UTC().Format(time.RFC3339Nano)
		if _, err := stmt.ExecContext(ctx, d.ItemID, d.VehicleID, at); err != nil {
			return fmt.Errorf("save deliveries item_id=%d: %w", d.ItemID, err)
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("save deliveries commit: %w", err)
	}

	return nil
}

// Return the stored deliveries ordered by item id.
func (s *SQLStore) ListDeliveries(ctx context.Context) (_ []domain.Delivery, err error) {
	defer obs.Time(ctx, "store.ListDeliveries")(&err)

	if s.DB == nil {
		return nil, errors.New("sql store: DB is nil")
	}

	rows, err := s.DB.QueryContext(ctx, `
	SELECT item_id, vehicle_id, delivered_at
	FROM deliveries
	ORDER BY item_id;
	`)
	if err != nil {
		return nil, fmt.Errorf("list deliveries: query deliveries table: %w", err)
	}
	defer rows.Close()

	var out []domain.Delivery
	for rows.Next() {
		var d domain.Delivery
		var at string
		if err := rows.Scan(&d.ItemID, &d.VehicleID, &at); err != nil {
			return nil, fmt.Errorf("list deliveries: scan row: %w", err)
		}
		d.DeliveredAt, err = time.Parse(time.RFC3339Nano, at)
		if err != nil {
			return nil, fmt.Errorf("list deliveries: item_id=%d: parse delivered_at: %w", d.ItemID, err)
		}
		out = append(out, d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list deliveries: row iteration: %w", err)
	}

	return out, nil
}
