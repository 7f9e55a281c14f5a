package app

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log"
	"shipment-routing-service/internal/adapters/cache"
	"shipment-routing-service/internal/adapters/distance"
	"shipment-routing-service/internal/adapters/location"
	"shipment-routing-service/internal/adapters/repositories"
	"shipment-routing-service/internal/config"
	"shipment-routing-service/internal/domain"
	"shipment-routing-service/internal/platform/db"
	"shipment-routing-service/internal/platform/obs"
	"shipment-routing-service/internal/ports"
	"shipment-routing-service/internal/services"
)

// App is one planned service day: the depot state and the dispatcher that drives it.
type App struct {
	Manifest   *config.Manifest
	Depot      *services.Depot
	Dispatcher *services.Dispatcher
	Store      *repositories.SQLStore
	Routes     []*domain.Route

	closers []func() error
}

// Build assembles a depot from the repositories and the manifest. Nothing is
// planned yet. cache and recorder may be nil.
func Build(
	ctx context.Context,
	items ports.ItemRepository,
	locations ports.LocationRepository,
	m *config.Manifest,
	planCache ports.PlanCache,
	recorder ports.DeliveryRecorder,
) (_ *App, err error) {
	defer obs.Time(ctx, "app.Build")(&err)

	if m == nil {
		return nil, errors.New("build: manifest is nil")
	}

	list, err := items.ListItems(ctx)
	if err != nil {
		return nil, fmt.Errorf("build: %w", err)
	}
	for _, it := range list {
		it.FlagCarrierDelay(m.DelayPhrase)
	}

	store, err := domain.NewItemStore(list)
	if err != nil {
		return nil, fmt.Errorf("build: %w", err)
	}

	addresses, err := locations.ListAddresses(ctx)
	if err != nil {
		return nil, fmt.Errorf("build: %w", err)
	}
	resolver, err := location.NewResolver(store, addresses)
	if err != nil {
		return nil, fmt.Errorf("build: %w", err)
	}

	rows, err := locations.LoadDistances(ctx)
	if err != nil {
		return nil, fmt.Errorf("build: %w", err)
	}
	table, err := distance.NewTable(rows)
	if err != nil {
		return nil, fmt.Errorf("build: %w", err)
	}

	depot, err := services.NewDepot(store, table, resolver)
	if err != nil {
		return nil, fmt.Errorf("build: %w", err)
	}

	vehicles, err := m.BuildVehicles()
	if err != nil {
		return nil, fmt.Errorf("build: %w", err)
	}
	for _, v := range vehicles {
		if err := depot.AddVehicle(v); err != nil {
			return nil, fmt.Errorf("build: %w", err)
		}
	}

	for _, c := range m.AddressCorrections {
		if err := depot.CorrectAddress(c.ItemID, c.Address, c.Zip); err != nil {
			return nil, fmt.Errorf("build: item %d: %w", c.ItemID, err)
		}
	}

	return &App{
		Manifest:   m,
		Depot:      depot,
		Dispatcher: services.NewDispatcher(depot, planCache, recorder),
	}, nil
}

// Run plans and simulates every vehicle.
func (a *App) Run(ctx context.Context) error {
	routes, err := a.Dispatcher.Run(ctx)
	if err != nil {
		return err
	}
	a.Routes = routes
	log.Printf("service day complete: date=%s vehicles=%d total_distance=%.2f",
		a.Manifest.ServiceDate, len(routes), a.Depot.TotalDistance())
	return nil
}

// Close releases the database and cache connections opened by Open.
func (a *App) Close() error {
	var errsOut []error
	for i := len(a.closers) - 1; i >= 0; i-- {
		if err := a.closers[i](); err != nil {
			errsOut = append(errsOut, err)
		}
	}
	return errors.Join(errsOut...)
}

// Open connects to the configured database (seeding it from CSV when empty),
// loads the manifest, builds the depot and runs the service day.
func Open(ctx context.Context, cfg config.Config) (_ *App, err error) {
	conn, err := db.OpenFor(cfg.DBDriver, cfg.DBPath, cfg.DatabaseURL)
	if err != nil {
		return nil, fmt.Errorf("open app: %w", err)
	}
	closers := []func() error{conn.Close}
	defer func() {
		if err != nil {
			for i := len(closers) - 1; i >= 0; i-- {
				_ = closers[i]()
			}
		}
	}()

	dialect, err := repositories.DialectFor(cfg.DBDriver)
	if err != nil {
		return nil, fmt.Errorf("open app: %w", err)
	}
	if err := EnsureSeeded(ctx, conn, dialect, cfg); err != nil {
		return nil, fmt.Errorf("open app: %w", err)
	}

	m, err := config.LoadManifest(cfg.ManifestPath)
	if err != nil {
		return nil, fmt.Errorf("open app: %w", err)
	}

	var planCache ports.PlanCache
	if cfg.RedisURL != "" {
		client, err := cache.NewRedisClient(ctx, cfg.RedisURL)
		if err != nil {
			return nil, fmt.Errorf("open app: %w", err)
		}
		closers = append(closers, client.Close)
		planCache = cache.NewRedisPlanCache(client, cfg.PlanCacheTTL)
	}

	store := repositories.NewSQLStore(conn, dialect)
	a, err := Build(ctx, store, store, m, planCache, store)
	if err != nil {
		return nil, fmt.Errorf("open app: %w", err)
	}
	a.Store = store

	if err := a.Run(ctx); err != nil {
		return nil, fmt.Errorf("open app: %w", err)
	}

	a.closers = closers
	return a, nil
}

// EnsureSeeded initializes the schema and loads the CSV tables when the item table is empty.
func EnsureSeeded(ctx context.Context, conn *sql.DB, dialect repositories.Dialect, cfg config.Config) error {
	if err := repositories.InitSchema(ctx, conn); err != nil {
		return err
	}

	var n int
	if err := conn.QueryRowContext(ctx, `SELECT COUNT(*) FROM items`).Scan(&n); err != nil {
		return fmt.Errorf("ensure seeded: count items: %w", err)
	}
	if n > 0 {
		return nil
	}

	log.Printf("seeding empty database: items=%s addresses=%s distances=%s", cfg.ItemsCSV, cfg.AddressesCSV, cfg.DistancesCSV)
	return repositories.SeedFromCSV(ctx, conn, dialect, cfg.ItemsCSV, cfg.AddressesCSV, cfg.DistancesCSV)
}
