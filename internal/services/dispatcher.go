package services

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"log"
	"shipment-routing-service/internal/domain"
	"shipment-routing-service/internal/pkg/errs"
	"shipment-routing-service/internal/platform/obs"
	"shipment-routing-service/internal/ports"
	"strconv"
	"strings"

	"golang.org/x/sync/errgroup"
)

// maxParallelPlans bounds concurrent per-vehicle planning.
const maxParallelPlans = 5

// Dispatcher runs the plan-then-simulate pipeline over a Depot.
//
// Cache and Recorder are optional: a nil Cache always plans from scratch and a
// nil Recorder keeps delivery timestamps in memory only.
type Dispatcher struct {
	Depot    *Depot
	Cache    ports.PlanCache
	Recorder ports.DeliveryRecorder
}

func NewDispatcher(depot *Depot, cache ports.PlanCache, recorder ports.DeliveryRecorder) *Dispatcher {
	return &Dispatcher{Depot: depot, Cache: cache, Recorder: recorder}
}

// Plan computes the route of one vehicle without touching the item store.
func (d *Dispatcher) Plan(ctx context.Context, vehicleID int) (_ *domain.Route, err error) {
	defer obs.Time(ctx, "dispatcher.Plan")(&err)

	vehicle, ok := d.Depot.Vehicle(vehicleID)
	if !ok {
		return nil, fmt.Errorf("plan: %w", errs.NewNotFoundError("vehicle", vehicleID))
	}

	stops, err := ResolveStops(vehicle.ItemIDs, d.Depot.Locations)
	if err != nil {
		return nil, fmt.Errorf("plan: vehicle %d: %w", vehicleID, err)
	}

	key := planKey(vehicle.VehicleID, vehicle.StartLocation, stops)

	// Check the plan cache before running the planner.
	if d.Cache != nil {
		cached, hit, err := d.Cache.Get(ctx, key)
		if err != nil {
			return nil, fmt.Errorf("plan: get plan cache: %w", err)
		}
		if hit {
			return cached, nil
		}
	}

	route, err := NearestNeighborRoute(vehicle.VehicleID, vehicle.StartLocation, stops, d.Depot.Distances)
	if err != nil {
		return nil, fmt.Errorf("plan: vehicle %d: %w", vehicleID, err)
	}

	if d.Cache != nil {
		if err := d.Cache.Put(ctx, key, route); err != nil {
			log.Printf("plan cache write failed: vehicle=%d err=%v", vehicleID, err)
		}
	}

	return route, nil
}

// PlanAndSimulate plans one vehicle's route, simulates it and persists the
// resulting delivery timestamps. It returns the route and its total distance.
func (d *Dispatcher) PlanAndSimulate(ctx context.Context, vehicleID int) (*domain.Route, float64, error) {
	route, err := d.Plan(ctx, vehicleID)
	if err != nil {
		return nil, 0, fmt.Errorf("plan and simulate: %w", err)
	}

	if err := d.simulate(ctx, []*domain.Route{route}); err != nil {
		return nil, 0, fmt.Errorf("plan and simulate: %w", err)
	}

	return route, route.TotalDistance, nil
}

// Run plans every vehicle in parallel and, only when all plans succeed,
// simulates them. A planning failure therefore leaves the item store untouched.
// Routes are returned in vehicle registration order.
func (d *Dispatcher) Run(ctx context.Context) (_ []*domain.Route, err error) {
	defer obs.Time(ctx, "dispatcher.Run")(&err)

	if d.Depot == nil {
		return nil, errors.New("run: depot is nil")
	}

	vehicles := d.Depot.Vehicles()
	routes := make([]*domain.Route, len(vehicles))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(maxParallelPlans)

	for i, v := range vehicles {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			r, err := d.Plan(gctx, v.VehicleID)
			if err != nil {
				return err
			}
			routes[i] = r
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("run: %w", err)
	}

	if err := d.simulate(ctx, routes); err != nil {
		return nil, fmt.Errorf("run: %w", err)
	}

	for _, r := range routes {
		log.Printf("vehicle=%d stops=%d distance=%.2f", r.VehicleID, len(r.Stops), r.TotalDistance)
	}

	return routes, nil
}

func (d *Dispatcher) simulate(ctx context.Context, routes []*domain.Route) error {
	vehicles := make([]domain.Vehicle, len(routes))

	// Validate every route before the first write.
	for i, r := range routes {
		vehicle, ok := d.Depot.Vehicle(r.VehicleID)
		if !ok {
			return errs.NewNotFoundError("vehicle", r.VehicleID)
		}
		if err := validateRoute(d.Depot.Items, &vehicle, r); err != nil {
			return fmt.Errorf("simulate: vehicle %d: %w", r.VehicleID, err)
		}
		vehicles[i] = vehicle
	}

	var deliveries []domain.Delivery
	for i, r := range routes {
		out, err := Simulate(d.Depot.Items, &vehicles[i], r)
		if err != nil {
			return err
		}
		d.Depot.recordRoute(r)
		deliveries = append(deliveries, out...)
	}

	if d.Recorder != nil && len(deliveries) > 0 {
		if err := d.Recorder.SaveDeliveries(ctx, deliveries); err != nil {
			return fmt.Errorf("save deliveries: %w", err)
		}
	}

	return nil
}

// planKey identifies a plan by everything the planner reads besides the
// static distance table: vehicle, start and the ordered resolved stops.
func planKey(vehicleID, start int, stops []domain.RouteStop) string {
	var b strings.Builder
	for _, s := range stops {
		b.WriteString(strconv.Itoa(s.ItemID))
		b.WriteByte('@')
		b.WriteString(strconv.Itoa(s.Location))
		b.WriteByte(',')
	}
	sum := sha256.Sum256([]byte(b.String()))
	return fmt.Sprintf("route:%d:%d:%s", vehicleID, start, hex.EncodeToString(sum[:]))
}
