package services

import (
	"errors"
	"fmt"
	"math"
	"shipment-routing-service/internal/domain"
	"shipment-routing-service/internal/pkg/errs"
	"shipment-routing-service/internal/ports"
	"slices"
)

// Plan a delivery route using a greedy nearest-neighbor algorithm.
//
// The algorithm minimizes immediate travel distance at each step.
// It does not attempt global route optimization (e.g., VRP solvers).
// The design prioritizes determinism and simplicity over optimality.
func PlanRoute(
	vehicleID int,
	startLocation int,
	stopItemIDs []int,
	resolver ports.LocationResolver,
	index ports.DistanceIndex,
) (*domain.Route, error) {
	stops, err := ResolveStops(stopItemIDs, resolver)
	if err != nil {
		return nil, fmt.Errorf("plan route: %w", err)
	}

	route, err := NearestNeighborRoute(vehicleID, startLocation, stops, index)
	if err != nil {
		return nil, fmt.Errorf("plan route: %w", err)
	}
	return route, nil
}

// ResolveStops resolves every stop location once, preserving input order.
// Each item may appear only once.
func ResolveStops(itemIDs []int, resolver ports.LocationResolver) ([]domain.RouteStop, error) {
	if resolver == nil {
		return nil, errors.New("resolve stops: resolver must be non-nil")
	}

	seen := make(map[int]struct{}, len(itemIDs))
	stops := make([]domain.RouteStop, 0, len(itemIDs))
	for _, id := range itemIDs {
		if _, ok := seen[id]; ok {
			return nil, errs.NewInvariantViolationError(fmt.Sprintf("item %d appears twice in stop set", id))
		}
		seen[id] = struct{}{}

		loc, err := resolver.LocationFor(id)
		if err != nil {
			return nil, fmt.Errorf("resolve stops: item %d: %w", id, err)
		}
		stops = append(stops, domain.RouteStop{ItemID: id, Location: loc})
	}

	return stops, nil
}

// NearestNeighborRoute orders already resolved stops greedily from startLocation.
//
// At each step the remaining stop with the strictly smallest distance from the
// current location is chosen. Exact ties keep the first candidate in input
// order, so repeated runs over the same input produce the same route.
func NearestNeighborRoute(
	vehicleID int,
	startLocation int,
	stops []domain.RouteStop,
	index ports.DistanceIndex,
) (*domain.Route, error) {
	if index == nil {
		return nil, errors.New("nearest neighbor: distance index must be non-nil")
	}

	route := &domain.Route{
		VehicleID: vehicleID,
		Start:     startLocation,
		Stops:     make([]domain.RouteStop, 0, len(stops)),
	}

	remaining := slices.Clone(stops)
	currentLocation := startLocation

	for len(remaining) > 0 {
		best := -1
		minDistance := math.Inf(1)

		// Select next stop by minimum travel distance (greedy step).
		for i, s := range remaining {
			d, err := index.Distance(currentLocation, s.Location)
			if err != nil {
				return nil, fmt.Errorf(
					"nearest neighbor: distance from %d to item %d at %d: %w",
					currentLocation, s.ItemID, s.Location, err,
				)
			}
			if d < minDistance {
				minDistance = d
				best = i
			}
		}

		if best < 0 {
			return nil, errors.New("nearest neighbor: failed to select next stop")
		}

		next := remaining[best]
		next.LegDistance = minDistance
		route.Stops = append(route.Stops, next)
		route.TotalDistance += minDistance

		remaining = slices.Delete(remaining, best, best+1)
		currentLocation = next.Location
	}

	return route, nil
}

// Create a Route for the items currently loaded on the vehicle.
func PlanVehicleRoute(
	vehicle *domain.Vehicle,
	resolver ports.LocationResolver,
	index ports.DistanceIndex,
) (*domain.Route, error) {
	if vehicle == nil {
		return nil, errors.New("plan vehicle route: vehicle must be non-nil")
	}

	route, err := PlanRoute(vehicle.VehicleID, vehicle.StartLocation, vehicle.ItemIDs, resolver, index)
	if err != nil {
		return nil, fmt.Errorf("plan vehicle route: for vehicle %d: %w", vehicle.VehicleID, err)
	}
	return route, nil
}
