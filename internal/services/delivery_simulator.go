package services

import (
	"errors"
	"fmt"
	"math"
	"shipment-routing-service/internal/domain"
	"shipment-routing-service/internal/pkg/errs"
	"time"
)

// Simulate drives a vehicle along its route and records a delivery timestamp
// for every stop.
//
// All carried items are marked en route at departure. Each leg then advances
// a clock that starts at the vehicle's departure instant by
// legDistance / vehicle.Speed hours, and the stop's item is delivered at the
// clock value. The route is validated against the vehicle before anything is
// written, so a rejected route leaves the store untouched.
func Simulate(store *domain.ItemStore, vehicle *domain.Vehicle, route *domain.Route) ([]domain.Delivery, error) {
	if store == nil || vehicle == nil || route == nil {
		return nil, errors.New("simulate: store, vehicle and route must be non-nil")
	}

	if err := validateRoute(store, vehicle, route); err != nil {
		return nil, fmt.Errorf("simulate: vehicle %d: %w", vehicle.VehicleID, err)
	}

	for _, id := range vehicle.ItemIDs {
		if err := store.MarkEnRoute(id); err != nil {
			return nil, fmt.Errorf("simulate: mark item %d en route: %w", id, err)
		}
	}

	clock := vehicle.DepartAt
	deliveries := make([]domain.Delivery, 0, len(route.Stops))

	for _, stop := range route.Stops {
		clock = clock.Add(TravelTime(stop.LegDistance, vehicle.Speed))

		if err := store.RecordDelivery(stop.ItemID, clock); err != nil {
			return nil, fmt.Errorf("simulate: deliver item %d: %w", stop.ItemID, err)
		}
		deliveries = append(deliveries, domain.Delivery{
			ItemID:      stop.ItemID,
			VehicleID:   vehicle.VehicleID,
			DeliveredAt: clock,
		})
	}

	return deliveries, nil
}

// TravelTime converts a leg distance into a duration at the given speed (units per hour).
func TravelTime(distance, speed float64) time.Duration {
	return time.Duration(math.Round(distance / speed * float64(time.Hour)))
}

func validateRoute(store *domain.ItemStore, vehicle *domain.Vehicle, route *domain.Route) error {
	if vehicle.Speed <= 0 || math.IsInf(vehicle.Speed, 0) || math.IsNaN(vehicle.Speed) {
		return errs.NewInvalidInputErrorWithCause("speed", fmt.Errorf("%v is not a positive speed", vehicle.Speed))
	}

	if route.VehicleID != vehicle.VehicleID {
		return errs.NewInvariantViolationError(
			fmt.Sprintf("route belongs to vehicle %d", route.VehicleID),
		)
	}

	if route.Start != vehicle.StartLocation {
		return errs.NewInvariantViolationError(
			fmt.Sprintf("route starts at %d, vehicle starts at %d", route.Start, vehicle.StartLocation),
		)
	}

	carried := make(map[int]bool, len(vehicle.ItemIDs))
	for _, id := range vehicle.ItemIDs {
		if _, ok := store.Get(id); !ok {
			return errs.NewNotFoundError("item", id)
		}
		carried[id] = false
	}

	for _, stop := range route.Stops {
		visited, ok := carried[stop.ItemID]
		if !ok {
			return errs.NewInvariantViolationError(fmt.Sprintf("route visits item %d not carried", stop.ItemID))
		}
		if visited {
			return errs.NewInvariantViolationError(fmt.Sprintf("route visits item %d twice", stop.ItemID))
		}
		if stop.LegDistance < 0 || math.IsNaN(stop.LegDistance) {
			return errs.NewInvariantViolationError(fmt.Sprintf("leg to item %d has invalid distance", stop.ItemID))
		}
		carried[stop.ItemID] = true
	}

	for _, id := range vehicle.ItemIDs {
		if !carried[id] {
			return errs.NewInvariantViolationError(fmt.Sprintf("route is missing item %d", id))
		}
	}

	return nil
}
