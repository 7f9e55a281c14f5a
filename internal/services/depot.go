package services

import (
	"errors"
	"fmt"
	"shipment-routing-service/internal/domain"
	"shipment-routing-service/internal/pkg/errs"
	"shipment-routing-service/internal/ports"
	"sync"
	"time"
)

// Depot is the explicit planning context: it owns the item store, the
// read-only distance and location data, and the vehicle fleet. Every
// component receives it (or its parts) as a dependency.
type Depot struct {
	Items     *domain.ItemStore
	Distances ports.DistanceIndex
	Locations ports.LocationResolver

	mu       sync.RWMutex
	vehicles map[int]*domain.Vehicle
	order    []int
	routes   map[int]*domain.Route
}

// ItemStatus is a derived, point-in-time view of an item. DeliveredAt is set
// only when Status is Delivered.
type ItemStatus struct {
	Item        domain.Item
	Status      domain.Status
	DeliveredAt *time.Time
}

func NewDepot(items *domain.ItemStore, distances ports.DistanceIndex, locations ports.LocationResolver) (*Depot, error) {
	if items == nil || distances == nil || locations == nil {
		return nil, errors.New("new depot: items, distances and locations must be non-nil")
	}

	return &Depot{
		Items:     items,
		Distances: distances,
		Locations: locations,
		vehicles:  make(map[int]*domain.Vehicle),
		routes:    make(map[int]*domain.Route),
	}, nil
}

// AddVehicle registers a vehicle and assigns its items to it. Item ownership
// is a partition: an item already on another vehicle is rejected, and nothing
// is assigned when validation fails.
func (d *Depot) AddVehicle(v *domain.Vehicle) error {
	if v == nil {
		return errors.New("add vehicle: vehicle must be non-nil")
	}
	if v.VehicleID <= 0 {
		return errs.NewInvalidInputErrorWithCause("vehicle id", fmt.Errorf("%d is not positive", v.VehicleID))
	}
	if v.Speed <= 0 {
		return errs.NewInvalidInputErrorWithCause("speed", fmt.Errorf("vehicle %d speed %v is not positive", v.VehicleID, v.Speed))
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	if _, ok := d.vehicles[v.VehicleID]; ok {
		return errs.NewInvariantViolationError(fmt.Sprintf("vehicle %d registered twice", v.VehicleID))
	}

	seen := make(map[int]struct{}, len(v.ItemIDs))
	for _, id := range v.ItemIDs {
		if _, ok := seen[id]; ok {
			return errs.NewInvariantViolationError(fmt.Sprintf("item %d listed twice on vehicle %d", id, v.VehicleID))
		}
		seen[id] = struct{}{}

		it, ok := d.Items.Get(id)
		if !ok {
			return fmt.Errorf("add vehicle %d: %w", v.VehicleID, errs.NewNotFoundError("item", id))
		}
		if it.VehicleID != 0 && it.VehicleID != v.VehicleID {
			return errs.NewInvariantViolationError(
				fmt.Sprintf("item %d assigned to vehicles %d and %d", id, it.VehicleID, v.VehicleID),
			)
		}
	}

	for _, id := range v.ItemIDs {
		if err := d.Items.Assign(id, v.VehicleID); err != nil {
			return fmt.Errorf("add vehicle %d: %w", v.VehicleID, err)
		}
	}

	d.vehicles[v.VehicleID] = v
	d.order = append(d.order, v.VehicleID)
	return nil
}

// Vehicle returns a copy of the registered vehicle.
func (d *Depot) Vehicle(id int) (domain.Vehicle, bool) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	v, ok := d.vehicles[id]
	if !ok {
		return domain.Vehicle{}, false
	}
	return *v, true
}

// Vehicles returns copies of every vehicle in registration order.
func (d *Depot) Vehicles() []domain.Vehicle {
	d.mu.RLock()
	defer d.mu.RUnlock()

	out := make([]domain.Vehicle, 0, len(d.order))
	for _, id := range d.order {
		out = append(out, *d.vehicles[id])
	}
	return out
}

// Route returns the last simulated route of a vehicle.
func (d *Depot) Route(vehicleID int) (*domain.Route, bool) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	r, ok := d.routes[vehicleID]
	return r, ok
}

// TotalDistance sums the distance travelled by every vehicle.
func (d *Depot) TotalDistance() float64 {
	d.mu.RLock()
	defer d.mu.RUnlock()

	total := 0.0
	for _, v := range d.vehicles {
		total += v.DistanceTraveled
	}
	return total
}

func (d *Depot) recordRoute(route *domain.Route) {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.routes[route.VehicleID] = route
	if v, ok := d.vehicles[route.VehicleID]; ok {
		v.DistanceTraveled = route.TotalDistance
	}
}

// CorrectAddress updates an item's destination before it is planned.
// It is rejected once the item has been delivered.
func (d *Depot) CorrectAddress(itemID int, address, zip string) error {
	it, ok := d.Items.Get(itemID)
	if !ok {
		return fmt.Errorf("correct address: %w", errs.NewNotFoundError("item", itemID))
	}
	if it.DeliveredAt != nil {
		return errs.NewInvariantViolationError(fmt.Sprintf("item %d already delivered", itemID))
	}

	if err := d.Items.CorrectAddress(itemID, address, zip); err != nil {
		return fmt.Errorf("correct address: %w", err)
	}
	return nil
}

// StatusAt derives one item's status at the given instant. An unknown item id
// is a query error.
func (d *Depot) StatusAt(itemID int, at time.Time) (ItemStatus, error) {
	it, ok := d.Items.Get(itemID)
	if !ok {
		return ItemStatus{}, fmt.Errorf("status at: %w", errs.NewQueryError(errs.NewNotFoundError("item", itemID)))
	}
	return d.statusOf(it, at), nil
}

// AllStatusesAt derives every item's status at the given instant, in ascending item id order.
func (d *Depot) AllStatusesAt(at time.Time) []ItemStatus {
	items := d.Items.All()
	out := make([]ItemStatus, 0, len(items))
	for _, it := range items {
		out = append(out, d.statusOf(it, at))
	}
	return out
}

// EndOfDay reports the stored lifecycle facts after simulation.
func (d *Depot) EndOfDay() []ItemStatus {
	items := d.Items.All()
	out := make([]ItemStatus, 0, len(items))
	for _, it := range items {
		out = append(out, ItemStatus{Item: it, Status: it.Status, DeliveredAt: it.DeliveredAt})
	}
	return out
}

func (d *Depot) statusOf(it domain.Item, at time.Time) ItemStatus {
	var vehicle *domain.Vehicle
	if v, ok := d.Vehicle(it.VehicleID); ok {
		vehicle = &v
	}

	st := ItemStatus{Item: it, Status: domain.StatusAt(it, vehicle, at)}
	if st.Status == domain.StatusDelivered {
		st.DeliveredAt = it.DeliveredAt
	}
	return st
}
