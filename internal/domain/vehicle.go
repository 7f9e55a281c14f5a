package domain

import "time"

// HubLocation is the location id of the depot every route starts from.
const HubLocation = 0

// DefaultSpeed is the constant travel speed of a vehicle, in distance units per hour.
const DefaultSpeed = 18.0

// Delivery vehicle carrying an ordered list of items from the hub.
type Vehicle struct {
	VehicleID        int
	ItemIDs          []int
	StartLocation    int
	Speed            float64
	DepartAt         time.Time
	DistanceTraveled float64
}

func NewVehicle(id int, departAt time.Time, itemIDs []int) *Vehicle {
	return &Vehicle{
		VehicleID:     id,
		ItemIDs:       append([]int(nil), itemIDs...),
		StartLocation: HubLocation,
		Speed:         DefaultSpeed,
		DepartAt:      departAt,
	}
}
