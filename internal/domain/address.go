package domain

import "time"

// Address maps a location id in the distance table to a matchable street address.
type Address struct {
	LocationID int
	Name       string
	Street     string
}

// Delivery is the persisted ground truth of a completed stop.
type Delivery struct {
	ItemID      int
	VehicleID   int
	DeliveredAt time.Time
}
