package domain

import (
	"strings"
	"time"
)

// Represents a single delivery unit handled by the system.
// An Item has a unique positive identifier and a single destination address.
// The delivery timestamp is populated during simulation and is the only
// delivery fact treated as ground truth; status at a given instant is derived
// from it (see StatusAt).
type Item struct {
	ItemID         int
	Address        string
	City           string
	State          string
	Zip            string
	Deadline       string
	Weight         int
	Notes          string
	CarrierDelayed bool
	VehicleID      int
	Status         Status
	DeliveredAt    *time.Time
}

// Initial lifecycle status for an item that has not left the hub.
func (i *Item) InitialStatus() Status {
	if i.CarrierDelayed {
		return StatusDelayed
	}
	return StatusAtHub
}

// FlagCarrierDelay marks the item as carrier-delayed when its notes contain phrase.
func (i *Item) FlagCarrierDelay(phrase string) {
	if phrase != "" && strings.Contains(i.Notes, phrase) {
		i.CarrierDelayed = true
	}
}
