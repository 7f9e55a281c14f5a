package domain

import (
	"fmt"
	"time"
)

// Status is the delivery state of an item at some instant.
//
//	AtHub/Delayed ──(departure)──> EnRoute ──(arrival)──> Delivered
type Status int

const (
	StatusUnknown Status = iota
	StatusAtHub
	StatusDelayed
	StatusEnRoute
	StatusDelivered
)

var statusNames = map[Status]string{
	StatusUnknown:   "Unknown",
	StatusAtHub:     "At Hub",
	StatusDelayed:   "Delayed",
	StatusEnRoute:   "En Route",
	StatusDelivered: "Delivered",
}

func (s Status) String() string {
	if name, ok := statusNames[s]; ok {
		return name
	}
	return statusNames[StatusUnknown]
}

func (s Status) MarshalText() ([]byte, error) {
	if _, ok := statusNames[s]; !ok {
		return nil, fmt.Errorf("marshal status: %d is not a valid status", int(s))
	}
	return []byte(s.String()), nil
}

func (s *Status) UnmarshalText(b []byte) error {
	for st, name := range statusNames {
		if name == string(b) {
			*s = st
			return nil
		}
	}
	return fmt.Errorf("unmarshal status: unknown status %q", string(b))
}

// StatusAt derives the status of an item at the given instant.
//
// It never mutates its arguments and returns the same answer for the same
// inputs, so it is safe for snapshot reports and concurrent use. A nil vehicle
// (unassigned item) is treated as never departed.
func StatusAt(item Item, vehicle *Vehicle, at time.Time) Status {
	if vehicle == nil || at.Before(vehicle.DepartAt) {
		return item.InitialStatus()
	}

	if item.DeliveredAt != nil && !at.Before(*item.DeliveredAt) {
		return StatusDelivered
	}

	return StatusEnRoute
}
