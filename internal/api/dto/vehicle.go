package dto

import "time"

type StopResponse struct {
	ItemID      int        `json:"item_id"`
	Location    int        `json:"location"`
	LegDistance float64    `json:"leg_distance"`
	DeliveredAt *time.Time `json:"delivered_at"`
}

type VehicleResponse struct {
	VehicleID        int            `json:"vehicle_id"`
	DepartAt         time.Time      `json:"depart_at"`
	Speed            float64        `json:"speed"`
	ItemIDs          []int          `json:"item_ids"`
	DistanceTraveled float64        `json:"distance_traveled"`
	Stops            []StopResponse `json:"stops"`
}

type ListVehiclesResponse struct {
	Vehicles      []VehicleResponse `json:"vehicles"`
	TotalDistance float64           `json:"total_distance"`
}
