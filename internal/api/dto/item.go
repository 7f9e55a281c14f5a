package dto

import (
	"shipment-routing-service/internal/domain"
	"time"
)

type ItemResponse struct {
	ItemID      int           `json:"item_id"`
	Address     string        `json:"address"`
	City        string        `json:"city"`
	State       string        `json:"state"`
	Zip         string        `json:"zip"`
	Deadline    string        `json:"deadline"`
	Weight      int           `json:"weight"`
	Notes       string        `json:"notes,omitempty"`
	VehicleID   int           `json:"vehicle_id,omitempty"`
	Status      domain.Status `json:"status"`
	DeliveredAt *time.Time    `json:"delivered_at"`
}

type ListItemsResponse struct {
	At    *time.Time     `json:"at,omitempty"`
	Items []ItemResponse `json:"items"`
}
