package handlers

import (
	"net/http"
	"shipment-routing-service/internal/api/dto"
	"shipment-routing-service/internal/services"
)

// VehicleHandler reports the simulated routes and mileage.
type VehicleHandler struct {
	Depot *services.Depot
}

func (h *VehicleHandler) List(w http.ResponseWriter, r *http.Request) {
	vehicles := h.Depot.Vehicles()

	res := dto.ListVehiclesResponse{
		Vehicles:      make([]dto.VehicleResponse, 0, len(vehicles)),
		TotalDistance: h.Depot.TotalDistance(),
	}

	for _, v := range vehicles {
		vr := dto.VehicleResponse{
			VehicleID:        v.VehicleID,
			DepartAt:         v.DepartAt,
			Speed:            v.Speed,
			ItemIDs:          v.ItemIDs,
			DistanceTraveled: v.DistanceTraveled,
			Stops:            []dto.StopResponse{},
		}

		if route, ok := h.Depot.Route(v.VehicleID); ok {
			for _, s := range route.Stops {
				stop := dto.StopResponse{ItemID: s.ItemID, Location: s.Location, LegDistance: s.LegDistance}
				if it, ok := h.Depot.Items.Get(s.ItemID); ok {
					stop.DeliveredAt = it.DeliveredAt
				}
				vr.Stops = append(vr.Stops, stop)
			}
		}

		res.Vehicles = append(res.Vehicles, vr)
	}

	writeJSON(w, r, http.StatusOK, res)
}
