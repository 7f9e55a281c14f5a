package handlers

import (
	"net/http"
	"shipment-routing-service/internal/api/dto"
	"shipment-routing-service/internal/pkg/errs"
	"shipment-routing-service/internal/services"
	"strconv"
	"time"
)

// ItemHandler exposes point-in-time item status queries.
type ItemHandler struct {
	Depot *services.Depot
	Day   time.Time
}

// List returns every item. Without ?at= it reports the end-of-day view.
func (h *ItemHandler) List(w http.ResponseWriter, r *http.Request) {
	at, ok, err := parseAt(r, h.Day)
	if err != nil {
		writeServiceError(w, r, "list items", err)
		return
	}

	var statuses []services.ItemStatus
	res := dto.ListItemsResponse{}
	if ok {
		statuses = h.Depot.AllStatusesAt(at)
		res.At = &at
	} else {
		statuses = h.Depot.EndOfDay()
	}

	res.Items = make([]dto.ItemResponse, 0, len(statuses))
	for _, st := range statuses {
		res.Items = append(res.Items, itemResponse(st))
	}

	writeJSON(w, r, http.StatusOK, res)
}

func (h *ItemHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		writeServiceError(w, r, "get item", errs.NewQueryError(errs.NewInvalidInputErrorWithCause("item id", err)))
		return
	}

	at, ok, err := parseAt(r, h.Day)
	if err != nil {
		writeServiceError(w, r, "get item", err)
		return
	}
	if !ok {
		// End of day: after every possible delivery.
		at = h.Day.Add(24*time.Hour - time.Nanosecond)
	}

	st, err := h.Depot.StatusAt(id, at)
	if err != nil {
		writeServiceError(w, r, "get item", err)
		return
	}

	writeJSON(w, r, http.StatusOK, itemResponse(st))
}

func itemResponse(st services.ItemStatus) dto.ItemResponse {
	it := st.Item
	return dto.ItemResponse{
		ItemID:      it.ItemID,
		Address:     it.Address,
		City:        it.City,
		State:       it.State,
		Zip:         it.Zip,
		Deadline:    it.Deadline,
		Weight:      it.Weight,
		Notes:       it.Notes,
		VehicleID:   it.VehicleID,
		Status:      st.Status,
		DeliveredAt: st.DeliveredAt,
	}
}
