package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"shipment-routing-service/internal/config"
	"shipment-routing-service/internal/pkg/errs"
	"shipment-routing-service/internal/platform/obs"
	"time"
)

func writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("encode failed: req_id=%s method=%s path=%s err=%v", obs.RequestID(r.Context()), r.Method, r.URL.Path, err)
	}
}

func writeError(w http.ResponseWriter, r *http.Request, status int, msg string) {
	writeJSON(w, r, status, map[string]string{"error": msg})
}

// writeServiceError maps query errors to client statuses. Anything else is a
// data or planning fault and is reported as 500 without details.
func writeServiceError(w http.ResponseWriter, r *http.Request, op string, err error) {
	switch {
	case errs.IsQuery(err) && errors.Is(err, errs.ErrNotFound):
		writeError(w, r, http.StatusNotFound, err.Error())
	case errs.IsQuery(err), errors.Is(err, errs.ErrInvalidInput):
		writeError(w, r, http.StatusBadRequest, err.Error())
	default:
		log.Printf("%s failed: req_id=%s err=%v", op, obs.RequestID(r.Context()), err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
	}
}

// parseAt reads the optional "at" query parameter as a clock time on day.
// ok is false when the parameter is absent.
func parseAt(r *http.Request, day time.Time) (at time.Time, ok bool, err error) {
	raw := r.URL.Query().Get("at")
	if raw == "" {
		return time.Time{}, false, nil
	}

	at, err = config.ParseClock(day, raw)
	if err != nil {
		return time.Time{}, false, errs.NewQueryError(err)
	}
	return at, true, nil
}
