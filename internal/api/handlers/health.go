package handlers

import (
	"net/http"
)

// Health provides a minimal liveness check endpoint reporting the planned service date.
func Health(serviceDate string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		res := map[string]string{"status": "ok", "service_date": serviceDate}
		writeJSON(w, r, http.StatusOK, res)
	}
}
