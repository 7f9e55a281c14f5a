package commands

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shipment-routing-service/internal/domain"
	"shipment-routing-service/internal/services"
)

func TestPrintStatuses(t *testing.T) {
	delivered := time.Date(2026, 1, 1, 8, 30, 0, 0, time.UTC)
	statuses := []services.ItemStatus{
		{Item: domain.Item{ItemID: 1, Address: "195 W Oakland Ave", Deadline: "10:30 AM", VehicleID: 1}, Status: domain.StatusDelivered, DeliveredAt: &delivered},
		{Item: domain.Item{ItemID: 2, Address: "2530 S 500 E", Deadline: "EOD"}, Status: domain.StatusDelayed},
	}

	var buf bytes.Buffer
	require.NoError(t, printStatuses(&buf, statuses))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 3)
	assert.Contains(t, lines[0], "STATUS")
	assert.Contains(t, lines[1], "Delivered")
	assert.Contains(t, lines[1], "08:30:00")
	assert.Contains(t, lines[2], "Delayed")
	assert.True(t, strings.HasSuffix(lines[2], "-"))
}

func TestPrintVehicles(t *testing.T) {
	vehicles := []domain.Vehicle{
		{VehicleID: 1, DepartAt: time.Date(2026, 1, 1, 8, 0, 0, 0, time.UTC), ItemIDs: []int{1, 2}, DistanceTraveled: 10.9},
		{VehicleID: 2, DepartAt: time.Date(2026, 1, 1, 9, 5, 0, 0, time.UTC), ItemIDs: []int{3}, DistanceTraveled: 5},
	}

	var buf bytes.Buffer
	require.NoError(t, printVehicles(&buf, vehicles, 15.9))

	out := buf.String()
	assert.Contains(t, out, "09:05:00")
	assert.Contains(t, out, "10.90")
	assert.Contains(t, out, "15.90")
}

func TestPrintDeliveries(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, printDeliveries(&buf, []domain.Delivery{
		{ItemID: 9, VehicleID: 3, DeliveredAt: time.Date(2026, 1, 1, 10, 49, 0, 0, time.UTC)},
	}))
	assert.Contains(t, buf.String(), "2026-01-01 10:49:00")
}
