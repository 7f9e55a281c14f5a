package domain

import (
	"testing"
	"time"
)

func TestStatusAtTimeWindows(t *testing.T) {
	departAt := time.Date(2026, 1, 1, 8, 0, 0, 0, time.UTC)
	deliveredAt := departAt.Add(30 * time.Minute)

	vehicle := NewVehicle(1, departAt, []int{1})
	item := Item{ItemID: 1, Address: "A", VehicleID: 1, DeliveredAt: &deliveredAt}
	delayed := Item{ItemID: 2, Address: "B", VehicleID: 1, CarrierDelayed: true, DeliveredAt: &deliveredAt}

	tests := []struct {
		name string
		item Item
		at   time.Time
		want Status
	}{
		{"before departure", item, departAt.Add(-time.Minute), StatusAtHub},
		{"before departure delayed", delayed, departAt.Add(-time.Minute), StatusDelayed},
		{"at departure", item, departAt, StatusEnRoute},
		{"mid leg", item, departAt.Add(15 * time.Minute), StatusEnRoute},
		{"at arrival", item, deliveredAt, StatusDelivered},
		{"after arrival", item, deliveredAt.Add(time.Hour), StatusDelivered},
		{"delayed after departure", delayed, departAt.Add(45 * time.Minute), StatusDelivered},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := StatusAt(tc.item, vehicle, tc.at); got != tc.want {
				t.Fatalf("StatusAt = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestStatusAtNotYetSimulated(t *testing.T) {
	departAt := time.Date(2026, 1, 1, 9, 5, 0, 0, time.UTC)
	vehicle := NewVehicle(2, departAt, []int{7})
	item := Item{ItemID: 7, VehicleID: 2}

	if got := StatusAt(item, vehicle, departAt.Add(5*time.Hour)); got != StatusEnRoute {
		t.Fatalf("StatusAt = %v, want %v", got, StatusEnRoute)
	}
}

func TestStatusAtUnassigned(t *testing.T) {
	item := Item{ItemID: 3, CarrierDelayed: true}
	at := time.Date(2026, 1, 1, 17, 0, 0, 0, time.UTC)

	if got := StatusAt(item, nil, at); got != StatusDelayed {
		t.Fatalf("StatusAt = %v, want %v", got, StatusDelayed)
	}
}

func TestStatusAtIsIdempotent(t *testing.T) {
	departAt := time.Date(2026, 1, 1, 8, 0, 0, 0, time.UTC)
	deliveredAt := departAt.Add(30 * time.Minute)
	vehicle := NewVehicle(1, departAt, []int{1})
	item := Item{ItemID: 1, VehicleID: 1, Status: StatusDelivered, DeliveredAt: &deliveredAt}

	at := departAt.Add(10 * time.Minute)
	first := StatusAt(item, vehicle, at)
	second := StatusAt(item, vehicle, at)

	if first != second {
		t.Fatalf("repeated StatusAt differs: %v vs %v", first, second)
	}
	if item.Status != StatusDelivered {
		t.Errorf("stored status changed to %v", item.Status)
	}
	if !item.DeliveredAt.Equal(deliveredAt) {
		t.Errorf("stored delivery time changed to %v", *item.DeliveredAt)
	}
}

func TestStatusString(t *testing.T) {
	if got := StatusEnRoute.String(); got != "En Route" {
		t.Fatalf("String = %q, want %q", got, "En Route")
	}
	if got := Status(42).String(); got != "Unknown" {
		t.Fatalf("String = %q, want %q", got, "Unknown")
	}
	if _, err := Status(42).MarshalText(); err == nil {
		t.Fatal("expected error marshaling invalid status")
	}
}

func TestStatusTextRoundTrip(t *testing.T) {
	var s Status
	if err := s.UnmarshalText([]byte("Delayed")); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if s != StatusDelayed {
		t.Fatalf("got %v, want Delayed", s)
	}
	if err := s.UnmarshalText([]byte("Lost")); err == nil {
		t.Fatal("expected error for unknown status")
	}
}
