package services

import (
	"math"
	"shipment-routing-service/internal/adapters/distance"
	"shipment-routing-service/internal/adapters/location"
	"shipment-routing-service/internal/domain"
	"testing"
	"time"
)

var nan = math.NaN()

var testDepart = time.Date(2026, 1, 1, 8, 0, 0, 0, time.UTC)

var testAddresses = []domain.Address{
	{LocationID: 0, Name: "Hub", Street: "4001 South 700 East"},
	{LocationID: 1, Name: "A", Street: "1060 Dalton Ave S"},
	{LocationID: 2, Name: "B", Street: "1330 2100 S"},
	{LocationID: 3, Name: "C", Street: "1488 4800 S"},
}

// Hub -> A 1.0, Hub -> B 2.0, Hub -> C 1.5, A -> B 0.8, A -> C 0.7, B -> C 0.9
var testDistances = [][]float64{
	{0, nan, nan, nan},
	{1.0, 0, nan, nan},
	{2.0, 0.8, 0, nan},
	{1.5, 0.7, 0.9, 0},
}

func testItems() []*domain.Item {
	return []*domain.Item{
		{ItemID: 1, Address: "1060 Dalton Ave S"},
		{ItemID: 2, Address: "1330 2100 S"},
		{ItemID: 3, Address: "1488 4800 S", Notes: "Delayed on flight"},
		{ItemID: 4, Address: "1 Unknown Rd"},
		{ItemID: 5, Address: "1330 2100 S"},
	}
}

type fixture struct {
	store    *domain.ItemStore
	table    *distance.Table
	resolver *location.Resolver
}

func newFixture(t *testing.T) fixture {
	t.Helper()

	items := testItems()
	for _, it := range items {
		it.FlagCarrierDelay("Delayed on flight")
	}

	store, err := domain.NewItemStore(items)
	if err != nil {
		t.Fatalf("new item store: %v", err)
	}
	table, err := distance.NewTable(testDistances)
	if err != nil {
		t.Fatalf("new table: %v", err)
	}
	resolver, err := location.NewResolver(store, testAddresses)
	if err != nil {
		t.Fatalf("new resolver: %v", err)
	}

	return fixture{store: store, table: table, resolver: resolver}
}

func (f fixture) depot(t *testing.T, vehicles ...*domain.Vehicle) *Depot {
	t.Helper()

	d, err := NewDepot(f.store, f.table, f.resolver)
	if err != nil {
		t.Fatalf("new depot: %v", err)
	}
	for _, v := range vehicles {
		if err := d.AddVehicle(v); err != nil {
			t.Fatalf("add vehicle %d: %v", v.VehicleID, err)
		}
	}
	return d
}

func closeTo(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}
