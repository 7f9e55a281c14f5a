package domain

import (
	"errors"
	"shipment-routing-service/internal/pkg/errs"
	"testing"
	"time"
)

func TestNewItemStore(t *testing.T) {
	store, err := NewItemStore([]*Item{
		{ItemID: 3, Address: "C"},
		{ItemID: 1, Address: "A", CarrierDelayed: true},
		{ItemID: 2, Address: "B"},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	all := store.All()
	if len(all) != 3 {
		t.Fatalf("expected 3 items, got %d", len(all))
	}
	for i, want := range []int{1, 2, 3} {
		if all[i].ItemID != want {
			t.Errorf("item[%d] = %d, want %d", i, all[i].ItemID, want)
		}
	}

	if all[0].Status != StatusDelayed {
		t.Errorf("item 1 status = %v, want %v", all[0].Status, StatusDelayed)
	}
	if all[1].Status != StatusAtHub {
		t.Errorf("item 2 status = %v, want %v", all[1].Status, StatusAtHub)
	}
}

func TestNewItemStoreRejectsBadInput(t *testing.T) {
	_, err := NewItemStore([]*Item{{ItemID: 1}, {ItemID: 1}})
	if !errors.Is(err, errs.ErrInvariantViolation) {
		t.Fatalf("duplicate id: err = %v, want invariant violation", err)
	}

	_, err = NewItemStore([]*Item{{ItemID: 0}})
	if !errors.Is(err, errs.ErrInvalidInput) {
		t.Fatalf("zero id: err = %v, want invalid input", err)
	}
}

func TestItemStoreGetReturnsCopy(t *testing.T) {
	at := time.Date(2026, 1, 1, 8, 30, 0, 0, time.UTC)
	store, err := NewItemStore([]*Item{{ItemID: 1, Address: "A"}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := store.RecordDelivery(1, at); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got, _ := store.Get(1)
	got.Status = StatusAtHub
	*got.DeliveredAt = at.Add(time.Hour)

	again, _ := store.Get(1)
	if again.Status != StatusDelivered {
		t.Errorf("stored status = %v, want %v", again.Status, StatusDelivered)
	}
	if !again.DeliveredAt.Equal(at) {
		t.Errorf("stored delivery = %v, want %v", *again.DeliveredAt, at)
	}
}

func TestItemStoreAssign(t *testing.T) {
	store, _ := NewItemStore([]*Item{{ItemID: 1}})

	if err := store.Assign(1, 2); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := store.Assign(1, 2); err != nil {
		t.Fatalf("reassigning same vehicle: %v", err)
	}
	if err := store.Assign(1, 3); !errors.Is(err, errs.ErrInvariantViolation) {
		t.Fatalf("err = %v, want invariant violation", err)
	}
	if err := store.Assign(9, 1); !errors.Is(err, errs.ErrNotFound) {
		t.Fatalf("err = %v, want not found", err)
	}
}

func TestItemStoreCorrectAddress(t *testing.T) {
	store, _ := NewItemStore([]*Item{{ItemID: 9, Address: "300 State St", Zip: "84103"}})

	if err := store.CorrectAddress(9, "410 S State St", "84111"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	it, _ := store.Get(9)
	if it.Address != "410 S State St" || it.Zip != "84111" {
		t.Fatalf("got %q %q", it.Address, it.Zip)
	}
	if err := store.CorrectAddress(9, "", ""); !errors.Is(err, errs.ErrInvalidInput) {
		t.Fatalf("err = %v, want invalid input", err)
	}
}
