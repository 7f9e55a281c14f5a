package domain

import (
	"fmt"
	"shipment-routing-service/internal/pkg/errs"
	"slices"
	"sync"
	"time"
)

// ItemStore owns every Item keyed directly by id.
//
// Readers receive copies, so a snapshot query can never modify stored state.
// Writers are limited to assignment, address correction and the delivery
// simulator's lifecycle updates. The store is safe for concurrent use.
type ItemStore struct {
	mu    sync.RWMutex
	items map[int]*Item
	ids   []int
}

func NewItemStore(items []*Item) (*ItemStore, error) {
	s := &ItemStore{items: make(map[int]*Item, len(items))}

	for _, it := range items {
		if it == nil {
			return nil, errs.NewInvalidInputError("item must be non-nil")
		}
		if it.ItemID <= 0 {
			return nil, errs.NewInvalidInputErrorWithCause("item id", fmt.Errorf("%d is not positive", it.ItemID))
		}
		if _, ok := s.items[it.ItemID]; ok {
			return nil, errs.NewInvariantViolationError(fmt.Sprintf("item %d loaded twice", it.ItemID))
		}

		cp := copyItem(*it)
		if cp.Status == StatusUnknown {
			cp.Status = cp.InitialStatus()
		}
		s.items[cp.ItemID] = &cp
		s.ids = append(s.ids, cp.ItemID)
	}
	slices.Sort(s.ids)

	return s, nil
}

func copyItem(it Item) Item {
	if it.DeliveredAt != nil {
		at := *it.DeliveredAt
		it.DeliveredAt = &at
	}
	return it
}

func (s *ItemStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.ids)
}

// Get returns a copy of the item.
func (s *ItemStore) Get(id int) (Item, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	it, ok := s.items[id]
	if !ok {
		return Item{}, false
	}
	return copyItem(*it), true
}

// All returns copies of every item in ascending id order.
func (s *ItemStore) All() []Item {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Item, 0, len(s.ids))
	for _, id := range s.ids {
		out = append(out, copyItem(*s.items[id]))
	}
	return out
}

// Address returns the current destination address of the item.
func (s *ItemStore) Address(id int) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	it, ok := s.items[id]
	if !ok {
		return "", false
	}
	return it.Address, true
}

func (s *ItemStore) update(id int, fn func(*Item) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	it, ok := s.items[id]
	if !ok {
		return errs.NewNotFoundError("item", id)
	}
	return fn(it)
}

// Assign records the vehicle an item travels on. An item belongs to at most one vehicle.
func (s *ItemStore) Assign(id, vehicleID int) error {
	return s.update(id, func(it *Item) error {
		if it.VehicleID != 0 && it.VehicleID != vehicleID {
			return errs.NewInvariantViolationError(
				fmt.Sprintf("item %d assigned to vehicles %d and %d", id, it.VehicleID, vehicleID),
			)
		}
		it.VehicleID = vehicleID
		return nil
	})
}

// CorrectAddress replaces the destination of an item before it is planned.
func (s *ItemStore) CorrectAddress(id int, address, zip string) error {
	if address == "" {
		return errs.NewInvalidInputError("corrected address must be non-empty")
	}
	return s.update(id, func(it *Item) error {
		it.Address = address
		if zip != "" {
			it.Zip = zip
		}
		return nil
	})
}

func (s *ItemStore) MarkEnRoute(id int) error {
	return s.update(id, func(it *Item) error {
		it.Status = StatusEnRoute
		return nil
	})
}

func (s *ItemStore) RecordDelivery(id int, at time.Time) error {
	return s.update(id, func(it *Item) error {
		it.DeliveredAt = &at
		it.Status = StatusDelivered
		return nil
	})
}
