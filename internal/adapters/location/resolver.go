package location

import (
	"errors"
	"fmt"
	"shipment-routing-service/internal/domain"
	"shipment-routing-service/internal/pkg/errs"
	"strings"
)

// HubItemID is the sentinel item id that resolves to the hub.
const HubItemID = 0

// AddressBook exposes the current destination address of an item.
type AddressBook interface {
	Address(itemID int) (string, bool)
}

// Resolver implements ports.LocationResolver with a direct address -> location map.
//
// Item addresses are read through the AddressBook on every call, so an address
// corrected before planning is observed by the next plan.
type Resolver struct {
	items     AddressBook
	byAddress map[string]int
}

func NewResolver(items AddressBook, addresses []domain.Address) (*Resolver, error) {
	if items == nil {
		return nil, errors.New("new resolver: address book is nil")
	}

	byAddress := make(map[string]int, len(addresses))
	for _, a := range addresses {
		key := normalize(a.Street)
		if key == "" {
			return nil, errs.NewInvalidInputErrorWithCause(
				"address",
				fmt.Errorf("location %d has an empty address", a.LocationID),
			)
		}
		if prev, ok := byAddress[key]; ok && prev != a.LocationID {
			return nil, errs.NewInvariantViolationError(
				fmt.Sprintf("address %q maps to locations %d and %d", a.Street, prev, a.LocationID),
			)
		}
		byAddress[key] = a.LocationID
	}

	return &Resolver{items: items, byAddress: byAddress}, nil
}

// normalize ensures consistent keys by collapsing whitespace and case.
func normalize(s string) string {
	return strings.ToLower(strings.Join(strings.Fields(s), " "))
}

func (r *Resolver) LocationFor(itemID int) (int, error) {
	if itemID == HubItemID {
		return domain.HubLocation, nil
	}

	address, ok := r.items.Address(itemID)
	if !ok {
		return 0, errs.NewNotFoundError("item", itemID)
	}

	loc, ok := r.byAddress[normalize(address)]
	if !ok {
		return 0, errs.NewNotFoundErrorWithCause(
			"address",
			address,
			fmt.Errorf("item %d destination is not in the address table", itemID),
		)
	}

	return loc, nil
}
