package config

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"shipment-routing-service/internal/domain"
	"shipment-routing-service/internal/pkg/errs"
	"strings"
	"time"
)

// DefaultDelayPhrase is the notes text marking an item as delayed by its carrier.
const DefaultDelayPhrase = "Delayed on flight---will not arrive to depot until 9:05 am"

// Manifest assigns items to vehicles and departure times for one service day.
type Manifest struct {
	ServiceDate        string              `json:"service_date"`
	TravelSpeed        float64             `json:"travel_speed"`
	DelayPhrase        string              `json:"delay_phrase"`
	Vehicles           []VehicleSpec       `json:"vehicles"`
	AddressCorrections []AddressCorrection `json:"address_corrections"`
}

type VehicleSpec struct {
	ID        int    `json:"id"`
	DepartsAt string `json:"departs_at"`
	ItemIDs   []int  `json:"item_ids"`
}

// AddressCorrection replaces an item's destination before planning.
type AddressCorrection struct {
	ItemID  int    `json:"item_id"`
	Address string `json:"address"`
	Zip     string `json:"zip"`
}

func LoadManifest(path string) (*Manifest, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("load manifest: open %q: %w", path, err)
	}
	defer f.Close()

	m, err := ParseManifest(f)
	if err != nil {
		return nil, fmt.Errorf("load manifest %q: %w", path, err)
	}
	return m, nil
}

func ParseManifest(r io.Reader) (*Manifest, error) {
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()

	var m Manifest
	if err := dec.Decode(&m); err != nil {
		return nil, errs.NewInvalidInputErrorWithCause("manifest", err)
	}

	if m.TravelSpeed == 0 {
		m.TravelSpeed = domain.DefaultSpeed
	}
	if m.DelayPhrase == "" {
		m.DelayPhrase = DefaultDelayPhrase
	}

	if err := m.Validate(); err != nil {
		return nil, err
	}
	return &m, nil
}

// Validate checks the manifest shape: a vehicle id is used once and an item
// rides on at most one vehicle.
func (m *Manifest) Validate() error {
	if _, err := ParseDay(m.ServiceDate); err != nil {
		return err
	}
	if m.TravelSpeed <= 0 {
		return errs.NewInvalidInputErrorWithCause("travel_speed", fmt.Errorf("%v is not positive", m.TravelSpeed))
	}

	vehicles := make(map[int]struct{}, len(m.Vehicles))
	owner := make(map[int]int)
	for _, v := range m.Vehicles {
		if v.ID <= 0 {
			return errs.NewInvalidInputErrorWithCause("vehicle id", fmt.Errorf("%d is not positive", v.ID))
		}
		if _, ok := vehicles[v.ID]; ok {
			return errs.NewInvariantViolationError(fmt.Sprintf("vehicle %d listed twice", v.ID))
		}
		vehicles[v.ID] = struct{}{}

		for _, id := range v.ItemIDs {
			if id <= 0 {
				return errs.NewInvalidInputErrorWithCause("item id", fmt.Errorf("vehicle %d lists item %d", v.ID, id))
			}
			if prev, ok := owner[id]; ok {
				return errs.NewInvariantViolationError(
					fmt.Sprintf("item %d assigned to vehicles %d and %d", id, prev, v.ID),
				)
			}
			owner[id] = v.ID
		}
	}

	for _, c := range m.AddressCorrections {
		if c.ItemID <= 0 || strings.TrimSpace(c.Address) == "" {
			return errs.NewInvalidInputErrorWithCause("address correction", fmt.Errorf("item %d address %q", c.ItemID, c.Address))
		}
	}

	return nil
}

// Day returns the service date.
func (m *Manifest) Day() time.Time {
	d, _ := ParseDay(m.ServiceDate)
	return d
}

// BuildVehicles converts the vehicle specs into domain vehicles departing on the service date.
func (m *Manifest) BuildVehicles() ([]*domain.Vehicle, error) {
	day, err := ParseDay(m.ServiceDate)
	if err != nil {
		return nil, fmt.Errorf("build vehicles: %w", err)
	}

	out := make([]*domain.Vehicle, 0, len(m.Vehicles))
	for _, spec := range m.Vehicles {
		departAt, err := ParseClock(day, spec.DepartsAt)
		if err != nil {
			return nil, fmt.Errorf("build vehicles: vehicle %d: %w", spec.ID, err)
		}

		v := domain.NewVehicle(spec.ID, departAt, spec.ItemIDs)
		v.Speed = m.TravelSpeed
		out = append(out, v)
	}
	return out, nil
}
