// Package csvload reads the item, address and distance tables from CSV.
package csvload

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"shipment-routing-service/internal/domain"
	"shipment-routing-service/internal/pkg/errs"
	"strconv"
	"strings"
)

// Dataset is the static input of one planning run.
type Dataset struct {
	Items     []*domain.Item
	Addresses []domain.Address
	Distances [][]float64
}

// LoadDataset reads the three tables from disk.
func LoadDataset(itemsPath, addressesPath, distancesPath string) (*Dataset, error) {
	var ds Dataset

	if err := withFile(itemsPath, func(r io.Reader) (err error) {
		ds.Items, err = ReadItems(r)
		return err
	}); err != nil {
		return nil, err
	}

	if err := withFile(addressesPath, func(r io.Reader) (err error) {
		ds.Addresses, err = ReadAddresses(r)
		return err
	}); err != nil {
		return nil, err
	}

	if err := withFile(distancesPath, func(r io.Reader) (err error) {
		ds.Distances, err = ReadDistances(r)
		return err
	}); err != nil {
		return nil, err
	}

	return &ds, nil
}

func withFile(path string, fn func(io.Reader) error) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("load dataset: open %q: %w", path, err)
	}
	defer f.Close()

	if err := fn(f); err != nil {
		return fmt.Errorf("load dataset: %q: %w", path, err)
	}
	return nil
}

func readAll(r io.Reader) ([][]string, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	records, err := cr.ReadAll()
	if err != nil {
		return nil, errs.NewInvalidInputErrorWithCause("csv", err)
	}
	return records, nil
}

// hasHeader reports whether the first record is a header row (non-numeric id column).
func hasHeader(records [][]string) bool {
	if len(records) == 0 || len(records[0]) == 0 {
		return false
	}
	_, err := strconv.Atoi(strings.TrimSpace(records[0][0]))
	return err != nil
}

// ReadItems parses rows of (id, address, city, state, zip, deadline, weight, notes).
func ReadItems(r io.Reader) ([]*domain.Item, error) {
	records, err := readAll(r)
	if err != nil {
		return nil, fmt.Errorf("read items: %w", err)
	}
	if hasHeader(records) {
		records = records[1:]
	}

	items := make([]*domain.Item, 0, len(records))
	for i, row := range records {
		if len(row) < 7 {
			return nil, errs.NewInvalidInputErrorWithCause(
				"item row",
				fmt.Errorf("row %d has %d columns, want at least 7", i+1, len(row)),
			)
		}

		id, err := strconv.Atoi(strings.TrimSpace(row[0]))
		if err != nil {
			return nil, errs.NewInvalidInputErrorWithCause("item id", fmt.Errorf("row %d: %w", i+1, err))
		}

		weight, err := strconv.Atoi(strings.TrimSpace(row[6]))
		if err != nil {
			return nil, errs.NewInvalidInputErrorWithCause("weight", fmt.Errorf("row %d: %w", i+1, err))
		}

		it := &domain.Item{
			ItemID:   id,
			Address:  strings.TrimSpace(row[1]),
			City:     strings.TrimSpace(row[2]),
			State:    strings.TrimSpace(row[3]),
			Zip:      strings.TrimSpace(row[4]),
			Deadline: strings.TrimSpace(row[5]),
			Weight:   weight,
		}
		if len(row) > 7 {
			it.Notes = strings.TrimSpace(row[7])
		}
		items = append(items, it)
	}

	return items, nil
}

// ReadAddresses parses rows of (location id, name, address).
func ReadAddresses(r io.Reader) ([]domain.Address, error) {
	records, err := readAll(r)
	if err != nil {
		return nil, fmt.Errorf("read addresses: %w", err)
	}
	if hasHeader(records) {
		records = records[1:]
	}

	out := make([]domain.Address, 0, len(records))
	for i, row := range records {
		if len(row) < 3 {
			return nil, errs.NewInvalidInputErrorWithCause(
				"address row",
				fmt.Errorf("row %d has %d columns, want 3", i+1, len(row)),
			)
		}

		id, err := strconv.Atoi(strings.TrimSpace(row[0]))
		if err != nil {
			return nil, errs.NewInvalidInputErrorWithCause("location id", fmt.Errorf("row %d: %w", i+1, err))
		}

		out = append(out, domain.Address{
			LocationID: id,
			Name:       strings.TrimSpace(row[1]),
			Street:     strings.TrimSpace(row[2]),
		})
	}

	return out, nil
}

// ReadDistances parses a distance matrix. Empty cells are undefined (NaN).
func ReadDistances(r io.Reader) ([][]float64, error) {
	records, err := readAll(r)
	if err != nil {
		return nil, fmt.Errorf("read distances: %w", err)
	}
	if len(records) == 0 {
		return nil, errs.NewInvalidInputErrorWithCause("distance table", errors.New("no rows"))
	}

	rows := make([][]float64, 0, len(records))
	for i, rec := range records {
		row := make([]float64, len(rec))
		for j, cell := range rec {
			cell = strings.TrimSpace(cell)
			if cell == "" {
				row[j] = math.NaN()
				continue
			}

			v, err := strconv.ParseFloat(cell, 64)
			if err != nil {
				return nil, errs.NewInvalidInputErrorWithCause("distance", fmt.Errorf("cell (%d,%d): %w", i, j, err))
			}
			row[j] = v
		}
		rows = append(rows, row)
	}

	return rows, nil
}
