package distance

import (
	"fmt"
	"math"
	"shipment-routing-service/internal/pkg/errs"
)

// symmetryTolerance bounds how far mirrored cells may differ when both triangles are populated.
const symmetryTolerance = 1e-9

// Table implements ports.DistanceIndex over a square distance table.
//
// Input tables usually populate a single triangle. NewTable folds the populated
// cells into a lower triangle, and lookups normalize (a, b) so the larger index
// comes first. The table is immutable after construction and safe for
// concurrent reads.
type Table struct {
	n     int
	lower [][]float64
}

// NewTable builds a Table from rows of distances. Undefined cells are NaN.
// Rows may be shorter than the table size; missing cells are undefined.
func NewTable(rows [][]float64) (*Table, error) {
	n := len(rows)
	if n == 0 {
		return nil, errs.NewInvalidInputError("distance table must have at least one row")
	}

	cell := func(i, j int) float64 {
		if j < len(rows[i]) {
			return rows[i][j]
		}
		return math.NaN()
	}

	for i, row := range rows {
		if len(row) > n {
			return nil, errs.NewInvalidInputErrorWithCause(
				"distance table",
				fmt.Errorf("row %d has %d cells, table has %d rows", i, len(row), n),
			)
		}
		for j, v := range row {
			if math.IsInf(v, 0) || v < 0 {
				return nil, errs.NewInvalidInputErrorWithCause(
					"distance table",
					fmt.Errorf("cell (%d,%d) = %v is not a non-negative finite distance", i, j, v),
				)
			}
		}
	}

	lower := make([][]float64, n)
	for i := 0; i < n; i++ {
		lower[i] = make([]float64, i+1)
		for j := 0; j < i; j++ {
			below, above := cell(i, j), cell(j, i)
			switch {
			case math.IsNaN(below):
				lower[i][j] = above
			case math.IsNaN(above):
				lower[i][j] = below
			case math.Abs(below-above) > symmetryTolerance:
				return nil, errs.NewInvariantViolationError(
					fmt.Sprintf("distance table is not symmetric at (%d,%d): %v != %v", i, j, below, above),
				)
			default:
				lower[i][j] = below
			}
		}
	}

	return &Table{n: n, lower: lower}, nil
}

// Size returns the number of locations in the table.
func (t *Table) Size() int { return t.n }

// Distance returns the symmetric distance between two locations.
// The distance from a location to itself is 0.
func (t *Table) Distance(a, b int) (float64, error) {
	if a < 0 || a >= t.n {
		return 0, errs.NewOutOfRangeError("location", a, 0, t.n-1)
	}
	if b < 0 || b >= t.n {
		return 0, errs.NewOutOfRangeError("location", b, 0, t.n-1)
	}
	if a == b {
		return 0, nil
	}

	if b > a {
		a, b = b, a
	}

	d := t.lower[a][b]
	if math.IsNaN(d) {
		return 0, errs.NewInvariantViolationError(fmt.Sprintf("distance between %d and %d is undefined", b, a))
	}
	return d, nil
}
