package distance

import (
	"math"
	"shipment-routing-service/internal/pkg/errs"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var nan = math.NaN()

func lowerTriangle() [][]float64 {
	return [][]float64{
		{0, nan, nan, nan},
		{7.2, 0, nan, nan},
		{3.8, 7.1, 0, nan},
		{11.0, 6.4, 9.2, 0},
	}
}

func TestTableDistanceIsSymmetric(t *testing.T) {
	table, err := NewTable(lowerTriangle())
	require.NoError(t, err)

	for a := 0; a < table.Size(); a++ {
		for b := 0; b < table.Size(); b++ {
			ab, err := table.Distance(a, b)
			require.NoError(t, err)
			ba, err := table.Distance(b, a)
			require.NoError(t, err)
			assert.Equal(t, ab, ba, "distance(%d,%d)", a, b)
		}
	}

	d, err := table.Distance(0, 3)
	require.NoError(t, err)
	assert.Equal(t, 11.0, d)
}

func TestTableAcceptsUpperTriangle(t *testing.T) {
	table, err := NewTable([][]float64{
		{0, 2.5, 4.0},
		{nan, 0, 1.5},
		{nan, nan, 0},
	})
	require.NoError(t, err)

	d, err := table.Distance(2, 1)
	require.NoError(t, err)
	assert.Equal(t, 1.5, d)
}

func TestTableAcceptsShortRows(t *testing.T) {
	table, err := NewTable([][]float64{
		{0},
		{5.0, 0},
		{2.0, 3.0, 0},
	})
	require.NoError(t, err)

	d, err := table.Distance(0, 2)
	require.NoError(t, err)
	assert.Equal(t, 2.0, d)
}

func TestTableDistanceOutOfRange(t *testing.T) {
	table, err := NewTable(lowerTriangle())
	require.NoError(t, err)

	_, err = table.Distance(4, 0)
	assert.ErrorIs(t, err, errs.ErrOutOfRange)

	_, err = table.Distance(0, -1)
	assert.ErrorIs(t, err, errs.ErrOutOfRange)
}

func TestTableDiagonalIsZero(t *testing.T) {
	table, err := NewTable(lowerTriangle())
	require.NoError(t, err)

	d, err := table.Distance(2, 2)
	require.NoError(t, err)
	assert.Zero(t, d)
}

func TestNewTableRejectsInvalidTables(t *testing.T) {
	t.Run("empty", func(t *testing.T) {
		_, err := NewTable(nil)
		assert.ErrorIs(t, err, errs.ErrInvalidInput)
	})

	t.Run("ragged", func(t *testing.T) {
		_, err := NewTable([][]float64{{0, 1, 2}, {1, 0}})
		assert.ErrorIs(t, err, errs.ErrInvalidInput)
	})

	t.Run("negative", func(t *testing.T) {
		_, err := NewTable([][]float64{{0}, {-1, 0}})
		assert.ErrorIs(t, err, errs.ErrInvalidInput)
	})

	t.Run("asymmetric", func(t *testing.T) {
		_, err := NewTable([][]float64{{0, 2}, {3, 0}})
		assert.ErrorIs(t, err, errs.ErrInvariantViolation)
	})
}

func TestTableUndefinedPair(t *testing.T) {
	table, err := NewTable([][]float64{{0}, {nan, 0}})
	require.NoError(t, err)

	_, err = table.Distance(0, 1)
	assert.ErrorIs(t, err, errs.ErrInvariantViolation)
}
