package errs_test

import (
	"errors"
	"fmt"
	"testing"

	"shipment-routing-service/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOutOfRangeError(t *testing.T) {
	err := errs.NewOutOfRangeError("location", 30, 0, 26)

	assert.Equal(t, "location", err.ParamName)
	assert.Equal(t, 30, err.Value)
	require.NoError(t, err.Cause)
	assert.Equal(t, "value is out of range: location is 30, min value is 0, max value is 26", err.Error())
	assert.ErrorIs(t, err, errs.ErrOutOfRange)
}

func TestNotFoundError(t *testing.T) {
	t.Run("NewNotFoundError", func(t *testing.T) {
		err := errs.NewNotFoundError("item", 41)

		assert.Equal(t, "object not found: item 41", err.Error())
		assert.ErrorIs(t, err, errs.ErrNotFound)
	})

	t.Run("NewNotFoundErrorWithCause", func(t *testing.T) {
		cause := errors.New("no address matches")
		err := errs.NewNotFoundErrorWithCause("address", "1 Main St", cause)

		assert.Equal(t, cause, err.Cause)
		assert.Equal(t, "object not found: address 1 Main St (cause: no address matches)", err.Error())
	})
}

func TestInvalidInputError(t *testing.T) {
	err := errs.NewInvalidInputErrorWithCause("weight", errors.New(`"abc" is not a number`))

	assert.Equal(t, `value is invalid: weight (cause: "abc" is not a number)`, err.Error())
	assert.ErrorIs(t, err, errs.ErrInvalidInput)
	assert.NotErrorIs(t, err, errs.ErrNotFound)
}

func TestInvariantViolationError(t *testing.T) {
	err := errs.NewInvariantViolationError("item 3 assigned to vehicles 1 and 2")

	assert.Equal(t, "invariant violated: item 3 assigned to vehicles 1 and 2", err.Error())
	assert.ErrorIs(t, err, errs.ErrInvariantViolation)
}

func TestQueryError(t *testing.T) {
	t.Run("matches both query and underlying class", func(t *testing.T) {
		err := fmt.Errorf("status at: %w", errs.NewQueryError(errs.NewNotFoundError("item", 99)))

		assert.True(t, errs.IsQuery(err))
		assert.ErrorIs(t, err, errs.ErrNotFound)

		var nf *errs.NotFoundError
		require.ErrorAs(t, err, &nf)
		assert.Equal(t, 99, nf.ID)
	})

	t.Run("data errors are not query errors", func(t *testing.T) {
		err := fmt.Errorf("plan route: %w", errs.NewNotFoundError("address", "x"))

		assert.False(t, errs.IsQuery(err))
	})
}
