package errs_test

import (
	"errors"
	"testing"

	"fulfillment/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObjectNotFoundError(t *testing.T) {
	t.Run("NewObjectNotFoundError", func(t *testing.T) {
		err := errs.NewObjectNotFoundError("orderId", "123")

		assert.Equal(t, "orderId", err.ParamName)
		assert.Equal(t, "123", err.ID)
		require.NoError(t, err.Cause)
		assert.Equal(t, "object not found: 123", err.Error())
		assert.Equal(t, errs.ErrObjectNotFound, err.Unwrap())
	})

	t.Run("NewObjectNotFoundErrorWithCause", func(t *testing.T) {
		cause := errors.New("database connection failed")
		err := errs.NewObjectNotFoundErrorWithCause("orderId", "123", cause)

		assert.Equal(t, "orderId", err.ParamName)
		assert.Equal(t, "123", err.ID)
		assert.Equal(t, cause, err.Cause)
		assert.Equal(t,
			"object not found: param is: orderId, ID is: 123 (cause: database connection failed)",
			err.Error())
		assert.Equal(t, errs.ErrObjectNotFound, err.Unwrap())
	})
}

func TestValueIsInvalidError(t *testing.T) {
	t.Run("NewValueIsInvalidError", func(t *testing.T) {
		err := errs.NewValueIsInvalidError("fileUrl")

		assert.Equal(t, "fileUrl", err.ParamName)
		require.NoError(t, err.Cause)
		assert.Equal(t, "value is invalid: fileUrl", err.Error())
		assert.Equal(t, errs.ErrValueIsInvalid, err.Unwrap())
	})

	t.Run("NewValueIsInvalidErrorWithCause", func(t *testing.T) {
		cause := errors.New("invalid format")
		err := errs.NewValueIsInvalidErrorWithCause("fileUrl", cause)

		assert.Equal(t, "fileUrl", err.ParamName)
		assert.Equal(t, cause, err.Cause)
		assert.Equal(t, "value is invalid: fileUrl (cause: invalid format)", err.Error())
		assert.Equal(t, errs.ErrValueIsInvalid, err.Unwrap())
	})
}

func TestValueIsOutOfRangeError(t *testing.T) {
	t.Run("NewValueIsOutOfRangeError", func(t *testing.T) {
		err := errs.NewValueIsOutOfRangeError("quantity", 150, 1, 100)

		assert.Equal(t, "quantity", err.ParamName)
		assert.Equal(t, 150, err.Value)
		assert.Equal(t, 1, err.Min)
		assert.Equal(t, 100, err.Max)
		require.NoError(t, err.Cause)
		assert.Equal(t, "value is invalid: 150 is quantity, min value is 1, max value is 100", err.Error())
		assert.Equal(t, errs.ErrValueIsOutOfRange, err.Unwrap())
	})

	t.Run("NewValueIsOutOfRangeErrorWithCause", func(t *testing.T) {
		cause := errors.New("validation failed")
		err := errs.NewValueIsOutOfRangeErrorWithCause("reworkCount", -5, 0, 3, cause)

		assert.Equal(t, "reworkCount", err.ParamName)
		assert.Equal(t, -5, err.Value)
		assert.Equal(t, 0, err.Min)
		assert.Equal(t, 3, err.Max)
		assert.Equal(t, cause, err.Cause)
		assert.Equal(t,
			"value is invalid: -5 is reworkCount, min value is 0, max value is 3 (cause: validation failed)",
			err.Error())
		assert.Equal(t, errs.ErrValueIsOutOfRange, err.Unwrap())
	})

	t.Run("sanitize function with newlines", func(t *testing.T) {
		err := errs.NewValueIsOutOfRangeError("text", "hello\nworld", 0, 10)
		assert.Contains(t, err.Error(), "hello world")
		assert.NotContains(t, err.Error(), "\n")
	})
}

func TestValueIsRequiredError(t *testing.T) {
	t.Run("NewValueIsRequiredError", func(t *testing.T) {
		err := errs.NewValueIsRequiredError("reason")

		assert.Equal(t, "reason", err.ParamName)
		require.NoError(t, err.Cause)
		assert.Equal(t, "value is required: reason", err.Error())
		assert.Equal(t, errs.ErrValueIsRequired, err.Unwrap())
	})

	t.Run("NewValueIsRequiredErrorWithCause", func(t *testing.T) {
		cause := errors.New("missing required field")
		err := errs.NewValueIsRequiredErrorWithCause("reason", cause)

		assert.Equal(t, "reason", err.ParamName)
		assert.Equal(t, cause, err.Cause)
		assert.Equal(t, "value is required: reason (cause: missing required field)", err.Error())
		assert.Equal(t, errs.ErrValueIsRequired, err.Unwrap())
	})
}

func TestVersionIsInvalidError(t *testing.T) {
	t.Run("NewVersionIsInvalidError", func(t *testing.T) {
		err := errs.NewVersionIsInvalidError("version")

		assert.Equal(t, "version", err.ParamName)
		require.NoError(t, err.Cause)
		assert.Equal(t, "version is invalid: version", err.Error())
		assert.Equal(t, errs.ErrVersionIsInvalid, err.Unwrap())
	})

	t.Run("NewVersionIsInvalidErrorWithCause", func(t *testing.T) {
		cause := errors.New("negative version")
		err := errs.NewVersionIsInvalidErrorWithCause("version", cause)

		assert.Equal(t, "version", err.ParamName)
		assert.Equal(t, cause, err.Cause)
		assert.Equal(t, "version is invalid: version (cause: negative version)", err.Error())
		assert.Equal(t, errs.ErrVersionIsInvalid, err.Unwrap())
	})
}

func TestInvalidTransitionError(t *testing.T) {
	t.Run("NewInvalidTransitionError", func(t *testing.T) {
		err := errs.NewInvalidTransitionError("acceptTask", "Assigned")

		assert.Equal(t, "acceptTask", err.Action)
		assert.Equal(t, "Assigned", err.CurrentState)
		require.NoError(t, err.Cause)
		assert.Equal(t, "invalid transition: cannot acceptTask while state is Assigned", err.Error())
		assert.Equal(t, errs.ErrInvalidTransition, err.Unwrap())
	})

	t.Run("NewInvalidTransitionErrorWithCause", func(t *testing.T) {
		cause := errors.New("offer already claimed")
		err := errs.NewInvalidTransitionErrorWithCause("declineTask", "Assigned", cause)

		assert.Equal(t, cause, err.Cause)
		assert.Equal(t,
			"invalid transition: cannot declineTask while state is Assigned (cause: offer already claimed)",
			err.Error())
	})
}

func TestConflictError(t *testing.T) {
	err := errs.NewConflictError("order", "123", 4)

	assert.Equal(t, "order", err.ParamName)
	assert.Equal(t, "123", err.ID)
	assert.Equal(t, 4, err.ExpectedVersion)
	assert.Equal(t, "version conflict: order 123 was modified concurrently (expected version 4)", err.Error())
	assert.Equal(t, errs.ErrConflict, err.Unwrap())
}

func TestInsufficientStockError(t *testing.T) {
	err := errs.NewInsufficientStockError("item-a", 2, 1)

	assert.Equal(t, "item-a", err.ItemID)
	assert.Equal(t, 2, err.Required)
	assert.Equal(t, 1, err.Available)
	assert.Equal(t, "insufficient stock: item item-a requires 2, only 1 available", err.Error())
	assert.Equal(t, errs.ErrInsufficientStock, err.Unwrap())
}

func TestForbiddenError(t *testing.T) {
	err := errs.NewForbiddenError("writer", "approveOrder")

	assert.Equal(t, "writer", err.Role)
	assert.Equal(t, "approveOrder", err.Action)
	assert.Equal(t, "forbidden: role writer cannot perform approveOrder", err.Error())
	assert.Equal(t, errs.ErrForbidden, err.Unwrap())
}

func TestUnauthorizedError(t *testing.T) {
	err := errs.NewUnauthorizedError("actor identity is missing")

	assert.Equal(t, "actor identity is missing", err.Reason)
	assert.Equal(t, "unauthorized: actor identity is missing", err.Error())
	assert.Equal(t, errs.ErrUnauthorized, err.Unwrap())
}

func TestSentinelErrors(t *testing.T) {
	t.Run("sentinel errors are defined", func(t *testing.T) {
		require.Error(t, errs.ErrObjectNotFound)
		require.Error(t, errs.ErrValueIsInvalid)
		require.Error(t, errs.ErrValueIsOutOfRange)
		require.Error(t, errs.ErrValueIsRequired)
		require.Error(t, errs.ErrVersionIsInvalid)
		require.Error(t, errs.ErrInvalidTransition)
		require.Error(t, errs.ErrConflict)
		require.Error(t, errs.ErrInsufficientStock)
		require.Error(t, errs.ErrForbidden)
		require.Error(t, errs.ErrUnauthorized)
	})

	t.Run("error messages match expectations", func(t *testing.T) {
		assert.Equal(t, "object not found", errs.ErrObjectNotFound.Error())
		assert.Equal(t, "value is invalid", errs.ErrValueIsInvalid.Error())
		assert.Equal(t, "value is out of range", errs.ErrValueIsOutOfRange.Error())
		assert.Equal(t, "value is required", errs.ErrValueIsRequired.Error())
		assert.Equal(t, "version is invalid", errs.ErrVersionIsInvalid.Error())
		assert.Equal(t, "invalid transition", errs.ErrInvalidTransition.Error())
		assert.Equal(t, "version conflict", errs.ErrConflict.Error())
		assert.Equal(t, "insufficient stock", errs.ErrInsufficientStock.Error())
		assert.Equal(t, "forbidden", errs.ErrForbidden.Error())
		assert.Equal(t, "unauthorized", errs.ErrUnauthorized.Error())
	})
}

func TestErrorsCanBeUnwrapped(t *testing.T) {
	t.Run("errors.Is works with custom errors", func(t *testing.T) {
		require.ErrorIs(t, errs.NewObjectNotFoundError("orderId", "123"), errs.ErrObjectNotFound)
		require.ErrorIs(t, errs.NewValueIsInvalidError("fileUrl"), errs.ErrValueIsInvalid)
		require.ErrorIs(t, errs.NewValueIsOutOfRangeError("quantity", 150, 1, 100), errs.ErrValueIsOutOfRange)
		require.ErrorIs(t, errs.NewValueIsRequiredError("reason"), errs.ErrValueIsRequired)
		require.ErrorIs(t, errs.NewVersionIsInvalidError("version"), errs.ErrVersionIsInvalid)
		require.ErrorIs(t, errs.NewInvalidTransitionError("acceptTask", "Assigned"), errs.ErrInvalidTransition)
		require.ErrorIs(t, errs.NewConflictError("order", "123", 4), errs.ErrConflict)
		require.ErrorIs(t, errs.NewInsufficientStockError("item-a", 2, 1), errs.ErrInsufficientStock)
		require.ErrorIs(t, errs.NewForbiddenError("writer", "approveOrder"), errs.ErrForbidden)
		require.ErrorIs(t, errs.NewUnauthorizedError("missing actor"), errs.ErrUnauthorized)
	})
}
