package errs_test

import (
	"errors"
	"testing"

	"taproom/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObjectNotFoundError(t *testing.T) {
	t.Run("without_cause", func(t *testing.T) {
		err := errs.NewObjectNotFoundError("productId", "growler-weiss-1l")

		assert.Equal(t, "productId", err.ParamName)
		assert.Equal(t, "growler-weiss-1l", err.ID)
		require.NoError(t, err.Cause)
		assert.Equal(t, "object not found: growler-weiss-1l", err.Error())
		assert.Equal(t, errs.ErrObjectNotFound, err.Unwrap())
	})

	t.Run("with_cause", func(t *testing.T) {
		cause := errors.New("session expired")
		err := errs.NewObjectNotFoundErrorWithCause("sessionId", "42", cause)

		assert.Equal(t, cause, err.Cause)
		assert.Equal(t,
			"object not found: param is: sessionId, ID is: 42 (cause: session expired)",
			err.Error())
	})

	t.Run("non_string_id", func(t *testing.T) {
		err := errs.NewObjectNotFoundError("orderId", 456)
		assert.Equal(t, "object not found: %!s(int=456)", err.Error())
	})
}

func TestValueIsInvalidError(t *testing.T) {
	t.Run("without_cause", func(t *testing.T) {
		err := errs.NewValueIsInvalidError("location")

		assert.Equal(t, "location", err.ParamName)
		assert.Equal(t, "value is invalid: location", err.Error())
		assert.Equal(t, errs.ErrValueIsInvalid, err.Unwrap())
	})

	t.Run("with_cause", func(t *testing.T) {
		err := errs.NewValueIsInvalidErrorWithCause("location", errors.New("7 is not a known location"))
		assert.Equal(t, "value is invalid: location (cause: 7 is not a known location)", err.Error())
	})
}

func TestValueIsOutOfRangeError(t *testing.T) {
	t.Run("without_cause", func(t *testing.T) {
		err := errs.NewValueIsOutOfRangeError("guests", 0, 1, 1000)

		assert.Equal(t, "guests", err.ParamName)
		assert.Equal(t, 0, err.Value)
		assert.Equal(t, 1, err.Min)
		assert.Equal(t, 1000, err.Max)
		assert.Equal(t, "value is invalid: 0 is guests, min value is 1, max value is 1000", err.Error())
		assert.Equal(t, errs.ErrValueIsOutOfRange, err.Unwrap())
	})

	t.Run("with_cause", func(t *testing.T) {
		err := errs.NewValueIsOutOfRangeErrorWithCause("hours", -1, 1, 24, errors.New("negative"))
		assert.Equal(t,
			"value is invalid: -1 is hours, min value is 1, max value is 24 (cause: negative)",
			err.Error())
	})

	t.Run("newlines_are_flattened", func(t *testing.T) {
		err := errs.NewValueIsOutOfRangeError("note", "first\nsecond", 0, 10)
		assert.Contains(t, err.Error(), "first second")
		assert.NotContains(t, err.Error(), "\n")
	})
}

func TestValueIsRequiredError(t *testing.T) {
	t.Run("without_cause", func(t *testing.T) {
		err := errs.NewValueIsRequiredError("phone")

		assert.Equal(t, "phone", err.ParamName)
		assert.Equal(t, "value is required: phone", err.Error())
		assert.Equal(t, errs.ErrValueIsRequired, err.Unwrap())
	})

	t.Run("with_cause", func(t *testing.T) {
		err := errs.NewValueIsRequiredErrorWithCause("phone", errors.New("blank"))
		assert.Equal(t, "value is required: phone (cause: blank)", err.Error())
	})
}

func TestErrorsIs(t *testing.T) {
	require.ErrorIs(t, errs.NewObjectNotFoundError("productId", "x"), errs.ErrObjectNotFound)
	require.ErrorIs(t, errs.NewValueIsInvalidError("x"), errs.ErrValueIsInvalid)
	require.ErrorIs(t, errs.NewValueIsOutOfRangeError("x", 1, 2, 3), errs.ErrValueIsOutOfRange)
	require.ErrorIs(t, errs.NewValueIsRequiredError("x"), errs.ErrValueIsRequired)

	var target *errs.ValueIsRequiredError
	require.ErrorAs(t, errors.Join(errs.NewValueIsRequiredError("name")), &target)
	assert.Equal(t, "name", target.ParamName)
}
