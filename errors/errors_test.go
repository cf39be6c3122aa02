package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCollection_Add(t *testing.T) {
	t.Parallel()

	t.Run("keeps non-nil errors", func(t *testing.T) {
		t.Parallel()

		c := &Collection{}

		c.Add(fmt.Errorf("%w: %q", ErrInvalidFloat, "abc"))
		c.Add(fmt.Errorf("%w: %q", ErrInvalidFloat, "1.2.3"))

		assert.True(t, c.HasError())
		assert.Equal(t, 2, c.Len())
	})

	t.Run("ignores nil errors", func(t *testing.T) {
		t.Parallel()

		c := &Collection{}

		c.Add(nil)

		assert.False(t, c.HasError())
		assert.Zero(t, c.Len())
	})
}

func TestCollection_Clear(t *testing.T) {
	t.Parallel()

	c := &Collection{}
	c.Add(ErrShortBuffer)
	c.Clear()

	assert.False(t, c.HasError())
	require.NoError(t, c.GetError())

	c.Add(ErrUnknownHash)
	assert.Equal(t, 1, c.Len())
}

func TestCollection_GetError(t *testing.T) {
	t.Parallel()

	t.Run("nil when empty", func(t *testing.T) {
		t.Parallel()

		c := &Collection{}

		assert.NoError(t, c.GetError())
	})

	t.Run("single error is returned as is", func(t *testing.T) {
		t.Parallel()

		c := &Collection{}
		c.Add(ErrUnsupportedWidth)

		assert.Equal(t, ErrUnsupportedWidth, c.GetError())
	})

	t.Run("multiple errors are joined", func(t *testing.T) {
		t.Parallel()

		c := &Collection{}
		first := fmt.Errorf("%w: %q", ErrInvalidFloat, "x")
		second := fmt.Errorf("%w: %q", ErrInvalidFormat, "xml")

		c.Add(first)
		c.Add(second)

		err := c.GetError()
		require.Error(t, err)
		require.ErrorIs(t, err, ErrInvalidFloat)
		require.ErrorIs(t, err, ErrInvalidFormat)
		assert.Contains(t, err.Error(), `"x"`)
		assert.Contains(t, err.Error(), `"xml"`)
	})
}

func TestSentinelsAreDistinct(t *testing.T) {
	t.Parallel()

	sentinels := []error{
		ErrShortBuffer,
		ErrUnsupportedWidth,
		ErrUnknownHash,
		ErrInvalidFloat,
		ErrInvalidFormat,
	}

	for i, a := range sentinels {
		for j, b := range sentinels {
			if i != j {
				assert.False(t, errors.Is(a, b), "%v should not match %v", a, b)
			}
		}
	}
}
