package usecase

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidationError(t *testing.T) {
	err := NewValidationErrorWithDetails("Invalid status", map[string]any{"validStatuses": []string{"pending"}})

	assert.Equal(t, "Invalid status", err.Error())
	assert.ErrorIs(t, err, ErrValidation)
	assert.NotErrorIs(t, err, ErrNotFound)

	wrapped := fmt.Errorf("error while updating order status: %w", err)

	var validationErr *ValidationError
	require.True(t, errors.As(wrapped, &validationErr))
	assert.Equal(t, []string{"pending"}, validationErr.Details["validStatuses"])
}

func TestNotFoundError(t *testing.T) {
	err := NewNotFoundError("ORD-1A2B3C4D")

	assert.Equal(t, "Order ORD-1A2B3C4D not found", err.Error())
	assert.ErrorIs(t, err, ErrNotFound)
	assert.NotErrorIs(t, err, ErrValidation)
}
