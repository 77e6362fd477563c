package errors_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/restaurant-discovery/internal/pkg/errors"
)

func TestWithDetails_DoesNotMutateSentinel(t *testing.T) {
	err := apperrors.ErrUpstream.WithDetails("places provider status: OVER_QUERY_LIMIT")

	assert.Equal(t, "places provider status: OVER_QUERY_LIMIT", err.Details)
	assert.Empty(t, apperrors.ErrUpstream.Details)
}

func TestWithMessage_DoesNotMutateSentinel(t *testing.T) {
	original := apperrors.ErrValidation.Message
	err := apperrors.ErrValidation.WithMessage("Query is required")

	assert.Equal(t, "Query is required", err.Message)
	assert.Equal(t, original, apperrors.ErrValidation.Message)
	assert.Equal(t, apperrors.ErrValidation.Code, err.Code)
	assert.Equal(t, apperrors.ErrValidation.StatusCode, err.StatusCode)
}

func TestAsAppError(t *testing.T) {
	t.Run("direct app error", func(t *testing.T) {
		appErr, ok := apperrors.AsAppError(apperrors.ErrNotFound)
		require.True(t, ok)
		assert.Equal(t, 404, appErr.StatusCode)
	})

	t.Run("wrapped app error", func(t *testing.T) {
		wrapped := fmt.Errorf("search failed: %w", apperrors.ErrRateLimited)
		appErr, ok := apperrors.AsAppError(wrapped)
		require.True(t, ok)
		assert.Equal(t, 429, appErr.StatusCode)
	})

	t.Run("plain error is not an app error", func(t *testing.T) {
		_, ok := apperrors.AsAppError(fmt.Errorf("boom"))
		assert.False(t, ok)
	})
}
