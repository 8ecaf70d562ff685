package apperrors_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/SscSPs/stallchain/internal/apperrors"
	"github.com/stretchr/testify/assert"
)

func TestAppErrorUnwrapsToSentinel(t *testing.T) {
	err := fmt.Errorf("approve expense: %w", apperrors.NewInvalidTransitionError("expense", "paid", "approve"))

	assert.ErrorIs(t, err, apperrors.ErrInvalidStateTransition)
	assert.Contains(t, err.Error(), `cannot approve expense in status "paid"`)
}

func TestStatusCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"validation sentinel", fmt.Errorf("bad: %w", apperrors.ErrValidation), http.StatusBadRequest},
		{"not found ctor", apperrors.NewNotFoundError("zone not found"), http.StatusNotFound},
		{"state transition", apperrors.ErrInvalidStateTransition, http.StatusConflict},
		{"version conflict", apperrors.NewVersionConflictError("expense", "e1"), http.StatusConflict},
		{"insufficient stock", apperrors.NewInsufficientStockError("only 3 left"), http.StatusUnprocessableEntity},
		{"forbidden", apperrors.ErrForbidden, http.StatusForbidden},
		{"unknown", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, apperrors.StatusCode(tt.err))
		})
	}
}
