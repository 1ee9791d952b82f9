package http

import (
	"errors"
	"net/http"
	"testing"

	"fulfillment/internal/pkg/errs"

	"github.com/stretchr/testify/require"
)

func TestStatusFor(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"unauthorized", errs.NewUnauthorizedError("no identity"), http.StatusUnauthorized},
		{"forbidden", errs.NewForbiddenError("writer", "cancel order"), http.StatusForbidden},
		{"not found", errs.NewObjectNotFoundError("order", "42"), http.StatusNotFound},
		{"conflict", errs.NewConflictError("order", "42", 3), http.StatusConflict},
		{"invalid transition", errs.NewInvalidTransitionError("ship", "Created"), http.StatusConflict},
		{"insufficient stock", errs.NewInsufficientStockError("ribbon", 5, 2), http.StatusConflict},
		{"validation", errs.NewValueIsRequiredError("reason"), http.StatusBadRequest},
		{"unknown", errors.New("disk full"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, statusFor(tt.err))
		})
	}
}
