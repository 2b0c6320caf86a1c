package errors

import (
	stderrors "errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppError_StatusMapping(t *testing.T) {
	tests := []struct {
		name string
		err  *AppError
		want int
	}{
		{name: "missing headers", err: ErrMissingWebhookHeaders, want: http.StatusBadRequest},
		{name: "invalid signature", err: ErrInvalidSignature, want: http.StatusBadRequest},
		{name: "database error", err: NewDatabaseError(stderrors.New("boom")), want: http.StatusInternalServerError},
		{name: "provider error", err: NewProviderError(stderrors.New("boom")), want: http.StatusInternalServerError},
		{name: "organization not found", err: ErrOrganizationNotFound, want: http.StatusNotFound},
		{name: "rate limited", err: ErrRateLimitExceeded, want: http.StatusTooManyRequests},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.err.StatusCode)
			assert.Equal(t, tt.want, HTTPStatus(tt.err))
		})
	}
}

func TestHTTPStatus_PlainError(t *testing.T) {
	assert.Equal(t, http.StatusInternalServerError, HTTPStatus(stderrors.New("plain")))
}

func TestAppError_Unwrap(t *testing.T) {
	cause := stderrors.New("connection refused")
	err := NewDatabaseError(cause)

	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "connection refused")
}

func TestAppError_Is_MatchesByCode(t *testing.T) {
	wrapped := fmt.Errorf("lookup org: %w", ErrOrganizationNotFound)
	assert.ErrorIs(t, wrapped, ErrOrganizationNotFound)

	// Same code, different instance
	other := New(ErrCodeOrganizationNotFound, "org missing")
	assert.ErrorIs(t, other, ErrOrganizationNotFound)

	assert.NotErrorIs(t, ErrUserNotFound, ErrOrganizationNotFound)
}

func TestAppError_WithDetails(t *testing.T) {
	detailed := ErrInvalidSignature.WithDetails("timestamp outside tolerance")
	assert.Equal(t, "timestamp outside tolerance", detailed.Details)
	// Predefined error must not be mutated
	assert.Empty(t, ErrInvalidSignature.Details)
}
