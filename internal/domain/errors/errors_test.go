package errors

import (
	"net/http"
	"testing"

	"storefront/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTypedErrors_MatchTheirKind(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		kind   *BaseError
		status int
	}{
		{name: "validation", err: NewValidationError("phone", "bad"), kind: ErrValidationFailed, status: http.StatusBadRequest},
		{name: "duplicate", err: NewDuplicateFieldError("email"), kind: ErrDuplicateField, status: http.StatusConflict},
		{name: "wrong provider", err: NewWrongProviderError("google"), kind: ErrWrongProvider, status: http.StatusConflict},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			wrapped := errors.Wrap(tt.err, "context")

			assert.True(t, errors.Is(wrapped, tt.kind))

			var appErr AppError
			require.True(t, errors.As(wrapped, &appErr))
			assert.Equal(t, tt.status, appErr.HTTPCode())
		})
	}
}

func TestNewErrorInfo(t *testing.T) {
	info := NewErrorInfo(NewDuplicateFieldError("username"))
	assert.Equal(t, &ErrorInfo{Code: "DUPLICATE_FIELD", Field: "username", Details: "username"}, info)

	info = NewErrorInfo(NewWrongProviderError("local"))
	assert.Equal(t, "WRONG_PROVIDER", info.Code)
	assert.Equal(t, "local", info.Provider)
	assert.Empty(t, info.Field)

	info = NewErrorInfo(ErrOrderNotFound)
	assert.Equal(t, &ErrorInfo{Code: "ORDER_NOT_FOUND"}, info)
}

func TestWrongProviderError_Message(t *testing.T) {
	assert.Contains(t, NewWrongProviderError("google").Message(), "Google")
	assert.Contains(t, NewWrongProviderError("local").Message(), "password")
	assert.Equal(t, ErrWrongProvider.Message(), NewWrongProviderError("facebook").Message())
}
