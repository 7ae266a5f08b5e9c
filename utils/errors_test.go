package utils

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetServiceError(t *testing.T) {
	t.Run("direct service error", func(t *testing.T) {
		err := NewConflictError("duplicate")
		serviceErr, ok := GetServiceError(err)
		require.True(t, ok)
		assert.Equal(t, ErrCodeConflict, serviceErr.Code)
	})

	t.Run("wrapped service error", func(t *testing.T) {
		err := fmt.Errorf("handling request: %w", ErrUserNotFound)
		serviceErr, ok := GetServiceError(err)
		require.True(t, ok)
		assert.Equal(t, ErrCodeNotFound, serviceErr.Code)
	})

	t.Run("plain error", func(t *testing.T) {
		_, ok := GetServiceError(errors.New("boom"))
		assert.False(t, ok)
	})
}

func TestErrorStatusCodes(t *testing.T) {
	cases := []struct {
		name   string
		err    error
		status int
		code   string
	}{
		{"validation", NewValidationError("bad input", nil), http.StatusBadRequest, ErrCodeValidation},
		{"conflict maps to 400", NewConflictError("duplicate"), http.StatusBadRequest, ErrCodeConflict},
		{"auth", ErrInvalidCredentials, http.StatusUnauthorized, ErrCodeAuth},
		{"not found", ErrIncidentNotFound, http.StatusNotFound, ErrCodeNotFound},
		{"external", NewExternalServiceError("provider down", errors.New("timeout")), http.StatusInternalServerError, ErrCodeExternal},
		{"database", NewDatabaseError("save user", errors.New("timeout")), http.StatusInternalServerError, ErrCodeDatabase},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			serviceErr, ok := GetServiceError(tc.err)
			require.True(t, ok)
			assert.Equal(t, tc.status, serviceErr.StatusCode)
			assert.Equal(t, tc.code, serviceErr.Code)
		})
	}
}

func TestServiceError_Unwrap(t *testing.T) {
	cause := errors.New("connection refused")
	err := NewDatabaseError("find user", cause)

	assert.True(t, errors.Is(err, cause))
	assert.Contains(t, err.Error(), "DATABASE_ERROR")
	assert.Contains(t, err.Error(), "connection refused")
}
