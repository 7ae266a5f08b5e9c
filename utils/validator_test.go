package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type locationInput struct {
	Latitude  float64 `validate:"coordinate"`
	Longitude float64 `validate:"coordinate"`
}

type incidentInput struct {
	Type     string `validate:"required,incident_type"`
	Severity string `validate:"omitempty,severity"`
}

func TestValidationService_Coordinate(t *testing.T) {
	vs := NewValidationService()

	t.Run("valid pair", func(t *testing.T) {
		errs := vs.ValidateStruct(locationInput{Latitude: 37.7749, Longitude: -122.4194})
		assert.Empty(t, errs)
	})

	t.Run("latitude out of range", func(t *testing.T) {
		errs := vs.ValidateStruct(locationInput{Latitude: 95, Longitude: 0})
		require.Len(t, errs, 1)
		assert.Equal(t, "Latitude", errs[0].Field)
		assert.Equal(t, "Invalid coordinate value", errs[0].Message)
	})

	t.Run("longitude out of range", func(t *testing.T) {
		errs := vs.ValidateStruct(locationInput{Latitude: 0, Longitude: -181})
		require.Len(t, errs, 1)
		assert.Equal(t, "Longitude", errs[0].Field)
	})

	t.Run("longitude beyond 90 is fine", func(t *testing.T) {
		errs := vs.ValidateStruct(locationInput{Latitude: 0, Longitude: 179.9})
		assert.Empty(t, errs)
	})
}

func TestValidationService_DomainTags(t *testing.T) {
	vs := NewValidationService()

	t.Run("known incident type", func(t *testing.T) {
		errs := vs.ValidateStruct(incidentInput{Type: "panic_button"})
		assert.Empty(t, errs)
	})

	t.Run("unknown incident type", func(t *testing.T) {
		errs := vs.ValidateStruct(incidentInput{Type: "earthquake"})
		require.Len(t, errs, 1)
		assert.Equal(t, "Invalid incident type", errs[0].Message)
	})

	t.Run("empty optional severity passes", func(t *testing.T) {
		errs := vs.ValidateStruct(incidentInput{Type: "other"})
		assert.Empty(t, errs)
	})

	t.Run("bad severity fails", func(t *testing.T) {
		errs := vs.ValidateStruct(incidentInput{Type: "other", Severity: "catastrophic"})
		require.Len(t, errs, 1)
		assert.Equal(t, "Invalid severity level", errs[0].Message)
	})

	t.Run("missing required field reports it", func(t *testing.T) {
		errs := vs.ValidateStruct(incidentInput{})
		require.Len(t, errs, 1)
		assert.Equal(t, "Type is required", errs[0].Message)
	})
}

func TestValidateEmail(t *testing.T) {
	assert.True(t, ValidateEmail("alice@example.com"))
	assert.True(t, ValidateEmail("alice.smith+tag@sub.example.co"))
	assert.False(t, ValidateEmail("alice@"))
	assert.False(t, ValidateEmail("not-an-email"))
}
