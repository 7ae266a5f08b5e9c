package services

import (
	"context"
	"testing"

	"roamsafe/models"
	"roamsafe/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validRegisterRequest() models.RegisterRequest {
	return models.RegisterRequest{
		FullName:               "Alice Traveler",
		Email:                  "alice@example.com",
		Password:               "secret123",
		Nationality:            "Canadian",
		PassportID:             "C98765432",
		PhoneNumber:            "+1-555-1000",
		EmergencyContactName:   "Bob Traveler",
		EmergencyContactNumber: "+1-555-2000",
	}
}

func TestAuthService_Register(t *testing.T) {
	ctx := context.Background()
	jwtService := utils.NewJWTService("test-secret")

	t.Run("creates account with defaults", func(t *testing.T) {
		store := newFakeUserStore()
		svc := NewAuthService(store, jwtService)

		resp, err := svc.Register(ctx, validRegisterRequest())
		require.NoError(t, err)
		require.NotEmpty(t, resp.Token)

		user, err := store.GetByID(ctx, resp.User.ID)
		require.NoError(t, err)

		assert.Equal(t, models.VerificationPending, user.IdentityVerification.Status)
		assert.True(t, user.LocationTracking.Enabled)
		assert.True(t, user.PrivacySettings.LocationTracking)
		assert.True(t, user.PrivacySettings.SafetyAlerts)
		assert.True(t, user.IsActive)

		require.Len(t, user.EmergencyContacts, 1)
		assert.Equal(t, "Bob Traveler", user.EmergencyContacts[0].Name)
		assert.Equal(t, models.DefaultRelationship, user.EmergencyContacts[0].Relationship)

		// Password is stored hashed
		assert.NotEqual(t, "secret123", user.Password)
	})

	t.Run("lowercases email", func(t *testing.T) {
		store := newFakeUserStore()
		svc := NewAuthService(store, jwtService)

		req := validRegisterRequest()
		req.Email = "Alice@Example.COM"

		resp, err := svc.Register(ctx, req)
		require.NoError(t, err)
		assert.Equal(t, "alice@example.com", resp.User.Email)
	})

	t.Run("rejects duplicate email", func(t *testing.T) {
		store := newFakeUserStore()
		svc := NewAuthService(store, jwtService)

		_, err := svc.Register(ctx, validRegisterRequest())
		require.NoError(t, err)

		dup := validRegisterRequest()
		dup.PassportID = "X11111111"
		_, err = svc.Register(ctx, dup)
		require.Error(t, err)

		serviceErr, ok := utils.GetServiceError(err)
		require.True(t, ok)
		assert.Equal(t, utils.ErrCodeConflict, serviceErr.Code)
		assert.Equal(t, 400, serviceErr.StatusCode)
	})

	t.Run("rejects duplicate passport", func(t *testing.T) {
		store := newFakeUserStore()
		svc := NewAuthService(store, jwtService)

		_, err := svc.Register(ctx, validRegisterRequest())
		require.NoError(t, err)

		dup := validRegisterRequest()
		dup.Email = "someone.else@example.com"
		_, err = svc.Register(ctx, dup)
		require.Error(t, err)

		serviceErr, ok := utils.GetServiceError(err)
		require.True(t, ok)
		assert.Equal(t, utils.ErrCodeConflict, serviceErr.Code)
	})

	t.Run("rejects short password", func(t *testing.T) {
		store := newFakeUserStore()
		svc := NewAuthService(store, jwtService)

		req := validRegisterRequest()
		req.Password = "abc"

		_, err := svc.Register(ctx, req)
		require.Error(t, err)

		serviceErr, ok := utils.GetServiceError(err)
		require.True(t, ok)
		assert.Equal(t, utils.ErrCodeValidation, serviceErr.Code)
	})
}

func TestAuthService_Login(t *testing.T) {
	ctx := context.Background()
	jwtService := utils.NewJWTService("test-secret")

	setup := func(t *testing.T) (*AuthService, *fakeUserStore) {
		store := newFakeUserStore()
		svc := NewAuthService(store, jwtService)
		_, err := svc.Register(ctx, validRegisterRequest())
		require.NoError(t, err)
		return svc, store
	}

	t.Run("returns token for valid credentials", func(t *testing.T) {
		svc, _ := setup(t)

		resp, err := svc.Login(ctx, models.LoginRequest{
			Email:    "alice@example.com",
			Password: "secret123",
		})
		require.NoError(t, err)
		assert.NotEmpty(t, resp.Token)
		assert.Equal(t, "Alice Traveler", resp.User.FullName)

		userID, err := jwtService.ExtractUserID(resp.Token)
		require.NoError(t, err)
		assert.Equal(t, resp.User.ID, userID)
	})

	t.Run("same error for unknown email and wrong password", func(t *testing.T) {
		svc, _ := setup(t)

		_, unknownErr := svc.Login(ctx, models.LoginRequest{
			Email:    "nobody@example.com",
			Password: "secret123",
		})
		_, wrongErr := svc.Login(ctx, models.LoginRequest{
			Email:    "alice@example.com",
			Password: "not-the-password",
		})

		require.Error(t, unknownErr)
		require.Error(t, wrongErr)
		assert.Equal(t, unknownErr.Error(), wrongErr.Error())

		serviceErr, ok := utils.GetServiceError(unknownErr)
		require.True(t, ok)
		assert.Equal(t, 401, serviceErr.StatusCode)
	})
}

func TestAuthService_SubmitVerificationDocuments(t *testing.T) {
	ctx := context.Background()
	jwtService := utils.NewJWTService("test-secret")

	t.Run("resets status to pending", func(t *testing.T) {
		store := newFakeUserStore()
		svc := NewAuthService(store, jwtService)

		resp, err := svc.Register(ctx, validRegisterRequest())
		require.NoError(t, err)

		// Mark verified first, then resubmit.
		user, err := store.GetByID(ctx, resp.User.ID)
		require.NoError(t, err)
		user.IdentityVerification.Status = models.VerificationVerified
		require.NoError(t, store.Save(ctx, user))

		status, err := svc.SubmitVerificationDocuments(ctx, resp.User.ID, models.SubmitDocumentsRequest{
			Documents: []models.VerificationDocument{
				{Type: models.DocumentPassport, URL: "https://cdn.example.com/passport.jpg"},
			},
		})
		require.NoError(t, err)
		assert.Equal(t, models.VerificationPending, status)

		updated, err := store.GetByID(ctx, resp.User.ID)
		require.NoError(t, err)
		assert.Equal(t, models.VerificationPending, updated.IdentityVerification.Status)
		assert.Nil(t, updated.IdentityVerification.VerifiedAt)
		require.Len(t, updated.IdentityVerification.Documents, 1)
		assert.False(t, updated.IdentityVerification.Documents[0].UploadedAt.IsZero())
	})

	t.Run("rejects unknown document kind", func(t *testing.T) {
		store := newFakeUserStore()
		svc := NewAuthService(store, jwtService)

		resp, err := svc.Register(ctx, validRegisterRequest())
		require.NoError(t, err)

		_, err = svc.SubmitVerificationDocuments(ctx, resp.User.ID, models.SubmitDocumentsRequest{
			Documents: []models.VerificationDocument{
				{Type: "library_card", URL: "https://cdn.example.com/card.jpg"},
			},
		})
		require.Error(t, err)

		serviceErr, ok := utils.GetServiceError(err)
		require.True(t, ok)
		assert.Equal(t, utils.ErrCodeValidation, serviceErr.Code)
	})
}
