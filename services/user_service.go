package services

import (
	"context"
	"errors"
	"time"

	"roamsafe/models"
	"roamsafe/repositories"
	"roamsafe/utils"
)

type UserService struct {
	userStore UserStore
	validator *utils.ValidationService
}

func NewUserService(userStore UserStore) *UserService {
	return &UserService{
		userStore: userStore,
		validator: utils.NewValidationService(),
	}
}

// UpdateProfile applies only the fields present in the request and persists
// the whole document.
func (us *UserService) UpdateProfile(ctx context.Context, userID string, req models.UpdateProfileRequest) (*models.User, error) {
	user, err := us.getUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	if req.FullName != nil {
		user.FullName = *req.FullName
	}
	if req.PhoneNumber != nil {
		user.PhoneNumber = *req.PhoneNumber
	}

	if err := us.userStore.Save(ctx, user); err != nil {
		return nil, utils.NewDatabaseError("save user", err)
	}

	return user, nil
}

// UpdateLocation stores the user's last known location with a server-side
// timestamp. Client clocks are never trusted for this field.
func (us *UserService) UpdateLocation(ctx context.Context, userID string, req models.UpdateLocationRequest) (*models.KnownLocation, error) {
	if validationErrors := us.validator.ValidateStruct(req); len(validationErrors) > 0 {
		return nil, utils.NewValidationError("Validation failed", validationErrors)
	}

	user, err := us.getUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	location := models.KnownLocation{
		Latitude:  *req.Latitude,
		Longitude: *req.Longitude,
		Timestamp: time.Now(),
	}
	user.LocationTracking.LastKnownLocation = &location

	if err := us.userStore.Save(ctx, user); err != nil {
		return nil, utils.NewDatabaseError("save user", err)
	}

	return &location, nil
}

func (us *UserService) UpdatePrivacySettings(ctx context.Context, userID string, req models.UpdatePrivacySettingsRequest) (*models.PrivacySettings, error) {
	user, err := us.getUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	if req.LocationTracking != nil {
		user.PrivacySettings.LocationTracking = *req.LocationTracking
	}
	if req.SafetyAlerts != nil {
		user.PrivacySettings.SafetyAlerts = *req.SafetyAlerts
	}

	if err := us.userStore.Save(ctx, user); err != nil {
		return nil, utils.NewDatabaseError("save user", err)
	}

	return &user.PrivacySettings, nil
}

// ToggleLocationTracking flips the tracking flag and reports the new state.
func (us *UserService) ToggleLocationTracking(ctx context.Context, userID string) (bool, error) {
	user, err := us.getUser(ctx, userID)
	if err != nil {
		return false, err
	}

	user.LocationTracking.Enabled = !user.LocationTracking.Enabled

	if err := us.userStore.Save(ctx, user); err != nil {
		return false, utils.NewDatabaseError("save user", err)
	}

	return user.LocationTracking.Enabled, nil
}

func (us *UserService) getUser(ctx context.Context, userID string) (*models.User, error) {
	user, err := us.userStore.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, utils.ErrUserNotFound
		}
		return nil, utils.NewDatabaseError("find user", err)
	}
	return user, nil
}
