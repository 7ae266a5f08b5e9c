package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"roamsafe/models"
	"roamsafe/repositories"
	"roamsafe/utils"

	"github.com/sirupsen/logrus"
)

type AuthService struct {
	userStore       UserStore
	jwtService      *utils.JWTService
	passwordService *utils.PasswordService
	validator       *utils.ValidationService
}

func NewAuthService(userStore UserStore, jwtService *utils.JWTService) *AuthService {
	return &AuthService{
		userStore:       userStore,
		jwtService:      jwtService,
		passwordService: utils.NewPasswordService(),
		validator:       utils.NewValidationService(),
	}
}

func (as *AuthService) Register(ctx context.Context, req models.RegisterRequest) (*models.AuthResponse, error) {
	if validationErrors := as.validator.ValidateStruct(req); len(validationErrors) > 0 {
		return nil, utils.NewValidationError("Validation failed", validationErrors)
	}

	email := normalizeEmail(req.Email)

	// Check if user already exists by email or passport
	existing, err := as.userStore.FindByEmailOrPassport(ctx, email, req.PassportID)
	if err != nil && !errors.Is(err, repositories.ErrNotFound) {
		return nil, utils.NewDatabaseError("find user", err)
	}
	if existing != nil {
		return nil, utils.NewConflictError("User with this email or passport ID already exists")
	}

	hashedPassword, err := as.passwordService.HashPassword(req.Password)
	if err != nil {
		logrus.Errorf("Failed to hash password: %v", err)
		return nil, utils.NewInternalError("Failed to create account")
	}

	user := models.User{
		FullName:    req.FullName,
		Email:       email,
		Password:    hashedPassword,
		Nationality: req.Nationality,
		PassportID:  req.PassportID,
		PhoneNumber: req.PhoneNumber,
		EmergencyContacts: []models.EmergencyContact{
			{
				Name:         req.EmergencyContactName,
				PhoneNumber:  req.EmergencyContactNumber,
				Relationship: models.DefaultRelationship,
			},
		},
		IdentityVerification: models.IdentityVerification{
			Status:    models.VerificationPending,
			Documents: []models.VerificationDocument{},
		},
		LocationTracking: models.LocationTracking{
			Enabled: true,
		},
		PrivacySettings: models.PrivacySettings{
			LocationTracking: true,
			SafetyAlerts:     true,
		},
	}

	if err := as.userStore.Create(ctx, &user); err != nil {
		logrus.Errorf("Failed to create user: %v", err)
		return nil, utils.NewDatabaseError("create user", err)
	}

	token, err := as.jwtService.GenerateToken(user.ID.Hex())
	if err != nil {
		logrus.Errorf("Failed to generate token: %v", err)
		return nil, utils.NewInternalError("Failed to generate authentication token")
	}

	return &models.AuthResponse{
		Token: token,
		User: models.UserProfile{
			ID:                   user.ID.Hex(),
			FullName:             user.FullName,
			Email:                user.Email,
			Nationality:          user.Nationality,
			IdentityVerification: user.IdentityVerification,
		},
	}, nil
}

func (as *AuthService) Login(ctx context.Context, req models.LoginRequest) (*models.AuthResponse, error) {
	if validationErrors := as.validator.ValidateStruct(req); len(validationErrors) > 0 {
		return nil, utils.NewValidationError("Validation failed", validationErrors)
	}

	// The same error is returned for unknown email and wrong password so the
	// response does not reveal which accounts exist.
	user, err := as.userStore.GetByEmail(ctx, normalizeEmail(req.Email))
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, utils.ErrInvalidCredentials
		}
		return nil, utils.NewDatabaseError("find user", err)
	}

	isValid, err := as.passwordService.ComparePassword(req.Password, user.Password)
	if err != nil || !isValid {
		return nil, utils.ErrInvalidCredentials
	}

	token, err := as.jwtService.GenerateToken(user.ID.Hex())
	if err != nil {
		logrus.Errorf("Failed to generate token: %v", err)
		return nil, utils.NewInternalError("Failed to generate authentication token")
	}

	return &models.AuthResponse{
		Token: token,
		User: models.UserProfile{
			ID:                   user.ID.Hex(),
			FullName:             user.FullName,
			Email:                user.Email,
			Nationality:          user.Nationality,
			IdentityVerification: user.IdentityVerification,
			LocationTracking:     &user.LocationTracking,
			PrivacySettings:      &user.PrivacySettings,
		},
	}, nil
}

// GetCurrentUser resolves a user id (from a validated token) to the stored
// user. The password hash never leaves the service layer serialized.
func (as *AuthService) GetCurrentUser(ctx context.Context, userID string) (*models.User, error) {
	user, err := as.userStore.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, utils.ErrUserNotFound
		}
		return nil, utils.NewDatabaseError("find user", err)
	}

	return user, nil
}

// SubmitVerificationDocuments replaces the user's document list and resets
// verification to pending, even when the account was previously verified or
// rejected.
func (as *AuthService) SubmitVerificationDocuments(ctx context.Context, userID string, req models.SubmitDocumentsRequest) (string, error) {
	if validationErrors := as.validator.ValidateStruct(req); len(validationErrors) > 0 {
		return "", utils.NewValidationError("Validation failed", validationErrors)
	}

	user, err := as.userStore.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return "", utils.ErrUserNotFound
		}
		return "", utils.NewDatabaseError("find user", err)
	}

	documents := make([]models.VerificationDocument, len(req.Documents))
	for i, doc := range req.Documents {
		if doc.UploadedAt.IsZero() {
			doc.UploadedAt = time.Now()
		}
		documents[i] = doc
	}

	user.IdentityVerification.Documents = documents
	user.IdentityVerification.Status = models.VerificationPending
	user.IdentityVerification.VerifiedAt = nil

	if err := as.userStore.Save(ctx, user); err != nil {
		return "", utils.NewDatabaseError("save user", err)
	}

	return user.IdentityVerification.Status, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
