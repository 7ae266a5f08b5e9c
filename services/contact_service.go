package services

import (
	"context"
	"errors"

	"roamsafe/models"
	"roamsafe/repositories"
	"roamsafe/utils"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ContactService manages the emergency contacts embedded in the user
// document. Every mutation rewrites the full document.
type ContactService struct {
	userStore UserStore
	validator *utils.ValidationService
}

func NewContactService(userStore UserStore) *ContactService {
	return &ContactService{
		userStore: userStore,
		validator: utils.NewValidationService(),
	}
}

func (cs *ContactService) ListContacts(ctx context.Context, userID string) ([]models.EmergencyContact, error) {
	user, err := cs.getUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	if user.EmergencyContacts == nil {
		return []models.EmergencyContact{}, nil
	}
	return user.EmergencyContacts, nil
}

// AddContact appends a contact. Duplicate phone numbers within a single
// user's list are rejected.
func (cs *ContactService) AddContact(ctx context.Context, userID string, req models.AddContactRequest) ([]models.EmergencyContact, error) {
	if validationErrors := cs.validator.ValidateStruct(req); len(validationErrors) > 0 {
		return nil, utils.NewValidationError("Validation failed", validationErrors)
	}

	user, err := cs.getUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	for _, contact := range user.EmergencyContacts {
		if contact.PhoneNumber == req.PhoneNumber {
			return nil, utils.NewConflictError("Contact with this phone number already exists")
		}
	}

	relationship := req.Relationship
	if relationship == "" {
		relationship = models.DefaultRelationship
	}

	user.EmergencyContacts = append(user.EmergencyContacts, models.EmergencyContact{
		ID:           primitive.NewObjectID(),
		Name:         req.Name,
		PhoneNumber:  req.PhoneNumber,
		Relationship: relationship,
	})

	if err := cs.userStore.Save(ctx, user); err != nil {
		return nil, utils.NewDatabaseError("save user", err)
	}

	return user.EmergencyContacts, nil
}

func (cs *ContactService) UpdateContact(ctx context.Context, userID, contactID string, req models.UpdateContactRequest) ([]models.EmergencyContact, error) {
	user, err := cs.getUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	index := findContactIndex(user.EmergencyContacts, contactID)
	if index < 0 {
		return nil, utils.ErrContactNotFound
	}

	if req.Name != nil {
		user.EmergencyContacts[index].Name = *req.Name
	}
	if req.PhoneNumber != nil {
		user.EmergencyContacts[index].PhoneNumber = *req.PhoneNumber
	}
	if req.Relationship != nil {
		user.EmergencyContacts[index].Relationship = *req.Relationship
	}

	if err := cs.userStore.Save(ctx, user); err != nil {
		return nil, utils.NewDatabaseError("save user", err)
	}

	return user.EmergencyContacts, nil
}

func (cs *ContactService) DeleteContact(ctx context.Context, userID, contactID string) ([]models.EmergencyContact, error) {
	user, err := cs.getUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	index := findContactIndex(user.EmergencyContacts, contactID)
	if index < 0 {
		return nil, utils.ErrContactNotFound
	}

	user.EmergencyContacts = append(user.EmergencyContacts[:index], user.EmergencyContacts[index+1:]...)

	if err := cs.userStore.Save(ctx, user); err != nil {
		return nil, utils.NewDatabaseError("save user", err)
	}

	return user.EmergencyContacts, nil
}

func (cs *ContactService) getUser(ctx context.Context, userID string) (*models.User, error) {
	user, err := cs.userStore.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, utils.ErrUserNotFound
		}
		return nil, utils.NewDatabaseError("find user", err)
	}
	return user, nil
}

func findContactIndex(contacts []models.EmergencyContact, contactID string) int {
	for i, contact := range contacts {
		if contact.ID.Hex() == contactID {
			return i
		}
	}
	return -1
}
