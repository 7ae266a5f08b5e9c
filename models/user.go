package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type User struct {
	ID       primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	FullName string             `json:"fullName" bson:"fullName"`
	Email    string             `json:"email" bson:"email"`
	Password string             `json:"-" bson:"password"` // Never include in JSON responses

	// Travel documents
	Nationality string `json:"nationality" bson:"nationality"`
	PassportID  string `json:"passportId" bson:"passportId"`
	PhoneNumber string `json:"phoneNumber" bson:"phoneNumber"`

	EmergencyContacts    []EmergencyContact   `json:"emergencyContacts" bson:"emergencyContacts"`
	IdentityVerification IdentityVerification `json:"identityVerification" bson:"identityVerification"`
	LocationTracking     LocationTracking     `json:"locationTracking" bson:"locationTracking"`
	PrivacySettings      PrivacySettings      `json:"privacySettings" bson:"privacySettings"`

	IsActive bool `json:"isActive" bson:"isActive"`

	CreatedAt time.Time `json:"createdAt" bson:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt" bson:"updatedAt"`
}

type EmergencyContact struct {
	ID           primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Name         string             `json:"name" bson:"name"`
	PhoneNumber  string             `json:"phoneNumber" bson:"phoneNumber"`
	Relationship string             `json:"relationship" bson:"relationship"`
}

type IdentityVerification struct {
	Status    string                 `json:"status" bson:"status"` // pending, verified, rejected
	Documents []VerificationDocument `json:"documents" bson:"documents"`
	VerifiedAt *time.Time            `json:"verifiedAt,omitempty" bson:"verifiedAt,omitempty"`
}

type VerificationDocument struct {
	Type       string    `json:"type" bson:"type" validate:"required,document_kind"` // passport, id_card, drivers_license
	URL        string    `json:"url" bson:"url" validate:"required"`
	UploadedAt time.Time `json:"uploadedAt" bson:"uploadedAt"`
}

type LocationTracking struct {
	Enabled           bool           `json:"enabled" bson:"enabled"`
	LastKnownLocation *KnownLocation `json:"lastKnownLocation,omitempty" bson:"lastKnownLocation,omitempty"`
}

type KnownLocation struct {
	Latitude  float64   `json:"latitude" bson:"latitude"`
	Longitude float64   `json:"longitude" bson:"longitude"`
	Timestamp time.Time `json:"timestamp" bson:"timestamp"`
}

type PrivacySettings struct {
	LocationTracking bool `json:"locationTracking" bson:"locationTracking"`
	SafetyAlerts     bool `json:"safetyAlerts" bson:"safetyAlerts"`
}

// Verification status values
const (
	VerificationPending  = "pending"
	VerificationVerified = "verified"
	VerificationRejected = "rejected"
)

// Document kinds accepted for identity verification
const (
	DocumentPassport       = "passport"
	DocumentIDCard         = "id_card"
	DocumentDriversLicense = "drivers_license"
)

const DefaultRelationship = "Emergency Contact"

// Request DTOs

type UpdateProfileRequest struct {
	FullName    *string `json:"fullName,omitempty"`
	PhoneNumber *string `json:"phoneNumber,omitempty"`
}

type UpdateLocationRequest struct {
	Latitude  *float64 `json:"latitude" validate:"required,coordinate"`
	Longitude *float64 `json:"longitude" validate:"required,coordinate"`
}

type UpdatePrivacySettingsRequest struct {
	LocationTracking *bool `json:"locationTracking,omitempty"`
	SafetyAlerts     *bool `json:"safetyAlerts,omitempty"`
}

type AddContactRequest struct {
	Name         string `json:"name" validate:"required"`
	PhoneNumber  string `json:"phoneNumber" validate:"required"`
	Relationship string `json:"relationship,omitempty"`
}

type UpdateContactRequest struct {
	Name         *string `json:"name,omitempty"`
	PhoneNumber  *string `json:"phoneNumber,omitempty"`
	Relationship *string `json:"relationship,omitempty"`
}

type SubmitDocumentsRequest struct {
	Documents []VerificationDocument `json:"documents" validate:"required,min=1,dive"`
}

// UserProfile is the public projection returned by auth endpoints.
type UserProfile struct {
	ID                   string               `json:"id"`
	FullName             string               `json:"fullName"`
	Email                string               `json:"email"`
	Nationality          string               `json:"nationality"`
	PhoneNumber          string               `json:"phoneNumber,omitempty"`
	IdentityVerification IdentityVerification `json:"identityVerification"`
	LocationTracking     *LocationTracking    `json:"locationTracking,omitempty"`
	PrivacySettings      *PrivacySettings     `json:"privacySettings,omitempty"`
}
