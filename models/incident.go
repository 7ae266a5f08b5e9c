package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Incident struct {
	ID          primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	UserID      primitive.ObjectID `json:"userId" bson:"userId"`
	Type        string             `json:"type" bson:"type"`
	Title       string             `json:"title" bson:"title"`
	Description string             `json:"description" bson:"description"`
	Location    IncidentLocation   `json:"location" bson:"location"`
	Severity    string             `json:"severity" bson:"severity"`
	Status      string             `json:"status" bson:"status"`
	Images      []IncidentImage    `json:"images" bson:"images"`

	// Recorded notification intent for the reporter's emergency contacts.
	EmergencyContactsNotified []NotificationReceipt `json:"emergencyContactsNotified,omitempty" bson:"emergencyContactsNotified,omitempty"`

	ResolvedAt      *time.Time          `json:"resolvedAt,omitempty" bson:"resolvedAt,omitempty"`
	ResolvedBy      *primitive.ObjectID `json:"resolvedBy,omitempty" bson:"resolvedBy,omitempty"`
	ResolutionNotes string              `json:"resolutionNotes,omitempty" bson:"resolutionNotes,omitempty"`

	CreatedAt time.Time `json:"createdAt" bson:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt" bson:"updatedAt"`
}

type IncidentLocation struct {
	Latitude  float64 `json:"latitude" bson:"latitude"`
	Longitude float64 `json:"longitude" bson:"longitude"`
	Address   string  `json:"address,omitempty" bson:"address,omitempty"`
	City      string  `json:"city,omitempty" bson:"city,omitempty"`
	Country   string  `json:"country,omitempty" bson:"country,omitempty"`
}

type IncidentImage struct {
	URL        string    `json:"url" bson:"url" validate:"required"`
	Caption    string    `json:"caption,omitempty" bson:"caption,omitempty"`
	UploadedAt time.Time `json:"uploadedAt" bson:"uploadedAt"`
}

type NotificationReceipt struct {
	ContactID  primitive.ObjectID `json:"contactId" bson:"contactId"`
	NotifiedAt time.Time          `json:"notifiedAt" bson:"notifiedAt"`
	Status     string             `json:"status" bson:"status"` // pending, delivered, failed
}

// Incident types
const (
	IncidentSafetyAlert      = "safety_alert"
	IncidentReport           = "incident_report"
	IncidentPanicButton      = "panic_button"
	IncidentMedicalEmergency = "medical_emergency"
	IncidentOther            = "other"
)

// Severity levels
const (
	SeverityLow      = "low"
	SeverityMedium   = "medium"
	SeverityHigh     = "high"
	SeverityCritical = "critical"
)

// Status values. Any value is settable by the owning user; there is no
// enforced transition graph.
const (
	StatusReported   = "reported"
	StatusInProgress = "in_progress"
	StatusResolved   = "resolved"
	StatusCancelled  = "cancelled"
)

// Notification receipt delivery states
const (
	NotificationPending   = "pending"
	NotificationDelivered = "delivered"
	NotificationFailed    = "failed"
)

type ReportIncidentRequest struct {
	Type        string          `json:"type" validate:"required,incident_type"`
	Title       string          `json:"title" validate:"required"`
	Description string          `json:"description" validate:"required"`
	Latitude    *float64        `json:"latitude" validate:"required,coordinate"`
	Longitude   *float64        `json:"longitude" validate:"required,coordinate"`
	Address     string          `json:"address,omitempty"`
	City        string          `json:"city,omitempty"`
	Country     string          `json:"country,omitempty"`
	Severity    string          `json:"severity,omitempty" validate:"omitempty,severity"`
	Images      []IncidentImage `json:"images,omitempty" validate:"omitempty,dive"`
}

type UpdateIncidentStatusRequest struct {
	Status          string `json:"status" validate:"required,incident_status"`
	ResolutionNotes string `json:"resolutionNotes,omitempty"`
}

type ListIncidentsRequest struct {
	Page   int    `form:"page"`
	Limit  int    `form:"limit"`
	Status string `form:"status" validate:"omitempty,incident_status"`
	Type   string `form:"type" validate:"omitempty,incident_type"`
}

// IncidentSummary is the trimmed projection returned after a report or a
// status update.
type IncidentSummary struct {
	ID         string     `json:"id"`
	Type       string     `json:"type,omitempty"`
	Title      string     `json:"title,omitempty"`
	Status     string     `json:"status"`
	Severity   string     `json:"severity,omitempty"`
	CreatedAt  *time.Time `json:"createdAt,omitempty"`
	ResolvedAt *time.Time `json:"resolvedAt,omitempty"`
}

type IncidentListResponse struct {
	Incidents   []Incident `json:"incidents"`
	TotalPages  int        `json:"totalPages"`
	CurrentPage int        `json:"currentPage"`
	Total       int64      `json:"total"`
}

// IncidentHistoryGroup pairs a calendar date with trimmed summaries of the
// incidents created on it. Groups preserve query order (newest first).
type IncidentHistoryGroup struct {
	Date      string            `json:"date"`
	Incidents []IncidentSummary `json:"incidents"`
}
