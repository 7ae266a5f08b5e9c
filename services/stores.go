package services

import (
	"context"

	"roamsafe/models"
)

// Store interfaces consumed by the services. The repositories package
// provides the MongoDB implementations; tests substitute in-memory fakes.

type UserStore interface {
	Create(ctx context.Context, user *models.User) error
	GetByID(ctx context.Context, id string) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	FindByEmailOrPassport(ctx context.Context, email, passportID string) (*models.User, error)
	Save(ctx context.Context, user *models.User) error
}

type IncidentStore interface {
	Create(ctx context.Context, incident *models.Incident) error
	GetByIDAndUser(ctx context.Context, id, userID string) (*models.Incident, error)
	FindByUser(ctx context.Context, userID, status, incidentType string, page, limit int) ([]models.Incident, int64, error)
	FindRecentByUser(ctx context.Context, userID string, limit int) ([]models.Incident, error)
	Save(ctx context.Context, incident *models.Incident) error
}

type SafetyZoneStore interface {
	Create(ctx context.Context, zone *models.SafetyZone) error
	GetByID(ctx context.Context, id string) (*models.SafetyZone, error)
	FindActive(ctx context.Context) ([]models.SafetyZone, error)
}
