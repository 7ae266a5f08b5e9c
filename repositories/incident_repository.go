package repositories

import (
	"context"
	"time"

	"roamsafe/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type IncidentRepository struct {
	collection *mongo.Collection
}

func NewIncidentRepository(db *mongo.Database) *IncidentRepository {
	return &IncidentRepository{
		collection: db.Collection("incidents"),
	}
}

func (ir *IncidentRepository) Create(ctx context.Context, incident *models.Incident) error {
	incident.ID = primitive.NewObjectID()
	incident.CreatedAt = time.Now()
	incident.UpdatedAt = time.Now()

	_, err := ir.collection.InsertOne(ctx, incident)
	return err
}

// GetByIDAndUser fetches an incident only when it belongs to the given user.
func (ir *IncidentRepository) GetByIDAndUser(ctx context.Context, id, userID string) (*models.Incident, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrNotFound
	}
	userObjectID, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return nil, ErrNotFound
	}

	var incident models.Incident
	err = ir.collection.FindOne(ctx, bson.M{"_id": objectID, "userId": userObjectID}).Decode(&incident)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, err
	}

	return &incident, nil
}

// FindByUser returns a page of the user's incidents, newest first, optionally
// filtered by status and type, along with the unpaged total.
func (ir *IncidentRepository) FindByUser(ctx context.Context, userID, status, incidentType string, page, limit int) ([]models.Incident, int64, error) {
	userObjectID, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return nil, 0, ErrNotFound
	}

	filter := bson.M{"userId": userObjectID}
	if status != "" {
		filter["status"] = status
	}
	if incidentType != "" {
		filter["type"] = incidentType
	}

	total, err := ir.collection.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}}).
		SetSkip(int64((page - 1) * limit)).
		SetLimit(int64(limit))

	cursor, err := ir.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, 0, err
	}
	defer cursor.Close(ctx)

	incidents := []models.Incident{}
	if err := cursor.All(ctx, &incidents); err != nil {
		return nil, 0, err
	}

	return incidents, total, nil
}

// FindRecentByUser returns the user's most recent incidents, newest first.
func (ir *IncidentRepository) FindRecentByUser(ctx context.Context, userID string, limit int) ([]models.Incident, error) {
	userObjectID, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return nil, ErrNotFound
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}}).
		SetLimit(int64(limit))

	cursor, err := ir.collection.Find(ctx, bson.M{"userId": userObjectID}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	incidents := []models.Incident{}
	if err := cursor.All(ctx, &incidents); err != nil {
		return nil, err
	}

	return incidents, nil
}

// Save persists the full incident document.
func (ir *IncidentRepository) Save(ctx context.Context, incident *models.Incident) error {
	incident.UpdatedAt = time.Now()

	result, err := ir.collection.ReplaceOne(ctx, bson.M{"_id": incident.ID}, incident)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return ErrNotFound
	}

	return nil
}
