package repositories

import (
	"context"
	"time"

	"roamsafe/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type SafetyZoneRepository struct {
	collection *mongo.Collection
}

func NewSafetyZoneRepository(db *mongo.Database) *SafetyZoneRepository {
	return &SafetyZoneRepository{
		collection: db.Collection("safety_zones"),
	}
}

func (zr *SafetyZoneRepository) Create(ctx context.Context, zone *models.SafetyZone) error {
	zone.ID = primitive.NewObjectID()
	zone.CreatedAt = time.Now()
	zone.UpdatedAt = time.Now()
	zone.LastUpdated = time.Now()
	zone.IsActive = true

	_, err := zr.collection.InsertOne(ctx, zone)
	return err
}

func (zr *SafetyZoneRepository) GetByID(ctx context.Context, id string) (*models.SafetyZone, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrNotFound
	}

	var zone models.SafetyZone
	err = zr.collection.FindOne(ctx, bson.M{"_id": objectID}).Decode(&zone)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, err
	}

	return &zone, nil
}

// FindActive returns all active zones in insertion order.
func (zr *SafetyZoneRepository) FindActive(ctx context.Context) ([]models.SafetyZone, error) {
	cursor, err := zr.collection.Find(ctx, bson.M{"isActive": true})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	zones := []models.SafetyZone{}
	if err := cursor.All(ctx, &zones); err != nil {
		return nil, err
	}

	return zones, nil
}
