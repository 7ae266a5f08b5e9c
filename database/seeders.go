package database

import (
	"context"
	"fmt"
	"time"

	"roamsafe/models"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"golang.org/x/crypto/bcrypt"
)

// Seeder represents a database seeder
type Seeder struct {
	Name        string
	Description string
	Seed        func(*mongo.Database) error
}

var seeders = []Seeder{
	{
		Name:        "safety_zones",
		Description: "Demo safety zones (San Francisco)",
		Seed:        seedSafetyZones,
	},
	{
		Name:        "demo_user",
		Description: "Verified demo tourist account",
		Seed:        seedDemoUser,
	},
}

// RunSeeders executes all seeders. Each seeder is skipped when its
// collection already has data.
func RunSeeders(db *mongo.Database) error {
	for _, seeder := range seeders {
		logrus.Infof("Running seeder: %s", seeder.Name)
		if err := seeder.Seed(db); err != nil {
			return fmt.Errorf("seeder %s failed: %w", seeder.Name, err)
		}
	}
	return nil
}

func seedSafetyZones(db *mongo.Database) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	col := db.Collection("safety_zones")

	count, err := col.CountDocuments(ctx, bson.M{})
	if err != nil {
		return err
	}
	if count > 0 {
		logrus.Debug("Safety zones already seeded, skipping")
		return nil
	}

	now := time.Now()
	services := models.EmergencyServices{
		Police:   "+1-555-POLICE",
		Hospital: "+1-555-HOSPITAL",
		Embassy:  "+1-555-EMBASSY",
	}

	zones := []interface{}{
		models.SafetyZone{
			ID:          primitive.NewObjectID(),
			Name:        "Green Zone - Downtown",
			Description: "Low risk area. Enjoy your visit with standard precautions.",
			ZoneType:    models.ZoneGreen,
			RiskLevel:   models.RiskLow,
			Location: models.ZoneGeometry{
				Type: models.GeometryPolygon,
				Coordinates: [][][]float64{{
					{-122.4194, 37.7749},
					{-122.4094, 37.7749},
					{-122.4094, 37.7849},
					{-122.4194, 37.7849},
					{-122.4194, 37.7749},
				}},
				Center: models.ZoneCenter{Latitude: 37.7749, Longitude: -122.4194},
			},
			Boundaries: models.ZoneBoundaries{North: 37.7849, South: 37.7749, East: -122.4094, West: -122.4194},
			SafetyGuidelines: []models.SafetyGuideline{
				{Title: "General Safety", Description: "Stay aware of your surroundings and keep valuables secure."},
				{Title: "Emergency Contacts", Description: "Save local emergency numbers in your phone."},
			},
			EmergencyServices: services,
			IsActive:          true,
			LastUpdated:       now,
			CreatedAt:         now,
			UpdatedAt:         now,
		},
		models.SafetyZone{
			ID:          primitive.NewObjectID(),
			Name:        "Yellow Zone - Market District",
			Description: "Moderate risk area. Exercise increased caution.",
			ZoneType:    models.ZoneYellow,
			RiskLevel:   models.RiskMedium,
			Location: models.ZoneGeometry{
				Type: models.GeometryPolygon,
				Coordinates: [][][]float64{{
					{-122.4294, 37.7649},
					{-122.4194, 37.7649},
					{-122.4194, 37.7749},
					{-122.4294, 37.7749},
					{-122.4294, 37.7649},
				}},
				Center: models.ZoneCenter{Latitude: 37.7649, Longitude: -122.4294},
			},
			Boundaries: models.ZoneBoundaries{North: 37.7749, South: 37.7649, East: -122.4194, West: -122.4294},
			SafetyGuidelines: []models.SafetyGuideline{
				{Title: "Increased Caution", Description: "Avoid walking alone at night and stay in well-lit areas."},
				{Title: "Valuables", Description: "Keep expensive items out of sight and use hotel safes."},
			},
			EmergencyServices: services,
			IsActive:          true,
			LastUpdated:       now,
			CreatedAt:         now,
			UpdatedAt:         now,
		},
		models.SafetyZone{
			ID:          primitive.NewObjectID(),
			Name:        "Red Zone - Industrial Area",
			Description: "High risk area. Avoid unless necessary.",
			ZoneType:    models.ZoneRed,
			RiskLevel:   models.RiskHigh,
			Location: models.ZoneGeometry{
				Type: models.GeometryPolygon,
				Coordinates: [][][]float64{{
					{-122.4394, 37.7549},
					{-122.4294, 37.7549},
					{-122.4294, 37.7649},
					{-122.4394, 37.7649},
					{-122.4394, 37.7549},
				}},
				Center: models.ZoneCenter{Latitude: 37.7549, Longitude: -122.4394},
			},
			Boundaries: models.ZoneBoundaries{North: 37.7649, South: 37.7549, East: -122.4294, West: -122.4394},
			SafetyGuidelines: []models.SafetyGuideline{
				{Title: "High Risk Area", Description: "Avoid this area unless absolutely necessary."},
				{Title: "If You Must Go", Description: "Travel in groups and inform someone of your plans."},
			},
			EmergencyServices: services,
			IsActive:          true,
			LastUpdated:       now,
			CreatedAt:         now,
			UpdatedAt:         now,
		},
	}

	if _, err := col.InsertMany(ctx, zones); err != nil {
		return err
	}

	logrus.Info("Seeded demo safety zones")
	return nil
}

func seedDemoUser(db *mongo.Database) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	col := db.Collection("users")

	count, err := col.CountDocuments(ctx, bson.M{"email": "john.doe@example.com"})
	if err != nil {
		return err
	}
	if count > 0 {
		logrus.Debug("Demo user already seeded, skipping")
		return nil
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	now := time.Now()
	user := models.User{
		ID:          primitive.NewObjectID(),
		FullName:    "John Doe",
		Email:       "john.doe@example.com",
		Password:    string(hashedPassword),
		Nationality: "American",
		PassportID:  "A12345678",
		PhoneNumber: "+1-555-0123",
		EmergencyContacts: []models.EmergencyContact{
			{
				ID:           primitive.NewObjectID(),
				Name:         "Jane Doe",
				PhoneNumber:  "+1-555-0124",
				Relationship: "Spouse",
			},
		},
		IdentityVerification: models.IdentityVerification{
			Status:     models.VerificationVerified,
			Documents:  []models.VerificationDocument{},
			VerifiedAt: &now,
		},
		LocationTracking: models.LocationTracking{
			Enabled: true,
			LastKnownLocation: &models.KnownLocation{
				Latitude:  37.7749,
				Longitude: -122.4194,
				Timestamp: now,
			},
		},
		PrivacySettings: models.PrivacySettings{
			LocationTracking: true,
			SafetyAlerts:     true,
		},
		IsActive:  true,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if _, err := col.InsertOne(ctx, user); err != nil {
		return err
	}

	logrus.Info("Seeded demo user")
	return nil
}
