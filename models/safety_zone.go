package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type SafetyZone struct {
	ID          primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Name        string             `json:"name" bson:"name"`
	Description string             `json:"description" bson:"description"`
	ZoneType    string             `json:"zoneType" bson:"zoneType"`   // green, yellow, red
	RiskLevel   string             `json:"riskLevel" bson:"riskLevel"` // low, medium, high
	Location    ZoneGeometry       `json:"location" bson:"location"`
	Boundaries  ZoneBoundaries     `json:"boundaries" bson:"boundaries"`

	SafetyGuidelines  []SafetyGuideline `json:"safetyGuidelines" bson:"safetyGuidelines"`
	EmergencyServices EmergencyServices `json:"emergencyServices" bson:"emergencyServices"`

	IsActive    bool      `json:"isActive" bson:"isActive"`
	LastUpdated time.Time `json:"lastUpdated" bson:"lastUpdated"`

	CreatedAt time.Time `json:"createdAt" bson:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt" bson:"updatedAt"`
}

// ZoneGeometry stores zones as GeoJSON-style polygons plus a declared center
// point used by the proximity lookup.
type ZoneGeometry struct {
	Type        string         `json:"type" bson:"type"` // Polygon, Point
	Coordinates [][][]float64  `json:"coordinates" bson:"coordinates"`
	Center      ZoneCenter     `json:"center" bson:"center"`
}

type ZoneCenter struct {
	Latitude  float64 `json:"latitude" bson:"latitude"`
	Longitude float64 `json:"longitude" bson:"longitude"`
}

type ZoneBoundaries struct {
	North float64 `json:"north" bson:"north"`
	South float64 `json:"south" bson:"south"`
	East  float64 `json:"east" bson:"east"`
	West  float64 `json:"west" bson:"west"`
}

type SafetyGuideline struct {
	Title       string `json:"title" bson:"title"`
	Description string `json:"description" bson:"description"`
}

type EmergencyServices struct {
	Police   string `json:"police" bson:"police"`
	Hospital string `json:"hospital" bson:"hospital"`
	Embassy  string `json:"embassy" bson:"embassy"`
}

// Zone types
const (
	ZoneGreen  = "green"
	ZoneYellow = "yellow"
	ZoneRed    = "red"
)

// Risk levels. Set independently of zone type; seed data pairs them but
// nothing enforces the correlation.
const (
	RiskLow    = "low"
	RiskMedium = "medium"
	RiskHigh   = "high"
)

// Geometry types
const (
	GeometryPolygon = "Polygon"
	GeometryPoint   = "Point"
)

type CreateZoneRequest struct {
	Name              string            `json:"name" validate:"required"`
	Description       string            `json:"description" validate:"required"`
	ZoneType          string            `json:"zoneType" validate:"required,zone_type"`
	RiskLevel         string            `json:"riskLevel" validate:"required,risk_level"`
	Coordinates       [][][]float64     `json:"coordinates" validate:"required"`
	Center            ZoneCenter        `json:"center"`
	SafetyGuidelines  []SafetyGuideline `json:"safetyGuidelines,omitempty"`
	EmergencyServices EmergencyServices `json:"emergencyServices,omitempty"`
}

// ZoneLookupResponse is returned when the caller supplies coordinates.
type ZoneLookupResponse struct {
	CurrentZone *SafetyZone  `json:"currentZone"`
	AllZones    []SafetyZone `json:"allZones"`
}
