package services

import (
	"context"
	"errors"

	"roamsafe/models"
	"roamsafe/repositories"
	"roamsafe/utils"
)

// ZoneProximityDegrees is the flat-plane radius, in degrees, within which a
// point-centered zone claims a visitor. Roughly 1.1 km at the equator.
const ZoneProximityDegrees = 0.01

type SafetyZoneService struct {
	zoneStore SafetyZoneStore
	validator *utils.ValidationService
}

func NewSafetyZoneService(zoneStore SafetyZoneStore) *SafetyZoneService {
	return &SafetyZoneService{
		zoneStore: zoneStore,
		validator: utils.NewValidationService(),
	}
}

func (zs *SafetyZoneService) ListZones(ctx context.Context) ([]models.SafetyZone, error) {
	zones, err := zs.zoneStore.FindActive(ctx)
	if err != nil {
		return nil, utils.NewDatabaseError("list zones", err)
	}
	return zones, nil
}

// LocateZone resolves the caller's position to a zone and returns it along
// with the full active list.
func (zs *SafetyZoneService) LocateZone(ctx context.Context, latitude, longitude float64) (*models.ZoneLookupResponse, error) {
	if !utils.IsValidCoordinate(latitude, longitude) {
		return nil, utils.NewValidationError("Invalid coordinates", nil)
	}

	zones, err := zs.zoneStore.FindActive(ctx)
	if err != nil {
		return nil, utils.NewDatabaseError("list zones", err)
	}

	return &models.ZoneLookupResponse{
		CurrentZone: locateZone(zones, latitude, longitude),
		AllZones:    zones,
	}, nil
}

// locateZone picks the first point-centered zone whose center lies within
// ZoneProximityDegrees of the position, measured as flat Euclidean degrees.
// When no zone is close enough it falls back to the first zone in the list,
// so a caller always gets an answer while any zones exist.
func locateZone(zones []models.SafetyZone, latitude, longitude float64) *models.SafetyZone {
	if len(zones) == 0 {
		return nil
	}

	for i := range zones {
		if zones[i].Location.Type != models.GeometryPoint {
			continue
		}
		center := zones[i].Location.Center
		if utils.EuclideanDegreeDistance(latitude, longitude, center.Latitude, center.Longitude) < ZoneProximityDegrees {
			return &zones[i]
		}
	}

	return &zones[0]
}

func (zs *SafetyZoneService) GetZone(ctx context.Context, zoneID string) (*models.SafetyZone, error) {
	zone, err := zs.zoneStore.GetByID(ctx, zoneID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, utils.ErrZoneNotFound
		}
		return nil, utils.NewDatabaseError("find zone", err)
	}
	return zone, nil
}

func (zs *SafetyZoneService) CreateZone(ctx context.Context, req models.CreateZoneRequest) (*models.SafetyZone, error) {
	if validationErrors := zs.validator.ValidateStruct(req); len(validationErrors) > 0 {
		return nil, utils.NewValidationError("Validation failed", validationErrors)
	}

	geometryType := models.GeometryPolygon
	if req.Center.Latitude != 0 || req.Center.Longitude != 0 {
		geometryType = models.GeometryPoint
	}

	zone := models.SafetyZone{
		Name:        req.Name,
		Description: req.Description,
		ZoneType:    req.ZoneType,
		RiskLevel:   req.RiskLevel,
		Location: models.ZoneGeometry{
			Type:        geometryType,
			Coordinates: req.Coordinates,
			Center:      req.Center,
		},
		Boundaries:        boundariesFromCoordinates(req.Coordinates),
		SafetyGuidelines:  req.SafetyGuidelines,
		EmergencyServices: req.EmergencyServices,
	}

	if err := zs.zoneStore.Create(ctx, &zone); err != nil {
		return nil, utils.NewDatabaseError("create zone", err)
	}

	return &zone, nil
}

// boundariesFromCoordinates derives the bounding box of the outer ring.
// Coordinates follow GeoJSON order: [longitude, latitude].
func boundariesFromCoordinates(coordinates [][][]float64) models.ZoneBoundaries {
	var b models.ZoneBoundaries
	if len(coordinates) == 0 || len(coordinates[0]) == 0 {
		return b
	}

	first := coordinates[0][0]
	if len(first) < 2 {
		return b
	}
	b.West, b.East = first[0], first[0]
	b.South, b.North = first[1], first[1]

	for _, point := range coordinates[0] {
		if len(point) < 2 {
			continue
		}
		lon, lat := point[0], point[1]
		if lon < b.West {
			b.West = lon
		}
		if lon > b.East {
			b.East = lon
		}
		if lat < b.South {
			b.South = lat
		}
		if lat > b.North {
			b.North = lat
		}
	}

	return b
}
