// controllers/safety_zone_controller.go
package controllers

import (
	"strconv"

	"roamsafe/models"
	"roamsafe/services"
	"roamsafe/utils"

	"github.com/gin-gonic/gin"
)

type SafetyZoneController struct {
	zoneService *services.SafetyZoneService
}

func NewSafetyZoneController(zoneService *services.SafetyZoneService) *SafetyZoneController {
	return &SafetyZoneController{
		zoneService: zoneService,
	}
}

// ListZones returns all active zones. When latitude and longitude query
// parameters are both present it also resolves the caller's current zone.
// @Summary List safety zones
// @Tags SafetyZones
// @Produce json
// @Param latitude query number false "Caller latitude"
// @Param longitude query number false "Caller longitude"
// @Success 200 {object} models.APIResponse
// @Router /safety-zones [get]
func (zc *SafetyZoneController) ListZones(c *gin.Context) {
	latParam := c.Query("latitude")
	lonParam := c.Query("longitude")

	if latParam != "" && lonParam != "" {
		lat, latErr := strconv.ParseFloat(latParam, 64)
		lon, lonErr := strconv.ParseFloat(lonParam, 64)
		if latErr != nil || lonErr != nil {
			utils.BadRequestResponse(c, "Invalid coordinates")
			return
		}

		lookup, err := zc.zoneService.LocateZone(c.Request.Context(), lat, lon)
		if err != nil {
			utils.ServiceErrorResponse(c, err)
			return
		}

		utils.SuccessResponse(c, "Safety zones retrieved successfully", lookup)
		return
	}

	zones, err := zc.zoneService.ListZones(c.Request.Context())
	if err != nil {
		utils.ServiceErrorResponse(c, err)
		return
	}

	utils.SuccessResponse(c, "Safety zones retrieved successfully", zones)
}

// GetZone returns a zone by id.
// @Summary Get safety zone
// @Tags SafetyZones
// @Produce json
// @Param id path string true "Zone ID"
// @Success 200 {object} models.APIResponse{data=models.SafetyZone}
// @Router /safety-zones/{id} [get]
func (zc *SafetyZoneController) GetZone(c *gin.Context) {
	zone, err := zc.zoneService.GetZone(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.ServiceErrorResponse(c, err)
		return
	}

	utils.SuccessResponse(c, "Safety zone retrieved successfully", zone)
}

// CreateZone registers a new zone.
// @Summary Create safety zone
// @Tags SafetyZones
// @Accept json
// @Produce json
// @Security BearerAuth
// @Success 201 {object} models.APIResponse{data=models.SafetyZone}
// @Router /safety-zones [post]
func (zc *SafetyZoneController) CreateZone(c *gin.Context) {
	var req models.CreateZoneRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid request body")
		return
	}

	zone, err := zc.zoneService.CreateZone(c.Request.Context(), req)
	if err != nil {
		utils.ServiceErrorResponse(c, err)
		return
	}

	utils.CreatedResponse(c, "Safety zone created successfully", zone)
}
