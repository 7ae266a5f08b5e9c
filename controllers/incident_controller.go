// controllers/incident_controller.go
package controllers

import (
	"strconv"

	"roamsafe/models"
	"roamsafe/services"
	"roamsafe/utils"

	"github.com/gin-gonic/gin"
)

type IncidentController struct {
	incidentService *services.IncidentService
}

func NewIncidentController(incidentService *services.IncidentService) *IncidentController {
	return &IncidentController{
		incidentService: incidentService,
	}
}

// Report creates a new incident for the authenticated user.
// @Summary Report an incident
// @Tags Incidents
// @Accept json
// @Produce json
// @Security BearerAuth
// @Success 201 {object} models.APIResponse{data=models.IncidentSummary}
// @Router /incidents/report [post]
func (ic *IncidentController) Report(c *gin.Context) {
	var req models.ReportIncidentRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid request body")
		return
	}

	summary, err := ic.incidentService.ReportIncident(c.Request.Context(), c.GetString("userID"), req)
	if err != nil {
		utils.ServiceErrorResponse(c, err)
		return
	}

	utils.CreatedResponse(c, "Incident reported successfully", summary)
}

// ListMyIncidents returns a page of the caller's incidents.
// @Summary List my incidents
// @Tags Incidents
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page number"
// @Param limit query int false "Page size"
// @Param status query string false "Filter by status"
// @Param type query string false "Filter by type"
// @Success 200 {object} models.APIResponse{data=models.IncidentListResponse}
// @Router /incidents/my-incidents [get]
func (ic *IncidentController) ListMyIncidents(c *gin.Context) {
	var req models.ListIncidentsRequest

	if err := c.ShouldBindQuery(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid query parameters")
		return
	}

	response, err := ic.incidentService.ListMyIncidents(c.Request.Context(), c.GetString("userID"), req)
	if err != nil {
		utils.ServiceErrorResponse(c, err)
		return
	}

	utils.SuccessResponse(c, "Incidents retrieved successfully", response)
}

// History returns recent incidents grouped by calendar date.
// @Summary Incident history
// @Tags Incidents
// @Produce json
// @Security BearerAuth
// @Param limit query int false "Max incidents to include (default 20)"
// @Success 200 {object} models.APIResponse{data=[]models.IncidentHistoryGroup}
// @Router /incidents/history [get]
func (ic *IncidentController) History(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "0"))

	groups, err := ic.incidentService.GetIncidentHistory(c.Request.Context(), c.GetString("userID"), limit)
	if err != nil {
		utils.ServiceErrorResponse(c, err)
		return
	}

	utils.SuccessResponse(c, "Incident history retrieved successfully", groups)
}

// GetIncident returns a single incident owned by the caller.
// @Summary Get incident
// @Tags Incidents
// @Produce json
// @Security BearerAuth
// @Param id path string true "Incident ID"
// @Success 200 {object} models.APIResponse{data=models.Incident}
// @Router /incidents/{id} [get]
func (ic *IncidentController) GetIncident(c *gin.Context) {
	incident, err := ic.incidentService.GetIncident(c.Request.Context(), c.GetString("userID"), c.Param("id"))
	if err != nil {
		utils.ServiceErrorResponse(c, err)
		return
	}

	utils.SuccessResponse(c, "Incident retrieved successfully", incident)
}

// UpdateStatus changes the incident status.
// @Summary Update incident status
// @Tags Incidents
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Incident ID"
// @Success 200 {object} models.APIResponse{data=models.IncidentSummary}
// @Router /incidents/{id}/status [put]
func (ic *IncidentController) UpdateStatus(c *gin.Context) {
	var req models.UpdateIncidentStatusRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid request body")
		return
	}

	summary, err := ic.incidentService.UpdateIncidentStatus(c.Request.Context(), c.GetString("userID"), c.Param("id"), req)
	if err != nil {
		utils.ServiceErrorResponse(c, err)
		return
	}

	utils.SuccessResponse(c, "Incident status updated successfully", summary)
}
