// controllers/user_controller.go
package controllers

import (
	"roamsafe/models"
	"roamsafe/services"
	"roamsafe/utils"

	"github.com/gin-gonic/gin"
)

type UserController struct {
	userService *services.UserService
}

func NewUserController(userService *services.UserService) *UserController {
	return &UserController{
		userService: userService,
	}
}

// UpdateProfile updates the editable profile fields.
// @Summary Update profile
// @Tags Users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.APIResponse{data=models.User}
// @Router /users/profile [put]
func (uc *UserController) UpdateProfile(c *gin.Context) {
	var req models.UpdateProfileRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid request body")
		return
	}

	user, err := uc.userService.UpdateProfile(c.Request.Context(), c.GetString("userID"), req)
	if err != nil {
		utils.ServiceErrorResponse(c, err)
		return
	}

	utils.SuccessResponse(c, "Profile updated successfully", user)
}

// UpdateLocation records the user's current position.
// @Summary Update location
// @Tags Users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.APIResponse{data=models.KnownLocation}
// @Router /users/location [put]
func (uc *UserController) UpdateLocation(c *gin.Context) {
	var req models.UpdateLocationRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid request body")
		return
	}

	location, err := uc.userService.UpdateLocation(c.Request.Context(), c.GetString("userID"), req)
	if err != nil {
		utils.ServiceErrorResponse(c, err)
		return
	}

	utils.SuccessResponse(c, "Location updated successfully", location)
}

// UpdatePrivacySettings updates the privacy toggles present in the body.
// @Summary Update privacy settings
// @Tags Users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.APIResponse{data=models.PrivacySettings}
// @Router /users/privacy-settings [put]
func (uc *UserController) UpdatePrivacySettings(c *gin.Context) {
	var req models.UpdatePrivacySettingsRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid request body")
		return
	}

	settings, err := uc.userService.UpdatePrivacySettings(c.Request.Context(), c.GetString("userID"), req)
	if err != nil {
		utils.ServiceErrorResponse(c, err)
		return
	}

	utils.SuccessResponse(c, "Privacy settings updated successfully", settings)
}

// ToggleLocationTracking flips location tracking on or off.
// @Summary Toggle location tracking
// @Tags Users
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.APIResponse
// @Router /users/toggle-location-tracking [put]
func (uc *UserController) ToggleLocationTracking(c *gin.Context) {
	enabled, err := uc.userService.ToggleLocationTracking(c.Request.Context(), c.GetString("userID"))
	if err != nil {
		utils.ServiceErrorResponse(c, err)
		return
	}

	message := "Location tracking disabled"
	if enabled {
		message = "Location tracking enabled"
	}

	utils.SuccessResponse(c, message, gin.H{"enabled": enabled})
}
