// controllers/weather_controller.go
package controllers

import (
	"strconv"

	"roamsafe/models"
	"roamsafe/services"
	"roamsafe/utils"

	"github.com/gin-gonic/gin"
)

type WeatherController struct {
	weatherService *services.WeatherService
}

func NewWeatherController(weatherService *services.WeatherService) *WeatherController {
	return &WeatherController{
		weatherService: weatherService,
	}
}

// coordinates parses the lat/lon query pair shared by all weather endpoints.
func coordinates(c *gin.Context) (float64, float64, bool) {
	latParam := c.Query("lat")
	lonParam := c.Query("lon")

	if latParam == "" || lonParam == "" {
		utils.BadRequestResponse(c, "Latitude and longitude are required")
		return 0, 0, false
	}

	lat, latErr := strconv.ParseFloat(latParam, 64)
	lon, lonErr := strconv.ParseFloat(lonParam, 64)
	if latErr != nil || lonErr != nil || !utils.IsValidCoordinate(lat, lon) {
		utils.BadRequestResponse(c, "Invalid coordinates")
		return 0, 0, false
	}

	return lat, lon, true
}

// CurrentWeather returns current conditions plus matching safety advisories.
// @Summary Current weather
// @Tags Weather
// @Produce json
// @Security BearerAuth
// @Param lat query number true "Latitude"
// @Param lon query number true "Longitude"
// @Success 200 {object} models.APIResponse{data=models.CurrentWeatherResponse}
// @Router /weather/current [get]
func (wc *WeatherController) CurrentWeather(c *gin.Context) {
	lat, lon, ok := coordinates(c)
	if !ok {
		return
	}

	current, err := wc.weatherService.GetCurrentWeather(c.Request.Context(), lat, lon)
	if err != nil {
		utils.ServiceErrorResponse(c, err)
		return
	}

	utils.SuccessResponse(c, "Weather retrieved successfully", models.CurrentWeatherResponse{
		WeatherRecord:         *current,
		SafetyRecommendations: services.SafetyRecommendations(current),
	})
}

// Alerts returns derived weather alerts for the location.
// @Summary Weather alerts
// @Tags Weather
// @Produce json
// @Security BearerAuth
// @Param lat query number true "Latitude"
// @Param lon query number true "Longitude"
// @Success 200 {object} models.APIResponse{data=[]models.WeatherAlert}
// @Router /weather/alerts [get]
func (wc *WeatherController) Alerts(c *gin.Context) {
	lat, lon, ok := coordinates(c)
	if !ok {
		return
	}

	alerts, err := wc.weatherService.GetWeatherAlerts(c.Request.Context(), lat, lon)
	if err != nil {
		utils.ServiceErrorResponse(c, err)
		return
	}

	utils.SuccessResponse(c, "Weather alerts retrieved successfully", alerts)
}

// Forecast returns the next forecast entries for the location.
// @Summary Weather forecast
// @Tags Weather
// @Produce json
// @Security BearerAuth
// @Param lat query number true "Latitude"
// @Param lon query number true "Longitude"
// @Success 200 {object} models.APIResponse{data=[]models.ForecastEntry}
// @Router /weather/forecast [get]
func (wc *WeatherController) Forecast(c *gin.Context) {
	lat, lon, ok := coordinates(c)
	if !ok {
		return
	}

	forecast, err := wc.weatherService.GetWeatherForecast(c.Request.Context(), lat, lon)
	if err != nil {
		utils.ServiceErrorResponse(c, err)
		return
	}

	utils.SuccessResponse(c, "Weather forecast retrieved successfully", forecast)
}

// SafetyReport returns the combined conditions, alerts and safety score.
// @Summary Weather safety report
// @Tags Weather
// @Produce json
// @Security BearerAuth
// @Param lat query number true "Latitude"
// @Param lon query number true "Longitude"
// @Success 200 {object} models.APIResponse{data=models.SafetyReport}
// @Router /weather/safety-report [get]
func (wc *WeatherController) SafetyReport(c *gin.Context) {
	lat, lon, ok := coordinates(c)
	if !ok {
		return
	}

	report, err := wc.weatherService.GetSafetyReport(c.Request.Context(), lat, lon)
	if err != nil {
		utils.ServiceErrorResponse(c, err)
		return
	}

	utils.SuccessResponse(c, "Weather safety report retrieved successfully", report)
}
