package services

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"net/http"
	"net/url"
	"sync"
	"time"

	"roamsafe/config"
	"roamsafe/models"
	"roamsafe/utils"
)

const forecastEntryCount = 8

// WeatherService wraps the OpenWeatherMap free tier. The base URL is taken
// from configuration so tests can point it at a local server.
type WeatherService struct {
	apiKey  string
	baseURL string
	client  *http.Client
}

func NewWeatherService(cfg *config.Config) *WeatherService {
	return &WeatherService{
		apiKey:  cfg.WeatherAPIKey,
		baseURL: cfg.WeatherBaseURL,
		client: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// Provider payload shapes. Only the fields we read are declared.

type owmCurrentResponse struct {
	Main struct {
		Temp      float64 `json:"temp"`
		FeelsLike float64 `json:"feels_like"`
		Humidity  int     `json:"humidity"`
		Pressure  int     `json:"pressure"`
	} `json:"main"`
	Visibility int `json:"visibility"`
	Wind       struct {
		Speed float64 `json:"speed"`
		Deg   int     `json:"deg"`
	} `json:"wind"`
	Weather []models.WeatherCondition `json:"weather"`
	Clouds  struct {
		All int `json:"all"`
	} `json:"clouds"`
}

type owmForecastResponse struct {
	List []owmForecastItem `json:"list"`
}

type owmForecastItem struct {
	Dt   int64 `json:"dt"`
	Main struct {
		Temp     float64 `json:"temp"`
		Humidity int     `json:"humidity"`
	} `json:"main"`
	Weather []models.WeatherCondition `json:"weather"`
	Wind    struct {
		Speed float64 `json:"speed"`
	} `json:"wind"`
	Rain map[string]float64 `json:"rain"`
}

func (ws *WeatherService) GetCurrentWeather(ctx context.Context, lat, lon float64) (*models.WeatherRecord, error) {
	var payload owmCurrentResponse
	if err := ws.fetch(ctx, "/weather", lat, lon, &payload); err != nil {
		return nil, utils.NewExternalServiceError("Failed to fetch weather data", err)
	}

	var condition models.WeatherCondition
	if len(payload.Weather) > 0 {
		condition = payload.Weather[0]
	}

	return &models.WeatherRecord{
		Temperature:   payload.Main.Temp,
		FeelsLike:     payload.Main.FeelsLike,
		Humidity:      payload.Main.Humidity,
		Pressure:      payload.Main.Pressure,
		Visibility:    payload.Visibility,
		WindSpeed:     payload.Wind.Speed,
		WindDirection: payload.Wind.Deg,
		Weather:       condition,
		Clouds:        payload.Clouds.All,
		Timestamp:     time.Now(),
	}, nil
}

// GetWeatherAlerts derives safety alerts from current conditions. The free
// API tier has no alert feed, so the rules below stand in for one.
func (ws *WeatherService) GetWeatherAlerts(ctx context.Context, lat, lon float64) ([]models.WeatherAlert, error) {
	current, err := ws.GetCurrentWeather(ctx, lat, lon)
	if err != nil {
		return nil, err
	}
	return BuildAlerts(current), nil
}

// BuildAlerts evaluates the alert rules in a fixed order so alert lists are
// deterministic for a given observation.
func BuildAlerts(w *models.WeatherRecord) []models.WeatherAlert {
	now := time.Now()
	alerts := []models.WeatherAlert{}

	add := func(severity, title, message, icon string) {
		alerts = append(alerts, models.WeatherAlert{
			Type:      "weather_alert",
			Severity:  severity,
			Title:     title,
			Message:   message,
			Icon:      icon,
			Timestamp: now,
		})
	}

	if w.Weather.Main == "Thunderstorm" {
		add("high", "Thunderstorm Warning",
			"Thunderstorm detected in your area. Stay indoors and avoid open areas.", "thunderstorm")
	}
	if w.WindSpeed > 15 {
		add("medium", "High Wind Warning",
			fmt.Sprintf("Strong winds detected (%d m/s). Be cautious when driving or walking.", int(math.Round(w.WindSpeed))), "wind")
	}
	if w.Visibility < 1000 {
		add("medium", "Low Visibility Warning",
			"Poor visibility conditions. Drive carefully and use headlights.", "eye-off")
	}
	if w.Temperature < 0 {
		add("medium", "Freezing Temperature Alert",
			"Freezing temperatures detected. Watch for icy conditions on roads and sidewalks.", "snow")
	}
	if w.Temperature > 35 {
		add("medium", "Heat Warning",
			"Extreme heat detected. Stay hydrated and avoid prolonged sun exposure.", "sunny")
	}
	if w.Weather.Main == "Rain" || w.Weather.Main == "Drizzle" {
		add("low", "Rain Alert",
			"Rain is currently falling. Consider carrying an umbrella and drive carefully.", "rainy")
	}
	if w.Humidity > 80 {
		add("low", "High Humidity",
			"High humidity detected. Stay hydrated and be aware of heat stress.", "water")
	}
	if w.Pressure < 1000 {
		add("medium", "Low Pressure System",
			"Low atmospheric pressure detected. Weather conditions may change rapidly.", "cloudy")
	}

	return alerts
}

func (ws *WeatherService) GetWeatherForecast(ctx context.Context, lat, lon float64) ([]models.ForecastEntry, error) {
	var payload owmForecastResponse
	if err := ws.fetch(ctx, "/forecast", lat, lon, &payload); err != nil {
		return nil, utils.NewExternalServiceError("Failed to fetch weather forecast", err)
	}

	items := payload.List
	if len(items) > forecastEntryCount {
		items = items[:forecastEntryCount]
	}

	forecast := make([]models.ForecastEntry, 0, len(items))
	for _, item := range items {
		var condition models.WeatherCondition
		if len(item.Weather) > 0 {
			condition = item.Weather[0]
		}
		forecast = append(forecast, models.ForecastEntry{
			Timestamp:     time.Unix(item.Dt, 0),
			Temperature:   item.Main.Temp,
			Weather:       condition,
			WindSpeed:     item.Wind.Speed,
			Humidity:      item.Main.Humidity,
			Precipitation: item.Rain["3h"],
		})
	}

	return forecast, nil
}

// GetSafetyReport fetches current conditions and alerts concurrently, then
// folds them into a score. Either fetch failing fails the report.
func (ws *WeatherService) GetSafetyReport(ctx context.Context, lat, lon float64) (*models.SafetyReport, error) {
	var (
		wg         sync.WaitGroup
		current    *models.WeatherRecord
		alerts     []models.WeatherAlert
		currentErr error
		alertsErr  error
	)

	wg.Add(2)
	go func() {
		defer wg.Done()
		current, currentErr = ws.GetCurrentWeather(ctx, lat, lon)
	}()
	go func() {
		defer wg.Done()
		alerts, alertsErr = ws.GetWeatherAlerts(ctx, lat, lon)
	}()
	wg.Wait()

	if currentErr != nil {
		return nil, currentErr
	}
	if alertsErr != nil {
		return nil, alertsErr
	}

	return &models.SafetyReport{
		CurrentWeather: *current,
		Alerts:         alerts,
		// Forecast is left out of the report on the free API tier.
		Forecast:        []models.ForecastEntry{},
		SafetyScore:     CalculateSafetyScore(current, alerts),
		Recommendations: SafetyRecommendations(current),
		LastUpdated:     time.Now(),
	}, nil
}

// CalculateSafetyScore scores conditions from 0 to 100, higher is safer.
// Severity deductions apply once per severity present, not per alert, and
// the raw-condition deductions stack on top of them.
func CalculateSafetyScore(w *models.WeatherRecord, alerts []models.WeatherAlert) int {
	score := 100

	severities := map[string]bool{}
	for _, alert := range alerts {
		severities[alert.Severity] = true
	}
	if severities["high"] {
		score -= 30
	}
	if severities["medium"] {
		score -= 15
	}
	if severities["low"] {
		score -= 5
	}

	if w.Visibility < 1000 {
		score -= 10
	}
	if w.WindSpeed > 15 {
		score -= 10
	}
	if w.Temperature < 0 || w.Temperature > 35 {
		score -= 15
	}

	if score < 0 {
		score = 0
	}
	return score
}

// SafetyRecommendations returns the advisory lines matching the current
// conditions, three per triggered rule, in rule order.
func SafetyRecommendations(w *models.WeatherRecord) []string {
	recommendations := []string{}

	if w.Weather.Main == "Thunderstorm" {
		recommendations = append(recommendations,
			"Stay indoors and avoid open areas",
			"Avoid using electronic devices connected to power",
			"Stay away from windows and doors")
	}
	if w.WindSpeed > 15 {
		recommendations = append(recommendations,
			"Be cautious when driving, especially on highways",
			"Avoid walking near trees or tall structures",
			"Secure loose objects outdoors")
	}
	if w.Visibility < 1000 {
		recommendations = append(recommendations,
			"Use headlights and fog lights when driving",
			"Reduce speed and increase following distance",
			"Avoid unnecessary travel if possible")
	}
	if w.Temperature < 0 {
		recommendations = append(recommendations,
			"Watch for black ice on roads and sidewalks",
			"Dress warmly and cover exposed skin",
			"Check tire pressure and battery condition")
	}
	if w.Temperature > 35 {
		recommendations = append(recommendations,
			"Stay hydrated and drink plenty of water",
			"Avoid outdoor activities during peak heat hours",
			"Wear light-colored, loose-fitting clothing")
	}

	return recommendations
}

func (ws *WeatherService) fetch(ctx context.Context, path string, lat, lon float64, out interface{}) error {
	query := url.Values{}
	query.Set("lat", fmt.Sprintf("%g", lat))
	query.Set("lon", fmt.Sprintf("%g", lon))
	query.Set("appid", ws.apiKey)
	query.Set("units", "metric")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, ws.baseURL+path+"?"+query.Encode(), nil)
	if err != nil {
		return err
	}

	resp, err := ws.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("weather provider returned status %d", resp.StatusCode)
	}

	return json.NewDecoder(resp.Body).Decode(out)
}
