package models

import "time"

// WeatherRecord is the normalized view of a provider observation.
type WeatherRecord struct {
	Temperature   float64          `json:"temperature"`
	FeelsLike     float64          `json:"feelsLike"`
	Humidity      int              `json:"humidity"`
	Pressure      int              `json:"pressure"`
	Visibility    int              `json:"visibility"`
	WindSpeed     float64          `json:"windSpeed"`
	WindDirection int              `json:"windDirection"`
	Weather       WeatherCondition `json:"weather"`
	Clouds        int              `json:"clouds"`
	Timestamp     time.Time        `json:"timestamp"`
}

type WeatherCondition struct {
	ID          int    `json:"id"`
	Main        string `json:"main"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
}

type WeatherAlert struct {
	Type      string    `json:"type"` // always "weather_alert"
	Severity  string    `json:"severity"`
	Title     string    `json:"title"`
	Message   string    `json:"message"`
	Icon      string    `json:"icon"`
	Timestamp time.Time `json:"timestamp"`
}

type ForecastEntry struct {
	Timestamp     time.Time        `json:"timestamp"`
	Temperature   float64          `json:"temperature"`
	Weather       WeatherCondition `json:"weather"`
	WindSpeed     float64          `json:"windSpeed"`
	Humidity      int              `json:"humidity"`
	Precipitation float64          `json:"precipitation"`
}

// SafetyReport combines current conditions, derived alerts and the 0-100
// safety score.
type SafetyReport struct {
	CurrentWeather  WeatherRecord   `json:"currentWeather"`
	Alerts          []WeatherAlert  `json:"alerts"`
	Forecast        []ForecastEntry `json:"forecast"`
	SafetyScore     int             `json:"safetyScore"`
	Recommendations []string        `json:"recommendations"`
	LastUpdated     time.Time       `json:"lastUpdated"`
}

// CurrentWeatherResponse is WeatherRecord plus the advisory catalog matches,
// as returned by GET /weather/current.
type CurrentWeatherResponse struct {
	WeatherRecord
	SafetyRecommendations []string `json:"safetyRecommendations"`
}
