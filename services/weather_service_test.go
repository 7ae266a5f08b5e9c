package services

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"roamsafe/config"
	"roamsafe/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func weatherRecord() *models.WeatherRecord {
	return &models.WeatherRecord{
		Temperature: 20,
		FeelsLike:   20,
		Humidity:    50,
		Pressure:    1013,
		Visibility:  10000,
		WindSpeed:   5,
		Weather:     models.WeatherCondition{ID: 800, Main: "Clear", Description: "clear sky", Icon: "01d"},
		Timestamp:   time.Now(),
	}
}

func newTestWeatherService(t *testing.T, handler http.HandlerFunc) (*WeatherService, *httptest.Server) {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	svc := NewWeatherService(&config.Config{
		WeatherAPIKey:  "test-key",
		WeatherBaseURL: server.URL,
	})
	return svc, server
}

const currentWeatherBody = `{
	"main": {"temp": 22.5, "feels_like": 21.8, "humidity": 60, "pressure": 1015},
	"visibility": 10000,
	"wind": {"speed": 4.2, "deg": 180},
	"weather": [{"id": 800, "main": "Clear", "description": "clear sky", "icon": "01d"}],
	"clouds": {"all": 10}
}`

func TestWeatherService_GetCurrentWeather(t *testing.T) {
	ctx := context.Background()

	t.Run("maps provider fields", func(t *testing.T) {
		svc, _ := newTestWeatherService(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/weather", r.URL.Path)
			assert.Equal(t, "test-key", r.URL.Query().Get("appid"))
			assert.Equal(t, "metric", r.URL.Query().Get("units"))
			assert.Equal(t, "37.7749", r.URL.Query().Get("lat"))

			fmt.Fprint(w, currentWeatherBody)
		})

		record, err := svc.GetCurrentWeather(ctx, 37.7749, -122.4194)
		require.NoError(t, err)

		assert.Equal(t, 22.5, record.Temperature)
		assert.Equal(t, 21.8, record.FeelsLike)
		assert.Equal(t, 60, record.Humidity)
		assert.Equal(t, 1015, record.Pressure)
		assert.Equal(t, 10000, record.Visibility)
		assert.Equal(t, 4.2, record.WindSpeed)
		assert.Equal(t, 180, record.WindDirection)
		assert.Equal(t, "Clear", record.Weather.Main)
		assert.Equal(t, 10, record.Clouds)
		assert.False(t, record.Timestamp.IsZero())
	})

	t.Run("provider failure surfaces as external error", func(t *testing.T) {
		svc, _ := newTestWeatherService(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
		})

		_, err := svc.GetCurrentWeather(ctx, 37.7749, -122.4194)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "EXTERNAL_SERVICE_ERROR")
	})
}

func TestBuildAlerts(t *testing.T) {
	t.Run("calm conditions yield no alerts", func(t *testing.T) {
		assert.Empty(t, BuildAlerts(weatherRecord()))
	})

	t.Run("thunderstorm is a high alert", func(t *testing.T) {
		w := weatherRecord()
		w.Weather.Main = "Thunderstorm"

		alerts := BuildAlerts(w)
		require.Len(t, alerts, 1)
		assert.Equal(t, "high", alerts[0].Severity)
		assert.Equal(t, "Thunderstorm Warning", alerts[0].Title)
		assert.Equal(t, "thunderstorm", alerts[0].Icon)
	})

	t.Run("wind message carries rounded speed", func(t *testing.T) {
		w := weatherRecord()
		w.WindSpeed = 17.6

		alerts := BuildAlerts(w)
		require.Len(t, alerts, 1)
		assert.Equal(t, "High Wind Warning", alerts[0].Title)
		assert.Contains(t, alerts[0].Message, "(18 m/s)")
	})

	t.Run("rule order is fixed", func(t *testing.T) {
		w := weatherRecord()
		w.Weather.Main = "Thunderstorm"
		w.WindSpeed = 20
		w.Visibility = 500
		w.Temperature = -5
		w.Humidity = 90
		w.Pressure = 990

		alerts := BuildAlerts(w)
		titles := make([]string, len(alerts))
		for i, alert := range alerts {
			titles[i] = alert.Title
		}

		assert.Equal(t, []string{
			"Thunderstorm Warning",
			"High Wind Warning",
			"Low Visibility Warning",
			"Freezing Temperature Alert",
			"High Humidity",
			"Low Pressure System",
		}, titles)
	})

	t.Run("drizzle triggers the rain alert", func(t *testing.T) {
		w := weatherRecord()
		w.Weather.Main = "Drizzle"

		alerts := BuildAlerts(w)
		require.Len(t, alerts, 1)
		assert.Equal(t, "Rain Alert", alerts[0].Title)
		assert.Equal(t, "low", alerts[0].Severity)
	})

	t.Run("heat warning above 35", func(t *testing.T) {
		w := weatherRecord()
		w.Temperature = 36

		alerts := BuildAlerts(w)
		require.Len(t, alerts, 1)
		assert.Equal(t, "Heat Warning", alerts[0].Title)
	})
}

func TestCalculateSafetyScore(t *testing.T) {
	t.Run("calm conditions score 100", func(t *testing.T) {
		w := weatherRecord()
		assert.Equal(t, 100, CalculateSafetyScore(w, BuildAlerts(w)))
	})

	t.Run("severity deductions apply once per level", func(t *testing.T) {
		// Freezing and low visibility are both medium alerts, but the
		// medium deduction applies once.
		w := weatherRecord()
		w.Temperature = -5
		w.Visibility = 500

		// 100 - 15 (medium) - 10 (visibility) - 15 (temperature) = 60
		assert.Equal(t, 60, CalculateSafetyScore(w, BuildAlerts(w)))
	})

	t.Run("thunderstorm with wind", func(t *testing.T) {
		w := weatherRecord()
		w.Weather.Main = "Thunderstorm"
		w.WindSpeed = 20

		// 100 - 30 (high) - 15 (medium) - 10 (wind) = 45
		assert.Equal(t, 45, CalculateSafetyScore(w, BuildAlerts(w)))
	})

	t.Run("worst case keeps every deduction", func(t *testing.T) {
		w := weatherRecord()
		w.Weather.Main = "Thunderstorm"
		w.WindSpeed = 25
		w.Visibility = 100
		w.Temperature = -10
		w.Humidity = 95
		w.Pressure = 980

		// 100 - 30 - 15 - 5 - 10 - 10 - 15 = 15
		assert.Equal(t, 15, CalculateSafetyScore(w, BuildAlerts(w)))
	})

	t.Run("never goes below zero", func(t *testing.T) {
		w := weatherRecord()
		w.Visibility = 100
		w.WindSpeed = 25
		w.Temperature = -10

		// Synthetic duplicate severities cannot push the score negative.
		alerts := []models.WeatherAlert{
			{Severity: "high"}, {Severity: "high"},
			{Severity: "medium"}, {Severity: "low"},
		}
		score := CalculateSafetyScore(w, alerts)
		assert.GreaterOrEqual(t, score, 0)
		assert.Equal(t, 15, score)
	})
}

func TestSafetyRecommendations(t *testing.T) {
	t.Run("three lines per triggered rule", func(t *testing.T) {
		w := weatherRecord()
		w.Weather.Main = "Thunderstorm"
		w.WindSpeed = 20

		recs := SafetyRecommendations(w)
		require.Len(t, recs, 6)
		assert.Equal(t, "Stay indoors and avoid open areas", recs[0])
		assert.Equal(t, "Be cautious when driving, especially on highways", recs[3])
	})

	t.Run("calm conditions have none", func(t *testing.T) {
		assert.Empty(t, SafetyRecommendations(weatherRecord()))
	})
}

func TestWeatherService_GetWeatherForecast(t *testing.T) {
	ctx := context.Background()

	buildForecastBody := func(entries int) string {
		body := `{"list":[`
		for i := 0; i < entries; i++ {
			if i > 0 {
				body += ","
			}
			body += fmt.Sprintf(`{
				"dt": %d,
				"main": {"temp": 18.5, "humidity": 70},
				"weather": [{"id": 500, "main": "Rain", "description": "light rain", "icon": "10d"}],
				"wind": {"speed": 3.5},
				"rain": {"3h": 0.8}
			}`, 1700000000+i*10800)
		}
		return body + `]}`
	}

	t.Run("caps at eight entries", func(t *testing.T) {
		svc, _ := newTestWeatherService(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/forecast", r.URL.Path)
			fmt.Fprint(w, buildForecastBody(12))
		})

		forecast, err := svc.GetWeatherForecast(ctx, 37.7749, -122.4194)
		require.NoError(t, err)
		require.Len(t, forecast, 8)

		assert.Equal(t, 18.5, forecast[0].Temperature)
		assert.Equal(t, 0.8, forecast[0].Precipitation)
		assert.Equal(t, "Rain", forecast[0].Weather.Main)
		assert.Equal(t, time.Unix(1700000000, 0), forecast[0].Timestamp)
	})

	t.Run("missing rain block means zero precipitation", func(t *testing.T) {
		svc, _ := newTestWeatherService(t, func(w http.ResponseWriter, r *http.Request) {
			fmt.Fprint(w, `{"list":[{"dt": 1700000000, "main": {"temp": 20, "humidity": 40},
				"weather": [{"id": 800, "main": "Clear", "description": "clear sky", "icon": "01d"}],
				"wind": {"speed": 2}}]}`)
		})

		forecast, err := svc.GetWeatherForecast(ctx, 37.7749, -122.4194)
		require.NoError(t, err)
		require.Len(t, forecast, 1)
		assert.Equal(t, 0.0, forecast[0].Precipitation)
	})
}

func TestWeatherService_GetSafetyReport(t *testing.T) {
	ctx := context.Background()

	t.Run("combines conditions and alerts", func(t *testing.T) {
		svc, _ := newTestWeatherService(t, func(w http.ResponseWriter, r *http.Request) {
			fmt.Fprint(w, `{
				"main": {"temp": -5, "feels_like": -9, "humidity": 60, "pressure": 1015},
				"visibility": 500,
				"wind": {"speed": 4, "deg": 90},
				"weather": [{"id": 600, "main": "Snow", "description": "snow", "icon": "13d"}],
				"clouds": {"all": 90}
			}`)
		})

		report, err := svc.GetSafetyReport(ctx, 37.7749, -122.4194)
		require.NoError(t, err)

		assert.Equal(t, -5.0, report.CurrentWeather.Temperature)
		assert.Len(t, report.Alerts, 2)
		assert.Equal(t, 60, report.SafetyScore)
		assert.NotEmpty(t, report.Recommendations)
		assert.NotNil(t, report.Forecast)
		assert.Empty(t, report.Forecast)
		assert.False(t, report.LastUpdated.IsZero())
	})

	t.Run("fails when provider fails", func(t *testing.T) {
		svc, _ := newTestWeatherService(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		})

		_, err := svc.GetSafetyReport(ctx, 37.7749, -122.4194)
		require.Error(t, err)
	})
}
