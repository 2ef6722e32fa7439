package weather

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"math/rand"
	"net/http"

	"tableside/recommend-svc/internal/domain"
)

type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// Client fetches current weather from an open-meteo compatible endpoint.
// When the provider is unreachable it degrades to a randomized guess so
// recommendations never disappear with the network.
type Client struct {
	BaseURL   string
	Latitude  float64
	Longitude float64
	HTTP      HTTPClient
}

func NewClient(baseURL string, lat, lon float64, httpClient HTTPClient) *Client {
	return &Client{
		BaseURL:   baseURL,
		Latitude:  lat,
		Longitude: lon,
		HTTP:      httpClient,
	}
}

func (c *Client) Current(ctx context.Context) domain.Weather {
	url := fmt.Sprintf("%s/v1/forecast?latitude=%.4f&longitude=%.4f&current_weather=true",
		c.BaseURL, c.Latitude, c.Longitude)

	req, err := http.NewRequestWithContext(ctx, "GET", url, nil)
	if err != nil {
		return fallbackWeather()
	}

	resp, err := c.HTTP.Do(req)
	if err != nil {
		log.Printf("[recommend-svc] weather provider unreachable, using fallback: %v", err)
		return fallbackWeather()
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		log.Printf("[recommend-svc] weather provider returned %d, using fallback", resp.StatusCode)
		return fallbackWeather()
	}

	var payload struct {
		CurrentWeather struct {
			Temperature float64 `json:"temperature"`
			WeatherCode int     `json:"weathercode"`
		} `json:"current_weather"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		log.Printf("[recommend-svc] bad weather payload, using fallback: %v", err)
		return fallbackWeather()
	}

	return domain.Weather{
		Condition:   Classify(payload.CurrentWeather.WeatherCode, payload.CurrentWeather.Temperature),
		Temperature: payload.CurrentWeather.Temperature,
	}
}

// Classify collapses WMO weather codes and temperature into the condition
// buckets the rules understand. Temperature extremes win over sky cover.
func Classify(weatherCode int, temperature float64) domain.WeatherCondition {
	switch {
	case temperature >= 32:
		return domain.WeatherHot
	case temperature <= 12:
		return domain.WeatherCold
	case weatherCode >= 51:
		return domain.WeatherRainy
	case weatherCode >= 2:
		return domain.WeatherCloudy
	default:
		return domain.WeatherSunny
	}
}

var fallbackConditions = []domain.WeatherCondition{
	domain.WeatherSunny,
	domain.WeatherCloudy,
	domain.WeatherRainy,
	domain.WeatherCold,
	domain.WeatherHot,
}

func fallbackWeather() domain.Weather {
	return domain.Weather{
		Condition:   fallbackConditions[rand.Intn(len(fallbackConditions))],
		Temperature: 24,
		Fallback:    true,
	}
}
