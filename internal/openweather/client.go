package openweather

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"golang.org/x/time/rate"

	"vane/internal/weather"
)

const DefaultBaseURL = "https://api.openweathermap.org/data/2.5"

// ErrCityNotFound marks an upstream 404 for the queried city.
var ErrCityNotFound = errors.New("city not found")

// StatusError is any other non-2xx upstream response.
type StatusError struct {
	Code   int
	Status string // e.g. "503 Service Unavailable"
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("openweather: unexpected status %s", e.Status)
}

type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	limiter    *rate.Limiter
}

// NewClient builds a client for the OpenWeatherMap current-weather API.
// The limiter keeps rapid-fire queries inside the free tier (60 calls/min).
func NewClient(baseURL, apiKey string) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		baseURL: baseURL,
		apiKey:  apiKey,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
		limiter: rate.NewLimiter(1, 3),
	}
}

type currentResponse struct {
	Name string `json:"name"`
	Sys  struct {
		Country string `json:"country"`
	} `json:"sys"`
	Weather []struct {
		ID          int    `json:"id"`
		Main        string `json:"main"`
		Description string `json:"description"`
	} `json:"weather"`
	Main struct {
		Temp      float64 `json:"temp"`
		FeelsLike float64 `json:"feels_like"`
		Humidity  int     `json:"humidity"`
	} `json:"main"`
	Wind struct {
		Speed float64 `json:"speed"`
	} `json:"wind"`
	Dt       int64 `json:"dt"`
	Timezone int   `json:"timezone"`
}

// CurrentByCity fetches current conditions for a city name as given, in the
// requested unit system.
func (c *Client) CurrentByCity(ctx context.Context, city string, units weather.Units) (weather.Report, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return weather.Report{}, fmt.Errorf("rate limit wait: %w", err)
	}

	params := url.Values{
		"q":     {city},
		"units": {string(units)},
		"appid": {c.apiKey},
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/weather?"+params.Encode(), nil)
	if err != nil {
		return weather.Report{}, fmt.Errorf("build request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return weather.Report{}, fmt.Errorf("fetch current weather: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return weather.Report{}, fmt.Errorf("%q: %w", city, ErrCityNotFound)
	}
	if resp.StatusCode != http.StatusOK {
		return weather.Report{}, &StatusError{Code: resp.StatusCode, Status: resp.Status}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return weather.Report{}, fmt.Errorf("read response: %w", err)
	}

	return parseCurrent(body, units)
}

func parseCurrent(body []byte, units weather.Units) (weather.Report, error) {
	var raw currentResponse
	if err := json.Unmarshal(body, &raw); err != nil {
		return weather.Report{}, fmt.Errorf("parse current weather: %w", err)
	}
	if len(raw.Weather) == 0 {
		return weather.Report{}, fmt.Errorf("parse current weather: payload has no condition entry")
	}

	return weather.Report{
		Name:             raw.Name,
		Country:          raw.Sys.Country,
		Condition:        raw.Weather[0].Main,
		Description:      raw.Weather[0].Description,
		ConditionID:      raw.Weather[0].ID,
		Temperature:      raw.Main.Temp,
		FeelsLike:        raw.Main.FeelsLike,
		Humidity:         raw.Main.Humidity,
		WindSpeed:        raw.Wind.Speed,
		ObservedAt:       time.Unix(raw.Dt, 0).UTC(),
		UTCOffsetSeconds: raw.Timezone,
		Units:            units,
	}, nil
}
