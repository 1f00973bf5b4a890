package openmeteo

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"github.com/sony/gobreaker"

	"github.com/pmoraes-dev/weatherdash/internal/weather"
)

// GeocodingClient resolves free-text city names through the Open-Meteo
// geocoding API. Only the single best match is requested; there is no
// disambiguation flow.
type GeocodingClient struct {
	baseURL string
	httpCfg httpConfig
	circuit *gobreaker.CircuitBreaker
}

// NewGeocodingClient creates a geocoding client on the shared HTTP client.
func NewGeocodingClient(client *http.Client) *GeocodingClient {
	return &GeocodingClient{
		baseURL: geocodingBaseURL,
		httpCfg: httpConfig{
			client:  client,
			limiter: newLimiter(),
		},
		circuit: newBreaker("openmeteo-geocoding"),
	}
}

// Resolve looks up the coordinates for a city name. Zero results map to
// weather.ErrCityNotFound; network and status failures to weather.ErrTransport.
// The caller is responsible for rejecting blank input before reaching here.
func (c *GeocodingClient) Resolve(ctx context.Context, name string) (weather.GeocodeResult, error) {
	values := url.Values{}
	values.Set("name", name)
	values.Set("count", "1")
	values.Set("language", "en")
	values.Set("format", "json")

	req, err := http.NewRequest(http.MethodGet, c.baseURL+"?"+values.Encode(), nil)
	if err != nil {
		return weather.GeocodeResult{}, err
	}

	resp, err := doRequest(ctx, c.httpCfg, c.circuit, req)
	if err != nil {
		return weather.GeocodeResult{}, err
	}
	defer resp.Body.Close()

	var payload struct {
		Results []struct {
			Name      string  `json:"name"`
			Country   string  `json:"country"`
			Latitude  float64 `json:"latitude"`
			Longitude float64 `json:"longitude"`
		} `json:"results"`
	}

	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return weather.GeocodeResult{}, fmt.Errorf("%w: decoding response: %v", weather.ErrTransport, err)
	}

	if len(payload.Results) == 0 {
		return weather.GeocodeResult{}, fmt.Errorf("%w: %q", weather.ErrCityNotFound, name)
	}

	best := payload.Results[0]
	display := best.Name
	if best.Country != "" {
		display = fmt.Sprintf("%s, %s", best.Name, best.Country)
	}

	return weather.GeocodeResult{
		DisplayName: display,
		Country:     best.Country,
		Coordinates: weather.Coordinates{
			Latitude:  best.Latitude,
			Longitude: best.Longitude,
		},
	}, nil
}
