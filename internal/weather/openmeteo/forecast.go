package openmeteo

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"net/http"
	"net/url"
	"strconv"
	"sync"
	"time"

	"github.com/sony/gobreaker"

	"github.com/pmoraes-dev/weatherdash/internal/weather"
)

// Open-Meteo returns times in the location's own timezone without an offset.
const (
	isoDate     = "2006-01-02"
	isoDateTime = "2006-01-02T15:04"
)

// ForecastClient retrieves current, hourly, and daily data from Open-Meteo
// and normalizes it into a weather.ForecastSnapshot. The weather payload and
// the moon-phase payload come from two separate requests issued concurrently;
// both must succeed or the fetch fails as a whole.
type ForecastClient struct {
	baseURL string
	httpCfg httpConfig
	circuit *gobreaker.CircuitBreaker
}

// NewForecastClient creates a forecast client on the shared HTTP client.
func NewForecastClient(client *http.Client) *ForecastClient {
	return &ForecastClient{
		baseURL: forecastBaseURL,
		httpCfg: httpConfig{
			client:  client,
			limiter: newLimiter(),
		},
		circuit: newBreaker("openmeteo-forecast"),
	}
}

type forecastPayload struct {
	Current struct {
		Temperature float64 `json:"temperature_2m"`
		Humidity    float64 `json:"relative_humidity_2m"`
		WeatherCode int     `json:"weather_code"`
		IsDay       int     `json:"is_day"`
		WindSpeed   float64 `json:"wind_speed_10m"`
	} `json:"current"`
	Hourly struct {
		Time        []string  `json:"time"`
		Temperature []float64 `json:"temperature_2m"`
		Humidity    []float64 `json:"relative_humidity_2m"`
	} `json:"hourly"`
	Daily struct {
		Time        []string  `json:"time"`
		WeatherCode []int     `json:"weather_code"`
		TempMax     []float64 `json:"temperature_2m_max"`
		TempMin     []float64 `json:"temperature_2m_min"`
		Sunrise     []string  `json:"sunrise"`
		Sunset      []string  `json:"sunset"`
		UVIndexMax  []float64 `json:"uv_index_max"`
		PrecipSum   []float64 `json:"precipitation_sum"`
	} `json:"daily"`
}

type moonPayload struct {
	Daily struct {
		Time      []string  `json:"time"`
		MoonPhase []float64 `json:"moon_phase"`
	} `json:"daily"`
}

// Fetch retrieves and normalizes the full snapshot for the given coordinates.
// The caller labels the snapshot with the resolved city name.
func (c *ForecastClient) Fetch(ctx context.Context, coords weather.Coordinates) (weather.ForecastSnapshot, error) {
	var (
		wg         sync.WaitGroup
		fc         forecastPayload
		mp         moonPayload
		fErr, mErr error
	)

	wg.Add(2)
	go func() {
		defer wg.Done()
		fErr = c.getJSON(ctx, c.forecastURL(coords), &fc)
	}()
	go func() {
		defer wg.Done()
		mErr = c.getJSON(ctx, c.moonURL(coords), &mp)
	}()
	wg.Wait()

	if fErr != nil {
		return weather.ForecastSnapshot{}, fErr
	}
	if mErr != nil {
		return weather.ForecastSnapshot{}, mErr
	}

	return normalize(fc, mp), nil
}

func (c *ForecastClient) getJSON(ctx context.Context, u string, out interface{}) error {
	req, err := http.NewRequest(http.MethodGet, u, nil)
	if err != nil {
		return err
	}

	resp, err := doRequest(ctx, c.httpCfg, c.circuit, req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: decoding response: %v", weather.ErrTransport, err)
	}
	return nil
}

func (c *ForecastClient) forecastURL(coords weather.Coordinates) string {
	values := url.Values{}
	values.Set("latitude", formatCoord(coords.Latitude))
	values.Set("longitude", formatCoord(coords.Longitude))
	values.Set("current", "temperature_2m,relative_humidity_2m,weather_code,is_day,wind_speed_10m")
	values.Set("hourly", "temperature_2m,relative_humidity_2m")
	values.Set("daily", "weather_code,temperature_2m_max,temperature_2m_min,sunrise,sunset,uv_index_max,precipitation_sum")
	values.Set("timezone", "auto")
	values.Set("forecast_days", "7")
	values.Set("models", "gfs_seamless")
	return c.baseURL + "?" + values.Encode()
}

func (c *ForecastClient) moonURL(coords weather.Coordinates) string {
	values := url.Values{}
	values.Set("latitude", formatCoord(coords.Latitude))
	values.Set("longitude", formatCoord(coords.Longitude))
	values.Set("daily", "moon_phase")
	values.Set("timezone", "auto")
	values.Set("forecast_days", "7")
	return c.baseURL + "?" + values.Encode()
}

func formatCoord(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// normalize flattens the provider's parallel arrays into ordered entries.
// The shortest parallel array bounds the output, so a truncated payload never
// indexes out of range; short days are omitted, not zero-filled.
func normalize(fc forecastPayload, mp moonPayload) weather.ForecastSnapshot {
	snap := weather.ForecastSnapshot{
		Current: weather.CurrentConditions{
			TemperatureC: fc.Current.Temperature,
			HumidityPct:  int(math.Round(fc.Current.Humidity)),
			WindKph:      fc.Current.WindSpeed,
			WeatherCode:  fc.Current.WeatherCode,
			IsDay:        fc.Current.IsDay == 1,
		},
		FetchedAt: time.Now().UTC(),
	}

	days := minLen(len(fc.Daily.Time), len(fc.Daily.WeatherCode), len(fc.Daily.TempMax), len(fc.Daily.TempMin))
	for i := 0; i < days; i++ {
		date, err := time.Parse(isoDate, fc.Daily.Time[i])
		if err != nil {
			continue
		}

		entry := weather.DailyEntry{
			Date:        date,
			WeatherCode: fc.Daily.WeatherCode[i],
			TempMaxC:    fc.Daily.TempMax[i],
			TempMinC:    fc.Daily.TempMin[i],
		}

		if i < len(fc.Daily.Sunrise) {
			if ts, err := time.Parse(isoDateTime, fc.Daily.Sunrise[i]); err == nil {
				entry.Sunrise = &ts
			}
		}
		if i < len(fc.Daily.Sunset) {
			if ts, err := time.Parse(isoDateTime, fc.Daily.Sunset[i]); err == nil {
				entry.Sunset = &ts
			}
		}
		if i < len(fc.Daily.UVIndexMax) {
			uv := fc.Daily.UVIndexMax[i]
			entry.UVIndexMax = &uv
		}
		if i < len(fc.Daily.PrecipSum) {
			precip := fc.Daily.PrecipSum[i]
			entry.PrecipitationMm = &precip
		}
		if i < len(mp.Daily.MoonPhase) {
			phase := mp.Daily.MoonPhase[i]
			entry.MoonPhase = &phase
		}

		snap.Daily = append(snap.Daily, entry)
	}

	hours := minLen(len(fc.Hourly.Time), len(fc.Hourly.Temperature), len(fc.Hourly.Humidity))
	for i := 0; i < hours; i++ {
		ts, err := time.Parse(isoDateTime, fc.Hourly.Time[i])
		if err != nil {
			continue
		}
		snap.Hourly = append(snap.Hourly, weather.HourlyPoint{
			Time:         ts,
			TemperatureC: fc.Hourly.Temperature[i],
			HumidityPct:  fc.Hourly.Humidity[i],
		})
	}

	return snap
}

func minLen(first int, rest ...int) int {
	n := first
	for _, v := range rest {
		if v < n {
			n = v
		}
	}
	return n
}
