package weather

import (
	"time"
)

// Coordinates identifies a point on the globe.
type Coordinates struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// GeocodeResult is the best match for a free-text city lookup.
type GeocodeResult struct {
	DisplayName string `json:"displayName"`
	Country     string `json:"country,omitempty"`
	Coordinates Coordinates
}

// CurrentConditions holds the observed weather at the snapshot location.
type CurrentConditions struct {
	TemperatureC float64 `json:"temperatureC"`
	HumidityPct  int     `json:"humidityPct"`
	WindKph      float64 `json:"windKph"`
	WeatherCode  int     `json:"weatherCode"`
	IsDay        bool    `json:"isDay"`
}

// DailyEntry is one day of the forecast. Entry 0 is always "today".
// Sunrise, sunset, moon phase, and the extra daily aggregates are optional;
// nil means the provider omitted them.
type DailyEntry struct {
	Date            time.Time  `json:"date"`
	WeatherCode     int        `json:"weatherCode"`
	TempMaxC        float64    `json:"tempMaxC"`
	TempMinC        float64    `json:"tempMinC"`
	Sunrise         *time.Time `json:"sunrise,omitempty"`
	Sunset          *time.Time `json:"sunset,omitempty"`
	MoonPhase       *float64   `json:"moonPhase,omitempty"`
	UVIndexMax      *float64   `json:"uvIndexMax,omitempty"`
	PrecipitationMm *float64   `json:"precipitationMm,omitempty"`
}

// HourlyPoint is one point of the hourly temperature/humidity series.
type HourlyPoint struct {
	Time         time.Time `json:"time"`
	TemperatureC float64   `json:"temperatureC"`
	HumidityPct  float64   `json:"humidityPct"`
}

// ForecastSnapshot is the full fetched state for one location. It is replaced
// atomically in the cache on every successful fetch; a failed fetch never
// produces a partial snapshot.
type ForecastSnapshot struct {
	Current   CurrentConditions `json:"current"`
	Daily     []DailyEntry      `json:"daily"`
	Hourly    []HourlyPoint     `json:"hourly"`
	CityLabel string            `json:"cityLabel"`
	FetchedAt time.Time         `json:"fetchedAt"`
}
