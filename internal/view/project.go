package view

import (
	"fmt"
	"math"
	"time"

	"github.com/pmoraes-dev/weatherdash/internal/weather"
)

// ChartWindowHours bounds the chart to a prefix of the hourly series: five
// days of hourly points, matching the horizon the forecast cards cover.
const ChartWindowHours = 5 * 24

// forecastDays is how many future days the card row shows. Index 0 of the
// daily sequence is today and is always excluded.
const forecastDays = 5

// missingTime is shown when the provider omitted sunrise or sunset.
const missingTime = "--:--"

// CurrentSummary is the render-ready view of the current conditions.
type CurrentSummary struct {
	CityLabel    string  `json:"cityLabel"`
	TemperatureC int     `json:"temperatureC"`
	Icon         string  `json:"icon"`
	Description  string  `json:"description"`
	HumidityPct  int     `json:"humidityPct"`
	WindKph      float64 `json:"windKph"`
	DayLabel     string  `json:"dayLabel"`
}

// DayCard is one card of the 5-day forecast row.
type DayCard struct {
	Weekday     string `json:"weekday"`
	DateLabel   string `json:"dateLabel"`
	TempMaxC    int    `json:"tempMaxC"`
	TempMinC    int    `json:"tempMinC"`
	Icon        string `json:"icon"`
	Description string `json:"description"`
}

// ChartSeries holds equal-length label and value sequences for the chart.
type ChartSeries struct {
	Metric ChartMetric `json:"metric"`
	Labels []string    `json:"labels"`
	Values []float64   `json:"values"`
}

// SunMoon is the sun/moon summary strip for today.
type SunMoon struct {
	SunriseLabel   string `json:"sunriseLabel"`
	SunsetLabel    string `json:"sunsetLabel"`
	MoonPhaseLabel string `json:"moonPhaseLabel"`
}

// Dashboard aggregates every render slice the page needs. The render
// collaborator consumes it whole; how it draws is its own business.
type Dashboard struct {
	Current       CurrentSummary `json:"current"`
	Forecast      []DayCard      `json:"forecast"`
	Chart         ChartSeries    `json:"chart"`
	SunMoon       SunMoon        `json:"sunMoon"`
	Theme         Theme          `json:"theme"`
	SeasonTag     string         `json:"seasonTag,omitempty"`
	SeasonSummary string         `json:"seasonSummary,omitempty"`
}

// ProjectCurrent derives the current-conditions summary. Temperature rounds
// to the nearest integer.
func ProjectCurrent(snap weather.ForecastSnapshot) CurrentSummary {
	cur := snap.Current

	dayLabel := "Night"
	if cur.IsDay {
		dayLabel = "Day"
	}

	return CurrentSummary{
		CityLabel:    snap.CityLabel,
		TemperatureC: int(math.Round(cur.TemperatureC)),
		Icon:         weather.IconClass(cur.WeatherCode, cur.IsDay),
		Description:  weather.Describe(cur.WeatherCode),
		HumidityPct:  cur.HumidityPct,
		WindKph:      cur.WindKph,
		DayLabel:     dayLabel,
	}
}

// ProjectCards derives the forecast cards from daily indices 1..5, skipping
// today. A shorter daily sequence yields fewer cards, never a panic.
func ProjectCards(snap weather.ForecastSnapshot) []DayCard {
	cards := make([]DayCard, 0, forecastDays)
	for i := 1; i <= forecastDays && i < len(snap.Daily); i++ {
		d := snap.Daily[i]
		cards = append(cards, DayCard{
			Weekday:     d.Date.Format("Mon"),
			DateLabel:   fmt.Sprintf("%d/%d", d.Date.Day(), int(d.Date.Month())),
			TempMaxC:    int(math.Round(d.TempMaxC)),
			TempMinC:    int(math.Round(d.TempMinC)),
			Icon:        weather.IconClass(d.WeatherCode, true),
			Description: weather.Describe(d.WeatherCode),
		})
	}
	return cards
}

// ProjectChart derives the chart series for the selected metric, windowed to
// a bounded prefix of the hourly sequence. A window of zero or less falls
// back to ChartWindowHours. Switching metrics changes only the values, so the
// chart can be re-rendered from the cache without another fetch.
func ProjectChart(snap weather.ForecastSnapshot, metric ChartMetric, window int) ChartSeries {
	if window <= 0 {
		window = ChartWindowHours
	}
	n := len(snap.Hourly)
	if n > window {
		n = window
	}

	labels := make([]string, 0, n)
	values := make([]float64, 0, n)
	for _, p := range snap.Hourly[:n] {
		labels = append(labels, fmt.Sprintf("%s %dh", p.Time.Format("Mon"), p.Time.Hour()))
		if metric == MetricHumidity {
			values = append(values, p.HumidityPct)
		} else {
			values = append(values, p.TemperatureC)
		}
	}

	return ChartSeries{Metric: metric, Labels: labels, Values: values}
}

// ProjectSunMoon derives today's sunrise/sunset strings and moon-phase label.
// Missing sunrise or sunset shows a placeholder; a missing moon phase is
// reported as unknown rather than silently defaulting to a new moon.
func ProjectSunMoon(snap weather.ForecastSnapshot) SunMoon {
	out := SunMoon{
		SunriseLabel:   missingTime,
		SunsetLabel:    missingTime,
		MoonPhaseLabel: "Unknown",
	}
	if len(snap.Daily) == 0 {
		return out
	}

	today := snap.Daily[0]
	if today.Sunrise != nil {
		out.SunriseLabel = today.Sunrise.Format("15:04")
	}
	if today.Sunset != nil {
		out.SunsetLabel = today.Sunset.Format("15:04")
	}
	if today.MoonPhase != nil {
		out.MoonPhaseLabel = weather.MoonPhaseLabel(*today.MoonPhase)
	}
	return out
}

// ProjectDashboard derives the full dashboard from a snapshot and the active
// display selection. Pure and deterministic for a fixed now.
func ProjectDashboard(snap weather.ForecastSnapshot, sel Selection, now time.Time, h Hemisphere, chartWindow int) Dashboard {
	d := Dashboard{
		Current:  ProjectCurrent(snap),
		Forecast: ProjectCards(snap),
		Chart:    ProjectChart(snap, sel.Metric, chartWindow),
		SunMoon:  ProjectSunMoon(snap),
		Theme:    sel.Theme,
	}

	if sel.SeasonalMode {
		season := seasonFor(now.Month(), h)
		d.SeasonTag = SeasonTag(now, snap.Current.IsDay, h)
		d.SeasonSummary = seasonSummary(season, snap.Current.TemperatureC, snap.Current.IsDay)
	}

	return d
}
