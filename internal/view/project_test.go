package view

import (
	"testing"
	"time"

	"github.com/pmoraes-dev/weatherdash/internal/weather"
)

func snapshotWithDays(n int) weather.ForecastSnapshot {
	base := time.Date(2025, time.January, 6, 0, 0, 0, 0, time.UTC)
	snap := weather.ForecastSnapshot{CityLabel: "Porto Alegre, Brazil"}
	for i := 0; i < n; i++ {
		snap.Daily = append(snap.Daily, weather.DailyEntry{
			Date:        base.AddDate(0, 0, i),
			WeatherCode: 0,
			TempMaxC:    28.4,
			TempMinC:    17.6,
		})
	}
	return snap
}

func snapshotWithHours(n int) weather.ForecastSnapshot {
	base := time.Date(2025, time.January, 6, 0, 0, 0, 0, time.UTC)
	snap := weather.ForecastSnapshot{}
	for i := 0; i < n; i++ {
		snap.Hourly = append(snap.Hourly, weather.HourlyPoint{
			Time:         base.Add(time.Duration(i) * time.Hour),
			TemperatureC: 20 + float64(i%5),
			HumidityPct:  60 + float64(i%20),
		})
	}
	return snap
}

func TestProjectCurrentRoundsTemperature(t *testing.T) {
	snap := weather.ForecastSnapshot{
		CityLabel: "Porto Alegre, Brazil",
		Current: weather.CurrentConditions{
			TemperatureC: 23.6,
			HumidityPct:  61,
			WindKph:      12.4,
			WeatherCode:  0,
			IsDay:        true,
		},
	}

	got := ProjectCurrent(snap)
	if got.TemperatureC != 24 {
		t.Errorf("temperature = %d, want 24", got.TemperatureC)
	}
	if got.Icon != "clear-day" {
		t.Errorf("icon = %q, want clear-day", got.Icon)
	}
	if got.Description != "Clear Sky" {
		t.Errorf("description = %q, want Clear Sky", got.Description)
	}
	if got.DayLabel != "Day" {
		t.Errorf("day label = %q, want Day", got.DayLabel)
	}
}

func TestProjectCardsSkipsToday(t *testing.T) {
	cards := ProjectCards(snapshotWithDays(6))
	if len(cards) != 5 {
		t.Fatalf("cards = %d, want 5", len(cards))
	}
	// The first card must be tomorrow (Jan 7), not today.
	if cards[0].DateLabel != "7/1" {
		t.Errorf("first card date = %q, want 7/1", cards[0].DateLabel)
	}
	if cards[0].TempMaxC != 28 || cards[0].TempMinC != 18 {
		t.Errorf("card temps = %d/%d, want 28/18", cards[0].TempMaxC, cards[0].TempMinC)
	}
}

func TestProjectCardsShortDaily(t *testing.T) {
	cards := ProjectCards(snapshotWithDays(3))
	if len(cards) != 2 {
		t.Fatalf("cards = %d, want 2", len(cards))
	}

	if cards := ProjectCards(snapshotWithDays(0)); len(cards) != 0 {
		t.Fatalf("cards for empty daily = %d, want 0", len(cards))
	}
}

func TestProjectChartWindow(t *testing.T) {
	snap := snapshotWithHours(200)

	series := ProjectChart(snap, MetricTemperature, 0)
	if len(series.Labels) != ChartWindowHours || len(series.Values) != ChartWindowHours {
		t.Fatalf("series lengths = %d/%d, want %d", len(series.Labels), len(series.Values), ChartWindowHours)
	}

	small := ProjectChart(snapshotWithHours(10), MetricTemperature, 0)
	if len(small.Values) != 10 {
		t.Fatalf("short series length = %d, want 10", len(small.Values))
	}
}

func TestProjectChartMetricSwitch(t *testing.T) {
	snap := snapshotWithHours(48)

	temp := ProjectChart(snap, MetricTemperature, 0)
	hum := ProjectChart(snap, MetricHumidity, 0)

	if len(temp.Labels) != len(hum.Labels) || len(temp.Values) != len(hum.Values) {
		t.Fatal("metric switch changed the series lengths")
	}
	for i := range temp.Labels {
		if temp.Labels[i] != hum.Labels[i] {
			t.Fatalf("label %d differs across metrics: %q vs %q", i, temp.Labels[i], hum.Labels[i])
		}
	}
	if temp.Values[0] == hum.Values[0] {
		t.Error("expected different values for different metrics")
	}
}

func TestProjectSunMoon(t *testing.T) {
	empty := ProjectSunMoon(weather.ForecastSnapshot{})
	if empty.SunriseLabel != "--:--" || empty.SunsetLabel != "--:--" {
		t.Errorf("missing sun times = %q/%q, want placeholders", empty.SunriseLabel, empty.SunsetLabel)
	}
	if empty.MoonPhaseLabel != "Unknown" {
		t.Errorf("missing moon phase = %q, want Unknown", empty.MoonPhaseLabel)
	}

	sunrise := time.Date(2025, time.January, 6, 5, 21, 0, 0, time.UTC)
	sunset := time.Date(2025, time.January, 6, 19, 32, 0, 0, time.UTC)
	phase := 0.5
	snap := weather.ForecastSnapshot{
		Daily: []weather.DailyEntry{{
			Date:      sunrise,
			Sunrise:   &sunrise,
			Sunset:    &sunset,
			MoonPhase: &phase,
		}},
	}

	got := ProjectSunMoon(snap)
	if got.SunriseLabel != "05:21" {
		t.Errorf("sunrise = %q, want 05:21", got.SunriseLabel)
	}
	if got.SunsetLabel != "19:32" {
		t.Errorf("sunset = %q, want 19:32", got.SunsetLabel)
	}
	if got.MoonPhaseLabel != "Full Moon" {
		t.Errorf("moon phase = %q, want Full Moon", got.MoonPhaseLabel)
	}
}

func TestProjectDashboardSeasonal(t *testing.T) {
	snap := snapshotWithDays(6)
	snap.Current = weather.CurrentConditions{TemperatureC: 25.2, IsDay: true}

	sel := DefaultSelection()
	sel.SeasonalMode = true

	january := time.Date(2025, time.January, 15, 12, 0, 0, 0, time.UTC)
	d := ProjectDashboard(snap, sel, january, HemisphereSouth, 0)

	if d.SeasonTag != "summer-day" {
		t.Errorf("season tag = %q, want summer-day", d.SeasonTag)
	}
	if d.SeasonSummary != "SUMMER: 25°C (Day)" {
		t.Errorf("season summary = %q, want SUMMER: 25°C (Day)", d.SeasonSummary)
	}

	sel.SeasonalMode = false
	if d := ProjectDashboard(snap, sel, january, HemisphereSouth, 0); d.SeasonTag != "" {
		t.Errorf("season tag with mode off = %q, want empty", d.SeasonTag)
	}
}
