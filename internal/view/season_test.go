package view

import (
	"testing"
	"time"
)

func date(month time.Month) time.Time {
	return time.Date(2025, month, 15, 12, 0, 0, 0, time.UTC)
}

func TestSeasonTagSouth(t *testing.T) {
	tests := []struct {
		month time.Month
		isDay bool
		want  string
	}{
		{time.January, true, "summer-day"},
		{time.February, false, "summer-night"},
		{time.December, true, "summer-day"},
		{time.March, true, "autumn-day"},
		{time.May, false, "autumn-night"},
		{time.June, true, "winter-day"},
		{time.August, false, "winter-night"},
		{time.September, true, "spring-day"},
		{time.November, false, "spring-night"},
	}

	for _, tt := range tests {
		if got := SeasonTag(date(tt.month), tt.isDay, HemisphereSouth); got != tt.want {
			t.Errorf("SeasonTag(%s, %v, south) = %q, want %q", tt.month, tt.isDay, got, tt.want)
		}
	}
}

func TestSeasonTagNorth(t *testing.T) {
	tests := []struct {
		month time.Month
		want  string
	}{
		{time.January, "winter-day"},
		{time.April, "spring-day"},
		{time.July, "summer-day"},
		{time.October, "autumn-day"},
		{time.December, "winter-day"},
	}

	for _, tt := range tests {
		if got := SeasonTag(date(tt.month), true, HemisphereNorth); got != tt.want {
			t.Errorf("SeasonTag(%s, day, north) = %q, want %q", tt.month, got, tt.want)
		}
	}
}
