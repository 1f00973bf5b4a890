package view

import (
	"fmt"
	"strings"
	"time"
)

// Hemisphere fixes the month-to-season mapping. The dashboard was built for
// southern-hemisphere users, so south is the default; it is a configuration
// constant, never inferred from the fetched coordinates.
type Hemisphere string

const (
	HemisphereSouth Hemisphere = "south"
	HemisphereNorth Hemisphere = "north"
)

// SeasonTag returns the "{season}-{day|night}" class tag for the given
// instant, one of eight possible values.
func SeasonTag(t time.Time, isDay bool, h Hemisphere) string {
	suffix := "night"
	if isDay {
		suffix = "day"
	}
	return seasonFor(t.Month(), h) + "-" + suffix
}

// seasonFor maps a month to a season name. Southern mapping: Dec-Feb summer,
// Mar-May autumn, Jun-Aug winter, Sep-Nov spring. The northern mapping is the
// same table shifted by six months.
func seasonFor(m time.Month, h Hemisphere) string {
	if h == HemisphereNorth {
		m = time.Month((int(m)+5)%12 + 1)
	}

	switch {
	case m == time.December || m <= time.February:
		return "summer"
	case m <= time.May:
		return "autumn"
	case m <= time.August:
		return "winter"
	default:
		return "spring"
	}
}

// seasonSummary is the button caption shown while seasonal mode is active,
// e.g. "SUMMER: 25°C (Day)".
func seasonSummary(season string, tempC float64, isDay bool) string {
	period := "Night"
	if isDay {
		period = "Day"
	}
	return fmt.Sprintf("%s: %.0f°C (%s)", strings.ToUpper(season), tempC, period)
}
