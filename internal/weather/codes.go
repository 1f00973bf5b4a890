package weather

import "math"

// Icon is the normalized display category for a WMO weather code. Provider
// vocabulary never leaks past this mapping.
type Icon string

const (
	IconClear        Icon = "clear"
	IconPartlyCloudy Icon = "partly-cloudy"
	IconCloudy       Icon = "cloudy"
	IconFog          Icon = "fog"
	IconDrizzle      Icon = "drizzle"
	IconRain         Icon = "rain"
	IconSnow         Icon = "snow"
	IconHailShower   Icon = "hail-shower"
	IconThunderstorm Icon = "thunderstorm"
	IconUnknown      Icon = "unknown"
)

// IconFor maps a WMO weather code to its display category. Unmapped codes
// yield IconUnknown, never an error.
func IconFor(code int) Icon {
	switch code {
	case 0:
		return IconClear
	case 1:
		return IconPartlyCloudy
	case 2, 3:
		return IconCloudy
	case 45, 48:
		return IconFog
	case 51, 53, 55:
		return IconDrizzle
	case 61, 63, 65, 80, 81, 82:
		return IconRain
	case 71, 73, 75, 85, 86:
		return IconSnow
	case 77:
		return IconHailShower
	case 95, 96, 99:
		return IconThunderstorm
	default:
		return IconUnknown
	}
}

// IconClass returns the icon class for a code. Only clear and partly-cloudy
// skies have day/night variants; every other category is time-invariant.
func IconClass(code int, isDay bool) string {
	icon := IconFor(code)
	switch icon {
	case IconClear, IconPartlyCloudy:
		if isDay {
			return string(icon) + "-day"
		}
		return string(icon) + "-night"
	default:
		return string(icon)
	}
}

var wmoDescriptions = map[int]string{
	0:  "Clear Sky",
	1:  "Mainly Clear",
	2:  "Partly Cloudy",
	3:  "Overcast",
	45: "Fog",
	48: "Freezing Fog",
	51: "Light Drizzle",
	53: "Moderate Drizzle",
	55: "Dense Drizzle",
	61: "Light Rain",
	63: "Moderate Rain",
	65: "Heavy Rain",
	71: "Light Snowfall",
	73: "Moderate Snowfall",
	75: "Heavy Snowfall",
	77: "Hail Shower",
	80: "Light Rain Showers",
	81: "Moderate Rain Showers",
	82: "Violent Rain Showers",
	85: "Light Snow Showers",
	86: "Heavy Snow Showers",
	95: "Thunderstorm",
	96: "Thunderstorm with Light Hail",
	99: "Thunderstorm with Heavy Hail",
}

// Describe returns a human-readable label for a WMO weather code.
func Describe(code int) string {
	if desc, ok := wmoDescriptions[code]; ok {
		return desc
	}
	return "Unknown"
}

// MoonPhaseLabel names the lunar phase for a fraction in [0,1]. The scale
// wraps around: 0 and 1 are both a new moon. Values outside the range yield
// "Unknown" rather than an error.
func MoonPhaseLabel(fraction float64) string {
	switch {
	case math.IsNaN(fraction) || fraction < 0 || fraction > 1:
		return "Unknown"
	case fraction == 0 || fraction == 1:
		return "New Moon"
	case fraction < 0.25:
		return "Waxing Crescent"
	case fraction == 0.25:
		return "First Quarter"
	case fraction < 0.5:
		return "Waxing Gibbous"
	case fraction == 0.5:
		return "Full Moon"
	case fraction < 0.75:
		return "Waning Gibbous"
	case fraction == 0.75:
		return "Last Quarter"
	default:
		return "Waning Crescent"
	}
}
