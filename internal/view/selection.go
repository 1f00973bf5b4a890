package view

// ChartMetric selects which hourly series the chart renders.
type ChartMetric string

const (
	MetricTemperature ChartMetric = "temperature"
	MetricHumidity    ChartMetric = "humidity"
)

// Theme is the page color scheme.
type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

// Selection carries the user's display preferences for the lifetime of the
// page. It is mutated only by the interaction controller in response to
// explicit toggles and read by the projector.
type Selection struct {
	Metric       ChartMetric `json:"chartMetric"`
	Theme        Theme       `json:"theme"`
	SeasonalMode bool        `json:"seasonalMode"`
}

// DefaultSelection is the state before any toggle: temperature chart, light
// theme, seasonal coloring off.
func DefaultSelection() Selection {
	return Selection{
		Metric: MetricTemperature,
		Theme:  ThemeLight,
	}
}
