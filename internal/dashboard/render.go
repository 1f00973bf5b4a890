package dashboard

import (
	"context"
	"log"

	"github.com/pmoraes-dev/weatherdash/internal/view"
	"github.com/pmoraes-dev/weatherdash/internal/weather"
)

// NoLocator reports that the host has no device-positioning capability. The
// HTTP surface uses it: the browser obtains its own position and reports it
// through the coordinate search endpoint instead.
type NoLocator struct{}

func (NoLocator) Locate(context.Context) (weather.Coordinates, error) {
	return weather.Coordinates{}, weather.ErrLocationUnavailable
}

// LogRenderer writes a one-line summary per projected dashboard. It stands in
// when no interactive render target is attached to the controller.
type LogRenderer struct{}

func (LogRenderer) Render(d view.Dashboard) {
	log.Printf("render: %s %d°C %s, %d forecast cards, %d chart points (%s)",
		d.Current.CityLabel, d.Current.TemperatureC, d.Current.Description,
		len(d.Forecast), len(d.Chart.Values), d.Chart.Metric)
}
