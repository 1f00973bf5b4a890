package httpapi

import (
	"errors"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/pmoraes-dev/weatherdash/internal/dashboard"
	"github.com/pmoraes-dev/weatherdash/internal/view"
	"github.com/pmoraes-dev/weatherdash/internal/weather"
)

var validate = validator.New()

// RegisterRoutes wires the dashboard handlers into the Fiber app. The browser
// front end is the render collaborator: it pulls the projected view model
// from these endpoints and draws it however it likes.
func RegisterRoutes(app *fiber.App, ctrl *dashboard.Controller) {
	v1 := app.Group("/api/v1")

	v1.Get("/dashboard", func(c *fiber.Ctx) error {
		d, ok := ctrl.Dashboard()
		if !ok {
			return fiber.NewError(fiber.StatusNotFound, "no forecast fetched yet")
		}
		return c.JSON(fiber.Map{
			"state":     ctrl.State(),
			"selection": ctrl.Selection(),
			"dashboard": d,
		})
	})

	v1.Get("/search", func(c *fiber.Ctx) error {
		var q searchQuery
		q.City = c.Query("city")
		if err := validate.Struct(q); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}

		if err := ctrl.SearchByName(c.UserContext(), q.City); err != nil {
			return fiber.NewError(statusFor(err), err.Error())
		}
		return respondDashboard(c, ctrl)
	})

	v1.Get("/search/coords", func(c *fiber.Ctx) error {
		q, err := parseCoordsQuery(c)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}

		coords := weather.Coordinates{Latitude: q.Lat, Longitude: q.Lon}
		if err := ctrl.SearchByCoordinates(c.UserContext(), coords); err != nil {
			return fiber.NewError(statusFor(err), err.Error())
		}
		return respondDashboard(c, ctrl)
	})

	toggles := v1.Group("/toggles")

	toggles.Post("/chart-metric", func(c *fiber.Ctx) error {
		return respondSelection(c, ctrl, ctrl.ToggleChartMetric())
	})
	toggles.Post("/theme", func(c *fiber.Ctx) error {
		return respondSelection(c, ctrl, ctrl.ToggleTheme())
	})
	toggles.Post("/seasonal", func(c *fiber.Ctx) error {
		return respondSelection(c, ctrl, ctrl.ToggleSeasonalMode())
	})
}

func respondDashboard(c *fiber.Ctx, ctrl *dashboard.Controller) error {
	d, ok := ctrl.Dashboard()
	if !ok {
		return fiber.NewError(fiber.StatusNotFound, "no forecast fetched yet")
	}
	return c.JSON(fiber.Map{
		"state":     ctrl.State(),
		"dashboard": d,
	})
}

func respondSelection(c *fiber.Ctx, ctrl *dashboard.Controller, sel view.Selection) error {
	resp := fiber.Map{"selection": sel}
	if d, ok := ctrl.Dashboard(); ok {
		resp["dashboard"] = d
	}
	return c.JSON(resp)
}

// searchQuery holds the query parameters for a city search.
type searchQuery struct {
	City string `validate:"required"`
}

// coordsQuery holds the query parameters for a coordinate search, as reported
// by the browser's geolocation collaborator.
type coordsQuery struct {
	Lat float64 `validate:"gte=-90,lte=90"`
	Lon float64 `validate:"gte=-180,lte=180"`
}

func parseCoordsQuery(c *fiber.Ctx) (coordsQuery, error) {
	var q coordsQuery

	latStr := c.Query("lat")
	lonStr := c.Query("lon")
	if latStr == "" || lonStr == "" {
		return q, errors.New("lat and lon query parameters are required")
	}

	lat, err := strconv.ParseFloat(latStr, 64)
	if err != nil {
		return q, errors.New("invalid lat: must be a number")
	}
	lon, err := strconv.ParseFloat(lonStr, 64)
	if err != nil {
		return q, errors.New("invalid lon: must be a number")
	}

	q.Lat = lat
	q.Lon = lon
	if err := validate.Struct(q); err != nil {
		return q, err
	}
	return q, nil
}

// statusFor translates the error taxonomy into HTTP statuses: validation to
// 400, no match to 404, provider trouble to 502.
func statusFor(err error) int {
	switch {
	case errors.Is(err, weather.ErrEmptyQuery):
		return fiber.StatusBadRequest
	case errors.Is(err, weather.ErrCityNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, weather.ErrTransport):
		return fiber.StatusBadGateway
	default:
		return fiber.StatusInternalServerError
	}
}
