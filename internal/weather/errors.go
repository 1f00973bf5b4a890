package weather

import "errors"

var (
	// ErrEmptyQuery is returned when a search is attempted with a blank
	// city name. It is rejected before any network call.
	ErrEmptyQuery = errors.New("city name must not be empty")

	// ErrCityNotFound is returned when geocoding yields zero results.
	ErrCityNotFound = errors.New("no matching city found")

	// ErrTransport covers network failures and non-2xx provider responses.
	// Callers wrap it with detail and check it with errors.Is.
	ErrTransport = errors.New("weather provider request failed")

	// ErrLocationUnavailable is returned when the device position is
	// denied, unsupported, or not delivered within the bounded wait.
	ErrLocationUnavailable = errors.New("device location unavailable")
)
