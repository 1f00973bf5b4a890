package openmeteo

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/sony/gobreaker"
	"golang.org/x/time/rate"

	"github.com/pmoraes-dev/weatherdash/internal/weather"
)

const (
	forecastBaseURL  = "https://api.open-meteo.com/v1/forecast"
	geocodingBaseURL = "https://geocoding-api.open-meteo.com/v1/search"
)

var errNoHTTPClient = errors.New("http client not configured")

// httpConfig bundles the shared HTTP client with outbound resilience settings.
type httpConfig struct {
	client  *http.Client
	limiter *rate.Limiter
}

func newBreaker(name string) *gobreaker.CircuitBreaker {
	return gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        name,
		MaxRequests: 5,
		Interval:    1 * time.Minute,
		Timeout:     2 * time.Minute,
	})
}

func newLimiter() *rate.Limiter {
	// Open-Meteo is generous, but the dashboard has no business bursting:
	// re-renders come from the cache, only user actions reach the network.
	return rate.NewLimiter(rate.Every(time.Second), 4)
}

// doRequest executes one outbound call through the rate limiter and circuit
// breaker. Failures are terminal for the triggering user action: there is no
// automatic retry, the user re-triggers the search instead.
func doRequest(ctx context.Context, cfg httpConfig, cb *gobreaker.CircuitBreaker, req *http.Request) (*http.Response, error) {
	if cfg.client == nil {
		return nil, errNoHTTPClient
	}

	if cfg.limiter != nil {
		if err := cfg.limiter.Wait(ctx); err != nil {
			return nil, err
		}
	}

	req = req.WithContext(ctx)

	result, err := cb.Execute(func() (interface{}, error) {
		resp, execErr := cfg.client.Do(req)
		if execErr != nil {
			return nil, fmt.Errorf("%w: %v", weather.ErrTransport, execErr)
		}
		if resp.StatusCode < 200 || resp.StatusCode >= 300 {
			resp.Body.Close()
			return nil, fmt.Errorf("%w: unexpected status %d", weather.ErrTransport, resp.StatusCode)
		}
		return resp, nil
	})
	if err != nil {
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			return nil, fmt.Errorf("%w: circuit breaker: %v", weather.ErrTransport, err)
		}
		return nil, err
	}

	resp, ok := result.(*http.Response)
	if !ok {
		return nil, fmt.Errorf("unexpected result type from circuit breaker")
	}
	return resp, nil
}
