package openmeteo

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/pmoraes-dev/weatherdash/internal/weather"
)

func newGeocodingServer(t *testing.T, status int, body string) *GeocodingClient {
	t.Helper()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("count"); got != "1" {
			t.Errorf("count query param = %q, want 1", got)
		}
		if status != http.StatusOK {
			w.WriteHeader(status)
			return
		}
		w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)

	client := NewGeocodingClient(srv.Client())
	client.baseURL = srv.URL
	return client
}

func TestResolveBestMatch(t *testing.T) {
	client := newGeocodingServer(t, http.StatusOK, `{
		"results": [
			{"name": "Porto Alegre", "country": "Brazil", "latitude": -30.03, "longitude": -51.23}
		]
	}`)

	got, err := client.Resolve(context.Background(), "porto alegre")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got.DisplayName != "Porto Alegre, Brazil" {
		t.Errorf("display name = %q, want %q", got.DisplayName, "Porto Alegre, Brazil")
	}
	if got.Coordinates.Latitude != -30.03 || got.Coordinates.Longitude != -51.23 {
		t.Errorf("coordinates = %+v, want -30.03/-51.23", got.Coordinates)
	}
}

func TestResolveNoResults(t *testing.T) {
	client := newGeocodingServer(t, http.StatusOK, `{"results": []}`)

	_, err := client.Resolve(context.Background(), "Cidade Inexistente 123")
	if !errors.Is(err, weather.ErrCityNotFound) {
		t.Fatalf("expected ErrCityNotFound, got %v", err)
	}
}

func TestResolveServerError(t *testing.T) {
	client := newGeocodingServer(t, http.StatusServiceUnavailable, "")

	_, err := client.Resolve(context.Background(), "Paris")
	if !errors.Is(err, weather.ErrTransport) {
		t.Fatalf("expected ErrTransport, got %v", err)
	}
}

func TestResolveMalformedPayloadIsTransportError(t *testing.T) {
	client := newGeocodingServer(t, http.StatusOK, `{"results": [{`)

	_, err := client.Resolve(context.Background(), "Paris")
	if !errors.Is(err, weather.ErrTransport) {
		t.Fatalf("expected ErrTransport for a malformed 200 body, got %v", err)
	}
}

func TestResolveEncodesQuery(t *testing.T) {
	var gotName string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotName = r.URL.Query().Get("name")
		w.Write([]byte(`{"results": [{"name": "São Paulo", "country": "Brazil", "latitude": -23.55, "longitude": -46.63}]}`))
	}))
	defer srv.Close()

	client := NewGeocodingClient(srv.Client())
	client.baseURL = srv.URL

	if _, err := client.Resolve(context.Background(), "São Paulo"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotName != "São Paulo" {
		t.Errorf("server decoded name = %q, want %q", gotName, "São Paulo")
	}
}
