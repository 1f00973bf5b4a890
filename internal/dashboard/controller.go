package dashboard

import (
	"context"
	"log"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/pmoraes-dev/weatherdash/internal/store"
	"github.com/pmoraes-dev/weatherdash/internal/view"
	"github.com/pmoraes-dev/weatherdash/internal/weather"
)

// State is the controller lifecycle state visible to the UI.
type State string

const (
	StateIdle    State = "idle"
	StateLoading State = "loading"
	StateReady   State = "ready"
	StateFailed  State = "failed"
)

// CurrentLocationLabel replaces the city name when the position came from the
// device rather than a geocoded search.
const CurrentLocationLabel = "Current location"

// Geocoder resolves a free-text city name to coordinates.
type Geocoder interface {
	Resolve(ctx context.Context, name string) (weather.GeocodeResult, error)
}

// Fetcher retrieves a full forecast snapshot for coordinates.
type Fetcher interface {
	Fetch(ctx context.Context, coords weather.Coordinates) (weather.ForecastSnapshot, error)
}

// Locator asks the host platform for the device position. Implementations
// must honor the context deadline; the controller bounds the wait.
type Locator interface {
	Locate(ctx context.Context) (weather.Coordinates, error)
}

// Renderer consumes projected dashboards. How it draws them is its business.
type Renderer interface {
	Render(view.Dashboard)
}

// Options configures the controller.
type Options struct {
	// DefaultCity is searched when geolocation is denied or times out.
	DefaultCity string
	// Hemisphere fixes the seasonal month mapping.
	Hemisphere view.Hemisphere
	// LocationWait bounds how long a geolocation request may take before
	// the default-city fallback kicks in.
	LocationWait time.Duration
	// ChartWindow is the hourly-prefix size for the chart series.
	ChartWindow int
}

// Controller wires user intents to the geocoder, the fetcher, the snapshot
// cache, and the projector. It is the single writer of both the cache and the
// display selection. A new search supersedes any in-flight one: each request
// carries a token, and only the latest token may publish its result.
type Controller struct {
	geocoder Geocoder
	fetcher  Fetcher
	locator  Locator
	renderer Renderer
	cache    *store.SnapshotCache
	opts     Options

	mu        sync.Mutex
	state     State
	selection view.Selection
	lastErr   error
	activeReq uuid.UUID

	now func() time.Time
}

// New creates a controller in the Idle state with default display selection.
func New(geocoder Geocoder, fetcher Fetcher, locator Locator, renderer Renderer, cache *store.SnapshotCache, opts Options) *Controller {
	if opts.DefaultCity == "" {
		opts.DefaultCity = "Porto Alegre"
	}
	if opts.Hemisphere == "" {
		opts.Hemisphere = view.HemisphereSouth
	}
	if opts.LocationWait <= 0 {
		opts.LocationWait = 5 * time.Second
	}
	if opts.ChartWindow <= 0 {
		opts.ChartWindow = view.ChartWindowHours
	}

	return &Controller{
		geocoder:  geocoder,
		fetcher:   fetcher,
		locator:   locator,
		renderer:  renderer,
		cache:     cache,
		opts:      opts,
		state:     StateIdle,
		selection: view.DefaultSelection(),
		now:       time.Now,
	}
}

// SearchByName resolves a city and replaces the cached snapshot with its
// forecast. Blank input is rejected before any network call. On failure the
// previous snapshot stays cached and displayed.
func (c *Controller) SearchByName(ctx context.Context, query string) error {
	query = strings.TrimSpace(query)
	if query == "" {
		return weather.ErrEmptyQuery
	}

	return c.resolveAndPublish(ctx, c.beginRequest(), query)
}

// SearchByCoordinates fetches directly for a known position, e.g. when the
// browser's geolocation collaborator reports through the HTTP surface.
func (c *Controller) SearchByCoordinates(ctx context.Context, coords weather.Coordinates) error {
	token := c.beginRequest()
	return c.fetchAndPublish(ctx, token, coords, CurrentLocationLabel)
}

// SearchByGeolocation asks the configured locator for the device position,
// bounded by the configured wait. Denial, unavailability, or timeout are not
// terminal: the controller falls back to the default city. The request token
// is minted before the locate so a search issued while the device is still
// answering supersedes this one, fallback included.
func (c *Controller) SearchByGeolocation(ctx context.Context) error {
	token := c.beginRequest()

	locCtx, cancel := context.WithTimeout(ctx, c.opts.LocationWait)
	defer cancel()

	coords, err := c.locator.Locate(locCtx)
	if err != nil {
		log.Printf("INFO: geolocation unavailable (%v); falling back to %q", err, c.opts.DefaultCity)
		return c.resolveAndPublish(ctx, token, c.opts.DefaultCity)
	}

	return c.fetchAndPublish(ctx, token, coords, CurrentLocationLabel)
}

func (c *Controller) resolveAndPublish(ctx context.Context, token uuid.UUID, query string) error {
	if c.superseded(token) {
		return nil
	}

	geo, err := c.geocoder.Resolve(ctx, query)
	if err != nil {
		c.finishWithError(token, err)
		return err
	}

	return c.fetchAndPublish(ctx, token, geo.Coordinates, geo.DisplayName)
}

func (c *Controller) fetchAndPublish(ctx context.Context, token uuid.UUID, coords weather.Coordinates, label string) error {
	if c.superseded(token) {
		return nil
	}

	snap, err := c.fetcher.Fetch(ctx, coords)
	if err != nil {
		c.finishWithError(token, err)
		return err
	}
	snap.CityLabel = label

	c.mu.Lock()
	if c.activeReq != token {
		c.mu.Unlock()
		// A newer search superseded this one; drop the late result.
		return nil
	}
	c.cache.Replace(snap)
	c.state = StateReady
	c.lastErr = nil
	sel := c.selection
	c.mu.Unlock()

	c.render(snap, sel)
	return nil
}

func (c *Controller) superseded(token uuid.UUID) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.activeReq != token
}

func (c *Controller) beginRequest() uuid.UUID {
	token := uuid.New()

	c.mu.Lock()
	c.activeReq = token
	c.state = StateLoading
	c.mu.Unlock()

	return token
}

func (c *Controller) finishWithError(token uuid.UUID, err error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.activeReq != token {
		// Superseded failures stay silent; the winning request owns the state.
		return
	}
	c.state = StateFailed
	c.lastErr = err
	log.Printf("search failed: %v", err)
}

// ToggleChartMetric flips the chart between temperature and humidity and
// re-projects the cached snapshot. No network call is made.
func (c *Controller) ToggleChartMetric() view.Selection {
	c.mu.Lock()
	if c.selection.Metric == view.MetricTemperature {
		c.selection.Metric = view.MetricHumidity
	} else {
		c.selection.Metric = view.MetricTemperature
	}
	sel := c.selection
	c.mu.Unlock()

	c.reproject(sel)
	return sel
}

// ToggleTheme switches between the light and dark color schemes.
func (c *Controller) ToggleTheme() view.Selection {
	c.mu.Lock()
	if c.selection.Theme == view.ThemeLight {
		c.selection.Theme = view.ThemeDark
	} else {
		c.selection.Theme = view.ThemeLight
	}
	sel := c.selection
	c.mu.Unlock()

	c.reproject(sel)
	return sel
}

// ToggleSeasonalMode switches the seasonal coloring on or off. With nothing
// cached yet the projection assumes daytime so the page still gets a season
// tag for display continuity.
func (c *Controller) ToggleSeasonalMode() view.Selection {
	c.mu.Lock()
	c.selection.SeasonalMode = !c.selection.SeasonalMode
	sel := c.selection
	c.mu.Unlock()

	c.reproject(sel)
	return sel
}

func (c *Controller) reproject(sel view.Selection) {
	snap, ok := c.cache.Latest()
	if !ok {
		if !sel.SeasonalMode {
			return
		}
		snap = weather.ForecastSnapshot{Current: weather.CurrentConditions{IsDay: true}}
	}
	c.render(snap, sel)
}

func (c *Controller) render(snap weather.ForecastSnapshot, sel view.Selection) {
	if c.renderer == nil {
		return
	}
	c.renderer.Render(view.ProjectDashboard(snap, sel, c.now(), c.opts.Hemisphere, c.opts.ChartWindow))
}

// Dashboard projects the cached snapshot with the active selection for
// pull-based consumers; ok is false before the first successful fetch.
func (c *Controller) Dashboard() (view.Dashboard, bool) {
	snap, ok := c.cache.Latest()
	if !ok {
		return view.Dashboard{}, false
	}

	c.mu.Lock()
	sel := c.selection
	c.mu.Unlock()

	return view.ProjectDashboard(snap, sel, c.now(), c.opts.Hemisphere, c.opts.ChartWindow), true
}

// State reports the controller lifecycle state.
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Selection reports the active display selection.
func (c *Controller) Selection() view.Selection {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.selection
}

// LastError reports the error of the most recent failed action, if any.
func (c *Controller) LastError() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.lastErr
}
