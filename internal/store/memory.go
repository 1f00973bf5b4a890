package store

import (
	"sync"

	"github.com/pmoraes-dev/weatherdash/internal/weather"
)

// SnapshotCache holds the latest successfully fetched forecast snapshot.
// It has a single writer (the interaction controller, after a winning fetch)
// and many readers. Replacement is atomic: readers see either the previous
// snapshot or the new one, never a partial update. There is no TTL and no
// background refresh; the snapshot stays valid until explicitly replaced.
type SnapshotCache struct {
	mu       sync.RWMutex
	snapshot *weather.ForecastSnapshot
}

// NewSnapshotCache creates an empty cache.
func NewSnapshotCache() *SnapshotCache {
	return &SnapshotCache{}
}

// Replace stores a new snapshot, discarding the previous one.
func (c *SnapshotCache) Replace(snap weather.ForecastSnapshot) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.snapshot = &snap
}

// Latest returns the cached snapshot; ok is false before the first
// successful fetch.
func (c *SnapshotCache) Latest() (weather.ForecastSnapshot, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if c.snapshot == nil {
		return weather.ForecastSnapshot{}, false
	}
	return *c.snapshot, true
}
