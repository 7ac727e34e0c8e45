// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package cache

import (
	"errors"
	"log/slog"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"

	"besinrehberi/internal/models"
)

// groupRetryInterval is how long stale groups are served after a failed
// reload before the loader is tried again.
const groupRetryInterval = 10 * time.Second

// GroupLoader fetches the current category groups from the source of truth.
type GroupLoader func() ([]models.CategoryGroup, error)

// GroupCache is an in-process, read-through cache of the category groups.
// Every slug resolution needs the full group list, so it is loaded once per
// TTL and shared by all requests. Concurrent misses trigger a single load.
// If a reload fails, the last successfully loaded groups keep being served
// and the loader is retried at most once per retry interval.
type GroupCache struct {
	load  GroupLoader
	ttl   time.Duration
	retry time.Duration
	now   func() time.Time

	mu       sync.RWMutex
	groups   []models.CategoryGroup
	loadedAt time.Time
	loaded   bool

	sf singleflight.Group
}

// NewGroupCache creates a GroupCache that refreshes through load every ttl.
func NewGroupCache(load GroupLoader, ttl time.Duration) *GroupCache {
	if ttl <= 0 {
		ttl = DefaultResponseTTL
	}
	return &GroupCache{load: load, ttl: ttl, retry: min(groupRetryInterval, ttl), now: time.Now}
}

// Groups returns the cached groups, loading them when absent or expired.
// The returned slice is shared and must not be modified.
func (gc *GroupCache) Groups() ([]models.CategoryGroup, error) {
	gc.mu.RLock()
	if gc.loaded && gc.now().Sub(gc.loadedAt) < gc.ttl {
		groups := gc.groups
		gc.mu.RUnlock()
		return groups, nil
	}
	gc.mu.RUnlock()

	v, err, _ := gc.sf.Do("groups", func() (any, error) {
		return gc.refresh()
	})
	if err != nil {
		return nil, err
	}
	return v.([]models.CategoryGroup), nil
}

func (gc *GroupCache) refresh() ([]models.CategoryGroup, error) {
	groups, err := gc.load()
	if err == nil && groups == nil {
		err = errors.New("category group loader returned nil")
	}
	if err != nil {
		gc.mu.Lock()
		stale, ok := gc.groups, gc.loaded
		if ok {
			// Keep the stale copy fresh for one retry interval.
			gc.loadedAt = gc.now().Add(gc.retry - gc.ttl)
		}
		gc.mu.Unlock()
		if ok {
			slog.Warn("category groups reload failed, serving stale copy",
				"error", err, "retry_in", gc.retry.String())
			return stale, nil
		}
		return nil, err
	}

	gc.mu.Lock()
	gc.groups = groups
	gc.loadedAt = gc.now()
	gc.loaded = true
	gc.mu.Unlock()

	slog.Debug("category groups loaded", "count", len(groups))
	return groups, nil
}

// Invalidate forces the next Groups call to reload. The current groups
// remain available as the fallback if that reload fails.
func (gc *GroupCache) Invalidate() {
	gc.mu.Lock()
	gc.loadedAt = time.Time{}
	gc.mu.Unlock()
}
