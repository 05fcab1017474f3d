/*
 * Copyright (c) 2025, WSO2 LLC. (https://www.wso2.com).
 *
 * WSO2 LLC. licenses this file to you under the Apache License,
 * Version 2.0 (the "License"); you may not use this file except
 * in compliance with the License.
 * You may obtain a copy of the License at
 *
 * http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing,
 * software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY
 * KIND, either express or implied.  See the License for the
 * specific language governing permissions and limitations
 * under the License.
 */

// Package cache provides an in-memory cache with explicit lifecycle management.
//
// Caches are constructed once at process start and injected into the components
// that need them; there is no module-level mutable cache state.
package cache

import (
	"sync"
	"time"

	"github.com/recomlabs/amp/internal/system/config"
	"github.com/recomlabs/amp/internal/system/log"
)

const (
	defaultCacheSize = 1000
	defaultCacheTTL  = 300
)

// CacheKey uniquely identifies an entry within a cache.
type CacheKey struct {
	Key string
}

// cacheEntry holds a cached value together with its expiry time.
type cacheEntry[T any] struct {
	value     T
	expiresAt time.Time
}

// CacheInterface defines the common interface for cache operations.
type CacheInterface[T any] interface {
	GetName() string
	Set(key CacheKey, value T) error
	Get(key CacheKey) (T, bool)
	Delete(key CacheKey) error
	Clear() error
	IsEnabled() bool
	CleanupExpired()
}

// Cache implements CacheInterface with a TTL-bounded in-memory map.
type Cache[T any] struct {
	enabled   bool
	cacheName string
	maxSize   int
	ttl       time.Duration
	entries   map[CacheKey]cacheEntry[T]
	mu        sync.RWMutex
}

// NewCache creates a new cache instance using the cache settings from the runtime configuration.
func NewCache[T any](cacheName string) CacheInterface[T] {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, "Cache"),
		log.String("cacheName", cacheName))

	cacheConfig := config.GetAMPRuntime().Config.Cache
	if cacheConfig.Disabled {
		logger.Debug("Caching is disabled, returning a no-op cache")
		return &Cache[T]{
			enabled:   false,
			cacheName: cacheName,
		}
	}

	size := cacheConfig.Size
	if size <= 0 {
		size = defaultCacheSize
	}

	ttl := cacheConfig.TTL
	if ttl <= 0 {
		ttl = defaultCacheTTL
	}

	return &Cache[T]{
		enabled:   true,
		cacheName: cacheName,
		maxSize:   size,
		ttl:       time.Duration(ttl) * time.Second,
		entries:   make(map[CacheKey]cacheEntry[T]),
	}
}

// GetName returns the name of the cache.
func (c *Cache[T]) GetName() string {
	return c.cacheName
}

// IsEnabled returns whether the cache is enabled.
func (c *Cache[T]) IsEnabled() bool {
	return c.enabled
}

// Set stores a value in the cache under the given key.
func (c *Cache[T]) Set(key CacheKey, value T) error {
	if !c.enabled {
		return nil
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	// Evict expired entries when the cache is full before rejecting new writes.
	if len(c.entries) >= c.maxSize {
		now := time.Now()
		for k, entry := range c.entries {
			if now.After(entry.expiresAt) {
				delete(c.entries, k)
			}
		}
	}
	if len(c.entries) >= c.maxSize {
		return nil
	}

	c.entries[key] = cacheEntry[T]{
		value:     value,
		expiresAt: time.Now().Add(c.ttl),
	}
	return nil
}

// Get retrieves a value from the cache. The second return value reports whether
// a live entry was found.
func (c *Cache[T]) Get(key CacheKey) (T, bool) {
	var zero T
	if !c.enabled {
		return zero, false
	}

	c.mu.RLock()
	entry, ok := c.entries[key]
	c.mu.RUnlock()

	if !ok {
		return zero, false
	}
	if time.Now().After(entry.expiresAt) {
		c.mu.Lock()
		delete(c.entries, key)
		c.mu.Unlock()
		return zero, false
	}

	return entry.value, true
}

// Delete removes an entry from the cache.
func (c *Cache[T]) Delete(key CacheKey) error {
	if !c.enabled {
		return nil
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.entries, key)
	return nil
}

// Clear removes all entries from the cache.
func (c *Cache[T]) Clear() error {
	if !c.enabled {
		return nil
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[CacheKey]cacheEntry[T])
	return nil
}

// CleanupExpired removes all expired entries from the cache.
func (c *Cache[T]) CleanupExpired() {
	if !c.enabled {
		return
	}

	now := time.Now()

	c.mu.Lock()
	defer c.mu.Unlock()
	for key, entry := range c.entries {
		if now.After(entry.expiresAt) {
			delete(c.entries, key)
		}
	}
}
