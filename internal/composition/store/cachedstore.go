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

package store

import (
	"sync"

	"github.com/recomlabs/amp/internal/composition/model"
	"github.com/recomlabs/amp/internal/system/cache"
	"github.com/recomlabs/amp/internal/system/log"
)

var (
	compositionCacheInstance cache.CacheInterface[model.Composition]
	compositionCacheOnce     sync.Once
)

// compositionCache returns the process-wide cache of composition graphs shared
// by the cached store and the mutation invalidation hook.
func compositionCache() cache.CacheInterface[model.Composition] {
	compositionCacheOnce.Do(func() {
		compositionCacheInstance = cache.NewCache[model.Composition]("CompositionByIDCache")
	})
	return compositionCacheInstance
}

// CachedBackedCompositionStore is the implementation of CompositionStoreInterface
// that serves composition graphs from an in-memory cache in front of the database.
type CachedBackedCompositionStore struct {
	CompositionCache cache.CacheInterface[model.Composition]
	Store            CompositionStoreInterface
}

// NewCachedBackedCompositionStore creates a cached composition store over the
// default database-backed store.
func NewCachedBackedCompositionStore() CompositionStoreInterface {
	return &CachedBackedCompositionStore{
		CompositionCache: compositionCache(),
		Store:            NewCompositionStore(),
	}
}

// NewCachedBackedCompositionStoreWith creates a cached composition store with the
// given cache and backing store.
func NewCachedBackedCompositionStoreWith(compositionCache cache.CacheInterface[model.Composition],
	store CompositionStoreInterface) CompositionStoreInterface {
	return &CachedBackedCompositionStore{
		CompositionCache: compositionCache,
		Store:            store,
	}
}

// GetComposition retrieves an active composition with its full graph, using the
// cache if available.
func (s *CachedBackedCompositionStore) GetComposition(id string) (model.Composition, error) {
	cacheKey := cache.CacheKey{
		Key: id,
	}
	if cached, ok := s.CompositionCache.Get(cacheKey); ok {
		return cached, nil
	}

	composition, err := s.Store.GetComposition(id)
	if err != nil {
		return model.Composition{}, err
	}

	if err := s.CompositionCache.Set(cacheKey, composition); err != nil {
		logger := log.GetLogger().With(
			log.String(log.LoggerKeyComponentName, "CachedBackedCompositionStore"))
		logger.Error("Failed to cache composition",
			log.String(log.LoggerKeyCompositionID, id), log.Error(err))
	}

	return composition, nil
}

// InvalidateCompositionCache drops the cached graph for the given composition.
// Mutating writes call this so the execution engine never runs a stale graph.
func InvalidateCompositionCache(id string) {
	if err := compositionCache().Delete(cache.CacheKey{Key: id}); err != nil {
		logger := log.GetLogger().With(
			log.String(log.LoggerKeyComponentName, "CachedBackedCompositionStore"))
		logger.Error("Failed to invalidate composition cache",
			log.String(log.LoggerKeyCompositionID, id), log.Error(err))
	}
}
