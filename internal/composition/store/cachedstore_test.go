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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"

	"github.com/recomlabs/amp/internal/composition/model"
	"github.com/recomlabs/amp/internal/system/cache"
	"github.com/recomlabs/amp/internal/system/config"
)

// countingCompositionStore records how many times the backing store is hit.
type countingCompositionStore struct {
	composition model.Composition
	err         error
	calls       int
}

func (s *countingCompositionStore) GetComposition(id string) (model.Composition, error) {
	s.calls++
	if s.err != nil {
		return model.Composition{}, s.err
	}
	return s.composition, nil
}

type CachedStoreTestSuite struct {
	suite.Suite
	backing *countingCompositionStore
	cache   cache.CacheInterface[model.Composition]
	store   CompositionStoreInterface
}

func TestCachedStoreSuite(t *testing.T) {
	suite.Run(t, new(CachedStoreTestSuite))
}

func (suite *CachedStoreTestSuite) SetupTest() {
	config.ResetAMPRuntime()
	err := config.InitializeAMPRuntime("", &config.Config{
		Cache: config.CacheConfig{Size: 10, TTL: 60},
	})
	assert.NoError(suite.T(), err)

	suite.backing = &countingCompositionStore{
		composition: model.Composition{
			ID:        "comp-1",
			Name:      "weekly reporting",
			CreatedBy: "user-1",
			Lifecycle: model.LifecycleActive,
		},
	}
	suite.cache = cache.NewCache[model.Composition]("CompositionByIDCacheTest")
	suite.store = NewCachedBackedCompositionStoreWith(suite.cache, suite.backing)
}

func (suite *CachedStoreTestSuite) TestGetCompositionServesSecondReadFromCache() {
	first, err := suite.store.GetComposition("comp-1")
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), "weekly reporting", first.Name)
	assert.Equal(suite.T(), 1, suite.backing.calls)

	second, err := suite.store.GetComposition("comp-1")
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), first, second)
	assert.Equal(suite.T(), 1, suite.backing.calls)
}

func (suite *CachedStoreTestSuite) TestGetCompositionReloadsAfterInvalidation() {
	_, err := suite.store.GetComposition("comp-1")
	assert.NoError(suite.T(), err)

	assert.NoError(suite.T(), suite.cache.Delete(cache.CacheKey{Key: "comp-1"}))

	suite.backing.composition.Name = "weekly reporting v2"
	reloaded, err := suite.store.GetComposition("comp-1")
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), "weekly reporting v2", reloaded.Name)
	assert.Equal(suite.T(), 2, suite.backing.calls)
}

func (suite *CachedStoreTestSuite) TestGetCompositionDoesNotCacheErrors() {
	suite.backing.err = model.ErrCompositionNotFound

	_, err := suite.store.GetComposition("comp-1")
	assert.ErrorIs(suite.T(), err, model.ErrCompositionNotFound)

	_, err = suite.store.GetComposition("comp-1")
	assert.ErrorIs(suite.T(), err, model.ErrCompositionNotFound)
	assert.Equal(suite.T(), 2, suite.backing.calls)
}
