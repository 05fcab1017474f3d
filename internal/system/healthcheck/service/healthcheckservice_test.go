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

package service

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"

	"github.com/recomlabs/amp/internal/system/database/client"
	dbmodel "github.com/recomlabs/amp/internal/system/database/model"
	"github.com/recomlabs/amp/internal/system/database/provider"
	"github.com/recomlabs/amp/internal/system/healthcheck/model"
	"github.com/recomlabs/amp/tests/mocks/databasemock"
)

type HealthCheckServiceTestSuite struct {
	suite.Suite
}

func TestHealthCheckServiceSuite(t *testing.T) {
	suite.Run(t, new(HealthCheckServiceTestSuite))
}

func (suite *HealthCheckServiceTestSuite) TestCheckReadinessAllUp() {
	mockProvider := &databasemock.MockDBProvider{}
	service := &HealthCheckService{DBProvider: mockProvider}

	status := service.CheckReadiness()

	assert.Equal(suite.T(), model.StatusUp, status.Status)
	assert.Len(suite.T(), status.ServiceStatus, 2)
	for _, svc := range status.ServiceStatus {
		assert.Equal(suite.T(), model.StatusUp, svc.Status)
	}

	// Both configured databases were probed.
	assert.Equal(suite.T(), []string{provider.DBNameAppData, provider.DBNameRuntime},
		mockProvider.GetDBClientCalls)
}

func (suite *HealthCheckServiceTestSuite) TestCheckReadinessRuntimeDBDown() {
	mockProvider := &databasemock.MockDBProvider{
		MockGetDBClient: func(dbName string) (client.DBClientInterface, error) {
			if dbName == provider.DBNameRuntime {
				return &databasemock.MockDBClient{
					MockQuery: func(query dbmodel.DBQuery,
						args ...interface{}) ([]map[string]interface{}, error) {
						return nil, errors.New("connection refused")
					},
				}, nil
			}
			return &databasemock.MockDBClient{}, nil
		},
	}
	service := &HealthCheckService{DBProvider: mockProvider}

	status := service.CheckReadiness()

	assert.Equal(suite.T(), model.StatusDown, status.Status)
	assert.Equal(suite.T(), model.StatusUp, status.ServiceStatus[0].Status)
	assert.Equal(suite.T(), model.StatusDown, status.ServiceStatus[1].Status)
}

func (suite *HealthCheckServiceTestSuite) TestCheckReadinessProviderFailure() {
	mockProvider := &databasemock.MockDBProvider{
		MockGetDBClient: func(dbName string) (client.DBClientInterface, error) {
			return nil, errors.New("datasource not configured")
		},
	}
	service := &HealthCheckService{DBProvider: mockProvider}

	status := service.CheckReadiness()

	assert.Equal(suite.T(), model.StatusDown, status.Status)
	for _, svc := range status.ServiceStatus {
		assert.Equal(suite.T(), model.StatusDown, svc.Status)
	}
}
