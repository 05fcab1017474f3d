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

// Package provider provides the query execution service instances.
package provider

import "github.com/recomlabs/amp/internal/queryexec/service"

// QueryExecProviderInterface defines the interface for obtaining query execution services.
type QueryExecProviderInterface interface {
	GetQueryExecService() service.QueryExecServiceInterface
	GetAdapter() service.AdapterInterface
}

// QueryExecProvider is the default implementation of QueryExecProviderInterface.
type QueryExecProvider struct{}

// NewQueryExecProvider creates a new instance of QueryExecProvider.
func NewQueryExecProvider() QueryExecProviderInterface {
	return &QueryExecProvider{}
}

// GetQueryExecService returns the REST-facing query execution service instance.
func (qp *QueryExecProvider) GetQueryExecService() service.QueryExecServiceInterface {
	return service.GetQueryExecService()
}

// GetAdapter returns the query execution backend adapter instance.
func (qp *QueryExecProvider) GetAdapter() service.AdapterInterface {
	return service.NewAdapter()
}
