/*
 * Copyright (c) 2025, WSO2 LLC. (http://www.wso2.com).
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

// Package provider provides the composition service instances.
package provider

import (
	"github.com/recomlabs/amp/internal/composition/service"
)

// CompositionProviderInterface defines the interface for the composition providers.
type CompositionProviderInterface interface {
	GetCompositionService() service.CompositionServiceInterface
	GetExecutionService() service.ExecutionServiceInterface
}

// CompositionProvider is the default implementation of the CompositionProviderInterface.
type CompositionProvider struct{}

// NewCompositionProvider creates a new instance of CompositionProvider.
func NewCompositionProvider() CompositionProviderInterface {
	return &CompositionProvider{}
}

// GetCompositionService returns the composition management service instance.
func (cp *CompositionProvider) GetCompositionService() service.CompositionServiceInterface {
	return service.GetCompositionService()
}

// GetExecutionService returns the composition execution service instance.
func (cp *CompositionProvider) GetExecutionService() service.ExecutionServiceInterface {
	return service.GetExecutionService()
}
