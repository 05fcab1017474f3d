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

// Package provider provides the brand service instance.
package provider

import (
	"github.com/recomlabs/amp/internal/brand/service"
)

// BrandProviderInterface defines the interface for the brand provider.
type BrandProviderInterface interface {
	GetBrandService() service.BrandServiceInterface
}

// BrandProvider is the default implementation of the BrandProviderInterface.
type BrandProvider struct{}

// NewBrandProvider creates a new instance of BrandProvider.
func NewBrandProvider() BrandProviderInterface {
	return &BrandProvider{}
}

// GetBrandService returns the brand service instance.
func (bp *BrandProvider) GetBrandService() service.BrandServiceInterface {
	return service.GetBrandService()
}
