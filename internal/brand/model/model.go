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

// Package model defines the data structures for brand management operations.
package model

import "errors"

// ErrBrandNotFound is returned by the store when a brand does not exist.
var ErrBrandNotFound = errors.New("brand not found")

// Brand groups campaigns under a single advertiser identity and carries the
// AMC instance the advertiser's queries run against.
type Brand struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	Description   string `json:"description,omitempty"`
	AMCInstanceID string `json:"amc_instance_id,omitempty"`
	CreatedBy     string `json:"created_by"`
	CreatedAt     string `json:"created_at,omitempty"`
}

// BrandListResponse is the paginated response for brand list requests.
type BrandListResponse struct {
	TotalResults int     `json:"total_results"`
	Count        int     `json:"count"`
	Brands       []Brand `json:"brands"`
}

// CreateBrandRequest is the request body for creating a brand.
type CreateBrandRequest struct {
	Name          string `json:"name"`
	Description   string `json:"description,omitempty"`
	AMCInstanceID string `json:"amc_instance_id,omitempty"`
}

// UpdateBrandRequest is the request body for updating a brand.
type UpdateBrandRequest struct {
	Name          string `json:"name"`
	Description   string `json:"description,omitempty"`
	AMCInstanceID string `json:"amc_instance_id,omitempty"`
}
