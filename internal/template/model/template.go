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

// Package model defines the data structures for query template management.
package model

import "errors"

// ErrTemplateNotFound is returned by the store when a template does not exist.
var ErrTemplateNotFound = errors.New("template not found")

// Lifecycle represents the lifecycle state of a template.
type Lifecycle string

const (
	// LifecycleActive indicates the template is available for use.
	LifecycleActive Lifecycle = "ACTIVE"
	// LifecycleArchived indicates the template is soft-deleted.
	LifecycleArchived Lifecycle = "ARCHIVED"
)

// Visibility represents who can read a template.
type Visibility string

const (
	// VisibilityPublic allows any user to read the template.
	VisibilityPublic Visibility = "PUBLIC"
	// VisibilityPrivate restricts reads to the owner.
	VisibilityPrivate Visibility = "PRIVATE"
)

// ParameterType is the closed set of supported template parameter types.
type ParameterType string

const (
	// ParameterTypeString is a plain string parameter.
	ParameterTypeString ParameterType = "string"
	// ParameterTypeNumber is a numeric parameter.
	ParameterTypeNumber ParameterType = "number"
	// ParameterTypeBoolean is a boolean parameter.
	ParameterTypeBoolean ParameterType = "boolean"
	// ParameterTypeStringList is a list of strings.
	ParameterTypeStringList ParameterType = "string_list"
	// ParameterTypeNumberList is a list of numbers.
	ParameterTypeNumberList ParameterType = "number_list"
	// ParameterTypeDate is an ISO-8601 date string.
	ParameterTypeDate ParameterType = "date"
	// ParameterTypeCampaignList is a list of campaign identifiers.
	ParameterTypeCampaignList ParameterType = "campaign_list"
)

// ParameterDefinition declares one named parameter of a SQL template.
type ParameterDefinition struct {
	Name         string        `json:"name"`
	Type         ParameterType `json:"type"`
	Required     bool          `json:"required"`
	DefaultValue interface{}   `json:"default_value,omitempty"`
	Description  string        `json:"description,omitempty"`
}

// Template represents a reusable parameterized SQL query definition.
type Template struct {
	ID          string                `json:"id"`
	Name        string                `json:"name"`
	Description string                `json:"description,omitempty"`
	SQLTemplate string                `json:"sql_template"`
	Parameters  []ParameterDefinition `json:"parameters"`
	Category    string                `json:"category,omitempty"`
	Visibility  Visibility            `json:"visibility"`
	Lifecycle   Lifecycle             `json:"lifecycle"`
	CreatedBy   string                `json:"created_by"`
	CreatedAt   string                `json:"created_at,omitempty"`
	UpdatedAt   string                `json:"updated_at,omitempty"`
}

// TemplateBasic holds the subset of template attributes returned in list responses.
type TemplateBasic struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	Description string     `json:"description,omitempty"`
	Category    string     `json:"category,omitempty"`
	Visibility  Visibility `json:"visibility"`
}

// TemplateListResponse is the paginated response for template list requests.
type TemplateListResponse struct {
	TotalResults int             `json:"total_results"`
	Count        int             `json:"count"`
	Templates    []TemplateBasic `json:"templates"`
}

// CreateTemplateRequest is the request body for creating a template.
type CreateTemplateRequest struct {
	Name        string                `json:"name"`
	Description string                `json:"description,omitempty"`
	SQLTemplate string                `json:"sql_template"`
	Parameters  []ParameterDefinition `json:"parameters,omitempty"`
	Category    string                `json:"category,omitempty"`
	Visibility  Visibility            `json:"visibility,omitempty"`
}

// UpdateTemplateRequest is the request body for updating a template.
type UpdateTemplateRequest struct {
	Name        string                `json:"name"`
	Description string                `json:"description,omitempty"`
	SQLTemplate string                `json:"sql_template"`
	Parameters  []ParameterDefinition `json:"parameters,omitempty"`
	Category    string                `json:"category,omitempty"`
	Visibility  Visibility            `json:"visibility,omitempty"`
}
