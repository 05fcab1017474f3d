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

// Package model defines the data structures for composition management and execution.
package model

import (
	"encoding/json"
	"errors"
)

// Store-level sentinel errors for composition persistence operations.
var (
	// ErrCompositionNotFound is returned when a composition does not exist.
	ErrCompositionNotFound = errors.New("composition not found")
	// ErrNodeNotFound is returned when a node does not exist within a composition.
	ErrNodeNotFound = errors.New("node not found")
	// ErrConnectionNotFound is returned when a connection does not exist within a composition.
	ErrConnectionNotFound = errors.New("connection not found")
	// ErrDuplicateConnectionID is returned when a connection id collides within a composition.
	ErrDuplicateConnectionID = errors.New("connection id already exists in composition")
	// ErrConnectionEndpointNotFound is returned when a connection references a missing node.
	ErrConnectionEndpointNotFound = errors.New("connection source or target node not found")
	// ErrExecutionRecordNotFound is returned when a composition execution record does not exist.
	ErrExecutionRecordNotFound = errors.New("composition execution not found")
)

// Lifecycle represents the lifecycle state of a composition.
type Lifecycle string

const (
	// LifecycleActive indicates the composition is available for use.
	LifecycleActive Lifecycle = "ACTIVE"
	// LifecycleArchived indicates the composition is soft-deleted.
	LifecycleArchived Lifecycle = "ARCHIVED"
)

// Visibility represents who can read a composition.
type Visibility string

const (
	// VisibilityPublic allows any user to read the composition.
	VisibilityPublic Visibility = "PUBLIC"
	// VisibilityPrivate restricts reads to the owner.
	VisibilityPrivate Visibility = "PRIVATE"
)

// ExecutionMode selects how a composition's nodes are orchestrated.
type ExecutionMode string

const (
	// ExecutionModeSequential runs nodes one at a time in topological order.
	ExecutionModeSequential ExecutionMode = "sequential"
	// ExecutionModeParallel runs independent nodes concurrently within a slot budget.
	ExecutionModeParallel ExecutionMode = "parallel"
)

// ErrorPolicy governs whether a node failure halts remaining work.
type ErrorPolicy string

const (
	// ErrorPolicyFailFast stops processing remaining nodes after the first failure.
	ErrorPolicyFailFast ErrorPolicy = "fail_fast"
	// ErrorPolicyContinue attempts every node regardless of earlier failures.
	ErrorPolicyContinue ErrorPolicy = "continue"
)

// DefaultMaxParallel is the default parallel-slot budget for parallel mode.
const DefaultMaxParallel = 3

// ExecutionConfig holds the composition-level orchestration settings.
type ExecutionConfig struct {
	Mode        ExecutionMode `json:"mode,omitempty"`
	ErrorPolicy ErrorPolicy   `json:"error_policy,omitempty"`
	MaxParallel int           `json:"max_parallel,omitempty"`
}

// Position is an opaque 2D canvas position for a node.
type Position struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// MappedParameter declares that a node parameter is populated directly from an
// upstream node's output field, independent of any connection.
type MappedParameter struct {
	SourceNodeID string `json:"source_node_id"`
	SourceField  string `json:"source_field"`
	Transform    string `json:"transform,omitempty"`
	Separator    string `json:"separator,omitempty"`
}

// Node is one step in a composition, bound to a reusable query template.
// Its id is unique within the owning composition, not globally.
type Node struct {
	ID                 string                     `json:"id"`
	TemplateID         string                     `json:"template_id"`
	Position           Position                   `json:"position"`
	ParameterOverrides map[string]interface{}     `json:"parameter_overrides,omitempty"`
	MappedParameters   map[string]MappedParameter `json:"mapped_parameters,omitempty"`
}

// FieldMapping maps a source node output field onto a target node parameter,
// optionally through a named transform.
type FieldMapping struct {
	SourceField     string `json:"source_field"`
	TargetParameter string `json:"target_parameter"`
	Transform       string `json:"transform,omitempty"`
	Separator       string `json:"separator,omitempty"`
}

// Connection is a directed dependency from one node's output to another node's input.
type Connection struct {
	ID            string         `json:"id"`
	SourceNodeID  string         `json:"source_node_id"`
	TargetNodeID  string         `json:"target_node_id"`
	FieldMappings []FieldMapping `json:"field_mappings,omitempty"`
	Required      bool           `json:"required"`
}

// Composition is a named, versioned pipeline definition owning nodes and connections.
type Composition struct {
	ID               string                 `json:"id"`
	Name             string                 `json:"name"`
	Description      string                 `json:"description,omitempty"`
	Canvas           json.RawMessage        `json:"canvas,omitempty"`
	GlobalParameters map[string]interface{} `json:"global_parameters,omitempty"`
	Visibility       Visibility             `json:"visibility"`
	Lifecycle        Lifecycle              `json:"lifecycle"`
	ExecutionConfig  ExecutionConfig        `json:"execution_config"`
	CreatedBy        string                 `json:"created_by"`
	CreatedAt        string                 `json:"created_at,omitempty"`
	UpdatedAt        string                 `json:"updated_at,omitempty"`
	Nodes            []Node                 `json:"nodes,omitempty"`
	Connections      []Connection           `json:"connections,omitempty"`
}

// CompositionBasic holds the subset of composition attributes returned in list responses.
type CompositionBasic struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	Description string     `json:"description,omitempty"`
	Visibility  Visibility `json:"visibility"`
}

// CompositionListResponse is the paginated response for composition list requests.
type CompositionListResponse struct {
	TotalResults int                `json:"total_results"`
	Count        int                `json:"count"`
	Compositions []CompositionBasic `json:"compositions"`
}

// CreateCompositionRequest is the request body for creating a composition.
type CreateCompositionRequest struct {
	Name             string                 `json:"name"`
	Description      string                 `json:"description,omitempty"`
	Canvas           json.RawMessage        `json:"canvas,omitempty"`
	GlobalParameters map[string]interface{} `json:"global_parameters,omitempty"`
	Visibility       Visibility             `json:"visibility,omitempty"`
	ExecutionConfig  ExecutionConfig        `json:"execution_config,omitempty"`
	Nodes            []Node                 `json:"nodes,omitempty"`
	Connections      []Connection           `json:"connections,omitempty"`
}

// UpdateCompositionRequest is the request body for updating a composition.
type UpdateCompositionRequest struct {
	Name             string                 `json:"name"`
	Description      string                 `json:"description,omitempty"`
	Canvas           json.RawMessage        `json:"canvas,omitempty"`
	GlobalParameters map[string]interface{} `json:"global_parameters,omitempty"`
	Visibility       Visibility             `json:"visibility,omitempty"`
	ExecutionConfig  ExecutionConfig        `json:"execution_config,omitempty"`
}

// AddNodeRequest is the request body for adding a node to a composition.
type AddNodeRequest struct {
	ID                 string                     `json:"id"`
	TemplateID         string                     `json:"template_id"`
	Position           Position                   `json:"position"`
	ParameterOverrides map[string]interface{}     `json:"parameter_overrides,omitempty"`
	MappedParameters   map[string]MappedParameter `json:"mapped_parameters,omitempty"`
}

// AddConnectionRequest is the request body for adding a connection to a composition.
type AddConnectionRequest struct {
	ID            string         `json:"id"`
	SourceNodeID  string         `json:"source_node_id"`
	TargetNodeID  string         `json:"target_node_id"`
	FieldMappings []FieldMapping `json:"field_mappings,omitempty"`
	Required      bool           `json:"required"`
}
