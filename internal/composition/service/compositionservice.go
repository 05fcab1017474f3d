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

// Package service provides the implementation for composition management and execution operations.
package service

import (
	"errors"

	"github.com/recomlabs/amp/internal/composition/constants"
	"github.com/recomlabs/amp/internal/composition/graph"
	"github.com/recomlabs/amp/internal/composition/model"
	"github.com/recomlabs/amp/internal/composition/store"
	"github.com/recomlabs/amp/internal/system/error/serviceerror"
	"github.com/recomlabs/amp/internal/system/log"
	"github.com/recomlabs/amp/internal/system/utils"
)

const loggerComponentName = "CompositionMgtService"

// CompositionServiceInterface defines the interface for composition management operations.
type CompositionServiceInterface interface {
	GetCompositionList(userID string, limit, offset int) (*model.CompositionListResponse,
		*serviceerror.ServiceError)
	CreateComposition(userID string,
		request model.CreateCompositionRequest) (*model.Composition, *serviceerror.ServiceError)
	GetComposition(compositionID, userID string) (*model.Composition, *serviceerror.ServiceError)
	UpdateComposition(compositionID, userID string,
		request model.UpdateCompositionRequest) (*model.Composition, *serviceerror.ServiceError)
	ArchiveComposition(compositionID, userID string) *serviceerror.ServiceError
	AddNode(compositionID, userID string,
		request model.AddNodeRequest) (*model.Node, *serviceerror.ServiceError)
	UpdateNode(compositionID, nodeID, userID string,
		request model.AddNodeRequest) (*model.Node, *serviceerror.ServiceError)
	DeleteNode(compositionID, nodeID, userID string) *serviceerror.ServiceError
	AddConnection(compositionID, userID string,
		request model.AddConnectionRequest) (*model.Connection, *serviceerror.ServiceError)
	DeleteConnection(compositionID, connectionID, userID string) *serviceerror.ServiceError
}

// CompositionService is the default implementation of the CompositionServiceInterface.
type CompositionService struct{}

// GetCompositionService creates a new instance of CompositionService.
func GetCompositionService() CompositionServiceInterface {
	return &CompositionService{}
}

// GetCompositionList retrieves compositions visible to the given user.
func (cs *CompositionService) GetCompositionList(userID string, limit,
	offset int) (*model.CompositionListResponse, *serviceerror.ServiceError) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentName))

	totalCount, err := store.GetCompositionListCount(userID)
	if err != nil {
		logger.Error("Failed to get composition count", log.Error(err))
		return nil, &constants.ErrorInternalServerError
	}

	compositions, err := store.GetCompositionList(userID, limit, offset)
	if err != nil {
		logger.Error("Failed to list compositions", log.Error(err))
		return nil, &constants.ErrorInternalServerError
	}

	return &model.CompositionListResponse{
		TotalResults: totalCount,
		Count:        len(compositions),
		Compositions: compositions,
	}, nil
}

// CreateComposition creates a new composition owned by the given user. The node
// and connection graph is validated before anything is persisted.
func (cs *CompositionService) CreateComposition(userID string,
	request model.CreateCompositionRequest) (*model.Composition, *serviceerror.ServiceError) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentName))
	logger.Debug("Creating composition", log.String("name", request.Name))

	if request.Name == "" {
		return nil, &constants.ErrorInvalidRequestFormat
	}
	if svcErr := validateGraph(request.Nodes, request.Connections); svcErr != nil {
		return nil, svcErr
	}

	visibility := request.Visibility
	if visibility == "" {
		visibility = model.VisibilityPrivate
	}

	composition := model.Composition{
		ID:               utils.GenerateUUID(),
		Name:             request.Name,
		Description:      request.Description,
		Canvas:           request.Canvas,
		GlobalParameters: request.GlobalParameters,
		Visibility:       visibility,
		Lifecycle:        model.LifecycleActive,
		ExecutionConfig:  normalizeExecutionConfig(request.ExecutionConfig),
		CreatedBy:        userID,
		Nodes:            request.Nodes,
		Connections:      request.Connections,
	}

	if err := store.CreateComposition(composition); err != nil {
		logger.Error("Failed to create composition", log.Error(err))
		return nil, &constants.ErrorInternalServerError
	}

	logger.Debug("Successfully created composition", log.String(log.LoggerKeyCompositionID, composition.ID))
	return &composition, nil
}

// GetComposition retrieves a composition by its id with its full graph, enforcing
// visibility rules.
func (cs *CompositionService) GetComposition(compositionID,
	userID string) (*model.Composition, *serviceerror.ServiceError) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentName))

	if compositionID == "" {
		return nil, &constants.ErrorMissingCompositionID
	}

	composition, err := store.GetComposition(compositionID, true)
	if err != nil {
		if errors.Is(err, model.ErrCompositionNotFound) {
			logger.Debug("Composition not found", log.String(log.LoggerKeyCompositionID, compositionID))
			return nil, &constants.ErrorCompositionNotFound
		}
		logger.Error("Failed to retrieve composition",
			log.String(log.LoggerKeyCompositionID, compositionID), log.Error(err))
		return nil, &constants.ErrorInternalServerError
	}

	if composition.Visibility != model.VisibilityPublic && composition.CreatedBy != userID {
		logger.Debug("Composition access denied", log.String(log.LoggerKeyCompositionID, compositionID))
		return nil, &constants.ErrorCompositionAccessDenied
	}

	return &composition, nil
}

// UpdateComposition updates the composition's top-level attributes. Only the
// owner may mutate a composition.
func (cs *CompositionService) UpdateComposition(compositionID, userID string,
	request model.UpdateCompositionRequest) (*model.Composition, *serviceerror.ServiceError) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentName))
	logger.Debug("Updating composition", log.String(log.LoggerKeyCompositionID, compositionID))

	if request.Name == "" {
		return nil, &constants.ErrorInvalidRequestFormat
	}

	existing, svcErr := cs.getOwnedComposition(compositionID, userID)
	if svcErr != nil {
		return nil, svcErr
	}

	visibility := request.Visibility
	if visibility == "" {
		visibility = existing.Visibility
	}

	updated := model.Composition{
		ID:               existing.ID,
		Name:             request.Name,
		Description:      request.Description,
		Canvas:           request.Canvas,
		GlobalParameters: request.GlobalParameters,
		Visibility:       visibility,
		Lifecycle:        existing.Lifecycle,
		ExecutionConfig:  normalizeExecutionConfig(request.ExecutionConfig),
		CreatedBy:        existing.CreatedBy,
		Nodes:            existing.Nodes,
		Connections:      existing.Connections,
	}

	if err := store.UpdateComposition(updated); err != nil {
		if errors.Is(err, model.ErrCompositionNotFound) {
			return nil, &constants.ErrorCompositionNotFound
		}
		logger.Error("Failed to update composition", log.Error(err))
		return nil, &constants.ErrorInternalServerError
	}

	store.InvalidateCompositionCache(compositionID)

	logger.Debug("Successfully updated composition", log.String(log.LoggerKeyCompositionID, compositionID))
	return &updated, nil
}

// ArchiveComposition archives the specified composition. Only the owner may
// archive a composition.
func (cs *CompositionService) ArchiveComposition(compositionID, userID string) *serviceerror.ServiceError {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentName))
	logger.Debug("Archiving composition", log.String(log.LoggerKeyCompositionID, compositionID))

	if _, svcErr := cs.getOwnedComposition(compositionID, userID); svcErr != nil {
		return svcErr
	}

	if err := store.ArchiveComposition(compositionID); err != nil {
		if errors.Is(err, model.ErrCompositionNotFound) {
			return &constants.ErrorCompositionNotFound
		}
		logger.Error("Failed to archive composition", log.Error(err))
		return &constants.ErrorInternalServerError
	}

	store.InvalidateCompositionCache(compositionID)

	logger.Debug("Successfully archived composition", log.String(log.LoggerKeyCompositionID, compositionID))
	return nil
}

// AddNode adds a node to the composition. Only the owner may mutate the graph.
func (cs *CompositionService) AddNode(compositionID, userID string,
	request model.AddNodeRequest) (*model.Node, *serviceerror.ServiceError) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentName))

	if request.ID == "" || request.TemplateID == "" {
		return nil, &constants.ErrorInvalidRequestFormat
	}

	existing, svcErr := cs.getOwnedComposition(compositionID, userID)
	if svcErr != nil {
		return nil, svcErr
	}

	for _, node := range existing.Nodes {
		if node.ID == request.ID {
			return nil, &constants.ErrorInvalidRequestFormat
		}
	}

	node := model.Node{
		ID:                 request.ID,
		TemplateID:         request.TemplateID,
		Position:           request.Position,
		ParameterOverrides: request.ParameterOverrides,
		MappedParameters:   request.MappedParameters,
	}

	if err := store.AddNode(compositionID, node); err != nil {
		logger.Error("Failed to add node", log.String(log.LoggerKeyCompositionID, compositionID),
			log.Error(err))
		return nil, &constants.ErrorInternalServerError
	}

	store.InvalidateCompositionCache(compositionID)

	logger.Debug("Successfully added node", log.String(log.LoggerKeyCompositionID, compositionID),
		log.String(log.LoggerKeyNodeID, node.ID))
	return &node, nil
}

// UpdateNode updates a node within the composition. Only the owner may mutate the graph.
func (cs *CompositionService) UpdateNode(compositionID, nodeID, userID string,
	request model.AddNodeRequest) (*model.Node, *serviceerror.ServiceError) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentName))

	if request.TemplateID == "" {
		return nil, &constants.ErrorInvalidRequestFormat
	}

	if _, svcErr := cs.getOwnedComposition(compositionID, userID); svcErr != nil {
		return nil, svcErr
	}

	node := model.Node{
		ID:                 nodeID,
		TemplateID:         request.TemplateID,
		Position:           request.Position,
		ParameterOverrides: request.ParameterOverrides,
		MappedParameters:   request.MappedParameters,
	}

	if err := store.UpdateNode(compositionID, node); err != nil {
		if errors.Is(err, model.ErrNodeNotFound) {
			return nil, &constants.ErrorNodeNotFound
		}
		logger.Error("Failed to update node", log.String(log.LoggerKeyCompositionID, compositionID),
			log.Error(err))
		return nil, &constants.ErrorInternalServerError
	}

	store.InvalidateCompositionCache(compositionID)

	return &node, nil
}

// DeleteNode removes a node and every connection touching it. Only the owner may
// mutate the graph.
func (cs *CompositionService) DeleteNode(compositionID, nodeID, userID string) *serviceerror.ServiceError {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentName))

	if _, svcErr := cs.getOwnedComposition(compositionID, userID); svcErr != nil {
		return svcErr
	}

	if err := store.DeleteNode(compositionID, nodeID); err != nil {
		if errors.Is(err, model.ErrNodeNotFound) {
			return &constants.ErrorNodeNotFound
		}
		logger.Error("Failed to delete node", log.String(log.LoggerKeyCompositionID, compositionID),
			log.Error(err))
		return &constants.ErrorInternalServerError
	}

	store.InvalidateCompositionCache(compositionID)

	logger.Debug("Successfully deleted node", log.String(log.LoggerKeyCompositionID, compositionID),
		log.String(log.LoggerKeyNodeID, nodeID))
	return nil
}

// AddConnection adds a connection to the composition after checking that both
// endpoints exist, the connection id is unique, and the resulting graph stays acyclic.
func (cs *CompositionService) AddConnection(compositionID, userID string,
	request model.AddConnectionRequest) (*model.Connection, *serviceerror.ServiceError) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentName))

	if request.ID == "" || request.SourceNodeID == "" || request.TargetNodeID == "" {
		return nil, &constants.ErrorInvalidRequestFormat
	}

	existing, svcErr := cs.getOwnedComposition(compositionID, userID)
	if svcErr != nil {
		return nil, svcErr
	}

	for _, conn := range existing.Connections {
		if conn.ID == request.ID {
			return nil, &constants.ErrorDuplicateConnectionID
		}
	}

	nodeIDs := make(map[string]bool, len(existing.Nodes))
	for _, node := range existing.Nodes {
		nodeIDs[node.ID] = true
	}
	if !nodeIDs[request.SourceNodeID] || !nodeIDs[request.TargetNodeID] {
		return nil, &constants.ErrorConnectionEndpointNotFound
	}

	connection := model.Connection{
		ID:            request.ID,
		SourceNodeID:  request.SourceNodeID,
		TargetNodeID:  request.TargetNodeID,
		FieldMappings: request.FieldMappings,
		Required:      request.Required,
	}

	if !graph.IsDAG(existing.Nodes, append(existing.Connections, connection)) {
		return nil, &constants.ErrorCyclicGraph
	}

	if err := store.AddConnection(compositionID, connection); err != nil {
		logger.Error("Failed to add connection", log.String(log.LoggerKeyCompositionID, compositionID),
			log.Error(err))
		return nil, &constants.ErrorInternalServerError
	}

	store.InvalidateCompositionCache(compositionID)

	logger.Debug("Successfully added connection", log.String(log.LoggerKeyCompositionID, compositionID))
	return &connection, nil
}

// DeleteConnection removes a connection from the composition. Only the owner may
// mutate the graph.
func (cs *CompositionService) DeleteConnection(compositionID, connectionID,
	userID string) *serviceerror.ServiceError {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentName))

	if _, svcErr := cs.getOwnedComposition(compositionID, userID); svcErr != nil {
		return svcErr
	}

	if err := store.DeleteConnection(compositionID, connectionID); err != nil {
		if errors.Is(err, model.ErrConnectionNotFound) {
			return &constants.ErrorConnectionNotFound
		}
		logger.Error("Failed to delete connection",
			log.String(log.LoggerKeyCompositionID, compositionID), log.Error(err))
		return &constants.ErrorInternalServerError
	}

	store.InvalidateCompositionCache(compositionID)

	return nil
}

// getOwnedComposition retrieves the composition and ensures the caller owns it.
func (cs *CompositionService) getOwnedComposition(compositionID,
	userID string) (*model.Composition, *serviceerror.ServiceError) {
	existing, svcErr := cs.GetComposition(compositionID, userID)
	if svcErr != nil {
		return nil, svcErr
	}
	if existing.CreatedBy != userID {
		return nil, &constants.ErrorCompositionAccessDenied
	}
	return existing, nil
}

// validateGraph checks that the node and connection set forms a valid directed
// acyclic graph with unique connection ids and resolvable endpoints.
func validateGraph(nodes []model.Node, connections []model.Connection) *serviceerror.ServiceError {
	nodeIDs := make(map[string]bool, len(nodes))
	for _, node := range nodes {
		if node.ID == "" || node.TemplateID == "" {
			return &constants.ErrorInvalidRequestFormat
		}
		if nodeIDs[node.ID] {
			return &constants.ErrorInvalidRequestFormat
		}
		nodeIDs[node.ID] = true
	}

	connectionIDs := make(map[string]bool, len(connections))
	for _, conn := range connections {
		if conn.ID == "" {
			return &constants.ErrorInvalidRequestFormat
		}
		if connectionIDs[conn.ID] {
			return &constants.ErrorDuplicateConnectionID
		}
		connectionIDs[conn.ID] = true

		if !nodeIDs[conn.SourceNodeID] || !nodeIDs[conn.TargetNodeID] {
			return &constants.ErrorConnectionEndpointNotFound
		}
	}

	if !graph.IsDAG(nodes, connections) {
		return &constants.ErrorCyclicGraph
	}

	return nil
}

// normalizeExecutionConfig fills defaults for unset execution config fields.
func normalizeExecutionConfig(execConfig model.ExecutionConfig) model.ExecutionConfig {
	if execConfig.Mode == "" {
		execConfig.Mode = model.ExecutionModeSequential
	}
	if execConfig.ErrorPolicy == "" {
		execConfig.ErrorPolicy = model.ErrorPolicyFailFast
	}
	return execConfig
}
