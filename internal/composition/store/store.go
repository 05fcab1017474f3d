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
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/recomlabs/amp/internal/composition/model"
	dbmodel "github.com/recomlabs/amp/internal/system/database/model"
	"github.com/recomlabs/amp/internal/system/database/provider"
)

// CompositionStoreInterface is the composition read surface consumed by the
// execution engine. The struct implementation delegates to the package-level
// persistence functions.
type CompositionStoreInterface interface {
	// GetComposition retrieves an active composition with its full node and
	// connection graph.
	GetComposition(id string) (model.Composition, error)
}

// CompositionStore is the default implementation of CompositionStoreInterface.
type CompositionStore struct{}

// NewCompositionStore creates a new composition store.
func NewCompositionStore() CompositionStoreInterface {
	return &CompositionStore{}
}

// GetComposition retrieves an active composition with its full graph.
func (s *CompositionStore) GetComposition(id string) (model.Composition, error) {
	return GetComposition(id, true)
}

// GetCompositionListCount retrieves the total count of compositions visible to the given user.
func GetCompositionListCount(userID string) (int, error) {
	dbClient, err := provider.NewDBProvider().GetDBClient(provider.DBNameAppData)
	if err != nil {
		return 0, fmt.Errorf("failed to get database client: %w", err)
	}

	countResults, err := dbClient.Query(QueryGetCompositionListCount, userID)
	if err != nil {
		return 0, fmt.Errorf("failed to execute count query: %w", err)
	}

	var totalCount int
	if len(countResults) > 0 {
		if total, ok := countResults[0]["total"].(int64); ok {
			totalCount = int(total)
		}
	}

	return totalCount, nil
}

// GetCompositionList retrieves compositions visible to the given user with pagination.
func GetCompositionList(userID string, limit, offset int) ([]model.CompositionBasic, error) {
	dbClient, err := provider.NewDBProvider().GetDBClient(provider.DBNameAppData)
	if err != nil {
		return nil, fmt.Errorf("failed to get database client: %w", err)
	}

	results, err := dbClient.Query(QueryGetCompositionList, userID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to execute composition list query: %w", err)
	}

	compositions := make([]model.CompositionBasic, 0, len(results))
	for _, row := range results {
		composition := model.CompositionBasic{}
		if id, ok := row["composition_id"].(string); ok {
			composition.ID = id
		}
		if name, ok := row["name"].(string); ok {
			composition.Name = name
		}
		if description, ok := row["description"].(string); ok {
			composition.Description = description
		}
		if visibility, ok := row["visibility"].(string); ok {
			composition.Visibility = model.Visibility(visibility)
		}
		compositions = append(compositions, composition)
	}

	return compositions, nil
}

// CreateComposition creates a composition together with its nodes and connections
// in a single transaction.
func CreateComposition(composition model.Composition) error {
	dbClient, err := provider.NewDBProvider().GetDBClient(provider.DBNameAppData)
	if err != nil {
		return fmt.Errorf("failed to get database client: %w", err)
	}

	globalParams, err := json.Marshal(composition.GlobalParameters)
	if err != nil {
		return fmt.Errorf("failed to marshal global parameters: %w", err)
	}
	executionConfig, err := json.Marshal(composition.ExecutionConfig)
	if err != nil {
		return fmt.Errorf("failed to marshal execution config: %w", err)
	}

	now := time.Now().UTC().Format(time.RFC3339)

	tx, err := dbClient.BeginTx()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	_, err = tx.Exec(
		QueryCreateComposition.Query,
		composition.ID,
		composition.Name,
		composition.Description,
		string(composition.Canvas),
		string(globalParams),
		string(composition.Visibility),
		string(composition.Lifecycle),
		string(executionConfig),
		composition.CreatedBy,
		now,
		now,
	)
	if err != nil {
		if rollbackErr := tx.Rollback(); rollbackErr != nil {
			err = errors.Join(err, fmt.Errorf("failed to rollback transaction: %w", rollbackErr))
		}
		return fmt.Errorf("failed to execute query: %w", err)
	}

	for index, node := range composition.Nodes {
		if err := insertNodeInTx(tx, composition.ID, node, index); err != nil {
			if rollbackErr := tx.Rollback(); rollbackErr != nil {
				err = errors.Join(err, fmt.Errorf("failed to rollback transaction: %w", rollbackErr))
			}
			return err
		}
	}

	for index, conn := range composition.Connections {
		if err := insertConnectionInTx(tx, composition.ID, conn, index); err != nil {
			if rollbackErr := tx.Rollback(); rollbackErr != nil {
				err = errors.Join(err, fmt.Errorf("failed to rollback transaction: %w", rollbackErr))
			}
			return err
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

// GetComposition retrieves an active composition by its id, optionally with its
// node and connection graph.
func GetComposition(id string, includeGraph bool) (model.Composition, error) {
	dbClient, err := provider.NewDBProvider().GetDBClient(provider.DBNameAppData)
	if err != nil {
		return model.Composition{}, fmt.Errorf("failed to get database client: %w", err)
	}

	results, err := dbClient.Query(QueryGetCompositionByID, id)
	if err != nil {
		return model.Composition{}, fmt.Errorf("failed to execute query: %w", err)
	}

	if len(results) == 0 {
		return model.Composition{}, model.ErrCompositionNotFound
	}

	if len(results) != 1 {
		return model.Composition{}, fmt.Errorf("unexpected number of results: %d", len(results))
	}

	composition, err := buildCompositionFromResultRow(results[0])
	if err != nil {
		return model.Composition{}, err
	}

	if includeGraph {
		var nodes []model.Node
		var connections []model.Connection

		// The node and connection sets are independent, load them concurrently.
		group := new(errgroup.Group)
		group.Go(func() error {
			var loadErr error
			nodes, loadErr = GetCompositionNodes(id)
			return loadErr
		})
		group.Go(func() error {
			var loadErr error
			connections, loadErr = GetCompositionConnections(id)
			return loadErr
		})
		if err := group.Wait(); err != nil {
			return model.Composition{}, err
		}
		composition.Nodes = nodes
		composition.Connections = connections
	}

	return composition, nil
}

// UpdateComposition updates an existing active composition.
func UpdateComposition(composition model.Composition) error {
	dbClient, err := provider.NewDBProvider().GetDBClient(provider.DBNameAppData)
	if err != nil {
		return fmt.Errorf("failed to get database client: %w", err)
	}

	globalParams, err := json.Marshal(composition.GlobalParameters)
	if err != nil {
		return fmt.Errorf("failed to marshal global parameters: %w", err)
	}
	executionConfig, err := json.Marshal(composition.ExecutionConfig)
	if err != nil {
		return fmt.Errorf("failed to marshal execution config: %w", err)
	}

	rowsAffected, err := dbClient.Execute(
		QueryUpdateComposition,
		composition.ID,
		composition.Name,
		composition.Description,
		string(composition.Canvas),
		string(globalParams),
		string(composition.Visibility),
		string(executionConfig),
		time.Now().UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("failed to execute query: %w", err)
	}

	if rowsAffected == 0 {
		return model.ErrCompositionNotFound
	}

	return nil
}

// ArchiveComposition archives the composition instead of physically removing it.
func ArchiveComposition(id string) error {
	dbClient, err := provider.NewDBProvider().GetDBClient(provider.DBNameAppData)
	if err != nil {
		return fmt.Errorf("failed to get database client: %w", err)
	}

	rowsAffected, err := dbClient.Execute(QueryArchiveComposition, id,
		time.Now().UTC().Format(time.RFC3339))
	if err != nil {
		return fmt.Errorf("failed to execute query: %w", err)
	}

	if rowsAffected == 0 {
		return model.ErrCompositionNotFound
	}

	return nil
}

// GetCompositionNodes retrieves all nodes of a composition in insertion order.
func GetCompositionNodes(compositionID string) ([]model.Node, error) {
	dbClient, err := provider.NewDBProvider().GetDBClient(provider.DBNameAppData)
	if err != nil {
		return nil, fmt.Errorf("failed to get database client: %w", err)
	}

	results, err := dbClient.Query(QueryGetCompositionNodes, compositionID)
	if err != nil {
		return nil, fmt.Errorf("failed to execute query: %w", err)
	}

	nodes := make([]model.Node, 0, len(results))
	for _, row := range results {
		node, err := buildNodeFromResultRow(row)
		if err != nil {
			return nil, err
		}
		nodes = append(nodes, node)
	}

	return nodes, nil
}

// AddNode appends a node to the composition.
func AddNode(compositionID string, node model.Node) error {
	dbClient, err := provider.NewDBProvider().GetDBClient(provider.DBNameAppData)
	if err != nil {
		return fmt.Errorf("failed to get database client: %w", err)
	}

	index, err := nextIndex(QueryGetMaxNodeIndex, compositionID)
	if err != nil {
		return err
	}

	overrides, err := json.Marshal(node.ParameterOverrides)
	if err != nil {
		return fmt.Errorf("failed to marshal parameter overrides: %w", err)
	}
	mapped, err := json.Marshal(node.MappedParameters)
	if err != nil {
		return fmt.Errorf("failed to marshal mapped parameters: %w", err)
	}

	_, err = dbClient.Execute(
		QueryCreateCompositionNode,
		compositionID,
		node.ID,
		node.TemplateID,
		node.Position.X,
		node.Position.Y,
		string(overrides),
		string(mapped),
		index,
	)
	if err != nil {
		return fmt.Errorf("failed to execute query: %w", err)
	}

	return nil
}

// UpdateNode updates a node within the composition.
func UpdateNode(compositionID string, node model.Node) error {
	dbClient, err := provider.NewDBProvider().GetDBClient(provider.DBNameAppData)
	if err != nil {
		return fmt.Errorf("failed to get database client: %w", err)
	}

	overrides, err := json.Marshal(node.ParameterOverrides)
	if err != nil {
		return fmt.Errorf("failed to marshal parameter overrides: %w", err)
	}
	mapped, err := json.Marshal(node.MappedParameters)
	if err != nil {
		return fmt.Errorf("failed to marshal mapped parameters: %w", err)
	}

	rowsAffected, err := dbClient.Execute(
		QueryUpdateCompositionNode,
		compositionID,
		node.ID,
		node.TemplateID,
		node.Position.X,
		node.Position.Y,
		string(overrides),
		string(mapped),
	)
	if err != nil {
		return fmt.Errorf("failed to execute query: %w", err)
	}

	if rowsAffected == 0 {
		return model.ErrNodeNotFound
	}

	return nil
}

// DeleteNode removes a node and every connection touching it in a single transaction.
func DeleteNode(compositionID, nodeID string) error {
	dbClient, err := provider.NewDBProvider().GetDBClient(provider.DBNameAppData)
	if err != nil {
		return fmt.Errorf("failed to get database client: %w", err)
	}

	tx, err := dbClient.BeginTx()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	result, err := tx.Exec(QueryDeleteCompositionNode.Query, compositionID, nodeID)
	if err != nil {
		if rollbackErr := tx.Rollback(); rollbackErr != nil {
			err = errors.Join(err, fmt.Errorf("failed to rollback transaction: %w", rollbackErr))
		}
		return fmt.Errorf("failed to execute query: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		if rollbackErr := tx.Rollback(); rollbackErr != nil {
			err = errors.Join(err, fmt.Errorf("failed to rollback transaction: %w", rollbackErr))
		}
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		if rollbackErr := tx.Rollback(); rollbackErr != nil {
			return errors.Join(model.ErrNodeNotFound,
				fmt.Errorf("failed to rollback transaction: %w", rollbackErr))
		}
		return model.ErrNodeNotFound
	}

	if _, err := tx.Exec(QueryDeleteConnectionsByNode.Query, compositionID, nodeID); err != nil {
		if rollbackErr := tx.Rollback(); rollbackErr != nil {
			err = errors.Join(err, fmt.Errorf("failed to rollback transaction: %w", rollbackErr))
		}
		return fmt.Errorf("failed to execute query: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

// GetCompositionConnections retrieves all connections of a composition in insertion order.
func GetCompositionConnections(compositionID string) ([]model.Connection, error) {
	dbClient, err := provider.NewDBProvider().GetDBClient(provider.DBNameAppData)
	if err != nil {
		return nil, fmt.Errorf("failed to get database client: %w", err)
	}

	results, err := dbClient.Query(QueryGetCompositionConnections, compositionID)
	if err != nil {
		return nil, fmt.Errorf("failed to execute query: %w", err)
	}

	connections := make([]model.Connection, 0, len(results))
	for _, row := range results {
		conn, err := buildConnectionFromResultRow(row)
		if err != nil {
			return nil, err
		}
		connections = append(connections, conn)
	}

	return connections, nil
}

// AddConnection appends a connection to the composition.
func AddConnection(compositionID string, conn model.Connection) error {
	dbClient, err := provider.NewDBProvider().GetDBClient(provider.DBNameAppData)
	if err != nil {
		return fmt.Errorf("failed to get database client: %w", err)
	}

	index, err := nextIndex(QueryGetMaxConnectionIndex, compositionID)
	if err != nil {
		return err
	}

	fieldMappings, err := json.Marshal(conn.FieldMappings)
	if err != nil {
		return fmt.Errorf("failed to marshal field mappings: %w", err)
	}

	_, err = dbClient.Execute(
		QueryCreateCompositionConnection,
		compositionID,
		conn.ID,
		conn.SourceNodeID,
		conn.TargetNodeID,
		string(fieldMappings),
		conn.Required,
		index,
	)
	if err != nil {
		return fmt.Errorf("failed to execute query: %w", err)
	}

	return nil
}

// DeleteConnection removes a connection from the composition.
func DeleteConnection(compositionID, connectionID string) error {
	dbClient, err := provider.NewDBProvider().GetDBClient(provider.DBNameAppData)
	if err != nil {
		return fmt.Errorf("failed to get database client: %w", err)
	}

	rowsAffected, err := dbClient.Execute(QueryDeleteCompositionConnection, compositionID, connectionID)
	if err != nil {
		return fmt.Errorf("failed to execute query: %w", err)
	}

	if rowsAffected == 0 {
		return model.ErrConnectionNotFound
	}

	return nil
}

// insertNodeInTx inserts a single node within an open transaction.
func insertNodeInTx(tx dbmodel.TxInterface, compositionID string, node model.Node, index int) error {
	overrides, err := json.Marshal(node.ParameterOverrides)
	if err != nil {
		return fmt.Errorf("failed to marshal parameter overrides: %w", err)
	}
	mapped, err := json.Marshal(node.MappedParameters)
	if err != nil {
		return fmt.Errorf("failed to marshal mapped parameters: %w", err)
	}

	_, err = tx.Exec(
		QueryCreateCompositionNode.Query,
		compositionID,
		node.ID,
		node.TemplateID,
		node.Position.X,
		node.Position.Y,
		string(overrides),
		string(mapped),
		index,
	)
	if err != nil {
		return fmt.Errorf("failed to execute query: %w", err)
	}

	return nil
}

// insertConnectionInTx inserts a single connection within an open transaction.
func insertConnectionInTx(tx dbmodel.TxInterface, compositionID string, conn model.Connection, index int) error {
	fieldMappings, err := json.Marshal(conn.FieldMappings)
	if err != nil {
		return fmt.Errorf("failed to marshal field mappings: %w", err)
	}

	_, err = tx.Exec(
		QueryCreateCompositionConnection.Query,
		compositionID,
		conn.ID,
		conn.SourceNodeID,
		conn.TargetNodeID,
		string(fieldMappings),
		conn.Required,
		index,
	)
	if err != nil {
		return fmt.Errorf("failed to execute query: %w", err)
	}

	return nil
}

// nextIndex returns the next free insertion index for the given max-index query.
func nextIndex(query dbmodel.DBQuery, compositionID string) (int, error) {
	dbClient, err := provider.NewDBProvider().GetDBClient(provider.DBNameAppData)
	if err != nil {
		return 0, fmt.Errorf("failed to get database client: %w", err)
	}

	results, err := dbClient.Query(query, compositionID)
	if err != nil {
		return 0, fmt.Errorf("failed to execute query: %w", err)
	}

	maxIndex := int64(-1)
	if len(results) > 0 {
		if max, ok := results[0]["max_index"].(int64); ok {
			maxIndex = max
		}
	}

	return int(maxIndex) + 1, nil
}

// buildCompositionFromResultRow constructs a model.Composition from a database result row.
func buildCompositionFromResultRow(row map[string]interface{}) (model.Composition, error) {
	compositionID, ok := row["composition_id"].(string)
	if !ok {
		return model.Composition{}, fmt.Errorf("failed to parse composition_id as string")
	}

	name, ok := row["name"].(string)
	if !ok {
		return model.Composition{}, fmt.Errorf("failed to parse name as string")
	}

	createdBy, ok := row["created_by"].(string)
	if !ok {
		return model.Composition{}, fmt.Errorf("failed to parse created_by as string")
	}

	composition := model.Composition{
		ID:        compositionID,
		Name:      name,
		CreatedBy: createdBy,
	}

	if description, ok := row["description"].(string); ok {
		composition.Description = description
	}
	if canvas, ok := row["canvas"].(string); ok && canvas != "" {
		composition.Canvas = json.RawMessage(canvas)
	}
	if visibility, ok := row["visibility"].(string); ok {
		composition.Visibility = model.Visibility(visibility)
	}
	if lifecycle, ok := row["lifecycle"].(string); ok {
		composition.Lifecycle = model.Lifecycle(lifecycle)
	}
	if createdAt, ok := row["created_at"].(string); ok {
		composition.CreatedAt = createdAt
	}
	if updatedAt, ok := row["updated_at"].(string); ok {
		composition.UpdatedAt = updatedAt
	}

	if globalParams, ok := row["global_parameters"].(string); ok && globalParams != "" {
		if err := json.Unmarshal([]byte(globalParams), &composition.GlobalParameters); err != nil {
			return model.Composition{}, fmt.Errorf("failed to unmarshal global parameters: %w", err)
		}
	}
	if executionConfig, ok := row["execution_config"].(string); ok && executionConfig != "" {
		if err := json.Unmarshal([]byte(executionConfig), &composition.ExecutionConfig); err != nil {
			return model.Composition{}, fmt.Errorf("failed to unmarshal execution config: %w", err)
		}
	}

	return composition, nil
}

// buildNodeFromResultRow constructs a model.Node from a database result row.
func buildNodeFromResultRow(row map[string]interface{}) (model.Node, error) {
	nodeID, ok := row["node_id"].(string)
	if !ok {
		return model.Node{}, fmt.Errorf("failed to parse node_id as string")
	}

	templateID, ok := row["template_id"].(string)
	if !ok {
		return model.Node{}, fmt.Errorf("failed to parse template_id as string")
	}

	node := model.Node{
		ID:         nodeID,
		TemplateID: templateID,
	}

	if x, ok := row["position_x"].(float64); ok {
		node.Position.X = x
	}
	if y, ok := row["position_y"].(float64); ok {
		node.Position.Y = y
	}

	if overrides, ok := row["parameter_overrides"].(string); ok && overrides != "" {
		if err := json.Unmarshal([]byte(overrides), &node.ParameterOverrides); err != nil {
			return model.Node{}, fmt.Errorf("failed to unmarshal parameter overrides: %w", err)
		}
	}
	if mapped, ok := row["mapped_parameters"].(string); ok && mapped != "" {
		if err := json.Unmarshal([]byte(mapped), &node.MappedParameters); err != nil {
			return model.Node{}, fmt.Errorf("failed to unmarshal mapped parameters: %w", err)
		}
	}

	return node, nil
}

// buildConnectionFromResultRow constructs a model.Connection from a database result row.
func buildConnectionFromResultRow(row map[string]interface{}) (model.Connection, error) {
	connectionID, ok := row["connection_id"].(string)
	if !ok {
		return model.Connection{}, fmt.Errorf("failed to parse connection_id as string")
	}

	sourceNodeID, ok := row["source_node_id"].(string)
	if !ok {
		return model.Connection{}, fmt.Errorf("failed to parse source_node_id as string")
	}

	targetNodeID, ok := row["target_node_id"].(string)
	if !ok {
		return model.Connection{}, fmt.Errorf("failed to parse target_node_id as string")
	}

	conn := model.Connection{
		ID:           connectionID,
		SourceNodeID: sourceNodeID,
		TargetNodeID: targetNodeID,
	}

	if required, ok := row["required"].(bool); ok {
		conn.Required = required
	} else if required, ok := row["required"].(int64); ok {
		conn.Required = required != 0
	}

	if fieldMappings, ok := row["field_mappings"].(string); ok && fieldMappings != "" {
		if err := json.Unmarshal([]byte(fieldMappings), &conn.FieldMappings); err != nil {
			return model.Connection{}, fmt.Errorf("failed to unmarshal field mappings: %w", err)
		}
	}

	return conn, nil
}
