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

// Package engine implements composition execution: graph validation, parameter
// mapping, and sequential or bounded-parallel node orchestration.
package engine

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/recomlabs/amp/internal/composition/graph"
	"github.com/recomlabs/amp/internal/composition/model"
	"github.com/recomlabs/amp/internal/composition/store"
	"github.com/recomlabs/amp/internal/queryexec/service"
	"github.com/recomlabs/amp/internal/system/config"
	"github.com/recomlabs/amp/internal/system/log"
	"github.com/recomlabs/amp/internal/system/utils"
	templateengine "github.com/recomlabs/amp/internal/template/engine"
)

const loggerComponentName = "CompositionEngine"

// ErrAccessDenied is returned when the caller may not read or act on the composition.
var ErrAccessDenied = errors.New("composition access denied")

// EngineInterface orchestrates composition executions.
type EngineInterface interface {
	// ExecuteComposition validates the composition graph, creates the execution
	// record, runs every reachable node per the composition's execution config,
	// and settles the record with the terminal outcome.
	ExecuteComposition(ctx context.Context, compositionID, instanceID, userID string,
		parameters map[string]interface{}, scheduleID string) (*model.ExecutionResult, error)
	// GetExecution retrieves a composition execution owned by the given user.
	GetExecution(executionID, userID string) (*model.ExecutionRecord, error)
	// CancelExecution marks a running execution cancelled. The cancellation is
	// advisory: queries already submitted to the backend are not recalled.
	CancelExecution(executionID, userID string) (bool, error)
}

// Engine is the default implementation of EngineInterface.
type Engine struct {
	compositionStore store.CompositionStoreInterface
	executionStore   store.ExecutionStoreInterface
	adapter          service.AdapterInterface
}

// NewEngine creates a new composition engine with the default collaborators.
// Composition graphs are read through the cache-backed store.
func NewEngine() EngineInterface {
	return &Engine{
		compositionStore: store.NewCachedBackedCompositionStore(),
		executionStore:   store.NewExecutionStore(),
		adapter:          service.NewAdapter(),
	}
}

// NewEngineWith creates a new composition engine with the given collaborators.
func NewEngineWith(compositionStore store.CompositionStoreInterface,
	executionStore store.ExecutionStoreInterface,
	adapter service.AdapterInterface) EngineInterface {
	return &Engine{
		compositionStore: compositionStore,
		executionStore:   executionStore,
		adapter:          adapter,
	}
}

// ExecuteComposition validates the composition graph, creates the execution record,
// runs every reachable node, and settles the record. Not-found, access, and cyclic
// graph failures surface before any record is written.
func (e *Engine) ExecuteComposition(ctx context.Context, compositionID, instanceID, userID string,
	parameters map[string]interface{}, scheduleID string) (*model.ExecutionResult, error) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentName),
		log.String(log.LoggerKeyCompositionID, compositionID))

	composition, err := e.compositionStore.GetComposition(compositionID)
	if err != nil {
		return nil, err
	}
	if composition.Visibility != model.VisibilityPublic && composition.CreatedBy != userID {
		return nil, ErrAccessDenied
	}

	ranks, err := graph.TopologicalOrder(composition.Nodes, composition.Connections)
	if err != nil {
		return nil, err
	}

	flowParams := mergeParameters(composition.GlobalParameters, parameters)

	record := model.ExecutionRecord{
		ExecutionID:   utils.GenerateUUID(),
		CompositionID: compositionID,
		UserID:        userID,
		InstanceID:    instanceID,
		ScheduleID:    scheduleID,
		Status:        model.ExecutionStatusRunning,
		Parameters:    flowParams,
		TotalNodes:    len(composition.Nodes),
		StartedAt:     time.Now().UTC().Format(time.RFC3339),
	}
	if err := e.executionStore.CreateExecutionRecord(record); err != nil {
		return nil, fmt.Errorf("failed to create execution record: %w", err)
	}

	logger.Info("Starting composition execution",
		log.String(log.LoggerKeyExecutionID, record.ExecutionID),
		log.Int("totalNodes", record.TotalNodes))

	var results map[string]model.NodeResult
	if composition.ExecutionConfig.Mode == model.ExecutionModeParallel {
		results = e.runParallel(ctx, composition, ranks, flowParams, record, logger)
	} else {
		results = e.runSequential(ctx, composition, ranks, flowParams, record, logger)
	}

	record.NodeResults = results
	record.ResultSummary = summarize(composition.Nodes, ranks, results)
	record.CompletedNodes = record.ResultSummary.Completed
	record.FailedNodes = record.ResultSummary.Failed
	record.SkippedNodes = record.ResultSummary.Skipped
	record.CompletedAt = time.Now().UTC().Format(time.RFC3339)

	if record.FailedNodes == 0 {
		record.Status = model.ExecutionStatusCompleted
	} else {
		record.Status = model.ExecutionStatusFailed
	}
	// An advisory cancel between the two record writes wins over the computed
	// terminal status; the node results are still persisted.
	if stored, err := e.executionStore.GetExecutionRecord(record.ExecutionID); err == nil &&
		stored.Status == model.ExecutionStatusCancelled {
		record.Status = model.ExecutionStatusCancelled
	}

	if err := e.executionStore.FinalizeExecutionRecord(record); err != nil {
		logger.Error("Failed to finalize execution record",
			log.String(log.LoggerKeyExecutionID, record.ExecutionID), log.Error(err))
		return nil, fmt.Errorf("failed to finalize execution record: %w", err)
	}

	logger.Info("Composition execution settled",
		log.String(log.LoggerKeyExecutionID, record.ExecutionID),
		log.String("status", string(record.Status)),
		log.Int("completedNodes", record.CompletedNodes),
		log.Int("failedNodes", record.FailedNodes),
		log.Int("skippedNodes", record.SkippedNodes))

	return buildExecutionResult(composition, ranks, record), nil
}

// GetExecution retrieves a composition execution owned by the given user.
func (e *Engine) GetExecution(executionID, userID string) (*model.ExecutionRecord, error) {
	record, err := e.executionStore.GetExecutionRecord(executionID)
	if err != nil {
		return nil, err
	}
	if record.UserID != userID {
		return nil, model.ErrExecutionRecordNotFound
	}
	return &record, nil
}

// CancelExecution marks a running execution cancelled. Only the owner may cancel,
// and only a running execution transitions.
func (e *Engine) CancelExecution(executionID, userID string) (bool, error) {
	record, err := e.executionStore.GetExecutionRecord(executionID)
	if err != nil {
		return false, err
	}
	if record.UserID != userID {
		return false, ErrAccessDenied
	}

	return e.executionStore.UpdateExecutionStatus(executionID,
		model.ExecutionStatusRunning, model.ExecutionStatusCancelled)
}

// runSequential executes nodes one at a time in ascending topological rank.
// Under the fail_fast policy the first failure halts the run and the remaining
// nodes are left unattempted; under continue every node is attempted.
func (e *Engine) runSequential(ctx context.Context, composition model.Composition,
	ranks map[string]int, flowParams map[string]interface{},
	record model.ExecutionRecord, logger *log.Logger) map[string]model.NodeResult {
	nodesByID := indexNodes(composition.Nodes)
	results := make(map[string]model.NodeResult, len(composition.Nodes))

	for _, nodeID := range graph.OrderedNodeIDs(composition.Nodes, ranks) {
		result := e.executeNode(ctx, composition, nodesByID[nodeID], flowParams, results,
			record, logger)
		results[nodeID] = result

		if result.Status == model.NodeStatusFailed &&
			composition.ExecutionConfig.ErrorPolicy != model.ErrorPolicyContinue {
			logger.Info("Halting sequential execution after node failure",
				log.String(log.LoggerKeyExecutionID, record.ExecutionID),
				log.String(log.LoggerKeyNodeID, nodeID))
			break
		}
	}

	return results
}

// runParallel executes independent nodes concurrently within the parallel slot
// budget. A node becomes ready when all its predecessors have settled. Under the
// fail_fast policy a ready node with a failed or skipped predecessor is skipped
// without invoking the backend, and the first failure cancels in-flight siblings
// and skips everything still pending.
func (e *Engine) runParallel(ctx context.Context, composition model.Composition,
	ranks map[string]int, flowParams map[string]interface{},
	record model.ExecutionRecord, logger *log.Logger) map[string]model.NodeResult {
	runCtx, cancelRun := context.WithCancel(ctx)
	defer cancelRun()

	nodesByID := indexNodes(composition.Nodes)
	predecessors := graph.Predecessors(composition.Nodes, composition.Connections)
	failFast := composition.ExecutionConfig.ErrorPolicy != model.ErrorPolicyContinue
	maxParallel := resolveMaxParallel(composition.ExecutionConfig)

	pending := graph.OrderedNodeIDs(composition.Nodes, ranks)
	results := make(map[string]model.NodeResult, len(composition.Nodes))
	outcomes := make(chan model.NodeResult, len(composition.Nodes))
	inFlight := 0
	halted := false

	for len(pending) > 0 || inFlight > 0 {
		if halted {
			// Fail-fast tripped: everything still pending is skipped without
			// touching the backend. Pending ids are in topological order, so a
			// node's predecessors settle before its own reason is computed.
			for _, nodeID := range pending {
				results[nodeID] = skippedResult(nodeID,
					skipReason(nodeID, predecessors, results))
			}
			pending = nil
		}

		remaining := make([]string, 0, len(pending))
		for _, nodeID := range pending {
			if inFlight >= maxParallel {
				remaining = append(remaining, nodeID)
				continue
			}

			allSettled := true
			var failedPred string
			for predID := range predecessors[nodeID] {
				result, settled := results[predID]
				if !settled {
					allSettled = false
					break
				}
				if result.Status != model.NodeStatusCompleted {
					failedPred = predID
				}
			}
			if !allSettled {
				remaining = append(remaining, nodeID)
				continue
			}

			if failFast && failedPred != "" {
				results[nodeID] = skippedResult(nodeID,
					fmt.Sprintf("predecessor node %s did not complete", failedPred))
				logger.Info("Skipping node with failed predecessor",
					log.String(log.LoggerKeyExecutionID, record.ExecutionID),
					log.String(log.LoggerKeyNodeID, nodeID))
				continue
			}

			node := nodesByID[nodeID]
			// Snapshot before launching so the goroutine never races the
			// orchestrator's writes to the results map.
			snapshot := snapshotResults(results)
			inFlight++
			go func() {
				outcomes <- e.executeNode(runCtx, composition, node, flowParams,
					snapshot, record, logger)
			}()
		}
		pending = remaining

		if inFlight == 0 {
			continue
		}

		result := <-outcomes
		inFlight--
		results[result.NodeID] = result

		if result.Status == model.NodeStatusFailed && failFast && !halted {
			halted = true
			cancelRun()
		}
	}

	return results
}

// executeNode computes the node's effective parameters and submits its template
// through the query execution backend, classifying any failure.
func (e *Engine) executeNode(ctx context.Context, composition model.Composition,
	node model.Node, flowParams map[string]interface{},
	results map[string]model.NodeResult, record model.ExecutionRecord,
	logger *log.Logger) model.NodeResult {
	params, err := effectiveParameters(node, composition.Connections, flowParams, results, logger)
	if err != nil {
		return failedResult(node.ID, model.NodeErrorTypeExecution, err.Error())
	}

	handle, err := e.adapter.ExecuteTemplate(ctx, node.TemplateID, record.InstanceID,
		record.UserID, params, record.ExecutionID, node.ID)
	if err != nil {
		if ctx.Err() != nil {
			return skippedResult(node.ID, "execution halted after a sibling node failure")
		}

		var validationErr *templateengine.ValidationError
		if errors.As(err, &validationErr) {
			return failedResult(node.ID, model.NodeErrorTypeValidation, validationErr.Error())
		}
		return failedResult(node.ID, model.NodeErrorTypeExecution, err.Error())
	}

	logger.Debug("Node completed",
		log.String(log.LoggerKeyExecutionID, record.ExecutionID),
		log.String(log.LoggerKeyNodeID, node.ID))

	return model.NodeResult{
		NodeID:      node.ID,
		Status:      model.NodeStatusCompleted,
		ExecutionID: handle.ExecutionID,
		WorkflowID:  handle.WorkflowID,
		Output:      handle.Output,
	}
}

// resolveMaxParallel resolves the parallel slot budget from the composition's
// execution config, falling back to the server default.
func resolveMaxParallel(execConfig model.ExecutionConfig) int {
	if execConfig.MaxParallel > 0 {
		return execConfig.MaxParallel
	}
	if configured := config.GetAMPRuntime().Config.Composition.MaxParallel; configured > 0 {
		return configured
	}
	return model.DefaultMaxParallel
}

// mergeParameters overlays the request parameters on the composition's global parameters.
func mergeParameters(globalParams, requestParams map[string]interface{}) map[string]interface{} {
	merged := make(map[string]interface{}, len(globalParams)+len(requestParams))
	for name, value := range globalParams {
		merged[name] = value
	}
	for name, value := range requestParams {
		merged[name] = value
	}
	return merged
}

// snapshotResults copies the settled results so a concurrently executing node
// reads a stable view.
func snapshotResults(results map[string]model.NodeResult) map[string]model.NodeResult {
	snapshot := make(map[string]model.NodeResult, len(results))
	for nodeID, result := range results {
		snapshot[nodeID] = result
	}
	return snapshot
}

// indexNodes builds a lookup of nodes by id.
func indexNodes(nodes []model.Node) map[string]model.Node {
	nodesByID := make(map[string]model.Node, len(nodes))
	for _, node := range nodes {
		nodesByID[node.ID] = node
	}
	return nodesByID
}

// failedResult builds a failed node result with the given error classification.
func failedResult(nodeID, errorType, message string) model.NodeResult {
	return model.NodeResult{
		NodeID: nodeID,
		Status: model.NodeStatusFailed,
		Error: &model.NodeError{
			Type:    errorType,
			Message: message,
		},
	}
}

// skippedResult builds a skipped node result attributed to a dependency failure.
func skippedResult(nodeID, message string) model.NodeResult {
	return model.NodeResult{
		NodeID: nodeID,
		Status: model.NodeStatusSkipped,
		Error: &model.NodeError{
			Type:    model.NodeErrorTypeDependencyFailure,
			Message: message,
		},
	}
}

// skipReason attributes a skip to a settled predecessor that did not complete,
// falling back to the run-level halt when the failure was elsewhere in the graph.
func skipReason(nodeID string, predecessors map[string]map[string]bool,
	results map[string]model.NodeResult) string {
	for predID := range predecessors[nodeID] {
		if result, settled := results[predID]; settled &&
			result.Status != model.NodeStatusCompleted {
			return fmt.Sprintf("predecessor node %s did not complete", predID)
		}
	}
	return "execution halted after an earlier node failure"
}

// summarize aggregates node outcomes by status in topological order.
func summarize(nodes []model.Node, ranks map[string]int,
	results map[string]model.NodeResult) *model.ResultSummary {
	summary := &model.ResultSummary{
		CompletedNodeIDs: []string{},
		FailedNodeIDs:    []string{},
		SkippedNodeIDs:   []string{},
	}

	for _, nodeID := range graph.OrderedNodeIDs(nodes, ranks) {
		result, settled := results[nodeID]
		if !settled {
			continue
		}
		switch result.Status {
		case model.NodeStatusCompleted:
			summary.Completed++
			summary.CompletedNodeIDs = append(summary.CompletedNodeIDs, nodeID)
		case model.NodeStatusFailed:
			summary.Failed++
			summary.FailedNodeIDs = append(summary.FailedNodeIDs, nodeID)
		case model.NodeStatusSkipped:
			summary.Skipped++
			summary.SkippedNodeIDs = append(summary.SkippedNodeIDs, nodeID)
		}
	}

	return summary
}

// buildExecutionResult builds the caller-facing view of a settled execution with
// node results in topological order.
func buildExecutionResult(composition model.Composition, ranks map[string]int,
	record model.ExecutionRecord) *model.ExecutionResult {
	nodeResults := make([]model.NodeResult, 0, len(record.NodeResults))
	for _, nodeID := range graph.OrderedNodeIDs(composition.Nodes, ranks) {
		if result, settled := record.NodeResults[nodeID]; settled {
			nodeResults = append(nodeResults, result)
		}
	}

	return &model.ExecutionResult{
		CompositionExecutionID: record.ExecutionID,
		CompositionID:          record.CompositionID,
		Status:                 record.Status,
		TotalNodes:             record.TotalNodes,
		CompletedNodes:         record.CompletedNodes,
		FailedNodes:            record.FailedNodes,
		StartedAt:              record.StartedAt,
		CompletedAt:            record.CompletedAt,
		Nodes:                  nodeResults,
	}
}
