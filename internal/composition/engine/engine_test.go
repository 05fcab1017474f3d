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

package engine

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"

	"github.com/recomlabs/amp/internal/composition/graph"
	"github.com/recomlabs/amp/internal/composition/model"
	queryexecmodel "github.com/recomlabs/amp/internal/queryexec/model"
	"github.com/recomlabs/amp/internal/system/config"
	templateengine "github.com/recomlabs/amp/internal/template/engine"
)

type mockCompositionStore struct {
	compositions map[string]model.Composition
}

func (m *mockCompositionStore) GetComposition(id string) (model.Composition, error) {
	composition, ok := m.compositions[id]
	if !ok {
		return model.Composition{}, model.ErrCompositionNotFound
	}
	return composition, nil
}

type mockExecutionStore struct {
	mu            sync.Mutex
	records       map[string]model.ExecutionRecord
	createCalls   int
	finalizeCalls int

	// onCreate, when set, runs after the record is stored. It simulates work
	// happening between the two record writes, such as an advisory cancel.
	onCreate func(store *mockExecutionStore, record model.ExecutionRecord)
}

func newMockExecutionStore() *mockExecutionStore {
	return &mockExecutionStore{records: make(map[string]model.ExecutionRecord)}
}

func (m *mockExecutionStore) CreateExecutionRecord(record model.ExecutionRecord) error {
	m.mu.Lock()
	m.createCalls++
	m.records[record.ExecutionID] = record
	m.mu.Unlock()

	if m.onCreate != nil {
		m.onCreate(m, record)
	}
	return nil
}

func (m *mockExecutionStore) FinalizeExecutionRecord(record model.ExecutionRecord) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.records[record.ExecutionID]; !ok {
		return model.ErrExecutionRecordNotFound
	}
	m.finalizeCalls++
	m.records[record.ExecutionID] = record
	return nil
}

func (m *mockExecutionStore) GetExecutionRecord(executionID string) (model.ExecutionRecord, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	record, ok := m.records[executionID]
	if !ok {
		return model.ExecutionRecord{}, model.ErrExecutionRecordNotFound
	}
	return record, nil
}

func (m *mockExecutionStore) UpdateExecutionStatus(executionID string,
	from, to model.ExecutionStatus) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	record, ok := m.records[executionID]
	if !ok {
		return false, model.ErrExecutionRecordNotFound
	}
	if record.Status != from {
		return false, nil
	}
	record.Status = to
	m.records[executionID] = record
	return true, nil
}

type mockAdapter struct {
	mu         sync.Mutex
	calls      map[string]int
	lastParams map[string]map[string]interface{}
	failures   map[string]error
	outputs    map[string]map[string]interface{}
}

func newMockAdapter() *mockAdapter {
	return &mockAdapter{
		calls:      make(map[string]int),
		lastParams: make(map[string]map[string]interface{}),
		failures:   make(map[string]error),
		outputs:    make(map[string]map[string]interface{}),
	}
}

func (m *mockAdapter) ExecuteTemplate(ctx context.Context, templateID, instanceID, userID string,
	parameters map[string]interface{},
	compositionExecutionID, compositionNodeID string) (*queryexecmodel.ExecutionHandle, error) {
	m.mu.Lock()
	m.calls[compositionNodeID]++
	m.lastParams[compositionNodeID] = parameters
	failure := m.failures[compositionNodeID]
	output := m.outputs[compositionNodeID]
	m.mu.Unlock()

	if failure != nil {
		return nil, failure
	}

	return &queryexecmodel.ExecutionHandle{
		ExecutionID: "qx-" + compositionNodeID,
		WorkflowID:  "wf-" + compositionNodeID,
		Status:      "SUBMITTED",
		Output:      output,
	}, nil
}

func (m *mockAdapter) GetStatus(ctx context.Context, executionID, userID string) (string, error) {
	return "SUBMITTED", nil
}

func (m *mockAdapter) callCount(nodeID string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls[nodeID]
}

func (m *mockAdapter) paramsFor(nodeID string) map[string]interface{} {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.lastParams[nodeID]
}

type EngineTestSuite struct {
	suite.Suite
	compositionStore *mockCompositionStore
	executionStore   *mockExecutionStore
	adapter          *mockAdapter
	engine           EngineInterface
}

func TestEngineSuite(t *testing.T) {
	suite.Run(t, new(EngineTestSuite))
}

func (suite *EngineTestSuite) SetupTest() {
	config.ResetAMPRuntime()
	err := config.InitializeAMPRuntime("", &config.Config{
		Composition: config.CompositionConfig{MaxParallel: 2},
	})
	assert.NoError(suite.T(), err)

	suite.compositionStore = &mockCompositionStore{
		compositions: make(map[string]model.Composition),
	}
	suite.executionStore = newMockExecutionStore()
	suite.adapter = newMockAdapter()
	suite.engine = NewEngineWith(suite.compositionStore, suite.executionStore, suite.adapter)
}

func (suite *EngineTestSuite) addComposition(composition model.Composition) {
	suite.compositionStore.compositions[composition.ID] = composition
}

func chainComposition(id string, mode model.ExecutionMode,
	policy model.ErrorPolicy, nodeIDs ...string) model.Composition {
	nodes := make([]model.Node, 0, len(nodeIDs))
	connections := make([]model.Connection, 0, len(nodeIDs))
	for i, nodeID := range nodeIDs {
		nodes = append(nodes, model.Node{ID: nodeID, TemplateID: "tpl-" + nodeID})
		if i > 0 {
			connections = append(connections, model.Connection{
				ID:           nodeIDs[i-1] + "-" + nodeID,
				SourceNodeID: nodeIDs[i-1],
				TargetNodeID: nodeID,
			})
		}
	}

	return model.Composition{
		ID:         id,
		Name:       "test composition",
		Visibility: model.VisibilityPrivate,
		Lifecycle:  model.LifecycleActive,
		CreatedBy:  "user-1",
		ExecutionConfig: model.ExecutionConfig{
			Mode:        mode,
			ErrorPolicy: policy,
		},
		Nodes:       nodes,
		Connections: connections,
	}
}

func (suite *EngineTestSuite) TestSequentialFailFastHaltsRun() {
	suite.addComposition(chainComposition("comp-1", model.ExecutionModeSequential,
		model.ErrorPolicyFailFast, "a", "b", "c"))
	suite.adapter.failures["b"] = errors.New("backend rejected query")

	result, err := suite.engine.ExecuteComposition(context.Background(), "comp-1",
		"inst-1", "user-1", nil, "")
	assert.NoError(suite.T(), err)

	assert.Equal(suite.T(), model.ExecutionStatusFailed, result.Status)
	assert.Equal(suite.T(), 3, result.TotalNodes)
	assert.Equal(suite.T(), 1, result.CompletedNodes)
	assert.Equal(suite.T(), 1, result.FailedNodes)

	// c was never attempted and has no result at all.
	assert.Len(suite.T(), result.Nodes, 2)
	assert.Equal(suite.T(), 0, suite.adapter.callCount("c"))

	record, err := suite.executionStore.GetExecutionRecord(result.CompositionExecutionID)
	assert.NoError(suite.T(), err)
	_, settled := record.NodeResults["c"]
	assert.False(suite.T(), settled)
	assert.Equal(suite.T(), model.NodeErrorTypeExecution, record.NodeResults["b"].Error.Type)
}

func (suite *EngineTestSuite) TestSequentialContinueAttemptsEveryNode() {
	suite.addComposition(chainComposition("comp-1", model.ExecutionModeSequential,
		model.ErrorPolicyContinue, "a", "b", "c"))
	suite.adapter.failures["b"] = errors.New("backend rejected query")

	result, err := suite.engine.ExecuteComposition(context.Background(), "comp-1",
		"inst-1", "user-1", nil, "")
	assert.NoError(suite.T(), err)

	assert.Equal(suite.T(), model.ExecutionStatusFailed, result.Status)
	assert.Equal(suite.T(), 2, result.CompletedNodes)
	assert.Equal(suite.T(), 1, result.FailedNodes)
	assert.Len(suite.T(), result.Nodes, 3)
	assert.Equal(suite.T(), 1, suite.adapter.callCount("c"))
}

func (suite *EngineTestSuite) TestRecordWrittenExactlyTwice() {
	suite.addComposition(chainComposition("comp-1", model.ExecutionModeSequential,
		model.ErrorPolicyFailFast, "a", "b"))

	result, err := suite.engine.ExecuteComposition(context.Background(), "comp-1",
		"inst-1", "user-1", nil, "")
	assert.NoError(suite.T(), err)

	assert.Equal(suite.T(), model.ExecutionStatusCompleted, result.Status)
	assert.Equal(suite.T(), 1, suite.executionStore.createCalls)
	assert.Equal(suite.T(), 1, suite.executionStore.finalizeCalls)
}

func (suite *EngineTestSuite) TestValidationFailuresSurfaceBeforeRecordCreation() {
	composition := chainComposition("comp-1", model.ExecutionModeSequential,
		model.ErrorPolicyFailFast, "a", "b")
	// A back edge turns the chain into a cycle.
	composition.Connections = append(composition.Connections, model.Connection{
		ID: "b-a", SourceNodeID: "b", TargetNodeID: "a",
	})
	suite.addComposition(composition)

	tests := []struct {
		name          string
		compositionID string
		userID        string
		expectedErr   error
	}{
		{
			name:          "CompositionNotFound",
			compositionID: "missing",
			userID:        "user-1",
			expectedErr:   model.ErrCompositionNotFound,
		},
		{
			name:          "AccessDeniedForPrivateComposition",
			compositionID: "comp-1",
			userID:        "intruder",
			expectedErr:   ErrAccessDenied,
		},
		{
			name:          "CyclicGraph",
			compositionID: "comp-1",
			userID:        "user-1",
			expectedErr:   graph.ErrCyclicGraph,
		},
	}

	for _, tc := range tests {
		suite.Run(tc.name, func() {
			_, err := suite.engine.ExecuteComposition(context.Background(),
				tc.compositionID, "inst-1", tc.userID, nil, "")
			assert.ErrorIs(suite.T(), err, tc.expectedErr)
			assert.Equal(suite.T(), 0, suite.executionStore.createCalls)
		})
	}
}

func (suite *EngineTestSuite) TestPublicCompositionExecutableByAnyUser() {
	composition := chainComposition("comp-1", model.ExecutionModeSequential,
		model.ErrorPolicyFailFast, "a")
	composition.Visibility = model.VisibilityPublic
	suite.addComposition(composition)

	result, err := suite.engine.ExecuteComposition(context.Background(), "comp-1",
		"inst-1", "another-user", nil, "")
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), model.ExecutionStatusCompleted, result.Status)
}

func (suite *EngineTestSuite) TestValidationErrorClassification() {
	suite.addComposition(chainComposition("comp-1", model.ExecutionModeSequential,
		model.ErrorPolicyFailFast, "a"))
	suite.adapter.failures["a"] = &templateengine.ValidationError{
		Parameter: "campaign_ids",
		Message:   "required parameter is missing",
	}

	result, err := suite.engine.ExecuteComposition(context.Background(), "comp-1",
		"inst-1", "user-1", nil, "")
	assert.NoError(suite.T(), err)

	assert.Equal(suite.T(), model.ExecutionStatusFailed, result.Status)
	assert.Equal(suite.T(), model.NodeErrorTypeValidation, result.Nodes[0].Error.Type)
}

func (suite *EngineTestSuite) TestParallelIndependentNodesAllComplete() {
	composition := model.Composition{
		ID:         "comp-1",
		Visibility: model.VisibilityPrivate,
		CreatedBy:  "user-1",
		ExecutionConfig: model.ExecutionConfig{
			Mode:        model.ExecutionModeParallel,
			ErrorPolicy: model.ErrorPolicyFailFast,
			MaxParallel: 2,
		},
		Nodes: []model.Node{
			{ID: "a", TemplateID: "tpl-a"},
			{ID: "b", TemplateID: "tpl-b"},
			{ID: "c", TemplateID: "tpl-c"},
		},
	}
	suite.addComposition(composition)

	result, err := suite.engine.ExecuteComposition(context.Background(), "comp-1",
		"inst-1", "user-1", nil, "")
	assert.NoError(suite.T(), err)

	assert.Equal(suite.T(), model.ExecutionStatusCompleted, result.Status)
	assert.Equal(suite.T(), 3, result.CompletedNodes)
	assert.Equal(suite.T(), 0, result.FailedNodes)
	for _, nodeID := range []string{"a", "b", "c"} {
		assert.Equal(suite.T(), 1, suite.adapter.callCount(nodeID))
	}
}

func (suite *EngineTestSuite) TestParallelFailFastSkipsDependents() {
	suite.addComposition(chainComposition("comp-1", model.ExecutionModeParallel,
		model.ErrorPolicyFailFast, "upstreamX7", "midwayR4", "downstreamQ9"))
	suite.adapter.failures["upstreamX7"] = errors.New("backend rejected query")

	result, err := suite.engine.ExecuteComposition(context.Background(), "comp-1",
		"inst-1", "user-1", nil, "")
	assert.NoError(suite.T(), err)

	assert.Equal(suite.T(), model.ExecutionStatusFailed, result.Status)
	assert.Equal(suite.T(), 1, result.FailedNodes)

	record, err := suite.executionStore.GetExecutionRecord(result.CompositionExecutionID)
	assert.NoError(suite.T(), err)

	// Each skip reason names the direct predecessor that did not complete.
	skipped := record.NodeResults["midwayR4"]
	assert.Equal(suite.T(), model.NodeStatusSkipped, skipped.Status)
	assert.Equal(suite.T(), model.NodeErrorTypeDependencyFailure, skipped.Error.Type)
	assert.Contains(suite.T(), skipped.Error.Message, "upstreamX7")

	transitive := record.NodeResults["downstreamQ9"]
	assert.Equal(suite.T(), model.NodeStatusSkipped, transitive.Status)
	assert.Contains(suite.T(), transitive.Error.Message, "midwayR4")

	// The skipped nodes never reached the backend.
	assert.Equal(suite.T(), 0, suite.adapter.callCount("midwayR4"))
	assert.Equal(suite.T(), 0, suite.adapter.callCount("downstreamQ9"))
}

func (suite *EngineTestSuite) TestParallelContinueAttemptsDependents() {
	suite.addComposition(chainComposition("comp-1", model.ExecutionModeParallel,
		model.ErrorPolicyContinue, "a", "b"))
	suite.adapter.failures["a"] = errors.New("backend rejected query")

	result, err := suite.engine.ExecuteComposition(context.Background(), "comp-1",
		"inst-1", "user-1", nil, "")
	assert.NoError(suite.T(), err)

	assert.Equal(suite.T(), model.ExecutionStatusFailed, result.Status)
	assert.Equal(suite.T(), 1, result.CompletedNodes)
	assert.Equal(suite.T(), 1, suite.adapter.callCount("b"))
}

func (suite *EngineTestSuite) TestFieldMappingFlowsBetweenNodes() {
	composition := chainComposition("comp-1", model.ExecutionModeSequential,
		model.ErrorPolicyFailFast, "fetch", "report")
	composition.Connections[0].FieldMappings = []model.FieldMapping{
		{SourceField: "result_ids", TargetParameter: "campaign_ids", Transform: TransformToArray},
	}
	composition.GlobalParameters = map[string]interface{}{"lookback_days": float64(30)}
	suite.addComposition(composition)

	suite.adapter.outputs["fetch"] = map[string]interface{}{"result_ids": "c-42"}

	result, err := suite.engine.ExecuteComposition(context.Background(), "comp-1",
		"inst-1", "user-1", map[string]interface{}{"lookback_days": float64(7)}, "")
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), model.ExecutionStatusCompleted, result.Status)

	reportParams := suite.adapter.paramsFor("report")
	assert.Equal(suite.T(), []interface{}{"c-42"}, reportParams["campaign_ids"])
	// Request parameters override composition globals.
	assert.Equal(suite.T(), float64(7), reportParams["lookback_days"])
}

func (suite *EngineTestSuite) TestCancelBetweenWritesWinsOverTerminalStatus() {
	suite.addComposition(chainComposition("comp-1", model.ExecutionModeSequential,
		model.ErrorPolicyFailFast, "a"))

	// Simulate an advisory cancel landing while nodes are running.
	suite.executionStore.onCreate = func(store *mockExecutionStore, record model.ExecutionRecord) {
		_, err := store.UpdateExecutionStatus(record.ExecutionID,
			model.ExecutionStatusRunning, model.ExecutionStatusCancelled)
		assert.NoError(suite.T(), err)
	}

	result, err := suite.engine.ExecuteComposition(context.Background(), "comp-1",
		"inst-1", "user-1", nil, "")
	assert.NoError(suite.T(), err)

	assert.Equal(suite.T(), model.ExecutionStatusCancelled, result.Status)

	// The node results from the run are still persisted.
	record, err := suite.executionStore.GetExecutionRecord(result.CompositionExecutionID)
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), model.ExecutionStatusCancelled, record.Status)
	assert.Equal(suite.T(), model.NodeStatusCompleted, record.NodeResults["a"].Status)
}

func (suite *EngineTestSuite) TestCancelExecutionOwnership() {
	record := model.ExecutionRecord{
		ExecutionID: "exec-1",
		UserID:      "user-1",
		Status:      model.ExecutionStatusRunning,
	}
	assert.NoError(suite.T(), suite.executionStore.CreateExecutionRecord(record))

	_, err := suite.engine.CancelExecution("exec-1", "intruder")
	assert.ErrorIs(suite.T(), err, ErrAccessDenied)

	cancelled, err := suite.engine.CancelExecution("exec-1", "user-1")
	assert.NoError(suite.T(), err)
	assert.True(suite.T(), cancelled)

	// A settled execution does not transition again.
	cancelled, err = suite.engine.CancelExecution("exec-1", "user-1")
	assert.NoError(suite.T(), err)
	assert.False(suite.T(), cancelled)
}

func (suite *EngineTestSuite) TestGetExecutionHidesOtherUsersRecords() {
	record := model.ExecutionRecord{
		ExecutionID: "exec-1",
		UserID:      "user-1",
		Status:      model.ExecutionStatusCompleted,
	}
	assert.NoError(suite.T(), suite.executionStore.CreateExecutionRecord(record))

	fetched, err := suite.engine.GetExecution("exec-1", "user-1")
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), "exec-1", fetched.ExecutionID)

	_, err = suite.engine.GetExecution("exec-1", "intruder")
	assert.ErrorIs(suite.T(), err, model.ErrExecutionRecordNotFound)
}

func (suite *EngineTestSuite) TestResolveMaxParallel() {
	assert.Equal(suite.T(), 5, resolveMaxParallel(model.ExecutionConfig{MaxParallel: 5}))

	// Falls back to the server configuration set in SetupTest.
	assert.Equal(suite.T(), 2, resolveMaxParallel(model.ExecutionConfig{}))

	config.ResetAMPRuntime()
	err := config.InitializeAMPRuntime("", &config.Config{})
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), model.DefaultMaxParallel, resolveMaxParallel(model.ExecutionConfig{}))
}
