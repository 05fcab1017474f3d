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

package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"

	"github.com/recomlabs/amp/internal/composition/model"
)

type StoreRowTestSuite struct {
	suite.Suite
}

func TestStoreRowSuite(t *testing.T) {
	suite.Run(t, new(StoreRowTestSuite))
}

func (suite *StoreRowTestSuite) TestBuildCompositionFromResultRow() {
	row := map[string]interface{}{
		"composition_id":    "comp-1",
		"name":              "weekly reporting",
		"description":       "weekly AMC reporting pipeline",
		"canvas":            `{"zoom":1}`,
		"global_parameters": `{"lookback_days":30}`,
		"visibility":        "PRIVATE",
		"lifecycle":         "ACTIVE",
		"execution_config":  `{"mode":"parallel","error_policy":"continue","max_parallel":4}`,
		"created_by":        "user-1",
		"created_at":        "2025-06-01T10:00:00Z",
		"updated_at":        "2025-06-02T10:00:00Z",
	}

	composition, err := buildCompositionFromResultRow(row)
	assert.NoError(suite.T(), err)

	assert.Equal(suite.T(), "comp-1", composition.ID)
	assert.Equal(suite.T(), "weekly reporting", composition.Name)
	assert.Equal(suite.T(), model.VisibilityPrivate, composition.Visibility)
	assert.Equal(suite.T(), model.LifecycleActive, composition.Lifecycle)
	assert.Equal(suite.T(), model.ExecutionModeParallel, composition.ExecutionConfig.Mode)
	assert.Equal(suite.T(), model.ErrorPolicyContinue, composition.ExecutionConfig.ErrorPolicy)
	assert.Equal(suite.T(), 4, composition.ExecutionConfig.MaxParallel)
	assert.Equal(suite.T(), float64(30), composition.GlobalParameters["lookback_days"])
}

func (suite *StoreRowTestSuite) TestBuildCompositionFromResultRowMissingID() {
	_, err := buildCompositionFromResultRow(map[string]interface{}{
		"name":       "x",
		"created_by": "user-1",
	})
	assert.Error(suite.T(), err)
}

func (suite *StoreRowTestSuite) TestBuildNodeFromResultRow() {
	row := map[string]interface{}{
		"node_id":             "fetch",
		"template_id":         "tpl-1",
		"position_x":          float64(120.5),
		"position_y":          float64(40),
		"parameter_overrides": `{"region":"us-east"}`,
		"mapped_parameters":   `{"ids":{"source_node_id":"seed","source_field":"out","transform":"to_array"}}`,
	}

	node, err := buildNodeFromResultRow(row)
	assert.NoError(suite.T(), err)

	assert.Equal(suite.T(), "fetch", node.ID)
	assert.Equal(suite.T(), "tpl-1", node.TemplateID)
	assert.Equal(suite.T(), 120.5, node.Position.X)
	assert.Equal(suite.T(), "us-east", node.ParameterOverrides["region"])
	assert.Equal(suite.T(), "seed", node.MappedParameters["ids"].SourceNodeID)
	assert.Equal(suite.T(), "to_array", node.MappedParameters["ids"].Transform)
}

func (suite *StoreRowTestSuite) TestBuildConnectionFromResultRow() {
	row := map[string]interface{}{
		"connection_id":  "conn-1",
		"source_node_id": "fetch",
		"target_node_id": "report",
		"required":       true,
		"field_mappings": `[{"source_field":"ids","target_parameter":"campaign_ids","transform":"to_array"}]`,
	}

	conn, err := buildConnectionFromResultRow(row)
	assert.NoError(suite.T(), err)

	assert.Equal(suite.T(), "conn-1", conn.ID)
	assert.Equal(suite.T(), "fetch", conn.SourceNodeID)
	assert.Equal(suite.T(), "report", conn.TargetNodeID)
	assert.True(suite.T(), conn.Required)
	assert.Len(suite.T(), conn.FieldMappings, 1)
	assert.Equal(suite.T(), "campaign_ids", conn.FieldMappings[0].TargetParameter)
}

func (suite *StoreRowTestSuite) TestBuildConnectionRequiredAsInteger() {
	// SQLite surfaces booleans as integers.
	row := map[string]interface{}{
		"connection_id":  "conn-1",
		"source_node_id": "a",
		"target_node_id": "b",
		"required":       int64(1),
	}

	conn, err := buildConnectionFromResultRow(row)
	assert.NoError(suite.T(), err)
	assert.True(suite.T(), conn.Required)
}

func (suite *StoreRowTestSuite) TestBuildExecutionRecordFromResultRow() {
	row := map[string]interface{}{
		"execution_id":    "exec-1",
		"composition_id":  "comp-1",
		"user_id":         "user-1",
		"instance_id":     "inst-1",
		"schedule_id":     "sched-1",
		"status":          "completed",
		"parameters":      `{"lookback_days":7}`,
		"total_nodes":     int64(3),
		"completed_nodes": int64(3),
		"failed_nodes":    int64(0),
		"skipped_nodes":   int64(0),
		"started_at":      "2025-06-01T10:00:00Z",
		"completed_at":    "2025-06-01T10:05:00Z",
		"node_results":    `{"fetch":{"node_id":"fetch","status":"completed","execution_id":"qx-1"}}`,
		"result_summary":  `{"completed":3,"failed":0,"skipped":0,"completed_node_ids":["fetch","seg","report"],"failed_node_ids":[],"skipped_node_ids":[]}`,
	}

	record, err := buildExecutionRecordFromResultRow(row)
	assert.NoError(suite.T(), err)

	assert.Equal(suite.T(), "exec-1", record.ExecutionID)
	assert.Equal(suite.T(), model.ExecutionStatusCompleted, record.Status)
	assert.Equal(suite.T(), 3, record.TotalNodes)
	assert.Equal(suite.T(), float64(7), record.Parameters["lookback_days"])
	assert.Equal(suite.T(), model.NodeStatusCompleted, record.NodeResults["fetch"].Status)
	assert.Equal(suite.T(), 3, record.ResultSummary.Completed)
	assert.Equal(suite.T(), []string{"fetch", "seg", "report"}, record.ResultSummary.CompletedNodeIDs)
}

func (suite *StoreRowTestSuite) TestBuildExecutionRecordMalformedJSON() {
	row := map[string]interface{}{
		"execution_id":   "exec-1",
		"composition_id": "comp-1",
		"user_id":        "user-1",
		"node_results":   `{not json`,
	}

	_, err := buildExecutionRecordFromResultRow(row)
	assert.Error(suite.T(), err)
}
