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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"

	"github.com/recomlabs/amp/internal/composition/model"
	"github.com/recomlabs/amp/internal/system/log"
)

type MappingTestSuite struct {
	suite.Suite
	logger *log.Logger
}

func TestMappingSuite(t *testing.T) {
	suite.Run(t, new(MappingTestSuite))
}

func (suite *MappingTestSuite) SetupTest() {
	suite.logger = log.GetLogger()
}

func (suite *MappingTestSuite) TestOverlayPrecedence() {
	node := model.Node{
		ID: "report",
		ParameterOverrides: map[string]interface{}{
			"lookback_days": float64(7),
			"region":        "us-east",
		},
	}
	connections := []model.Connection{
		{
			ID:           "conn-1",
			SourceNodeID: "fetch",
			TargetNodeID: "report",
			FieldMappings: []model.FieldMapping{
				{SourceField: "campaign_ids", TargetParameter: "region"},
			},
		},
	}
	flowParams := map[string]interface{}{"region": "eu-west", "brand": "acme"}
	results := map[string]model.NodeResult{
		"fetch": {
			NodeID: "fetch",
			Status: model.NodeStatusCompleted,
			Output: map[string]interface{}{"campaign_ids": []interface{}{"c1", "c2"}},
		},
	}

	params, err := effectiveParameters(node, connections, flowParams, results, suite.logger)
	assert.NoError(suite.T(), err)

	// Overrides lose to flow params, flow params lose to connection mappings.
	assert.Equal(suite.T(), float64(7), params["lookback_days"])
	assert.Equal(suite.T(), "acme", params["brand"])
	assert.Equal(suite.T(), []interface{}{"c1", "c2"}, params["region"])
}

func (suite *MappingTestSuite) TestIncompleteSourceSkipsMapping() {
	node := model.Node{ID: "report"}
	connections := []model.Connection{
		{
			ID:           "conn-1",
			SourceNodeID: "fetch",
			TargetNodeID: "report",
			FieldMappings: []model.FieldMapping{
				{SourceField: "ids", TargetParameter: "campaign_ids"},
			},
		},
	}
	flowParams := map[string]interface{}{"campaign_ids": "fallback"}
	results := map[string]model.NodeResult{
		"fetch": {
			NodeID: "fetch",
			Status: model.NodeStatusFailed,
			Error:  &model.NodeError{Type: model.NodeErrorTypeExecution, Message: "boom"},
		},
	}

	params, err := effectiveParameters(node, connections, flowParams, results, suite.logger)
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), "fallback", params["campaign_ids"])
}

func (suite *MappingTestSuite) TestAbsentSourceFieldLeavesParameterUntouched() {
	node := model.Node{ID: "report"}
	connections := []model.Connection{
		{
			ID:           "conn-1",
			SourceNodeID: "fetch",
			TargetNodeID: "report",
			FieldMappings: []model.FieldMapping{
				{SourceField: "missing_field", TargetParameter: "campaign_ids"},
			},
		},
	}
	results := map[string]model.NodeResult{
		"fetch": {
			NodeID: "fetch",
			Status: model.NodeStatusCompleted,
			Output: map[string]interface{}{"other": "value"},
		},
	}

	params, err := effectiveParameters(node, connections, nil, results, suite.logger)
	assert.NoError(suite.T(), err)
	_, present := params["campaign_ids"]
	assert.False(suite.T(), present)
}

func (suite *MappingTestSuite) TestMappedParametersOverlayConnections() {
	node := model.Node{
		ID: "report",
		MappedParameters: map[string]model.MappedParameter{
			"total": {SourceNodeID: "fetch", SourceField: "count", Transform: TransformToNumber},
		},
	}
	results := map[string]model.NodeResult{
		"fetch": {
			NodeID: "fetch",
			Status: model.NodeStatusCompleted,
			Output: map[string]interface{}{"count": "12"},
		},
	}

	params, err := effectiveParameters(node, nil, nil, results, suite.logger)
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), float64(12), params["total"])
}

func (suite *MappingTestSuite) TestTransformFailurePropagates() {
	node := model.Node{ID: "report"}
	connections := []model.Connection{
		{
			ID:           "conn-1",
			SourceNodeID: "fetch",
			TargetNodeID: "report",
			FieldMappings: []model.FieldMapping{
				{SourceField: "ids", TargetParameter: "count", Transform: TransformToNumber},
			},
		},
	}
	results := map[string]model.NodeResult{
		"fetch": {
			NodeID: "fetch",
			Status: model.NodeStatusCompleted,
			Output: map[string]interface{}{"ids": "not-a-number"},
		},
	}

	_, err := effectiveParameters(node, connections, nil, results, suite.logger)
	assert.Error(suite.T(), err)
	assert.Contains(suite.T(), err.Error(), `mapping field "ids" to parameter "count"`)
}

func (suite *MappingTestSuite) TestInputsNotMutated() {
	node := model.Node{
		ID:                 "report",
		ParameterOverrides: map[string]interface{}{"a": "override"},
	}
	flowParams := map[string]interface{}{"a": "flow", "b": "flow"}
	results := map[string]model.NodeResult{
		"fetch": {NodeID: "fetch", Status: model.NodeStatusCompleted,
			Output: map[string]interface{}{"f": "v"}},
	}

	first, err := effectiveParameters(node, nil, flowParams, results, suite.logger)
	assert.NoError(suite.T(), err)
	second, err := effectiveParameters(node, nil, flowParams, results, suite.logger)
	assert.NoError(suite.T(), err)

	assert.Equal(suite.T(), first, second)
	assert.Equal(suite.T(), "override", node.ParameterOverrides["a"])
	assert.Equal(suite.T(), "flow", flowParams["a"])
}
