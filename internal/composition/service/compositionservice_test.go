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

package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"

	"github.com/recomlabs/amp/internal/composition/constants"
	"github.com/recomlabs/amp/internal/composition/model"
)

type CompositionServiceTestSuite struct {
	suite.Suite
}

func TestCompositionServiceSuite(t *testing.T) {
	suite.Run(t, new(CompositionServiceTestSuite))
}

func graphNodes(ids ...string) []model.Node {
	nodes := make([]model.Node, 0, len(ids))
	for _, id := range ids {
		nodes = append(nodes, model.Node{ID: id, TemplateID: "tpl-" + id})
	}
	return nodes
}

func (suite *CompositionServiceTestSuite) TestValidateGraph() {
	tests := []struct {
		name         string
		nodes        []model.Node
		connections  []model.Connection
		expectedCode string
	}{
		{
			name:  "ValidGraph",
			nodes: graphNodes("a", "b"),
			connections: []model.Connection{
				{ID: "c1", SourceNodeID: "a", TargetNodeID: "b"},
			},
			expectedCode: "",
		},
		{
			name:         "EmptyGraph",
			nodes:        nil,
			connections:  nil,
			expectedCode: "",
		},
		{
			name:         "EmptyNodeID",
			nodes:        []model.Node{{ID: "", TemplateID: "tpl"}},
			expectedCode: constants.ErrorInvalidRequestFormat.Code,
		},
		{
			name:         "MissingTemplateID",
			nodes:        []model.Node{{ID: "a"}},
			expectedCode: constants.ErrorInvalidRequestFormat.Code,
		},
		{
			name:         "DuplicateNodeID",
			nodes:        append(graphNodes("a"), graphNodes("a")...),
			expectedCode: constants.ErrorInvalidRequestFormat.Code,
		},
		{
			name:  "DuplicateConnectionID",
			nodes: graphNodes("a", "b", "c"),
			connections: []model.Connection{
				{ID: "c1", SourceNodeID: "a", TargetNodeID: "b"},
				{ID: "c1", SourceNodeID: "b", TargetNodeID: "c"},
			},
			expectedCode: constants.ErrorDuplicateConnectionID.Code,
		},
		{
			name:  "UnknownEndpoint",
			nodes: graphNodes("a"),
			connections: []model.Connection{
				{ID: "c1", SourceNodeID: "a", TargetNodeID: "ghost"},
			},
			expectedCode: constants.ErrorConnectionEndpointNotFound.Code,
		},
		{
			name:  "CyclicGraph",
			nodes: graphNodes("a", "b"),
			connections: []model.Connection{
				{ID: "c1", SourceNodeID: "a", TargetNodeID: "b"},
				{ID: "c2", SourceNodeID: "b", TargetNodeID: "a"},
			},
			expectedCode: constants.ErrorCyclicGraph.Code,
		},
	}

	for _, tc := range tests {
		suite.Run(tc.name, func() {
			svcErr := validateGraph(tc.nodes, tc.connections)
			if tc.expectedCode == "" {
				assert.Nil(suite.T(), svcErr)
			} else {
				assert.NotNil(suite.T(), svcErr)
				assert.Equal(suite.T(), tc.expectedCode, svcErr.Code)
			}
		})
	}
}

func (suite *CompositionServiceTestSuite) TestNormalizeExecutionConfig() {
	normalized := normalizeExecutionConfig(model.ExecutionConfig{})
	assert.Equal(suite.T(), model.ExecutionModeSequential, normalized.Mode)
	assert.Equal(suite.T(), model.ErrorPolicyFailFast, normalized.ErrorPolicy)

	configured := normalizeExecutionConfig(model.ExecutionConfig{
		Mode:        model.ExecutionModeParallel,
		ErrorPolicy: model.ErrorPolicyContinue,
		MaxParallel: 8,
	})
	assert.Equal(suite.T(), model.ExecutionModeParallel, configured.Mode)
	assert.Equal(suite.T(), model.ErrorPolicyContinue, configured.ErrorPolicy)
	assert.Equal(suite.T(), 8, configured.MaxParallel)
}

func (suite *CompositionServiceTestSuite) TestCreateCompositionRejectsInvalidRequests() {
	svc := GetCompositionService()

	_, svcErr := svc.CreateComposition("user-1", model.CreateCompositionRequest{})
	assert.NotNil(suite.T(), svcErr)
	assert.Equal(suite.T(), constants.ErrorInvalidRequestFormat.Code, svcErr.Code)

	_, svcErr = svc.CreateComposition("user-1", model.CreateCompositionRequest{
		Name:  "bad graph",
		Nodes: graphNodes("a", "b"),
		Connections: []model.Connection{
			{ID: "c1", SourceNodeID: "a", TargetNodeID: "b"},
			{ID: "c2", SourceNodeID: "b", TargetNodeID: "a"},
		},
	})
	assert.NotNil(suite.T(), svcErr)
	assert.Equal(suite.T(), constants.ErrorCyclicGraph.Code, svcErr.Code)
}

func (suite *CompositionServiceTestSuite) TestGetCompositionRequiresID() {
	svc := GetCompositionService()

	_, svcErr := svc.GetComposition("", "user-1")
	assert.NotNil(suite.T(), svcErr)
	assert.Equal(suite.T(), constants.ErrorMissingCompositionID.Code, svcErr.Code)
}
