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

package graph

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"

	"github.com/recomlabs/amp/internal/composition/model"
)

type DAGTestSuite struct {
	suite.Suite
}

func TestDAGSuite(t *testing.T) {
	suite.Run(t, new(DAGTestSuite))
}

func nodeSet(ids ...string) []model.Node {
	nodes := make([]model.Node, 0, len(ids))
	for _, id := range ids {
		nodes = append(nodes, model.Node{ID: id, TemplateID: "tpl-" + id})
	}
	return nodes
}

func edge(source, target string) model.Connection {
	return model.Connection{
		ID:           source + "-" + target,
		SourceNodeID: source,
		TargetNodeID: target,
	}
}

func (suite *DAGTestSuite) TestTopologicalOrderLinearChain() {
	nodes := nodeSet("a", "b", "c")
	connections := []model.Connection{edge("a", "b"), edge("b", "c")}

	ranks, err := TopologicalOrder(nodes, connections)
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), 0, ranks["a"])
	assert.Equal(suite.T(), 1, ranks["b"])
	assert.Equal(suite.T(), 2, ranks["c"])
}

func (suite *DAGTestSuite) TestTopologicalOrderEdgeRankProperty() {
	nodes := nodeSet("fetch", "seg", "report", "export")
	connections := []model.Connection{
		edge("fetch", "report"),
		edge("seg", "report"),
		edge("report", "export"),
	}

	ranks, err := TopologicalOrder(nodes, connections)
	assert.NoError(suite.T(), err)

	for _, conn := range connections {
		assert.Less(suite.T(), ranks[conn.SourceNodeID], ranks[conn.TargetNodeID],
			"rank of %s must be below rank of %s", conn.SourceNodeID, conn.TargetNodeID)
	}
}

func (suite *DAGTestSuite) TestTopologicalOrderInvalidGraphs() {
	tests := []struct {
		name        string
		nodes       []model.Node
		connections []model.Connection
	}{
		{
			name:        "TwoNodeCycle",
			nodes:       nodeSet("a", "b"),
			connections: []model.Connection{edge("a", "b"), edge("b", "a")},
		},
		{
			name:        "ThreeNodeCycle",
			nodes:       nodeSet("a", "b", "c"),
			connections: []model.Connection{edge("a", "b"), edge("b", "c"), edge("c", "a")},
		},
		{
			name:        "SelfLoop",
			nodes:       nodeSet("a"),
			connections: []model.Connection{edge("a", "a")},
		},
		{
			name:        "DanglingSource",
			nodes:       nodeSet("a"),
			connections: []model.Connection{edge("ghost", "a")},
		},
		{
			name:        "DanglingTarget",
			nodes:       nodeSet("a"),
			connections: []model.Connection{edge("a", "ghost")},
		},
	}

	for _, tc := range tests {
		suite.Run(tc.name, func() {
			_, err := TopologicalOrder(tc.nodes, tc.connections)
			assert.ErrorIs(suite.T(), err, ErrCyclicGraph)
			assert.False(suite.T(), IsDAG(tc.nodes, tc.connections))
		})
	}
}

func (suite *DAGTestSuite) TestOrderedNodeIDsDeterministicTieBreak() {
	// b and c are both rank 1; insertion order decides their relative position.
	nodes := nodeSet("a", "b", "c", "d")
	connections := []model.Connection{
		edge("a", "b"),
		edge("a", "c"),
		edge("b", "d"),
		edge("c", "d"),
	}

	ranks, err := TopologicalOrder(nodes, connections)
	assert.NoError(suite.T(), err)

	for i := 0; i < 5; i++ {
		ordered := OrderedNodeIDs(nodes, ranks)
		assert.Equal(suite.T(), []string{"a", "b", "c", "d"}, ordered)
	}
}

func (suite *DAGTestSuite) TestOrderedNodeIDsNoConnections() {
	nodes := nodeSet("z", "y", "x")

	ranks, err := TopologicalOrder(nodes, nil)
	assert.NoError(suite.T(), err)

	ordered := OrderedNodeIDs(nodes, ranks)
	assert.Equal(suite.T(), []string{"z", "y", "x"}, ordered)
}

func (suite *DAGTestSuite) TestPredecessors() {
	nodes := nodeSet("a", "b", "c")
	connections := []model.Connection{edge("a", "c"), edge("b", "c")}

	preds := Predecessors(nodes, connections)
	assert.Empty(suite.T(), preds["a"])
	assert.Empty(suite.T(), preds["b"])
	assert.True(suite.T(), preds["c"]["a"])
	assert.True(suite.T(), preds["c"]["b"])
}

func (suite *DAGTestSuite) TestIsDAGValidGraph() {
	nodes := nodeSet("a", "b")
	assert.True(suite.T(), IsDAG(nodes, []model.Connection{edge("a", "b")}))
	assert.True(suite.T(), IsDAG(nodes, nil))
}
