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

// Package graph validates composition node/connection sets and computes execution order.
package graph

import (
	"errors"
	"sort"

	"github.com/recomlabs/amp/internal/composition/model"
)

// ErrCyclicGraph is returned when the node/connection set contains a cycle or an
// edge referencing a node absent from the node set.
var ErrCyclicGraph = errors.New("composition graph is not a directed acyclic graph")

// IsDAG reports whether the given nodes and connections form a directed acyclic graph.
// Self-loops and edges referencing unknown node ids are treated as invalid.
func IsDAG(nodes []model.Node, connections []model.Connection) bool {
	_, err := TopologicalOrder(nodes, connections)
	return err == nil
}

// TopologicalOrder computes a topological rank for every node using Kahn's algorithm.
// Rank 0 nodes have no unmet dependencies; for every edge (u, v), rank(u) < rank(v).
// Ties among independent nodes are broken by node insertion order so that repeated
// calls over the same composition yield the same order. Returns ErrCyclicGraph if
// the graph contains a cycle or a connection references a node that does not exist.
func TopologicalOrder(nodes []model.Node, connections []model.Connection) (map[string]int, error) {
	nodeIndex := make(map[string]int, len(nodes))
	for i, node := range nodes {
		nodeIndex[node.ID] = i
	}

	inDegree := make(map[string]int, len(nodes))
	successors := make(map[string][]string, len(nodes))
	for _, node := range nodes {
		inDegree[node.ID] = 0
	}

	for _, conn := range connections {
		if _, ok := nodeIndex[conn.SourceNodeID]; !ok {
			return nil, ErrCyclicGraph
		}
		if _, ok := nodeIndex[conn.TargetNodeID]; !ok {
			return nil, ErrCyclicGraph
		}
		if conn.SourceNodeID == conn.TargetNodeID {
			return nil, ErrCyclicGraph
		}
		successors[conn.SourceNodeID] = append(successors[conn.SourceNodeID], conn.TargetNodeID)
		inDegree[conn.TargetNodeID]++
	}

	// Seed the frontier with all dependency-free nodes in insertion order.
	frontier := make([]string, 0, len(nodes))
	for _, node := range nodes {
		if inDegree[node.ID] == 0 {
			frontier = append(frontier, node.ID)
		}
	}

	ranks := make(map[string]int, len(nodes))
	visited := 0
	for rank := 0; len(frontier) > 0; rank++ {
		next := make([]string, 0)
		for _, nodeID := range frontier {
			ranks[nodeID] = rank
			visited++
			for _, successor := range successors[nodeID] {
				inDegree[successor]--
				if inDegree[successor] == 0 {
					next = append(next, successor)
				}
			}
		}
		// Keep the next frontier deterministic by node insertion order.
		sortByInsertionOrder(next, nodeIndex)
		frontier = next
	}

	if visited != len(nodes) {
		return nil, ErrCyclicGraph
	}

	return ranks, nil
}

// OrderedNodeIDs returns all node ids sorted by ascending rank, with ties broken
// by node insertion order.
func OrderedNodeIDs(nodes []model.Node, ranks map[string]int) []string {
	nodeIndex := make(map[string]int, len(nodes))
	ordered := make([]string, 0, len(nodes))
	for i, node := range nodes {
		nodeIndex[node.ID] = i
		ordered = append(ordered, node.ID)
	}

	sort.Slice(ordered, func(i, j int) bool {
		a, b := ordered[i], ordered[j]
		if ranks[a] != ranks[b] {
			return ranks[a] < ranks[b]
		}
		return nodeIndex[a] < nodeIndex[b]
	})

	return ordered
}

// Predecessors builds the map of node id to the set of its direct predecessor node ids.
func Predecessors(nodes []model.Node, connections []model.Connection) map[string]map[string]bool {
	preds := make(map[string]map[string]bool, len(nodes))
	for _, node := range nodes {
		preds[node.ID] = make(map[string]bool)
	}
	for _, conn := range connections {
		if _, ok := preds[conn.TargetNodeID]; ok {
			preds[conn.TargetNodeID][conn.SourceNodeID] = true
		}
	}
	return preds
}

// sortByInsertionOrder sorts node ids in place by their position in the node list.
func sortByInsertionOrder(nodeIDs []string, nodeIndex map[string]int) {
	sort.Slice(nodeIDs, func(i, j int) bool {
		return nodeIndex[nodeIDs[i]] < nodeIndex[nodeIDs[j]]
	})
}
