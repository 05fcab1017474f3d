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
	"fmt"

	"github.com/recomlabs/amp/internal/composition/model"
	"github.com/recomlabs/amp/internal/system/log"
)

// effectiveParameters computes a node's effective parameter map:
//
//  1. the node's statically configured parameter overrides,
//  2. overlaid with the flow-level parameters supplied to the execution,
//  3. overlaid with values mapped from completed upstream nodes via connections,
//  4. overlaid with the node's direct mapped-parameter declarations.
//
// Mappings from a source node that did not complete are skipped; the target
// parameter keeps whatever value the earlier steps left it with. The inputs are
// never mutated, so repeated calls over the same results yield identical output.
func effectiveParameters(
	node model.Node,
	connections []model.Connection,
	flowParams map[string]interface{},
	results map[string]model.NodeResult,
	logger *log.Logger,
) (map[string]interface{}, error) {
	params := make(map[string]interface{}, len(node.ParameterOverrides)+len(flowParams))
	for name, value := range node.ParameterOverrides {
		params[name] = value
	}
	for name, value := range flowParams {
		params[name] = value
	}

	for _, conn := range connections {
		if conn.TargetNodeID != node.ID {
			continue
		}

		sourceResult, settled := results[conn.SourceNodeID]
		if !settled || sourceResult.Status != model.NodeStatusCompleted {
			logger.Debug("Skipping field mappings from incomplete source node",
				log.String(log.LoggerKeyNodeID, conn.SourceNodeID))
			continue
		}

		for _, mapping := range conn.FieldMappings {
			value, ok := sourceResult.Output[mapping.SourceField]
			if !ok {
				logger.Debug("Source output field absent, leaving target parameter untouched",
					log.String("field", mapping.SourceField),
					log.String(log.LoggerKeyNodeID, conn.SourceNodeID))
				continue
			}

			transformed, err := applyTransform(value, mapping.Transform, mapping.Separator, logger)
			if err != nil {
				return nil, fmt.Errorf("mapping field %q to parameter %q: %w",
					mapping.SourceField, mapping.TargetParameter, err)
			}
			params[mapping.TargetParameter] = transformed
		}
	}

	for targetParam, mapped := range node.MappedParameters {
		sourceResult, settled := results[mapped.SourceNodeID]
		if !settled || sourceResult.Status != model.NodeStatusCompleted {
			continue
		}

		value, ok := sourceResult.Output[mapped.SourceField]
		if !ok {
			continue
		}

		transformed, err := applyTransform(value, mapped.Transform, mapped.Separator, logger)
		if err != nil {
			return nil, fmt.Errorf("mapping field %q to parameter %q: %w",
				mapped.SourceField, targetParam, err)
		}
		params[targetParam] = transformed
	}

	return params, nil
}
