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

// Package store provides the implementation for composition persistence operations.
package store

import (
	dbmodel "github.com/recomlabs/amp/internal/system/database/model"
)

var (
	// QueryGetCompositionListCount is the query to get the total count of compositions visible to a user.
	QueryGetCompositionListCount = dbmodel.DBQuery{
		ID: "CPQ-COMPOSITION_MGT-00",
		Query: `SELECT COUNT(*) as total FROM AMP_COMPOSITION WHERE LIFECYCLE = 'ACTIVE' AND ` +
			`(CREATED_BY = $1 OR VISIBILITY = 'PUBLIC')`,
	}

	// QueryGetCompositionList is the query to get compositions visible to a user with pagination.
	QueryGetCompositionList = dbmodel.DBQuery{
		ID: "CPQ-COMPOSITION_MGT-01",
		Query: `SELECT COMPOSITION_ID, NAME, DESCRIPTION, VISIBILITY FROM AMP_COMPOSITION ` +
			`WHERE LIFECYCLE = 'ACTIVE' AND (CREATED_BY = $1 OR VISIBILITY = 'PUBLIC') ` +
			`ORDER BY NAME LIMIT $2 OFFSET $3`,
	}

	// QueryCreateComposition is the query to create a new composition.
	QueryCreateComposition = dbmodel.DBQuery{
		ID: "CPQ-COMPOSITION_MGT-02",
		Query: `INSERT INTO AMP_COMPOSITION (COMPOSITION_ID, NAME, DESCRIPTION, CANVAS, GLOBAL_PARAMETERS, ` +
			`VISIBILITY, LIFECYCLE, EXECUTION_CONFIG, CREATED_BY, CREATED_AT, UPDATED_AT) ` +
			`VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`,
	}

	// QueryGetCompositionByID is the query to get an active composition by id.
	QueryGetCompositionByID = dbmodel.DBQuery{
		ID: "CPQ-COMPOSITION_MGT-03",
		Query: `SELECT COMPOSITION_ID, NAME, DESCRIPTION, CANVAS, GLOBAL_PARAMETERS, VISIBILITY, LIFECYCLE, ` +
			`EXECUTION_CONFIG, CREATED_BY, CREATED_AT, UPDATED_AT FROM AMP_COMPOSITION ` +
			`WHERE COMPOSITION_ID = $1 AND LIFECYCLE = 'ACTIVE'`,
	}

	// QueryUpdateComposition is the query to update a composition.
	QueryUpdateComposition = dbmodel.DBQuery{
		ID: "CPQ-COMPOSITION_MGT-04",
		Query: `UPDATE AMP_COMPOSITION SET NAME = $2, DESCRIPTION = $3, CANVAS = $4, GLOBAL_PARAMETERS = $5, ` +
			`VISIBILITY = $6, EXECUTION_CONFIG = $7, UPDATED_AT = $8 ` +
			`WHERE COMPOSITION_ID = $1 AND LIFECYCLE = 'ACTIVE'`,
	}

	// QueryArchiveComposition is the query to archive a composition.
	QueryArchiveComposition = dbmodel.DBQuery{
		ID: "CPQ-COMPOSITION_MGT-05",
		Query: `UPDATE AMP_COMPOSITION SET LIFECYCLE = 'ARCHIVED', UPDATED_AT = $2 ` +
			`WHERE COMPOSITION_ID = $1 AND LIFECYCLE = 'ACTIVE'`,
	}

	// QueryCreateCompositionNode is the query to add a node to a composition.
	QueryCreateCompositionNode = dbmodel.DBQuery{
		ID: "CPQ-COMPOSITION_MGT-06",
		Query: `INSERT INTO AMP_COMPOSITION_NODE (COMPOSITION_ID, NODE_ID, TEMPLATE_ID, POSITION_X, POSITION_Y, ` +
			`PARAMETER_OVERRIDES, MAPPED_PARAMETERS, NODE_INDEX) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
	}

	// QueryGetCompositionNodes is the query to get all nodes of a composition in insertion order.
	QueryGetCompositionNodes = dbmodel.DBQuery{
		ID: "CPQ-COMPOSITION_MGT-07",
		Query: `SELECT NODE_ID, TEMPLATE_ID, POSITION_X, POSITION_Y, PARAMETER_OVERRIDES, MAPPED_PARAMETERS ` +
			`FROM AMP_COMPOSITION_NODE WHERE COMPOSITION_ID = $1 ORDER BY NODE_INDEX`,
	}

	// QueryUpdateCompositionNode is the query to update a node within a composition.
	QueryUpdateCompositionNode = dbmodel.DBQuery{
		ID: "CPQ-COMPOSITION_MGT-08",
		Query: `UPDATE AMP_COMPOSITION_NODE SET TEMPLATE_ID = $3, POSITION_X = $4, POSITION_Y = $5, ` +
			`PARAMETER_OVERRIDES = $6, MAPPED_PARAMETERS = $7 WHERE COMPOSITION_ID = $1 AND NODE_ID = $2`,
	}

	// QueryDeleteCompositionNode is the query to remove a node from a composition.
	QueryDeleteCompositionNode = dbmodel.DBQuery{
		ID:    "CPQ-COMPOSITION_MGT-09",
		Query: `DELETE FROM AMP_COMPOSITION_NODE WHERE COMPOSITION_ID = $1 AND NODE_ID = $2`,
	}

	// QueryDeleteConnectionsByNode is the query to remove all connections touching a node.
	QueryDeleteConnectionsByNode = dbmodel.DBQuery{
		ID: "CPQ-COMPOSITION_MGT-10",
		Query: `DELETE FROM AMP_COMPOSITION_CONNECTION WHERE COMPOSITION_ID = $1 AND ` +
			`(SOURCE_NODE_ID = $2 OR TARGET_NODE_ID = $2)`,
	}

	// QueryCreateCompositionConnection is the query to add a connection to a composition.
	QueryCreateCompositionConnection = dbmodel.DBQuery{
		ID: "CPQ-COMPOSITION_MGT-11",
		Query: `INSERT INTO AMP_COMPOSITION_CONNECTION (COMPOSITION_ID, CONNECTION_ID, SOURCE_NODE_ID, ` +
			`TARGET_NODE_ID, FIELD_MAPPINGS, REQUIRED, CONNECTION_INDEX) VALUES ($1, $2, $3, $4, $5, $6, $7)`,
	}

	// QueryGetCompositionConnections is the query to get all connections of a composition in insertion order.
	QueryGetCompositionConnections = dbmodel.DBQuery{
		ID: "CPQ-COMPOSITION_MGT-12",
		Query: `SELECT CONNECTION_ID, SOURCE_NODE_ID, TARGET_NODE_ID, FIELD_MAPPINGS, REQUIRED ` +
			`FROM AMP_COMPOSITION_CONNECTION WHERE COMPOSITION_ID = $1 ORDER BY CONNECTION_INDEX`,
	}

	// QueryDeleteCompositionConnection is the query to remove a connection from a composition.
	QueryDeleteCompositionConnection = dbmodel.DBQuery{
		ID:    "CPQ-COMPOSITION_MGT-13",
		Query: `DELETE FROM AMP_COMPOSITION_CONNECTION WHERE COMPOSITION_ID = $1 AND CONNECTION_ID = $2`,
	}

	// QueryGetMaxNodeIndex is the query to get the highest node insertion index of a composition.
	QueryGetMaxNodeIndex = dbmodel.DBQuery{
		ID:    "CPQ-COMPOSITION_MGT-14",
		Query: `SELECT COALESCE(MAX(NODE_INDEX), -1) as max_index FROM AMP_COMPOSITION_NODE WHERE COMPOSITION_ID = $1`,
	}

	// QueryGetMaxConnectionIndex is the query to get the highest connection insertion index of a composition.
	QueryGetMaxConnectionIndex = dbmodel.DBQuery{
		ID: "CPQ-COMPOSITION_MGT-15",
		Query: `SELECT COALESCE(MAX(CONNECTION_INDEX), -1) as max_index FROM AMP_COMPOSITION_CONNECTION ` +
			`WHERE COMPOSITION_ID = $1`,
	}
)

var (
	// QueryCreateExecutionRecord is the query to insert a composition execution record in running state.
	QueryCreateExecutionRecord = dbmodel.DBQuery{
		ID: "CEQ-COMPOSITION_EXEC-00",
		Query: `INSERT INTO AMP_COMPOSITION_EXECUTION (EXECUTION_ID, COMPOSITION_ID, USER_ID, INSTANCE_ID, ` +
			`SCHEDULE_ID, STATUS, PARAMETERS, TOTAL_NODES, COMPLETED_NODES, FAILED_NODES, SKIPPED_NODES, ` +
			`STARTED_AT) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`,
	}

	// QueryGetExecutionRecord is the query to get a composition execution record by id.
	QueryGetExecutionRecord = dbmodel.DBQuery{
		ID: "CEQ-COMPOSITION_EXEC-01",
		Query: `SELECT EXECUTION_ID, COMPOSITION_ID, USER_ID, INSTANCE_ID, SCHEDULE_ID, STATUS, PARAMETERS, ` +
			`TOTAL_NODES, COMPLETED_NODES, FAILED_NODES, SKIPPED_NODES, STARTED_AT, COMPLETED_AT, ` +
			`NODE_RESULTS, RESULT_SUMMARY FROM AMP_COMPOSITION_EXECUTION WHERE EXECUTION_ID = $1`,
	}

	// QueryFinalizeExecutionRecord is the query to settle a composition execution record with its
	// terminal status, node counts, per-node results, and summary.
	QueryFinalizeExecutionRecord = dbmodel.DBQuery{
		ID: "CEQ-COMPOSITION_EXEC-02",
		Query: `UPDATE AMP_COMPOSITION_EXECUTION SET STATUS = $2, COMPLETED_NODES = $3, FAILED_NODES = $4, ` +
			`SKIPPED_NODES = $5, COMPLETED_AT = $6, NODE_RESULTS = $7, RESULT_SUMMARY = $8 ` +
			`WHERE EXECUTION_ID = $1`,
	}

	// QueryUpdateExecutionStatus is the query to update only the status of a composition execution.
	QueryUpdateExecutionStatus = dbmodel.DBQuery{
		ID: "CEQ-COMPOSITION_EXEC-03",
		Query: `UPDATE AMP_COMPOSITION_EXECUTION SET STATUS = $2 WHERE EXECUTION_ID = $1 AND STATUS = $3`,
	}
)
