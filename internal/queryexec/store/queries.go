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

// Package store provides the implementation for query execution persistence operations.
package store

import (
	dbmodel "github.com/recomlabs/amp/internal/system/database/model"
)

var (
	// QueryCreateQueryExecution is the query to record a submitted query execution.
	QueryCreateQueryExecution = dbmodel.DBQuery{
		ID: "QXQ-QUERY_EXEC-00",
		Query: `INSERT INTO AMP_QUERY_EXECUTION (EXECUTION_ID, TEMPLATE_ID, INSTANCE_ID, USER_ID, WORKFLOW_ID, ` +
			`STATUS, PARAMETERS, COMPOSITION_EXECUTION_ID, COMPOSITION_NODE_ID, SUBMITTED_AT) ` +
			`VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
	}

	// QueryGetQueryExecutionByID is the query to get a query execution by id.
	QueryGetQueryExecutionByID = dbmodel.DBQuery{
		ID: "QXQ-QUERY_EXEC-01",
		Query: `SELECT EXECUTION_ID, TEMPLATE_ID, INSTANCE_ID, USER_ID, WORKFLOW_ID, STATUS, PARAMETERS, ` +
			`COMPOSITION_EXECUTION_ID, COMPOSITION_NODE_ID, SUBMITTED_AT FROM AMP_QUERY_EXECUTION ` +
			`WHERE EXECUTION_ID = $1`,
	}

	// QueryUpdateQueryExecutionStatus is the query to update the status of a query execution.
	QueryUpdateQueryExecutionStatus = dbmodel.DBQuery{
		ID:    "QXQ-QUERY_EXEC-02",
		Query: `UPDATE AMP_QUERY_EXECUTION SET STATUS = $2 WHERE EXECUTION_ID = $1`,
	}
)
