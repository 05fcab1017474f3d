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

// Package store provides the implementation for schedule persistence operations.
package store

import (
	dbmodel "github.com/recomlabs/amp/internal/system/database/model"
)

var (
	// QueryGetScheduleListCount is the query to get the total count of a user's schedules.
	QueryGetScheduleListCount = dbmodel.DBQuery{
		ID:    "SCQ-SCHEDULE_MGT-00",
		Query: `SELECT COUNT(*) as total FROM AMP_SCHEDULE WHERE CREATED_BY = $1`,
	}

	// QueryGetScheduleList is the query to get a user's schedules with pagination.
	QueryGetScheduleList = dbmodel.DBQuery{
		ID: "SCQ-SCHEDULE_MGT-01",
		Query: `SELECT SCHEDULE_ID, COMPOSITION_ID, CRON_EXPRESSION, INSTANCE_ID, PARAMETERS, ENABLED, ` +
			`CREATED_BY, CREATED_AT FROM AMP_SCHEDULE WHERE CREATED_BY = $1 ` +
			`ORDER BY CREATED_AT LIMIT $2 OFFSET $3`,
	}

	// QueryCreateSchedule is the query to create a new schedule.
	QueryCreateSchedule = dbmodel.DBQuery{
		ID: "SCQ-SCHEDULE_MGT-02",
		Query: `INSERT INTO AMP_SCHEDULE (SCHEDULE_ID, COMPOSITION_ID, CRON_EXPRESSION, INSTANCE_ID, ` +
			`PARAMETERS, ENABLED, CREATED_BY, CREATED_AT) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
	}

	// QueryGetScheduleByID is the query to get a schedule by id.
	QueryGetScheduleByID = dbmodel.DBQuery{
		ID: "SCQ-SCHEDULE_MGT-03",
		Query: `SELECT SCHEDULE_ID, COMPOSITION_ID, CRON_EXPRESSION, INSTANCE_ID, PARAMETERS, ENABLED, ` +
			`CREATED_BY, CREATED_AT FROM AMP_SCHEDULE WHERE SCHEDULE_ID = $1`,
	}

	// QueryUpdateSchedule is the query to update a schedule.
	QueryUpdateSchedule = dbmodel.DBQuery{
		ID: "SCQ-SCHEDULE_MGT-04",
		Query: `UPDATE AMP_SCHEDULE SET CRON_EXPRESSION = $2, INSTANCE_ID = $3, PARAMETERS = $4, ` +
			`ENABLED = $5 WHERE SCHEDULE_ID = $1`,
	}

	// QueryDeleteSchedule is the query to delete a schedule.
	QueryDeleteSchedule = dbmodel.DBQuery{
		ID:    "SCQ-SCHEDULE_MGT-05",
		Query: `DELETE FROM AMP_SCHEDULE WHERE SCHEDULE_ID = $1`,
	}
)
