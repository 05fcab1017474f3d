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

// Package store provides the implementation for query template persistence operations.
package store

import (
	dbmodel "github.com/recomlabs/amp/internal/system/database/model"
)

var (
	// QueryGetTemplateListCount is the query to get the total count of templates visible to a user.
	QueryGetTemplateListCount = dbmodel.DBQuery{
		ID: "TPQ-TEMPLATE_MGT-00",
		Query: `SELECT COUNT(*) as total FROM AMP_TEMPLATE WHERE LIFECYCLE = 'ACTIVE' AND ` +
			`(CREATED_BY = $1 OR VISIBILITY = 'PUBLIC')`,
	}

	// QueryGetTemplateList is the query to get templates visible to a user with pagination.
	QueryGetTemplateList = dbmodel.DBQuery{
		ID: "TPQ-TEMPLATE_MGT-01",
		Query: `SELECT TEMPLATE_ID, NAME, DESCRIPTION, CATEGORY, VISIBILITY FROM AMP_TEMPLATE ` +
			`WHERE LIFECYCLE = 'ACTIVE' AND (CREATED_BY = $1 OR VISIBILITY = 'PUBLIC') ` +
			`ORDER BY NAME LIMIT $2 OFFSET $3`,
	}

	// QueryCreateTemplate is the query to create a new template.
	QueryCreateTemplate = dbmodel.DBQuery{
		ID: "TPQ-TEMPLATE_MGT-02",
		Query: `INSERT INTO AMP_TEMPLATE (TEMPLATE_ID, NAME, DESCRIPTION, SQL_TEMPLATE, PARAMETERS, ` +
			`CATEGORY, VISIBILITY, LIFECYCLE, CREATED_BY) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
	}

	// QueryGetTemplateByID is the query to get a template by id.
	QueryGetTemplateByID = dbmodel.DBQuery{
		ID: "TPQ-TEMPLATE_MGT-03",
		Query: `SELECT TEMPLATE_ID, NAME, DESCRIPTION, SQL_TEMPLATE, PARAMETERS, CATEGORY, VISIBILITY, ` +
			`LIFECYCLE, CREATED_BY FROM AMP_TEMPLATE WHERE TEMPLATE_ID = $1 AND LIFECYCLE = 'ACTIVE'`,
	}

	// QueryUpdateTemplate is the query to update a template.
	QueryUpdateTemplate = dbmodel.DBQuery{
		ID: "TPQ-TEMPLATE_MGT-04",
		Query: `UPDATE AMP_TEMPLATE SET NAME = $2, DESCRIPTION = $3, SQL_TEMPLATE = $4, PARAMETERS = $5, ` +
			`CATEGORY = $6, VISIBILITY = $7 WHERE TEMPLATE_ID = $1 AND LIFECYCLE = 'ACTIVE'`,
	}

	// QueryArchiveTemplate is the query to archive a template.
	QueryArchiveTemplate = dbmodel.DBQuery{
		ID:    "TPQ-TEMPLATE_MGT-05",
		Query: `UPDATE AMP_TEMPLATE SET LIFECYCLE = 'ARCHIVED' WHERE TEMPLATE_ID = $1 AND LIFECYCLE = 'ACTIVE'`,
	}
)
