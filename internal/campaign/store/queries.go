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

// Package store provides the implementation for campaign persistence operations.
package store

import (
	dbmodel "github.com/recomlabs/amp/internal/system/database/model"
)

var (
	// QueryGetCampaignListCount is the query to get the total count of a user's campaigns.
	QueryGetCampaignListCount = dbmodel.DBQuery{
		ID:    "CAQ-CAMPAIGN_MGT-00",
		Query: `SELECT COUNT(*) as total FROM AMP_CAMPAIGN WHERE CREATED_BY = $1`,
	}

	// QueryGetCampaignList is the query to get a user's campaigns with pagination.
	QueryGetCampaignList = dbmodel.DBQuery{
		ID: "CAQ-CAMPAIGN_MGT-01",
		Query: `SELECT CAMPAIGN_ID, NAME, BRAND_ID, CAMPAIGN_TYPE, STATUS, START_DATE, END_DATE, CREATED_BY, ` +
			`CREATED_AT FROM AMP_CAMPAIGN WHERE CREATED_BY = $1 ORDER BY NAME LIMIT $2 OFFSET $3`,
	}

	// QueryCreateCampaign is the query to create a new campaign.
	QueryCreateCampaign = dbmodel.DBQuery{
		ID: "CAQ-CAMPAIGN_MGT-02",
		Query: `INSERT INTO AMP_CAMPAIGN (CAMPAIGN_ID, NAME, BRAND_ID, CAMPAIGN_TYPE, STATUS, START_DATE, ` +
			`END_DATE, CREATED_BY, CREATED_AT) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
	}

	// QueryGetCampaignByID is the query to get a campaign by id.
	QueryGetCampaignByID = dbmodel.DBQuery{
		ID: "CAQ-CAMPAIGN_MGT-03",
		Query: `SELECT CAMPAIGN_ID, NAME, BRAND_ID, CAMPAIGN_TYPE, STATUS, START_DATE, END_DATE, CREATED_BY, ` +
			`CREATED_AT FROM AMP_CAMPAIGN WHERE CAMPAIGN_ID = $1`,
	}

	// QueryUpdateCampaign is the query to update a campaign.
	QueryUpdateCampaign = dbmodel.DBQuery{
		ID: "CAQ-CAMPAIGN_MGT-04",
		Query: `UPDATE AMP_CAMPAIGN SET NAME = $2, BRAND_ID = $3, CAMPAIGN_TYPE = $4, STATUS = $5, ` +
			`START_DATE = $6, END_DATE = $7 WHERE CAMPAIGN_ID = $1`,
	}

	// QueryDeleteCampaign is the query to delete a campaign.
	QueryDeleteCampaign = dbmodel.DBQuery{
		ID:    "CAQ-CAMPAIGN_MGT-05",
		Query: `DELETE FROM AMP_CAMPAIGN WHERE CAMPAIGN_ID = $1`,
	}
)
