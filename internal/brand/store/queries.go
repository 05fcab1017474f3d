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

// Package store provides the implementation for brand persistence operations.
package store

import (
	dbmodel "github.com/recomlabs/amp/internal/system/database/model"
)

var (
	// QueryGetBrandListCount is the query to get the total count of a user's brands.
	QueryGetBrandListCount = dbmodel.DBQuery{
		ID:    "BRQ-BRAND_MGT-00",
		Query: `SELECT COUNT(*) as total FROM AMP_BRAND WHERE CREATED_BY = $1`,
	}

	// QueryGetBrandList is the query to get a user's brands with pagination.
	QueryGetBrandList = dbmodel.DBQuery{
		ID: "BRQ-BRAND_MGT-01",
		Query: `SELECT BRAND_ID, NAME, DESCRIPTION, AMC_INSTANCE_ID, CREATED_BY, CREATED_AT FROM AMP_BRAND ` +
			`WHERE CREATED_BY = $1 ORDER BY NAME LIMIT $2 OFFSET $3`,
	}

	// QueryCreateBrand is the query to create a new brand.
	QueryCreateBrand = dbmodel.DBQuery{
		ID: "BRQ-BRAND_MGT-02",
		Query: `INSERT INTO AMP_BRAND (BRAND_ID, NAME, DESCRIPTION, AMC_INSTANCE_ID, CREATED_BY, CREATED_AT) ` +
			`VALUES ($1, $2, $3, $4, $5, $6)`,
	}

	// QueryGetBrandByID is the query to get a brand by id.
	QueryGetBrandByID = dbmodel.DBQuery{
		ID: "BRQ-BRAND_MGT-03",
		Query: `SELECT BRAND_ID, NAME, DESCRIPTION, AMC_INSTANCE_ID, CREATED_BY, CREATED_AT FROM AMP_BRAND ` +
			`WHERE BRAND_ID = $1`,
	}

	// QueryUpdateBrand is the query to update a brand.
	QueryUpdateBrand = dbmodel.DBQuery{
		ID: "BRQ-BRAND_MGT-04",
		Query: `UPDATE AMP_BRAND SET NAME = $2, DESCRIPTION = $3, AMC_INSTANCE_ID = $4 ` +
			`WHERE BRAND_ID = $1`,
	}

	// QueryDeleteBrand is the query to delete a brand.
	QueryDeleteBrand = dbmodel.DBQuery{
		ID:    "BRQ-BRAND_MGT-05",
		Query: `DELETE FROM AMP_BRAND WHERE BRAND_ID = $1`,
	}
)
