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

package client

import (
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"

	"github.com/recomlabs/amp/internal/system/database/model"
)

type DBClientTestSuite struct {
	suite.Suite
	mock   sqlmock.Sqlmock
	client DBClientInterface
}

func TestDBClientSuite(t *testing.T) {
	suite.Run(t, new(DBClientTestSuite))
}

func (suite *DBClientTestSuite) SetupTest() {
	db, mock, err := sqlmock.New()
	assert.NoError(suite.T(), err)

	suite.mock = mock
	suite.client = NewDBClient(model.NewDB(db), "postgres")
}

func (suite *DBClientTestSuite) TestQueryReturnsRowMaps() {
	query := model.DBQuery{
		ID:    "TST-TEST_MGT-01",
		Query: "SELECT TEMPLATE_ID, NAME FROM AMP_TEMPLATE WHERE CREATED_BY = $1",
	}

	suite.mock.ExpectQuery("SELECT TEMPLATE_ID, NAME FROM AMP_TEMPLATE").
		WithArgs("user-1").
		WillReturnRows(sqlmock.NewRows([]string{"TEMPLATE_ID", "NAME"}).
			AddRow("tpl-1", "daily report").
			AddRow("tpl-2", "overlap"))

	results, err := suite.client.Query(query, "user-1")
	assert.NoError(suite.T(), err)
	assert.Len(suite.T(), results, 2)

	// Column names are normalized to lowercase regardless of the driver's casing.
	assert.Equal(suite.T(), "tpl-1", results[0]["template_id"])
	assert.Equal(suite.T(), "daily report", results[0]["name"])
	assert.Equal(suite.T(), "tpl-2", results[1]["template_id"])

	assert.NoError(suite.T(), suite.mock.ExpectationsWereMet())
}

func (suite *DBClientTestSuite) TestQueryPropagatesError() {
	query := model.DBQuery{ID: "TST-TEST_MGT-02", Query: "SELECT 1"}

	suite.mock.ExpectQuery("SELECT 1").WillReturnError(errors.New("connection reset"))

	_, err := suite.client.Query(query)
	assert.Error(suite.T(), err)
}

func (suite *DBClientTestSuite) TestExecuteReturnsRowsAffected() {
	query := model.DBQuery{
		ID:    "TST-TEST_MGT-03",
		Query: "DELETE FROM AMP_TEMPLATE WHERE TEMPLATE_ID = $1",
	}

	suite.mock.ExpectExec("DELETE FROM AMP_TEMPLATE").
		WithArgs("tpl-1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	rowsAffected, err := suite.client.Execute(query, "tpl-1")
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), int64(1), rowsAffected)

	assert.NoError(suite.T(), suite.mock.ExpectationsWereMet())
}

func (suite *DBClientTestSuite) TestBeginTxCommit() {
	suite.mock.ExpectBegin()
	suite.mock.ExpectExec("INSERT INTO AMP_TEMPLATE").
		WillReturnResult(sqlmock.NewResult(0, 1))
	suite.mock.ExpectCommit()

	tx, err := suite.client.BeginTx()
	assert.NoError(suite.T(), err)

	_, err = tx.Exec("INSERT INTO AMP_TEMPLATE (TEMPLATE_ID) VALUES ($1)", "tpl-1")
	assert.NoError(suite.T(), err)
	assert.NoError(suite.T(), tx.Commit())

	assert.NoError(suite.T(), suite.mock.ExpectationsWereMet())
}
