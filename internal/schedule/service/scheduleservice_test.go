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

package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"

	"github.com/recomlabs/amp/internal/schedule/constants"
	"github.com/recomlabs/amp/internal/schedule/model"
)

type ScheduleServiceTestSuite struct {
	suite.Suite
}

func TestScheduleServiceSuite(t *testing.T) {
	suite.Run(t, new(ScheduleServiceTestSuite))
}

func (suite *ScheduleServiceTestSuite) TestIsValidCronExpression() {
	tests := []struct {
		name       string
		expression string
		valid      bool
	}{
		{"EveryMinute", "* * * * *", true},
		{"DailyAtMidnight", "0 0 * * *", true},
		{"WeekdayMornings", "30 8 * * 1-5", true},
		{"ExtraWhitespace", "  0   0  *  *  *  ", true},
		{"Empty", "", false},
		{"FourFields", "0 0 * *", false},
		{"SixFields", "0 0 0 * * *", false},
	}

	for _, tc := range tests {
		suite.Run(tc.name, func() {
			assert.Equal(suite.T(), tc.valid, isValidCronExpression(tc.expression))
		})
	}
}

func (suite *ScheduleServiceTestSuite) TestCreateScheduleRejectsInvalidRequests() {
	svc := GetScheduleService()

	tests := []struct {
		name         string
		request      model.CreateScheduleRequest
		expectedCode string
	}{
		{
			name: "MissingCompositionID",
			request: model.CreateScheduleRequest{
				InstanceID:     "inst-1",
				CronExpression: "0 0 * * *",
			},
			expectedCode: constants.ErrorInvalidRequestFormat.Code,
		},
		{
			name: "MissingInstanceID",
			request: model.CreateScheduleRequest{
				CompositionID:  "comp-1",
				CronExpression: "0 0 * * *",
			},
			expectedCode: constants.ErrorInvalidRequestFormat.Code,
		},
		{
			name: "InvalidCronExpression",
			request: model.CreateScheduleRequest{
				CompositionID:  "comp-1",
				InstanceID:     "inst-1",
				CronExpression: "0 0 * *",
			},
			expectedCode: constants.ErrorInvalidCronExpression.Code,
		},
	}

	for _, tc := range tests {
		suite.Run(tc.name, func() {
			_, svcErr := svc.CreateSchedule("user-1", tc.request)
			assert.NotNil(suite.T(), svcErr)
			assert.Equal(suite.T(), tc.expectedCode, svcErr.Code)
		})
	}
}

func (suite *ScheduleServiceTestSuite) TestUpdateScheduleRejectsInvalidRequests() {
	svc := GetScheduleService()

	_, svcErr := svc.UpdateSchedule("sched-1", "user-1", model.UpdateScheduleRequest{
		CronExpression: "0 0 * * *",
	})
	assert.NotNil(suite.T(), svcErr)
	assert.Equal(suite.T(), constants.ErrorInvalidRequestFormat.Code, svcErr.Code)

	_, svcErr = svc.UpdateSchedule("sched-1", "user-1", model.UpdateScheduleRequest{
		InstanceID:     "inst-1",
		CronExpression: "not a cron",
	})
	assert.NotNil(suite.T(), svcErr)
	assert.Equal(suite.T(), constants.ErrorInvalidCronExpression.Code, svcErr.Code)
}

func (suite *ScheduleServiceTestSuite) TestGetScheduleRequiresID() {
	svc := GetScheduleService()

	_, svcErr := svc.GetSchedule("", "user-1")
	assert.NotNil(suite.T(), svcErr)
	assert.Equal(suite.T(), constants.ErrorInvalidRequestFormat.Code, svcErr.Code)
}
