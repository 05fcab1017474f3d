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
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"

	"github.com/recomlabs/amp/internal/template/model"
)

type TemplateEngineTestSuite struct {
	suite.Suite
}

func TestTemplateEngineSuite(t *testing.T) {
	suite.Run(t, new(TemplateEngineTestSuite))
}

func (suite *TemplateEngineTestSuite) TestProcessSubstitution() {
	paramDefs := []model.ParameterDefinition{
		{Name: "campaign_ids", Type: model.ParameterTypeCampaignList, Required: true},
		{Name: "lookback_days", Type: model.ParameterTypeNumber, Required: false, DefaultValue: float64(30)},
		{Name: "region", Type: model.ParameterTypeString, Required: false},
	}
	sqlTemplate := "SELECT * FROM impressions WHERE campaign IN {{campaign_ids}} " +
		"AND days <= {{lookback_days}}"

	sql, err := Process(sqlTemplate, paramDefs, map[string]interface{}{
		"campaign_ids": []interface{}{"c1", "c2"},
	})
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(),
		"SELECT * FROM impressions WHERE campaign IN ('c1', 'c2') AND days <= 30", sql)
}

func (suite *TemplateEngineTestSuite) TestProcessMissingRequiredParameter() {
	paramDefs := []model.ParameterDefinition{
		{Name: "campaign_ids", Type: model.ParameterTypeCampaignList, Required: true},
	}

	_, err := Process("SELECT {{campaign_ids}}", paramDefs, nil)

	var validationErr *ValidationError
	assert.True(suite.T(), errors.As(err, &validationErr))
	assert.Equal(suite.T(), "campaign_ids", validationErr.Parameter)
}

func (suite *TemplateEngineTestSuite) TestProcessMissingOptionalWithoutDefault() {
	paramDefs := []model.ParameterDefinition{
		{Name: "region", Type: model.ParameterTypeString, Required: false},
	}

	// The placeholder stays untouched when the optional parameter is absent.
	sql, err := Process("SELECT {{region}}", paramDefs, nil)
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), "SELECT {{region}}", sql)
}

func (suite *TemplateEngineTestSuite) TestValidateAndEncode() {
	tests := []struct {
		name     string
		def      model.ParameterDefinition
		value    interface{}
		expected string
	}{
		{
			name:     "String",
			def:      model.ParameterDefinition{Name: "p", Type: model.ParameterTypeString},
			value:    "us-east",
			expected: "'us-east'",
		},
		{
			name:     "StringWithQuoteEscaped",
			def:      model.ParameterDefinition{Name: "p", Type: model.ParameterTypeString},
			value:    "o'brien",
			expected: "'o''brien'",
		},
		{
			name:     "Number",
			def:      model.ParameterDefinition{Name: "p", Type: model.ParameterTypeNumber},
			value:    float64(3.5),
			expected: "3.5",
		},
		{
			name:     "BooleanTrue",
			def:      model.ParameterDefinition{Name: "p", Type: model.ParameterTypeBoolean},
			value:    true,
			expected: "TRUE",
		},
		{
			name:     "BooleanFalse",
			def:      model.ParameterDefinition{Name: "p", Type: model.ParameterTypeBoolean},
			value:    false,
			expected: "FALSE",
		},
		{
			name:     "StringList",
			def:      model.ParameterDefinition{Name: "p", Type: model.ParameterTypeStringList},
			value:    []interface{}{"a", "b"},
			expected: "('a', 'b')",
		},
		{
			name:     "CampaignList",
			def:      model.ParameterDefinition{Name: "p", Type: model.ParameterTypeCampaignList},
			value:    []string{"c1"},
			expected: "('c1')",
		},
		{
			name:     "NumberList",
			def:      model.ParameterDefinition{Name: "p", Type: model.ParameterTypeNumberList},
			value:    []interface{}{float64(1), float64(2)},
			expected: "(1, 2)",
		},
		{
			name:     "Date",
			def:      model.ParameterDefinition{Name: "p", Type: model.ParameterTypeDate},
			value:    "2025-06-01",
			expected: "'2025-06-01'",
		},
	}

	for _, tc := range tests {
		suite.Run(tc.name, func() {
			encoded, err := validateAndEncode(tc.def, tc.value)
			assert.NoError(suite.T(), err)
			assert.Equal(suite.T(), tc.expected, encoded)
		})
	}
}

func (suite *TemplateEngineTestSuite) TestValidateAndEncodeRejectsInvalidValues() {
	tests := []struct {
		name  string
		def   model.ParameterDefinition
		value interface{}
	}{
		{
			name:  "StringGivenNumber",
			def:   model.ParameterDefinition{Name: "p", Type: model.ParameterTypeString},
			value: float64(1),
		},
		{
			name:  "NumberGivenString",
			def:   model.ParameterDefinition{Name: "p", Type: model.ParameterTypeNumber},
			value: "nope",
		},
		{
			name:  "BooleanGivenString",
			def:   model.ParameterDefinition{Name: "p", Type: model.ParameterTypeBoolean},
			value: "true",
		},
		{
			name:  "EmptyStringList",
			def:   model.ParameterDefinition{Name: "p", Type: model.ParameterTypeStringList},
			value: []interface{}{},
		},
		{
			name:  "StringListWithNumberElement",
			def:   model.ParameterDefinition{Name: "p", Type: model.ParameterTypeStringList},
			value: []interface{}{"a", float64(2)},
		},
		{
			name:  "NumberListWithStringElement",
			def:   model.ParameterDefinition{Name: "p", Type: model.ParameterTypeNumberList},
			value: []interface{}{"a"},
		},
		{
			name:  "MalformedDate",
			def:   model.ParameterDefinition{Name: "p", Type: model.ParameterTypeDate},
			value: "06/01/2025",
		},
		{
			name:  "UnsupportedType",
			def:   model.ParameterDefinition{Name: "p", Type: "uuid"},
			value: "v",
		},
	}

	for _, tc := range tests {
		suite.Run(tc.name, func() {
			_, err := validateAndEncode(tc.def, tc.value)

			var validationErr *ValidationError
			assert.True(suite.T(), errors.As(err, &validationErr))
			assert.Equal(suite.T(), "p", validationErr.Parameter)
		})
	}
}
