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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"

	"github.com/recomlabs/amp/internal/system/log"
)

type TransformTestSuite struct {
	suite.Suite
	logger *log.Logger
}

func TestTransformSuite(t *testing.T) {
	suite.Run(t, new(TransformTestSuite))
}

func (suite *TransformTestSuite) SetupTest() {
	suite.logger = log.GetLogger()
}

func (suite *TransformTestSuite) TestApplyTransform() {
	tests := []struct {
		name      string
		value     interface{}
		transform string
		separator string
		expected  interface{}
	}{
		{
			name:      "DirectPassesThrough",
			value:     "abc",
			transform: TransformDirect,
			expected:  "abc",
		},
		{
			name:      "EmptyTransformPassesThrough",
			value:     float64(42),
			transform: "",
			expected:  float64(42),
		},
		{
			name:      "ToArrayWrapsScalar",
			value:     float64(5),
			transform: TransformToArray,
			expected:  []interface{}{float64(5)},
		},
		{
			name:      "ToArrayPassesListThrough",
			value:     []interface{}{"a", "b"},
			transform: TransformToArray,
			expected:  []interface{}{"a", "b"},
		},
		{
			name:      "ToStringFormatsNumber",
			value:     float64(3.5),
			transform: TransformToString,
			expected:  "3.5",
		},
		{
			name:      "ToNumberParsesString",
			value:     "3.5",
			transform: TransformToNumber,
			expected:  float64(3.5),
		},
		{
			name:      "ToObjectWrapsScalar",
			value:     "v",
			transform: TransformToObject,
			expected:  map[string]interface{}{"value": "v"},
		},
		{
			name:      "ToObjectPassesMappingThrough",
			value:     map[string]interface{}{"k": "v"},
			transform: TransformToObject,
			expected:  map[string]interface{}{"k": "v"},
		},
		{
			name:      "FlattenOneLevel",
			value:     []interface{}{[]interface{}{"a", "b"}, "c", []interface{}{"d"}},
			transform: TransformFlatten,
			expected:  []interface{}{"a", "b", "c", "d"},
		},
		{
			name:      "DistinctKeepsFirstOccurrence",
			value:     []interface{}{"a", "b", "a", "c", "b"},
			transform: TransformDistinct,
			expected:  []interface{}{"a", "b", "c"},
		},
		{
			name:      "JoinWithSeparator",
			value:     []interface{}{"a", "b", "c"},
			transform: TransformJoin,
			separator: "|",
			expected:  "a|b|c",
		},
		{
			name:      "JoinDefaultsToComma",
			value:     []interface{}{"a", "b"},
			transform: TransformJoin,
			expected:  "a,b",
		},
		{
			name:      "UnknownTransformPassesThrough",
			value:     "unchanged",
			transform: "reverse",
			expected:  "unchanged",
		},
	}

	for _, tc := range tests {
		suite.Run(tc.name, func() {
			result, err := applyTransform(tc.value, tc.transform, tc.separator, suite.logger)
			assert.NoError(suite.T(), err)
			assert.Equal(suite.T(), tc.expected, result)
		})
	}
}

func (suite *TransformTestSuite) TestToNumberFailsOnNonNumeric() {
	_, err := applyTransform("abc", TransformToNumber, "", suite.logger)
	assert.Error(suite.T(), err)

	_, err = applyTransform(map[string]interface{}{}, TransformToNumber, "", suite.logger)
	assert.Error(suite.T(), err)
}

func (suite *TransformTestSuite) TestToNumberAcceptsNumericTypes() {
	for _, value := range []interface{}{float64(7), float32(7), int(7), int64(7), " 7 "} {
		result, err := applyTransform(value, TransformToNumber, "", suite.logger)
		assert.NoError(suite.T(), err)
		assert.Equal(suite.T(), float64(7), result)
	}
}

func (suite *TransformTestSuite) TestListNormalization() {
	// Typed slices behave like generic lists for list-shaped transforms.
	result, err := applyTransform([]string{"x", "y"}, TransformJoin, "-", suite.logger)
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), "x-y", result)

	flattened, err := applyTransform([]float64{1, 2}, TransformFlatten, "", suite.logger)
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), []interface{}{float64(1), float64(2)}, flattened)
}
