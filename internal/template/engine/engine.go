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

// Package engine validates template parameter values and substitutes them into SQL templates.
package engine

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/recomlabs/amp/internal/template/model"
)

// ValidationError indicates that a parameter value failed validation.
type ValidationError struct {
	Parameter string
	Message   string
}

// Error returns the error message for the validation error.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid parameter %q: %s", e.Parameter, e.Message)
}

// newValidationError creates a ValidationError for the given parameter.
func newValidationError(parameter, message string) *ValidationError {
	return &ValidationError{Parameter: parameter, Message: message}
}

// Process validates the given parameter values against their definitions and substitutes
// them into the SQL template. Placeholders use the {{name}} form. Missing optional
// parameters fall back to their declared default; missing required parameters fail.
func Process(sqlTemplate string, paramDefs []model.ParameterDefinition,
	values map[string]interface{}) (string, error) {
	sql := sqlTemplate

	for _, def := range paramDefs {
		value, present := values[def.Name]
		if !present || value == nil {
			if def.DefaultValue != nil {
				value = def.DefaultValue
			} else if def.Required {
				return "", newValidationError(def.Name, "required parameter is missing")
			} else {
				continue
			}
		}

		encoded, err := validateAndEncode(def, value)
		if err != nil {
			return "", err
		}

		sql = strings.ReplaceAll(sql, "{{"+def.Name+"}}", encoded)
	}

	return sql, nil
}

// validateAndEncode validates a single parameter value against its declared type and
// returns its SQL-literal encoding. Parameter types form a closed set; each case
// dispatches to its own validator.
func validateAndEncode(def model.ParameterDefinition, value interface{}) (string, error) {
	switch def.Type {
	case model.ParameterTypeString:
		return validateString(def.Name, value)
	case model.ParameterTypeNumber:
		return validateNumber(def.Name, value)
	case model.ParameterTypeBoolean:
		return validateBoolean(def.Name, value)
	case model.ParameterTypeStringList, model.ParameterTypeCampaignList:
		return validateStringList(def.Name, value)
	case model.ParameterTypeNumberList:
		return validateNumberList(def.Name, value)
	case model.ParameterTypeDate:
		return validateDate(def.Name, value)
	default:
		return "", newValidationError(def.Name, fmt.Sprintf("unsupported parameter type %q", def.Type))
	}
}

func validateString(name string, value interface{}) (string, error) {
	str, ok := value.(string)
	if !ok {
		return "", newValidationError(name, fmt.Sprintf("expected a string, got %T", value))
	}
	return quoteSQLString(str), nil
}

func validateNumber(name string, value interface{}) (string, error) {
	num, err := toFloat(value)
	if err != nil {
		return "", newValidationError(name, fmt.Sprintf("expected a number, got %T", value))
	}
	return strconv.FormatFloat(num, 'f', -1, 64), nil
}

func validateBoolean(name string, value interface{}) (string, error) {
	b, ok := value.(bool)
	if !ok {
		return "", newValidationError(name, fmt.Sprintf("expected a boolean, got %T", value))
	}
	if b {
		return "TRUE", nil
	}
	return "FALSE", nil
}

func validateStringList(name string, value interface{}) (string, error) {
	items, err := toSlice(value)
	if err != nil {
		return "", newValidationError(name, fmt.Sprintf("expected a list, got %T", value))
	}
	if len(items) == 0 {
		return "", newValidationError(name, "list must not be empty")
	}

	encoded := make([]string, 0, len(items))
	for _, item := range items {
		str, ok := item.(string)
		if !ok {
			return "", newValidationError(name, fmt.Sprintf("expected list of strings, got element of type %T", item))
		}
		encoded = append(encoded, quoteSQLString(str))
	}
	return "(" + strings.Join(encoded, ", ") + ")", nil
}

func validateNumberList(name string, value interface{}) (string, error) {
	items, err := toSlice(value)
	if err != nil {
		return "", newValidationError(name, fmt.Sprintf("expected a list, got %T", value))
	}
	if len(items) == 0 {
		return "", newValidationError(name, "list must not be empty")
	}

	encoded := make([]string, 0, len(items))
	for _, item := range items {
		num, err := toFloat(item)
		if err != nil {
			return "", newValidationError(name, fmt.Sprintf("expected list of numbers, got element of type %T", item))
		}
		encoded = append(encoded, strconv.FormatFloat(num, 'f', -1, 64))
	}
	return "(" + strings.Join(encoded, ", ") + ")", nil
}

func validateDate(name string, value interface{}) (string, error) {
	str, ok := value.(string)
	if !ok {
		return "", newValidationError(name, fmt.Sprintf("expected a date string, got %T", value))
	}
	if _, err := time.Parse("2006-01-02", str); err != nil {
		return "", newValidationError(name, "expected date in YYYY-MM-DD format")
	}
	return quoteSQLString(str), nil
}

// quoteSQLString encodes a string as a single-quoted SQL literal.
func quoteSQLString(s string) string {
	return "'" + strings.ReplaceAll(s, "'", "''") + "'"
}

// toFloat coerces JSON-decoded numeric representations to float64.
func toFloat(value interface{}) (float64, error) {
	switch v := value.(type) {
	case float64:
		return v, nil
	case float32:
		return float64(v), nil
	case int:
		return float64(v), nil
	case int64:
		return float64(v), nil
	default:
		return 0, fmt.Errorf("not a number: %T", value)
	}
}

// toSlice normalizes JSON-decoded list representations to []interface{}.
func toSlice(value interface{}) ([]interface{}, error) {
	switch v := value.(type) {
	case []interface{}:
		return v, nil
	case []string:
		items := make([]interface{}, len(v))
		for i, s := range v {
			items[i] = s
		}
		return items, nil
	default:
		return nil, fmt.Errorf("not a list: %T", value)
	}
}
