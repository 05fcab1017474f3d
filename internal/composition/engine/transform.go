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
	"fmt"
	"strconv"
	"strings"

	"github.com/recomlabs/amp/internal/system/log"
)

// Named transforms applied to values extracted from upstream node outputs.
const (
	TransformDirect   = "direct"
	TransformToArray  = "to_array"
	TransformToString = "to_string"
	TransformToNumber = "to_number"
	TransformToObject = "to_object"
	TransformFlatten  = "flatten"
	TransformDistinct = "distinct"
	TransformJoin     = "join"
)

// defaultJoinSeparator is used by the join transform when no separator is configured.
const defaultJoinSeparator = ","

// applyTransform applies the named transform to a single extracted value.
// An unrecognized transform name passes the value through unchanged and logs a
// warning: a cosmetic configuration mistake must not abort the whole pipeline.
func applyTransform(value interface{}, transform, separator string, logger *log.Logger) (interface{}, error) {
	switch transform {
	case "", TransformDirect:
		return value, nil
	case TransformToArray:
		return toArray(value), nil
	case TransformToString:
		return stringify(value), nil
	case TransformToNumber:
		num, err := coerceNumber(value)
		if err != nil {
			return nil, fmt.Errorf("to_number transform failed: %w", err)
		}
		return num, nil
	case TransformToObject:
		return toObject(value), nil
	case TransformFlatten:
		return flatten(value), nil
	case TransformDistinct:
		return distinct(value), nil
	case TransformJoin:
		if separator == "" {
			separator = defaultJoinSeparator
		}
		return join(value, separator), nil
	default:
		logger.Warn("Unrecognized transform, passing value through unchanged",
			log.String("transform", transform))
		return value, nil
	}
}

// toArray wraps non-list values in a singleton list and passes lists through.
func toArray(value interface{}) []interface{} {
	if list, ok := asList(value); ok {
		return list
	}
	return []interface{}{value}
}

// toObject wraps non-mapping values as {"value": v} and passes mappings through.
func toObject(value interface{}) interface{} {
	if _, ok := value.(map[string]interface{}); ok {
		return value
	}
	return map[string]interface{}{"value": value}
}

// flatten performs one level of list flattening. Non-list values flatten to a
// singleton list.
func flatten(value interface{}) []interface{} {
	list, ok := asList(value)
	if !ok {
		return []interface{}{value}
	}

	flattened := make([]interface{}, 0, len(list))
	for _, item := range list {
		if inner, ok := asList(item); ok {
			flattened = append(flattened, inner...)
		} else {
			flattened = append(flattened, item)
		}
	}
	return flattened
}

// distinct removes duplicate entries from a list. Entry equality is judged on
// the value's string form; result order follows first occurrence.
func distinct(value interface{}) []interface{} {
	list, ok := asList(value)
	if !ok {
		return []interface{}{value}
	}

	seen := make(map[string]bool, len(list))
	deduped := make([]interface{}, 0, len(list))
	for _, item := range list {
		key := stringify(item)
		if !seen[key] {
			seen[key] = true
			deduped = append(deduped, item)
		}
	}
	return deduped
}

// join concatenates a list into a single string using the given separator.
// Non-list values are returned as their string form.
func join(value interface{}, separator string) string {
	list, ok := asList(value)
	if !ok {
		return stringify(value)
	}

	parts := make([]string, 0, len(list))
	for _, item := range list {
		parts = append(parts, stringify(item))
	}
	return strings.Join(parts, separator)
}

// coerceNumber coerces a value to float64, failing when the value is not numeric
// and not a numeric string.
func coerceNumber(value interface{}) (float64, error) {
	switch v := value.(type) {
	case float64:
		return v, nil
	case float32:
		return float64(v), nil
	case int:
		return float64(v), nil
	case int64:
		return float64(v), nil
	case string:
		num, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return 0, fmt.Errorf("value %q is not coercible to a number", v)
		}
		return num, nil
	default:
		return 0, fmt.Errorf("value of type %T is not coercible to a number", value)
	}
}

// stringify renders a value in its canonical string form.
func stringify(value interface{}) string {
	switch v := value.(type) {
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(v), 'f', -1, 32)
	default:
		return fmt.Sprintf("%v", value)
	}
}

// asList normalizes list representations to []interface{}.
func asList(value interface{}) ([]interface{}, bool) {
	switch v := value.(type) {
	case []interface{}:
		return v, true
	case []string:
		list := make([]interface{}, len(v))
		for i, s := range v {
			list[i] = s
		}
		return list, true
	case []float64:
		list := make([]interface{}, len(v))
		for i, n := range v {
			list[i] = n
		}
		return list, true
	default:
		return nil, false
	}
}
