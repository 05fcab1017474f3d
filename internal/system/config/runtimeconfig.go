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

package config

import "sync"

// AMPRuntime holds the runtime configuration for the AMP server.
type AMPRuntime struct {
	AMPHome string `yaml:"amp_home"`
	Config  Config `yaml:"config"`
}

var (
	runtimeConfig *AMPRuntime
	once          sync.Once
)

// InitializeAMPRuntime initializes the AMPRuntime configuration.
func InitializeAMPRuntime(ampHome string, config *Config) error {
	once.Do(func() {
		runtimeConfig = &AMPRuntime{
			AMPHome: ampHome,
			Config:  *config,
		}
	})

	return nil
}

// GetAMPRuntime returns the AMPRuntime configuration.
func GetAMPRuntime() *AMPRuntime {
	if runtimeConfig == nil {
		panic("AMPRuntime is not initialized")
	}
	return runtimeConfig
}

// ResetAMPRuntime resets the AMPRuntime.
// This should only be used in tests to reset the singleton state.
func ResetAMPRuntime() {
	runtimeConfig = nil
	once = sync.Once{}
}
