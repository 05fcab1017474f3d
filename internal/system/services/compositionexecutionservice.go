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

package services

import (
	"net/http"

	"github.com/recomlabs/amp/internal/composition/handler"
	"github.com/recomlabs/amp/internal/system/middleware"
)

// CompositionExecutionService defines the service for running compositions and
// inspecting execution records.
type CompositionExecutionService struct {
	executionHandler *handler.ExecutionHandler
}

// NewCompositionExecutionService creates a new instance of CompositionExecutionService.
func NewCompositionExecutionService(mux *http.ServeMux) ServiceInterface {
	instance := &CompositionExecutionService{
		executionHandler: handler.NewExecutionHandler(),
	}
	instance.RegisterRoutes(mux)

	return instance
}

// RegisterRoutes registers the routes for the CompositionExecutionService.
func (s *CompositionExecutionService) RegisterRoutes(mux *http.ServeMux) {
	opts1 := middleware.CORSOptions{
		AllowedMethods:   "POST",
		AllowedHeaders:   "Content-Type, Authorization",
		AllowCredentials: true,
	}
	mux.HandleFunc(middleware.WithCORS("POST /compositions/{id}/execute",
		s.executionHandler.HandleExecutePostRequest, opts1))

	opts2 := middleware.CORSOptions{
		AllowedMethods:   "GET, POST",
		AllowedHeaders:   "Content-Type, Authorization",
		AllowCredentials: true,
	}
	mux.HandleFunc(middleware.WithCORS("GET /composition-executions/{id}",
		s.executionHandler.HandleExecutionGetRequest, opts2))
	mux.HandleFunc(middleware.WithCORS("POST /composition-executions/{id}/cancel",
		s.executionHandler.HandleExecutionCancelRequest, opts2))
	mux.HandleFunc(middleware.WithCORS("OPTIONS /composition-executions/",
		func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNoContent)
		}, opts2))
}
