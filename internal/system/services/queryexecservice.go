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

	"github.com/recomlabs/amp/internal/queryexec/handler"
	"github.com/recomlabs/amp/internal/system/middleware"
)

// QueryExecService defines the service for handling single query execution requests.
type QueryExecService struct {
	queryExecHandler *handler.QueryExecHandler
}

// NewQueryExecService creates a new instance of QueryExecService.
func NewQueryExecService(mux *http.ServeMux) ServiceInterface {
	instance := &QueryExecService{
		queryExecHandler: handler.NewQueryExecHandler(),
	}
	instance.RegisterRoutes(mux)

	return instance
}

// RegisterRoutes registers the routes for the QueryExecService.
func (s *QueryExecService) RegisterRoutes(mux *http.ServeMux) {
	opts1 := middleware.CORSOptions{
		AllowedMethods:   "POST",
		AllowedHeaders:   "Content-Type, Authorization",
		AllowCredentials: true,
	}
	mux.HandleFunc(middleware.WithCORS("POST /query-executions",
		s.queryExecHandler.HandleExecutePostRequest, opts1))
	mux.HandleFunc(middleware.WithCORS("OPTIONS /query-executions",
		func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNoContent)
		}, opts1))

	opts2 := middleware.CORSOptions{
		AllowedMethods:   "GET",
		AllowedHeaders:   "Content-Type, Authorization",
		AllowCredentials: true,
	}
	mux.HandleFunc(middleware.WithCORS("GET /query-executions/{id}",
		s.queryExecHandler.HandleExecutionStatusRequest, opts2))
	mux.HandleFunc(middleware.WithCORS("OPTIONS /query-executions/",
		func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNoContent)
		}, opts2))
}
