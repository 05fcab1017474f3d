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

// CompositionService defines the service for handling flow composition requests.
type CompositionService struct {
	compositionHandler *handler.CompositionHandler
}

// NewCompositionService creates a new instance of CompositionService.
func NewCompositionService(mux *http.ServeMux) ServiceInterface {
	instance := &CompositionService{
		compositionHandler: handler.NewCompositionHandler(),
	}
	instance.RegisterRoutes(mux)

	return instance
}

// RegisterRoutes registers the routes for the CompositionService.
func (s *CompositionService) RegisterRoutes(mux *http.ServeMux) {
	opts1 := middleware.CORSOptions{
		AllowedMethods:   "GET, POST",
		AllowedHeaders:   "Content-Type, Authorization",
		AllowCredentials: true,
	}
	mux.HandleFunc(middleware.WithCORS("POST /compositions",
		s.compositionHandler.HandleCompositionPostRequest, opts1))
	mux.HandleFunc(middleware.WithCORS("GET /compositions",
		s.compositionHandler.HandleCompositionListRequest, opts1))
	mux.HandleFunc(middleware.WithCORS("OPTIONS /compositions",
		func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNoContent)
		}, opts1))

	opts2 := middleware.CORSOptions{
		AllowedMethods:   "GET, POST, PUT, DELETE",
		AllowedHeaders:   "Content-Type, Authorization",
		AllowCredentials: true,
	}
	mux.HandleFunc(middleware.WithCORS("GET /compositions/{id}",
		s.compositionHandler.HandleCompositionGetRequest, opts2))
	mux.HandleFunc(middleware.WithCORS("PUT /compositions/{id}",
		s.compositionHandler.HandleCompositionPutRequest, opts2))
	mux.HandleFunc(middleware.WithCORS("DELETE /compositions/{id}",
		s.compositionHandler.HandleCompositionDeleteRequest, opts2))

	mux.HandleFunc(middleware.WithCORS("POST /compositions/{id}/nodes",
		s.compositionHandler.HandleNodePostRequest, opts2))
	mux.HandleFunc(middleware.WithCORS("PUT /compositions/{id}/nodes/{nodeId}",
		s.compositionHandler.HandleNodePutRequest, opts2))
	mux.HandleFunc(middleware.WithCORS("DELETE /compositions/{id}/nodes/{nodeId}",
		s.compositionHandler.HandleNodeDeleteRequest, opts2))

	mux.HandleFunc(middleware.WithCORS("POST /compositions/{id}/connections",
		s.compositionHandler.HandleConnectionPostRequest, opts2))
	mux.HandleFunc(middleware.WithCORS("DELETE /compositions/{id}/connections/{connectionId}",
		s.compositionHandler.HandleConnectionDeleteRequest, opts2))

	mux.HandleFunc(middleware.WithCORS("OPTIONS /compositions/",
		func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNoContent)
		}, opts2))
}
