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

	"github.com/recomlabs/amp/internal/system/middleware"
	"github.com/recomlabs/amp/internal/template/handler"
)

// TemplateService defines the service for handling workflow template requests.
type TemplateService struct {
	templateHandler *handler.TemplateHandler
}

// NewTemplateService creates a new instance of TemplateService.
func NewTemplateService(mux *http.ServeMux) ServiceInterface {
	instance := &TemplateService{
		templateHandler: handler.NewTemplateHandler(),
	}
	instance.RegisterRoutes(mux)

	return instance
}

// RegisterRoutes registers the routes for the TemplateService.
func (s *TemplateService) RegisterRoutes(mux *http.ServeMux) {
	opts1 := middleware.CORSOptions{
		AllowedMethods:   "GET, POST",
		AllowedHeaders:   "Content-Type, Authorization",
		AllowCredentials: true,
	}
	mux.HandleFunc(middleware.WithCORS("POST /templates",
		s.templateHandler.HandleTemplatePostRequest, opts1))
	mux.HandleFunc(middleware.WithCORS("GET /templates",
		s.templateHandler.HandleTemplateListRequest, opts1))
	mux.HandleFunc(middleware.WithCORS("OPTIONS /templates",
		func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNoContent)
		}, opts1))

	opts2 := middleware.CORSOptions{
		AllowedMethods:   "GET, PUT, DELETE",
		AllowedHeaders:   "Content-Type, Authorization",
		AllowCredentials: true,
	}
	mux.HandleFunc(middleware.WithCORS("GET /templates/{id}",
		s.templateHandler.HandleTemplateGetRequest, opts2))
	mux.HandleFunc(middleware.WithCORS("PUT /templates/{id}",
		s.templateHandler.HandleTemplatePutRequest, opts2))
	mux.HandleFunc(middleware.WithCORS("DELETE /templates/{id}",
		s.templateHandler.HandleTemplateDeleteRequest, opts2))
	mux.HandleFunc(middleware.WithCORS("OPTIONS /templates/",
		func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNoContent)
		}, opts2))
}
