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

	"github.com/recomlabs/amp/internal/brand/handler"
	"github.com/recomlabs/amp/internal/system/middleware"
)

// BrandService defines the service for handling brand-related requests.
type BrandService struct {
	brandHandler *handler.BrandHandler
}

// NewBrandService creates a new instance of BrandService.
func NewBrandService(mux *http.ServeMux) ServiceInterface {
	instance := &BrandService{
		brandHandler: handler.NewBrandHandler(),
	}
	instance.RegisterRoutes(mux)

	return instance
}

// RegisterRoutes registers the routes for the BrandService.
func (s *BrandService) RegisterRoutes(mux *http.ServeMux) {
	opts1 := middleware.CORSOptions{
		AllowedMethods:   "GET, POST",
		AllowedHeaders:   "Content-Type, Authorization",
		AllowCredentials: true,
	}
	mux.HandleFunc(middleware.WithCORS("POST /brands",
		s.brandHandler.HandleBrandPostRequest, opts1))
	mux.HandleFunc(middleware.WithCORS("GET /brands",
		s.brandHandler.HandleBrandListRequest, opts1))
	mux.HandleFunc(middleware.WithCORS("OPTIONS /brands",
		func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNoContent)
		}, opts1))

	opts2 := middleware.CORSOptions{
		AllowedMethods:   "GET, PUT, DELETE",
		AllowedHeaders:   "Content-Type, Authorization",
		AllowCredentials: true,
	}
	mux.HandleFunc(middleware.WithCORS("GET /brands/{id}",
		s.brandHandler.HandleBrandGetRequest, opts2))
	mux.HandleFunc(middleware.WithCORS("PUT /brands/{id}",
		s.brandHandler.HandleBrandPutRequest, opts2))
	mux.HandleFunc(middleware.WithCORS("DELETE /brands/{id}",
		s.brandHandler.HandleBrandDeleteRequest, opts2))
	mux.HandleFunc(middleware.WithCORS("OPTIONS /brands/",
		func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNoContent)
		}, opts2))
}
