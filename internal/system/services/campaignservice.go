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

	"github.com/recomlabs/amp/internal/campaign/handler"
	"github.com/recomlabs/amp/internal/system/middleware"
)

// CampaignService defines the service for handling campaign-related requests.
type CampaignService struct {
	campaignHandler *handler.CampaignHandler
}

// NewCampaignService creates a new instance of CampaignService.
func NewCampaignService(mux *http.ServeMux) ServiceInterface {
	instance := &CampaignService{
		campaignHandler: handler.NewCampaignHandler(),
	}
	instance.RegisterRoutes(mux)

	return instance
}

// RegisterRoutes registers the routes for the CampaignService.
func (s *CampaignService) RegisterRoutes(mux *http.ServeMux) {
	opts1 := middleware.CORSOptions{
		AllowedMethods:   "GET, POST",
		AllowedHeaders:   "Content-Type, Authorization",
		AllowCredentials: true,
	}
	mux.HandleFunc(middleware.WithCORS("POST /campaigns",
		s.campaignHandler.HandleCampaignPostRequest, opts1))
	mux.HandleFunc(middleware.WithCORS("GET /campaigns",
		s.campaignHandler.HandleCampaignListRequest, opts1))
	mux.HandleFunc(middleware.WithCORS("OPTIONS /campaigns",
		func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNoContent)
		}, opts1))

	opts2 := middleware.CORSOptions{
		AllowedMethods:   "GET, PUT, DELETE",
		AllowedHeaders:   "Content-Type, Authorization",
		AllowCredentials: true,
	}
	mux.HandleFunc(middleware.WithCORS("GET /campaigns/{id}",
		s.campaignHandler.HandleCampaignGetRequest, opts2))
	mux.HandleFunc(middleware.WithCORS("PUT /campaigns/{id}",
		s.campaignHandler.HandleCampaignPutRequest, opts2))
	mux.HandleFunc(middleware.WithCORS("DELETE /campaigns/{id}",
		s.campaignHandler.HandleCampaignDeleteRequest, opts2))
	mux.HandleFunc(middleware.WithCORS("OPTIONS /campaigns/",
		func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNoContent)
		}, opts2))
}
