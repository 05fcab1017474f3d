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

	"github.com/recomlabs/amp/internal/schedule/handler"
	"github.com/recomlabs/amp/internal/system/middleware"
)

// ScheduleService defines the service for handling schedule-related requests.
type ScheduleService struct {
	scheduleHandler *handler.ScheduleHandler
}

// NewScheduleService creates a new instance of ScheduleService.
func NewScheduleService(mux *http.ServeMux) ServiceInterface {
	instance := &ScheduleService{
		scheduleHandler: handler.NewScheduleHandler(),
	}
	instance.RegisterRoutes(mux)

	return instance
}

// RegisterRoutes registers the routes for the ScheduleService.
func (s *ScheduleService) RegisterRoutes(mux *http.ServeMux) {
	opts1 := middleware.CORSOptions{
		AllowedMethods:   "GET, POST",
		AllowedHeaders:   "Content-Type, Authorization",
		AllowCredentials: true,
	}
	mux.HandleFunc(middleware.WithCORS("POST /schedules",
		s.scheduleHandler.HandleSchedulePostRequest, opts1))
	mux.HandleFunc(middleware.WithCORS("GET /schedules",
		s.scheduleHandler.HandleScheduleListRequest, opts1))
	mux.HandleFunc(middleware.WithCORS("OPTIONS /schedules",
		func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNoContent)
		}, opts1))

	opts2 := middleware.CORSOptions{
		AllowedMethods:   "GET, PUT, DELETE",
		AllowedHeaders:   "Content-Type, Authorization",
		AllowCredentials: true,
	}
	mux.HandleFunc(middleware.WithCORS("GET /schedules/{id}",
		s.scheduleHandler.HandleScheduleGetRequest, opts2))
	mux.HandleFunc(middleware.WithCORS("PUT /schedules/{id}",
		s.scheduleHandler.HandleSchedulePutRequest, opts2))
	mux.HandleFunc(middleware.WithCORS("DELETE /schedules/{id}",
		s.scheduleHandler.HandleScheduleDeleteRequest, opts2))
	mux.HandleFunc(middleware.WithCORS("OPTIONS /schedules/",
		func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNoContent)
		}, opts2))
}
