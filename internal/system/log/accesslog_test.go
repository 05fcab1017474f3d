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

package log

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

type AccessLogTestSuite struct {
	suite.Suite
}

func TestAccessLogSuite(t *testing.T) {
	suite.Run(t, new(AccessLogTestSuite))
}

func (suite *AccessLogTestSuite) TestAccessLogHandler() {
	core, observed := observer.New(zapcore.InfoLevel)
	testLogger := &Logger{internal: zap.New(core), level: zapcore.InfoLevel}

	inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, err := w.Write([]byte("not found"))
		assert.NoError(suite.T(), err)
	})

	handler := AccessLogHandler(testLogger, inner)

	req := httptest.NewRequest(http.MethodGet, "/compositions/missing", nil)
	req.RemoteAddr = "192.0.2.10:52100"
	rr := httptest.NewRecorder()

	handler.ServeHTTP(rr, req)

	assert.Equal(suite.T(), http.StatusNotFound, rr.Code)
	assert.Equal(suite.T(), "not found", rr.Body.String())

	entries := observed.All()
	assert.Len(suite.T(), entries, 1)

	fields := entries[0].ContextMap()
	assert.Equal(suite.T(), "192.0.2.10", fields["remoteHost"])
	assert.Equal(suite.T(), http.MethodGet, fields["method"])
	assert.Equal(suite.T(), "/compositions/missing", fields["uri"])
	assert.Equal(suite.T(), int64(http.StatusNotFound), fields["status"])
	assert.Equal(suite.T(), int64(len("not found")), fields["responseBytes"])
}

func (suite *AccessLogTestSuite) TestAccessRecorder() {
	rec := httptest.NewRecorder()
	recorder := &accessRecorder{ResponseWriter: rec, status: http.StatusOK}

	recorder.WriteHeader(http.StatusCreated)
	assert.Equal(suite.T(), http.StatusCreated, recorder.status)

	n, err := recorder.Write([]byte("created"))
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), 7, n)

	n, err = recorder.Write([]byte(" ok"))
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), 3, n)
	assert.Equal(suite.T(), 10, recorder.bytes)

	assert.Equal(suite.T(), "created ok", rec.Body.String())
}
