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
	"net"
	"net/http"
	"time"
)

// AccessLogHandler wraps the server mux and emits one structured entry per
// request with the response status, body size, and elapsed time.
func AccessLogHandler(logger *Logger, next http.Handler) http.Handler {
	accessLogger := logger.With(String(LoggerKeyComponentName, "AccessLog"))

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		recorder := &accessRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(recorder, r)

		remoteHost, _, splitErr := net.SplitHostPort(r.RemoteAddr)
		if splitErr != nil {
			remoteHost = r.RemoteAddr
		}

		accessLogger.Info("Request handled",
			String("remoteHost", remoteHost),
			String("method", r.Method),
			String("uri", r.RequestURI),
			String("proto", r.Proto),
			Int("status", recorder.status),
			Int("responseBytes", recorder.bytes),
			Any("elapsedMs", time.Since(start).Milliseconds()),
		)
	})
}

// accessRecorder wraps http.ResponseWriter to capture the status and body size.
type accessRecorder struct {
	http.ResponseWriter
	status int
	bytes  int
}

// WriteHeader captures the status code and delegates to the wrapped writer.
func (rec *accessRecorder) WriteHeader(code int) {
	rec.status = code
	rec.ResponseWriter.WriteHeader(code)
}

// Write accumulates the body size and delegates to the wrapped writer.
func (rec *accessRecorder) Write(b []byte) (int, error) {
	written, err := rec.ResponseWriter.Write(b)
	rec.bytes += written
	return written, err
}
