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

// Package amc provides a thin client for the Amazon Marketing Cloud REST API.
package amc

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/recomlabs/amp/internal/system/config"
	serverconst "github.com/recomlabs/amp/internal/system/constants"
	syshttp "github.com/recomlabs/amp/internal/system/http"
	"github.com/recomlabs/amp/internal/system/log"
)

const loggerComponentName = "AMCClient"

// ClientInterface defines the operations the AMC API exposes to this backend.
type ClientInterface interface {
	// SubmitQuery submits an ad-hoc SQL query for execution against an AMC instance.
	SubmitQuery(ctx context.Context, sql, instanceID, token string) (executionID, workflowID string, err error)
	// GetExecutionStatus retrieves the status of a previously submitted query execution.
	GetExecutionStatus(ctx context.Context, instanceID, executionID, token string) (string, error)
}

// Client is the default HTTP implementation of ClientInterface.
type Client struct {
	httpClient syshttp.HTTPClientInterface
}

// NewClient creates a new AMC API client using the configured request timeout.
func NewClient() ClientInterface {
	amcConfig := config.GetAMPRuntime().Config.AMC

	httpClient := syshttp.GetHTTPClient()
	if amcConfig.RequestTimeout > 0 {
		httpClient = syshttp.NewHTTPClientWithTimeout(time.Duration(amcConfig.RequestTimeout) * time.Second)
	}

	return &Client{
		httpClient: httpClient,
	}
}

// NewClientWithHTTPClient creates a new AMC API client with the given HTTP client.
func NewClientWithHTTPClient(httpClient syshttp.HTTPClientInterface) ClientInterface {
	return &Client{
		httpClient: httpClient,
	}
}

type submitQueryRequest struct {
	SQL string `json:"sqlQuery"`
}

type submitQueryResponse struct {
	ExecutionID string `json:"workflowExecutionId"`
	WorkflowID  string `json:"workflowId"`
}

type executionStatusResponse struct {
	Status string `json:"status"`
}

// SubmitQuery submits an ad-hoc SQL query for execution against an AMC instance.
func (c *Client) SubmitQuery(ctx context.Context, sql, instanceID, token string) (string, string, error) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentName))

	endpoint := fmt.Sprintf("%s/amc/reporting/%s/workflowExecutions",
		config.GetAMPRuntime().Config.AMC.BaseURL, instanceID)

	body, err := json.Marshal(submitQueryRequest{SQL: sql})
	if err != nil {
		return "", "", fmt.Errorf("failed to marshal query submission request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return "", "", fmt.Errorf("failed to create query submission request: %w", err)
	}
	c.setCommonHeaders(req, token)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", "", fmt.Errorf("failed to submit query to AMC: %w", err)
	}
	defer func() {
		if closeErr := resp.Body.Close(); closeErr != nil {
			logger.Error("Failed to close response body", log.Error(closeErr))
		}
	}()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusAccepted {
		respBody, _ := io.ReadAll(resp.Body)
		return "", "", fmt.Errorf("AMC query submission returned status %d: %s", resp.StatusCode, string(respBody))
	}

	var submitResp submitQueryResponse
	if err := json.NewDecoder(resp.Body).Decode(&submitResp); err != nil {
		return "", "", fmt.Errorf("failed to decode query submission response: %w", err)
	}

	logger.Debug("Submitted query to AMC", log.String("instanceID", instanceID),
		log.String("executionID", submitResp.ExecutionID))

	return submitResp.ExecutionID, submitResp.WorkflowID, nil
}

// GetExecutionStatus retrieves the status of a previously submitted query execution.
func (c *Client) GetExecutionStatus(ctx context.Context, instanceID, executionID, token string) (string, error) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentName))

	endpoint := fmt.Sprintf("%s/amc/reporting/%s/workflowExecutions/%s",
		config.GetAMPRuntime().Config.AMC.BaseURL, instanceID, executionID)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return "", fmt.Errorf("failed to create execution status request: %w", err)
	}
	c.setCommonHeaders(req, token)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to get execution status from AMC: %w", err)
	}
	defer func() {
		if closeErr := resp.Body.Close(); closeErr != nil {
			logger.Error("Failed to close response body", log.Error(closeErr))
		}
	}()

	if resp.StatusCode != http.StatusOK {
		respBody, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("AMC execution status returned status %d: %s", resp.StatusCode, string(respBody))
	}

	var statusResp executionStatusResponse
	if err := json.NewDecoder(resp.Body).Decode(&statusResp); err != nil {
		return "", fmt.Errorf("failed to decode execution status response: %w", err)
	}

	return statusResp.Status, nil
}

// setCommonHeaders sets the headers required on every AMC API request.
func (c *Client) setCommonHeaders(req *http.Request, token string) {
	amcConfig := config.GetAMPRuntime().Config.AMC

	req.Header.Set(serverconst.ContentTypeHeaderName, serverconst.ContentTypeJSON)
	req.Header.Set(serverconst.AcceptHeaderName, serverconst.ContentTypeJSON)
	req.Header.Set(serverconst.AuthorizationHeaderName, serverconst.TokenTypeBearer+" "+token)
	req.Header.Set(serverconst.AMCClientIDHeaderName, amcConfig.ClientID)
	if amcConfig.MarketplaceID != "" {
		req.Header.Set(serverconst.AMCMarketplaceIDHeaderName, amcConfig.MarketplaceID)
	}
}
