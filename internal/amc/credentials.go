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

package amc

import (
	"context"
	"errors"

	"github.com/recomlabs/amp/internal/system/config"
)

// CredentialProviderInterface supplies Amazon Advertising access tokens for AMC API calls.
// Token acquisition and refresh happen outside this module.
type CredentialProviderInterface interface {
	// GetValidToken returns a non-expired access token for the given user.
	GetValidToken(ctx context.Context, userID string) (string, error)
	// IsExpired reports whether the given token is expired.
	IsExpired(token string) bool
}

// StaticCredentialProvider returns the token configured in the deployment file.
// It is intended for development and testing against sandbox instances.
type StaticCredentialProvider struct{}

// NewStaticCredentialProvider creates a new StaticCredentialProvider.
func NewStaticCredentialProvider() CredentialProviderInterface {
	return &StaticCredentialProvider{}
}

// GetValidToken returns the statically configured token.
func (p *StaticCredentialProvider) GetValidToken(ctx context.Context, userID string) (string, error) {
	token := config.GetAMPRuntime().Config.AMC.StaticToken
	if token == "" {
		return "", errors.New("no static token configured for user " + userID)
	}
	return token, nil
}

// IsExpired always reports false as static tokens carry no expiry metadata.
func (p *StaticCredentialProvider) IsExpired(token string) bool {
	return false
}
