// Copyright 2024 The eventhubs-scope Authors
//
//
//    Licensed under the Apache License, Version 2.0 (the "License");
//    you may not use this file except in compliance with the License.
//    You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
//    Unless required by applicable law or agreed to in writing, software
//    distributed under the License is distributed on an "AS IS" BASIS,
//    WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
//    See the License for the specific language governing permissions and
//    limitations under the License.

// Package cloud provides the methods to authenticate against Azure Active
// Directory and talk to the Azure Resource Manager API for Event Hubs.
package cloud

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/hashicorp/go-cleanhttp"
	"github.com/hashicorp/go-retryablehttp"
	"go.uber.org/zap"
)

// Endpoint is a representation of the management surface of a single Azure
// cloud. It contains the resource manager URL, the authority used for token
// exchange and the resource (audience) tokens are requested for.
type Endpoint struct {
	ResourceManagerURL string // ARM base URL, no trailing slash.
	authorityURL       string // AAD authority for token exchange.
	resource           string // Audience the issued token is scoped to.
}

var endpoints = map[string]Endpoint{
	"public": {
		"https://management.azure.com",
		"https://login.microsoftonline.com",
		"https://management.azure.com/",
	},
	"china": {
		"https://management.chinacloudapi.cn",
		"https://login.chinacloudapi.cn",
		"https://management.chinacloudapi.cn/",
	},
	"government": {
		"https://management.usgovcloudapi.net",
		"https://login.microsoftonline.us",
		"https://management.usgovcloudapi.net/",
	},
}

// EndpointForCloud returns the Endpoint for a given cloud name, defaulting to
// the public cloud when the name is empty.
func EndpointForCloud(name string) (*Endpoint, error) {
	if name == "" {
		name = "public"
	}
	endpoint, found := endpoints[name]
	if !found {
		return nil, fmt.Errorf("unable to find requested cloud environment: %q", name)
	}
	return &endpoint, nil
}

// TokenProvider hands out management tokens. Implementations must be safe for
// concurrent use; tokens may be short lived, so callers fetch one per
// operation rather than caching across operations.
type TokenProvider interface {
	Token(ctx context.Context) (string, error)
}

type tokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   string `json:"expires_in"`
	Resource    string `json:"resource"`
}

// ClientCredentialsProvider requests tokens from AAD using the OAuth2 client
// credentials grant.
type ClientCredentialsProvider struct {
	endpoint     *Endpoint
	tenantID     string
	clientID     string
	clientSecret string
	httpClient   *http.Client
}

// NewClientCredentialsProvider validates the credential inputs and returns a
// provider bound to the given cloud endpoint.
func NewClientCredentialsProvider(endpoint *Endpoint, tenantID, clientID, clientSecret string) (*ClientCredentialsProvider, error) {
	if tenantID == "" {
		return nil, fmt.Errorf("tenant_id is not set")
	}
	if clientID == "" {
		return nil, fmt.Errorf("client_id is not set")
	}
	if clientSecret == "" {
		return nil, fmt.Errorf("client_secret is not set")
	}
	return &ClientCredentialsProvider{
		endpoint:     endpoint,
		tenantID:     tenantID,
		clientID:     clientID,
		clientSecret: clientSecret,
		httpClient:   cleanhttp.DefaultPooledClient(),
	}, nil
}

// Token performs the token exchange against the provider's AAD authority.
func (p *ClientCredentialsProvider) Token(ctx context.Context) (string, error) {
	authURL := fmt.Sprintf("%s/%s/oauth2/token", p.endpoint.authorityURL, p.tenantID)
	payload := url.Values{
		"grant_type":    {"client_credentials"},
		"client_id":     {p.clientID},
		"client_secret": {p.clientSecret},
		"resource":      {p.endpoint.resource},
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, authURL, strings.NewReader(payload.Encode()))
	if err != nil {
		return "", fmt.Errorf("unable to issue request to %v: %v", authURL, err)
	}
	req.Header.Add("content-type", "application/x-www-form-urlencoded")
	resp, err := p.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("request to %v failed: %v", authURL, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode/100 != 2 {
		resBody, err := io.ReadAll(resp.Body)
		if err != nil {
			return "", fmt.Errorf("request to %v failed: unable to read body", authURL)
		}
		return "", fmt.Errorf("request to %v failed: %v %v: %s", authURL, resp.StatusCode, http.StatusText(resp.StatusCode), resBody)
	}

	tokenContainer := tokenResponse{}
	if err := json.NewDecoder(resp.Body).Decode(&tokenContainer); err != nil {
		return "", fmt.Errorf("error decoding token response: %v", err)
	}
	if tokenContainer.AccessToken == "" {
		return "", fmt.Errorf("no access token found in response")
	}
	return tokenContainer.AccessToken, nil
}

// NewHTTPClient builds the http.Client used for management calls. Individual
// attempts go through the rate limiter and carry a bearer token fetched from
// 'tokens'; transient failures are retried with exponential backoff by
// go-retryablehttp, which also honors Retry-After on throttled responses.
func NewHTTPClient(tokens TokenProvider, logger *zap.Logger) *http.Client {
	rc := retryablehttp.NewClient()
	rc.Logger = nil
	rc.HTTPClient = &http.Client{
		Transport: &bearerTransport{
			next:   newRateLimiter(defaultRequestLimit, logger).transport(cleanhttp.DefaultPooledTransport()),
			tokens: tokens,
		},
	}
	rc.RequestLogHook = func(_ retryablehttp.Logger, req *http.Request, attempt int) {
		if attempt > 0 {
			logger.Debug("retrying management request",
				zap.String("method", req.Method),
				zap.String("url", req.URL.String()),
				zap.Int("attempt", attempt))
		}
	}
	return rc.StandardClient()
}

// bearerTransport injects a fresh bearer token into every attempt. Fetching
// per attempt keeps long retry loops from outliving a short-lived token.
type bearerTransport struct {
	next   http.RoundTripper
	tokens TokenProvider
}

func (t *bearerTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	token, err := t.tokens.Token(req.Context())
	if err != nil {
		return nil, fmt.Errorf("unable to acquire management token: %v", err)
	}
	clone := req.Clone(req.Context())
	clone.Header.Set("Authorization", fmt.Sprintf("Bearer %s", token))
	return t.next.RoundTrip(clone)
}
