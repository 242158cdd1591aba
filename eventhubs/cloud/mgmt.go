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

package cloud

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

const apiVersion = "2021-11-01"

// ClientSet is the subset of the Microsoft.EventHub management surface the
// scope tooling depends on. *ManagementClientSet is the wire implementation;
// tests substitute a mock.
type ClientSet interface {
	CreateNamespace(ctx context.Context, resourceGroup, name string, spec Namespace) (*Namespace, error)
	GetNamespace(ctx context.Context, resourceGroup, name string) (*Namespace, error)
	DeleteNamespace(ctx context.Context, resourceGroup, name string) error
	ListNamespaces(ctx context.Context, resourceGroup string) ([]Namespace, error)
	ListNamespaceKeys(ctx context.Context, resourceGroup, namespace, ruleName string) (*AccessKeys, error)

	CreateHub(ctx context.Context, resourceGroup, namespace, name string, spec Hub) (*Hub, error)
	DeleteHub(ctx context.Context, resourceGroup, namespace, name string) error
	ListHubs(ctx context.Context, resourceGroup, namespace string) ([]Hub, error)

	CreateConsumerGroup(ctx context.Context, resourceGroup, namespace, hub, name string) error
	ListConsumerGroups(ctx context.Context, resourceGroup, namespace, hub string) ([]ConsumerGroup, error)
}

var _ ClientSet = (*ManagementClientSet)(nil)

// ManagementClientSet talks to the Event Hubs resource provider of a single
// subscription over the ARM REST API.
type ManagementClientSet struct {
	httpClient     *http.Client
	baseURL        string
	subscriptionID string
}

// NewManagementClientSet uses the passed http.Client (see NewHTTPClient) to
// create a management client set scoped to one subscription.
func NewManagementClientSet(httpClient *http.Client, endpoint *Endpoint, subscriptionID string) (*ManagementClientSet, error) {
	if subscriptionID == "" {
		return nil, fmt.Errorf("subscription_id is not set")
	}
	return &ManagementClientSet{
		httpClient:     httpClient,
		baseURL:        endpoint.ResourceManagerURL,
		subscriptionID: subscriptionID,
	}, nil
}

// APIError is a non-2xx answer from ARM, carrying the service-assigned error
// code alongside the HTTP status.
type APIError struct {
	StatusCode int
	Code       string
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("management request failed: %v %v: %s: %s", e.StatusCode, http.StatusText(e.StatusCode), e.Code, e.Message)
}

type armErrorEnvelope struct {
	Error struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

func (c *ManagementClientSet) namespacePath(resourceGroup, name string) string {
	return fmt.Sprintf("/subscriptions/%s/resourceGroups/%s/providers/Microsoft.EventHub/namespaces/%s",
		url.PathEscape(c.subscriptionID), url.PathEscape(resourceGroup), url.PathEscape(name))
}

// do issues a single management request. 'path' is either an ARM resource
// path or an absolute URL (paged listings hand back absolute nextLinks that
// already carry a query string).
func (c *ManagementClientSet) do(ctx context.Context, method, path string, body, out any) error {
	target := path
	if !strings.Contains(target, "://") {
		target = fmt.Sprintf("%s%s?api-version=%s", c.baseURL, path, apiVersion)
	}
	var reader io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return errors.Wrap(err, "unable to encode request body")
		}
		reader = bytes.NewReader(buf)
	}
	req, err := http.NewRequestWithContext(ctx, method, target, reader)
	if err != nil {
		return errors.Wrapf(err, "unable to issue request to %v", target)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-ms-client-request-id", uuid.NewString())

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return errors.Wrapf(err, "request to %v failed", target)
	}
	defer resp.Body.Close()

	if resp.StatusCode/100 != 2 {
		apiErr := &APIError{StatusCode: resp.StatusCode}
		envelope := armErrorEnvelope{}
		if decodeErr := json.NewDecoder(resp.Body).Decode(&envelope); decodeErr == nil {
			apiErr.Code = envelope.Error.Code
			apiErr.Message = envelope.Error.Message
		}
		return apiErr
	}
	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return errors.Wrapf(err, "error decoding response from %v", target)
	}
	return nil
}

// CreateNamespace creates or updates the namespace with the given name. The
// call returns as soon as ARM accepts it; provisioning completes
// asynchronously and is observable through GetNamespace.
func (c *ManagementClientSet) CreateNamespace(ctx context.Context, resourceGroup, name string, spec Namespace) (*Namespace, error) {
	out := Namespace{}
	if err := c.do(ctx, http.MethodPut, c.namespacePath(resourceGroup, name), spec, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetNamespace fetches the namespace with the given name.
func (c *ManagementClientSet) GetNamespace(ctx context.Context, resourceGroup, name string) (*Namespace, error) {
	out := Namespace{}
	if err := c.do(ctx, http.MethodGet, c.namespacePath(resourceGroup, name), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteNamespace deletes the namespace and everything under it.
func (c *ManagementClientSet) DeleteNamespace(ctx context.Context, resourceGroup, name string) error {
	return c.do(ctx, http.MethodDelete, c.namespacePath(resourceGroup, name), nil, nil)
}

// ListNamespaces lists every namespace of the resource group, following
// paged responses.
func (c *ManagementClientSet) ListNamespaces(ctx context.Context, resourceGroup string) ([]Namespace, error) {
	path := fmt.Sprintf("/subscriptions/%s/resourceGroups/%s/providers/Microsoft.EventHub/namespaces",
		url.PathEscape(c.subscriptionID), url.PathEscape(resourceGroup))
	var all []Namespace
	for path != "" {
		page := namespaceList{}
		if err := c.do(ctx, http.MethodGet, path, nil, &page); err != nil {
			return nil, err
		}
		all = append(all, page.Value...)
		path = page.NextLink
	}
	return all, nil
}

// ListNamespaceKeys fetches the access keys of the named authorization rule.
func (c *ManagementClientSet) ListNamespaceKeys(ctx context.Context, resourceGroup, namespace, ruleName string) (*AccessKeys, error) {
	path := fmt.Sprintf("%s/authorizationRules/%s/listKeys", c.namespacePath(resourceGroup, namespace), url.PathEscape(ruleName))
	out := AccessKeys{}
	if err := c.do(ctx, http.MethodPost, path, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CreateHub creates or updates an event hub inside the namespace.
func (c *ManagementClientSet) CreateHub(ctx context.Context, resourceGroup, namespace, name string, spec Hub) (*Hub, error) {
	path := fmt.Sprintf("%s/eventhubs/%s", c.namespacePath(resourceGroup, namespace), url.PathEscape(name))
	out := Hub{}
	if err := c.do(ctx, http.MethodPut, path, spec, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteHub deletes the hub; the service removes its consumer groups with it.
func (c *ManagementClientSet) DeleteHub(ctx context.Context, resourceGroup, namespace, name string) error {
	path := fmt.Sprintf("%s/eventhubs/%s", c.namespacePath(resourceGroup, namespace), url.PathEscape(name))
	return c.do(ctx, http.MethodDelete, path, nil, nil)
}

// ListHubs lists every hub of the namespace, following paged responses.
func (c *ManagementClientSet) ListHubs(ctx context.Context, resourceGroup, namespace string) ([]Hub, error) {
	path := fmt.Sprintf("%s/eventhubs", c.namespacePath(resourceGroup, namespace))
	var all []Hub
	for path != "" {
		page := hubList{}
		if err := c.do(ctx, http.MethodGet, path, nil, &page); err != nil {
			return nil, err
		}
		all = append(all, page.Value...)
		path = page.NextLink
	}
	return all, nil
}

// CreateConsumerGroup creates or updates a consumer group under the hub.
// Distinct groups of the same hub may be created concurrently.
func (c *ManagementClientSet) CreateConsumerGroup(ctx context.Context, resourceGroup, namespace, hub, name string) error {
	path := fmt.Sprintf("%s/eventhubs/%s/consumergroups/%s", c.namespacePath(resourceGroup, namespace), url.PathEscape(hub), url.PathEscape(name))
	return c.do(ctx, http.MethodPut, path, ConsumerGroup{Properties: map[string]any{}}, nil)
}

// ListConsumerGroups lists the consumer groups of a hub, following paged
// responses.
func (c *ManagementClientSet) ListConsumerGroups(ctx context.Context, resourceGroup, namespace, hub string) ([]ConsumerGroup, error) {
	path := fmt.Sprintf("%s/eventhubs/%s/consumergroups", c.namespacePath(resourceGroup, namespace), url.PathEscape(hub))
	var all []ConsumerGroup
	for path != "" {
		page := consumerGroupList{}
		if err := c.do(ctx, http.MethodGet, path, nil, &page); err != nil {
			return nil, err
		}
		all = append(all, page.Value...)
		path = page.NextLink
	}
	return all, nil
}
