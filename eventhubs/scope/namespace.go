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

package scope

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/pkg/errors"

	"github.com/vh-vahan/eventhubs-scope/eventhubs/cloud"
	"github.com/vh-vahan/eventhubs-scope/eventhubs/utils"
)

// Namespaces provisioned for a run use a fixed Standard configuration with
// auto-inflate, matching what the live test suites expect.
const (
	namespaceSKUCapacity        = 12
	namespaceMaxThroughputUnits = 20

	namespaceProvisionTimeout      = 10 * time.Minute
	namespaceProvisionPollInterval = 15 * time.Second
)

// NamespaceHandle is a session-level handle to a namespace. It outlives the
// per-test HubScope instances created inside it. When WasCreated is true the
// session orchestrator owns the eventual DeprovisionNamespace call.
type NamespaceHandle struct {
	Name             string
	ConnectionString string
	WasCreated       bool
}

// ParseNamespaceConnection extracts the namespace name from an Event Hubs
// connection string, e.g. "Endpoint=sb://foo.servicebus.windows.net/;..."
// yields "foo". No network call is made; the returned handle has WasCreated
// false.
func ParseNamespaceConnection(connectionString string) (*NamespaceHandle, error) {
	for _, part := range strings.Split(connectionString, ";") {
		kv := strings.SplitN(strings.TrimSpace(part), "=", 2)
		if len(kv) != 2 || !strings.EqualFold(kv[0], "Endpoint") {
			continue
		}
		endpoint, err := url.Parse(kv[1])
		if err != nil {
			return nil, errors.Wrapf(err, "invalid Endpoint value %q in connection string", kv[1])
		}
		name, _, _ := strings.Cut(endpoint.Hostname(), ".")
		if name == "" {
			return nil, errors.Errorf("unable to determine a namespace name from endpoint %q", kv[1])
		}
		return &NamespaceHandle{Name: name, ConnectionString: connectionString, WasCreated: false}, nil
	}
	return nil, errors.New("connection string has no Endpoint entry")
}

// ProvisionNamespace creates a namespace for the test session and returns it
// together with the connection string of its default shared access key.
// ARM finishes namespace creation asynchronously, so the call polls until the
// provisioning state settles. Failures are fatal to the session and
// propagate.
func (m *Manager) ProvisionNamespace(ctx context.Context) (*NamespaceHandle, error) {
	name := generateNamespaceName()
	spec := cloud.Namespace{
		Location: m.cfg.Location,
		SKU: &cloud.SKU{
			Name:     "Standard",
			Tier:     "Standard",
			Capacity: namespaceSKUCapacity,
		},
		Tags: map[string]string{
			"source":     "eventhubs-scope",
			"created-at": time.Now().UTC().Format(time.RFC3339),
		},
		Properties: cloud.NamespaceProperties{
			IsAutoInflateEnabled:   true,
			MaximumThroughputUnits: namespaceMaxThroughputUnits,
		},
	}
	if _, err := m.client.CreateNamespace(ctx, m.cfg.ResourceGroup, name, spec); err != nil {
		return nil, errors.Wrapf(err, "unable to create namespace %q", name)
	}
	if err := m.waitForNamespaceReady(ctx, name); err != nil {
		return nil, err
	}
	keys, err := m.client.ListNamespaceKeys(ctx, m.cfg.ResourceGroup, name, m.cfg.SharedAccessKeyName)
	if err != nil {
		return nil, errors.Wrapf(err, "unable to list access keys of namespace %q", name)
	}
	return &NamespaceHandle{
		Name:             name,
		ConnectionString: keys.PrimaryConnectionString,
		WasCreated:       true,
	}, nil
}

func (m *Manager) waitForNamespaceReady(ctx context.Context, name string) error {
	return utils.Retry(ctx, namespaceProvisionTimeout, namespaceProvisionPollInterval, m.logger, func() *utils.RetryError {
		ns, err := m.client.GetNamespace(ctx, m.cfg.ResourceGroup, name)
		if err != nil {
			return utils.RetryableError(err)
		}
		switch state := ns.Properties.ProvisioningState; state {
		case cloud.ProvisioningSucceeded:
			return nil
		case cloud.ProvisioningFailed, cloud.ProvisioningCanceled:
			return utils.NonRetryableError(fmt.Errorf("namespace %q provisioning ended in state %q", name, state))
		default:
			return utils.RetryableError(fmt.Errorf("expected namespace %q to be ready but was in state %q", name, state))
		}
	})
}

// DeprovisionNamespace deletes the named namespace and everything inside it.
// Unlike HubScope.Close this propagates failures: it runs once at session end
// where there is no further safety net and a hard failure is actionable.
func (m *Manager) DeprovisionNamespace(ctx context.Context, name string) error {
	if err := m.client.DeleteNamespace(ctx, m.cfg.ResourceGroup, name); err != nil {
		return errors.Wrapf(err, "unable to delete namespace %q", name)
	}
	return nil
}
