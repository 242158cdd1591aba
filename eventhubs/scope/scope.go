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

// Package scope provisions ephemeral Event Hubs resources for integration
// tests and guarantees their best-effort release afterwards. Test code asks a
// Manager for a hub and gets one back without having to know whether it was
// freshly created or bound to a pre-existing hub named by the environment.
package scope

import (
	"context"
	"sync/atomic"

	"github.com/pkg/errors"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/vh-vahan/eventhubs-scope/eventhubs/cloud"
	"github.com/vh-vahan/eventhubs-scope/eventhubs/config"
)

// Manager acquires and releases Event Hubs test resources through a
// management client set. One Manager is shared per test session; it holds no
// per-scope state and is safe for concurrent use.
type Manager struct {
	cfg       *config.Config
	client    cloud.ClientSet
	logger    *zap.Logger
	namespace string
}

// NewManager builds a Manager on an existing client set. When the
// configuration carries a namespace connection string, the namespace name is
// resolved from it; otherwise BindNamespace must be called with a provisioned
// namespace before the first AcquireHub.
func NewManager(cfg *config.Config, client cloud.ClientSet, logger *zap.Logger) (*Manager, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	m := &Manager{cfg: cfg, client: client, logger: logger}
	if cfg.NamespaceConnection != "" {
		handle, err := ParseNamespaceConnection(cfg.NamespaceConnection)
		if err != nil {
			return nil, err
		}
		m.namespace = handle.Name
	}
	return m, nil
}

// NewManagerFromConfig wires the full management stack (token provider,
// retrying transport, client set) from the configuration and returns a
// Manager on top of it.
func NewManagerFromConfig(cfg *config.Config, logger *zap.Logger) (*Manager, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	endpoint, err := cloud.EndpointForCloud(cfg.Cloud)
	if err != nil {
		return nil, err
	}
	tokens, err := cloud.NewClientCredentialsProvider(endpoint, cfg.TenantID, cfg.ClientID, cfg.ClientSecret)
	if err != nil {
		return nil, err
	}
	client, err := cloud.NewManagementClientSet(cloud.NewHTTPClient(tokens, logger), endpoint, cfg.SubscriptionID)
	if err != nil {
		return nil, err
	}
	return NewManager(cfg, client, logger)
}

// BindNamespace attaches the namespace subsequent AcquireHub calls operate
// in. Called once by the session orchestrator, before any scope is acquired.
func (m *Manager) BindNamespace(handle *NamespaceHandle) {
	m.namespace = handle.Name
}

// Namespace returns the name of the namespace the Manager operates in.
func (m *Manager) Namespace() string {
	return m.namespace
}

// HubScope is a lifecycle-managed handle to a single event hub. Close must be
// called exactly once per scope, normally via t.Cleanup or defer.
type HubScope struct {
	name           string
	wasCreated     bool
	consumerGroups []string
	disposed       atomic.Bool
	mgr            *Manager
}

// Name returns the hub the scope manages.
func (s *HubScope) Name() string { return s.name }

// WasCreated reports whether the scope provisioned the hub itself, as opposed
// to binding to a pre-existing one named by the environment.
func (s *HubScope) WasCreated() bool { return s.wasCreated }

// ConsumerGroups returns the consumer group names belonging to the scope, in
// creation order for provisioned hubs and listing order for bound ones.
func (s *HubScope) ConsumerGroups() []string { return s.consumerGroups }

// AcquireHub yields a ready-to-use hub with the requested consumer groups.
//
// When the environment names a pre-existing hub, the scope binds to it: the
// hub's actual consumer groups are enumerated and partitionCount and
// consumerGroups are ignored, since the existing configuration wins.
// Otherwise a hub with a unique generated name is created, followed by every
// requested consumer group; the group creations run concurrently and
// AcquireHub returns only once all of them have completed. Any failure aborts
// the whole call; no partial scope is returned and nothing is rolled back.
//
// callerTag makes generated hub names traceable to their origin test and is
// truncated to 15 characters.
func (m *Manager) AcquireHub(ctx context.Context, partitionCount int, consumerGroups []string, callerTag string) (*HubScope, error) {
	if m.namespace == "" {
		return nil, errors.New("no namespace bound; set the namespace connection string or call BindNamespace")
	}

	if m.cfg.HubOverride != "" {
		groups, err := m.client.ListConsumerGroups(ctx, m.cfg.ResourceGroup, m.namespace, m.cfg.HubOverride)
		if err != nil {
			return nil, errors.Wrapf(err, "unable to list consumer groups of hub %q", m.cfg.HubOverride)
		}
		names := make([]string, 0, len(groups))
		for _, g := range groups {
			names = append(names, g.Name)
		}
		return &HubScope{name: m.cfg.HubOverride, wasCreated: false, consumerGroups: names, mgr: m}, nil
	}

	if partitionCount <= 0 {
		return nil, errors.Errorf("partition count must be positive, got %d", partitionCount)
	}

	name := generateHubName(callerTag)
	spec := cloud.Hub{
		Properties: cloud.HubProperties{
			PartitionCount:         int64(partitionCount),
			MessageRetentionInDays: 1,
		},
	}
	if _, err := m.client.CreateHub(ctx, m.cfg.ResourceGroup, m.namespace, name, spec); err != nil {
		return nil, errors.Wrapf(err, "unable to create event hub %q", name)
	}

	eg, egCtx := errgroup.WithContext(ctx)
	for _, group := range consumerGroups {
		group := group
		eg.Go(func() error {
			if err := m.client.CreateConsumerGroup(egCtx, m.cfg.ResourceGroup, m.namespace, name, group); err != nil {
				return errors.Wrapf(err, "unable to create consumer group %q", group)
			}
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	groups := make([]string, len(consumerGroups))
	copy(groups, consumerGroups)
	return &HubScope{name: name, wasCreated: true, consumerGroups: groups, mgr: m}, nil
}

// Close releases the scope. It is best-effort and non-propagating: delete
// failures are logged and absorbed, never surfaced to the test, because the
// namespace-level teardown at the end of the run reclaims anything left
// behind. Bound scopes (WasCreated false) issue no network call. Calling
// Close again is a no-op; the delete goes on the wire at most once.
func (s *HubScope) Close(ctx context.Context) {
	if !s.disposed.CompareAndSwap(false, true) {
		return
	}
	if !s.wasCreated {
		return
	}
	if err := s.mgr.client.DeleteHub(ctx, s.mgr.cfg.ResourceGroup, s.mgr.namespace, s.name); err != nil {
		s.mgr.logger.Warn("unable to delete event hub, leaving it for namespace teardown",
			zap.String("hub", s.name),
			zap.String("namespace", s.mgr.namespace),
			zap.Error(err))
	}
}
