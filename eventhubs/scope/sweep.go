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
	"strings"
	"time"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/vh-vahan/eventhubs-scope/eventhubs/cloud"
)

// Sweeper reaps resources left behind by interrupted test runs: namespaces by
// name prefix and hubs by age. Individual delete failures are logged and do
// not stop the sweep.
type Sweeper struct {
	Client        cloud.ClientSet
	ResourceGroup string
	Logger        *zap.Logger
}

// SweepNamespaces deletes every namespace of the resource group whose name
// starts with prefix. Returns the number of namespaces deleted (or, with
// dryRun, the number that would have been).
func (s *Sweeper) SweepNamespaces(ctx context.Context, prefix string, dryRun bool) (int, error) {
	namespaces, err := s.Client.ListNamespaces(ctx, s.ResourceGroup)
	if err != nil {
		return 0, errors.Wrap(err, "unable to sweep namespaces")
	}
	swept := 0
	for _, ns := range namespaces {
		if !strings.HasPrefix(ns.Name, prefix) {
			continue
		}
		if dryRun {
			s.Logger.Info("would delete namespace", zap.String("namespace", ns.Name))
			swept++
			continue
		}
		if err := s.Client.DeleteNamespace(ctx, s.ResourceGroup, ns.Name); err != nil {
			s.Logger.Warn("unable to delete namespace", zap.String("namespace", ns.Name), zap.Error(err))
			continue
		}
		s.Logger.Info("deleted namespace", zap.String("namespace", ns.Name))
		swept++
	}
	return swept, nil
}

// SweepHubs deletes every hub of the namespace created longer than olderThan
// ago. Hubs without a creation timestamp are skipped.
func (s *Sweeper) SweepHubs(ctx context.Context, namespace string, olderThan time.Duration, dryRun bool) (int, error) {
	hubs, err := s.Client.ListHubs(ctx, s.ResourceGroup, namespace)
	if err != nil {
		return 0, errors.Wrapf(err, "unable to sweep hubs of namespace %q", namespace)
	}
	cutoff := time.Now().Add(-olderThan)
	swept := 0
	for _, hub := range hubs {
		if hub.Properties.CreatedAt == nil || hub.Properties.CreatedAt.After(cutoff) {
			continue
		}
		if dryRun {
			s.Logger.Info("would delete hub", zap.String("hub", hub.Name), zap.Time("created_at", *hub.Properties.CreatedAt))
			swept++
			continue
		}
		if err := s.Client.DeleteHub(ctx, s.ResourceGroup, namespace, hub.Name); err != nil {
			s.Logger.Warn("unable to delete hub", zap.String("hub", hub.Name), zap.Error(err))
			continue
		}
		s.Logger.Info("deleted hub", zap.String("hub", hub.Name), zap.Time("created_at", *hub.Properties.CreatedAt))
		swept++
	}
	return swept, nil
}
