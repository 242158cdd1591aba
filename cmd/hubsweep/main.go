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

// hubsweep reaps Event Hubs resources left behind by interrupted test runs.
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/vh-vahan/eventhubs-scope/eventhubs/cloud"
	"github.com/vh-vahan/eventhubs-scope/eventhubs/config"
	"github.com/vh-vahan/eventhubs-scope/eventhubs/scope"
)

var (
	dryRun    bool
	prefix    string
	namespace string
	olderThan time.Duration
)

func main() {
	logger, err := zap.NewProduction()
	if err != nil {
		fmt.Fprintf(os.Stderr, "unable to build logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync() //nolint:errcheck // best effort on exit

	root := &cobra.Command{
		Use:           "hubsweep",
		Short:         "Delete orphaned Event Hubs test resources",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().BoolVarP(&dryRun, "dry-run", "n", false, "report what would be deleted without deleting")

	namespacesCmd := &cobra.Command{
		Use:   "namespaces",
		Short: "Delete test namespaces matching a name prefix",
		RunE: func(cmd *cobra.Command, _ []string) error {
			sweeper, err := newSweeper(logger)
			if err != nil {
				return err
			}
			swept, err := sweeper.SweepNamespaces(cmd.Context(), prefix, dryRun)
			if err != nil {
				return err
			}
			logger.Info("namespace sweep complete", zap.Int("swept", swept), zap.Bool("dry_run", dryRun))
			return nil
		},
	}
	namespacesCmd.Flags().StringVar(&prefix, "prefix", "go-eventhubs-", "only namespaces whose name starts with this prefix are deleted")

	hubsCmd := &cobra.Command{
		Use:   "hubs",
		Short: "Delete stale hubs inside a namespace",
		RunE: func(cmd *cobra.Command, _ []string) error {
			sweeper, err := newSweeper(logger)
			if err != nil {
				return err
			}
			swept, err := sweeper.SweepHubs(cmd.Context(), namespace, olderThan, dryRun)
			if err != nil {
				return err
			}
			logger.Info("hub sweep complete", zap.Int("swept", swept), zap.Bool("dry_run", dryRun))
			return nil
		},
	}
	hubsCmd.Flags().StringVar(&namespace, "namespace", "", "namespace to sweep hubs in (defaults to the configured namespace)")
	hubsCmd.Flags().DurationVar(&olderThan, "older-than", 8*time.Hour, "only hubs created longer than this ago are deleted")

	root.AddCommand(namespacesCmd, hubsCmd)
	if err := root.Execute(); err != nil {
		logger.Error("sweep failed", zap.Error(err))
		os.Exit(1)
	}
}

func newSweeper(logger *zap.Logger) (*scope.Sweeper, error) {
	cfg, err := config.FromEnv()
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
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
	if namespace == "" && cfg.NamespaceConnection != "" {
		handle, err := scope.ParseNamespaceConnection(cfg.NamespaceConnection)
		if err != nil {
			return nil, err
		}
		namespace = handle.Name
	}
	return &scope.Sweeper{Client: client, ResourceGroup: cfg.ResourceGroup, Logger: logger}, nil
}
