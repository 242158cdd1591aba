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

// Package config contains the settings the scope tooling reads from the
// environment of the test run.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/ini.v1"
)

// Environment variables read by FromEnv.
const (
	EnvTenantID       = "AZURE_TENANT_ID"
	EnvClientID       = "AZURE_CLIENT_ID"
	EnvClientSecret   = "AZURE_CLIENT_SECRET"
	EnvSubscriptionID = "AZURE_SUBSCRIPTION_ID"
	EnvCloud          = "AZURE_CLOUD"

	EnvResourceGroup       = "EVENTHUB_RESOURCE_GROUP"
	EnvLocation            = "EVENTHUB_LOCATION"
	EnvNamespaceConnection = "EVENTHUB_NAMESPACE_CONNECTION_STRING"
	EnvHubOverride         = "EVENTHUB_NAME_OVERRIDE"
	EnvSharedAccessKeyName = "EVENTHUB_SHARED_ACCESS_KEY_NAME"
	EnvProfile             = "EVENTHUB_TEST_PROFILE"
)

const defaultSharedAccessKeyName = "RootManageSharedAccessKey"

// Config is the set of external settings a test session runs under.
type Config struct {
	// Service principal used for management calls.
	TenantID     string
	ClientID     string
	ClientSecret string

	SubscriptionID string
	ResourceGroup  string
	Location       string

	// Cloud selects the endpoint set: "public", "china" or "government".
	// Empty means public.
	Cloud string

	// NamespaceConnection, when set, names a pre-provisioned namespace the
	// run binds to instead of creating one.
	NamespaceConnection string

	// HubOverride, when set, names a pre-existing hub every scope binds to
	// instead of provisioning its own.
	HubOverride string

	// SharedAccessKeyName is the authorization rule keys are fetched from.
	SharedAccessKeyName string
}

// FromEnv reads the configuration from the process environment, merging in an
// optional ini profile file first so explicit environment variables win.
func FromEnv() (*Config, error) {
	cfg := &Config{}
	if err := cfg.applyProfile(profilePath()); err != nil {
		return nil, err
	}
	apply := func(dst *string, key string) {
		if v := os.Getenv(key); v != "" {
			*dst = v
		}
	}
	apply(&cfg.TenantID, EnvTenantID)
	apply(&cfg.ClientID, EnvClientID)
	apply(&cfg.ClientSecret, EnvClientSecret)
	apply(&cfg.SubscriptionID, EnvSubscriptionID)
	apply(&cfg.Cloud, EnvCloud)
	apply(&cfg.ResourceGroup, EnvResourceGroup)
	apply(&cfg.Location, EnvLocation)
	apply(&cfg.NamespaceConnection, EnvNamespaceConnection)
	apply(&cfg.HubOverride, EnvHubOverride)
	apply(&cfg.SharedAccessKeyName, EnvSharedAccessKeyName)
	if cfg.SharedAccessKeyName == "" {
		cfg.SharedAccessKeyName = defaultSharedAccessKeyName
	}
	return cfg, nil
}

// profilePath returns the profile file to merge, or empty when none applies.
func profilePath() string {
	if p := os.Getenv(EnvProfile); p != "" {
		return p
	}
	candidates := []string{".eventhubs.ini"}
	if home := os.Getenv("HOME"); home != "" {
		candidates = append(candidates, filepath.Join(home, ".eventhubs", "config.ini"))
	}
	for _, p := range candidates {
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}
	return ""
}

func (c *Config) applyProfile(path string) error {
	if path == "" {
		return nil
	}
	file, err := ini.Load(path)
	if err != nil {
		return fmt.Errorf("unable to load profile %q: %v", path, err)
	}
	section := file.Section("eventhubs")
	read := func(dst *string, key string) {
		if section.HasKey(key) {
			*dst = section.Key(key).String()
		}
	}
	read(&c.TenantID, "tenant_id")
	read(&c.ClientID, "client_id")
	read(&c.ClientSecret, "client_secret")
	read(&c.SubscriptionID, "subscription_id")
	read(&c.Cloud, "cloud")
	read(&c.ResourceGroup, "resource_group")
	read(&c.Location, "location")
	read(&c.NamespaceConnection, "namespace_connection_string")
	read(&c.HubOverride, "hub_override")
	read(&c.SharedAccessKeyName, "shared_access_key_name")
	return nil
}

// Validate checks the settings every management call needs. The namespace
// connection string and hub override stay optional.
func (c *Config) Validate() error {
	required := []struct {
		value string
		env   string
	}{
		{c.TenantID, EnvTenantID},
		{c.ClientID, EnvClientID},
		{c.ClientSecret, EnvClientSecret},
		{c.SubscriptionID, EnvSubscriptionID},
		{c.ResourceGroup, EnvResourceGroup},
		{c.Location, EnvLocation},
	}
	for _, r := range required {
		if r.value == "" {
			return fmt.Errorf("%v is not set", r.env)
		}
	}
	return nil
}
