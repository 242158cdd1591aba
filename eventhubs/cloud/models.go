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

import "time"

// Wire models for the Microsoft.EventHub resource provider, api-version
// 2021-11-01. Only the fields the scope tooling reads or writes are mapped.

// SKU describes the pricing tier and capacity of a namespace.
type SKU struct {
	Name     string `json:"name"`
	Tier     string `json:"tier,omitempty"`
	Capacity int32  `json:"capacity,omitempty"`
}

// Namespace is an Event Hubs namespace, the container for hubs.
type Namespace struct {
	ID         string              `json:"id,omitempty"`
	Name       string              `json:"name,omitempty"`
	Location   string              `json:"location"`
	SKU        *SKU                `json:"sku,omitempty"`
	Tags       map[string]string   `json:"tags,omitempty"`
	Properties NamespaceProperties `json:"properties"`
}

// NamespaceProperties carries the provisioning state and throughput settings
// of a namespace.
type NamespaceProperties struct {
	ProvisioningState      string     `json:"provisioningState,omitempty"`
	IsAutoInflateEnabled   bool       `json:"isAutoInflateEnabled"`
	MaximumThroughputUnits int32      `json:"maximumThroughputUnits,omitempty"`
	CreatedAt              *time.Time `json:"createdAt,omitempty"`
}

// Namespace provisioning states returned by ARM.
const (
	ProvisioningSucceeded = "Succeeded"
	ProvisioningFailed    = "Failed"
	ProvisioningCanceled  = "Canceled"
)

// Hub is a single event hub inside a namespace.
type Hub struct {
	ID         string        `json:"id,omitempty"`
	Name       string        `json:"name,omitempty"`
	Properties HubProperties `json:"properties"`
}

// HubProperties holds the structural settings of a hub.
type HubProperties struct {
	PartitionCount         int64      `json:"partitionCount"`
	MessageRetentionInDays int64      `json:"messageRetentionInDays,omitempty"`
	Status                 string     `json:"status,omitempty"`
	CreatedAt              *time.Time `json:"createdAt,omitempty"`
}

// ConsumerGroup is a named read cursor group under a hub. Creation takes no
// settings, so Properties stays an opaque map.
type ConsumerGroup struct {
	ID         string         `json:"id,omitempty"`
	Name       string         `json:"name,omitempty"`
	Properties map[string]any `json:"properties"`
}

// AccessKeys is the response of a listKeys call on an authorization rule.
type AccessKeys struct {
	KeyName                   string `json:"keyName"`
	PrimaryKey                string `json:"primaryKey"`
	SecondaryKey              string `json:"secondaryKey"`
	PrimaryConnectionString   string `json:"primaryConnectionString"`
	SecondaryConnectionString string `json:"secondaryConnectionString"`
}

// ARM collection envelopes. NextLink is set when the listing is paged.
type namespaceList struct {
	Value    []Namespace `json:"value"`
	NextLink string      `json:"nextLink,omitempty"`
}

type hubList struct {
	Value    []Hub  `json:"value"`
	NextLink string `json:"nextLink,omitempty"`
}

type consumerGroupList struct {
	Value    []ConsumerGroup `json:"value"`
	NextLink string          `json:"nextLink,omitempty"`
}
