package scope

import (
	"context"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vh-vahan/eventhubs-scope/eventhubs/cloud"
	"github.com/vh-vahan/eventhubs-scope/eventhubs/mocks"
)

func TestParseNamespaceConnection(t *testing.T) {
	testCases := []struct {
		name         string
		connection   string
		expectedName string
		expectError  bool
	}{
		{
			name:         "standard connection string",
			connection:   "Endpoint=sb://foo.example.com/;SharedAccessKey=X",
			expectedName: "foo",
		},
		{
			name:         "endpoint not in first position",
			connection:   "SharedAccessKeyName=RootManageSharedAccessKey;Endpoint=sb://bar.servicebus.windows.net/;SharedAccessKey=X",
			expectedName: "bar",
		},
		{
			name:         "endpoint key is matched case-insensitively",
			connection:   "endpoint=sb://baz.servicebus.windows.net/",
			expectedName: "baz",
		},
		{
			name:        "no endpoint entry",
			connection:  "SharedAccessKey=X",
			expectError: true,
		},
		{
			name:        "endpoint without a host",
			connection:  "Endpoint=sb:///;SharedAccessKey=X",
			expectError: true,
		},
		{
			name:        "empty connection string",
			connection:  "",
			expectError: true,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			handle, err := ParseNamespaceConnection(tc.connection)
			if tc.expectError {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.expectedName, handle.Name)
			assert.Equal(t, tc.connection, handle.ConnectionString)
			assert.False(t, handle.WasCreated)
		})
	}
}

func TestProvisionNamespace(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	client := mocks.NewMockClientSet(ctrl)

	var nsName string
	client.EXPECT().
		CreateNamespace(gomock.Any(), "rg-test", gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _, name string, spec cloud.Namespace) (*cloud.Namespace, error) {
			nsName = name
			assert.Equal(t, "Standard", spec.SKU.Name)
			assert.Equal(t, int32(namespaceSKUCapacity), spec.SKU.Capacity)
			assert.True(t, spec.Properties.IsAutoInflateEnabled)
			assert.Equal(t, int32(namespaceMaxThroughputUnits), spec.Properties.MaximumThroughputUnits)
			return &cloud.Namespace{Name: name}, nil
		})
	client.EXPECT().
		GetNamespace(gomock.Any(), "rg-test", gomock.Any()).
		Return(&cloud.Namespace{Properties: cloud.NamespaceProperties{ProvisioningState: cloud.ProvisioningSucceeded}}, nil)
	client.EXPECT().
		ListNamespaceKeys(gomock.Any(), "rg-test", gomock.Any(), "RootManageSharedAccessKey").
		Return(&cloud.AccessKeys{PrimaryConnectionString: "Endpoint=sb://fresh.servicebus.windows.net/;SharedAccessKey=Y"}, nil)

	m := testManager(t, testConfig(), client)
	handle, err := m.ProvisionNamespace(context.Background())
	require.NoError(t, err)
	assert.Equal(t, nsName, handle.Name)
	assert.True(t, strings.HasPrefix(handle.Name, "go-eventhubs-"))
	assert.True(t, handle.WasCreated)
	assert.Contains(t, handle.ConnectionString, "Endpoint=sb://fresh")
}

func TestProvisionNamespaceFailsWhenProvisioningFails(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	client := mocks.NewMockClientSet(ctrl)
	client.EXPECT().CreateNamespace(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(&cloud.Namespace{}, nil)
	client.EXPECT().
		GetNamespace(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(&cloud.Namespace{Properties: cloud.NamespaceProperties{ProvisioningState: cloud.ProvisioningFailed}}, nil)

	m := testManager(t, testConfig(), client)
	handle, err := m.ProvisionNamespace(context.Background())
	assert.Nil(t, handle)
	assert.ErrorContains(t, err, "provisioning ended in state")
}

func TestDeprovisionNamespace(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	client := mocks.NewMockClientSet(ctrl)
	client.EXPECT().DeleteNamespace(gomock.Any(), "rg-test", "go-eventhubs-x").Return(nil)

	m := testManager(t, testConfig(), client)
	assert.NoError(t, m.DeprovisionNamespace(context.Background(), "go-eventhubs-x"))
}

func TestDeprovisionNamespacePropagatesFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	client := mocks.NewMockClientSet(ctrl)
	cause := errors.New("delete refused")
	client.EXPECT().DeleteNamespace(gomock.Any(), gomock.Any(), gomock.Any()).Return(cause)

	m := testManager(t, testConfig(), client)
	err := m.DeprovisionNamespace(context.Background(), "go-eventhubs-x")
	require.Error(t, err)
	assert.ErrorIs(t, err, cause)
}
