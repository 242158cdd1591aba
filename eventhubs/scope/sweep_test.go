package scope

import (
	"context"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/vh-vahan/eventhubs-scope/eventhubs/cloud"
	"github.com/vh-vahan/eventhubs-scope/eventhubs/mocks"
)

func TestSweepNamespacesDeletesMatchingPrefix(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	client := mocks.NewMockClientSet(ctrl)
	client.EXPECT().ListNamespaces(gomock.Any(), "rg-test").Return([]cloud.Namespace{
		{Name: "go-eventhubs-aaaa"},
		{Name: "production-keep"},
		{Name: "go-eventhubs-bbbb"},
	}, nil)
	client.EXPECT().DeleteNamespace(gomock.Any(), "rg-test", "go-eventhubs-aaaa").Return(nil)
	client.EXPECT().DeleteNamespace(gomock.Any(), "rg-test", "go-eventhubs-bbbb").Return(nil)

	s := &Sweeper{Client: client, ResourceGroup: "rg-test", Logger: zap.NewNop()}
	swept, err := s.SweepNamespaces(context.Background(), "go-eventhubs-", false)
	require.NoError(t, err)
	assert.Equal(t, 2, swept)
}

func TestSweepNamespacesDryRun(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	client := mocks.NewMockClientSet(ctrl)
	client.EXPECT().ListNamespaces(gomock.Any(), "rg-test").Return([]cloud.Namespace{
		{Name: "go-eventhubs-aaaa"},
	}, nil)

	s := &Sweeper{Client: client, ResourceGroup: "rg-test", Logger: zap.NewNop()}
	swept, err := s.SweepNamespaces(context.Background(), "go-eventhubs-", true)
	require.NoError(t, err)
	assert.Equal(t, 1, swept)
}

func TestSweepNamespacesContinuesPastDeleteFailures(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	client := mocks.NewMockClientSet(ctrl)
	client.EXPECT().ListNamespaces(gomock.Any(), "rg-test").Return([]cloud.Namespace{
		{Name: "go-eventhubs-broken"},
		{Name: "go-eventhubs-fine"},
	}, nil)
	client.EXPECT().DeleteNamespace(gomock.Any(), "rg-test", "go-eventhubs-broken").
		Return(&cloud.APIError{StatusCode: 409, Code: "Conflict", Message: "busy"})
	client.EXPECT().DeleteNamespace(gomock.Any(), "rg-test", "go-eventhubs-fine").Return(nil)

	s := &Sweeper{Client: client, ResourceGroup: "rg-test", Logger: zap.NewNop()}
	swept, err := s.SweepNamespaces(context.Background(), "go-eventhubs-", false)
	require.NoError(t, err)
	assert.Equal(t, 1, swept)
}

func TestSweepHubsDeletesOnlyStaleHubs(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	client := mocks.NewMockClientSet(ctrl)

	stale := time.Now().Add(-24 * time.Hour)
	recent := time.Now().Add(-time.Minute)
	client.EXPECT().ListHubs(gomock.Any(), "rg-test", "testns").Return([]cloud.Hub{
		{Name: "old-hub", Properties: cloud.HubProperties{CreatedAt: &stale}},
		{Name: "new-hub", Properties: cloud.HubProperties{CreatedAt: &recent}},
		{Name: "no-timestamp"},
	}, nil)
	client.EXPECT().DeleteHub(gomock.Any(), "rg-test", "testns", "old-hub").Return(nil)

	s := &Sweeper{Client: client, ResourceGroup: "rg-test", Logger: zap.NewNop()}
	swept, err := s.SweepHubs(context.Background(), "testns", 8*time.Hour, false)
	require.NoError(t, err)
	assert.Equal(t, 1, swept)
}
