package mocks

import (
	"context"

	"github.com/vh-vahan/eventhubs-scope/eventhubs/cloud"
)

var _ cloud.TokenProvider = MockTokenProvider{}

// MockTokenProvider is a static token provider that follows the
// cloud.TokenProvider interface.
type MockTokenProvider struct {
	TokenValue string
	Err        error
}

// Token returns the configured token or error.
func (m MockTokenProvider) Token(_ context.Context) (string, error) {
	if m.Err != nil {
		return "", m.Err
	}
	return m.TokenValue, nil
}
