package cloud_test

import (
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"go.uber.org/zap"

	"github.com/vh-vahan/eventhubs-scope/eventhubs/cloud"
	"github.com/vh-vahan/eventhubs-scope/eventhubs/mocks"
)

func TestHTTPClientAttachesBearerToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("Authorization"); got != "Bearer tok-abc" {
			t.Errorf("Expected %q, but got %q", "Bearer tok-abc", got)
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	client := cloud.NewHTTPClient(mocks.MockTokenProvider{TokenValue: "tok-abc"}, zap.NewNop())
	resp, err := client.Get(srv.URL)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Errorf("Expected %v, but got %v", http.StatusOK, resp.StatusCode)
	}
}

func TestHTTPClientRetriesTransientFailures(t *testing.T) {
	var attempts atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		if attempts.Add(1) == 1 {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	client := cloud.NewHTTPClient(mocks.MockTokenProvider{TokenValue: "tok"}, zap.NewNop())
	resp, err := client.Get(srv.URL)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Errorf("Expected %v, but got %v", http.StatusOK, resp.StatusCode)
	}
	if got := attempts.Load(); got != 2 {
		t.Errorf("Expected 2 attempts, but got %d", got)
	}
}
