// cmd/worker-manager/main_test.go
package main

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubHealth struct {
	err error
}

func (s stubHealth) HealthCheck(context.Context) error {
	return s.err
}

func TestHTTPServer_Endpoints(t *testing.T) {
	tests := []struct {
		name           string
		path           string
		zeebeErr       error
		expectedCode   int
		expectedStatus string
	}{
		{name: "health", path: "/health", expectedCode: http.StatusOK, expectedStatus: "healthy"},
		{name: "health ignores broker", path: "/health", zeebeErr: errors.New("down"), expectedCode: http.StatusOK, expectedStatus: "healthy"},
		{name: "ready", path: "/ready", expectedCode: http.StatusOK, expectedStatus: "ready"},
		{name: "not ready", path: "/ready", zeebeErr: errors.New("down"), expectedCode: http.StatusServiceUnavailable, expectedStatus: "unavailable"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := newHTTPServer(":0", stubHealth{err: tt.zeebeErr})
			rec := httptest.NewRecorder()

			server.Handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, tt.path, nil))

			assert.Equal(t, tt.expectedCode, rec.Code)
			var body map[string]string
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, tt.expectedStatus, body["status"])
		})
	}
}

func TestHTTPServer_Metrics(t *testing.T) {
	server := newHTTPServer(":0", stubHealth{})
	rec := httptest.NewRecorder()

	server.Handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "go_goroutines")
}
