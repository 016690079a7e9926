package test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
	"github/w3kit/go-smart-account/internal/api"
	"github/w3kit/go-smart-account/internal/api/router"
	"github/w3kit/go-smart-account/internal/config"
)

// TestSignerPrivateKey is a throwaway key for tests only.
const TestSignerPrivateKey = "4c0883a69102937d6231471b5dbb6204fe5129617082792ae468d01a3f362318"

// DefaultTestConfig returns a service config suitable for handler tests:
// local signer key set, auth disabled.
func DefaultTestConfig() config.Server {
	cfg := config.DefaultServiceConfigFromEnv()
	cfg.Auth.APIToken = ""
	cfg.Signer.PrivateKeyHex = TestSignerPrivateKey
	cfg.Logger.PrettyPrintConsole = false

	return cfg
}

// WithTestServer constructs a fully routed server and hands it to the
// closure. Components may be swapped on the server before performing
// requests.
func WithTestServer(t *testing.T, closure func(s *api.Server)) {
	t.Helper()
	WithTestServerConfigurable(t, DefaultTestConfig(), closure)
}

// WithTestServerConfigurable is WithTestServer with a caller-supplied config.
func WithTestServerConfigurable(t *testing.T, cfg config.Server, closure func(s *api.Server)) {
	t.Helper()

	s, err := api.NewServer(cfg)
	require.NoError(t, err)

	router.Init(s)

	closure(s)
}

// PerformRequest runs a request against the server's echo instance without
// binding a port.
func PerformRequest(t *testing.T, s *api.Server, method string, path string, body interface{}, headers http.Header) *httptest.ResponseRecorder {
	t.Helper()

	var bodyReader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		bodyReader = bytes.NewReader(payload)
	} else {
		bodyReader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, bodyReader)
	req.Header.Set(echoHeaderContentType, "application/json")
	for key, values := range headers {
		for _, value := range values {
			req.Header.Add(key, value)
		}
	}

	rec := httptest.NewRecorder()
	s.Echo.ServeHTTP(rec, req)

	return rec
}

const echoHeaderContentType = "Content-Type"
