package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dropwire/dropwire/internal/adapters/ws"
	"github.com/dropwire/dropwire/internal/config"
	"github.com/dropwire/dropwire/internal/signaling"
)

func testConfig() *config.Config {
	return &config.Config{
		Mode:              "release",
		AllowedOrigins:    []string{"http://example.com"},
		CookieName:        "peerid",
		HeartbeatInterval: time.Second,
		ReadLimit:         32768,
		SendBuffer:        32,
	}
}

func testRouter(cfg *config.Config) http.Handler {
	registry := signaling.NewRegistry()
	monitor := signaling.NewMonitor(cfg.HeartbeatInterval)
	ctl := ws.NewController(cfg, registry, signaling.NewRouter(registry), monitor)
	return SetupRouter(context.Background(), cfg, ctl)
}

func TestPingEndpoint(t *testing.T) {
	r := testRouter(testConfig())

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "OK", w.Body.String())
}

func TestCORSHeadersForAllowedOrigin(t *testing.T) {
	r := testRouter(testConfig())

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set("Origin", "http://example.com")
	r.ServeHTTP(w, req)

	assert.Equal(t, "http://example.com", w.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "true", w.Header().Get("Access-Control-Allow-Credentials"))
}

func TestCORSHeadersAbsentForUnknownOrigin(t *testing.T) {
	r := testRouter(testConfig())

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set("Origin", "http://evil.example")
	r.ServeHTTP(w, req)

	assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))
}

func TestUpgradeRejectsDisallowedOrigin(t *testing.T) {
	r := testRouter(testConfig())

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/server/webrtc", nil)
	req.Header.Set("Origin", "http://evil.example")
	req.Header.Set("Connection", "Upgrade")
	req.Header.Set("Upgrade", "websocket")
	req.Header.Set("Sec-WebSocket-Version", "13")
	req.Header.Set("Sec-WebSocket-Key", "dGhlIHNhbXBsZSBub25jZQ==")
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusForbidden, w.Code, "origin rejection happens before any room side effect")
}
