package handler

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-draft-keeper/internal/config"
	"github.com/MKhiriev/go-draft-keeper/internal/logger"
	"github.com/MKhiriev/go-draft-keeper/internal/service"
)

// newTestLogger returns a no-op logger suitable for use in tests.
func newTestLogger() *logger.Logger {
	return logger.Nop()
}

// newTestServices returns an empty container. http.NewHandler only stores
// the pointer, so no service is called during construction.
func newTestServices() *service.Services {
	return &service.Services{}
}

func httpConfig(address string) config.StructuredConfig {
	return config.StructuredConfig{
		Server: config.Server{HTTPAddress: address},
		Rescue: config.Rescue{PingIntervalSeconds: 60},
	}
}

// TestNewHandlers_HTTP verifies that an HTTP address yields an HTTP handler.
func TestNewHandlers_HTTP(t *testing.T) {
	h, err := NewHandlers(newTestServices(), httpConfig(":8080"), newTestLogger())

	require.NoError(t, err)
	require.NotNil(t, h)
	assert.NotNil(t, h.HTTP, "expected HTTP handler to be initialised")
}

// TestNewHandlers_NoAddress verifies that a missing HTTP address returns
// errNoHandlersAreCreated and a nil *Handlers.
func TestNewHandlers_NoAddress(t *testing.T) {
	h, err := NewHandlers(newTestServices(), httpConfig(""), newTestLogger())

	require.ErrorIs(t, err, errNoHandlersAreCreated)
	assert.Nil(t, h)
}

// TestNewHandlers_IndependentInstances verifies that two calls to NewHandlers
// produce independent *Handlers instances.
func TestNewHandlers_IndependentInstances(t *testing.T) {
	cfg := httpConfig(":8080")

	h1, err1 := NewHandlers(newTestServices(), cfg, newTestLogger())
	h2, err2 := NewHandlers(newTestServices(), cfg, newTestLogger())

	require.NoError(t, err1)
	require.NoError(t, err2)
	assert.NotSame(t, h1, h2)
	assert.NotSame(t, h1.HTTP, h2.HTTP)
}

// TestNewHandlers_RoutesServeRequests verifies the HTTP handler builds a
// router.
func TestNewHandlers_RoutesServeRequests(t *testing.T) {
	h, err := NewHandlers(newTestServices(), httpConfig(":8080"), newTestLogger())
	require.NoError(t, err)

	assert.NotNil(t, h.HTTP.Init())
}
