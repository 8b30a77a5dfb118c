package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-draft-keeper/internal/logger"
)

func TestPing_Anonymous(t *testing.T) {
	f := newAuthFixture(t)
	svc := NewPingService(f.svc, logger.Nop())
	jar := newJar()

	resp, err := svc.Ping(context.Background(), anonymousScope(jar), 3)

	require.NoError(t, err)
	assert.Equal(t, int64(3), resp.Ping)
	assert.False(t, resp.Authenticated())
	_, ok := jar.Get(SessionCookieName)
	assert.False(t, ok)
}

func TestPing_AuthenticatedSlidesSession(t *testing.T) {
	f := newAuthFixture(t)
	svc := NewPingService(f.svc, logger.Nop())
	jar := newJar()

	resp, err := svc.Ping(context.Background(), editorScope(jar), 7)

	require.NoError(t, err)
	assert.Equal(t, int64(7), resp.Ping)
	assert.True(t, resp.Authenticated())
	_, ok := jar.Get(SessionCookieName)
	assert.True(t, ok)
}
