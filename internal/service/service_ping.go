package service

import (
	"context"

	"github.com/MKhiriev/go-draft-keeper/internal/logger"
	"github.com/MKhiriev/go-draft-keeper/models"
)

type pingService struct {
	auth AuthService

	logger *logger.Logger
}

// NewPingService constructs a PingService that slides the editor session
// through auth.
func NewPingService(auth AuthService, logger *logger.Logger) PingService {
	return &pingService{auth: auth, logger: logger}
}

// Ping echoes counter. Authenticated callers also get the session marker and
// a refreshed session cookie.
func (p *pingService) Ping(ctx context.Context, scope Scope, counter int64) (models.PingResponse, error) {
	resp := models.PingResponse{Ping: counter}
	if !scope.Authenticated {
		return resp, nil
	}

	if err := p.auth.RefreshSession(ctx, scope); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*pingService.Ping").Int64("user_id", scope.UserID).
			Msg("error refreshing session")
		return models.PingResponse{}, err
	}
	resp.Editor = models.AuthenticatedMarker

	return resp, nil
}
