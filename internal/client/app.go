package client

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-draft-keeper/internal/adapter"
	"github.com/MKhiriev/go-draft-keeper/internal/config"
	"github.com/MKhiriev/go-draft-keeper/internal/logger"
	"github.com/MKhiriev/go-draft-keeper/models"
)

// App logs the editor in and keeps the session alive.
type App struct {
	adapter   adapter.ServerAdapter
	heartbeat *Heartbeat
	cfg       config.PingerConfig

	logger *logger.Logger
}

func NewApp(serverAdapter adapter.ServerAdapter, cfg config.PingerConfig, logger *logger.Logger) (Client, error) {
	if serverAdapter == nil {
		return nil, fmt.Errorf("server adapter is required")
	}

	unsaved := func() bool { return cfg.UnsavedChanges }

	return &App{
		adapter:   serverAdapter,
		heartbeat: NewHeartbeat(serverAdapter, cfg.Interval, nil, unsaved, logger),
		cfg:       cfg,
		logger:    logger,
	}, nil
}

// Run implements [Client]. It returns nil when ctx is canceled and an error
// wrapping [ErrSessionLost] when the server ends the session.
func (a *App) Run(ctx context.Context) error {
	user, err := a.adapter.Login(ctx, models.Credentials{Login: a.cfg.Login, Password: a.cfg.Password})
	if err != nil {
		return fmt.Errorf("login: %w", err)
	}
	a.logger.Info().Int64("user_id", user.UserID).Str("login", user.Login).Msg("editor logged in, heartbeat started")

	return a.heartbeat.Run(ctx)
}
