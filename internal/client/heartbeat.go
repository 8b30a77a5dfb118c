package client

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/go-draft-keeper/internal/adapter"
	"github.com/MKhiriev/go-draft-keeper/internal/logger"
)

// Heartbeat pings the server every interval while the editor is active.
type Heartbeat struct {
	adapter  adapter.ServerAdapter
	interval time.Duration

	// active reports whether the editor UI is in use; pings are skipped
	// while it returns false.
	active func() bool
	// unsaved reports whether the editor has pending changes.
	unsaved func() bool

	logger *logger.Logger
}

// NewHeartbeat creates a heartbeat. A nil active is treated as always
// active, a nil unsaved as never dirty. A non-positive interval disables the
// heartbeat.
func NewHeartbeat(serverAdapter adapter.ServerAdapter, interval time.Duration, active, unsaved func() bool, logger *logger.Logger) *Heartbeat {
	if active == nil {
		active = func() bool { return true }
	}
	if unsaved == nil {
		unsaved = func() bool { return false }
	}

	return &Heartbeat{
		adapter:  serverAdapter,
		interval: interval,
		active:   active,
		unsaved:  unsaved,
		logger:   logger,
	}
}

// Run blocks until ctx is canceled or the session is lost. On session loss
// it returns an error wrapping [ErrSessionLost] whose text is the alert for
// the editor. Transport errors are logged and do not stop the loop.
func (h *Heartbeat) Run(ctx context.Context) error {
	if h.interval <= 0 {
		h.logger.Info().Msg("heartbeat disabled")
		return nil
	}

	ticker := time.NewTicker(h.interval)
	defer ticker.Stop()

	var counter int64
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
		}

		if !h.active() {
			continue
		}

		counter++
		pong, err := h.adapter.Ping(ctx, counter)
		if err != nil {
			if ctx.Err() != nil {
				return nil
			}
			h.logger.Warn().Err(err).Int64("counter", counter).Msg("ping failed")
			continue
		}

		if !pong.Authenticated() {
			h.logger.Warn().Int64("counter", counter).Msg("editor session lost")
			return fmt.Errorf("%w: %s", ErrSessionLost, LossMessage(h.unsaved()))
		}

		h.logger.Debug().Int64("counter", pong.Ping).Msg("session alive")
	}
}
