package client

import (
	"errors"

	"github.com/MKhiriev/go-draft-keeper/internal/app"
)

var (
	// ErrSessionLost is returned by the heartbeat once a ping comes back
	// without the authenticated marker.
	ErrSessionLost = errors.New("editor session lost")
)

// LossMessage returns the alert shown when the session is lost.
func LossMessage(unsavedChanges bool) string {
	if unsavedChanges {
		return app.MsgSessionExpiredUnsaved
	}
	return app.MsgSessionExpired
}
