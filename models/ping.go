package models

// AuthenticatedMarker is present in heartbeat responses only while the
// editor session is valid. Clients detect logout by its absence.
const AuthenticatedMarker = "draft-keeper-authenticated"

// PingResponse is the body of the heartbeat endpoint.
type PingResponse struct {
	Ping   int64  `json:"ping"`
	Editor string `json:"editor,omitempty"`
}

// Authenticated reports whether the response carries the session marker.
func (p PingResponse) Authenticated() bool {
	return p.Editor == AuthenticatedMarker
}
