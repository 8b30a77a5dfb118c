// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the transport used by the headless heartbeat
// client to talk to the draft-keeper server.
//
// [ServerAdapter] decouples the heartbeat loop from HTTP. The package ships an
// HTTP implementation ([NewHTTPServerAdapter]) that keeps the editor session
// cookie in its cookie jar between calls.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] (e.g. [ErrUnauthorized]
// for 401, [ErrTooManyRequests] for 429).
package adapter

import (
	"context"

	"github.com/MKhiriev/go-draft-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// ServerAdapter defines communication with the draft-keeper server.
type ServerAdapter interface {
	// Login starts an editor session with the given credentials and returns
	// the editor record. The session cookie is kept by the adapter.
	Login(ctx context.Context, credentials models.Credentials) (models.User, error)

	// Ping sends one heartbeat carrying counter. The response carries the
	// authenticated marker only while the session is alive.
	Ping(ctx context.Context, counter int64) (models.PingResponse, error)

	// Logout ends the editor session.
	Logout(ctx context.Context) error
}
