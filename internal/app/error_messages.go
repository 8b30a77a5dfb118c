// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer message strings used by the
// draft-keeper server pages and the heartbeat client.
//
// Keeping them in one place ensures consistent wording between the login
// form, the heartbeat alerts and the pinger output.
package app

const (
	// MsgLoginRequired is shown when the login form is submitted without a
	// login or a password.
	MsgLoginRequired = "Login and password are required."

	// MsgInvalidLoginPassword is shown when the supplied login/password
	// combination does not match any editor.
	MsgInvalidLoginPassword = "Invalid login or password."

	// MsgLoginUnavailable is shown when login fails for a reason the editor
	// cannot resolve.
	MsgLoginUnavailable = "Login is temporarily unavailable."

	// MsgSessionExpiredUnsaved is the heartbeat alert when the session is
	// lost while the form has unsaved changes.
	MsgSessionExpiredUnsaved = "Your session has expired and you have unsaved changes. " +
		"Submit the form anyway: your changes will be kept and offered for restore after you log in again."

	// MsgSessionExpired is the heartbeat alert when the session is lost and
	// nothing is pending.
	MsgSessionExpired = "Your session has expired. Please log in again."
)
