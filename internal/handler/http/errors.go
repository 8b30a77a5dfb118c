// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Sentinel errors produced by the transport layer itself. Callers can match
// against them with [errors.Is].
var (
	// ErrInvalidPageID is returned when the page identifier in the URL or in
	// the "id" query parameter is not a positive integer.
	ErrInvalidPageID = errors.New("invalid page id")

	// ErrSessionRequired is returned by routes that need a valid editor
	// session when the request carries none.
	ErrSessionRequired = errors.New("editor session required")

	// ErrTooManyRequests is returned when an anonymous client exceeds the
	// submission rate limit.
	ErrTooManyRequests = errors.New("too many anonymous submissions")
)
