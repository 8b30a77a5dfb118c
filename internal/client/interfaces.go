// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import "context"

// Client defines the minimal lifecycle contract for runnable client
// applications.
type Client interface {
	// Run starts the client and blocks until the session is lost or ctx is
	// canceled.
	Run(ctx context.Context) error
}
