// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the headless heartbeat client.
//
// It logs an editor in through an [adapter.ServerAdapter], pings the server
// at a fixed interval to keep the session alive and stops as soon as a ping
// comes back without the authenticated marker.
package client
