// Package config provides configuration loading, merging, and validation
// facilities for the draft-keeper server.
//
// Configuration is assembled from multiple sources in the following priority
// order (later sources override earlier non-zero fields):
//  1. .env file
//  2. Environment variables
//  3. Command-line flags
//  4. JSON config file
//
// Use [GetStructuredConfig] for the server and [GetPingerConfig] for the
// headless heartbeat client.
package config
