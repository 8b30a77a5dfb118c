package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] and
// [PingerConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidAppConfigs indicates missing editor session settings
	// (for example, an empty token sign key or a zero session duration).
	ErrInvalidAppConfigs = errors.New("invalid app configuration")
	// ErrInvalidServerConfigs indicates a missing listen address.
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
	// ErrInvalidStorageConfigs indicates an empty DSN or no staging backend.
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidRescueConfigs indicates a missing site salt, a negative
	// heartbeat interval or non-positive lifetimes.
	ErrInvalidRescueConfigs = errors.New("invalid rescue configuration")
	// ErrInvalidAdapterConfigs indicates a missing server URL or request
	// timeout of the heartbeat client.
	ErrInvalidAdapterConfigs = errors.New("invalid adapter configuration")
	// ErrInvalidPingerConfigs indicates missing editor credentials or a
	// non-positive heartbeat interval.
	ErrInvalidPingerConfigs = errors.New("invalid pinger configuration")
)
