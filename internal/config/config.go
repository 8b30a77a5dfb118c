// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container for the
// draft-keeper server. It is populated by merging values from a .env file,
// environment variables, command-line flags and an optional JSON file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env      : direct environment variable name for scalar fields.
//   - envDefault: value used when the variable is unset.
type StructuredConfig struct {
	// App holds editor session settings and the application version.
	App App `envPrefix:"APP_"`

	// Server holds network address and timeout settings for the HTTP server.
	Server Server `envPrefix:"SERVER_"`

	// Storage holds the directory database and the draft staging area.
	Storage Storage `envPrefix:"STORAGE_"`

	// Rescue holds the session-loss rescue settings: identity token secrets,
	// heartbeat interval, cookie checks and diagnostics.
	Rescue Rescue `envPrefix:"RESCUE_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds editor session settings.
type App struct {
	// TokenSignKey is the HMAC key used to sign editor session tokens.
	// Env: APP_TOKEN_SIGN_KEY
	TokenSignKey string `env:"TOKEN_SIGN_KEY"`

	// TokenIssuer is the "iss" claim of editor session tokens.
	// Env: APP_TOKEN_ISSUER
	TokenIssuer string `env:"TOKEN_ISSUER" envDefault:"go-draft-keeper"`

	// TokenDuration is the editor session lifetime. Every successful
	// heartbeat extends the session by this amount.
	// Env: APP_TOKEN_DURATION
	TokenDuration time.Duration `env:"TOKEN_DURATION" envDefault:"30m"`

	// Version is exposed via the /api/version/ endpoint.
	// Env: APP_VERSION
	Version string `env:"VERSION" envDefault:"dev"`
}

// Server holds network and timeout settings for the inbound transport layer.
type Server struct {
	// HTTPAddress is the TCP address the HTTP server listens on ("host:port").
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS" envDefault:"localhost:8080"`

	// RequestTimeout bounds reading a request and writing its response.
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT" envDefault:"30s"`

	// SecureCookies marks every cookie set by the server as Secure.
	// Env: SERVER_SECURE_COOKIES
	SecureCookies bool `env:"SECURE_COOKIES"`
}

// Storage groups the persistence settings.
type Storage struct {
	// DB holds the directory database settings (pages, users, editors).
	DB DB `envPrefix:"DB_"`

	// Staging holds the settings of the draft staging area.
	Staging Staging `envPrefix:"STAGING_"`
}

// DB holds the directory database connection settings.
type DB struct {
	// DSN is either a PostgreSQL URL ("postgres://...") or a path to an
	// SQLite database file.
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI" envDefault:"draft-keeper.db"`
}

// Staging holds the settings of the draft staging area.
type Staging struct {
	// Dir is the directory holding draft files and user cookie shadow files.
	// Env: STORAGE_STAGING_DIR
	Dir string `env:"DIR" envDefault:"staging"`

	// RedisURL switches the staging area to Redis when non-empty
	// (e.g. "redis://localhost:6379/0").
	// Env: STORAGE_STAGING_REDIS_URL
	RedisURL string `env:"REDIS_URL"`
}

// Rescue holds the session-loss rescue settings.
type Rescue struct {
	// SiteSalt is the site secret mixed into every identity token. Rotating
	// it invalidates every staged draft.
	// Env: RESCUE_SITE_SALT
	SiteSalt string `env:"SITE_SALT"`

	// InstalledAt is the unix time of the site installation, another input
	// of the identity token.
	// Env: RESCUE_INSTALLED_AT
	InstalledAt int64 `env:"INSTALLED_AT"`

	// PingIntervalSeconds is the heartbeat interval. Zero disables the
	// heartbeat.
	// Env: RESCUE_PING_INTERVAL
	PingIntervalSeconds int `env:"PING_INTERVAL" envDefault:"60"`

	// SkipUserCookieCheck disables the user trust cookie check on anonymous
	// submissions.
	// Env: RESCUE_SKIP_USER_COOKIE_CHECK
	SkipUserCookieCheck bool `env:"SKIP_USER_COOKIE_CHECK"`

	// SkipPostCookieCheck disables issuing and checking the post trust cookie.
	// Env: RESCUE_SKIP_POST_COOKIE_CHECK
	SkipPostCookieCheck bool `env:"SKIP_POST_COOKIE_CHECK"`

	// LogEnabled turns on the diagnostic rescue log.
	// Env: RESCUE_LOG_ENABLED
	LogEnabled bool `env:"LOG_ENABLED"`

	// Debug keeps invalid drafts on disk and surfaces the rejection reason
	// instead of silently deleting them.
	// Env: RESCUE_DEBUG
	Debug bool `env:"DEBUG"`

	// DraftTTL is the age after which a sweep removes a draft.
	// Env: RESCUE_DRAFT_TTL
	DraftTTL time.Duration `env:"DRAFT_TTL" envDefault:"24h"`

	// UserCookieTTL is the lifetime of the user trust cookie and of its
	// shadow file.
	// Env: RESCUE_USER_COOKIE_TTL
	UserCookieTTL time.Duration `env:"USER_COOKIE_TTL" envDefault:"168h"`

	// UserCookieReuse is the age below which an existing shadow value is
	// reused instead of generating a new user trust cookie.
	// Env: RESCUE_USER_COOKIE_REUSE
	UserCookieReuse time.Duration `env:"USER_COOKIE_REUSE" envDefault:"24h"`

	// PostCookieTTL is the lifetime of the post trust cookie.
	// Env: RESCUE_POST_COOKIE_TTL
	PostCookieTTL time.Duration `env:"POST_COOKIE_TTL" envDefault:"24h"`

	// AnonymousPostsPerMinute limits anonymous submissions per client address.
	// Env: RESCUE_ANONYMOUS_POSTS_PER_MINUTE
	AnonymousPostsPerMinute int `env:"ANONYMOUS_POSTS_PER_MINUTE" envDefault:"30"`
}

// GetStructuredConfig loads, merges, and validates the application
// configuration from all available sources in the following priority order
// (last source wins for non-zero fields):
//  1. .env file in the working directory, if present
//  2. Environment variables
//  3. Command-line flags
//  4. JSON file (path resolved from sources 2 and 3)
func GetStructuredConfig(args []string) (*StructuredConfig, error) {
	return newConfigBuilder().
		withDotEnv(".env").
		withEnv().
		withFlags(args).
		withJSON().
		build()
}
