package config

import (
	"errors"
	"flag"
	"fmt"
	"time"

	"dario.cat/mergo"
)

// PingerAdapter holds network settings of the heartbeat client.
type PingerAdapter struct {
	// HTTPAddress is the base URL of the draft-keeper server.
	// Env: PINGER_SERVER_ADDRESS
	HTTPAddress string `env:"SERVER_ADDRESS" envDefault:"http://localhost:8080"`

	// RequestTimeout bounds a single login or ping request.
	// Env: PINGER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT" envDefault:"10s"`
}

// PingerConfig is the configuration of cmd/pinger, a headless client that
// keeps an editor session alive and reports when it is lost.
type PingerConfig struct {
	Adapter PingerAdapter

	// Login and Password are the editor credentials.
	// Env: PINGER_LOGIN, PINGER_PASSWORD
	Login    string `env:"LOGIN"`
	Password string `env:"PASSWORD"`

	// Interval is the heartbeat period.
	// Env: PINGER_INTERVAL
	Interval time.Duration `env:"INTERVAL" envDefault:"60s"`

	// UnsavedChanges switches the session-loss report to the wording used
	// when the editor has pending changes.
	// Env: PINGER_UNSAVED_CHANGES
	UnsavedChanges bool `env:"UNSAVED_CHANGES"`
}

type pingerEnv struct {
	Pinger PingerConfig `envPrefix:"PINGER_"`
}

// GetPingerConfig loads the pinger configuration from a .env file,
// environment variables and command-line flags (last non-zero value wins).
func GetPingerConfig(args []string) (*PingerConfig, error) {
	var errs error
	if err := loadDotEnv(".env"); err != nil {
		errs = errors.Join(errs, err)
	}

	envCfg := &pingerEnv{}
	if err := parseEnv(envCfg); err != nil {
		errs = errors.Join(errs, err)
	}

	flagCfg, err := parsePingerFlags(args)
	if err != nil {
		errs = errors.Join(errs, err)
	}

	if errs != nil {
		return nil, fmt.Errorf("error occured during building pinger config: %w", errs)
	}

	cfg := envCfg.Pinger
	if err = mergo.Merge(&cfg, flagCfg, mergo.WithOverride); err != nil {
		return nil, fmt.Errorf("error merging configs: %w", err)
	}

	return &cfg, cfg.validate()
}

func parsePingerFlags(args []string) (*PingerConfig, error) {
	fs := flag.NewFlagSet("draft-keeper-pinger", flag.ContinueOnError)

	cfg := &PingerConfig{}
	fs.StringVar(&cfg.Adapter.HTTPAddress, "a", "", "Server base URL")
	fs.DurationVar(&cfg.Adapter.RequestTimeout, "request-timeout", 0, "Request timeout (e.g., 10s)")
	fs.StringVar(&cfg.Login, "login", "", "Editor login")
	fs.StringVar(&cfg.Password, "password", "", "Editor password")
	fs.DurationVar(&cfg.Interval, "interval", 0, "Heartbeat interval (e.g., 1m)")
	fs.BoolVar(&cfg.UnsavedChanges, "unsaved", false, "Report session loss as losing unsaved changes")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return cfg, nil
}
