// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

// validate checks that the final merged [StructuredConfig] satisfies all
// invariants before it is used at startup.
func (cfg *StructuredConfig) validate() error {
	if cfg.App.TokenSignKey == "" || cfg.App.TokenDuration <= 0 {
		return ErrInvalidAppConfigs
	}

	if cfg.Server.HTTPAddress == "" {
		return ErrInvalidServerConfigs
	}

	if cfg.Storage.DB.DSN == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.Storage.Staging.Dir == "" && cfg.Storage.Staging.RedisURL == "" {
		return ErrInvalidStorageConfigs
	}

	r := cfg.Rescue
	if r.SiteSalt == "" || r.PingIntervalSeconds < 0 {
		return ErrInvalidRescueConfigs
	}

	if r.DraftTTL <= 0 || r.UserCookieTTL <= 0 || r.PostCookieTTL <= 0 || r.UserCookieReuse < 0 {
		return ErrInvalidRescueConfigs
	}

	return nil
}

func (cfg *PingerConfig) validate() error {
	if cfg.Adapter.HTTPAddress == "" || cfg.Adapter.RequestTimeout <= 0 {
		return ErrInvalidAdapterConfigs
	}

	if cfg.Login == "" || cfg.Password == "" || cfg.Interval <= 0 {
		return ErrInvalidPingerConfigs
	}

	return nil
}
