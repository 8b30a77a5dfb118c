package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig is the on-disk shape of the JSON config file.
type StructuredJSONConfig struct {
	App struct {
		TokenSignKey  string   `json:"token_sign_key"`
		TokenIssuer   string   `json:"token_issuer"`
		TokenDuration Duration `json:"token_duration"`
		Version       string   `json:"version"`
	} `json:"app,omitempty"`

	Server struct {
		HTTPAddress    string   `json:"http_address"`
		RequestTimeout Duration `json:"request_timeout"`
		SecureCookies  bool     `json:"secure_cookies"`
	} `json:"server,omitempty"`

	Storage struct {
		DB struct {
			DSN string `json:"dsn"`
		} `json:"db,omitempty"`

		Staging struct {
			Dir      string `json:"dir"`
			RedisURL string `json:"redis_url"`
		} `json:"staging,omitempty"`
	} `json:"storage,omitempty"`

	Rescue struct {
		SiteSalt                string   `json:"site_salt"`
		InstalledAt             int64    `json:"installed_at"`
		PingIntervalSeconds     int      `json:"ping_interval"`
		SkipUserCookieCheck     bool     `json:"skip_user_cookie_check"`
		SkipPostCookieCheck     bool     `json:"skip_post_cookie_check"`
		LogEnabled              bool     `json:"log_enabled"`
		Debug                   bool     `json:"debug"`
		DraftTTL                Duration `json:"draft_ttl"`
		UserCookieTTL           Duration `json:"user_cookie_ttl"`
		UserCookieReuse         Duration `json:"user_cookie_reuse"`
		PostCookieTTL           Duration `json:"post_cookie_ttl"`
		AnonymousPostsPerMinute int      `json:"anonymous_posts_per_minute"`
	} `json:"rescue,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	r := jsonCfg.Rescue
	cfg := &StructuredConfig{
		App: App{
			TokenSignKey:  jsonCfg.App.TokenSignKey,
			TokenIssuer:   jsonCfg.App.TokenIssuer,
			TokenDuration: time.Duration(jsonCfg.App.TokenDuration),
			Version:       jsonCfg.App.Version,
		},
		Server: Server{
			HTTPAddress:    jsonCfg.Server.HTTPAddress,
			RequestTimeout: time.Duration(jsonCfg.Server.RequestTimeout),
			SecureCookies:  jsonCfg.Server.SecureCookies,
		},
		Storage: Storage{
			DB: DB{
				DSN: jsonCfg.Storage.DB.DSN,
			},
			Staging: Staging{
				Dir:      jsonCfg.Storage.Staging.Dir,
				RedisURL: jsonCfg.Storage.Staging.RedisURL,
			},
		},
		Rescue: Rescue{
			SiteSalt:                r.SiteSalt,
			InstalledAt:             r.InstalledAt,
			PingIntervalSeconds:     r.PingIntervalSeconds,
			SkipUserCookieCheck:     r.SkipUserCookieCheck,
			SkipPostCookieCheck:     r.SkipPostCookieCheck,
			LogEnabled:              r.LogEnabled,
			Debug:                   r.Debug,
			DraftTTL:                time.Duration(r.DraftTTL),
			UserCookieTTL:           time.Duration(r.UserCookieTTL),
			UserCookieReuse:         time.Duration(r.UserCookieReuse),
			PostCookieTTL:           time.Duration(r.PostCookieTTL),
			AnonymousPostsPerMinute: r.AnonymousPostsPerMinute,
		},
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling from strings like "1h", "30s"
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return json.Unmarshal(b, (*time.Duration)(d))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
