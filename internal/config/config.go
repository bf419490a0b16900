// Package config loads service configuration from the environment.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/kelseyhightower/envconfig"
)

const configDirName = "rewind"

// Config holds the configuration for the Rewind service.
// Environment variables are parsed from the REWIND_ prefix.
type Config struct {
	// HTTP listen address.
	Addr string `envconfig:"ADDR" default:"127.0.0.1:8080"`

	// BlobPath is the SQLite file backing the local aggregate store.
	// Empty means <user config dir>/rewind/rewind.db.
	BlobPath string `envconfig:"BLOB_PATH" default:""`

	// PostgresDSN enables the remote capsule store when set.
	// When empty the service runs in local-only mode: favorites,
	// achievements and preferences work, capsules are disabled.
	PostgresDSN string `envconfig:"POSTGRES_DSN" default:""`

	// MirrorQueueSize bounds the outbound remote-write queue.
	MirrorQueueSize int `envconfig:"MIRROR_QUEUE_SIZE" default:"64"`

	// OAuth login provider. Login is disabled when ClientID is empty.
	OAuthClientID     string `envconfig:"OAUTH_CLIENT_ID" default:""`
	OAuthClientSecret string `envconfig:"OAUTH_CLIENT_SECRET" default:""`
	OAuthAuthURL      string `envconfig:"OAUTH_AUTH_URL" default:"https://accounts.google.com/o/oauth2/v2/auth"`
	OAuthTokenURL     string `envconfig:"OAUTH_TOKEN_URL" default:"https://oauth2.googleapis.com/token"`
	OAuthUserinfoURL  string `envconfig:"OAUTH_USERINFO_URL" default:"https://openidconnect.googleapis.com/v1/userinfo"`
	OAuthRedirectURL  string `envconfig:"OAUTH_REDIRECT_URL" default:"http://127.0.0.1:8080/callback"`
}

// Load parses configuration from the environment and resolves defaults.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("REWIND", &cfg); err != nil {
		return nil, fmt.Errorf("parsing environment: %w", err)
	}
	if err := cfg.ResolveDefaults(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// ResolveDefaults fills in values that depend on the host environment.
func (c *Config) ResolveDefaults() error {
	if c.BlobPath == "" {
		configDir, err := os.UserConfigDir()
		if err != nil {
			return fmt.Errorf("getting user config dir: %w", err)
		}
		c.BlobPath = filepath.Join(configDir, configDirName, "rewind.db")
	}
	if c.MirrorQueueSize <= 0 {
		c.MirrorQueueSize = 64
	}
	return nil
}

// LoginEnabled reports whether the OAuth login flow is configured.
func (c *Config) LoginEnabled() bool {
	return c.OAuthClientID != ""
}

// CapsulesEnabled reports whether the remote capsule store is configured.
func (c *Config) CapsulesEnabled() bool {
	return c.PostgresDSN != ""
}
