// Package config loads runtime configuration from the environment (prefix
// MARKET_) with an optional YAML file on top. Secrets are never defaulted:
// the process refuses to start without the JWT secret and the two admin
// credential hashes.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server    ServerConfig
	Data      DataConfig
	Auth      AuthConfig
	RateLimit RateLimitConfig
	Static    StaticConfig
}

type ServerConfig struct {
	Port      int
	BodyLimit int64
}

type DataConfig struct {
	Dir string
}

type AuthConfig struct {
	JWTSecret         string
	AdminUsernameHash string
	AdminPasswordHash string
	TokenTTL          time.Duration
}

type RateLimitConfig struct {
	Requests    int
	Window      time.Duration
	LoginLimit  int
	LoginWindow time.Duration
}

type StaticConfig struct {
	PublicDir string
	AdminDir  string
}

// Load reads MARKET_* environment variables, optionally merged over the
// YAML file named by MARKET_CONFIG.
func Load() (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix("MARKET")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("server.port", 3000)
	v.SetDefault("server.body_limit", 1<<20)
	v.SetDefault("data.dir", "data")
	v.SetDefault("auth.token_ttl", 2*time.Hour)
	v.SetDefault("ratelimit.requests", 240)
	v.SetDefault("ratelimit.window", time.Minute)
	v.SetDefault("ratelimit.login_limit", 25)
	v.SetDefault("ratelimit.login_window", 15*time.Minute)
	v.SetDefault("static.public_dir", "")
	v.SetDefault("static.admin_dir", "")

	if path := v.GetString("config"); path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config file: %w", err)
		}
	}

	cfg := &Config{
		Server: ServerConfig{
			Port:      v.GetInt("server.port"),
			BodyLimit: v.GetInt64("server.body_limit"),
		},
		Data: DataConfig{
			Dir: v.GetString("data.dir"),
		},
		Auth: AuthConfig{
			JWTSecret:         v.GetString("auth.jwt_secret"),
			AdminUsernameHash: v.GetString("auth.admin_username_hash"),
			AdminPasswordHash: v.GetString("auth.admin_password_hash"),
			TokenTTL:          v.GetDuration("auth.token_ttl"),
		},
		RateLimit: RateLimitConfig{
			Requests:    v.GetInt("ratelimit.requests"),
			Window:      v.GetDuration("ratelimit.window"),
			LoginLimit:  v.GetInt("ratelimit.login_limit"),
			LoginWindow: v.GetDuration("ratelimit.login_window"),
		},
		Static: StaticConfig{
			PublicDir: v.GetString("static.public_dir"),
			AdminDir:  v.GetString("static.admin_dir"),
		},
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	var missing []string
	if c.Auth.JWTSecret == "" {
		missing = append(missing, "MARKET_AUTH_JWT_SECRET")
	}
	if c.Auth.AdminUsernameHash == "" {
		missing = append(missing, "MARKET_AUTH_ADMIN_USERNAME_HASH")
	}
	if c.Auth.AdminPasswordHash == "" {
		missing = append(missing, "MARKET_AUTH_ADMIN_PASSWORD_HASH")
	}
	if len(missing) > 0 {
		return fmt.Errorf("missing required configuration: %s", strings.Join(missing, ", "))
	}
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server port %d", c.Server.Port)
	}
	if c.Auth.TokenTTL <= 0 {
		return fmt.Errorf("token ttl must be positive, got %s", c.Auth.TokenTTL)
	}
	return nil
}
