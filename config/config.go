package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all application configuration.
type Config struct {
	Server  ServerConfig  `mapstructure:"server"`
	Webhook WebhookConfig `mapstructure:"webhook"`
	Redis   RedisConfig   `mapstructure:"redis"`
	Log     LogConfig     `mapstructure:"log"`
}

type ServerConfig struct {
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	Mode            string        `mapstructure:"mode"` // debug, release, test
	MaxBodyBytes    int64         `mapstructure:"max_body_bytes"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
}

// Addr returns the listen address.
func (s ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

// WebhookConfig describes one signed webhook endpoint.
type WebhookConfig struct {
	Path            string        `mapstructure:"path"`
	SigningKey      string        `mapstructure:"signing_key"`
	TimestampHeader string        `mapstructure:"timestamp_header"`
	SignatureHeader string        `mapstructure:"signature_header"`
	MaxAge          time.Duration `mapstructure:"max_age"`
	// ReplayProtection remembers accepted signatures in Redis for MaxAge.
	ReplayProtection bool `mapstructure:"replay_protection"`
}

type RedisConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

// Addr returns the Redis address string.
func (r RedisConfig) Addr() string {
	return fmt.Sprintf("%s:%d", r.Host, r.Port)
}

type LogConfig struct {
	Level  string `mapstructure:"level"`  // debug, info, warn, error
	Pretty bool   `mapstructure:"pretty"` // human-readable output (dev only)
}

// Validate checks settings the service cannot start without.
func (c *Config) Validate() error {
	if c.Webhook.SigningKey == "" {
		return errors.New("webhook.signing_key is required")
	}
	if c.Webhook.MaxAge <= 0 {
		return fmt.Errorf("webhook.max_age must be positive, got %s", c.Webhook.MaxAge)
	}
	if !strings.HasPrefix(c.Webhook.Path, "/") {
		return fmt.Errorf("webhook.path must start with '/', got %q", c.Webhook.Path)
	}
	return nil
}

// Load reads configuration from file and environment variables.
// Environment variables override file values. Prefix: WHV_ (WebHook Verifier).
// Nested keys use underscore: WHV_WEBHOOK_SIGNING_KEY, WHV_REDIS_HOST, etc.
func Load(path string) (*Config, error) {
	v := viper.New()

	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.mode", "release")
	v.SetDefault("server.max_body_bytes", 1<<20)
	v.SetDefault("server.shutdown_timeout", "10s")
	v.SetDefault("webhook.path", "/webhooks/messagebird")
	v.SetDefault("webhook.signing_key", "")
	v.SetDefault("webhook.timestamp_header", "MessageBird-Request-Timestamp")
	v.SetDefault("webhook.signature_header", "MessageBird-Signature")
	v.SetDefault("webhook.max_age", "100s")
	v.SetDefault("webhook.replay_protection", false)
	v.SetDefault("redis.host", "localhost")
	v.SetDefault("redis.port", 6379)
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.pretty", false)

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
	}

	v.SetEnvPrefix("WHV")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// The file is optional; env vars can suffice.
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	return &cfg, nil
}
