// Package config provides configuration management for the marquee service.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/spf13/viper"

	"venue-marquee/internal/lineup"
)

// DefaultVenueID is the venue the listing is scoped to when no other
// venue is configured.
const DefaultVenueID = "KovZpZA6AJdA"

// Config holds all application configuration.
type Config struct {
	Venue       VenueConfig   `mapstructure:"venue"`
	Server      ServerConfig  `mapstructure:"server"`
	Digest      DigestConfig  `mapstructure:"digest"`
	Notify      NotifyConfig  `mapstructure:"notifications"`
	Logging     LoggingConfig `mapstructure:"logging"`
	Credentials Credentials   `mapstructure:"-"` // Loaded from environment
}

// VenueConfig holds the venue scope and display-filtering settings.
type VenueConfig struct {
	ID               string   `mapstructure:"id"`
	Timezone         string   `mapstructure:"timezone"`
	ExcludedPrefixes []string `mapstructure:"excluded_prefixes"`
}

// ServerConfig holds the kiosk HTTP server configuration.
type ServerConfig struct {
	Listen string `mapstructure:"listen"`
}

// DigestConfig holds the daily digest configuration.
type DigestConfig struct {
	// Schedule is a cron spec evaluated in the venue timezone.
	// Empty disables scheduled digests.
	Schedule string `mapstructure:"schedule"`
}

// NotifyConfig holds notification channel configuration.
type NotifyConfig struct {
	SNS     SNSConfig     `mapstructure:"sns"`
	Webhook WebhookConfig `mapstructure:"webhook"`
}

// SNSConfig holds the SNS publish target.
type SNSConfig struct {
	TopicARN string `mapstructure:"topic_arn"`
	Region   string `mapstructure:"region"`
}

// WebhookConfig holds webhook notification configuration.
type WebhookConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	URL     string `mapstructure:"url"`
}

// LoggingConfig holds logging configuration.
type LoggingConfig struct {
	Level string `mapstructure:"level"`
	File  bool   `mapstructure:"file"`
}

// Credentials holds API credentials. They are supplied via the
// environment only and never written to the config file.
type Credentials struct {
	TicketmasterAPIKey string
}

// DefaultConfigDir returns the default configuration directory.
func DefaultConfigDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".config/venue-marquee"
	}
	return filepath.Join(home, ".config", "venue-marquee")
}

// Load loads configuration from the specified directory.
// If configDir is empty, uses the default config directory.
// A missing config file is not an error: defaults plus environment
// overrides are enough to run.
func Load(configDir string) (*Config, error) {
	if configDir == "" {
		configDir = DefaultConfigDir()
	}

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("toml")
	v.AddConfigPath(configDir)

	v.SetDefault("venue.id", DefaultVenueID)
	v.SetDefault("venue.timezone", "")
	v.SetDefault("venue.excluded_prefixes", lineup.DefaultExcludedPrefixes)
	v.SetDefault("server.listen", ":8080")
	v.SetDefault("digest.schedule", "")
	v.SetDefault("notifications.sns.topic_arn", "")
	v.SetDefault("notifications.sns.region", "")
	v.SetDefault("notifications.webhook.enabled", false)
	v.SetDefault("notifications.webhook.url", "")
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.file", true)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("loading config.toml: %w", err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	applyEnvOverrides(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	return cfg, nil
}

// applyEnvOverrides applies the recognized environment variables.
// A missing variable leaves the component it configures disabled; it
// never fails the load.
func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("TICKETMASTER_API_KEY"); v != "" {
		cfg.Credentials.TicketmasterAPIKey = v
	}
	if v := os.Getenv("SNS_TOPIC_ARN"); v != "" {
		cfg.Notify.SNS.TopicARN = v
	}
	if v := os.Getenv("AWS_REGION"); v != "" && cfg.Notify.SNS.Region == "" {
		cfg.Notify.SNS.Region = v
	}
	if v := os.Getenv("MARQUEE_VENUE_ID"); v != "" {
		cfg.Venue.ID = v
	}
	if v := os.Getenv("MARQUEE_LISTEN"); v != "" {
		cfg.Server.Listen = v
	}
}

// Validate validates the configuration. Missing credentials are not
// validation failures: the presenters degrade per their contracts.
func (c *Config) Validate() error {
	if c.Venue.ID == "" {
		return fmt.Errorf("venue.id must not be empty")
	}
	if c.Server.Listen == "" {
		return fmt.Errorf("server.listen must not be empty")
	}
	if c.Venue.Timezone != "" {
		if _, err := time.LoadLocation(c.Venue.Timezone); err != nil {
			return fmt.Errorf("invalid venue.timezone %q: %w", c.Venue.Timezone, err)
		}
	}
	if c.Digest.Schedule != "" {
		if _, err := cron.ParseStandard(c.Digest.Schedule); err != nil {
			return fmt.Errorf("invalid digest.schedule %q: %w", c.Digest.Schedule, err)
		}
	}
	if c.Notify.Webhook.Enabled && c.Notify.Webhook.URL == "" {
		return fmt.Errorf("notifications.webhook.url required when webhook is enabled")
	}
	return nil
}

// Location resolves the configured venue timezone, falling back to
// the process-local zone.
func (c *Config) Location() *time.Location {
	if c.Venue.Timezone == "" {
		return time.Local
	}
	loc, err := time.LoadLocation(c.Venue.Timezone)
	if err != nil {
		return time.Local
	}
	return loc
}
