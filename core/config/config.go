// Package config loads the read-only meeting configuration and credentials
// the session core is constructed with.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// MeetingConfiguration carries the join credentials and collaborator
// endpoints for one meeting session. It is read once at construction and
// never written by the core.
type MeetingConfiguration struct {
	MeetingID      string `mapstructure:"meeting_id"`
	AttendeeID     string `mapstructure:"attendee_id"`
	ExternalUserID string `mapstructure:"external_user_id"`
	JoinToken      string `mapstructure:"join_token"`
	Region         string `mapstructure:"region"`

	AnalyticsIngestURL string `mapstructure:"analytics_ingest_url"`
	AnalyticsToken     string `mapstructure:"analytics_token"`
}

// Load reads the meeting configuration from an optional meeting.yaml plus
// MEET_-prefixed environment variables, with a .env preload when present.
func Load() (*MeetingConfiguration, error) {
	// Missing .env is the normal case outside local development.
	_ = godotenv.Load()

	v := viper.New()
	v.SetConfigName("meeting")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")

	v.SetEnvPrefix("MEET")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("region", "us-east-1")

	for _, key := range []string{
		"meeting_id", "attendee_id", "external_user_id", "join_token",
		"region", "analytics_ingest_url", "analytics_token",
	} {
		if err := v.BindEnv(key); err != nil {
			return nil, fmt.Errorf("failed to bind %s: %w", key, err)
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read meeting configuration: %w", err)
		}
	}

	var cfg MeetingConfiguration
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse meeting configuration: %w", err)
	}

	if cfg.AttendeeID == "" {
		return nil, fmt.Errorf("meeting configuration is missing the attendee id")
	}

	return &cfg, nil
}
