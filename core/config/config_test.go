package config

import "testing"

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("MEET_MEETING_ID", "m-1")
	t.Setenv("MEET_ATTENDEE_ID", "att-1")
	t.Setenv("MEET_EXTERNAL_USER_ID", "ext-1")
	t.Setenv("MEET_JOIN_TOKEN", "jt-1")
	t.Setenv("MEET_ANALYTICS_INGEST_URL", "wss://ingest.example.com/v1/events")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("expected configuration to load, got %v", err)
	}

	if cfg.MeetingID != "m-1" || cfg.AttendeeID != "att-1" || cfg.ExternalUserID != "ext-1" {
		t.Fatalf("expected identity fields from the environment, got %+v", cfg)
	}
	if cfg.JoinToken != "jt-1" {
		t.Fatalf("expected join token from the environment, got %q", cfg.JoinToken)
	}
	if cfg.AnalyticsIngestURL != "wss://ingest.example.com/v1/events" {
		t.Fatalf("expected analytics ingest url, got %q", cfg.AnalyticsIngestURL)
	}
	if cfg.Region != "us-east-1" {
		t.Fatalf("expected the default region, got %q", cfg.Region)
	}
}

func TestLoadRequiresAttendeeID(t *testing.T) {
	t.Setenv("MEET_ATTENDEE_ID", "")

	if _, err := Load(); err == nil {
		t.Fatalf("expected an error for a missing attendee id")
	}
}
