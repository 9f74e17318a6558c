package config

import "testing"

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Port != 8080 {
		t.Errorf("Port = %d, want 8080", cfg.Port)
	}
	if cfg.LogLevel != "info" {
		t.Errorf("LogLevel = %q, want info", cfg.LogLevel)
	}
	if cfg.MatchThreshold != 0.6 {
		t.Errorf("MatchThreshold = %v, want 0.6", cfg.MatchThreshold)
	}
	if len(cfg.AllowedOrigins) != 1 || cfg.AllowedOrigins[0] != "http://localhost:3000" {
		t.Errorf("AllowedOrigins = %v", cfg.AllowedOrigins)
	}
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("OFP_PORT", "9090")
	t.Setenv("OFP_LOG_LEVEL", "debug")
	t.Setenv("OFP_ODDS_API_KEY", "odds-key")
	t.Setenv("OFP_MATCH_THRESHOLD", "0.75")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Port != 9090 {
		t.Errorf("Port = %d, want 9090", cfg.Port)
	}
	if cfg.LogLevel != "debug" {
		t.Errorf("LogLevel = %q, want debug", cfg.LogLevel)
	}
	if cfg.OddsAPIKey != "odds-key" {
		t.Errorf("OddsAPIKey = %q, want odds-key", cfg.OddsAPIKey)
	}
	if cfg.MatchThreshold != 0.75 {
		t.Errorf("MatchThreshold = %v, want 0.75", cfg.MatchThreshold)
	}
}
