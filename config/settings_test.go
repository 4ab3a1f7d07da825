package config

import (
	"testing"
	"time"
)

func TestLoadSettings_Defaults(t *testing.T) {
	s := LoadSettings()

	if s.Port != "8080" {
		t.Errorf("Port = %q, want 8080", s.Port)
	}
	if s.DatabaseName != "campus_connect" {
		t.Errorf("DatabaseName = %q, want campus_connect", s.DatabaseName)
	}
	if s.IntentTTL != 48*time.Hour {
		t.Errorf("IntentTTL = %v, want 48h", s.IntentTTL)
	}
	if s.MinMatchScore != 20 {
		t.Errorf("MinMatchScore = %v, want 20", s.MinMatchScore)
	}
	if s.MaxCandidates != 10 {
		t.Errorf("MaxCandidates = %v, want 10", s.MaxCandidates)
	}
	if len(s.CORSOrigins) != 1 || s.CORSOrigins[0] != "*" {
		t.Errorf("CORSOrigins = %v, want [*]", s.CORSOrigins)
	}
}

func TestLoadSettings_EnvOverrides(t *testing.T) {
	t.Setenv("PORT", "9000")
	t.Setenv("INTENT_EXPIRATION_HOURS", "12")
	t.Setenv("MIN_MATCH_SCORE", "35")
	t.Setenv("CORS_ORIGINS", "https://a.example, https://b.example")

	s := LoadSettings()

	if s.Port != "9000" {
		t.Errorf("Port = %q, want 9000", s.Port)
	}
	if s.IntentTTL != 12*time.Hour {
		t.Errorf("IntentTTL = %v, want 12h", s.IntentTTL)
	}
	if s.MinMatchScore != 35 {
		t.Errorf("MinMatchScore = %v, want 35", s.MinMatchScore)
	}
	if len(s.CORSOrigins) != 2 || s.CORSOrigins[1] != "https://b.example" {
		t.Errorf("CORSOrigins = %v", s.CORSOrigins)
	}
}

func TestLoadSettings_BadIntFallsBack(t *testing.T) {
	t.Setenv("INTENT_EXPIRATION_HOURS", "soon")

	s := LoadSettings()
	if s.IntentTTL != 48*time.Hour {
		t.Errorf("IntentTTL = %v, want default 48h on malformed value", s.IntentTTL)
	}
}
