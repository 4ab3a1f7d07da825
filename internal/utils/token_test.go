package utils

import (
	"testing"
	"time"
)

func TestSignAndParseToken(t *testing.T) {
	token, err := SignToken("test-secret", "user-123", time.Minute)
	if err != nil {
		t.Fatalf("SignToken: %v", err)
	}

	userID, err := ParseToken("test-secret", token)
	if err != nil {
		t.Fatalf("ParseToken: %v", err)
	}
	if userID != "user-123" {
		t.Errorf("subject = %q, want user-123", userID)
	}
}

func TestParseToken_WrongSecret(t *testing.T) {
	token, err := SignToken("test-secret", "user-123", time.Minute)
	if err != nil {
		t.Fatalf("SignToken: %v", err)
	}
	if _, err := ParseToken("other-secret", token); err == nil {
		t.Error("expected error for wrong secret")
	}
}

func TestParseToken_Expired(t *testing.T) {
	token, err := SignToken("test-secret", "user-123", -time.Minute)
	if err != nil {
		t.Fatalf("SignToken: %v", err)
	}
	if _, err := ParseToken("test-secret", token); err == nil {
		t.Error("expected error for expired token")
	}
}
