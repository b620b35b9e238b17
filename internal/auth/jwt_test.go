package auth

import (
	"testing"
	"time"
)

func TestAccessTokenRoundTrip(t *testing.T) {
	token, err := CreateAccessToken("secret", "alice", time.Minute)
	if err != nil {
		t.Fatalf("create token: %v", err)
	}

	subject, err := ParseAccessToken("secret", token)
	if err != nil {
		t.Fatalf("parse token: %v", err)
	}
	if subject != "alice" {
		t.Errorf("subject = %q, want %q", subject, "alice")
	}
}

func TestExpiredTokenRejected(t *testing.T) {
	token, err := CreateAccessToken("secret", "alice", -time.Minute)
	if err != nil {
		t.Fatalf("create token: %v", err)
	}

	if _, err := ParseAccessToken("secret", token); err != ErrInvalidToken {
		t.Fatalf("expected ErrInvalidToken for expired token, got %v", err)
	}
}

func TestWrongSecretRejected(t *testing.T) {
	token, err := CreateAccessToken("secret", "alice", time.Minute)
	if err != nil {
		t.Fatalf("create token: %v", err)
	}

	if _, err := ParseAccessToken("other-secret", token); err != ErrInvalidToken {
		t.Fatalf("expected ErrInvalidToken for wrong secret, got %v", err)
	}
}

func TestGarbageTokenRejected(t *testing.T) {
	if _, err := ParseAccessToken("secret", "not.a.jwt"); err != ErrInvalidToken {
		t.Fatalf("expected ErrInvalidToken for garbage input, got %v", err)
	}
}
