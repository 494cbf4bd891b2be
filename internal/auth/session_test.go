package auth

import (
	"strings"
	"testing"
	"time"

	"procommunity/internal/domain"
)

func TestSessionTokenLifecycle(t *testing.T) {
	mgr, err := NewSessionManager("test-secret", "procommunity-test", 30*time.Minute)
	if err != nil {
		t.Fatalf("unexpected error creating manager: %v", err)
	}

	user := &domain.User{ID: 42, Name: "Priya Patel", IsAdmin: true}
	token, expiresAt, err := mgr.Issue(user)
	if err != nil {
		t.Fatalf("unexpected error issuing token: %v", err)
	}
	if token == "" {
		t.Fatal("expected non-empty token")
	}
	if expiresAt.Before(time.Now()) {
		t.Fatal("expected future expiry time")
	}

	claims, err := mgr.Parse(token)
	if err != nil {
		t.Fatalf("unexpected error parsing token: %v", err)
	}
	if claims.UserID != user.ID {
		t.Fatalf("expected user id %d, got %d", user.ID, claims.UserID)
	}
	if claims.UserName != user.Name {
		t.Fatalf("expected name %q, got %q", user.Name, claims.UserName)
	}
	if !claims.IsAdmin {
		t.Fatal("expected admin flag to survive the round trip")
	}
	if claims.ID == "" {
		t.Fatal("expected a token id")
	}
}

func TestSessionManagerRequiresSecret(t *testing.T) {
	if _, err := NewSessionManager("   ", "", time.Hour); err == nil {
		t.Fatal("expected error for empty secret")
	}
}

func TestSessionManagerRejectsForeignToken(t *testing.T) {
	issuer, _ := NewSessionManager("secret-one", "", time.Hour)
	verifier, _ := NewSessionManager("secret-two", "", time.Hour)

	token, _, err := issuer.Issue(&domain.User{ID: 1, Name: "A"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := verifier.Parse(token); err == nil {
		t.Fatal("expected token signed with another secret to be rejected")
	}
}

func TestSessionManagerRejectsExpiredToken(t *testing.T) {
	mgr, _ := NewSessionManager("test-secret", "", time.Hour)
	mgr.ttl = -time.Minute

	token, _, err := mgr.Issue(&domain.User{ID: 1, Name: "A"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := mgr.Parse(token); err == nil {
		t.Fatal("expected expired token to be rejected")
	}
}

func TestSessionManagerRejectsTamperedToken(t *testing.T) {
	mgr, _ := NewSessionManager("test-secret", "", time.Hour)

	token, _, err := mgr.Issue(&domain.User{ID: 1, Name: "A"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	parts := strings.Split(token, ".")
	if len(parts) != 3 {
		t.Fatalf("unexpected token shape: %q", token)
	}
	tampered := parts[0] + "." + parts[1] + "." + strings.Repeat("A", len(parts[2]))
	if _, err := mgr.Parse(tampered); err == nil {
		t.Fatal("expected tampered token to be rejected")
	}
}
