package token

import (
	"errors"
	"testing"
	"time"
)

func TestIssueAndVerify(t *testing.T) {
	svc := NewService("test-secret", time.Hour)

	signed, err := svc.Issue(map[string]any{"email": "resident@edifica.test"})
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	id, err := svc.Verify(signed)
	if err != nil {
		t.Fatalf("verify: %v", err)
	}
	if id.Email != "resident@edifica.test" {
		t.Fatalf("expected claim email, got %q", id.Email)
	}
}

func TestIssueTwiceSameClaim(t *testing.T) {
	svc := NewService("test-secret", time.Hour)
	claim := map[string]any{"email": "resident@edifica.test"}

	first, err := svc.Issue(claim)
	if err != nil {
		t.Fatalf("first issue: %v", err)
	}
	second, err := svc.Issue(claim)
	if err != nil {
		t.Fatalf("second issue: %v", err)
	}

	for _, signed := range []string{first, second} {
		id, err := svc.Verify(signed)
		if err != nil {
			t.Fatalf("verify: %v", err)
		}
		if id.Email != "resident@edifica.test" {
			t.Fatalf("expected claim email, got %q", id.Email)
		}
	}
}

func TestVerifyExpired(t *testing.T) {
	svc := NewService("test-secret", -time.Minute)

	signed, err := svc.Issue(map[string]any{"email": "resident@edifica.test"})
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	if _, err := svc.Verify(signed); !errors.Is(err, ErrExpiredCredential) {
		t.Fatalf("expected ErrExpiredCredential, got %v", err)
	}
}

func TestVerifyWrongSecret(t *testing.T) {
	issuer := NewService("secret-a", time.Hour)
	verifier := NewService("secret-b", time.Hour)

	signed, err := issuer.Issue(map[string]any{"email": "resident@edifica.test"})
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	if _, err := verifier.Verify(signed); !errors.Is(err, ErrForgedCredential) {
		t.Fatalf("expected ErrForgedCredential, got %v", err)
	}
}

func TestVerifyGarbage(t *testing.T) {
	svc := NewService("test-secret", time.Hour)

	if _, err := svc.Verify("not-a-token"); !errors.Is(err, ErrMalformedCredential) {
		t.Fatalf("expected ErrMalformedCredential, got %v", err)
	}
}
