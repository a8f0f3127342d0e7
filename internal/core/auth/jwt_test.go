package auth

import (
	"strings"
	"testing"
	"time"
)

func testJWTer() *JWTer {
	return &JWTer{
		Secret:     []byte("test-secret"),
		Issuer:     "jobtrack-test",
		AccessTTL:  15 * time.Minute,
		RefreshTTL: 24 * time.Hour,
	}
}

func TestIssuePair_RoundTrip(t *testing.T) {
	j := testJWTer()
	pair, err := j.IssuePair(42, "hr", 3)
	if err != nil {
		t.Fatalf("IssuePair: %v", err)
	}

	c, err := j.Parse(pair.AccessToken)
	if err != nil {
		t.Fatalf("Parse(access): %v", err)
	}
	if c.UserID != 42 || c.Role != "hr" || c.TokenVersion != 3 || c.Type != TokenAccess {
		t.Errorf("access claims = %+v", c)
	}

	c, err = j.Parse(pair.RefreshToken)
	if err != nil {
		t.Fatalf("Parse(refresh): %v", err)
	}
	if c.Type != TokenRefresh {
		t.Errorf("refresh type = %s, want refresh", c.Type)
	}
	if c.Role != "" {
		t.Errorf("refresh token carries role %q, want empty", c.Role)
	}
	if c.UserID != 42 || c.TokenVersion != 3 {
		t.Errorf("refresh claims = %+v", c)
	}
}

func TestParse_WrongSecret(t *testing.T) {
	j := testJWTer()
	pair, err := j.IssuePair(1, "candidate", 1)
	if err != nil {
		t.Fatalf("IssuePair: %v", err)
	}

	other := testJWTer()
	other.Secret = []byte("different-secret")
	if _, err := other.Parse(pair.AccessToken); err == nil {
		t.Error("Parse with wrong secret expected error, got nil")
	}
}

func TestParse_WrongIssuer(t *testing.T) {
	j := testJWTer()
	pair, err := j.IssuePair(1, "candidate", 1)
	if err != nil {
		t.Fatalf("IssuePair: %v", err)
	}

	other := testJWTer()
	other.Issuer = "someone-else"
	if _, err := other.Parse(pair.AccessToken); err == nil {
		t.Error("Parse with wrong issuer expected error, got nil")
	}
}

func TestParse_Tampered(t *testing.T) {
	j := testJWTer()
	pair, err := j.IssuePair(1, "candidate", 1)
	if err != nil {
		t.Fatalf("IssuePair: %v", err)
	}

	parts := strings.Split(pair.AccessToken, ".")
	if len(parts) != 3 {
		t.Fatalf("token has %d parts", len(parts))
	}
	tampered := parts[0] + "." + parts[1] + "x." + parts[2]
	if _, err := j.Parse(tampered); err == nil {
		t.Error("Parse of tampered token expected error, got nil")
	}
}

func TestParse_Expired(t *testing.T) {
	j := testJWTer()
	j.AccessTTL = -5 * time.Minute // beyond the 60s leeway
	pair, err := j.IssuePair(1, "candidate", 1)
	if err != nil {
		t.Fatalf("IssuePair: %v", err)
	}
	if _, err := j.Parse(pair.AccessToken); err == nil {
		t.Error("Parse of expired token expected error, got nil")
	}
}
