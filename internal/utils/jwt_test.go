package utils

import (
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func TestGenerateJWTToken_Success(t *testing.T) {
	token, err := GenerateJWTToken("test-issuer", "123", time.Hour, "secret-key")
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}

	claims := &jwt.RegisteredClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(*jwt.Token) (any, error) {
		return []byte("secret-key"), nil
	})
	if err != nil || !parsed.Valid {
		t.Fatalf("expected valid token, got err=%v", err)
	}
	if claims.Subject != "123" {
		t.Errorf("expected subject '123', got %s", claims.Subject)
	}
}

func TestGenerateJWTToken_InvalidParams(t *testing.T) {
	tests := []struct {
		name    string
		issuer  string
		subject string
		key     string
	}{
		{"empty issuer", "", "1", "key"},
		{"empty subject", "iss", "", "key"},
		{"empty key", "iss", "1", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := GenerateJWTToken(tt.issuer, tt.subject, time.Hour, tt.key); err == nil {
				t.Fatal("expected error, got nil")
			}
		})
	}
}

func TestParseTokenExpiry(t *testing.T) {
	token, err := GenerateJWTToken("iss", "1", time.Hour, "key")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	exp, err := ParseTokenExpiry(token)
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if d := time.Until(exp); d < 59*time.Minute || d > time.Hour+time.Minute {
		t.Errorf("unexpected expiry %s", exp)
	}
}

func TestParseTokenExpiry_NoExpiry(t *testing.T) {
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"sub": "1"}).SignedString([]byte("key"))
	if err != nil {
		t.Fatalf("sign: %v", err)
	}

	_, err = ParseTokenExpiry(token)
	if !errors.Is(err, ErrTokenHasNoExpiry) {
		t.Errorf("expected ErrTokenHasNoExpiry, got %v", err)
	}
}

func TestParseTokenExpiry_Malformed(t *testing.T) {
	for _, token := range []string{"", "   ", "not-a-jwt", "a.b.c"} {
		if _, err := ParseTokenExpiry(token); err == nil {
			t.Errorf("expected error for %q", token)
		}
	}
}

func TestIsTokenUsable(t *testing.T) {
	now := time.Now()
	valid, _ := GenerateJWTToken("iss", "1", time.Hour, "key")
	expired, _ := GenerateJWTToken("iss", "1", -time.Minute, "key")

	if !IsTokenUsable(valid, now) {
		t.Error("expected fresh token to be usable")
	}
	if IsTokenUsable(expired, now) {
		t.Error("expected expired token to be unusable")
	}
	if IsTokenUsable(valid, now.Add(2*time.Hour)) {
		t.Error("expected token to be unusable after its expiry")
	}
	if IsTokenUsable("garbage", now) {
		t.Error("expected garbage to be unusable")
	}
}
