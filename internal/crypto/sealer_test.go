package crypto

import (
	"encoding/base64"
	"errors"
	"testing"
)

func newTestSealer(t *testing.T, secret string) TokenSealer {
	t.Helper()
	s, err := NewTokenSealer(secret)
	if err != nil {
		t.Fatalf("NewTokenSealer error: %v", err)
	}
	return s
}

func TestNewTokenSealer_EmptySecret(t *testing.T) {
	if _, err := NewTokenSealer(""); !errors.Is(err, ErrEmptySecret) {
		t.Fatalf("expected ErrEmptySecret, got %v", err)
	}
}

func TestSealOpen_RoundTrip(t *testing.T) {
	s := newTestSealer(t, "local-secret")

	sealed, err := s.Seal("eyJhbGciOiJIUzI1NiJ9.payload.sig")
	if err != nil {
		t.Fatalf("Seal error: %v", err)
	}
	if sealed == "eyJhbGciOiJIUzI1NiJ9.payload.sig" {
		t.Fatal("sealed value must differ from plaintext")
	}

	opened, err := s.Open(sealed)
	if err != nil {
		t.Fatalf("Open error: %v", err)
	}
	if opened != "eyJhbGciOiJIUzI1NiJ9.payload.sig" {
		t.Fatalf("Open = %q, want original token", opened)
	}
}

func TestSeal_FreshSaltEveryCall(t *testing.T) {
	s := newTestSealer(t, "local-secret")

	a, _ := s.Seal("token")
	b, _ := s.Seal("token")

	if a == b {
		t.Fatal("expected different sealed values for the same plaintext")
	}
}

func TestOpen_WrongSecret(t *testing.T) {
	sealed, err := newTestSealer(t, "secret-a").Seal("token")
	if err != nil {
		t.Fatalf("Seal error: %v", err)
	}

	_, err = newTestSealer(t, "secret-b").Open(sealed)
	if !errors.Is(err, ErrSealedValueCorrupted) {
		t.Fatalf("expected ErrSealedValueCorrupted, got %v", err)
	}
}

func TestOpen_Corrupted(t *testing.T) {
	s := newTestSealer(t, "local-secret")
	sealed, _ := s.Seal("token")
	raw, _ := base64.StdEncoding.DecodeString(sealed)
	raw[len(raw)-1] ^= 0xFF

	cases := map[string]string{
		"not base64":    "%%%",
		"too short":     base64.StdEncoding.EncodeToString([]byte("short")),
		"no ciphertext": base64.StdEncoding.EncodeToString(make([]byte, saltSize+4)),
		"tampered":      base64.StdEncoding.EncodeToString(raw),
	}

	for name, value := range cases {
		t.Run(name, func(t *testing.T) {
			if _, err := s.Open(value); !errors.Is(err, ErrSealedValueCorrupted) {
				t.Fatalf("expected ErrSealedValueCorrupted, got %v", err)
			}
		})
	}
}
