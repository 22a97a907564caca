package utils

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ErrTokenHasNoExpiry is returned by ParseTokenExpiry when the token carries
// no "exp" claim.
var ErrTokenHasNoExpiry = errors.New("token has no expiry claim")

// ParseTokenExpiry decodes the "exp" claim of a JWT without verifying its
// signature. The client never holds the signing key; the expiry is only
// used to skip a server round trip for tokens that are obviously stale.
//
// Returns an error if the token is malformed or carries no expiry.
func ParseTokenExpiry(tokenString string) (time.Time, error) {
	tokenString = strings.TrimSpace(tokenString)
	if tokenString == "" {
		return time.Time{}, errors.New("empty token")
	}

	token, _, err := jwt.NewParser().ParseUnverified(tokenString, jwt.MapClaims{})
	if err != nil {
		return time.Time{}, fmt.Errorf("decode token claims: %w", err)
	}

	exp, err := token.Claims.GetExpirationTime()
	if err != nil {
		return time.Time{}, fmt.Errorf("read expiry claim: %w", err)
	}
	if exp == nil {
		return time.Time{}, ErrTokenHasNoExpiry
	}

	return exp.Time, nil
}

// IsTokenUsable reports whether tokenString can be decoded and its expiry
// lies strictly after now. Undecodable tokens and tokens without an expiry
// are treated as expired.
func IsTokenUsable(tokenString string, now time.Time) bool {
	exp, err := ParseTokenExpiry(tokenString)
	if err != nil {
		return false
	}
	return exp.After(now)
}

// GenerateJWTToken creates a signed HMAC-SHA256 JWT with the given subject
// and lifetime. A negative duration yields an already-expired token.
// Test fixture: the backend issues the real tokens and the client only reads
// their expiry.
//
// All string parameters are required.
//
// Example usage:
//
//	token, err := utils.GenerateJWTToken("sales-backend", "42", time.Hour, "secret")
func GenerateJWTToken(issuer, subject string, tokenDuration time.Duration, signKey string) (string, error) {
	if issuer == "" || subject == "" || signKey == "" {
		return "", errors.New("invalid params for generating JWT Token")
	}

	now := time.Now()
	claims := &jwt.RegisteredClaims{
		Issuer:    issuer,
		Subject:   subject,
		ExpiresAt: jwt.NewNumericDate(now.Add(tokenDuration)),
		IssuedAt:  jwt.NewNumericDate(now),
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(signKey))
	if err != nil {
		return "", fmt.Errorf("error occurred during singing JWT token: %w", err)
	}
	return signed, nil
}
