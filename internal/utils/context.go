// Package utils holds small helpers shared by the client packages:
// context keys, JWT expiry decoding, the resty client wrapper, JSON response
// writing for test backends and identifier generation.
package utils

import (
	"context"
)

// contextKey is a private type for context keys.
type contextKey string

// String implements fmt.Stringer.
func (c contextKey) String() string {
	return string(c)
}

// AuthTokenCtxKey carries an explicit auth token for a single backend call.
// The adapter prefers it over the token installed with SetToken, which lets
// the startup sequence verify a stored token before it becomes the session
// token.
var AuthTokenCtxKey = contextKey("authToken")

// WithAuthToken returns a copy of ctx that carries token for the next
// backend call.
//
// Example usage:
//
//	me, err := adapter.Me(utils.WithAuthToken(ctx, storedToken))
func WithAuthToken(ctx context.Context, token string) context.Context {
	return context.WithValue(ctx, AuthTokenCtxKey, token)
}

// AuthTokenFromContext returns the token stored by WithAuthToken.
// ok is false when no token is present or it is empty.
func AuthTokenFromContext(ctx context.Context) (string, bool) {
	token, ok := ctx.Value(AuthTokenCtxKey).(string)
	if !ok || token == "" {
		return "", false
	}
	return token, true
}
