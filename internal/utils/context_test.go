// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"context"
	"testing"
)

func TestAuthTokenCtxKey(t *testing.T) {
	if AuthTokenCtxKey.String() != "authToken" {
		t.Errorf("expected 'authToken', got '%s'", AuthTokenCtxKey.String())
	}
}

func TestAuthTokenFromContext_Success(t *testing.T) {
	ctx := WithAuthToken(context.Background(), "tok")

	token, ok := AuthTokenFromContext(ctx)

	if !ok {
		t.Fatal("expected ok=true, got false")
	}
	if token != "tok" {
		t.Errorf("expected token 'tok', got '%s'", token)
	}
}

func TestAuthTokenFromContext_Missing(t *testing.T) {
	token, ok := AuthTokenFromContext(context.Background())

	if ok {
		t.Fatal("expected ok=false, got true")
	}
	if token != "" {
		t.Errorf("expected empty token, got '%s'", token)
	}
}

func TestAuthTokenFromContext_Empty(t *testing.T) {
	ctx := WithAuthToken(context.Background(), "")

	if _, ok := AuthTokenFromContext(ctx); ok {
		t.Fatal("expected ok=false for empty token, got true")
	}
}

func TestAuthTokenFromContext_WrongType(t *testing.T) {
	ctx := context.WithValue(context.Background(), AuthTokenCtxKey, 42)

	if _, ok := AuthTokenFromContext(ctx); ok {
		t.Fatal("expected ok=false for wrong type, got true")
	}
}

func TestAuthTokenFromContext_DifferentKey(t *testing.T) {
	ctx := context.WithValue(context.Background(), contextKey("other"), "tok")

	if _, ok := AuthTokenFromContext(ctx); ok {
		t.Fatal("expected ok=false for different key, got true")
	}
}
