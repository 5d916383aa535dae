// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"context"
	"testing"
)

func TestContextKeyString(t *testing.T) {
	if UserIDCtxKey.String() != "userID" {
		t.Errorf("expected 'userID', got '%s'", UserIDCtxKey.String())
	}
	if EmailCtxKey.String() != "email" {
		t.Errorf("expected 'email', got '%s'", EmailCtxKey.String())
	}
}

func TestWithIdentity(t *testing.T) {
	ctx := WithIdentity(context.Background(), "user-1", "alice@example.com")

	userID, ok := GetUserIDFromContext(ctx)
	if !ok || userID != "user-1" {
		t.Fatalf("expected user-1, got %q (ok=%v)", userID, ok)
	}

	email, ok := GetEmailFromContext(ctx)
	if !ok || email != "alice@example.com" {
		t.Fatalf("expected alice@example.com, got %q (ok=%v)", email, ok)
	}
}

func TestGetUserIDFromContext_Missing(t *testing.T) {
	if _, ok := GetUserIDFromContext(context.Background()); ok {
		t.Error("expected ok=false for missing key")
	}
}

func TestGetUserIDFromContext_WrongType(t *testing.T) {
	ctx := context.WithValue(context.Background(), UserIDCtxKey, int64(42))
	if _, ok := GetUserIDFromContext(ctx); ok {
		t.Error("expected ok=false for int64 value")
	}
}

func TestGetUserIDFromContext_Empty(t *testing.T) {
	ctx := context.WithValue(context.Background(), UserIDCtxKey, "")
	if _, ok := GetUserIDFromContext(ctx); ok {
		t.Error("expected ok=false for empty user ID")
	}
}
