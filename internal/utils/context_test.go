// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"context"
	"testing"

	"github.com/valyan/clinic-manager/models"
)

func TestContextKeyString(t *testing.T) {
	key := contextKey("testKey")
	if key.String() != "testKey" {
		t.Errorf("expected 'testKey', got '%s'", key.String())
	}
}

func TestPrincipalCtxKey(t *testing.T) {
	if PrincipalCtxKey.String() != "principal" {
		t.Errorf("expected 'principal', got '%s'", PrincipalCtxKey.String())
	}
}

func TestGetPrincipalFromContext_Success(t *testing.T) {
	want := models.Principal{UserID: "u-1", Username: "admin"}
	ctx := WithPrincipal(context.Background(), want)

	got, ok := GetPrincipalFromContext(ctx)

	if !ok {
		t.Fatal("expected ok=true, got false")
	}
	if got != want {
		t.Errorf("expected %+v, got %+v", want, got)
	}
}

func TestGetPrincipalFromContext_Missing(t *testing.T) {
	got, ok := GetPrincipalFromContext(context.Background())

	if ok {
		t.Fatal("expected ok=false, got true")
	}
	if got != (models.Principal{}) {
		t.Errorf("expected zero principal, got %+v", got)
	}
}

func TestGetPrincipalFromContext_WrongType(t *testing.T) {
	ctx := context.WithValue(context.Background(), PrincipalCtxKey, "not-a-principal")

	if _, ok := GetPrincipalFromContext(ctx); ok {
		t.Fatal("expected ok=false for wrong type, got true")
	}
}

func TestGetPrincipalFromContext_EmptyUserID(t *testing.T) {
	ctx := WithPrincipal(context.Background(), models.Principal{Username: "ghost"})

	if _, ok := GetPrincipalFromContext(ctx); ok {
		t.Fatal("expected ok=false for principal without user id, got true")
	}
}

func TestGetPrincipalFromContext_DifferentKey(t *testing.T) {
	ctx := context.WithValue(context.Background(), contextKey("otherKey"), models.Principal{UserID: "u-1"})

	if _, ok := GetPrincipalFromContext(ctx); ok {
		t.Fatal("expected ok=false for different key, got true")
	}
}

func TestGetTokenFromContext(t *testing.T) {
	ctx := WithToken(context.Background(), "abc.def.ghi")

	token, ok := GetTokenFromContext(ctx)
	if !ok || token != "abc.def.ghi" {
		t.Errorf("expected token 'abc.def.ghi', got '%s' (ok=%v)", token, ok)
	}

	if _, ok = GetTokenFromContext(WithToken(context.Background(), "")); ok {
		t.Error("expected ok=false for empty token")
	}
}
