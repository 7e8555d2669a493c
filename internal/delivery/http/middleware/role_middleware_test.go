package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"pms-backend/internal/domain/entity"
)

func requestWithRole(roleID int) *http.Request {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	ctx := context.WithValue(req.Context(), RoleIDKey, roleID)
	return req.WithContext(ctx)
}

func TestRequireRoleAllowsMatchingRole(t *testing.T) {
	called := false
	handler := RequireRole(entity.RoleIDDoctor)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, requestWithRole(entity.RoleIDDoctor))

	if !called {
		t.Fatal("expected handler to be called")
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}
}

func TestRequireRoleRejectsOtherRole(t *testing.T) {
	handler := RequireRole(entity.RoleIDAdmin)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler must not be called")
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, requestWithRole(entity.RoleIDPatient))

	if rec.Code != http.StatusForbidden {
		t.Fatalf("expected status 403, got %d", rec.Code)
	}
}

func TestRequireRoleRejectsMissingRole(t *testing.T) {
	handler := RequireRole(entity.RoleIDAdmin)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler must not be called")
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected status 401, got %d", rec.Code)
	}
}

func TestRequireRoleAllowsAnyOfSeveral(t *testing.T) {
	handler := RequireRole(entity.RoleIDAdmin, entity.RoleIDDoctor)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, requestWithRole(entity.RoleIDDoctor))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}
}
