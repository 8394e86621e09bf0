package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/MediBookLabs/clinic-scheduler/internal/audit"
	"github.com/MediBookLabs/clinic-scheduler/internal/config"
)

type fakeRoles struct {
	roles map[string]string
}

func (f fakeRoles) RoleByEmail(_ context.Context, email string) (string, error) {
	role, ok := f.roles[email]
	if !ok {
		return "", gorm.ErrRecordNotFound
	}
	return role, nil
}

// The promote branch must be rejected by the guards before any
// database work happens, so a nil *gorm.DB is safe here.
func newUserRouter(t *testing.T, roles fakeRoles) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cfg := &config.Config{JWTSecret: testSecret, TokenTTL: time.Hour}
	h := NewUserHandler(nil, cfg, roles, audit.NewDispatcher(noopSink{}, zap.NewNop()))

	r := gin.New()
	r.PUT("/user/*rest", h.UpsertOrPromote)
	return r
}

func TestPromoteToAdminRequiresCredentials(t *testing.T) {
	r := newUserRouter(t, fakeRoles{})

	req := httptest.NewRequest(http.MethodPut, "/user/admin/target@example.com", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 with no header, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "Unauthorized access!") {
		t.Errorf("expected canonical 401 message, got %s", w.Body.String())
	}
}

func TestPromoteToAdminRejectsNonAdmin(t *testing.T) {
	roles := fakeRoles{roles: map[string]string{"patient@example.com": ""}}
	r := newUserRouter(t, roles)

	req := httptest.NewRequest(http.MethodPut, "/user/admin/target@example.com", nil)
	req.Header.Set("Authorization", bearer(t, "patient@example.com"))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusForbidden {
		t.Fatalf("expected 403 for non-admin caller, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "Forbidden access!") {
		t.Errorf("expected canonical 403 message, got %s", w.Body.String())
	}
}

func TestPromoteToAdminRejectsUnknownCaller(t *testing.T) {
	r := newUserRouter(t, fakeRoles{})

	req := httptest.NewRequest(http.MethodPut, "/user/admin/target@example.com", nil)
	req.Header.Set("Authorization", bearer(t, "ghost@example.com"))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusForbidden {
		t.Fatalf("expected 403 for caller with no user record, got %d", w.Code)
	}
}

func TestUpsertRejectsEmptyEmail(t *testing.T) {
	r := newUserRouter(t, fakeRoles{})

	req := httptest.NewRequest(http.MethodPut, "/user/", strings.NewReader(`{}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for empty email, got %d", w.Code)
	}
}
