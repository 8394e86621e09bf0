package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/MediBookLabs/clinic-scheduler/internal/auth"
	"github.com/MediBookLabs/clinic-scheduler/internal/config"
)

const testSecret = "test-secret"

func testConfig() *config.Config {
	return &config.Config{JWTSecret: testSecret, TokenTTL: time.Hour}
}

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

func newAuthRouter(t *testing.T, roles RoleLookup) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	r := gin.New()
	r.GET("/me", RequireAuth(testConfig()), func(c *gin.Context) {
		c.JSON(200, gin.H{"email": c.MustGet(ContextUserEmail)})
	})
	r.GET("/admin-only", RequireAuth(testConfig()), RequireAdmin(roles), func(c *gin.Context) {
		c.JSON(200, gin.H{"ok": true})
	})
	return r
}

func doRequest(r *gin.Engine, header string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	if header != "" {
		req.Header.Set("Authorization", header)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestRequireAuthMissingHeader(t *testing.T) {
	r := newAuthRouter(t, fakeRoles{})

	w := doRequest(r, "")
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "Unauthorized access!") {
		t.Errorf("expected canonical 401 message, got %s", w.Body.String())
	}
}

func TestRequireAuthMalformedHeader(t *testing.T) {
	r := newAuthRouter(t, fakeRoles{})

	w := doRequest(r, "Token abc")
	if w.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", w.Code)
	}
}

func TestRequireAuthInvalidToken(t *testing.T) {
	r := newAuthRouter(t, fakeRoles{})

	w := doRequest(r, "Bearer not.a.token")
	if w.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "Forbidden access!") {
		t.Errorf("expected canonical 403 message, got %s", w.Body.String())
	}
}

func TestRequireAuthExpiredToken(t *testing.T) {
	r := newAuthRouter(t, fakeRoles{})

	token, err := auth.IssueToken("patient@example.com", testSecret, -time.Minute)
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	w := doRequest(r, "Bearer "+token)
	if w.Code != http.StatusForbidden {
		t.Fatalf("expected 403 for expired token, got %d", w.Code)
	}
}

func TestRequireAuthValidToken(t *testing.T) {
	r := newAuthRouter(t, fakeRoles{})

	token, err := auth.IssueToken("patient@example.com", testSecret, time.Hour)
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	w := doRequest(r, "Bearer "+token)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	if !strings.Contains(w.Body.String(), "patient@example.com") {
		t.Errorf("expected decoded email in context, got %s", w.Body.String())
	}
}

func TestRequireAdmin(t *testing.T) {
	roles := fakeRoles{roles: map[string]string{
		"boss@example.com":    "admin",
		"patient@example.com": "",
	}}
	r := newAuthRouter(t, roles)

	cases := []struct {
		name  string
		email string
		want  int
	}{
		{"admin role passes", "boss@example.com", http.StatusOK},
		{"plain user rejected", "patient@example.com", http.StatusForbidden},
		{"unknown user rejected", "ghost@example.com", http.StatusForbidden},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			token, err := auth.IssueToken(tc.email, testSecret, time.Hour)
			if err != nil {
				t.Fatalf("issue: %v", err)
			}

			req := httptest.NewRequest(http.MethodGet, "/admin-only", nil)
			req.Header.Set("Authorization", "Bearer "+token)
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			if w.Code != tc.want {
				t.Errorf("expected %d, got %d", tc.want, w.Code)
			}
		})
	}
}
