package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"reportlog-srv/config"
	"reportlog-srv/internal/model"
	"reportlog-srv/pkg/jwt"
	"reportlog-srv/pkg/log"
	"reportlog-srv/pkg/scope"
)

func newTestMiddleware(t *testing.T, internalKey string) (Middleware, *jwt.Manager) {
	t.Helper()
	manager, err := jwt.New(jwt.Config{
		SecretKey: "0123456789abcdef0123456789abcdef",
		Issuer:    "reportlog-srv",
		TTL:       time.Hour,
	})
	if err != nil {
		t.Fatalf("jwt.New failed: %v", err)
	}

	l := log.Init(log.ZapConfig{Level: "error", Encoding: "console"})
	cookieCfg := config.CookieConfig{Name: "reportlog_auth_token"}
	return New(l, manager, cookieCfg, internalKey), manager
}

func authedRouter(mw Middleware, captured *model.Scope) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/protected", mw.Auth(), func(c *gin.Context) {
		*captured = scope.GetScopeFromContext(c.Request.Context())
		c.Status(http.StatusOK)
	})
	return r
}

func TestAuth(t *testing.T) {
	mw, manager := newTestMiddleware(t, "")

	token, err := manager.GenerateToken("user-1", "alice", []int{1, 3})
	if err != nil {
		t.Fatalf("GenerateToken failed: %v", err)
	}

	t.Run("bearer header", func(t *testing.T) {
		var captured model.Scope
		r := authedRouter(mw, &captured)

		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("Status mismatch: got %d, want 200", w.Code)
		}
		if captured.UserID != "user-1" || captured.Username != "alice" {
			t.Errorf("Scope mismatch: %+v", captured)
		}
		if len(captured.Groups) != 2 {
			t.Errorf("Groups mismatch: %v", captured.Groups)
		}
	})

	t.Run("cookie fallback", func(t *testing.T) {
		var captured model.Scope
		r := authedRouter(mw, &captured)

		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.AddCookie(&http.Cookie{Name: "reportlog_auth_token", Value: token})
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("Status mismatch: got %d, want 200", w.Code)
		}
		if captured.Username != "alice" {
			t.Errorf("Scope mismatch: %+v", captured)
		}
	})

	t.Run("missing token", func(t *testing.T) {
		var captured model.Scope
		r := authedRouter(mw, &captured)

		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusUnauthorized {
			t.Errorf("Status mismatch: got %d, want 401", w.Code)
		}
	})

	t.Run("invalid token", func(t *testing.T) {
		var captured model.Scope
		r := authedRouter(mw, &captured)

		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Bearer not.a.token")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusUnauthorized {
			t.Errorf("Status mismatch: got %d, want 401", w.Code)
		}
	})
}

func TestInternalAuth(t *testing.T) {
	internalRouter := func(mw Middleware) *gin.Engine {
		gin.SetMode(gin.TestMode)
		r := gin.New()
		r.POST("/internal", mw.InternalAuth(), func(c *gin.Context) {
			c.Status(http.StatusOK)
		})
		return r
	}

	t.Run("valid key", func(t *testing.T) {
		mw, _ := newTestMiddleware(t, "shared-key")
		r := internalRouter(mw)

		req := httptest.NewRequest(http.MethodPost, "/internal", nil)
		req.Header.Set("Authorization", "Bearer shared-key")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Errorf("Status mismatch: got %d, want 200", w.Code)
		}
	})

	t.Run("wrong key", func(t *testing.T) {
		mw, _ := newTestMiddleware(t, "shared-key")
		r := internalRouter(mw)

		req := httptest.NewRequest(http.MethodPost, "/internal", nil)
		req.Header.Set("Authorization", "Bearer nope")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusUnauthorized {
			t.Errorf("Status mismatch: got %d, want 401", w.Code)
		}
	})

	t.Run("empty configured key rejects everything", func(t *testing.T) {
		mw, _ := newTestMiddleware(t, "")
		r := internalRouter(mw)

		req := httptest.NewRequest(http.MethodPost, "/internal", nil)
		req.Header.Set("Authorization", "Bearer ")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusUnauthorized {
			t.Errorf("Status mismatch: got %d, want 401", w.Code)
		}
	})
}
