package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"github.com/LotusWellness01/spa-scheduler/internal/config"
)

func testRouter(cfg *config.Config) (*gin.Engine, *AccessClaims) {
	gin.SetMode(gin.TestMode)

	var got AccessClaims

	r := gin.New()
	r.GET("/private", AuthMiddleware(cfg), func(c *gin.Context) {
		got.UserID = c.MustGet(ContextUserID).(uint)
		got.StudioID = c.MustGet(ContextStudioID).(uint)
		got.Role = c.MustGet(ContextUserRole).(string)
		c.Status(http.StatusOK)
	})

	return r, &got
}

func signToken(t *testing.T, secret string, claims AccessClaims) string {
	t.Helper()

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return signed
}

func TestAuthMiddleware(t *testing.T) {
	cfg := &config.Config{JWTSecret: "test-secret"}

	claims := AccessClaims{
		UserID:   7,
		StudioID: 3,
		Role:     "owner",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}

	t.Run("valid token populates the context", func(t *testing.T) {
		r, got := testRouter(cfg)

		req := httptest.NewRequest(http.MethodGet, "/private", nil)
		req.Header.Set("Authorization", "Bearer "+signToken(t, cfg.JWTSecret, claims))

		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("status = %d, want 200", w.Code)
		}
		if got.UserID != 7 || got.StudioID != 3 || got.Role != "owner" {
			t.Fatalf("context = %+v", got)
		}
	})

	t.Run("missing header", func(t *testing.T) {
		r, _ := testRouter(cfg)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/private", nil))

		if w.Code != http.StatusUnauthorized {
			t.Fatalf("status = %d, want 401", w.Code)
		}
	})

	t.Run("wrong secret", func(t *testing.T) {
		r, _ := testRouter(cfg)

		req := httptest.NewRequest(http.MethodGet, "/private", nil)
		req.Header.Set("Authorization", "Bearer "+signToken(t, "other-secret", claims))

		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusUnauthorized {
			t.Fatalf("status = %d, want 401", w.Code)
		}
	})

	t.Run("expired token", func(t *testing.T) {
		r, _ := testRouter(cfg)

		expired := claims
		expired.RegisteredClaims.ExpiresAt = jwt.NewNumericDate(time.Now().Add(-time.Hour))

		req := httptest.NewRequest(http.MethodGet, "/private", nil)
		req.Header.Set("Authorization", "Bearer "+signToken(t, cfg.JWTSecret, expired))

		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusUnauthorized {
			t.Fatalf("status = %d, want 401", w.Code)
		}
	})

	t.Run("empty ids rejected", func(t *testing.T) {
		r, _ := testRouter(cfg)

		anonymous := claims
		anonymous.UserID = 0

		req := httptest.NewRequest(http.MethodGet, "/private", nil)
		req.Header.Set("Authorization", "Bearer "+signToken(t, cfg.JWTSecret, anonymous))

		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusUnauthorized {
			t.Fatalf("status = %d, want 401", w.Code)
		}
	})
}
