package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"github.com/devansh21640/Kanoonwise-sub002/internal/config"
)

const testSecret = "test-secret"

func signToken(t *testing.T, secret string, claims jwt.MapClaims) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return signed
}

func authRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	cfg := &config.Config{JWTSecret: testSecret}

	r := gin.New()
	r.Use(AuthMiddleware(cfg))
	r.GET("/me", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"user_id": c.MustGet(ContextUserID).(uint),
			"role":    c.GetString(ContextUserRole),
		})
	})
	r.GET("/lawyer-only", RequireRole("lawyer"), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	return r
}

func validClaims() jwt.MapClaims {
	return jwt.MapClaims{
		"sub":   float64(42),
		"role":  "client",
		"email": "c@example.com",
		"exp":   time.Now().Add(time.Hour).Unix(),
	}
}

func TestAuthFromCookie(t *testing.T) {
	r := authRouter()
	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.AddCookie(&http.Cookie{
		Name:  SessionCookie,
		Value: signToken(t, testSecret, validClaims()),
	})
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", w.Code, w.Body.String())
	}
}

func TestAuthFromBearerHeader(t *testing.T) {
	r := authRouter()
	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("Authorization", "Bearer "+signToken(t, testSecret, validClaims()))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", w.Code, w.Body.String())
	}
}

func TestAuthMissingCredentials(t *testing.T) {
	r := authRouter()
	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", w.Code)
	}
}

func TestAuthRejectsWrongSecret(t *testing.T) {
	r := authRouter()
	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.AddCookie(&http.Cookie{
		Name:  SessionCookie,
		Value: signToken(t, "other-secret", validClaims()),
	})
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", w.Code)
	}
}

func TestAuthRejectsExpiredToken(t *testing.T) {
	claims := validClaims()
	claims["exp"] = time.Now().Add(-time.Hour).Unix()

	r := authRouter()
	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.AddCookie(&http.Cookie{
		Name:  SessionCookie,
		Value: signToken(t, testSecret, claims),
	})
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", w.Code)
	}
}

func TestRequireRole(t *testing.T) {
	r := authRouter()

	req := httptest.NewRequest(http.MethodGet, "/lawyer-only", nil)
	req.AddCookie(&http.Cookie{
		Name:  SessionCookie,
		Value: signToken(t, testSecret, validClaims()), // role=client
	})
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusForbidden {
		t.Errorf("client on lawyer route: status = %d, want 403", w.Code)
	}

	claims := validClaims()
	claims["role"] = "lawyer"
	req = httptest.NewRequest(http.MethodGet, "/lawyer-only", nil)
	req.AddCookie(&http.Cookie{
		Name:  SessionCookie,
		Value: signToken(t, testSecret, claims),
	})
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("lawyer on lawyer route: status = %d, want 200", w.Code)
	}
}
