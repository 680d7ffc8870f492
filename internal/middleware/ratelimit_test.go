package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
)

func rateLimitRouter(rdb *redis.Client, limit int) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/otp", RateLimit(rdb, "otp", limit, time.Minute, KeyByEmailIP), func(c *gin.Context) {
		// The handler must still see the body the key extractor read.
		var req struct {
			Email string `json:"email" binding:"required"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			c.Status(http.StatusInternalServerError)
			return
		}
		c.Status(http.StatusOK)
	})
	return r
}

func requestOTP(r *gin.Engine, email string) int {
	req := httptest.NewRequest(http.MethodPost, "/otp", strings.NewReader(`{"email":"`+email+`"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w.Code
}

func TestRateLimitPerEmail(t *testing.T) {
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	r := rateLimitRouter(rdb, 2)

	for i := 0; i < 2; i++ {
		if code := requestOTP(r, "a@example.com"); code != http.StatusOK {
			t.Fatalf("request %d: status = %d, want 200", i+1, code)
		}
	}

	if code := requestOTP(r, "a@example.com"); code != http.StatusTooManyRequests {
		t.Errorf("over-limit request: status = %d, want 429", code)
	}

	// A different email from the same IP has its own window.
	if code := requestOTP(r, "b@example.com"); code != http.StatusOK {
		t.Errorf("other email: status = %d, want 200", code)
	}
}

func TestRateLimitFailOpen(t *testing.T) {
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	mr.Close()

	r := rateLimitRouter(rdb, 1)
	for i := 0; i < 3; i++ {
		if code := requestOTP(r, "a@example.com"); code != http.StatusOK {
			t.Fatalf("request %d with redis down: status = %d, want 200", i+1, code)
		}
	}
}

func TestRateLimitWindowExpires(t *testing.T) {
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	r := rateLimitRouter(rdb, 1)

	if code := requestOTP(r, "a@example.com"); code != http.StatusOK {
		t.Fatalf("first request: status = %d, want 200", code)
	}
	if code := requestOTP(r, "a@example.com"); code != http.StatusTooManyRequests {
		t.Fatalf("second request: status = %d, want 429", code)
	}

	mr.FastForward(2 * time.Minute)

	if code := requestOTP(r, "a@example.com"); code != http.StatusOK {
		t.Errorf("after window: status = %d, want 200", code)
	}
}
