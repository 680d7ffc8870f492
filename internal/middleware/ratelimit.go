package middleware

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"

	"github.com/devansh21640/Kanoonwise-sub002/internal/httperr"
)

// KeyByIP keys the window by client IP alone.
func KeyByIP(c *gin.Context) string {
	return c.ClientIP()
}

// KeyByEmailIP keys the window by the request's email plus client IP, so one
// address cannot drain the shared budget of everyone behind the same NAT. The
// body is restored for the handler's own binding.
func KeyByEmailIP(c *gin.Context) string {
	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		return c.ClientIP()
	}
	c.Request.Body = io.NopCloser(bytes.NewReader(body))

	var req struct {
		Email string `json:"email"`
	}
	if json.Unmarshal(body, &req) != nil || req.Email == "" {
		return c.ClientIP()
	}

	return strings.ToLower(strings.TrimSpace(req.Email)) + ":" + c.ClientIP()
}

// RateLimit is a fixed-window counter. Used on the OTP request route; when
// redis is unreachable the request is let through rather than failing login
// for everyone.
func RateLimit(
	rdb *redis.Client,
	prefix string,
	limit int,
	window time.Duration,
	key func(*gin.Context) string,
) gin.HandlerFunc {
	if key == nil {
		key = KeyByIP
	}

	return func(c *gin.Context) {
		k := fmt.Sprintf("rl:%s:%s", prefix, key(c))
		ctx := c.Request.Context()

		count, err := rdb.Incr(ctx, k).Result()
		if err != nil {
			c.Next()
			return
		}

		if count == 1 {
			rdb.Expire(ctx, k, window)
		}

		if count > int64(limit) {
			httperr.TooManyRequests(c, "too_many_requests", "Too many requests. Try again later.")
			c.Abort()
			return
		}

		c.Next()
	}
}
