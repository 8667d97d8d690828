package main

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/ulule/limiter/v3"
	mgin "github.com/ulule/limiter/v3/drivers/middleware/gin"

	"codeberg.org/algorave/errorpages/internal/errors"
	"codeberg.org/algorave/errorpages/internal/locale"
	"codeberg.org/algorave/errorpages/internal/logger"
)

// allows the configured origins, or every origin for "*". a disallowed
// origin gets the localized 403 body instead of the cors package's empty one.
func CORSMiddleware(origins []string) gin.HandlerFunc {
	cfg := cors.Config{
		AllowMethods:     []string{http.MethodGet, http.MethodOptions},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept-Language"},
		ExposeHeaders:    []string{"Content-Language", "X-RateLimit-Limit", "X-RateLimit-Remaining", "X-RateLimit-Reset"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}

	allowAll := len(origins) == 1 && origins[0] == "*"
	allowed := make(map[string]struct{}, len(origins))

	if allowAll {
		cfg.AllowAllOrigins = true
	} else {
		cfg.AllowOrigins = origins
		for _, o := range origins {
			allowed[o] = struct{}{}
		}
	}

	handler := cors.New(cfg)

	return func(c *gin.Context) {
		origin := c.GetHeader("Origin")

		if !allowAll && isCrossOrigin(c, origin) {
			if _, ok := allowed[origin]; !ok {
				errors.Forbidden(c, fmt.Errorf("origin %s is not allowed", origin))
				return
			}
		}

		handler(c)
	}
}

// same rule the cors package uses to skip requests
func isCrossOrigin(c *gin.Context, origin string) bool {
	if origin == "" {
		return false
	}

	host := c.Request.Host

	return origin != "http://"+host && origin != "https://"+host
}

// per-IP rate limiting; rejected requests get a localized 429 body
func RateLimitMiddleware(l *limiter.Limiter) gin.HandlerFunc {
	return mgin.NewMiddleware(l,
		mgin.WithLimitReachedHandler(errors.TooManyRequests),
		mgin.WithErrorHandler(func(c *gin.Context, err error) {
			errors.InternalError(c, "rate limiter failed", err)
		}),
	)
}

// advertises the resolved language on every response
func ContentLanguageMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Content-Language", locale.FromContext(c).String())
		c.Next()
	}
}

// logs one line per request
func RequestLogMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		status := c.Writer.Status()
		args := []any{
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", status,
			"latency", time.Since(start),
			"language", locale.FromContext(c).String(),
			"client_ip", c.ClientIP(),
		}

		if status >= http.StatusInternalServerError {
			logger.Warn("request failed", args...)
			return
		}

		logger.Debug("request handled", args...)
	}
}
