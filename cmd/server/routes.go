package main

import (
	"github.com/gin-gonic/gin"
	"github.com/ulule/limiter/v3"

	"codeberg.org/algorave/errorpages/api/rest/errorpages"
	"codeberg.org/algorave/errorpages/api/rest/health"
	"codeberg.org/algorave/errorpages/internal/errors"
	"codeberg.org/algorave/errorpages/internal/locale"
)

// sets up all API routes and middleware
func RegisterRoutes(router *gin.Engine, server *Server, rateLimiter *limiter.Limiter) {
	// order matters: every later handler, including the error helpers,
	// reads the language resolved here
	router.Use(errors.Recovery())
	router.Use(locale.Middleware(server.config.DefaultLanguage))
	router.Use(RequestLogMiddleware())
	router.Use(ContentLanguageMiddleware())
	router.Use(CORSMiddleware(server.config.CORSAllowedOrigins))

	router.GET("/health", health.Handler)

	v1 := router.Group("/api/v1")
	v1.Use(RateLimitMiddleware(rateLimiter))

	{
		v1.GET("/ping", health.PingHandler)

		errorpages.RegisterRoutes(v1)
	}
}
