package main

import (
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"codeberg.org/algorave/errorpages/internal/config"
)

// holds all dependencies and state for the API server
type Server struct {
	config *config.Config
	router *gin.Engine
	redis  *redis.Client // nil when the limiter uses the in-memory store
}
