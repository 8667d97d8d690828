package health

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"codeberg.org/algorave/errorpages/internal/i18n"
)

const (
	serviceName = "errorpages"
	version     = "1.0.0"
)

// returns the server health status
func Handler(c *gin.Context) {
	langs := make([]string, 0, len(i18n.Languages()))
	for _, l := range i18n.Languages() {
		langs = append(langs, l.String())
	}

	c.JSON(http.StatusOK, Response{
		Status:    "healthy",
		Service:   serviceName,
		Version:   version,
		Languages: langs,
	})
}

// responds with pong for testing
func PingHandler(c *gin.Context) {
	c.JSON(http.StatusOK, PingResponse{Message: "pong"})
}
