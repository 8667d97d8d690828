package errors

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"codeberg.org/algorave/errorpages/internal/i18n"
	"codeberg.org/algorave/errorpages/internal/locale"
	"codeberg.org/algorave/errorpages/internal/logger"
)

// Error Handling Guidelines:
//
// For HTTP REST handlers:
//   - Use errors.BadRequest(), errors.InternalError(), etc. to end a request.
//     They localize the body using the language picked by locale.Middleware
//     and abort the handler chain.
//   - InternalError logs the full error; the other helpers do not log.
//   - Never call both logger.ErrorErr() and errors.InternalError() for the same error
//
// For services/repositories/internal packages:
//   - Return wrapped errors with context using fmt.Errorf("context: %w", err)
//   - Let the caller (handler) decide how to log and respond

// writes the localized error body for status. err, if set, becomes the
// sanitized details text.
func Respond(c *gin.Context, status int, err error) {
	var details *string

	if err != nil {
		text := sanitizeError(err)
		details = &text
	}

	RespondWithDetails(c, status, details)
}

// writes the localized error body for status with details passed through as is
func RespondWithDetails(c *gin.Context, status int, details *string) {
	lang := locale.FromContext(c)

	c.AbortWithStatusJSON(status, i18n.BuildErrorWith(lang, status, details))
}

// returns a 400 bad request error
func BadRequest(c *gin.Context, err error) {
	Respond(c, http.StatusBadRequest, err)
}

// returns a 400 bad request error for binding and validation failures
func ValidationError(c *gin.Context, err error) {
	if err == nil {
		err = fmt.Errorf("validation failed")
	}

	Respond(c, http.StatusBadRequest, err)
}

// returns a 401 unauthorized error
func Unauthorized(c *gin.Context, err error) {
	Respond(c, http.StatusUnauthorized, err)
}

// returns a 403 forbidden error
func Forbidden(c *gin.Context, err error) {
	Respond(c, http.StatusForbidden, err)
}

// returns a 404 not found error
func NotFound(c *gin.Context, err error) {
	Respond(c, http.StatusNotFound, err)
}

// returns a 405 method not allowed error
func MethodNotAllowed(c *gin.Context) {
	Respond(c, http.StatusMethodNotAllowed, nil)
}

// returns a 429 too many requests error
func TooManyRequests(c *gin.Context) {
	Respond(c, http.StatusTooManyRequests, nil)
}

// returns a 500 internal server error
func InternalError(c *gin.Context, message string, err error) {
	if message == "" {
		message = "an error occurred"
	}

	// log full error server-side with context
	logger.ErrorErr(err, message,
		"path", c.Request.URL.Path,
		"method", c.Request.Method,
		"language", locale.FromContext(c).String(),
	)

	Respond(c, http.StatusInternalServerError, err)
}

// handler for gin's NoRoute
func NoRoute(c *gin.Context) {
	NotFound(c, nil)
}

// handler for gin's NoMethod
func NoMethod(c *gin.Context) {
	MethodNotAllowed(c)
}

// recovers panics into a localized 500 response
func Recovery() gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered any) {
		InternalError(c, "panic recovered", fmt.Errorf("panic: %v", recovered))
	})
}
