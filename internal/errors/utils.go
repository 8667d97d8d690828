package errors

import (
	"context"
	"errors"
	"net"
	"os"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/redis/go-redis/v9"
)

// error categories for classification. every category maps to an error
// this service can hit: the redis limiter store, gin binding, panics.
const (
	CategoryStore      = "store"
	CategoryNetwork    = "network"
	CategoryValidation = "validation"
	CategoryTimeout    = "timeout"
	CategoryUnknown    = "unknown"
)

var sanitizedMessages = map[string]string{
	CategoryStore:      "rate limit store unavailable",
	CategoryNetwork:    "connection error occurred",
	CategoryValidation: "validation failed",
	CategoryTimeout:    "request timed out",
	CategoryUnknown:    "an error occurred",
}

// returns the details text shown to clients. outside production this is
// the raw error message.
func sanitizeError(err error) string {
	return classifyError(err).sanitized
}

// analyzes an error and returns its category and sanitized message
func classifyError(err error) ErrorInfo {
	if err == nil {
		return ErrorInfo{CategoryUnknown, ""}
	}

	category := categorize(err)

	if os.Getenv("ENVIRONMENT") != "production" {
		return ErrorInfo{category, err.Error()}
	}

	return ErrorInfo{category, sanitizedMessages[category]}
}

func categorize(err error) string {
	var (
		validationErrs validator.ValidationErrors
		numErr         *strconv.NumError
		netErr         net.Error
	)

	switch {
	case errors.Is(err, context.DeadlineExceeded), errors.Is(err, context.Canceled):
		return CategoryTimeout
	case errors.Is(err, redis.ErrClosed), errors.Is(err, redis.ErrPoolTimeout):
		return CategoryStore
	case errors.As(err, &validationErrs), errors.As(err, &numErr):
		return CategoryValidation
	case errors.As(err, &netErr):
		if netErr.Timeout() {
			return CategoryTimeout
		}

		return CategoryNetwork
	}

	// recovered panics and other untyped errors only carry text
	errMsg := strings.ToLower(err.Error())

	switch {
	case strings.Contains(errMsg, "redis"):
		return CategoryStore
	case strings.Contains(errMsg, "connection"), strings.Contains(errMsg, "dial"):
		return CategoryNetwork
	case strings.Contains(errMsg, "timeout"):
		return CategoryTimeout
	}

	return CategoryUnknown
}
