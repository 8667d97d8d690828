package errors

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"codeberg.org/algorave/errorpages/internal/i18n"
	"codeberg.org/algorave/errorpages/internal/locale"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newRouter() *gin.Engine {
	router := gin.New()
	router.Use(Recovery())
	router.Use(locale.Middleware(i18n.En))
	router.NoRoute(NoRoute)

	return router
}

func serve(t *testing.T, router *gin.Engine, path string) (*httptest.ResponseRecorder, i18n.ErrorResponse) {
	t.Helper()

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))

	resp, err := i18n.DecodeErrorResponse(w.Body.Bytes())
	require.NoError(t, err, "body: %s", w.Body.String())

	return w, resp
}

func TestBadRequest_LocalizedWithDetails(t *testing.T) {
	t.Setenv("ENVIRONMENT", "development")

	router := newRouter()
	router.GET("/bad", func(c *gin.Context) {
		BadRequest(c, fmt.Errorf("field name is required"))
	})

	w, resp := serve(t, router, "/bad?lang=de")

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, i18n.BuildErrorWith(i18n.De, http.StatusBadRequest, i18n.Text("field name is required")), resp)
}

func TestRespond_NoErrorOmitsDetails(t *testing.T) {
	router := newRouter()
	router.GET("/forbidden", func(c *gin.Context) {
		Forbidden(c, nil)
	})

	w, resp := serve(t, router, "/forbidden")

	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Nil(t, resp.DetailsText)
	assert.NotContains(t, w.Body.String(), "detailsText")
	assert.Equal(t, "403 Forbidden", resp.Error)
}

func TestHelpers_StatusCodes(t *testing.T) {
	tests := []struct {
		name    string
		handler gin.HandlerFunc
		status  int
	}{
		{"unauthorized", func(c *gin.Context) { Unauthorized(c, nil) }, http.StatusUnauthorized},
		{"not_found", func(c *gin.Context) { NotFound(c, nil) }, http.StatusNotFound},
		{"validation", func(c *gin.Context) { ValidationError(c, nil) }, http.StatusBadRequest},
		{"method", MethodNotAllowed, http.StatusMethodNotAllowed},
		{"rate", TooManyRequests, http.StatusTooManyRequests},
		{"internal", func(c *gin.Context) { InternalError(c, "", errors.New("boom")) }, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := newRouter()
			router.GET("/x", tt.handler)

			w, resp := serve(t, router, "/x")

			assert.Equal(t, tt.status, w.Code)
			assert.Equal(t, i18n.StatusText(tt.status), resp.Error)
			assert.Equal(t, i18n.Catalog(i18n.En).Message(i18n.ClassifyStatus(tt.status)), resp.ErrorText)
		})
	}
}

func TestRespond_AbortsChain(t *testing.T) {
	reached := false

	router := newRouter()
	router.GET("/guarded",
		func(c *gin.Context) { Unauthorized(c, nil) },
		func(c *gin.Context) { reached = true },
	)

	w, _ := serve(t, router, "/guarded")

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.False(t, reached)
}

func TestNoRoute_Localized(t *testing.T) {
	router := newRouter()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/missing", nil)
	req.Header.Set("Accept-Language", "de-DE")
	router.ServeHTTP(w, req)

	resp, err := i18n.DecodeErrorResponse(w.Body.Bytes())
	require.NoError(t, err)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, i18n.BuildError(i18n.De), resp)
}

func TestRecovery_LocalizedInternalError(t *testing.T) {
	t.Setenv("ENVIRONMENT", "production")

	router := newRouter()
	router.GET("/panic", func(c *gin.Context) {
		panic("secret connection string leaked")
	})

	w, resp := serve(t, router, "/panic?lang=de")

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "Interner Server Fehler", resp.ErrorText)
	require.NotNil(t, resp.DetailsText)
	assert.Equal(t, "connection error occurred", *resp.DetailsText)
}

func TestClassifyError(t *testing.T) {
	bindErr := validator.New().Struct(struct {
		Name string `validate:"required"`
	}{})
	_, parseErr := strconv.Atoi("teapot")

	tests := []struct {
		name     string
		err      error
		category string
		prod     string
	}{
		{"deadline", fmt.Errorf("limiter get: %w", context.DeadlineExceeded), CategoryTimeout, "request timed out"},
		{"canceled", context.Canceled, CategoryTimeout, "request timed out"},
		{"redis closed", fmt.Errorf("limiter get: %w", redis.ErrClosed), CategoryStore, "rate limit store unavailable"},
		{"redis pool", fmt.Errorf("limiter get: %w", redis.ErrPoolTimeout), CategoryStore, "rate limit store unavailable"},
		{"binding", bindErr, CategoryValidation, "validation failed"},
		{"uri parse", parseErr, CategoryValidation, "validation failed"},
		{"dial", &net.OpError{Op: "dial", Net: "tcp", Err: errors.New("connection refused")}, CategoryNetwork, "connection error occurred"},
		{"dns timeout", &net.DNSError{Err: "i/o timeout", Name: "cache.internal", IsTimeout: true}, CategoryTimeout, "request timed out"},
		{"panic text", errors.New("panic: redis went away"), CategoryStore, "rate limit store unavailable"},
		{"unknown", errors.New("something odd"), CategoryUnknown, "an error occurred"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Error(t, tt.err)

			t.Setenv("ENVIRONMENT", "production")

			info := classifyError(tt.err)
			assert.Equal(t, tt.category, info.category)
			assert.Equal(t, tt.prod, info.sanitized)

			t.Setenv("ENVIRONMENT", "development")
			assert.Equal(t, tt.err.Error(), sanitizeError(tt.err))
		})
	}
}

func TestClassifyError_EveryCategoryHasMessage(t *testing.T) {
	for _, category := range []string{CategoryStore, CategoryNetwork, CategoryValidation, CategoryTimeout, CategoryUnknown} {
		assert.NotEmpty(t, sanitizedMessages[category], "category=%s", category)
	}
}

func TestClassifyError_Nil(t *testing.T) {
	info := classifyError(nil)

	assert.Equal(t, CategoryUnknown, info.category)
	assert.Empty(t, info.sanitized)
}
