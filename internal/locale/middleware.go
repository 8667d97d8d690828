package locale

import (
	"github.com/gin-gonic/gin"

	"codeberg.org/algorave/errorpages/internal/i18n"
)

const (
	contextKey = "language"

	// QueryParam overrides every other source when present and supported.
	QueryParam = "lang"
	CookieName = "locale"
)

// resolves the request language and stores it on the context.
// precedence: ?lang= query, locale cookie, Accept-Language, fallback.
func Middleware(fallback i18n.Language) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(contextKey, Resolve(c, fallback))
		c.Next()
	}
}

// resolves the language for a single request without storing it
func Resolve(c *gin.Context, fallback i18n.Language) i18n.Language {
	if lang, ok := i18n.ParseLanguage(c.Query(QueryParam)); ok {
		return lang
	}

	if cookie, err := c.Cookie(CookieName); err == nil {
		if lang, ok := i18n.ParseLanguage(cookie); ok {
			return lang
		}
	}

	return i18n.MatchAcceptLanguage(c.GetHeader("Accept-Language"), fallback)
}

// extracts the language set by Middleware, English if it never ran
func FromContext(c *gin.Context) i18n.Language {
	value, exists := c.Get(contextKey)
	if !exists {
		return i18n.En
	}

	lang, ok := value.(i18n.Language)
	if !ok {
		return i18n.En
	}

	return lang
}
