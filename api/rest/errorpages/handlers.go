package errorpages

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"codeberg.org/algorave/errorpages/internal/errors"
	"codeberg.org/algorave/errorpages/internal/i18n"
	"codeberg.org/algorave/errorpages/internal/locale"
)

// DefaultErrorHandler godoc
// @Summary Get the default error payload
// @Description Returns the generic not-found error payload in the request language
// @Tags errors
// @Produce json
// @Param lang query string false "Language tag (en, de)"
// @Success 200 {object} i18n.ErrorResponse
// @Router /api/v1/errors [get]
func DefaultErrorHandler(c *gin.Context) {
	c.JSON(http.StatusOK, i18n.BuildError(locale.FromContext(c)))
}

// StatusErrorHandler godoc
// @Summary Get the error payload for a status code
// @Description Returns the localized error payload for any status code; unclassified codes use the not-found text
// @Tags errors
// @Produce json
// @Param status path int true "HTTP status code"
// @Param details query string false "Details text, passed through unchanged"
// @Param lang query string false "Language tag (en, de)"
// @Success 200 {object} i18n.ErrorResponse
// @Failure 400 {object} i18n.ErrorResponse
// @Router /api/v1/errors/{status} [get]
func StatusErrorHandler(c *gin.Context) {
	var uri statusURI
	if err := c.ShouldBindUri(&uri); err != nil {
		errors.ValidationError(c, err)
		return
	}

	var details *string
	if text, ok := c.GetQuery("details"); ok {
		details = &text
	}

	c.JSON(http.StatusOK, i18n.BuildErrorWith(locale.FromContext(c), uri.Status, details))
}

// CatalogHandler godoc
// @Summary Get the message catalog
// @Description Returns every error string of the request language
// @Tags errors
// @Produce json
// @Param lang query string false "Language tag (en, de)"
// @Success 200 {object} i18n.MessageCatalog
// @Router /api/v1/errors/catalog [get]
func CatalogHandler(c *gin.Context) {
	c.JSON(http.StatusOK, i18n.Catalog(locale.FromContext(c)))
}

// LanguagesHandler godoc
// @Summary List supported languages
// @Tags errors
// @Produce json
// @Success 200 {object} LanguagesResponse
// @Router /api/v1/languages [get]
func LanguagesHandler(c *gin.Context) {
	c.JSON(http.StatusOK, LanguagesResponse{
		Languages: i18n.Languages(),
		Current:   locale.FromContext(c),
	})
}
