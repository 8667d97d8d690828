package errorpages

import "github.com/gin-gonic/gin"

func RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/errors", DefaultErrorHandler)
	router.GET("/errors/:status", StatusErrorHandler)
	router.GET("/errors/catalog", CatalogHandler)
	router.GET("/languages", LanguagesHandler)
}
