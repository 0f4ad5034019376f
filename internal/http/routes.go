package http

import (
	"version3_server/config"
	"version3_server/internal/http/controllers"

	"github.com/gin-gonic/gin"
)

// SetupRoutes configures all routes
func SetupRoutes(router *gin.Engine, variant config.Variant) {
	indexController := controllers.NewIndexController(variant)

	router.GET("/", indexController.Index)
	router.HEAD("/", indexController.Index)
}
