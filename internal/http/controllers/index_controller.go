package controllers

import (
	"net/http"

	"version3_server/config"

	"github.com/gin-gonic/gin"
)

// IndexController serves the root page
type IndexController struct {
	variant config.Variant
}

// NewIndexController creates a new index controller for the given variant
func NewIndexController(variant config.Variant) *IndexController {
	return &IndexController{variant: variant}
}

// Index returns the approval message
func (ic *IndexController) Index(c *gin.Context) {
	// The secret comes from the environment and is never written back out
	_ = config.GetSecretKey(ic.variant)

	profile := ic.variant.Profile()
	c.Data(http.StatusOK, profile.ContentType, []byte(profile.Body))
}
