package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Welcome handles the root endpoint.
// It returns a plain-text greeting identifying the API.
func (h *URLHandler) Welcome(c *gin.Context) {
	c.String(http.StatusOK, welcomeMessage)
}
