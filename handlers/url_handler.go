// Package handlers provides HTTP request handlers for the URL shortener service.
package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/ryan-syed/URLShortener/services"
	"github.com/ryan-syed/URLShortener/types"
)

const (
	invalidRequestBody = "Invalid request body"
	welcomeMessage     = "Welcome to the URL Shortener API"
)

// URLHandlerInterface defines the methods that a URL handler should implement.
type URLHandlerInterface interface {
	ShortenURL(c *gin.Context)
	Welcome(c *gin.Context)
	HealthCheck(c *gin.Context)
}

// URLHandler struct holds the dependencies for handling URL-related operations.
type URLHandler struct {
	service services.URLService
	logger  *zap.Logger
}

// NewURLHandler creates and returns a new URLHandler instance.
//
// Parameters:
//   - service: An implementation of the services.URLService interface.
//   - logger: A zap logger used for request-level logging.
//
// Returns:
//   - A URLHandlerInterface and an error if any dependency is missing.
func NewURLHandler(service services.URLService, logger *zap.Logger) (URLHandlerInterface, error) {
	if service == nil {
		return nil, errors.New("service cannot be nil")
	}
	if logger == nil {
		return nil, errors.New("logger cannot be nil")
	}

	return &URLHandler{
		service: service,
		logger:  logger,
	}, nil
}

// ShortenURL handles the creation of a new shortened URL.
// It decodes the request body and returns the generated short URL alongside
// the original one. The url field is echoed as-is; an absent field binds to
// the empty string and is accepted.
func (h *URLHandler) ShortenURL(c *gin.Context) {
	var input types.ShortenRequest

	if err := c.ShouldBindJSON(&input); err != nil {
		h.logger.Warn("Error decoding request body", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": invalidRequestBody})
		return
	}

	response := h.service.Shorten(input)

	h.logger.Info("Short URL created",
		zap.String("short_code", response.ShortCode),
		zap.String("request_id", c.GetString(requestIDKey)),
	)

	c.JSON(http.StatusOK, response)
}
