package mocks

import (
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/mock"
)

type MockURLHandler struct {
	mock.Mock
}

func (m *MockURLHandler) ShortenURL(c *gin.Context) {
	m.Called(c)
}

func (m *MockURLHandler) Welcome(c *gin.Context) {
	m.Called(c)
}

func (m *MockURLHandler) HealthCheck(c *gin.Context) {
	m.Called(c)
}
