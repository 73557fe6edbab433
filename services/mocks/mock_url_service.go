package mocks

import (
	"github.com/stretchr/testify/mock"

	"github.com/ryan-syed/URLShortener/types"
)

// MockURLService is a mock URLService interface
type MockURLService struct {
	mock.Mock
}

func (m *MockURLService) Shorten(req types.ShortenRequest) types.ShortenResponse {
	args := m.Called(req)
	return args.Get(0).(types.ShortenResponse)
}
