// Package services implements the URL shortening logic behind the HTTP
// handlers.
package services

import (
	"go.uber.org/zap"

	"github.com/ryan-syed/URLShortener/config"
	"github.com/ryan-syed/URLShortener/metrics"
	"github.com/ryan-syed/URLShortener/types"
	"github.com/ryan-syed/URLShortener/urlgen"
)

// CodeGenerator produces short codes. Satisfied by *urlgen.Generator.
type CodeGenerator interface {
	Code() string
}

// URLService turns shorten requests into responses. Every call is
// independent: nothing is stored, looked up, or deduplicated, so there are
// no error conditions and no need for a context.
type URLService interface {
	Shorten(req types.ShortenRequest) types.ShortenResponse
}

type urlService struct {
	gen     CodeGenerator
	baseURL string
	logger  *zap.Logger
}

// NewURLService creates a URLService around the given code generator. The
// base URL is resolved once here: an empty value falls back to
// config.DefaultBaseURL. A nil generator falls back to one backed by the
// default random source, and a nil logger to a no-op logger.
func NewURLService(gen CodeGenerator, baseURL string, logger *zap.Logger) URLService {
	if gen == nil {
		gen = urlgen.New(nil)
	}
	if baseURL == "" {
		baseURL = config.DefaultBaseURL
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &urlService{
		gen:     gen,
		baseURL: baseURL,
		logger:  logger,
	}
}

// Shorten draws one short code and assembles the response. The original URL
// is echoed back untouched; the short URL is the configured base joined with
// the code by a single slash.
func (s *urlService) Shorten(req types.ShortenRequest) types.ShortenResponse {
	code := s.gen.Code()
	metrics.RecordCodeGenerated(len(code))

	s.logger.Debug("Short code generated",
		zap.String("short_code", code),
		zap.String("base_url", s.baseURL))

	return types.ShortenResponse{
		ShortURL:    s.baseURL + "/" + code,
		ShortCode:   code,
		OriginalURL: req.URL,
	}
}
