package services

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/ryan-syed/URLShortener/config"
	"github.com/ryan-syed/URLShortener/types"
	"github.com/ryan-syed/URLShortener/urlgen"
)

// fixedGenerator returns the same code on every call.
type fixedGenerator struct {
	code string
}

func (g fixedGenerator) Code() string { return g.code }

func TestShorten(t *testing.T) {
	service := NewURLService(fixedGenerator{code: "5UfZOVH2"}, "https://sho.rt", zap.NewNop())

	t.Run("Assembles Response", func(t *testing.T) {
		resp := service.Shorten(types.ShortenRequest{URL: "https://example.com/a/b/c"})

		assert.Equal(t, "5UfZOVH2", resp.ShortCode)
		assert.Equal(t, "https://sho.rt/5UfZOVH2", resp.ShortURL)
		assert.Equal(t, "https://example.com/a/b/c", resp.OriginalURL)
	})

	t.Run("Echoes Empty URL", func(t *testing.T) {
		resp := service.Shorten(types.ShortenRequest{URL: ""})

		assert.Equal(t, "", resp.OriginalURL, "The empty string is a legal URL value and must be echoed")
		assert.Equal(t, "5UfZOVH2", resp.ShortCode)
	})

	t.Run("Echoes Non-ASCII URL", func(t *testing.T) {
		original := "https://пример.рф/путь?q=значение"
		resp := service.Shorten(types.ShortenRequest{URL: original})

		assert.Equal(t, original, resp.OriginalURL, "Non-ASCII URLs must be echoed byte for byte")
	})

	t.Run("Short Generator Output Is Not Padded", func(t *testing.T) {
		short := NewURLService(fixedGenerator{code: "0"}, "https://sho.rt", zap.NewNop())
		resp := short.Shorten(types.ShortenRequest{URL: "https://example.com"})

		assert.Equal(t, "0", resp.ShortCode)
		assert.Equal(t, "https://sho.rt/0", resp.ShortURL)
	})
}

func TestNewURLServiceDefaults(t *testing.T) {
	t.Run("Empty Base URL Falls Back To Default", func(t *testing.T) {
		service := NewURLService(fixedGenerator{code: "abc"}, "", zap.NewNop())
		resp := service.Shorten(types.ShortenRequest{URL: "https://example.com"})

		assert.Equal(t, config.DefaultBaseURL+"/abc", resp.ShortURL)
	})

	t.Run("Nil Generator Falls Back To Default Source", func(t *testing.T) {
		service := NewURLService(nil, "https://sho.rt", zap.NewNop())
		resp := service.Shorten(types.ShortenRequest{URL: "https://example.com"})

		assert.NotEmpty(t, resp.ShortCode)
		assert.LessOrEqual(t, len(resp.ShortCode), urlgen.MaxCodeLength)
	})

	t.Run("Nil Logger Is Tolerated", func(t *testing.T) {
		service := NewURLService(fixedGenerator{code: "abc"}, "https://sho.rt", nil)

		assert.NotPanics(t, func() {
			service.Shorten(types.ShortenRequest{URL: "https://example.com"})
		})
	})
}

func TestShortenWithRealGenerator(t *testing.T) {
	service := NewURLService(urlgen.New(nil), "https://sho.rt", zap.NewNop())
	codePattern := regexp.MustCompile(`^[0-9A-Za-z]{1,8}$`)

	for i := 0; i < 1000; i++ {
		resp := service.Shorten(types.ShortenRequest{URL: "https://example.com"})

		require.Regexp(t, codePattern, resp.ShortCode, "Short codes must be 1-8 Base62 characters")
		require.Equal(t, "https://sho.rt/"+resp.ShortCode, resp.ShortURL, "Short URL must be base, slash, code")
		require.Equal(t, "https://example.com", resp.OriginalURL)
	}
}
