// Package types defines the data structures used in the URL shortener service.
package types

// ShortenRequest represents the request structure for shortening a URL. The
// url field is opaque: it is never validated and is echoed back verbatim,
// empty string included.
type ShortenRequest struct {
	URL string `json:"url"`
}

// ShortenResponse represents the response structure for a shortened URL. It
// is a plain value assembled per request; nothing retains it once the
// response is written.
type ShortenResponse struct {
	ShortURL    string `json:"shortUrl"`
	ShortCode   string `json:"shortCode"`
	OriginalURL string `json:"originalUrl"`
}
