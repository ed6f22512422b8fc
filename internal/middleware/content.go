package middleware

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/onerilhan/bookkeeping-api/internal/middleware/errors"
)

// ContentConfig gövdeli isteklerin kabul koşulları
type ContentConfig struct {
	MaxBodySize  int64
	ContentTypes []string
}

// DefaultContentConfig sadece JSON, en fazla 1MB
func DefaultContentConfig() *ContentConfig {
	return &ContentConfig{
		MaxBodySize:  1 << 20,
		ContentTypes: []string{"application/json"},
	}
}

// ContentMiddleware gövde taşıyan POST/PUT/PATCH/DELETE isteklerinde
// Content-Type ve Content-Length kontrolü yapar
func ContentMiddleware(config *ContentConfig, responder *ErrorResponder) func(http.Handler) http.Handler {
	if config == nil {
		config = DefaultContentConfig()
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !carriesBody(r) {
				next.ServeHTTP(w, r)
				return
			}

			if r.ContentLength > config.MaxBodySize {
				responder.Respond(w, r, &errors.HTTPError{
					StatusCode: http.StatusRequestEntityTooLarge,
					ErrorCode:  errors.CodePayloadTooLarge,
					Message:    fmt.Sprintf("request body çok büyük. Maksimum boyut: %d bytes", config.MaxBodySize),
				})
				return
			}

			contentType := r.Header.Get("Content-Type")
			if !allowedContentType(contentType, config.ContentTypes) {
				responder.Respond(w, r, &errors.HTTPError{
					StatusCode: http.StatusUnsupportedMediaType,
					ErrorCode:  errors.CodeUnsupportedMedia,
					Message:    "desteklenmeyen Content-Type",
					Extra: map[string]interface{}{
						"content_type": contentType,
						"allowed":      config.ContentTypes,
					},
				})
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// carriesBody gövdesiz (Content-Length 0) istekler kontrol dışıdır
func carriesBody(r *http.Request) bool {
	switch r.Method {
	case http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete:
		return r.ContentLength != 0
	default:
		return false
	}
}

// allowedContentType charset gibi parametreleri yok sayar
func allowedContentType(contentType string, allowed []string) bool {
	mediaType := strings.ToLower(strings.TrimSpace(strings.SplitN(contentType, ";", 2)[0]))
	for _, a := range allowed {
		if mediaType == a {
			return true
		}
	}
	return false
}
