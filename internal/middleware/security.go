package middleware

import (
	"fmt"
	"net/http"
)

// SecurityConfig JSON API yanıtlarına eklenecek güvenlik header'ları
type SecurityConfig struct {
	ContentSecurityPolicy string
	HSTSMaxAge            int // 0 ise HSTS gönderilmez
	FrameOptions          string
	ReferrerPolicy        string
	CacheControl          string
}

// SecurityConfigFor ortama göre güvenlik ayarı seçer
func SecurityConfigFor(env string) *SecurityConfig {
	config := &SecurityConfig{
		// API sadece JSON döner, hiçbir kaynak yüklenmez
		ContentSecurityPolicy: "default-src 'none'; frame-ancestors 'none'",
		HSTSMaxAge:            31536000,
		FrameOptions:          "DENY",
		ReferrerPolicy:        "no-referrer",
		CacheControl:          "no-store",
	}
	if env == "development" {
		config.HSTSMaxAge = 0 // HTTP üzerinde geliştirme
	}
	return config
}

// SecurityHeadersMiddleware güvenlik header'larını ekler
func SecurityHeadersMiddleware(config *SecurityConfig) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			h := w.Header()
			h.Set("X-Content-Type-Options", "nosniff")
			if config.ContentSecurityPolicy != "" {
				h.Set("Content-Security-Policy", config.ContentSecurityPolicy)
			}
			if config.HSTSMaxAge > 0 {
				h.Set("Strict-Transport-Security", fmt.Sprintf("max-age=%d; includeSubDomains", config.HSTSMaxAge))
			}
			if config.FrameOptions != "" {
				h.Set("X-Frame-Options", config.FrameOptions)
			}
			if config.ReferrerPolicy != "" {
				h.Set("Referrer-Policy", config.ReferrerPolicy)
			}
			if config.CacheControl != "" {
				h.Set("Cache-Control", config.CacheControl)
			}

			next.ServeHTTP(w, r)
		})
	}
}
