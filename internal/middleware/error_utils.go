package middleware

import (
	"fmt"
	"net"
	"net/http"
	"strings"

	"github.com/onerilhan/bookkeeping-api/internal/middleware/errors"
)

// getErrorMessage status code'a göre client'a gösterilecek mesajı alır
func getErrorMessage(statusCode int, config *errors.ErrorConfig) string {
	if customMessage, exists := config.CustomErrorMap[statusCode]; exists {
		return customMessage
	}

	switch statusCode {
	case http.StatusInternalServerError:
		return "Internal Server Error"
	case http.StatusServiceUnavailable:
		return "Service Unavailable"
	default:
		return fmt.Sprintf("HTTP Error %d", statusCode)
	}
}

// getClientIP bağlantının karşı ucunu döner. Header'lar istemci kontrolünde
// olduğu için burada okunmaz.
func getClientIP(r *http.Request) string {
	return clientIP(r, nil)
}

// clientIP bağlantı güvenilir bir proxy'den geliyorsa proxy header'larına bakar.
// X-Forwarded-For sağdan okunur; güvenilir proxy olmayan ilk adres istemcidir.
func clientIP(r *http.Request, trustedProxies []string) string {
	remote := remoteHost(r)
	if !contains(trustedProxies, remote) {
		return remote
	}

	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		hops := strings.Split(xff, ",")
		for i := len(hops) - 1; i >= 0; i-- {
			hop := strings.TrimSpace(hops[i])
			if hop != "" && !contains(trustedProxies, hop) {
				return hop
			}
		}
	}

	if xri := strings.TrimSpace(r.Header.Get("X-Real-IP")); xri != "" {
		return xri
	}
	return remote
}

func remoteHost(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}

// contains slice'da item var mı kontrol eder
func contains(slice []string, item string) bool {
	for _, s := range slice {
		if s == item {
			return true
		}
	}
	return false
}

// truncateString string'i belirtilen uzunlukta keser
func truncateString(s string, maxLength int) string {
	if maxLength <= 3 || len(s) <= maxLength {
		return s
	}
	return s[:maxLength-3] + "..."
}
