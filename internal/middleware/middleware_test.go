package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/onerilhan/bookkeeping-api/internal/middleware/errors"
)

var okHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
})

func errorCode(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var body errors.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.False(t, body.Success)
	return body.Error.ErrorCode
}

func TestRateLimiter_BlocksAfterBurst(t *testing.T) {
	rl := NewRateLimiter(&RateLimitConfig{RequestsPerMinute: 1, Burst: 2}, NewErrorResponder(nil))
	h := rl.Handler()(okHandler)

	for i := 0; i < 2; i++ {
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/banks", nil))
		assert.Equal(t, http.StatusOK, rec.Code)
	}

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/banks", nil))
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.Equal(t, "60", rec.Header().Get("Retry-After"))
	assert.Equal(t, errors.CodeRateLimited, errorCode(t, rec))
}

func TestRateLimiter_SkipPaths(t *testing.T) {
	rl := NewRateLimiter(&RateLimitConfig{RequestsPerMinute: 1, Burst: 1, SkipPaths: []string{"/health"}}, NewErrorResponder(nil))
	h := rl.Handler()(okHandler)

	for i := 0; i < 5; i++ {
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
		assert.Equal(t, http.StatusOK, rec.Code)
	}
}

func TestRateLimiter_IgnoresSpoofedForwardedFor(t *testing.T) {
	rl := NewRateLimiter(&RateLimitConfig{RequestsPerMinute: 1, Burst: 1}, NewErrorResponder(nil))
	h := rl.Handler()(okHandler)

	// her istek farklı bir X-Forwarded-For uydursa da aynı bağlantıdan geliyor
	for i, spoofed := range []string{"1.1.1.1", "2.2.2.2", "3.3.3.3"} {
		req := httptest.NewRequest(http.MethodGet, "/api/banks", nil)
		req.RemoteAddr = "203.0.113.7:5000"
		req.Header.Set("X-Forwarded-For", spoofed)
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)

		if i == 0 {
			assert.Equal(t, http.StatusOK, rec.Code)
		} else {
			assert.Equal(t, http.StatusTooManyRequests, rec.Code)
		}
	}
}

func TestRateLimiter_TrustedProxyUsesForwardedClient(t *testing.T) {
	rl := NewRateLimiter(&RateLimitConfig{
		RequestsPerMinute: 1,
		Burst:             1,
		TrustedProxies:    []string{"10.0.0.1"},
	}, NewErrorResponder(nil))
	h := rl.Handler()(okHandler)

	send := func(forwarded string) int {
		req := httptest.NewRequest(http.MethodGet, "/api/banks", nil)
		req.RemoteAddr = "10.0.0.1:443"
		req.Header.Set("X-Forwarded-For", forwarded)
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		return rec.Code
	}

	assert.Equal(t, http.StatusOK, send("198.51.100.1"))
	assert.Equal(t, http.StatusOK, send("198.51.100.2"))
	assert.Equal(t, http.StatusTooManyRequests, send("198.51.100.1"))
}

func TestClientIP(t *testing.T) {
	trusted := []string{"10.0.0.1", "10.0.0.2"}

	tests := []struct {
		name    string
		remote  string
		xff     string
		realIP  string
		trusted []string
		want    string
	}{
		{"header'sız", "203.0.113.7:5000", "", "", trusted, "203.0.113.7"},
		{"güvenilmeyen bağlantı header'ı yok sayılır", "203.0.113.7:5000", "1.1.1.1", "2.2.2.2", trusted, "203.0.113.7"},
		{"proxy listesi boş", "10.0.0.1:443", "1.1.1.1", "", nil, "10.0.0.1"},
		{"güvenilir proxy", "10.0.0.1:443", "198.51.100.1", "", trusted, "198.51.100.1"},
		{"sağdan ilk güvenilmeyen adres", "10.0.0.1:443", "6.6.6.6, 198.51.100.1, 10.0.0.2", "", trusted, "198.51.100.1"},
		{"X-Real-IP yedeği", "10.0.0.1:443", "", "198.51.100.9", trusted, "198.51.100.9"},
		{"port'suz RemoteAddr", "203.0.113.7", "", "", trusted, "203.0.113.7"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.RemoteAddr = tt.remote
			if tt.xff != "" {
				req.Header.Set("X-Forwarded-For", tt.xff)
			}
			if tt.realIP != "" {
				req.Header.Set("X-Real-IP", tt.realIP)
			}

			assert.Equal(t, tt.want, clientIP(req, tt.trusted))
		})
	}
}

func TestContentMiddleware(t *testing.T) {
	h := ContentMiddleware(nil, NewErrorResponder(nil))(okHandler)

	// JSON gövde geçer
	req := httptest.NewRequest(http.MethodPost, "/api/banks", strings.NewReader(`{"name":"x"}`))
	req.Header.Set("Content-Type", "application/json; charset=utf-8")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)

	// form gövdesi reddedilir
	req = httptest.NewRequest(http.MethodPost, "/api/banks", strings.NewReader("name=x"))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusUnsupportedMediaType, rec.Code)
	assert.Equal(t, errors.CodeUnsupportedMedia, errorCode(t, rec))

	// gövdesiz GET kontrol dışı
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/banks", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestContentMiddleware_TooLarge(t *testing.T) {
	h := ContentMiddleware(&ContentConfig{MaxBodySize: 4, ContentTypes: []string{"application/json"}}, NewErrorResponder(nil))(okHandler)

	req := httptest.NewRequest(http.MethodPut, "/api/banks", strings.NewReader(`{"id":1}`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
}

func TestErrorHandlingMiddleware_RecoversPanic(t *testing.T) {
	h := ErrorHandlingMiddleware(nil)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/banks", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, errors.CodeInternal, errorCode(t, rec))
}

func TestErrorHandlingMiddleware_APIErrorPanic(t *testing.T) {
	h := ErrorHandlingMiddleware(nil)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic(errors.NewNotFoundError("Banka", 7))
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/banks", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, errors.CodeNotFound, errorCode(t, rec))
}

// Veritabanı hatasının iç detayı istemciye sızmaz
func TestErrorResponder_DatabaseErrorHidesCause(t *testing.T) {
	rec := httptest.NewRecorder()
	cause := assert.AnError
	NewErrorResponder(nil).Respond(rec, httptest.NewRequest(http.MethodGet, "/api/banks", nil),
		errors.NewDatabaseError("Bankalar getirilemedi", cause))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.NotContains(t, rec.Body.String(), cause.Error())
	assert.Contains(t, rec.Body.String(), "Bankalar getirilemedi")
}

func TestMetrics_CountsRequests(t *testing.T) {
	m := NewMetrics(nil)
	known := func(path string) bool { return path == "/api/banks" }
	h := m.Middleware(known)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/banks" {
			w.WriteHeader(http.StatusNotFound)
		}
	}))

	for _, path := range []string{"/api/banks", "/api/banks", "/nope/1", "/nope/2"} {
		h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, path, nil))
	}

	snap := m.Snapshot()
	assert.Equal(t, int64(4), snap.TotalRequests)
	assert.Equal(t, int64(0), snap.ActiveRequests)
	assert.Equal(t, int64(2), snap.EndpointCounts["/api/banks"])
	assert.Equal(t, int64(2), snap.EndpointCounts[unmatchedPath])
	assert.Equal(t, int64(2), snap.StatusCodeCounts[http.StatusNotFound])
	assert.Equal(t, 2, snap.ResponseTimeSummary["/api/banks"].Count)
}

func TestCORSMiddleware_UnknownOriginGetsNoHeader(t *testing.T) {
	h := CORSMiddleware(NewCORSConfig([]string{"http://localhost:3000"}))(okHandler)

	req := httptest.NewRequest(http.MethodGet, "/api/banks", nil)
	req.Header.Set("Origin", "http://evil.example")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestCORSConfig_AllowsOrigin(t *testing.T) {
	cfg := NewCORSConfig([]string{"http://localhost:3000", "https://*.ledger.example"})

	assert.True(t, cfg.allowsOrigin("http://localhost:3000"))
	assert.True(t, cfg.allowsOrigin("https://app.ledger.example"))
	assert.False(t, cfg.allowsOrigin("http://app.ledger.example"))
	assert.False(t, cfg.allowsOrigin("https://ledger.example.evil.com"))
	assert.False(t, cfg.allowsOrigin(""))
}
