package router

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/onerilhan/bookkeeping-api/internal/auth"
	"github.com/onerilhan/bookkeeping-api/internal/handlers"
	"github.com/onerilhan/bookkeeping-api/internal/validation"
)

type okPinger struct{}

func (okPinger) PingContext(context.Context) error { return nil }

// Servissiz handler'lar; testler sadece servise ulaşmadan dönen yolları kullanır
func testHandlers() *Handlers {
	v := validation.New()
	return &Handlers{
		Bank:           handlers.NewBankHandler(nil, v),
		Card:           handlers.NewCardHandler(nil, v),
		Client:         handlers.NewClientHandler(nil, v),
		Transaction:    handlers.NewTransactionHandler(nil, v),
		ProfilerBank:   handlers.NewProfilerBankHandler(nil, v),
		ProfilerClient: handlers.NewProfilerClientHandler(nil, v),
		Profile:        handlers.NewProfileHandler(nil, v),
		Finkeda:        handlers.NewFinkedaHandler(nil, v),
		Calculator:     handlers.NewCalculatorHandler(nil, v),
		Report:         handlers.NewReportHandler(nil, v),
		Health:         handlers.NewHealthHandler(okPinger{}),
	}
}

func do(h http.Handler, method, path string) (*httptest.ResponseRecorder, map[string]interface{}) {
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(method, path, nil))
	var body map[string]interface{}
	_ = json.Unmarshal(rec.Body.Bytes(), &body)
	return rec, body
}

func TestRouter_Health(t *testing.T) {
	h := New(testHandlers(), Options{Env: "test"})

	rec, body := do(h, http.MethodGet, "/health")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, true, body["success"])
	assert.NotEmpty(t, rec.Header().Get("X-Request-ID"))
	assert.Equal(t, "nosniff", rec.Header().Get("X-Content-Type-Options"))
}

func TestRouter_UnknownRoute(t *testing.T) {
	h := New(testHandlers(), Options{Env: "test"})

	rec, body := do(h, http.MethodGet, "/api/unknown")

	assert.Equal(t, http.StatusNotFound, rec.Code)
	errBody := body["error"].(map[string]interface{})
	assert.Equal(t, "ROUTE_NOT_FOUND", errBody["errorCode"])
	assert.Equal(t, "/api/unknown", errBody["path"])
}

func TestRouter_MethodNotAllowed(t *testing.T) {
	h := New(testHandlers(), Options{Env: "test"})

	rec, body := do(h, http.MethodPatch, "/api/banks")

	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
	assert.Equal(t, "METHOD_NOT_ALLOWED", body["error"].(map[string]interface{})["errorCode"])
}

func TestRouter_TransactionsHaveNoAutocomplete(t *testing.T) {
	h := New(testHandlers(), Options{Env: "test"})

	rec, _ := do(h, http.MethodGet, "/api/transactions/autocomplete")

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

// Geçersiz query servis çağrılmadan 422 döner
func TestRouter_InvalidQueryBeforeService(t *testing.T) {
	h := New(testHandlers(), Options{Env: "test"})

	rec, body := do(h, http.MethodGet, "/api/profiler/profiles/paginated?min_balance=abc")

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Equal(t, "VALIDATION_ERROR", body["error"].(map[string]interface{})["errorCode"])
}

func TestRouter_AuthEnabled(t *testing.T) {
	tokens := auth.NewTokenManager("test-secret", time.Hour)
	h := New(testHandlers(), Options{Env: "test", TokenValidator: tokens})

	rec, _ := do(h, http.MethodGet, "/api/banks/paginated?page=x")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	// health doğrulamasız
	rec, _ = do(h, http.MethodGet, "/health")
	assert.Equal(t, http.StatusOK, rec.Code)

	token, _, err := tokens.GenerateToken("operator")
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodGet, "/api/banks/paginated?page=x", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}

func TestRouter_CORSPreflight(t *testing.T) {
	h := New(testHandlers(), Options{Env: "test", CORSOrigins: []string{"http://localhost:3000"}})

	req := httptest.NewRequest(http.MethodOptions, "/api/banks", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, "http://localhost:3000", rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestRouter_RejectsNonJSONBody(t *testing.T) {
	h := New(testHandlers(), Options{Env: "test"})

	req := httptest.NewRequest(http.MethodPost, "/api/banks", strings.NewReader("name=x"))
	req.Header.Set("Content-Type", "text/plain")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnsupportedMediaType, rec.Code)
}

func TestRouter_MetricsCountsRequests(t *testing.T) {
	h := New(testHandlers(), Options{Env: "test"})

	do(h, http.MethodGet, "/health")
	do(h, http.MethodGet, "/api/nope/42")

	rec, body := do(h, http.MethodGet, "/metrics")
	require.Equal(t, http.StatusOK, rec.Code)

	data := body["data"].(map[string]interface{})
	// /metrics isteği de sayılır
	assert.Equal(t, float64(3), data["total_requests"])
	endpoints := data["endpoint_counts"].(map[string]interface{})
	assert.Equal(t, float64(1), endpoints["/health"])
	assert.Equal(t, float64(1), endpoints["unmatched"])
}
