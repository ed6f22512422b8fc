// Package router HTTP route tablosunu ve middleware zincirini kurar.
package router

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog/log"

	"github.com/onerilhan/bookkeeping-api/internal/handlers"
	"github.com/onerilhan/bookkeeping-api/internal/middleware"
	"github.com/onerilhan/bookkeeping-api/internal/middleware/errors"
)

// APIPrefix tüm iş endpoint'lerinin ön eki
const APIPrefix = "/api"

// Handlers router'ın bağladığı handler'lar
type Handlers struct {
	Bank           *handlers.BankHandler
	Card           *handlers.CardHandler
	Client         *handlers.ClientHandler
	Transaction    *handlers.TransactionHandler
	ProfilerBank   *handlers.ProfilerBankHandler
	ProfilerClient *handlers.ProfilerClientHandler
	Profile        *handlers.ProfileHandler
	Finkeda        *handlers.FinkedaHandler
	Calculator     *handlers.CalculatorHandler
	Report         *handlers.ReportHandler
	Health         *handlers.HealthHandler
}

// Options ortam bağımlı middleware ayarları
type Options struct {
	Env         string
	CORSOrigins []string
	RateLimit   *middleware.RateLimitConfig
	// TokenValidator nil ise API kimlik doğrulamasız açıktır
	TokenValidator middleware.TokenValidator
}

// crudHandler her ana kaydın ortak endpoint seti
type crudHandler interface {
	List(w http.ResponseWriter, r *http.Request) error
	Paginate(w http.ResponseWriter, r *http.Request) error
	Create(w http.ResponseWriter, r *http.Request) error
	Update(w http.ResponseWriter, r *http.Request) error
	Delete(w http.ResponseWriter, r *http.Request) error
}

type autocompleter interface {
	Autocomplete(w http.ResponseWriter, r *http.Request) error
}

// AvailableRoutes ROUTE_NOT_FOUND yanıtında listelenen üst seviye route'lar
var AvailableRoutes = []string{
	"GET /health",
	"GET /metrics",
	APIPrefix + "/banks",
	APIPrefix + "/cards",
	APIPrefix + "/clients",
	APIPrefix + "/transactions",
	APIPrefix + "/profiler/banks",
	APIPrefix + "/profiler/clients",
	APIPrefix + "/profiler/profiles",
	APIPrefix + "/profiler/transactions",
	APIPrefix + "/finkeda-settings",
	APIPrefix + "/calculator",
	APIPrefix + "/reports",
}

// New route tablosunu kurar ve middleware zinciriyle sarar.
// Zincir mux'ın dışındadır; 404/405 yanıtları da aynı header ve logları alır.
func New(h *Handlers, opts Options) http.Handler {
	responder := middleware.NewErrorResponder(errors.ConfigFor(opts.Env))

	r := mux.NewRouter()
	r.NotFoundHandler = middleware.NotFoundJSONHandler(responder, AvailableRoutes)
	r.MethodNotAllowedHandler = middleware.MethodNotAllowedJSONHandler(responder)

	metrics := middleware.NewMetrics(nil)

	r.HandleFunc("/health", responder.Handle(h.Health.Check)).Methods(http.MethodGet)
	r.HandleFunc("/metrics", responder.Handle(handlers.NewMetricsHandler(metrics).Get)).Methods(http.MethodGet)

	mountEntity(r, responder, "/banks", h.Bank)
	mountEntity(r, responder, "/cards", h.Card)
	mountEntity(r, responder, "/clients", h.Client)
	mountEntity(r, responder, "/transactions", h.Transaction)
	mountEntity(r, responder, "/profiler/banks", h.ProfilerBank)
	mountEntity(r, responder, "/profiler/clients", h.ProfilerClient)
	mountEntity(r, responder, "/profiler/profiles", h.Profile)

	api := func(path string) string { return APIPrefix + path }

	r.HandleFunc(api("/profiler/profiles/mark-done"), responder.Handle(h.Profile.MarkDone)).Methods(http.MethodPut)
	r.HandleFunc(api("/profiler/profiles/dashboard"), responder.Handle(h.Profile.Dashboard)).Methods(http.MethodGet)
	r.HandleFunc(api("/profiler/transactions"), responder.Handle(h.Profile.AddTransaction)).Methods(http.MethodPost)
	r.HandleFunc(api("/profiler/transactions/paginated"), responder.Handle(h.Profile.PaginateTransactions)).Methods(http.MethodGet)

	r.HandleFunc(api("/finkeda-settings"), responder.Handle(h.Finkeda.Get)).Methods(http.MethodGet)
	r.HandleFunc(api("/finkeda-settings"), responder.Handle(h.Finkeda.Update)).Methods(http.MethodPut)
	r.HandleFunc(api("/finkeda-settings/history"), responder.Handle(h.Finkeda.History)).Methods(http.MethodGet)

	r.HandleFunc(api("/calculator/simple"), responder.Handle(h.Calculator.Simple)).Methods(http.MethodPost)
	r.HandleFunc(api("/calculator/finkeda"), responder.Handle(h.Calculator.Finkeda)).Methods(http.MethodPost)

	r.HandleFunc(api("/reports/generate"), responder.Handle(h.Report.Generate)).Methods(http.MethodPost)

	known := logRoutes(r)
	knownPath := func(path string) bool {
		_, ok := known[path]
		return ok
	}

	return chain(r, responder, metrics.Middleware(knownPath), opts)
}

// mountEntity liste, sayfalı liste, öneri ve CRUD endpoint'lerini bağlar.
// Güncelleme ve silme id'yi gövdeden alır.
func mountEntity(r *mux.Router, responder *middleware.ErrorResponder, path string, h crudHandler) {
	base := APIPrefix + path

	r.HandleFunc(base, responder.Handle(h.List)).Methods(http.MethodGet)
	r.HandleFunc(base, responder.Handle(h.Create)).Methods(http.MethodPost)
	r.HandleFunc(base, responder.Handle(h.Update)).Methods(http.MethodPut)
	r.HandleFunc(base, responder.Handle(h.Delete)).Methods(http.MethodDelete)
	r.HandleFunc(base+"/paginated", responder.Handle(h.Paginate)).Methods(http.MethodGet)

	if ac, ok := h.(autocompleter); ok {
		r.HandleFunc(base+"/autocomplete", responder.Handle(ac.Autocomplete)).Methods(http.MethodGet)
	}
}

// chain dıştan içe: panic recovery, request log, metrik, güvenlik header'ları, CORS,
// içerik kontrolü, rate limit, auth
func chain(next http.Handler, responder *middleware.ErrorResponder, metrics func(http.Handler) http.Handler, opts Options) http.Handler {
	if opts.TokenValidator != nil {
		next = middleware.AuthMiddleware(opts.TokenValidator, responder, "/health")(next)
	}
	if opts.RateLimit != nil {
		next = middleware.NewRateLimiter(opts.RateLimit, responder).Handler()(next)
	}
	next = middleware.ContentMiddleware(middleware.DefaultContentConfig(), responder)(next)
	next = middleware.CORSMiddleware(middleware.NewCORSConfig(opts.CORSOrigins))(next)
	next = middleware.SecurityHeadersMiddleware(middleware.SecurityConfigFor(opts.Env))(next)
	next = metrics(next)
	next = middleware.RequestLoggingMiddleware(middleware.DefaultLoggingConfig())(next)
	return middleware.ErrorHandlingMiddleware(responder)(next)
}

// logRoutes route'ları loglar ve kayıtlı path kümesini döner
func logRoutes(r *mux.Router) map[string]struct{} {
	known := make(map[string]struct{})
	_ = r.Walk(func(route *mux.Route, router *mux.Router, ancestors []*mux.Route) error {
		pathTemplate, err := route.GetPathTemplate()
		if err == nil {
			known[pathTemplate] = struct{}{}
			methods, _ := route.GetMethods()
			log.Debug().
				Str("path", pathTemplate).
				Strs("methods", methods).
				Msg("📍 Route registered")
		}
		return nil
	})
	return known
}
