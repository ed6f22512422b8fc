package middleware

import (
	"encoding/json"
	stderrors "errors"
	"fmt"
	"net/http"
	"runtime/debug"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/onerilhan/bookkeeping-api/internal/middleware/errors"
)

// HandlerFunc hata döndürebilen handler tipi; hatalar tek noktada zarflanır
type HandlerFunc func(w http.ResponseWriter, r *http.Request) error

// ErrorResponder tüm hataları standart error zarfına çevirir
type ErrorResponder struct {
	config *errors.ErrorConfig
}

// NewErrorResponder yeni responder oluşturur
func NewErrorResponder(config *errors.ErrorConfig) *ErrorResponder {
	if config == nil {
		config = errors.DefaultErrorConfig()
	}
	return &ErrorResponder{config: config}
}

// Handle hata döndüren handler'ı http.HandlerFunc'a çevirir
func (er *ErrorResponder) Handle(fn HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := fn(w, r); err != nil {
			er.Respond(w, r, err)
		}
	}
}

// Respond hatayı sınıflandırıp error zarfını yazar
func (er *ErrorResponder) Respond(w http.ResponseWriter, r *http.Request, err error) {
	var apiErr errors.APIError
	if !stderrors.As(err, &apiErr) {
		log.Error().
			Err(err).
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Msg("Sınıflandırılmamış hata")
		er.send(w, r, http.StatusInternalServerError, errors.CodeInternal, getErrorMessage(http.StatusInternalServerError, er.config), nil, "")
		return
	}

	logAPIError(apiErr, r, fmt.Sprintf("%T", apiErr))

	message := apiErr.Error()
	var dbErr *errors.DatabaseError
	if stderrors.As(apiErr, &dbErr) {
		message = dbErr.PublicMessage()
	}

	er.send(w, r, apiErr.Status(), apiErr.Code(), message, apiErr.Details(), "")
}

// send standardized error response gönderir
func (er *ErrorResponder) send(w http.ResponseWriter, r *http.Request, statusCode int, code, message string, details interface{}, stack string) {
	response := errors.ErrorResponse{
		Success: false,
		Error: errors.ErrorBody{
			StatusCode: statusCode,
			Message:    truncateString(message, er.config.MaxErrorLength),
			ErrorCode:  code,
			Details:    details,
			Timestamp:  time.Now().Format(time.RFC3339),
			Path:       r.URL.Path,
			Method:     r.Method,
			RequestID:  w.Header().Get("X-Request-ID"),
		},
	}

	if er.config.ShowStackTrace && stack != "" {
		response.Error.Stack = stack
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	if err := json.NewEncoder(w).Encode(response); err != nil {
		log.Error().
			Err(err).
			Str("request_id", response.Error.RequestID).
			Str("original_error", message).
			Msg("Error response JSON encoding failed")
		return
	}

	logError(r, statusCode, message, response.Error.RequestID)
}

// ErrorHandlingMiddleware panic recovery; yakalanan değer de aynı zarfla döner
func ErrorHandlingMiddleware(responder *ErrorResponder) func(http.Handler) http.Handler {
	if responder == nil {
		responder = NewErrorResponder(nil)
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				recovered := recover()
				if recovered == nil {
					return
				}

				// APIError ile panic edilmişse normal hata gibi işle
				if apiErr, ok := recovered.(errors.APIError); ok {
					responder.Respond(w, r, apiErr)
					return
				}

				panicInfo := &errors.PanicInfo{
					Value:     recovered,
					Stack:     string(debug.Stack()),
					RequestID: w.Header().Get("X-Request-ID"),
					Method:    r.Method,
					Path:      r.URL.Path,
					UserAgent: r.Header.Get("User-Agent"),
					ClientIP:  getClientIP(r),
					Timestamp: time.Now(),
				}
				logPanic(panicInfo, responder.config)

				responder.send(w, r, http.StatusInternalServerError, errors.CodeInternal,
					getErrorMessage(http.StatusInternalServerError, responder.config), nil, panicInfo.Stack)
			}()

			next.ServeHTTP(w, r)
		})
	}
}
