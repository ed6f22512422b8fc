package middleware

import (
	"net/http"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/onerilhan/bookkeeping-api/internal/middleware/errors"
)

// logAPIError sınıflandırılmış hatayı loglar. 5xx error, diğerleri warn seviyesindedir.
// DatabaseError'ın driver hatası sadece logda görünür.
func logAPIError(err errors.APIError, r *http.Request, errorType string) {
	event := log.Warn()
	if err.Status() >= http.StatusInternalServerError {
		event = log.Error()
	}

	event = event.
		Str("error_type", errorType).
		Str("error_code", err.Code()).
		Int("status_code", err.Status()).
		Str("method", r.Method).
		Str("path", r.URL.Path).
		Str("client_ip", getClientIP(r))

	switch e := err.(type) {
	case *errors.ValidationError:
		event.Str("field", e.Field).
			Interface("value", e.Value).
			Str("expected", e.Expected).
			Msg("Geçersiz istek")

	case *errors.NotFoundError:
		event.Str("resource", e.Resource).
			Interface("id", e.ID).
			Msg("Kayıt bulunamadı")

	case *errors.DatabaseError:
		// Err nil ise referans koruması reddi, değilse driver hatası
		if e.Err != nil {
			event = event.Err(e.Err)
		}
		event.Str("public_message", e.Message).Msg("Veritabanı işlemi başarısız")

	case *errors.RouteNotFoundError:
		event.Msg("Bilinmeyen route")

	case *errors.AuthError:
		event.Str("reason", e.Message).Msg("Kimlik doğrulama başarısız")

	default:
		event.Str("error_message", err.Error()).Msg("API hatası")
	}
}

// logPanic yakalanan panic'i loglar; stack sadece EnablePanicLogs açıkken eklenir
func logPanic(info *errors.PanicInfo, config *errors.ErrorConfig) {
	event := log.Error().
		Str("request_id", info.RequestID).
		Str("method", info.Method).
		Str("path", info.Path).
		Str("client_ip", info.ClientIP).
		Str("user_agent", info.UserAgent).
		Time("at", info.Timestamp).
		Interface("panic_value", info.Value)

	if config.EnablePanicLogs {
		event.Str("stack_trace", info.Stack)
	}

	event.Msg("Panic yakalandı")
}

// logError yazılan error zarfını özetler. 4xx debug seviyesindedir,
// ayrıntı logAPIError'da zaten yazılmıştır.
func logError(r *http.Request, statusCode int, message string, requestID string) {
	level := zerolog.DebugLevel
	if statusCode >= http.StatusInternalServerError {
		level = zerolog.ErrorLevel
	}

	log.WithLevel(level).
		Str("request_id", requestID).
		Str("method", r.Method).
		Str("path", r.URL.Path).
		Int("status_code", statusCode).
		Str("error", message).
		Msg("Error yanıtı gönderildi")
}
