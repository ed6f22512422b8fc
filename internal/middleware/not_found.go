package middleware

import (
	"net/http"

	"github.com/onerilhan/bookkeeping-api/internal/middleware/errors"
)

// NotFoundJSONHandler bilinmeyen path için ROUTE_NOT_FOUND zarfı döner
func NotFoundJSONHandler(responder *ErrorResponder, availableRoutes []string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		responder.Respond(w, r, &errors.RouteNotFoundError{
			Method:          r.Method,
			Path:            r.URL.Path,
			AvailableRoutes: availableRoutes,
		})
	}
}

// MethodNotAllowedJSONHandler JSON formatında 405 döner
func MethodNotAllowedJSONHandler(responder *ErrorResponder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		responder.Respond(w, r, &errors.HTTPError{
			StatusCode: http.StatusMethodNotAllowed,
			ErrorCode:  errors.CodeMethodNotAllowed,
			Message:    "HTTP metodu bu endpoint için desteklenmiyor.",
			Extra: map[string]interface{}{
				"method": r.Method,
			},
		})
	}
}
