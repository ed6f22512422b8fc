package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/onerilhan/bookkeeping-api/internal/auth"
	"github.com/onerilhan/bookkeeping-api/internal/middleware/errors"
)

// ContextKey middleware'de context için key tipi
type ContextKey string

const OperatorContextKey ContextKey = "operator"

// TokenValidator bearer token doğrulayıcı
type TokenValidator interface {
	ValidateToken(tokenString string) (*auth.Claims, error)
}

// AuthMiddleware Bearer JWT kontrolü yapar; skipPaths doğrulamasız geçer
func AuthMiddleware(validator TokenValidator, responder *ErrorResponder, skipPaths ...string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Method == http.MethodOptions || contains(skipPaths, r.URL.Path) {
				next.ServeHTTP(w, r)
				return
			}

			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				responder.Respond(w, r, &errors.AuthError{Message: "Authorization header gerekli"})
				return
			}

			tokenParts := strings.SplitN(authHeader, " ", 2)
			if len(tokenParts) != 2 || !strings.EqualFold(tokenParts[0], "Bearer") {
				responder.Respond(w, r, &errors.AuthError{Message: "Authorization format: 'Bearer <token>'"})
				return
			}

			claims, err := validator.ValidateToken(strings.TrimSpace(tokenParts[1]))
			if err != nil {
				log.Warn().Err(err).Str("path", r.URL.Path).Msg("Token doğrulama başarısız")
				responder.Respond(w, r, &errors.AuthError{Message: "Geçersiz token"})
				return
			}

			ctx := context.WithValue(r.Context(), OperatorContextKey, claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
