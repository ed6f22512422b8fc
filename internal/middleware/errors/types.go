package errors

import (
	"fmt"
	"net/http"
)

// Hata kodları; frontend sunumu bu kodlara göre seçer
const (
	CodeValidation       = "VALIDATION_ERROR"
	CodeNotFound         = "NOT_FOUND"
	CodeDatabase         = "DATABASE_ERROR"
	CodeRouteNotFound    = "ROUTE_NOT_FOUND"
	CodeUnauthorized     = "UNAUTHORIZED"
	CodeMethodNotAllowed = "METHOD_NOT_ALLOWED"
	CodeRateLimited      = "RATE_LIMIT_EXCEEDED"
	CodePayloadTooLarge  = "PAYLOAD_TOO_LARGE"
	CodeUnsupportedMedia = "UNSUPPORTED_MEDIA_TYPE"
	CodeServiceDown      = "SERVICE_UNAVAILABLE"
	CodeInternal         = "INTERNAL_ERROR"
)

// APIError interface for custom error types
type APIError interface {
	error
	Status() int
	Code() string
	Details() interface{}
}

// ValidationError hatalı/eksik/aralık dışı girdi; her zaman 422
type ValidationError struct {
	Message  string
	Field    string
	Value    interface{}
	Expected string
}

// NewValidationError alan bilgisiyle validation hatası oluşturur
func NewValidationError(field string, value interface{}, expected string) *ValidationError {
	return &ValidationError{
		Message:  fmt.Sprintf("Geçersiz %s değeri", field),
		Field:    field,
		Value:    value,
		Expected: expected,
	}
}

func (e *ValidationError) Error() string { return e.Message }
func (e *ValidationError) Status() int   { return http.StatusUnprocessableEntity }
func (e *ValidationError) Code() string  { return CodeValidation }

// Details validation hatasının alan detayları
func (e *ValidationError) Details() interface{} {
	return map[string]interface{}{
		"field":    e.Field,
		"value":    e.Value,
		"expected": e.Expected,
	}
}

// NotFoundError referans verilen kayıt yok
type NotFoundError struct {
	Resource string
	ID       interface{}
}

// NewNotFoundError kaynak ve id ile not found hatası oluşturur
func NewNotFoundError(resource string, id interface{}) *NotFoundError {
	return &NotFoundError{Resource: resource, ID: id}
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s bulunamadı (ID: %v)", e.Resource, e.ID)
}
func (e *NotFoundError) Status() int  { return http.StatusNotFound }
func (e *NotFoundError) Code() string { return CodeNotFound }

// Details not found detayları
func (e *NotFoundError) Details() interface{} {
	return map[string]interface{}{
		"resource": e.Resource,
		"id":       e.ID,
	}
}

// DatabaseError sorgu hatası veya referans korumasının reddi.
// Sürücü hatası Err içinde tutulur, client'a sızdırılmaz.
type DatabaseError struct {
	Message string
	Err     error
}

// NewDatabaseError mesaj ve alttaki hatayla database hatası oluşturur
func NewDatabaseError(message string, err error) *DatabaseError {
	return &DatabaseError{Message: message, Err: err}
}

func (e *DatabaseError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}
func (e *DatabaseError) Unwrap() error        { return e.Err }
func (e *DatabaseError) Status() int          { return http.StatusInternalServerError }
func (e *DatabaseError) Code() string         { return CodeDatabase }
func (e *DatabaseError) Details() interface{} { return nil }

// PublicMessage client'a dönecek güvenli mesaj
func (e *DatabaseError) PublicMessage() string { return e.Message }

// RouteNotFoundError bilinmeyen path
type RouteNotFoundError struct {
	Method          string
	Path            string
	AvailableRoutes []string
}

func (e *RouteNotFoundError) Error() string {
	return fmt.Sprintf("Route bulunamadı: %s %s", e.Method, e.Path)
}
func (e *RouteNotFoundError) Status() int  { return http.StatusNotFound }
func (e *RouteNotFoundError) Code() string { return CodeRouteNotFound }

// Details geçerli üst seviye route listesi
func (e *RouteNotFoundError) Details() interface{} {
	return map[string]interface{}{
		"availableRoutes": e.AvailableRoutes,
	}
}

// AuthError authentication hatası için custom error type
type AuthError struct {
	Message string
}

func (e *AuthError) Error() string        { return e.Message }
func (e *AuthError) Status() int          { return http.StatusUnauthorized }
func (e *AuthError) Code() string         { return CodeUnauthorized }
func (e *AuthError) Details() interface{} { return nil }

// HTTPError taksonomi dışında kalan protokol hataları (405, 429, 503)
type HTTPError struct {
	StatusCode int
	ErrorCode  string
	Message    string
	Extra      map[string]interface{}
}

func (e *HTTPError) Error() string { return e.Message }
func (e *HTTPError) Status() int   { return e.StatusCode }
func (e *HTTPError) Code() string  { return e.ErrorCode }

// Details ek bilgi varsa döner
func (e *HTTPError) Details() interface{} {
	if len(e.Extra) == 0 {
		return nil
	}
	return e.Extra
}
