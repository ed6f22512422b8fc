package errors

import "time"

// SuccessResponse standart başarılı yanıt zarfı
type SuccessResponse struct {
	Success     bool        `json:"success"`
	Data        interface{} `json:"data"`
	SuccessCode string      `json:"successCode"`
	Message     string      `json:"message"`
	Timestamp   string      `json:"timestamp"`
	StatusCode  int         `json:"statusCode"`
}

// ErrorResponse standardized error response formatı
type ErrorResponse struct {
	Success bool      `json:"success"`
	Error   ErrorBody `json:"error"`
}

// ErrorBody hata zarfının içeriği
type ErrorBody struct {
	StatusCode int         `json:"statusCode"`
	Message    string      `json:"message"`
	ErrorCode  string      `json:"errorCode"`
	Details    interface{} `json:"details,omitempty"`
	Timestamp  string      `json:"timestamp"`
	Path       string      `json:"path"`
	Method     string      `json:"method"`
	RequestID  string      `json:"requestId,omitempty"`
	Stack      string      `json:"stack,omitempty"` // Sadece development'ta
}

// PanicInfo panic durumu hakkında bilgi
type PanicInfo struct {
	Value     interface{}
	Stack     string
	RequestID string
	Method    string
	Path      string
	UserAgent string
	ClientIP  string
	Timestamp time.Time
}
