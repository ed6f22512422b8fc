package handlers

import (
	"encoding/json"
	"io"
	"net/http"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/onerilhan/bookkeeping-api/internal/middleware/errors"
	"github.com/onerilhan/bookkeeping-api/internal/validation"
)

// maxBodyBytes istek gövdesi üst sınırı
const maxBodyBytes = 1 << 20

// writeSuccess standart başarı zarfını yazar
func writeSuccess(w http.ResponseWriter, status int, code, message string, data interface{}) {
	writeEnvelope(w, status, status, code, message, data)
}

// writeEnvelope HTTP status ile zarftaki statusCode'u ayrı verir (soft 404 için)
func writeEnvelope(w http.ResponseWriter, httpStatus, envelopeStatus int, code, message string, data interface{}) {
	response := errors.SuccessResponse{
		Success:     true,
		Data:        data,
		SuccessCode: code,
		Message:     message,
		Timestamp:   time.Now().Format(time.RFC3339),
		StatusCode:  envelopeStatus,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(httpStatus)
	if err := json.NewEncoder(w).Encode(response); err != nil {
		log.Error().Err(err).Str("success_code", code).Msg("Response JSON encoding failed")
	}
}

// decodeBody JSON gövdesini okur ve validator kurallarını uygular
func decodeBody(w http.ResponseWriter, r *http.Request, v *validation.Validator, dst interface{}) error {
	body := http.MaxBytesReader(w, r.Body, maxBodyBytes)
	defer body.Close()

	if err := json.NewDecoder(body).Decode(dst); err != nil {
		if err == io.EOF {
			return errors.NewValidationError("body", nil, "boş olmayan JSON gövdesi")
		}
		return errors.NewValidationError("body", err.Error(), "geçerli JSON gövdesi")
	}
	return v.Struct(dst)
}
