package utils

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/GlebRadaev/prizepanda/pkg/validate"
	"go.uber.org/zap"
)

const maxBodySize = 1 << 20

var ErrInvalidBody = errors.New("invalid request body")

type Response struct {
	Message string                `json:"message" example:"Gift code not found"`
	Errors  []validate.FieldError `json:"errors,omitempty"`
}

func RespondWithJSON(w http.ResponseWriter, code int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		zap.L().Error("can't encode response", zap.Error(err))
	}
}

func RespondWithError(w http.ResponseWriter, code int, message string) {
	RespondWithJSON(w, code, Response{Message: message})
}

func RespondWithValidationError(w http.ResponseWriter, fields []validate.FieldError) {
	RespondWithJSON(w, http.StatusBadRequest, Response{Message: "Invalid input", Errors: fields})
}

// DecodeJSON decodes exactly one JSON object into dst and rejects unknown fields.
func DecodeJSON(r *http.Request, dst any) error {
	dec := json.NewDecoder(io.LimitReader(r.Body, maxBodySize))
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		return ErrInvalidBody
	}
	if dec.More() {
		return ErrInvalidBody
	}
	return nil
}

// DecodeAndValidate writes the error response itself and reports whether the
// handler may continue.
func DecodeAndValidate(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := DecodeJSON(r, dst); err != nil {
		RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return false
	}
	if fields := validate.Struct(dst); fields != nil {
		RespondWithValidationError(w, fields)
		return false
	}
	return true
}
