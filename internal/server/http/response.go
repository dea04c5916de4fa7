package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/dmitrijs2005/idgateway/internal/common"
	"github.com/dmitrijs2005/idgateway/internal/server/models"
)

type errorResponse struct {
	Error string `json:"error"`
}

type fieldErrorsResponse struct {
	Errors    []models.FieldError `json:"errors"`
	ReturnURL string              `json:"returnUrl,omitempty"`
}

type registrationResponse struct {
	IsSuccessfulRegistration bool     `json:"isSuccessfulRegistration"`
	Errors                   []string `json:"errors,omitempty"`
}

type signedInResponse struct {
	Subject string `json:"subject"`
}

type healthResponse struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Error: msg})
}

// statusFor maps a service error to the response status.
func statusFor(err error) int {
	switch {
	case errors.Is(err, common.ErrorNotFound), errors.Is(err, common.ErrUnknownScheme):
		return http.StatusNotFound
	case errors.Is(err, common.ErrAuthFailed), errors.Is(err, common.ErrorUnauthorized):
		return http.StatusUnauthorized
	case errors.Is(err, common.ErrStoreUnavailable):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}
