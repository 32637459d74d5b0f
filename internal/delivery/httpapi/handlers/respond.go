package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/oplata-app/escrow-service/internal/delivery/httpapi/dto"
	"github.com/oplata-app/escrow-service/internal/domain"
)

// decodeJSON rejects unknown fields so malformed client payloads fail
// before any side effect.
func decodeJSON(r *http.Request, target any) error {
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	return decoder.Decode(target)
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}

// writeError maps the domain error taxonomy onto HTTP status codes. The
// message is echoed to the caller, trusted deployment only.
func writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, domain.ErrValidation),
		errors.Is(err, domain.ErrInvalidState),
		errors.Is(err, domain.ErrInvalidTransition):
		status = http.StatusBadRequest
	case errors.Is(err, domain.ErrOrderNotFound),
		errors.Is(err, domain.ErrUserNotFound):
		status = http.StatusNotFound
	}
	writeJSON(w, status, dto.ErrorResponse{Error: err.Error()})
}

func writeMethodNotAllowed(w http.ResponseWriter) {
	writeJSON(w, http.StatusMethodNotAllowed, dto.ErrorResponse{Error: "Method not allowed"})
}
