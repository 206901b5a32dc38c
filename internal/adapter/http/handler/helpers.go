package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/splitpot/splitpot/internal/adapter/http/dto"
	"github.com/splitpot/splitpot/internal/domain"
)

// writeJSON writes a JSON response.
func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// writeError writes an error response.
func writeError(w http.ResponseWriter, status int, message, details string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(dto.ErrorResponse{
		Error:   message,
		Message: details,
	})
}

// mapDomainError maps domain errors to HTTP status codes.
func mapDomainError(err error) int {
	switch {
	case errors.Is(err, domain.ErrParticipantNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrExpenseNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrInvalidName):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrInvalidAmount):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrAmountNotFinite):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrMissingPayer):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrEmptyParticipantSet):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrUnknownParticipant):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrDuplicateParticipant):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrUnsupportedSchema):
		return http.StatusUnprocessableEntity
	case errors.Is(err, domain.ErrInvalidCurrency):
		return http.StatusUnprocessableEntity
	case errors.Is(err, domain.ErrDuplicateID):
		return http.StatusUnprocessableEntity
	case errors.Is(err, domain.ErrDanglingReference):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}
