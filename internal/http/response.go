package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"pharmhub/internal/platform/airtable"
	"pharmhub/internal/usecase"
)

type dataResponse struct {
	Data any `json:"data"`
	Meta any `json:"meta,omitempty"`
}

type errorResponse struct {
	Error   string            `json:"error"`
	Code    string            `json:"code"`
	Details []ValidationError `json:"details,omitempty"`
}

func JSONData(w http.ResponseWriter, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(dataResponse{Data: data})
}

func JSONDataMeta(w http.ResponseWriter, data, meta any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(dataResponse{Data: data, Meta: meta})
}

func JSONError(w http.ResponseWriter, statusCode int, code, message string, details []ValidationError) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(errorResponse{Error: message, Code: code, Details: details})
}

// WriteError converts any error bubbling out of the stores into the JSON
// error envelope, preserving upstream status/code for provider errors and
// defaulting to 500 INTERNAL_ERROR.
func WriteError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, usecase.ErrConfig):
		JSONError(w, http.StatusInternalServerError, "CONFIG_ERROR", usecase.ErrConfig.Error(), nil)
	case errors.Is(err, usecase.ErrNotFound):
		JSONError(w, http.StatusNotFound, "NOT_FOUND", usecase.ErrNotFound.Error(), nil)
	case errors.Is(err, usecase.ErrInvalidCredentials):
		JSONError(w, http.StatusUnauthorized, "INVALID_CREDENTIALS", usecase.ErrInvalidCredentials.Error(), nil)
	case errors.Is(err, usecase.ErrRateLimited):
		JSONError(w, http.StatusTooManyRequests, "RATE_LIMIT", "Too many attempts, try again later", nil)
	default:
		var apiErr *airtable.APIError
		if errors.As(err, &apiErr) {
			if apiErr.StatusCode == http.StatusTooManyRequests {
				JSONError(w, http.StatusTooManyRequests, "RATE_LIMIT", apiErr.Error(), nil)
				return
			}
			status := apiErr.StatusCode
			if status < 400 || status > 599 {
				status = http.StatusBadGateway
			}
			JSONError(w, status, "AIRTABLE_ERROR", apiErr.Error(), nil)
			return
		}
		JSONError(w, http.StatusInternalServerError, "INTERNAL_ERROR", err.Error(), nil)
	}
}
