package controllers

import (
	"encoding/json"
	"errors"
	"net/http"

	"inkwell/backend/app/errs"
	"inkwell/backend/global"
)

type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// writeError maps the sentinel business errors onto transport statuses.
// Anything unrecognized is treated as a storage/internal failure and its
// detail stays in the log, not the response.
func writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, errs.ErrValidation):
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
	case errors.Is(err, errs.ErrBadCredentials):
		writeJSON(w, http.StatusUnauthorized, errorResponse{Error: errs.ErrBadCredentials.Error()})
	case errors.Is(err, errs.ErrUnauthorized), errors.Is(err, errs.ErrTokenExpired), errors.Is(err, errs.ErrTokenInvalid):
		writeJSON(w, http.StatusUnauthorized, errorResponse{Error: "unauthorized"})
	case errors.Is(err, errs.ErrForbidden):
		writeJSON(w, http.StatusForbidden, errorResponse{Error: "forbidden"})
	case errors.Is(err, errs.ErrNotFound):
		writeJSON(w, http.StatusNotFound, errorResponse{Error: "not found"})
	case errors.Is(err, errs.ErrDuplicateUsername):
		writeJSON(w, http.StatusConflict, errorResponse{Error: errs.ErrDuplicateUsername.Error()})
	case errors.Is(err, errs.ErrThrottled):
		writeJSON(w, http.StatusTooManyRequests, errorResponse{Error: errs.ErrThrottled.Error()})
	default:
		global.Logger.Error().Err(err).Msg("request failed")
		writeJSON(w, http.StatusServiceUnavailable, errorResponse{Error: "temporarily unavailable"})
	}
}

func decode(r *http.Request, v any) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return errs.ErrValidation
	}
	return nil
}
