package controllers

import (
	"errors"
	"log/slog"
	"net/http"

	"weddingrsvp/internal/delivery/http/helpers"
	"weddingrsvp/internal/domain"
)

// internalErrorMessage replaces error text on 500s when errors are not exposed.
const internalErrorMessage = "internal server error"

// errorStatus maps a service error to an HTTP status and API error code.
func errorStatus(err error) (int, string) {
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		return http.StatusBadRequest, helpers.ErrCodeBadRequest
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound, helpers.ErrCodeNotFound
	case errors.Is(err, domain.ErrDuplicate):
		return http.StatusConflict, helpers.ErrCodeConflict
	case errors.Is(err, domain.ErrUnauthorized):
		return http.StatusUnauthorized, helpers.ErrCodeUnauthorized
	default:
		return http.StatusInternalServerError, helpers.ErrCodeInternalError
	}
}

// apiError builds the error object for err and logs it when it is a server error.
func apiError(r *http.Request, logger *slog.Logger, exposeErrors bool, err error) (int, *helpers.APIError) {
	status, code := errorStatus(err)
	msg := err.Error()
	if status == http.StatusInternalServerError {
		logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		if !exposeErrors {
			msg = internalErrorMessage
		}
	}
	return status, &helpers.APIError{Code: code, Message: msg}
}

func writeServiceError(w http.ResponseWriter, r *http.Request, logger *slog.Logger, exposeErrors bool, err error) {
	status, apiErr := apiError(r, logger, exposeErrors, err)
	helpers.WriteJSONError(w, status, apiErr.Code, apiErr.Message)
}
