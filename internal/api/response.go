package api

import (
	"errors"
	"net/http"

	"stocktracker/pkg/tracker"
)

// ErrorResponse represents an error API response with structured information.
type ErrorResponse struct {
	Code      int    `json:"code"`
	Message   string `json:"message"`
	ErrorCode string `json:"error_code,omitempty"`
}

// writeErrorResponse writes an error response with proper HTTP status and
// error details. Structured tracker errors override the caller's status with
// one mapped from the classification code.
func writeErrorResponse(w http.ResponseWriter, httpStatus int, err error) {
	response := ErrorResponse{
		Code:    httpStatus,
		Message: err.Error(),
	}

	var trackerErr *tracker.Error
	if errors.As(err, &trackerErr) {
		response.ErrorCode = string(trackerErr.Code)
		httpStatus = mapErrorCodeToHTTPStatus(trackerErr.Code)
		response.Code = httpStatus
	}

	writeJSON(w, httpStatus, response)
}

// mapErrorCodeToHTTPStatus maps business error codes to HTTP status codes.
func mapErrorCodeToHTTPStatus(code tracker.ErrorCode) int {
	switch code {
	case tracker.ErrCodeInvalidInput, tracker.ErrCodeValidation, tracker.ErrCodeInsufficientShares:
		return http.StatusBadRequest
	case tracker.ErrCodeNotFound:
		return http.StatusNotFound
	case tracker.ErrCodeDuplicate:
		return http.StatusConflict
	case tracker.ErrCodeStorage, tracker.ErrCodeInternal:
		return http.StatusInternalServerError
	default:
		return http.StatusInternalServerError
	}
}
