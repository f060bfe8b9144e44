package errors

import (
	"errors"
	"net/http"
)

var (
	// ErrUserNotFound is returned when a user is not found.
	ErrUserNotFound = errors.New("user not found")
	// ErrTaskNotFound is returned when a task is not found.
	ErrTaskNotFound = errors.New("task not found")
	// ErrSubmissionNotFound is returned when a submission is not found.
	ErrSubmissionNotFound = errors.New("submission not found")
	// ErrWithdrawalNotFound is returned when a withdrawal request is not found.
	ErrWithdrawalNotFound = errors.New("withdrawal request not found")
	// ErrInsufficientCoins is returned when a debit would drive a balance negative.
	ErrInsufficientCoins = errors.New("insufficient coins")
	// ErrSubmissionFinalized is returned when a terminal submission is processed again.
	ErrSubmissionFinalized = errors.New("submission already processed")
	// ErrDuplicatePayment is returned when a transaction reference is recorded twice.
	ErrDuplicatePayment = errors.New("payment already recorded")
	// ErrInvalidAmount is returned when a coin amount is not positive.
	ErrInvalidAmount = errors.New("invalid amount")
	// ErrInvalidQuantity is returned when a task quantity is not positive.
	ErrInvalidQuantity = errors.New("invalid quantity")
	// ErrInvalidRole is returned when a role value is unknown.
	ErrInvalidRole = errors.New("invalid role")
	// ErrForbidden is returned when the caller may not act on the resource.
	ErrForbidden = errors.New("forbidden")
)

// ErrorResponse represents a standardized error response.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

// HTTPError represents an HTTP error with status code.
type HTTPError struct {
	StatusCode int
	Message    string
	Code       string
}

func (e *HTTPError) Error() string {
	return e.Message
}

// NewHTTPError creates a new HTTP error.
func NewHTTPError(statusCode int, message, code string) *HTTPError {
	return &HTTPError{
		StatusCode: statusCode,
		Message:    message,
		Code:       code,
	}
}

// ToErrorResponse converts an HTTPError to ErrorResponse.
func (e *HTTPError) ToErrorResponse() ErrorResponse {
	return ErrorResponse{
		Error: e.Message,
		Code:  e.Code,
	}
}

// MapErrorToHTTP maps domain errors to HTTP errors. Validation maps to 400,
// missing references to 404, precondition failures to 409, ownership to 403;
// anything unrecognized surfaces as a generic 500.
func MapErrorToHTTP(err error) *HTTPError {
	switch {
	case errors.Is(err, ErrUserNotFound):
		return NewHTTPError(http.StatusNotFound, err.Error(), "USER_NOT_FOUND")
	case errors.Is(err, ErrTaskNotFound):
		return NewHTTPError(http.StatusNotFound, err.Error(), "TASK_NOT_FOUND")
	case errors.Is(err, ErrSubmissionNotFound):
		return NewHTTPError(http.StatusNotFound, err.Error(), "SUBMISSION_NOT_FOUND")
	case errors.Is(err, ErrWithdrawalNotFound):
		return NewHTTPError(http.StatusNotFound, err.Error(), "WITHDRAWAL_NOT_FOUND")
	case errors.Is(err, ErrInsufficientCoins):
		return NewHTTPError(http.StatusConflict, err.Error(), "INSUFFICIENT_COINS")
	case errors.Is(err, ErrSubmissionFinalized):
		return NewHTTPError(http.StatusConflict, err.Error(), "SUBMISSION_FINALIZED")
	case errors.Is(err, ErrDuplicatePayment):
		return NewHTTPError(http.StatusConflict, err.Error(), "DUPLICATE_PAYMENT")
	case errors.Is(err, ErrInvalidAmount):
		return NewHTTPError(http.StatusBadRequest, err.Error(), "INVALID_AMOUNT")
	case errors.Is(err, ErrInvalidQuantity):
		return NewHTTPError(http.StatusBadRequest, err.Error(), "INVALID_QUANTITY")
	case errors.Is(err, ErrInvalidRole):
		return NewHTTPError(http.StatusBadRequest, err.Error(), "INVALID_ROLE")
	case errors.Is(err, ErrForbidden):
		return NewHTTPError(http.StatusForbidden, err.Error(), "FORBIDDEN")
	default:
		return NewHTTPError(http.StatusInternalServerError, "internal server error", "INTERNAL_ERROR")
	}
}
