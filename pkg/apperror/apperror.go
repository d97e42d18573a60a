package apperror

import (
	"fmt"
	"net/http"
)

// AppError is a structured error that maps to HTTP responses.
type AppError struct {
	Code       string `json:"error_code"`
	Message    string `json:"message"`
	HTTPStatus int    `json:"-"`
	Err        error  `json:"-"` // Wrapped internal error (not exposed to client)
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// New creates a new AppError.
func New(code string, message string, httpStatus int) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
	}
}

// Wrap wraps an internal error with an AppError.
func Wrap(code string, message string, httpStatus int, err error) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
		Err:        err,
	}
}

// ---- Record & Batch Input (REC) ----
// Structural errors: they indicate defective caller data and are never retried.

func ErrInvalidRecord(reason string) *AppError {
	return New("REC_001", fmt.Sprintf("Invalid identity record: %s", reason), http.StatusBadRequest)
}

func ErrEmptyBatch() *AppError {
	return New("REC_002", "Batch contains no documents", http.StatusBadRequest)
}

func ErrMalformedProof(err error) *AppError {
	return Wrap("REC_003", "Stored proof path is malformed", http.StatusInternalServerError, err)
}

// ---- External Storage (STO) ----

func ErrStorageUnavailable(err error) *AppError {
	return Wrap("STO_001", "Document store unavailable", http.StatusServiceUnavailable, err)
}

// ---- Ledger Anchoring (LGR) ----

func ErrLedgerSubmissionFailed(err error) *AppError {
	return Wrap("LGR_001", "Ledger submission failed after retries", http.StatusBadGateway, err)
}

func ErrLedgerConfirmationTimeout(err error) *AppError {
	return Wrap("LGR_002", "Ledger confirmation not reached in time", http.StatusGatewayTimeout, err)
}

func ErrLedgerUnavailable(err error) *AppError {
	return Wrap("LGR_003", "Ledger read path unavailable", http.StatusServiceUnavailable, err)
}

// ---- Credits (CRD) ----

func ErrInsufficientCredit(operation string) *AppError {
	return New("CRD_001", fmt.Sprintf("Insufficient credit for operation %s", operation), http.StatusPaymentRequired)
}

// ---- Batch Lifecycle (BAT) ----

func ErrNotFound(entity string) *AppError {
	return New("BAT_001", fmt.Sprintf("%s not found", entity), http.StatusNotFound)
}

func ErrInvalidStatusTransition(from, to string) *AppError {
	return New("BAT_002", fmt.Sprintf("Batch cannot move from %s to %s", from, to), http.StatusConflict)
}

func ErrAnchorInProgress() *AppError {
	return New("BAT_003", "Batch is already being anchored", http.StatusConflict)
}

// ---- Rate Limiting (RATE) ----

func ErrRateLimitExceeded() *AppError {
	return New("RATE_001", "Rate limit exceeded", http.StatusTooManyRequests)
}

// ---- System & Infrastructure (SYS) ----

// InternalError wraps an internal error as a SYS_001 error.
func InternalError(err error) *AppError {
	return Wrap("SYS_001", "Internal server error", http.StatusInternalServerError, err)
}

func ErrDatabaseError(err error) *AppError {
	return Wrap("SYS_002", "Internal database error", http.StatusInternalServerError, err)
}

// Validation returns a REC_001-style validation error with a custom message.
func Validation(message string) *AppError {
	return New("REC_001", message, http.StatusBadRequest)
}
