package errors

import (
	"fmt"
	"time"
)

// ErrorCode identifies one terminal failure kind. Every failed call maps to
// exactly one code; nothing is downgraded or swallowed on the way out.
type ErrorCode string

const (
	// Ambient errors
	ErrCodeInternal   ErrorCode = "INTERNAL_ERROR"
	ErrCodeValidation ErrorCode = "VALIDATION_ERROR"
	ErrCodeBadRequest ErrorCode = "BAD_REQUEST"
	ErrCodeStorage    ErrorCode = "STORAGE_ERROR"

	// Ledger errors
	ErrCodeUnauthorized       ErrorCode = "UNAUTHORIZED"
	ErrCodePresaleNotStarted  ErrorCode = "PRESALE_NOT_STARTED"
	ErrCodeInsufficientSupply ErrorCode = "INSUFFICIENT_REMAINING_TOKEN"
	ErrCodeNotEnoughFunds     ErrorCode = "NOT_ENOUGH_FUNDS"
	ErrCodeNotFound           ErrorCode = "NOT_FOUND"
	ErrCodeInvalidIdentity    ErrorCode = "INVALID_IDENTITY"
	ErrCodeAlreadyInitialized ErrorCode = "ALREADY_INITIALIZED"
	ErrCodeNotInitialized     ErrorCode = "NOT_INITIALIZED"
	ErrCodeNothingToWithdraw  ErrorCode = "NOTHING_TO_WITHDRAW"
)

// AppError is the typed application error carried from the service layer out
// to the HTTP envelope.
type AppError struct {
	Code      ErrorCode              `json:"code"`
	Message   string                 `json:"message"`
	Details   map[string]interface{} `json:"details,omitempty"`
	Timestamp time.Time              `json:"timestamp"`
	RequestID string                 `json:"request_id,omitempty"`
	Cause     error                  `json:"-"`
}

func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Cause
}

// WithDetail attaches one structured detail to the error.
func (e *AppError) WithDetail(key string, value interface{}) *AppError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// WithRequestID tags the error with the current request ID.
func (e *AppError) WithRequestID(requestID string) *AppError {
	e.RequestID = requestID
	return e
}

// New creates an AppError with the given code and message.
func New(code ErrorCode, message string) *AppError {
	return &AppError{Code: code, Message: message, Timestamp: time.Now()}
}

// Newf creates an AppError with a formatted message.
func Newf(code ErrorCode, format string, args ...interface{}) *AppError {
	return New(code, fmt.Sprintf(format, args...))
}

// Wrap creates an AppError that keeps err as its cause.
func Wrap(err error, code ErrorCode, message string) *AppError {
	appErr := New(code, message)
	appErr.Cause = err
	return appErr
}

// AsAppError extracts an *AppError if err is one.
func AsAppError(err error) (*AppError, bool) {
	var appErr *AppError
	if err != nil {
		appErr, _ = err.(*AppError)
	}
	return appErr, appErr != nil
}
