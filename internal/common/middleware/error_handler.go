package middleware

import (
	"fmt"
	"net/http"
	"runtime/debug"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"token-presale-backend/internal/common/errors"
)

// RequestID propagates an incoming X-Request-ID or assigns a fresh one.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader("X-Request-ID")
		if requestID == "" {
			requestID = uuid.New().String()
		}

		c.Set("request_id", requestID)
		c.Header("X-Request-ID", requestID)
		c.Next()
	}
}

// ErrorHandler recovers panics and renders them as INTERNAL_ERROR responses.
func ErrorHandler(logger zerolog.Logger) gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		requestID := GetRequestID(c)

		logger.Error().
			Str("request_id", requestID).
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Interface("panic", recovered).
			Str("stack", string(debug.Stack())).
			Msg("Panic recovered")

		appErr := errors.New(errors.ErrCodeInternal, "Internal server error").
			WithDetail("panic", fmt.Sprintf("%v", recovered))

		SendError(c, appErr, logger)
	})
}

// ErrorResponse is the JSON envelope for failed calls.
type ErrorResponse struct {
	Success   bool             `json:"success"`
	Error     *errors.AppError `json:"error"`
	Timestamp time.Time        `json:"timestamp"`
	RequestID string           `json:"request_id"`
	Path      string           `json:"path,omitempty"`
	Method    string           `json:"method,omitempty"`
}

// SendError renders an AppError with the matching HTTP status. Failed calls
// carry no state change and no instructions, only the rejection reason.
func SendError(c *gin.Context, appErr *errors.AppError, logger zerolog.Logger) {
	requestID := GetRequestID(c)
	appErr.WithRequestID(requestID)

	logger.Warn().
		Str("request_id", requestID).
		Str("code", string(appErr.Code)).
		Str("path", c.Request.URL.Path).
		Err(appErr).
		Msg("Request failed")

	c.AbortWithStatusJSON(httpStatus(appErr.Code), ErrorResponse{
		Success:   false,
		Error:     appErr,
		Timestamp: time.Now(),
		RequestID: requestID,
		Path:      c.Request.URL.Path,
		Method:    c.Request.Method,
	})
}

// GetRequestID returns the request ID assigned by RequestID.
func GetRequestID(c *gin.Context) string {
	if id, ok := c.Get("request_id"); ok {
		if s, ok := id.(string); ok {
			return s
		}
	}
	return ""
}

func httpStatus(code errors.ErrorCode) int {
	switch code {
	case errors.ErrCodeValidation, errors.ErrCodeBadRequest, errors.ErrCodeInvalidIdentity:
		return http.StatusBadRequest
	case errors.ErrCodeUnauthorized:
		return http.StatusForbidden
	case errors.ErrCodeNotFound, errors.ErrCodeNotInitialized:
		return http.StatusNotFound
	case errors.ErrCodeNotEnoughFunds:
		return http.StatusPaymentRequired
	case errors.ErrCodePresaleNotStarted, errors.ErrCodeInsufficientSupply, errors.ErrCodeNothingToWithdraw:
		return http.StatusUnprocessableEntity
	case errors.ErrCodeAlreadyInitialized:
		return http.StatusConflict
	case errors.ErrCodeStorage:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}
