package utils

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ErrorKind classifies failures surfaced to HTTP clients.
type ErrorKind int

const (
	KindBackend ErrorKind = iota
	KindAuthenticationRequired
	KindValidation
	KindNotFound
)

func (k ErrorKind) String() string {
	switch k {
	case KindAuthenticationRequired:
		return "authentication_required"
	case KindValidation:
		return "validation"
	case KindNotFound:
		return "not_found"
	default:
		return "backend"
	}
}

// AppError carries a kind, a client-facing message and the underlying cause.
type AppError struct {
	Kind    ErrorKind
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *AppError) Unwrap() error { return e.Err }

func NewAuthenticationError(msg string) error {
	return &AppError{Kind: KindAuthenticationRequired, Message: msg}
}

func NewValidationError(msg string) error {
	return &AppError{Kind: KindValidation, Message: msg}
}

func NewNotFoundError(msg string, err error) error {
	return &AppError{Kind: KindNotFound, Message: msg, Err: err}
}

func NewBackendError(msg string, err error) error {
	return &AppError{Kind: KindBackend, Message: msg, Err: err}
}

// StatusFor maps an error to the HTTP status its kind implies.
func StatusFor(err error) int {
	var appErr *AppError
	if !errors.As(err, &appErr) {
		return http.StatusInternalServerError
	}
	switch appErr.Kind {
	case KindAuthenticationRequired:
		return http.StatusUnauthorized
	case KindValidation:
		return http.StatusBadRequest
	case KindNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// ErrorResponse defines the structure of error responses
type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

// ErrorHandler is a middleware to catch panics and return structured errors
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				Logger := GetLogger()
				Logger.Error("Unhandled panic", zap.Any("error", err))

				c.AbortWithStatusJSON(http.StatusInternalServerError, ErrorResponse{
					Error:   "Internal Server Error",
					Details: "An unexpected error occurred. Please try again later.",
				})
			}
		}()
		c.Next()
	}
}

// AbortWithError writes err using the status of its kind. Only the cause of a
// validation error is echoed as details; everything else stays in the logs.
func AbortWithError(c *gin.Context, err error) {
	status := StatusFor(err)
	message := http.StatusText(status)
	details := ""
	var appErr *AppError
	if errors.As(err, &appErr) {
		message = appErr.Message
		if appErr.Kind == KindValidation && appErr.Err != nil {
			details = appErr.Err.Error()
		}
	}
	GetLogger().Warn(message, zap.Int("status", status), zap.Error(err))
	c.AbortWithStatusJSON(status, ErrorResponse{Error: message, Details: details})
}
