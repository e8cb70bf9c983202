// Package platformerrors provides the shared error type used across all
// layers of the service. Every error that crosses a layer boundary is wrapped
// in a PlatformError carrying an error type (mapped to an HTTP status at the
// edge), the originating layer, a stable per-call-site code and the request ID.
package platformerrors

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"gorm.io/gorm"
)

// RequestIDContextKey is the context key under which the HTTP layer stores
// the current request ID so errors created deeper in the stack carry it.
type RequestIDContextKey struct{}

func requestIDFromContext(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	if id, ok := ctx.Value(RequestIDContextKey{}).(string); ok {
		return id
	}
	return ""
}

// ErrorType classifies an error for HTTP status mapping and predicates.
type ErrorType string

const (
	ErrorTypeValidation     ErrorType = "validation"
	ErrorTypeNotFound       ErrorType = "not_found"
	ErrorTypeConflict       ErrorType = "conflict"
	ErrorTypeInvalidState   ErrorType = "invalid_state"
	ErrorTypeUnauthorized   ErrorType = "unauthorized"
	ErrorTypeForbidden      ErrorType = "forbidden"
	ErrorTypeConfiguration  ErrorType = "configuration"
	ErrorTypeExternal       ErrorType = "external"
	ErrorTypeTimeout        ErrorType = "timeout"
	ErrorTypeTooManyRecords ErrorType = "too_many_records"
	ErrorTypeDatabaseError  ErrorType = "database_error"
	ErrorTypeNotImplemented ErrorType = "not_implemented"
	ErrorTypeInternal       ErrorType = "internal"
)

// Layer identifies where in the stack an error originated.
type Layer string

const (
	LayerHandler        Layer = "handler"
	LayerDomain         Layer = "domain"
	LayerRepository     Layer = "repository"
	LayerInfrastructure Layer = "infrastructure"
)

// PlatformError is the error type shared by all layers.
type PlatformError struct {
	Code      string         `json:"code"` // stable per-call-site identifier
	Type      ErrorType      `json:"type"`
	Layer     Layer          `json:"layer"`
	Message   string         `json:"message"`
	RequestID string         `json:"request_id,omitempty"`
	Details   map[string]any `json:"details,omitempty"`
	Timestamp time.Time      `json:"timestamp"`
	cause     error
}

func (e *PlatformError) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Type, e.Message, e.cause)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

func (e *PlatformError) Unwrap() error {
	return e.cause
}

// NewError creates a PlatformError. code may be empty, in which case a random
// UUID is assigned; handlers pass short stable codes like "pers-create-001".
func NewError(ctx context.Context, layer Layer, errType ErrorType, message string, cause error, code string) *PlatformError {
	if code == "" {
		code = uuid.NewString()
	}
	return &PlatformError{
		Code:      code,
		Type:      errType,
		Layer:     layer,
		Message:   message,
		RequestID: requestIDFromContext(ctx),
		Timestamp: time.Now(),
		cause:     cause,
	}
}

// NewErrorWithContext is NewError with structured details attached.
func NewErrorWithContext(ctx context.Context, layer Layer, errType ErrorType, message string, cause error, code string, details map[string]any) *PlatformError {
	err := NewError(ctx, layer, errType, message, cause, code)
	err.Details = details
	return err
}

// AsError wraps err as a PlatformError. If err is already a PlatformError the
// original type is preserved so HTTP status mapping survives re-wrapping; the
// classification helpers translate common infrastructure errors (gorm record
// not found, duplicate key) into the matching type.
func AsError(ctx context.Context, layer Layer, err error, message string) *PlatformError {
	return AsErrorWithUUID(ctx, layer, err, message, "")
}

// AsErrorWithUUID is AsError with an explicit stable code.
func AsErrorWithUUID(ctx context.Context, layer Layer, err error, message, code string) *PlatformError {
	if err == nil {
		return NewError(ctx, layer, ErrorTypeInternal, message, nil, code)
	}

	var platformErr *PlatformError
	if errors.As(err, &platformErr) {
		return NewError(ctx, layer, platformErr.Type, message, err, code)
	}

	return NewError(ctx, layer, classify(err), message, err, code)
}

func classify(err error) ErrorType {
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return ErrorTypeNotFound
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return ErrorTypeConflict
	default:
		return ErrorTypeInternal
	}
}

// IsErrorType reports whether err (or anything it wraps) is a PlatformError
// of the given type.
func IsErrorType(err error, errType ErrorType) bool {
	var platformErr *PlatformError
	if errors.As(err, &platformErr) {
		return platformErr.Type == errType
	}
	return false
}

// IsValidationError is shorthand for IsErrorType(err, ErrorTypeValidation).
func IsValidationError(err error) bool {
	return IsErrorType(err, ErrorTypeValidation)
}

// ErrorTypeToHTTPStatus maps an error type to the HTTP status surfaced at the
// transport edge.
func ErrorTypeToHTTPStatus(errType ErrorType) int {
	switch errType {
	case ErrorTypeValidation:
		return http.StatusBadRequest
	case ErrorTypeNotFound:
		return http.StatusNotFound
	case ErrorTypeConflict, ErrorTypeInvalidState, ErrorTypeTooManyRecords:
		return http.StatusConflict
	case ErrorTypeUnauthorized:
		return http.StatusUnauthorized
	case ErrorTypeForbidden:
		return http.StatusForbidden
	case ErrorTypeConfiguration, ErrorTypeExternal:
		return http.StatusServiceUnavailable
	case ErrorTypeTimeout:
		return http.StatusGatewayTimeout
	case ErrorTypeNotImplemented:
		return http.StatusNotImplemented
	default:
		return http.StatusInternalServerError
	}
}

// LogError emits the error with its structured fields through the supplied
// zerolog logger.
func LogError(logger zerolog.Logger, err error, msg string) {
	var platformErr *PlatformError
	if !errors.As(err, &platformErr) {
		logger.Error().Err(err).Msg(msg)
		return
	}

	event := logger.Error().
		Str("error_code", platformErr.Code).
		Str("error_type", string(platformErr.Type)).
		Str("layer", string(platformErr.Layer)).
		Err(err)
	if platformErr.RequestID != "" {
		event = event.Str("request_id", platformErr.RequestID)
	}
	if len(platformErr.Details) > 0 {
		event = event.Interface("details", platformErr.Details)
	}
	event.Msg(msg)
}
