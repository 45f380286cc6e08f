package errors

import (
	"context"
	"errors"
	"fmt"
	"runtime"

	"go.uber.org/zap"
)

// ErrorType represents different types of errors
type ErrorType string

const (
	ErrorTypeValidation    ErrorType = "validation"
	ErrorTypeNotRegistered ErrorType = "not_registered"
	ErrorTypeNotFound      ErrorType = "not_found"
	ErrorTypeDelivery      ErrorType = "delivery"
	ErrorTypeDatabase      ErrorType = "database"
	ErrorTypeInternal      ErrorType = "internal"
	ErrorTypeRateLimit     ErrorType = "rate_limit"
)

// AppError represents an application error with additional context
type AppError struct {
	Type     ErrorType
	Message  string
	Code     string
	Internal error
	Context  map[string]interface{}
	Source   string
}

// Error implements the error interface
func (e *AppError) Error() string {
	if e.Internal != nil {
		return fmt.Sprintf("%s: %s (internal: %v)", e.Type, e.Message, e.Internal)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

// Unwrap returns the internal error
func (e *AppError) Unwrap() error {
	return e.Internal
}

// Is checks if the error matches the target
func (e *AppError) Is(target error) bool {
	if t, ok := target.(*AppError); ok {
		return e.Type == t.Type && e.Code == t.Code
	}
	return errors.Is(e.Internal, target)
}

// WithContext adds context to the error
func (e *AppError) WithContext(key string, value interface{}) *AppError {
	if e.Context == nil {
		e.Context = make(map[string]interface{})
	}
	e.Context[key] = value
	return e
}

// LogFields returns structured logging fields
func (e *AppError) LogFields() []interface{} {
	fields := []interface{}{
		"error_type", e.Type,
		"error_code", e.Code,
		"error_message", e.Message,
		"source", e.Source,
	}

	if e.Internal != nil {
		fields = append(fields, "internal_error", e.Internal.Error())
	}

	for k, v := range e.Context {
		fields = append(fields, k, v)
	}

	return fields
}

// New creates a new AppError
func New(errorType ErrorType, code, message string) *AppError {
	_, file, line, _ := runtime.Caller(1)
	source := fmt.Sprintf("%s:%d", file, line)

	return &AppError{
		Type:    errorType,
		Code:    code,
		Message: message,
		Source:  source,
		Context: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error into AppError
func Wrap(err error, errorType ErrorType, code, message string) *AppError {
	_, file, line, _ := runtime.Caller(1)
	source := fmt.Sprintf("%s:%d", file, line)

	return &AppError{
		Type:     errorType,
		Code:     code,
		Message:  message,
		Internal: err,
		Source:   source,
		Context:  make(map[string]interface{}),
	}
}

// TypeOf returns the ErrorType of err, or ErrorTypeInternal when err is not an AppError.
func TypeOf(err error) ErrorType {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Type
	}
	return ErrorTypeInternal
}

// Handler provides error handling strategies
type Handler struct {
	logger *zap.SugaredLogger
}

// NewHandler creates a new error handler
func NewHandler(logger *zap.SugaredLogger) *Handler {
	return &Handler{logger: logger}
}

// Handle processes an error according to its type
func (h *Handler) Handle(ctx context.Context, err error) {
	if err == nil {
		return
	}

	var appErr *AppError
	if errors.As(err, &appErr) {
		h.handleAppError(ctx, appErr)
	} else {
		h.handleGenericError(ctx, err)
	}
}

func (h *Handler) handleAppError(_ context.Context, err *AppError) {
	switch err.Type {
	case ErrorTypeValidation, ErrorTypeNotRegistered, ErrorTypeNotFound:
		h.logger.Infow("Request rejected", err.LogFields()...)
	case ErrorTypeRateLimit:
		h.logger.Warnw("Rate limit error", err.LogFields()...)
	case ErrorTypeDelivery:
		h.logger.Warnw("Delivery failed", err.LogFields()...)
	case ErrorTypeDatabase, ErrorTypeInternal:
		h.logger.Errorw("Critical error", err.LogFields()...)
	default:
		h.logger.Errorw("Unknown error type", err.LogFields()...)
	}
}

func (h *Handler) handleGenericError(_ context.Context, err error) {
	h.logger.Errorw("Unhandled error", "error", err.Error())
}

// Predefined errors
var (
	ErrInvalidReading    = New(ErrorTypeValidation, "INVALID_READING", "Expected exactly three numbers: systolic diastolic pulse")
	ErrInvalidPagination = New(ErrorTypeValidation, "INVALID_PAGINATION", "Pagination parameters out of range")
	ErrNotRegistered     = New(ErrorTypeNotRegistered, "NOT_REGISTERED", "User is not registered")
	ErrPatientNotFound   = New(ErrorTypeNotFound, "PATIENT_NOT_FOUND", "Patient not found")
	ErrDeliveryFailed    = New(ErrorTypeDelivery, "DELIVERY_FAILED", "Notification delivery failed")
	ErrRateLimitExceeded = New(ErrorTypeRateLimit, "RATE_LIMIT", "Rate limit exceeded")
)

// Convenience functions for common errors
func NewValidationError(code, message string) *AppError {
	return New(ErrorTypeValidation, code, message)
}

func NewNotRegisteredError(telegramID int64) *AppError {
	return New(ErrorTypeNotRegistered, "NOT_REGISTERED", "User is not registered").
		WithContext("telegram_id", telegramID)
}

func NewNotFoundError(telegramID int64) *AppError {
	return New(ErrorTypeNotFound, "PATIENT_NOT_FOUND", "Patient not found").
		WithContext("telegram_id", telegramID)
}

func NewDeliveryError(err error, telegramID int64) *AppError {
	return Wrap(err, ErrorTypeDelivery, "DELIVERY_FAILED", "Notification delivery failed").
		WithContext("telegram_id", telegramID)
}

func NewDatabaseError(err error) *AppError {
	return Wrap(err, ErrorTypeDatabase, "DB_ERROR", "Database operation failed")
}

func NewRateLimitError(clientIP, path string) *AppError {
	return New(ErrorTypeRateLimit, "RATE_LIMIT", "Rate limit exceeded").
		WithContext("client_ip", clientIP).
		WithContext("path", path)
}
