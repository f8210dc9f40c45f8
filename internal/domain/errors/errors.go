package errors

import (
	"net/http"

	"lifeline/internal/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() string   // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error
func NewBaseError(httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

// Error implements the error interface
func (e *BaseError) Error() string {
	return e.message
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// HTTPCode returns the HTTP status code
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// ErrorCode returns the business error code
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-friendly error message
func (e *BaseError) Message() string {
	return e.message
}

// Details returns detailed error information
func (e *BaseError) Details() string {
	return e.details
}

// WithDetails adds detailed error information
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// Predefined error types
var (
	// Donor record errors
	ErrDonorNotFound = NewBaseError(
		http.StatusNotFound,
		"DONOR_NOT_FOUND",
		"Donor record not found",
		"",
	)

	ErrDonorCreationFailed = NewBaseError(
		http.StatusInternalServerError,
		"DONOR_CREATION_FAILED",
		"Failed to save donor details",
		"",
	)

	// Authentication errors
	ErrUnauthorized = NewBaseError(
		http.StatusUnauthorized,
		"UNAUTHORIZED",
		"User not logged in",
		"",
	)

	ErrSessionInvalid = NewBaseError(
		http.StatusUnauthorized,
		"SESSION_INVALID",
		"Invalid or expired session token",
		"",
	)

	// Report errors
	ErrReportEmpty = NewBaseError(
		http.StatusNotFound,
		"REPORT_EMPTY",
		"No donor records to export",
		"",
	)

	// Generic errors
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"Request validation failed",
		"",
	)

	ErrNotFound = NewBaseError(
		http.StatusNotFound,
		"NOT_FOUND",
		"Resource not found",
		"",
	)

	ErrInternal = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"Internal server error",
		"",
	)
)

// StoreExecuteError represents a record store execution error (network or
// permission failure from the managed document database), implementing the
// AppError interface. It carries the underlying error's message through to
// the client.
type StoreExecuteError struct {
	err     error
	details string
}

// NewStoreExecuteError creates a record-store-related error
func NewStoreExecuteError(err error, details string) AppError {
	return &StoreExecuteError{
		err:     err,
		details: details,
	}
}

// Error implements the error interface
func (e *StoreExecuteError) Error() string {
	return errors.Wrap(e.err, "record store execution failed").Error()
}

// HTTPCode returns the HTTP status code
func (e *StoreExecuteError) HTTPCode() int {
	return http.StatusInternalServerError
}

// ErrorCode returns the business error code
func (e *StoreExecuteError) ErrorCode() string {
	return "STORE_EXECUTE_FAILED"
}

// Message returns the user-friendly error message
func (e *StoreExecuteError) Message() string {
	if e.err != nil {
		return e.err.Error()
	}

	return "Record store execution failed"
}

// Details returns detailed error information
func (e *StoreExecuteError) Details() string {
	return e.details
}

// ReportGenerateError represents a local I/O failure while emitting a
// history report, implementing the AppError interface.
type ReportGenerateError struct {
	err     error
	details string
}

// NewReportGenerateError creates a report-related error
func NewReportGenerateError(err error, details string) AppError {
	return &ReportGenerateError{
		err:     err,
		details: details,
	}
}

// Error implements the error interface
func (e *ReportGenerateError) Error() string {
	return errors.Wrap(e.err, "report generation failed").Error()
}

// HTTPCode returns the HTTP status code
func (e *ReportGenerateError) HTTPCode() int {
	return http.StatusInternalServerError
}

// ErrorCode returns the business error code
func (e *ReportGenerateError) ErrorCode() string {
	return "REPORT_GENERATE_FAILED"
}

// Message returns the user-friendly error message
func (e *ReportGenerateError) Message() string {
	if e.err != nil {
		return e.err.Error()
	}

	return "Report generation failed"
}

// Details returns detailed error information
func (e *ReportGenerateError) Details() string {
	return e.details
}
