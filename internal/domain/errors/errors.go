package errors

import (
	"net/http"

	"storefront/internal/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() string   // Detailed error information (optional)
}

// FieldError is implemented by errors attributable to a single input field.
type FieldError interface {
	AppError
	Field() string
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

// WithDetails returns a copy carrying details. The copy still matches the
// original through errors.Is.
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// Is matches any BaseError with the same business code.
func (e *BaseError) Is(target error) bool {
	t, ok := target.(*BaseError)
	if !ok {
		return false
	}

	return t.errorCode == e.errorCode
}

// Predefined error types
var (
	ErrNotFound = NewBaseError(
		http.StatusNotFound,
		"NOT_FOUND",
		"The requested resource was not found",
		"",
	)

	ErrUserNotFound = NewBaseError(
		http.StatusNotFound,
		"USER_NOT_FOUND",
		"No account matches this identifier",
		"",
	)

	ErrOrderNotFound = NewBaseError(
		http.StatusNotFound,
		"ORDER_NOT_FOUND",
		"Order not found",
		"",
	)

	ErrProductNotFound = NewBaseError(
		http.StatusNotFound,
		"PRODUCT_NOT_FOUND",
		"Product not found",
		"",
	)

	ErrRedeemCodeNotFound = NewBaseError(
		http.StatusNotFound,
		"REDEEM_CODE_NOT_FOUND",
		"Redeem code not found",
		"",
	)

	ErrInvalidCredentials = NewBaseError(
		http.StatusUnauthorized,
		"INVALID_CREDENTIALS",
		"Incorrect password",
		"",
	)

	// ErrWrongProvider is the kind matched by every *WrongProviderError.
	ErrWrongProvider = NewBaseError(
		http.StatusConflict,
		"WRONG_PROVIDER",
		"This account uses a different sign-in method",
		"",
	)

	// ErrDuplicateField is the kind matched by every *DuplicateFieldError.
	ErrDuplicateField = NewBaseError(
		http.StatusConflict,
		"DUPLICATE_FIELD",
		"A unique value is already taken",
		"",
	)

	// ErrValidationFailed is the kind matched by every *ValidationError.
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"Input validation failed",
		"",
	)

	ErrTimeout = NewBaseError(
		http.StatusGatewayTimeout,
		"TIMEOUT",
		"The operation timed out, please retry",
		"",
	)

	ErrUnauthorized = NewBaseError(
		http.StatusUnauthorized,
		"UNAUTHORIZED",
		"Authentication required",
		"",
	)

	ErrInvalidToken = NewBaseError(
		http.StatusUnauthorized,
		"INVALID_TOKEN",
		"Invalid or expired session",
		"",
	)

	ErrForbidden = NewBaseError(
		http.StatusForbidden,
		"FORBIDDEN",
		"Access denied",
		"",
	)

	ErrOAuthFailed = NewBaseError(
		http.StatusUnauthorized,
		"OAUTH_FAILED",
		"External sign-in failed",
		"",
	)

	ErrOAuthTokenInvalid = NewBaseError(
		http.StatusBadRequest,
		"OAUTH_TOKEN_INVALID",
		"Invalid provider token",
		"",
	)

	ErrInvalidLink = NewBaseError(
		http.StatusBadRequest,
		"INVALID_LINK",
		"The link is invalid or has expired",
		"",
	)

	ErrOAuthStateInvalid = NewBaseError(
		http.StatusBadRequest,
		"OAUTH_STATE_INVALID",
		"Invalid OAuth state",
		"",
	)

	ErrPasswordHashFailed = NewBaseError(
		http.StatusInternalServerError,
		"PASSWORD_HASH_FAILED",
		"Password processing failed",
		"",
	)

	ErrUploadFailed = NewBaseError(
		http.StatusBadGateway,
		"UPLOAD_FAILED",
		"Image upload failed",
		"",
	)

	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"Internal server error",
		"",
	)
)

// WrongProviderError reports that the account belongs to another sign-in method.
type WrongProviderError struct {
	provider string
}

// NewWrongProviderError creates an error naming the provider that owns the account.
func NewWrongProviderError(provider string) *WrongProviderError {
	return &WrongProviderError{provider: provider}
}

func (e *WrongProviderError) Error() string {
	return "account is registered with provider " + e.provider
}

func (e *WrongProviderError) HTTPCode() int     { return ErrWrongProvider.HTTPCode() }
func (e *WrongProviderError) ErrorCode() string { return ErrWrongProvider.ErrorCode() }
func (e *WrongProviderError) Details() string   { return e.provider }

// Message tells the client which sign-in method to use.
func (e *WrongProviderError) Message() string {
	switch e.provider {
	case "google":
		return "This account uses Google Sign-In. Please sign in with Google."
	case "local":
		return "This account uses a password. Please sign in with your email and password."
	default:
		return ErrWrongProvider.Message()
	}
}

// Provider returns the provider that owns the account.
func (e *WrongProviderError) Provider() string {
	return e.provider
}

// Is matches ErrWrongProvider.
func (e *WrongProviderError) Is(target error) bool {
	return target == ErrWrongProvider
}

// DuplicateFieldError reports a unique value that is already taken.
type DuplicateFieldError struct {
	field string
}

// NewDuplicateFieldError creates an error naming the conflicting field.
func NewDuplicateFieldError(field string) *DuplicateFieldError {
	return &DuplicateFieldError{field: field}
}

func (e *DuplicateFieldError) Error() string {
	return e.field + " already taken"
}

func (e *DuplicateFieldError) HTTPCode() int     { return ErrDuplicateField.HTTPCode() }
func (e *DuplicateFieldError) ErrorCode() string { return ErrDuplicateField.ErrorCode() }
func (e *DuplicateFieldError) Details() string   { return e.field }
func (e *DuplicateFieldError) Field() string     { return e.field }

func (e *DuplicateFieldError) Message() string {
	return "An account with this " + e.field + " already exists"
}

// Is matches ErrDuplicateField.
func (e *DuplicateFieldError) Is(target error) bool {
	return target == ErrDuplicateField
}

// ValidationError reports the first invalid input field.
type ValidationError struct {
	field  string
	reason string
}

// NewValidationError creates an error for field with a human readable reason.
func NewValidationError(field, reason string) *ValidationError {
	return &ValidationError{field: field, reason: reason}
}

func (e *ValidationError) Error() string {
	return e.field + ": " + e.reason
}

func (e *ValidationError) HTTPCode() int     { return ErrValidationFailed.HTTPCode() }
func (e *ValidationError) ErrorCode() string { return ErrValidationFailed.ErrorCode() }
func (e *ValidationError) Message() string   { return e.reason }
func (e *ValidationError) Details() string   { return e.field }
func (e *ValidationError) Field() string     { return e.field }

// Is matches ErrValidationFailed.
func (e *ValidationError) Is(target error) bool {
	return target == ErrValidationFailed
}

// DatabaseExecuteError represents a database execution error, implementing the AppError interface
type DatabaseExecuteError struct {
	err     error
	details string
}

// NewDatabaseExecuteError creates a database-related error
func NewDatabaseExecuteError(err error, details string) AppError {
	return &DatabaseExecuteError{
		err:     err,
		details: details,
	}
}

// Error implements the error interface
func (e *DatabaseExecuteError) Error() string {
	return errors.Wrap(e.err, "database execution failed").Error()
}

// Unwrap exposes the driver error.
func (e *DatabaseExecuteError) Unwrap() error {
	return e.err
}

// HTTPCode returns the HTTP status code
func (e *DatabaseExecuteError) HTTPCode() int {
	return http.StatusInternalServerError
}

// ErrorCode returns the business error code
func (e *DatabaseExecuteError) ErrorCode() string {
	return ErrInternalError.ErrorCode()
}

// Message returns the user-friendly error message
func (e *DatabaseExecuteError) Message() string {
	return ErrInternalError.Message()
}

// Details returns detailed error information
func (e *DatabaseExecuteError) Details() string {
	return e.details
}
