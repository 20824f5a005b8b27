package apperrors

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrUnauthorized indicates that the caller could not be authenticated.
var ErrUnauthorized = errors.New("unauthorized")

// ErrForbidden indicates that the authenticated caller lacks the required permission.
var ErrForbidden = errors.New("forbidden")

// ErrResourceInUse indicates that a resource cannot be deleted or deactivated
// because other records still reference it.
var ErrResourceInUse = errors.New("resource is still referenced")

// ErrImmutable indicates an attempt to modify a record that has been finalized.
var ErrImmutable = errors.New("record is immutable")

// Machine-readable error codes returned to clients alongside the HTTP status.
const (
	CodeNoToken            = "NO_TOKEN"
	CodeMalformedToken     = "MALFORMED_TOKEN"
	CodeTokenExpired       = "TOKEN_EXPIRED"
	CodeInvalidToken       = "INVALID_TOKEN"
	CodeUserNotFound       = "USER_NOT_FOUND"
	CodeUserDeactivated    = "USER_DEACTIVATED"
	CodeInsufficientPerms  = "INSUFFICIENT_PERMISSIONS"
	CodeRoleMismatch       = "ROLE_MISMATCH"
	CodeResourceInUse      = "RESOURCE_IN_USE"
	CodeValidationFailed   = "VALIDATION_FAILED"
	CodeNotFound           = "NOT_FOUND"
	CodeDuplicateResource  = "DUPLICATE_RESOURCE"
	CodeInvalidCredentials = "INVALID_CREDENTIALS"
	CodeInternalError      = "INTERNAL_ERROR"
)

// AppError carries an HTTP status, a machine-readable code and a human
// message across service and handler boundaries.
type AppError struct {
	Status  int    `json:"-"`
	Code    string `json:"code"`
	Message string `json:"message"`
	Err     error  `json:"-"`
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// NewAppError creates a generic AppError wrapping an underlying cause.
func NewAppError(status int, message string, err error) *AppError {
	return &AppError{Status: status, Code: CodeInternalError, Message: message, Err: err}
}

// NewBadRequestError creates a 400 AppError for malformed input.
func NewBadRequestError(message string) *AppError {
	return &AppError{Status: http.StatusBadRequest, Code: CodeValidationFailed, Message: message, Err: ErrValidation}
}

// NewUnauthorizedError creates a 401 AppError with the given code.
func NewUnauthorizedError(code, message string) *AppError {
	return &AppError{Status: http.StatusUnauthorized, Code: code, Message: message, Err: ErrUnauthorized}
}

// NewForbiddenError creates a 403 AppError with the given code.
func NewForbiddenError(code, message string) *AppError {
	return &AppError{Status: http.StatusForbidden, Code: code, Message: message, Err: ErrForbidden}
}

// NewNotFoundError creates a 404 AppError.
func NewNotFoundError(message string) *AppError {
	return &AppError{Status: http.StatusNotFound, Code: CodeNotFound, Message: message, Err: ErrNotFound}
}

// NewConflictError creates a 409 AppError for duplicate resources.
func NewConflictError(message string) *AppError {
	return &AppError{Status: http.StatusConflict, Code: CodeDuplicateResource, Message: message, Err: ErrDuplicate}
}

// NewResourceInUseError creates a 400 AppError for referential-integrity rejections.
func NewResourceInUseError(message string) *AppError {
	return &AppError{Status: http.StatusBadRequest, Code: CodeResourceInUse, Message: message, Err: ErrResourceInUse}
}

// AsAppError unwraps err into an *AppError if possible.
func AsAppError(err error) (*AppError, bool) {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}
