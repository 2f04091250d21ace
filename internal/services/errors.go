package services

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
)

// Error kinds. Every error returned by the booking services wraps exactly one
// of these, so callers can branch with errors.Is without reading messages.
var (
	ErrNotFound     = errors.New("not found")
	ErrUnauthorized = errors.New("unauthorized")
	ErrConflict     = errors.New("conflict")
	ErrValidation   = errors.New("validation failed")
	ErrIntegrity    = errors.New("integrity violation")
)

// ServiceError is a domain rule violation with a stable machine readable code
type ServiceError struct {
	Kind    error
	Code    string
	Message string
}

func (e *ServiceError) Error() string {
	return e.Message
}

// Unwrap exposes Kind to errors.Is
func (e *ServiceError) Unwrap() error {
	return e.Kind
}

// AccountError is a rejection that concerns a known account. It unwraps to
// the underlying ServiceError so kind and code checks still apply.
type AccountError struct {
	UserID uuid.UUID
	Err    *ServiceError
}

func (e *AccountError) Error() string {
	return e.Err.Error()
}

func (e *AccountError) Unwrap() error {
	return e.Err
}

// AccountOf returns the account a rejection concerns, or nil when unknown
func AccountOf(err error) *uuid.UUID {
	var ae *AccountError
	if errors.As(err, &ae) {
		id := ae.UserID
		return &id
	}
	return nil
}

func newError(kind error, code, format string, args ...interface{}) *ServiceError {
	return &ServiceError{Kind: kind, Code: code, Message: fmt.Sprintf(format, args...)}
}

func notFound(code, format string, args ...interface{}) *ServiceError {
	return newError(ErrNotFound, code, format, args...)
}

func unauthorized(code, format string, args ...interface{}) *ServiceError {
	return newError(ErrUnauthorized, code, format, args...)
}

func conflict(code, format string, args ...interface{}) *ServiceError {
	return newError(ErrConflict, code, format, args...)
}

func invalid(code, format string, args ...interface{}) *ServiceError {
	return newError(ErrValidation, code, format, args...)
}

func integrity(code, format string, args ...interface{}) *ServiceError {
	return newError(ErrIntegrity, code, format, args...)
}

// Codes
const (
	CodeUserNotFound     = "USER_NOT_FOUND"
	CodeAgencyNotFound   = "AGENCY_NOT_FOUND"
	CodeBusNotFound      = "BUS_NOT_FOUND"
	CodeScheduleNotFound = "SCHEDULE_NOT_FOUND"
	CodeCityNotFound     = "CITY_NOT_FOUND"
	CodeNotOwner         = "NOT_OWNER"
	CodeScheduleConflict = "SCHEDULE_CONFLICT"
	CodeDuplicate        = "DUPLICATE"
	CodeInUse            = "IN_USE"
	CodeInvalidRequest   = "INVALID_REQUEST"
	CodeInvalidBusType   = "INVALID_BUS_TYPE"
	CodeInvalidStatus    = "INVALID_STATUS"
	CodeBrokenReference  = "BROKEN_REFERENCE"
	CodeInvalidLogin     = "INVALID_CREDENTIALS"
	CodeAccountInactive  = "ACCOUNT_INACTIVE"
	CodeReportsDisabled  = "REPORT_EXPORT_DISABLED"
)

// CodeOf returns the code of a ServiceError, or "" for any other error
func CodeOf(err error) string {
	var se *ServiceError
	if errors.As(err, &se) {
		return se.Code
	}
	return ""
}
