package errors

import (
	"errors"
	"fmt"
)

// ErrorCode identifies an error category. Tests match on codes rather
// than message text.
type ErrorCode string

const (
	// General errors
	ErrUnknown      ErrorCode = "UNKNOWN"
	ErrInternal     ErrorCode = "INTERNAL"
	ErrInvalidInput ErrorCode = "INVALID_INPUT"
	ErrNotFound     ErrorCode = "NOT_FOUND"

	// Configuration errors
	ErrConfigLoad  ErrorCode = "CONFIG_LOAD"
	ErrConfigParse ErrorCode = "CONFIG_PARSE"

	// Template errors
	ErrTemplateNotFound ErrorCode = "TEMPLATE_NOT_FOUND"
	ErrTemplateMetadata ErrorCode = "TEMPLATE_METADATA"
	ErrTemplateInvalid  ErrorCode = "TEMPLATE_INVALID"

	// Vault errors
	ErrVaultNotFound ErrorCode = "VAULT_NOT_FOUND"
	ErrVaultExists   ErrorCode = "VAULT_EXISTS"
	ErrVaultInvalid  ErrorCode = "VAULT_INVALID"

	// Note and note type errors
	ErrNoteExists      ErrorCode = "NOTE_EXISTS"
	ErrNoteInvalid     ErrorCode = "NOTE_INVALID"
	ErrNoteTypeExists  ErrorCode = "NOTE_TYPE_EXISTS"
	ErrNoteTypeUnknown ErrorCode = "NOTE_TYPE_UNKNOWN"
	ErrSchemaInvalid   ErrorCode = "SCHEMA_INVALID"
	ErrFieldRequired   ErrorCode = "FIELD_REQUIRED"

	// FileSystem errors
	ErrFileNotFound ErrorCode = "FILE_NOT_FOUND"
	ErrFileAccess   ErrorCode = "FILE_ACCESS"
	ErrFileCreate   ErrorCode = "FILE_CREATE"
	ErrFileWrite    ErrorCode = "FILE_WRITE"
	ErrDirCreate    ErrorCode = "DIR_CREATE"
)

// FlintError carries an ErrorCode plus optional key/value details and
// a wrapped cause.
type FlintError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

func newError(code ErrorCode, message string, wrapped error) *FlintError {
	return &FlintError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: wrapped,
	}
}

func (e *FlintError) Error() string {
	msg := fmt.Sprintf("[%s] %s", e.Code, e.Message)
	if e.Wrapped != nil {
		msg += ": " + e.Wrapped.Error()
	}
	return msg
}

func (e *FlintError) Unwrap() error {
	return e.Wrapped
}

// Is matches two FlintErrors by code, so errors.Is works across
// separately constructed instances.
func (e *FlintError) Is(target error) bool {
	t, ok := asFlint(target)
	return ok && e.Code == t.Code
}

// New creates a FlintError with the given code and message
func New(code ErrorCode, message string) *FlintError {
	return newError(code, message, nil)
}

// Newf creates a FlintError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *FlintError {
	return newError(code, fmt.Sprintf(format, args...), nil)
}

// Wrap annotates err with a code and message. A nil err yields nil.
func Wrap(err error, code ErrorCode, message string) *FlintError {
	if err == nil {
		return nil
	}
	return newError(code, message, err)
}

// Wrapf annotates err with a code and formatted message. A nil err
// yields nil.
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *FlintError {
	if err == nil {
		return nil
	}
	return newError(code, fmt.Sprintf(format, args...), err)
}

// WithDetail attaches a key/value pair and returns the error for chaining
func (e *FlintError) WithDetail(key string, value interface{}) *FlintError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// WithDetails attaches several key/value pairs at once
func (e *FlintError) WithDetails(details map[string]interface{}) *FlintError {
	for k, v := range details {
		e.WithDetail(k, v)
	}
	return e
}

func asFlint(err error) (*FlintError, bool) {
	var fe *FlintError
	ok := errors.As(err, &fe)
	return fe, ok
}

// IsErrorCode reports whether err (or anything it wraps) carries code.
func IsErrorCode(err error, code ErrorCode) bool {
	fe, ok := asFlint(err)
	return ok && fe.Code == code
}

// GetErrorCode extracts the code from err, or ErrUnknown for errors
// created outside this package.
func GetErrorCode(err error) ErrorCode {
	if fe, ok := asFlint(err); ok {
		return fe.Code
	}
	return ErrUnknown
}
