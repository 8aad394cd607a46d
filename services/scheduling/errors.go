package scheduling

import (
	"errors"
	"fmt"
)

// Error codes for scheduling failures. Handlers translate these to HTTP
// statuses; conflictError is the only one a client is expected to recover
// from by re-fetching slots.
const (
	CodeValidation       = "validationError"
	CodeConflict         = "conflictError"
	CodeNotFound         = "notFound"
	CodeStoreUnavailable = "storeUnavailable"
)

type Error struct {
	Code    string
	Message string
	Err     error
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Err
}

func NewValidationError(msg string) error {
	return &Error{Code: CodeValidation, Message: msg}
}

func NewConflictError(msg string) error {
	return &Error{Code: CodeConflict, Message: msg}
}

func NewNotFoundError(msg string) error {
	return &Error{Code: CodeNotFound, Message: msg}
}

func NewStoreError(msg string, err error) error {
	return &Error{Code: CodeStoreUnavailable, Message: msg, Err: err}
}

func hasCode(err error, code string) bool {
	var se *Error
	return errors.As(err, &se) && se.Code == code
}

func IsValidation(err error) bool { return hasCode(err, CodeValidation) }
func IsConflict(err error) bool   { return hasCode(err, CodeConflict) }
func IsNotFound(err error) bool   { return hasCode(err, CodeNotFound) }
