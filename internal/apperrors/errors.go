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

// ErrConflict indicates that the request clashes with existing state (duplicate names,
// protected or in-use records).
var ErrConflict = errors.New("conflict")

// ErrConsistency indicates that stored ledger data violates a structural invariant,
// such as a transfer group with a missing sibling.
var ErrConsistency = errors.New("ledger consistency error")

// ErrForbidden indicates that the caller may not perform the action.
var ErrForbidden = errors.New("forbidden")

// AppError carries an HTTP-ish status code and a human message next to the wrapped cause.
type AppError struct {
	Code    int
	Message string
	Err     error
}

// NewAppError creates a new AppError.
func NewAppError(code int, message string, err error) *AppError {
	return &AppError{Code: code, Message: message, Err: err}
}

func (e *AppError) Error() string {
	if e.Err == nil {
		return e.Message
	}
	return fmt.Sprintf("%s: %v", e.Message, e.Err)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// ValidationError reports bad input shape or range.
func ValidationError(format string, args ...any) error {
	return NewAppError(http.StatusBadRequest, fmt.Sprintf(format, args...), ErrValidation)
}

// ConflictError reports a clash with existing registry state.
func ConflictError(format string, args ...any) error {
	return NewAppError(http.StatusConflict, fmt.Sprintf(format, args...), ErrConflict)
}

// NotFoundError reports an unknown id or name.
func NotFoundError(format string, args ...any) error {
	return NewAppError(http.StatusNotFound, fmt.Sprintf(format, args...), ErrNotFound)
}

// ConsistencyError reports a broken ledger invariant for a container.
func ConsistencyError(containerID int64, detail string) error {
	return NewAppError(http.StatusLocked, fmt.Sprintf("container %d is inconsistent: %s", containerID, detail), ErrConsistency)
}

// DuplicateNameError is returned when a name already exists in its scope.
func DuplicateNameError(kind, name string) error {
	return ConflictError("%s %q already exists", kind, name)
}

// InvalidClassificationError is returned for classifications outside the recognized set.
func InvalidClassificationError(value string) error {
	return ValidationError("invalid classification %q: must be one of asset, contra_asset, liability, equity", value)
}

// InvalidAmountError is returned for zero or otherwise unusable amounts.
func InvalidAmountError(reason string) error {
	return ValidationError("invalid amount: %s", reason)
}

// MissingCategoryError is returned when a non-transfer entry has no category.
func MissingCategoryError() error {
	return ValidationError("category is required for non-transfer transactions")
}

// SameAccountTransferError is returned when both sides of a transfer are the same account.
func SameAccountTransferError(accountID int64) error {
	return ValidationError("cannot transfer from account %d to itself", accountID)
}

// AccountNotFoundError is returned for unknown account ids.
func AccountNotFoundError(accountID int64) error {
	return NotFoundError("account %d not found", accountID)
}
