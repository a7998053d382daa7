package booking

import (
	"errors"
	"fmt"

	"turfbook/database/repository"
)

// Error codes surfaced by the booking service. Handlers map these onto
// HTTP status codes.
const (
	CodeNotFound           = "notFound"
	CodeConflict           = "conflict"
	CodeServiceUnavailable = "serviceUnavailable"
	CodePersistence        = "persistence"
)

// BookingError is the typed error returned by all service operations.
type BookingError struct {
	Code    string
	Message string
	Err     error
}

func (e *BookingError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *BookingError) Unwrap() error { return e.Err }

func NewNotFoundError(msg string) error {
	return &BookingError{Code: CodeNotFound, Message: msg}
}

func NewConflictError(msg string) error {
	return &BookingError{Code: CodeConflict, Message: msg}
}

func NewServiceUnavailableError(msg string, err error) error {
	return &BookingError{Code: CodeServiceUnavailable, Message: msg, Err: err}
}

func NewPersistenceError(msg string, err error) error {
	return &BookingError{Code: CodePersistence, Message: msg, Err: err}
}

func IsNotFound(err error) bool    { return hasCode(err, CodeNotFound) }
func IsConflict(err error) bool    { return hasCode(err, CodeConflict) }
func IsUnavailable(err error) bool { return hasCode(err, CodeServiceUnavailable) }

func hasCode(err error, code string) bool {
	var be *BookingError
	return errors.As(err, &be) && be.Code == code
}

// fromRepoError translates repository sentinels into service errors.
func fromRepoError(err error, op string) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, repository.ErrNotFound):
		return &BookingError{Code: CodeNotFound, Message: op, Err: err}
	case errors.Is(err, repository.ErrConflict):
		return &BookingError{Code: CodeConflict, Message: op, Err: err}
	default:
		var be *BookingError
		if errors.As(err, &be) {
			return err
		}
		return &BookingError{Code: CodePersistence, Message: op, Err: err}
	}
}
