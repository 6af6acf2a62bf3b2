package apperror

import (
	"errors"
	"net/http"
)

type Status int

const (
	BadRequest Status = iota
	NotFound
)

// Error is a client-facing failure raised by the quiz domain. Message is part
// of the API contract and is returned verbatim.
type Error struct {
	Message string
	Status  Status
}

func (e *Error) Error() string {
	return e.Message
}

func Fail(message string, status Status) *Error {
	return &Error{Message: message, Status: status}
}

func NewValidation(message string) *Error {
	return Fail(message, BadRequest)
}

func NewNotFound(message string) *Error {
	return Fail(message, NotFound)
}

// As extracts the domain error from err, if any.
func As(err error) (*Error, bool) {
	var domainErr *Error
	if errors.As(err, &domainErr) {
		return domainErr, true
	}
	return nil, false
}

func IsNotFound(err error) bool {
	e, ok := As(err)
	return ok && e.Status == NotFound
}

func IsValidation(err error) bool {
	e, ok := As(err)
	return ok && e.Status == BadRequest
}

func HTTPStatus(err error) int {
	e, ok := As(err)
	if !ok {
		return http.StatusInternalServerError
	}
	switch e.Status {
	case NotFound:
		return http.StatusNotFound
	default:
		return http.StatusBadRequest
	}
}
