package failure

import (
	"errors"
	"net/http"
)

// Failure is an error that carries the HTTP status it should be reported with.
type Failure struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

var (
	InvalidPageParam  = &Failure{Code: http.StatusBadRequest, Message: "invalid page parameter"}
	InvalidLimitParam = &Failure{Code: http.StatusBadRequest, Message: "invalid limit parameter"}
	ForbiddenError    = &Failure{Code: http.StatusForbidden, Message: "You don't have the required permissions"}
)

func (e *Failure) Error() string {
	return e.Message
}

func New(code int, msg string) error {
	return &Failure{Code: code, Message: msg}
}

// BadRequest wraps err as a 400. A nil err stays nil.
func BadRequest(err error) error {
	if err == nil {
		return nil
	}

	return New(http.StatusBadRequest, err.Error())
}

func BadRequestFromString(msg string) error {
	return New(http.StatusBadRequest, msg)
}

func Unauthorized(msg string) error {
	return New(http.StatusUnauthorized, msg)
}

func Forbidden(msg string) error {
	return New(http.StatusForbidden, msg)
}

func NotFound(msg string) error {
	return New(http.StatusNotFound, msg)
}

func Conflict(msg string) error {
	return New(http.StatusConflict, msg)
}

// InternalError wraps err as a 500. A nil err stays nil.
func InternalError(err error) error {
	if err == nil {
		return nil
	}

	return New(http.StatusInternalServerError, err.Error())
}

// GetCode returns the status carried by err, or 500 for anything else.
func GetCode(err error) int {
	var fail *Failure
	if errors.As(err, &fail) {
		return fail.Code
	}

	return http.StatusInternalServerError
}

// IsFailure reports whether err carries a Failure somewhere in its chain.
func IsFailure(err error) bool {
	var fail *Failure

	return errors.As(err, &fail)
}
