package failure

import (
	"errors"
	"net/http"
)

// Failure is an error the HTTP layer can answer with: Code is the response
// status, Message the text shown to the caller.
type Failure struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	cause   error
}

// Booking and appointment outcomes shared by the services and handlers.
var (
	ErrSessionNotFound  = &Failure{Code: http.StatusNotFound, Message: "booking session not found"}
	ErrStepGuard        = &Failure{Code: http.StatusConflict, Message: "the current step is not complete"}
	ErrSlotUnavailable  = &Failure{Code: http.StatusConflict, Message: "the selected time is no longer available"}
	ErrNotCancellable   = &Failure{Code: http.StatusUnprocessableEntity, Message: "only pending or confirmed appointments that have not started can be cancelled"}
	ErrCustomerRequired = &Failure{Code: http.StatusUnauthorized, Message: "customer session is required"}
)

func (e *Failure) Error() string {
	return e.Message
}

// Unwrap exposes the error a Failure was built from, if any.
func (e *Failure) Unwrap() error {
	return e.cause
}

// Internal reports whether the failure is a server side one whose message
// must not reach the caller.
func (e *Failure) Internal() bool {
	return e.Code >= http.StatusInternalServerError
}

func wrap(code int, err error) error {
	if err == nil {
		return nil
	}

	return &Failure{Code: code, Message: err.Error(), cause: err}
}

func BadRequest(err error) error {
	return wrap(http.StatusBadRequest, err)
}

func BadRequestFromString(msg string) error {
	return &Failure{Code: http.StatusBadRequest, Message: msg}
}

func Unauthorized(msg string) error {
	return &Failure{Code: http.StatusUnauthorized, Message: msg}
}

func Forbidden(msg string) error {
	return &Failure{Code: http.StatusForbidden, Message: msg}
}

// NotFound reports a missing entity; msg names what was looked up.
func NotFound(msg string) error {
	return &Failure{Code: http.StatusNotFound, Message: msg}
}

func Conflict(msg string) error {
	return &Failure{Code: http.StatusConflict, Message: msg}
}

// InternalError keeps err as the cause so callers can still match it.
func InternalError(err error) error {
	return wrap(http.StatusInternalServerError, err)
}

// BadGateway reports an upstream backend that answered with something unusable.
func BadGateway(msg string) error {
	return &Failure{Code: http.StatusBadGateway, Message: msg}
}

// GetCode returns the status carried by err, or 500 for plain errors.
func GetCode(err error) int {
	var fail *Failure
	if errors.As(err, &fail) {
		return fail.Code
	}

	return http.StatusInternalServerError
}

func IsFailure(err error) bool {
	var fail *Failure

	return errors.As(err, &fail)
}
