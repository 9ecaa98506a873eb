package failure_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/NikQuila/website-gocar-sub000/shared/failure"

	"github.com/stretchr/testify/assert"
)

func TestFailure_Error(t *testing.T) {
	f := &failure.Failure{Code: http.StatusBadRequest, Message: "test error message"}

	assert.Equal(t, "test error message", f.Error())
}

func TestConstructors(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		code    int
		message string
	}{
		{
			name:    "bad request",
			err:     failure.BadRequest(errors.New("validation failed")),
			code:    http.StatusBadRequest,
			message: "validation failed",
		},
		{
			name:    "bad request from string",
			err:     failure.BadRequestFromString("month must be YYYY-MM"),
			code:    http.StatusBadRequest,
			message: "month must be YYYY-MM",
		},
		{
			name:    "unauthorized",
			err:     failure.Unauthorized("token expired"),
			code:    http.StatusUnauthorized,
			message: "token expired",
		},
		{
			name:    "internal error",
			err:     failure.InternalError(errors.New("database connection failed")),
			code:    http.StatusInternalServerError,
			message: "database connection failed",
		},
		{
			name:    "not found",
			err:     failure.NotFound("appointment"),
			code:    http.StatusNotFound,
			message: "appointment",
		},
		{
			name:    "conflict",
			err:     failure.Conflict("slot taken"),
			code:    http.StatusConflict,
			message: "slot taken",
		},
		{
			name:    "forbidden",
			err:     failure.Forbidden("other tenant"),
			code:    http.StatusForbidden,
			message: "other tenant",
		},
		{
			name:    "bad gateway",
			err:     failure.BadGateway("unreadable rpc body"),
			code:    http.StatusBadGateway,
			message: "unreadable rpc body",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var f *failure.Failure
			assert.True(t, errors.As(tt.err, &f))
			assert.Equal(t, tt.code, f.Code)
			assert.Equal(t, tt.message, f.Message)
		})
	}
}

func TestInternalError_KeepsCause(t *testing.T) {
	cause := errors.New("pq: deadlock detected")
	err := failure.InternalError(cause)

	assert.ErrorIs(t, err, cause)

	var f *failure.Failure
	assert.True(t, errors.As(err, &f))
	assert.True(t, f.Internal())
	assert.False(t, failure.ErrSlotUnavailable.Internal())
}

func TestNilInputs(t *testing.T) {
	assert.Nil(t, failure.BadRequest(nil))
	assert.Nil(t, failure.InternalError(nil))
}

func TestGetCode(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected int
	}{
		{
			name:     "failure",
			err:      failure.ErrSlotUnavailable,
			expected: http.StatusConflict,
		},
		{
			name:     "wrapped failure",
			err:      fmt.Errorf("confirm: %w", failure.ErrNotCancellable),
			expected: http.StatusUnprocessableEntity,
		},
		{
			name:     "plain error",
			err:      errors.New("boom"),
			expected: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, failure.GetCode(tt.err))
		})
	}
}

func TestIsFailure(t *testing.T) {
	assert.True(t, failure.IsFailure(fmt.Errorf("wrapped: %w", failure.ErrSlotUnavailable)))
	assert.False(t, failure.IsFailure(errors.New("dial tcp: connection refused")))
}
