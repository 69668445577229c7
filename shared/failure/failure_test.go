package failure_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"hms/shared/failure"
)

func TestConstructors(t *testing.T) {
	tests := []struct {
		name string
		err  error
		code int
		msg  string
	}{
		{name: "bad request", err: failure.BadRequest(errors.New("bad body")), code: http.StatusBadRequest, msg: "bad body"},
		{name: "bad request string", err: failure.BadRequestFromString("ICU is not available for reservation"), code: http.StatusBadRequest, msg: "ICU is not available for reservation"},
		{name: "unauthorized", err: failure.Unauthorized("invalid token"), code: http.StatusUnauthorized, msg: "invalid token"},
		{name: "forbidden", err: failure.Forbidden("not your patient"), code: http.StatusForbidden, msg: "not your patient"},
		{name: "not found", err: failure.NotFound("ICU not found"), code: http.StatusNotFound, msg: "ICU not found"},
		{name: "conflict", err: failure.Conflict("duplicate"), code: http.StatusConflict, msg: "duplicate"},
		{name: "internal", err: failure.InternalError(errors.New("db down")), code: http.StatusInternalServerError, msg: "db down"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.code, failure.GetCode(tt.err))
			assert.Equal(t, tt.msg, tt.err.Error())
			assert.True(t, failure.IsFailure(tt.err))
		})
	}
}

func TestNilPassthrough(t *testing.T) {
	assert.NoError(t, failure.BadRequest(nil))
	assert.NoError(t, failure.InternalError(nil))
}

func TestGetCode(t *testing.T) {
	wrapped := fmt.Errorf("reserve: %w", failure.NotFound("ICU not found"))

	assert.Equal(t, http.StatusNotFound, failure.GetCode(wrapped))
	assert.Equal(t, http.StatusInternalServerError, failure.GetCode(errors.New("plain")))
	assert.False(t, failure.IsFailure(errors.New("plain")))
	assert.Equal(t, http.StatusForbidden, failure.GetCode(failure.ForbiddenError))
}
