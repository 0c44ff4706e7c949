package adapter

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorKind(t *testing.T) {
	tests := []struct {
		code int
		want error
	}{
		{http.StatusBadRequest, ErrBadRequest},
		{http.StatusUnauthorized, ErrUnauthorized},
		{http.StatusForbidden, ErrForbidden},
		{http.StatusNotFound, ErrNotFound},
		{http.StatusConflict, ErrConflict},
		{http.StatusUnprocessableEntity, ErrValidation},
		{http.StatusInternalServerError, ErrInternalServerError},
		{http.StatusBadGateway, ErrServerUnavailable},
		{http.StatusServiceUnavailable, ErrServerUnavailable},
		{http.StatusTeapot, ErrUnexpectedStatus},
	}
	for _, tt := range tests {
		t.Run(http.StatusText(tt.code), func(t *testing.T) {
			assert.ErrorIs(t, errorKind(tt.code), tt.want)
		})
	}
}

func TestServerError_Error(t *testing.T) {
	err := &ServerError{StatusCode: http.StatusConflict, Message: "still referenced", kind: ErrConflict}
	assert.Equal(t, "conflict: still referenced", err.Error())
	assert.ErrorIs(t, err, ErrConflict)

	bare := &ServerError{StatusCode: http.StatusNotFound, kind: ErrNotFound}
	assert.Equal(t, "not found", bare.Error())
}
