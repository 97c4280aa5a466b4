package apperr

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatusMapping(t *testing.T) {
	cases := []struct {
		err    *Error
		status int
	}{
		{Validation("too long"), http.StatusUnprocessableEntity},
		{Conflict("duplicate"), http.StatusConflict},
		{NotFound("missing"), http.StatusNotFound},
		{Forbidden("not yours"), http.StatusForbidden},
		{Unauthorized("no token"), http.StatusUnauthorized},
		{Unavailable("down"), http.StatusServiceUnavailable},
		{Timeout("slow"), http.StatusGatewayTimeout},
		{Internal("boom"), http.StatusInternalServerError},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.status, tc.err.Status, tc.err.Code)
	}
}

func TestFrom(t *testing.T) {
	ae := Conflict("duplicate")
	assert.Same(t, ae, From(ae))
	assert.Same(t, ae, From(fmt.Errorf("wrapped: %w", ae)))

	plain := From(errors.New("boom"))
	assert.Equal(t, CodeInternal, plain.Code)
}

func TestIs(t *testing.T) {
	err := fmt.Errorf("save failed: %w", Conflict("duplicate"))
	assert.True(t, Is(err, CodeConflict))
	assert.False(t, Is(err, CodeNotFound))
	assert.False(t, Is(errors.New("boom"), CodeConflict))
}
