package apperr

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHTTPStatus(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"invalid", InvalidErr("bad input", nil), http.StatusBadRequest},
		{"not found", NotFoundErr("missing"), http.StatusNotFound},
		{"render", RenderErr(errors.New("boom")), http.StatusInternalServerError},
		{"store", StoreErr(errors.New("boom")), http.StatusInternalServerError},
		{"dispatch", DispatchErr(errors.New("boom")), http.StatusInternalServerError},
		{"wrapped", Wrap(errors.New("boom")), http.StatusInternalServerError},
		{"plain error", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, HTTPStatus(tt.err))
		})
	}
}

func TestIsKind(t *testing.T) {
	assert.True(t, IsKind(NotFoundErr("x"), NotFound))
	assert.False(t, IsKind(NotFoundErr("x"), Invalid))
	assert.False(t, IsKind(errors.New("plain"), NotFound))
}

func TestPublicMessage(t *testing.T) {
	assert.Equal(t, "missing", PublicMessage(NotFoundErr("missing")))
	assert.Equal(t, "An unexpected error occurred.", PublicMessage(errors.New("internal detail")))
}

func TestUnwrap(t *testing.T) {
	cause := errors.New("disk full")
	assert.ErrorIs(t, StoreErr(cause), cause)
}
