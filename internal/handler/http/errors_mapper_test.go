package http

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/truenamepath/truenamepath/internal/service"
	"github.com/truenamepath/truenamepath/internal/store"
)

func TestStatusFromError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{name: "validation", err: service.ErrValidation, want: http.StatusBadRequest},
		{name: "not found", err: service.ErrNotFound, want: http.StatusNotFound},
		{name: "conflict", err: service.ErrConflict, want: http.StatusConflict},
		{name: "wrong password", err: service.ErrWrongPassword, want: http.StatusUnauthorized},
		{name: "expired token", err: service.ErrTokenIsExpiredOrInvalid, want: http.StatusUnauthorized},
		{name: "client credentials", err: service.ErrInvalidClientCredentials, want: http.StatusUnauthorized},
		{name: "email exists", err: store.ErrEmailAlreadyExists, want: http.StatusConflict},
		{name: "no user", err: store.ErrNoUserWasFound, want: http.StatusNotFound},
		{name: "query failure", err: store.ErrExecutingQuery, want: http.StatusInternalServerError},
		{name: "unknown error", err: errors.New("something else"), want: http.StatusInternalServerError},
		{
			name: "wrapped class sentinel",
			err:  fmt.Errorf("%w: %w", service.ErrConflict, service.ErrPermanentContext),
			want: http.StatusConflict,
		},
		{
			name: "deeply wrapped",
			err:  fmt.Errorf("bulk save: %w", fmt.Errorf("%w: context 5", service.ErrValidation)),
			want: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, statusFromError(tt.err))
		})
	}
}

func TestCodeFromStatus(t *testing.T) {
	assert.Equal(t, "validation_error", codeFromStatus(http.StatusBadRequest))
	assert.Equal(t, "unauthorized", codeFromStatus(http.StatusUnauthorized))
	assert.Equal(t, "forbidden", codeFromStatus(http.StatusForbidden))
	assert.Equal(t, "not_found", codeFromStatus(http.StatusNotFound))
	assert.Equal(t, "conflict", codeFromStatus(http.StatusConflict))
	assert.Equal(t, "internal_error", codeFromStatus(http.StatusInternalServerError))
	assert.Equal(t, "internal_error", codeFromStatus(http.StatusTeapot))
}
