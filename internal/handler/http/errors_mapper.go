// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The TrueNamePath Authors

package http

import (
	"errors"
	"net/http"

	"github.com/truenamepath/truenamepath/internal/service"
	"github.com/truenamepath/truenamepath/internal/store"
)

var errorStatusMap = map[error]int{
	service.ErrValidation:               http.StatusBadRequest,
	service.ErrInvalidDataProvided:      http.StatusBadRequest,
	service.ErrVersionIsNotSpecified:    http.StatusBadRequest,
	service.ErrNotFound:                 http.StatusNotFound,
	service.ErrConflict:                 http.StatusConflict,
	service.ErrWrongPassword:            http.StatusUnauthorized,
	service.ErrTokenIsExpiredOrInvalid:  http.StatusUnauthorized,
	service.ErrInvalidClientCredentials: http.StatusUnauthorized,

	store.ErrEmailAlreadyExists: http.StatusConflict,
	store.ErrNoUserWasFound:     http.StatusNotFound,

	store.ErrExecutingQuery: http.StatusInternalServerError,
	store.ErrScanningRow:    http.StatusInternalServerError,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// codeFromStatus maps an HTTP status to the machine-readable error code
// carried in the response envelope.
func codeFromStatus(status int) string {
	switch status {
	case http.StatusBadRequest:
		return "validation_error"
	case http.StatusUnauthorized:
		return "unauthorized"
	case http.StatusForbidden:
		return "forbidden"
	case http.StatusNotFound:
		return "not_found"
	case http.StatusConflict:
		return "conflict"
	default:
		return "internal_error"
	}
}
