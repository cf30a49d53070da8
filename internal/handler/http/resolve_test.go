// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The TrueNamePath Authors

package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/truenamepath/truenamepath/internal/service"
	"github.com/truenamepath/truenamepath/models"
)

func TestResolveSelf_Success(t *testing.T) {
	h, m := newTestHandler(t)

	m.resolver.EXPECT().
		Resolve(gomock.Any(), int64(42), models.ResolveRequest{ContextName: "Work"}).
		Return(models.ResolveResponse{Name: "W. Li", Source: models.SourceContextSpecific}, nil)

	var recorded models.AuditEvent
	m.audit.EXPECT().
		Record(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, event models.AuditEvent) error {
			recorded = event
			return nil
		})

	req := withUser(httptest.NewRequest(http.MethodGet, "/api/resolve?context=Work", nil), 42)
	rec := httptest.NewRecorder()

	h.resolveSelf(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	env := decodeEnvelope(t, rec)
	require.True(t, env.Success)

	data, ok := env.Data.(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "W. Li", data["name"])
	assert.Equal(t, string(models.SourceContextSpecific), data["source"])

	// preview disclosures are audited as requester "self"
	assert.EqualValues(t, 42, recorded.UserID)
	assert.Equal(t, "self", recorded.Requester)
	assert.Equal(t, "Work", recorded.ContextName)
	assert.Equal(t, "W. Li", recorded.DisclosedName)
}

func TestResolveSelf_AuditFailureDoesNotBlock(t *testing.T) {
	h, m := newTestHandler(t)

	m.resolver.EXPECT().
		Resolve(gomock.Any(), int64(42), gomock.Any()).
		Return(models.ResolveResponse{Name: "Wei", Source: models.SourcePreferredFallback}, nil)
	m.audit.EXPECT().
		Record(gomock.Any(), gomock.Any()).
		Return(assert.AnError)

	req := withUser(httptest.NewRequest(http.MethodGet, "/api/resolve", nil), 42)
	rec := httptest.NewRecorder()

	h.resolveSelf(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestResolveSelf_UnknownUser(t *testing.T) {
	h, m := newTestHandler(t)

	m.resolver.EXPECT().
		Resolve(gomock.Any(), int64(42), gomock.Any()).
		Return(models.ResolveResponse{}, service.ErrNotFound)

	req := withUser(httptest.NewRequest(http.MethodGet, "/api/resolve", nil), 42)
	rec := httptest.NewRecorder()

	h.resolveSelf(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestResolveBatch_Success(t *testing.T) {
	h, m := newTestHandler(t)

	m.resolver.EXPECT().
		ResolveBatch(gomock.Any(), int64(42), []string{"Work", "Gaming"}, models.OIDCProperty("")).
		Return(models.BatchResolveResponse{
			Results: map[string]models.ResolveResponse{
				"Work":   {Name: "W. Li", Source: models.SourceContextSpecific},
				"Gaming": {Name: "Wei", Source: models.SourcePreferredFallback},
			},
		}, nil)

	body := `{"contexts": ["Work", "Gaming"]}`
	req := withUser(httptest.NewRequest(http.MethodPost, "/api/resolve/batch", strings.NewReader(body)), 42)
	rec := httptest.NewRecorder()

	h.resolveBatch(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	env := decodeEnvelope(t, rec)
	data, ok := env.Data.(map[string]any)
	require.True(t, ok)

	results, ok := data["results"].(map[string]any)
	require.True(t, ok)
	assert.Len(t, results, 2)
}

func TestResolveBatch_EmptyContexts(t *testing.T) {
	h, _ := newTestHandler(t)

	req := withUser(httptest.NewRequest(http.MethodPost, "/api/resolve/batch", strings.NewReader(`{"contexts": []}`)), 42)
	rec := httptest.NewRecorder()

	h.resolveBatch(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "no context names provided")
}
