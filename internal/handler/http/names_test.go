package http

import (
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

func TestCreateName_Success(t *testing.T) {
	h, m := newTestHandler(t)
	m.names.EXPECT().
		CreateName(gomock.Any(), int64(42), models.CreateNameRequest{
			Text:     "Dr. Li",
			Category: models.CategoryProfessional,
		}).
		Return(models.Name{NameID: 7, UserID: 42, Text: "Dr. Li", Category: models.CategoryProfessional}, nil)

	body := `{"text": "Dr. Li", "category": "professional"}`
	req := withUser(httptest.NewRequest(http.MethodPost, "/api/names", strings.NewReader(body)), 42)
	rec := httptest.NewRecorder()

	h.createName(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)

	env := decodeEnvelope(t, rec)
	require.True(t, env.Success)

	data, ok := env.Data.(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "Dr. Li", data["text"])
}

func TestCreateName_NoUserInContext(t *testing.T) {
	h, _ := newTestHandler(t)

	req := httptest.NewRequest(http.MethodPost, "/api/names", strings.NewReader(`{"text": "x"}`))
	rec := httptest.NewRecorder()

	h.createName(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestCreateName_InvalidJSON(t *testing.T) {
	h, _ := newTestHandler(t)

	req := withUser(httptest.NewRequest(http.MethodPost, "/api/names", strings.NewReader("{bad")), 42)
	rec := httptest.NewRecorder()

	h.createName(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestListNames_Success(t *testing.T) {
	h, m := newTestHandler(t)
	m.names.EXPECT().
		ListNames(gomock.Any(), int64(42)).
		Return([]models.Name{{NameID: 1, Text: "Li Wei"}, {NameID: 2, Text: "Wei"}}, nil)

	req := withUser(httptest.NewRequest(http.MethodGet, "/api/names", nil), 42)
	rec := httptest.NewRecorder()

	h.listNames(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	env := decodeEnvelope(t, rec)
	data, ok := env.Data.([]any)
	require.True(t, ok)
	assert.Len(t, data, 2)
}

func TestGetName_NotFound(t *testing.T) {
	h, m := newTestHandler(t)
	m.names.EXPECT().
		GetName(gomock.Any(), int64(42), int64(99)).
		Return(models.Name{}, service.ErrNotFound)

	req := withUser(httptest.NewRequest(http.MethodGet, "/api/names/99", nil), 42)
	req = withURLParam(req, "id", "99")
	rec := httptest.NewRecorder()

	h.getName(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestGetName_InvalidPathID(t *testing.T) {
	h, _ := newTestHandler(t)

	req := withUser(httptest.NewRequest(http.MethodGet, "/api/names/abc", nil), 42)
	req = withURLParam(req, "id", "abc")
	rec := httptest.NewRecorder()

	h.getName(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestUpdateName_Success(t *testing.T) {
	h, m := newTestHandler(t)

	preferred := true
	m.names.EXPECT().
		UpdateName(gomock.Any(), int64(42), int64(7), models.UpdateNameRequest{IsPreferred: &preferred}).
		Return(models.Name{NameID: 7, IsPreferred: true}, nil)

	req := withUser(httptest.NewRequest(http.MethodPut, "/api/names/7", strings.NewReader(`{"is_preferred": true}`)), 42)
	req = withURLParam(req, "id", "7")
	rec := httptest.NewRecorder()

	h.updateName(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestDeleteName_LastNameConflict(t *testing.T) {
	h, m := newTestHandler(t)
	m.names.EXPECT().
		DeleteName(gomock.Any(), int64(42), int64(7)).
		Return(service.ErrConflict)

	req := withUser(httptest.NewRequest(http.MethodDelete, "/api/names/7", nil), 42)
	req = withURLParam(req, "id", "7")
	rec := httptest.NewRecorder()

	h.deleteName(rec, req)

	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestDeleteName_Success(t *testing.T) {
	h, m := newTestHandler(t)
	m.names.EXPECT().
		DeleteName(gomock.Any(), int64(42), int64(7)).
		Return(nil)

	req := withUser(httptest.NewRequest(http.MethodDelete, "/api/names/7", nil), 42)
	req = withURLParam(req, "id", "7")
	rec := httptest.NewRecorder()

	h.deleteName(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}
