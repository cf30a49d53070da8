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
	"github.com/truenamepath/truenamepath/internal/store"
	"github.com/truenamepath/truenamepath/models"
)

func TestListAssignments_NoFilter(t *testing.T) {
	h, m := newTestHandler(t)
	m.assignments.EXPECT().
		ListAssignments(gomock.Any(), int64(42), store.AssignmentFilter{}).
		Return([]models.Assignment{{AssignmentID: 1, ContextID: 5, NameID: 10}}, nil)

	req := withUser(httptest.NewRequest(http.MethodGet, "/api/assignments", nil), 42)
	rec := httptest.NewRecorder()

	h.listAssignments(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
}

func TestListAssignments_ContextIDFilter(t *testing.T) {
	h, m := newTestHandler(t)
	m.assignments.EXPECT().
		ListAssignments(gomock.Any(), int64(42), store.AssignmentFilter{ContextID: 5}).
		Return(nil, nil)

	req := withUser(httptest.NewRequest(http.MethodGet, "/api/assignments?context_id=5", nil), 42)
	rec := httptest.NewRecorder()

	h.listAssignments(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}

// An explicitly empty oidc_property selects the context-wide slot, which is
// different from not filtering on the property at all.
func TestListAssignments_EmptyPropertyFilter(t *testing.T) {
	h, m := newTestHandler(t)
	m.assignments.EXPECT().
		ListAssignments(gomock.Any(), int64(42), store.AssignmentFilter{HasProperty: true, OIDCProperty: ""}).
		Return(nil, nil)

	req := withUser(httptest.NewRequest(http.MethodGet, "/api/assignments?oidc_property=", nil), 42)
	rec := httptest.NewRecorder()

	h.listAssignments(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestListAssignments_PropertyFilter(t *testing.T) {
	h, m := newTestHandler(t)
	m.assignments.EXPECT().
		ListAssignments(gomock.Any(), int64(42), store.AssignmentFilter{
			ContextID:    5,
			HasProperty:  true,
			OIDCProperty: models.OIDCNickname,
		}).
		Return(nil, nil)

	req := withUser(httptest.NewRequest(http.MethodGet, "/api/assignments?context_id=5&oidc_property=nickname", nil), 42)
	rec := httptest.NewRecorder()

	h.listAssignments(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestListAssignments_InvalidContextID(t *testing.T) {
	h, _ := newTestHandler(t)

	req := withUser(httptest.NewRequest(http.MethodGet, "/api/assignments?context_id=banana", nil), 42)
	rec := httptest.NewRecorder()

	h.listAssignments(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestListOIDCAssignments_FiltersContextWideSlots(t *testing.T) {
	h, m := newTestHandler(t)
	m.assignments.EXPECT().
		ListAssignments(gomock.Any(), int64(42), store.AssignmentFilter{}).
		Return([]models.Assignment{
			{AssignmentID: 1, ContextID: 5, NameID: 10},
			{AssignmentID: 2, ContextID: 5, NameID: 11, OIDCProperty: models.OIDCNickname},
			{AssignmentID: 3, ContextID: 6, NameID: 12, OIDCProperty: models.OIDCGivenName},
		}, nil)

	req := withUser(httptest.NewRequest(http.MethodGet, "/api/assignments/oidc", nil), 42)
	rec := httptest.NewRecorder()

	h.listOIDCAssignments(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	env := decodeEnvelope(t, rec)
	data, ok := env.Data.([]any)
	require.True(t, ok)
	assert.Len(t, data, 2)
}

func TestUpsertAssignment_Success(t *testing.T) {
	h, m := newTestHandler(t)
	m.assignments.EXPECT().
		UpsertAssignment(gomock.Any(), int64(42), models.UpsertAssignmentRequest{
			ContextID:    5,
			NameID:       10,
			OIDCProperty: models.OIDCNickname,
		}).
		Return(models.Assignment{AssignmentID: 1, ContextID: 5, NameID: 10, OIDCProperty: models.OIDCNickname}, nil)

	body := `{"context_id": 5, "name_id": 10, "oidc_property": "nickname"}`
	req := withUser(httptest.NewRequest(http.MethodPost, "/api/assignments", strings.NewReader(body)), 42)
	rec := httptest.NewRecorder()

	h.upsertAssignment(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestUpsertAssignment_ForeignContext(t *testing.T) {
	h, m := newTestHandler(t)
	m.assignments.EXPECT().
		UpsertAssignment(gomock.Any(), int64(42), gomock.Any()).
		Return(models.Assignment{}, service.ErrNotFound)

	body := `{"context_id": 999, "name_id": 10}`
	req := withUser(httptest.NewRequest(http.MethodPost, "/api/assignments", strings.NewReader(body)), 42)
	rec := httptest.NewRecorder()

	h.upsertAssignment(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestDeleteAssignment_Success(t *testing.T) {
	h, m := newTestHandler(t)
	m.assignments.EXPECT().
		DeleteAssignment(gomock.Any(), int64(42), models.DeleteAssignmentRequest{ContextID: 5}).
		Return(nil)

	req := withUser(httptest.NewRequest(http.MethodDelete, "/api/assignments", strings.NewReader(`{"context_id": 5}`)), 42)
	rec := httptest.NewRecorder()

	h.deleteAssignment(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestBulkSaveAssignments_Success(t *testing.T) {
	h, m := newTestHandler(t)

	nameID := int64(10)
	m.assignments.EXPECT().
		BulkSave(gomock.Any(), int64(42), []models.AssignmentChange{
			{ContextID: 5, NameID: &nameID},
			{ContextID: 6, NameID: nil},
		}).
		Return(models.BulkAssignmentResponse{Created: 1, Deleted: 1}, nil)

	body := `{"changes": [{"context_id": 5, "name_id": 10}, {"context_id": 6, "name_id": null}]}`
	req := withUser(httptest.NewRequest(http.MethodPost, "/api/assignments/bulk", strings.NewReader(body)), 42)
	rec := httptest.NewRecorder()

	h.bulkSaveAssignments(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	env := decodeEnvelope(t, rec)
	require.True(t, env.Success)

	data, ok := env.Data.(map[string]any)
	require.True(t, ok)
	assert.EqualValues(t, 1, data["created"])
	assert.EqualValues(t, 1, data["deleted"])
	assert.EqualValues(t, 0, data["updated"])
}

func TestBulkSaveAssignments_ValidationAbort(t *testing.T) {
	h, m := newTestHandler(t)
	m.assignments.EXPECT().
		BulkSave(gomock.Any(), int64(42), gomock.Any()).
		Return(models.BulkAssignmentResponse{}, service.ErrValidation)

	body := `{"changes": [{"context_id": 999, "name_id": 10}]}`
	req := withUser(httptest.NewRequest(http.MethodPost, "/api/assignments/bulk", strings.NewReader(body)), 42)
	rec := httptest.NewRecorder()

	h.bulkSaveAssignments(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestBulkSaveAssignments_InvalidJSON(t *testing.T) {
	h, _ := newTestHandler(t)

	req := withUser(httptest.NewRequest(http.MethodPost, "/api/assignments/bulk", strings.NewReader("{bad")), 42)
	rec := httptest.NewRecorder()

	h.bulkSaveAssignments(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
