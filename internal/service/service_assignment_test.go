// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The TrueNamePath Authors

package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/truenamepath/truenamepath/internal/logger"
	"github.com/truenamepath/truenamepath/internal/mock"
	"github.com/truenamepath/truenamepath/internal/store"
	"github.com/truenamepath/truenamepath/models"
)

type assignmentSvcMocks struct {
	assignments *mock.MockAssignmentRepository
	contexts    *mock.MockContextRepository
	names       *mock.MockNameRepository
}

func newTestAssignmentSvc(ctrl *gomock.Controller) (AssignmentService, assignmentSvcMocks) {
	m := assignmentSvcMocks{
		assignments: mock.NewMockAssignmentRepository(ctrl),
		contexts:    mock.NewMockContextRepository(ctrl),
		names:       mock.NewMockNameRepository(ctrl),
	}
	svc := NewAssignmentService(m.assignments, m.contexts, m.names, logger.Nop())
	return svc, m
}

func TestAssignmentService_UpsertAssignment(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, m := newTestAssignmentSvc(ctrl)

	ctx := context.Background()
	req := models.UpsertAssignmentRequest{ContextID: 3, NameID: 7, OIDCProperty: models.OIDCNickname}

	m.contexts.EXPECT().FindContextByID(ctx, int64(1), int64(3)).Return(models.Context{ContextID: 3}, nil)
	m.names.EXPECT().FindNameByID(ctx, int64(1), int64(7)).Return(models.Name{NameID: 7}, nil)
	m.assignments.EXPECT().
		UpsertAssignment(ctx, int64(1), int64(3), int64(7), models.OIDCNickname).
		Return(models.Assignment{AssignmentID: 11, ContextID: 3, NameID: 7, OIDCProperty: models.OIDCNickname}, nil)

	saved, err := svc.UpsertAssignment(ctx, 1, req)
	require.NoError(t, err)
	assert.Equal(t, int64(11), saved.AssignmentID)
}

func TestAssignmentService_UpsertAssignment_ContextNotOwned(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, m := newTestAssignmentSvc(ctrl)

	ctx := context.Background()
	m.contexts.EXPECT().FindContextByID(ctx, int64(1), int64(3)).Return(models.Context{}, store.ErrContextNotFound)

	_, err := svc.UpsertAssignment(ctx, 1, models.UpsertAssignmentRequest{ContextID: 3, NameID: 7})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestAssignmentService_DeleteAssignment_Absent(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, m := newTestAssignmentSvc(ctrl)

	ctx := context.Background()
	m.assignments.EXPECT().
		DeleteAssignment(ctx, int64(1), int64(3), models.OIDCProperty("")).
		Return(store.ErrAssignmentNotFound)

	err := svc.DeleteAssignment(ctx, 1, models.DeleteAssignmentRequest{ContextID: 3})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestAssignmentService_BulkSave_Applies(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, m := newTestAssignmentSvc(ctrl)

	ctx := context.Background()
	changes := []models.AssignmentChange{
		{ContextID: 1, NameID: int64Ptr(10)},                                    // create
		{ContextID: 2, NameID: int64Ptr(20)},                                    // update (bound to 21)
		{ContextID: 3, NameID: nil},                                             // delete (bound)
		{ContextID: 4, NameID: int64Ptr(10), OIDCProperty: models.OIDCName}, // unchanged
	}

	m.contexts.EXPECT().
		FindContextsByIDs(ctx, int64(1), []int64{1, 2, 3, 4}).
		Return([]models.Context{{ContextID: 1}, {ContextID: 2}, {ContextID: 3}, {ContextID: 4}}, nil)
	m.names.EXPECT().
		FindNamesByIDs(ctx, int64(1), []int64{10, 20}).
		Return([]models.Name{{NameID: 10}, {NameID: 20}}, nil)
	m.assignments.EXPECT().ListAssignments(ctx, int64(1)).Return([]models.Assignment{
		{ContextID: 2, NameID: 21},
		{ContextID: 3, NameID: 30},
		{ContextID: 4, NameID: 10, OIDCProperty: models.OIDCName},
	}, nil)

	m.assignments.EXPECT().
		UpsertAssignment(ctx, int64(1), int64(1), int64(10), models.OIDCProperty("")).
		Return(models.Assignment{}, nil)
	m.assignments.EXPECT().
		UpsertAssignment(ctx, int64(1), int64(2), int64(20), models.OIDCProperty("")).
		Return(models.Assignment{}, nil)
	m.assignments.EXPECT().
		DeleteAssignment(ctx, int64(1), int64(3), models.OIDCProperty("")).
		Return(nil)

	resp, err := svc.BulkSave(ctx, 1, changes)
	require.NoError(t, err)
	assert.Equal(t, models.BulkAssignmentResponse{Created: 1, Updated: 1, Deleted: 1, Unchanged: 1}, resp)
}

func TestAssignmentService_BulkSave_ForeignReferenceAbortsBeforeWrites(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, m := newTestAssignmentSvc(ctrl)

	ctx := context.Background()
	changes := []models.AssignmentChange{
		{ContextID: 1, NameID: int64Ptr(10)},
		{ContextID: 99, NameID: int64Ptr(10)}, // someone else's context
	}

	// only one of the two contexts comes back: the batch dies here,
	// no ListAssignments, no writes
	m.contexts.EXPECT().
		FindContextsByIDs(ctx, int64(1), []int64{1, 99}).
		Return([]models.Context{{ContextID: 1}}, nil)

	_, err := svc.BulkSave(ctx, 1, changes)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrValidation)
	assert.ErrorIs(t, err, ErrForeignReference)
}

func TestAssignmentService_BulkSave_PartialWriteFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, m := newTestAssignmentSvc(ctrl)

	ctx := context.Background()
	changes := []models.AssignmentChange{
		{ContextID: 1, NameID: int64Ptr(10)},
		{ContextID: 2, NameID: int64Ptr(10)},
	}

	m.contexts.EXPECT().
		FindContextsByIDs(ctx, int64(1), []int64{1, 2}).
		Return([]models.Context{{ContextID: 1}, {ContextID: 2}}, nil)
	m.names.EXPECT().
		FindNamesByIDs(ctx, int64(1), []int64{10}).
		Return([]models.Name{{NameID: 10}}, nil)
	m.assignments.EXPECT().ListAssignments(ctx, int64(1)).Return(nil, nil)

	m.assignments.EXPECT().
		UpsertAssignment(ctx, int64(1), int64(1), int64(10), models.OIDCProperty("")).
		Return(models.Assignment{}, errors.New("deadlock detected"))
	m.assignments.EXPECT().
		UpsertAssignment(ctx, int64(1), int64(2), int64(10), models.OIDCProperty("")).
		Return(models.Assignment{}, nil)

	resp, err := svc.BulkSave(ctx, 1, changes)
	require.NoError(t, err)
	assert.Equal(t, 1, resp.Created)
	assert.Equal(t, 1, resp.Failed)
}

func TestAssignmentService_BulkSave_IdempotentResubmission(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, m := newTestAssignmentSvc(ctrl)

	ctx := context.Background()
	changes := []models.AssignmentChange{
		{ContextID: 1, NameID: int64Ptr(10)},
		{ContextID: 2, NameID: int64Ptr(20), OIDCProperty: models.OIDCGivenName},
	}

	m.contexts.EXPECT().
		FindContextsByIDs(ctx, int64(1), []int64{1, 2}).
		Return([]models.Context{{ContextID: 1}, {ContextID: 2}}, nil)
	m.names.EXPECT().
		FindNamesByIDs(ctx, int64(1), []int64{10, 20}).
		Return([]models.Name{{NameID: 10}, {NameID: 20}}, nil)
	m.assignments.EXPECT().ListAssignments(ctx, int64(1)).Return([]models.Assignment{
		{ContextID: 1, NameID: 10},
		{ContextID: 2, NameID: 20, OIDCProperty: models.OIDCGivenName},
	}, nil)

	resp, err := svc.BulkSave(ctx, 1, changes)
	require.NoError(t, err)
	assert.Equal(t, models.BulkAssignmentResponse{Unchanged: 2}, resp)
}

func TestAssignmentService_BulkSave_EmptyBatchRejected(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, _ := newTestAssignmentSvc(ctrl)

	_, err := svc.BulkSave(context.Background(), 1, nil)
	assert.ErrorIs(t, err, ErrValidation)
}
