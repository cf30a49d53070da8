// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The TrueNamePath Authors

package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/truenamepath/truenamepath/internal/logger"
	"github.com/truenamepath/truenamepath/internal/mock"
	"github.com/truenamepath/truenamepath/models"
)

type nameSvcMocks struct {
	names       *mock.MockNameRepository
	assignments *mock.MockAssignmentRepository
}

func newTestNameSvc(ctrl *gomock.Controller) (NameService, nameSvcMocks) {
	m := nameSvcMocks{
		names:       mock.NewMockNameRepository(ctrl),
		assignments: mock.NewMockAssignmentRepository(ctrl),
	}
	svc := NewNameService(m.names, m.assignments, logger.Nop())
	return svc, m
}

func TestNameService_CreateName(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, m := newTestNameSvc(ctrl)

	ctx := context.Background()
	m.names.EXPECT().
		CreateName(ctx, models.Name{UserID: 1, Text: "Wei", Category: models.CategoryNickname, Source: "user"}).
		Return(models.Name{NameID: 5, Text: "Wei"}, nil)

	created, err := svc.CreateName(ctx, 1, models.CreateNameRequest{Text: "Wei", Category: models.CategoryNickname})
	require.NoError(t, err)
	assert.Equal(t, int64(5), created.NameID)
}

func TestNameService_CreateName_PreferredClearsOldHolder(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, m := newTestNameSvc(ctrl)

	ctx := context.Background()
	gomock.InOrder(
		m.names.EXPECT().ClearPreferred(ctx, int64(1)).Return(nil),
		m.names.EXPECT().CreateName(ctx, gomock.Any()).Return(models.Name{NameID: 5, IsPreferred: true}, nil),
	)

	created, err := svc.CreateName(ctx, 1, models.CreateNameRequest{Text: "Wei", Category: models.CategoryNickname, IsPreferred: true})
	require.NoError(t, err)
	assert.True(t, created.IsPreferred)
}

func TestNameService_CreateName_InvalidCategory(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, _ := newTestNameSvc(ctrl)

	_, err := svc.CreateName(context.Background(), 1, models.CreateNameRequest{Text: "Wei", Category: "royal"})
	assert.ErrorIs(t, err, ErrValidation)
}

func TestNameService_UpdateName_PreferredHandover(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, m := newTestNameSvc(ctrl)

	ctx := context.Background()
	preferred := true
	req := models.UpdateNameRequest{IsPreferred: &preferred}

	gomock.InOrder(
		m.names.EXPECT().ClearPreferred(ctx, int64(1)).Return(nil),
		m.names.EXPECT().UpdateName(ctx, int64(1), int64(5), req).Return(models.Name{NameID: 5, IsPreferred: true}, nil),
	)

	updated, err := svc.UpdateName(ctx, 1, 5, req)
	require.NoError(t, err)
	assert.True(t, updated.IsPreferred)
}

func TestNameService_DeleteName_Guards(t *testing.T) {
	t.Run("last name", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc, m := newTestNameSvc(ctrl)

		ctx := context.Background()
		m.names.EXPECT().CountNames(ctx, int64(1)).Return(int64(1), nil)

		err := svc.DeleteName(ctx, 1, 5)
		assert.ErrorIs(t, err, ErrConflict)
		assert.ErrorIs(t, err, ErrLastName)
	})

	t.Run("referenced by assignment", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc, m := newTestNameSvc(ctrl)

		ctx := context.Background()
		m.names.EXPECT().CountNames(ctx, int64(1)).Return(int64(3), nil)
		m.assignments.EXPECT().CountByName(ctx, int64(1), int64(5)).Return(int64(2), nil)

		err := svc.DeleteName(ctx, 1, 5)
		assert.ErrorIs(t, err, ErrConflict)
		assert.ErrorIs(t, err, ErrNameInUse)
	})

	t.Run("deletes when unguarded", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc, m := newTestNameSvc(ctrl)

		ctx := context.Background()
		m.names.EXPECT().CountNames(ctx, int64(1)).Return(int64(3), nil)
		m.assignments.EXPECT().CountByName(ctx, int64(1), int64(5)).Return(int64(0), nil)
		m.names.EXPECT().DeleteName(ctx, int64(1), int64(5)).Return(nil)

		require.NoError(t, svc.DeleteName(ctx, 1, 5))
	})
}
