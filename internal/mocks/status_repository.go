package mocks

import (
	"context"

	"github.com/EnriqueHBN/TransactionalApp/internal/model"
	"github.com/stretchr/testify/mock"
)

type StatusRepository struct {
	mock.Mock
}

func (m *StatusRepository) GetAll(ctx context.Context) ([]model.Status, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Status), args.Error(1)
}

func (m *StatusRepository) Exists(ctx context.Context, id int64) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *StatusRepository) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *StatusRepository) CreateBatch(ctx context.Context, statuses []model.Status) error {
	args := m.Called(ctx, statuses)
	return args.Error(0)
}
