package mocks

import (
	"context"

	"github.com/EnriqueHBN/TransactionalApp/internal/model"
	"github.com/stretchr/testify/mock"
)

type StatusHistoryRepository struct {
	mock.Mock
}

func (m *StatusHistoryRepository) Create(ctx context.Context, entry *model.StatusHistory) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

func (m *StatusHistoryRepository) GetByTransactionID(ctx context.Context, transactionID int64) ([]model.StatusHistory, error) {
	args := m.Called(ctx, transactionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.StatusHistory), args.Error(1)
}

func (m *StatusHistoryRepository) DeleteByTransactionID(ctx context.Context, transactionID int64) error {
	args := m.Called(ctx, transactionID)
	return args.Error(0)
}

func (m *StatusHistoryRepository) NextID(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}
