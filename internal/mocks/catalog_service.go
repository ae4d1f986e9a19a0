package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
)

type CatalogService struct {
	mock.Mock
}

func (m *CatalogService) StatusName(ctx context.Context, id int64) string {
	args := m.Called(ctx, id)
	return args.String(0)
}

func (m *CatalogService) StatusNames(ctx context.Context) (map[int64]string, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[int64]string), args.Error(1)
}

func (m *CatalogService) Exists(ctx context.Context, id int64) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}
