package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/EnriqueHBN/TransactionalApp/internal/mocks"
	"github.com/EnriqueHBN/TransactionalApp/internal/model"
	"github.com/EnriqueHBN/TransactionalApp/internal/service"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestCatalog_StatusName(t *testing.T) {
	logger := zap.NewNop()

	seeded := []model.Status{
		{ID: 1, StatusName: "en proceso"},
		{ID: 2, StatusName: "pagado"},
		{ID: 3, StatusName: "cancelado"},
	}

	t.Run("resolves seeded status names", func(t *testing.T) {
		mockStatusRepo := &mocks.StatusRepository{}
		svc := service.NewCatalogService(mockStatusRepo, logger)

		mockStatusRepo.On("GetAll", context.Background()).Return(seeded, nil)

		assert.Equal(t, "en proceso", svc.StatusName(context.Background(), 1))
		assert.Equal(t, "pagado", svc.StatusName(context.Background(), 2))
		assert.Equal(t, "cancelado", svc.StatusName(context.Background(), 3))
	})

	t.Run("returns desconocido for an id missing from the catalog", func(t *testing.T) {
		mockStatusRepo := &mocks.StatusRepository{}
		svc := service.NewCatalogService(mockStatusRepo, logger)

		mockStatusRepo.On("GetAll", context.Background()).Return(seeded, nil)

		assert.Equal(t, "desconocido", svc.StatusName(context.Background(), 99))
	})

	t.Run("returns desconocido when the catalog cannot be read", func(t *testing.T) {
		mockStatusRepo := &mocks.StatusRepository{}
		svc := service.NewCatalogService(mockStatusRepo, logger)

		mockStatusRepo.On("GetAll", context.Background()).Return(nil, errors.New("connection lost"))

		assert.Equal(t, "desconocido", svc.StatusName(context.Background(), 1))
	})
}

func TestCatalog_StatusNames(t *testing.T) {
	logger := zap.NewNop()

	t.Run("builds id to name map", func(t *testing.T) {
		mockStatusRepo := &mocks.StatusRepository{}
		svc := service.NewCatalogService(mockStatusRepo, logger)

		mockStatusRepo.On("GetAll", context.Background()).Return([]model.Status{
			{ID: 1, StatusName: "en proceso"},
			{ID: 2, StatusName: "pagado"},
		}, nil)

		names, err := svc.StatusNames(context.Background())

		assert.NoError(t, err)
		assert.Equal(t, map[int64]string{1: "en proceso", 2: "pagado"}, names)
	})
}
