package service

import (
	"context"

	"github.com/EnriqueHBN/TransactionalApp/internal/model"
	"github.com/EnriqueHBN/TransactionalApp/internal/repository"
	"go.uber.org/zap"
)

type CatalogService interface {
	// StatusName never fails: ids missing from the catalog resolve to the
	// "desconocido" sentinel.
	StatusName(ctx context.Context, id int64) string
	StatusNames(ctx context.Context) (map[int64]string, error)
	Exists(ctx context.Context, id int64) (bool, error)
}

type catalog struct {
	statusRepo repository.StatusRepository
	logger     *zap.Logger
}

func NewCatalogService(statusRepo repository.StatusRepository, logger *zap.Logger) CatalogService {
	return &catalog{statusRepo: statusRepo, logger: logger}
}

func (c *catalog) StatusName(ctx context.Context, id int64) string {
	names, err := c.StatusNames(ctx)
	if err != nil {
		c.logger.Warn("Failed to load status catalog", zap.Error(err))
		return model.StatusNameUnknown
	}

	if name, ok := names[id]; ok {
		return name
	}

	return model.StatusNameUnknown
}

func (c *catalog) StatusNames(ctx context.Context) (map[int64]string, error) {
	statuses, err := c.statusRepo.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	names := make(map[int64]string, len(statuses))
	for _, s := range statuses {
		names[s.ID] = s.StatusName
	}

	return names, nil
}

func (c *catalog) Exists(ctx context.Context, id int64) (bool, error) {
	return c.statusRepo.Exists(ctx, id)
}
