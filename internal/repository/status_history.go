package repository

import (
	"context"

	"github.com/EnriqueHBN/TransactionalApp/internal/model"
	"gorm.io/gorm"
)

type StatusHistoryRepository interface {
	Create(ctx context.Context, entry *model.StatusHistory) error
	GetByTransactionID(ctx context.Context, transactionID int64) ([]model.StatusHistory, error)
	DeleteByTransactionID(ctx context.Context, transactionID int64) error
	NextID(ctx context.Context) (int64, error)
}

type StatusHistory struct {
	db *gorm.DB
}

func NewStatusHistoryRepository(db *gorm.DB) StatusHistoryRepository {
	return &StatusHistory{db: db}
}

func (h *StatusHistory) Create(ctx context.Context, entry *model.StatusHistory) error {
	db := GetTx(ctx, h.db)
	return db.Create(entry).Error
}

// GetByTransactionID returns entries oldest first. The id tiebreak keeps
// entries written within the same timestamp in append order.
func (h *StatusHistory) GetByTransactionID(ctx context.Context, transactionID int64) ([]model.StatusHistory, error) {
	db := GetTx(ctx, h.db)

	var entries []model.StatusHistory
	err := db.Where("transaction_id = ?", transactionID).
		Order("changed_at ASC, id ASC").
		Find(&entries).Error
	if err != nil {
		return nil, err
	}

	return entries, nil
}

func (h *StatusHistory) DeleteByTransactionID(ctx context.Context, transactionID int64) error {
	db := GetTx(ctx, h.db)
	return db.Where("transaction_id = ?", transactionID).Delete(&model.StatusHistory{}).Error
}

// NextID recomputes max(id)+1 over the live table so a freed id is handed
// out again after a delete. Callers run it inside the ambient transaction.
func (h *StatusHistory) NextID(ctx context.Context) (int64, error) {
	db := GetTx(ctx, h.db)

	var next int64
	err := db.Model(&model.StatusHistory{}).
		Select("COALESCE(MAX(id), 0) + 1").
		Scan(&next).Error
	if err != nil {
		return 0, err
	}

	return next, nil
}
