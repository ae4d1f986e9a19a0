package repository

import (
	"context"
	"errors"

	"github.com/EnriqueHBN/TransactionalApp/internal/model"
	"gorm.io/gorm"
)

var ErrTransactionNotFound = errors.New("TRANSACTION_NOT_FOUND")

type TransactionRepository interface {
	Create(ctx context.Context, tx *model.Transaction) error
	GetByID(ctx context.Context, id int64) (*model.Transaction, error)
	GetByUserID(ctx context.Context, userID int64) ([]model.Transaction, error)
	Update(ctx context.Context, tx *model.Transaction) error
	Delete(ctx context.Context, id int64) error
	NextID(ctx context.Context) (int64, error)
}

type Transaction struct {
	db *gorm.DB
}

func NewTransactionRepository(db *gorm.DB) TransactionRepository {
	return &Transaction{db: db}
}

func (t *Transaction) Create(ctx context.Context, tx *model.Transaction) error {
	db := GetTx(ctx, t.db)
	return db.Create(tx).Error
}

func (t *Transaction) GetByID(ctx context.Context, id int64) (*model.Transaction, error) {
	db := GetTx(ctx, t.db)

	var tx model.Transaction
	err := db.Where("id = ?", id).First(&tx).Error
	if err == nil {
		return &tx, nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrTransactionNotFound
	}

	return nil, err
}

// GetByUserID returns the user's transactions in insertion order.
func (t *Transaction) GetByUserID(ctx context.Context, userID int64) ([]model.Transaction, error) {
	db := GetTx(ctx, t.db)

	var txs []model.Transaction
	err := db.Where("user_id = ?", userID).
		Order("created_at ASC, id ASC").
		Find(&txs).Error
	if err != nil {
		return nil, err
	}

	return txs, nil
}

func (t *Transaction) Update(ctx context.Context, tx *model.Transaction) error {
	db := GetTx(ctx, t.db)
	return db.Model(&model.Transaction{}).
		Where("id = ?", tx.ID).
		Updates(map[string]interface{}{
			"amount":            tx.Amount,
			"description":       tx.Description,
			"current_status_id": tx.CurrentStatusID,
		}).Error
}

func (t *Transaction) Delete(ctx context.Context, id int64) error {
	db := GetTx(ctx, t.db)
	return db.Where("id = ?", id).Delete(&model.Transaction{}).Error
}

// NextID recomputes max(id)+1 over the live table so a freed id is handed
// out again after a delete. Callers run it inside the ambient transaction.
func (t *Transaction) NextID(ctx context.Context) (int64, error) {
	db := GetTx(ctx, t.db)

	var next int64
	err := db.Model(&model.Transaction{}).
		Select("COALESCE(MAX(id), 0) + 1").
		Scan(&next).Error
	if err != nil {
		return 0, err
	}

	return next, nil
}
