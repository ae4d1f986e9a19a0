package repository

import (
	"context"

	"github.com/EnriqueHBN/TransactionalApp/internal/model"
	"gorm.io/gorm"
)

type StatusRepository interface {
	GetAll(ctx context.Context) ([]model.Status, error)
	Exists(ctx context.Context, id int64) (bool, error)
	Count(ctx context.Context) (int64, error)
	CreateBatch(ctx context.Context, statuses []model.Status) error
}

type Status struct {
	db *gorm.DB
}

func NewStatusRepository(db *gorm.DB) StatusRepository {
	return &Status{db: db}
}

func (s *Status) GetAll(ctx context.Context) ([]model.Status, error) {
	db := GetTx(ctx, s.db)

	var statuses []model.Status
	if err := db.Order("id ASC").Find(&statuses).Error; err != nil {
		return nil, err
	}

	return statuses, nil
}

func (s *Status) Exists(ctx context.Context, id int64) (bool, error) {
	db := GetTx(ctx, s.db)

	var count int64
	err := db.Model(&model.Status{}).
		Where("id = ?", id).
		Count(&count).Error
	if err != nil {
		return false, err
	}

	return count > 0, nil
}

func (s *Status) Count(ctx context.Context) (int64, error) {
	db := GetTx(ctx, s.db)

	var count int64
	if err := db.Model(&model.Status{}).Count(&count).Error; err != nil {
		return 0, err
	}

	return count, nil
}

func (s *Status) CreateBatch(ctx context.Context, statuses []model.Status) error {
	db := GetTx(ctx, s.db)
	return db.Create(&statuses).Error
}
