package database

import (
	"github.com/EnriqueHBN/TransactionalApp/internal/config"
	"github.com/EnriqueHBN/TransactionalApp/internal/model"
	"github.com/EnriqueHBN/TransactionalApp/pkg/mysql"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func NewConnection(cfg *config.Config, logger *zap.Logger) (*gorm.DB, error) {
	db, err := mysql.NewConnection(cfg.Database, logger)
	if err != nil {
		return nil, err
	}

	if err := migrate(db); err != nil {
		logger.Error("Failed to migrate schema", zap.Error(err))
		return nil, err
	}

	if err := seedStatuses(db, logger); err != nil {
		logger.Error("Failed to seed status catalog", zap.Error(err))
		return nil, err
	}

	return db, nil
}

func migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&model.User{},
		&model.Status{},
		&model.Transaction{},
		&model.StatusHistory{},
	)
}

// seedStatuses writes the fixed catalog once. A non-empty table is left
// untouched, whatever it contains.
func seedStatuses(db *gorm.DB, logger *zap.Logger) error {
	var count int64
	if err := db.Model(&model.Status{}).Count(&count).Error; err != nil {
		return err
	}

	if count > 0 {
		return nil
	}

	statuses := model.DefaultStatuses()
	if err := db.Create(&statuses).Error; err != nil {
		return err
	}

	logger.Info("Status catalog seeded", zap.Int("count", len(statuses)))

	return nil
}
