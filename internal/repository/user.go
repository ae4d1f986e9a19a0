package repository

import (
	"context"
	"errors"

	"github.com/EnriqueHBN/TransactionalApp/internal/model"
	"github.com/go-sql-driver/mysql"
	"gorm.io/gorm"
)

var ErrUserNotFound = errors.New("USER_NOT_FOUND")
var ErrUserDuplicate = errors.New("USER_DUPLICATE")

type UserRepository interface {
	Create(ctx context.Context, user *model.User) error
	ExistsByID(ctx context.Context, id int64) (bool, error)
	ExistsByUsername(ctx context.Context, username string) (bool, error)
	NextID(ctx context.Context) (int64, error)
}

type User struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &User{db: db}
}

func (u *User) Create(ctx context.Context, user *model.User) error {
	db := GetTx(ctx, u.db)
	err := db.Create(user).Error
	if err == nil {
		return nil
	}

	var mysqlErr *mysql.MySQLError
	if errors.As(err, &mysqlErr) && mysqlErr.Number == 1062 {
		return ErrUserDuplicate
	}

	return err
}

func (u *User) ExistsByID(ctx context.Context, id int64) (bool, error) {
	db := GetTx(ctx, u.db)

	var count int64
	err := db.Model(&model.User{}).
		Where("id = ?", id).
		Count(&count).Error
	if err != nil {
		return false, err
	}

	return count > 0, nil
}

func (u *User) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	db := GetTx(ctx, u.db)

	var count int64
	err := db.Model(&model.User{}).
		Where("username = ?", username).
		Count(&count).Error
	if err != nil {
		return false, err
	}

	return count > 0, nil
}

// NextID recomputes max(id)+1 over the live table so a freed id is handed
// out again after a delete. Callers run it inside the ambient transaction.
func (u *User) NextID(ctx context.Context) (int64, error) {
	db := GetTx(ctx, u.db)

	var next int64
	err := db.Model(&model.User{}).
		Select("COALESCE(MAX(id), 0) + 1").
		Scan(&next).Error
	if err != nil {
		return 0, err
	}

	return next, nil
}
