package model

import "time"

type User struct {
	ID           int64     `gorm:"primaryKey;<-:create"`
	Username     string    `gorm:"type:varchar(255);not null;uniqueIndex:idx_users_username"`
	PasswordHash string    `gorm:"type:varchar(255);not null;column:password_hash"`
	CreatedAt    time.Time `gorm:"type:timestamp;default:CURRENT_TIMESTAMP"`
}
