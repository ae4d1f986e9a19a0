package model

import "time"

// Transaction IDs are assigned by the repository as max(id)+1 over the live
// table, not by the database. Deleting the highest id frees it for reuse.
type Transaction struct {
	ID              int64     `gorm:"primaryKey;<-:create"`
	UserID          int64     `gorm:"not null;index:idx_transactions_user_id;column:user_id"`
	Amount          float64   `gorm:"not null"`
	Description     string    `gorm:"type:text"`
	CurrentStatusID int64     `gorm:"not null;column:current_status_id"`
	CreatedAt       time.Time `gorm:"type:timestamp;default:CURRENT_TIMESTAMP"`
}
