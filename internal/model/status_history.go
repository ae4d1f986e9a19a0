package model

import "time"

// StatusHistory rows are append-only: one written at transaction creation and
// one per subsequent status change. They are removed only by the cascade when
// the owning transaction is deleted.
type StatusHistory struct {
	ID            int64     `gorm:"primaryKey;<-:create"`
	TransactionID int64     `gorm:"not null;index:idx_status_history_transaction_id;column:transaction_id"`
	StatusID      int64     `gorm:"not null;column:status_id"`
	ChangedAt     time.Time `gorm:"type:timestamp;column:changed_at"`
}

func (StatusHistory) TableName() string {
	return "transaction_status_history"
}
