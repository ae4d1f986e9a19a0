package service

type RegisterUserResponse struct {
	UserID int64 `json:"userId"`
}

type TransactionView struct {
	ID              int64   `json:"id"`
	UserID          int64   `json:"user_id"`
	Amount          float64 `json:"amount"`
	Description     string  `json:"description"`
	CurrentStatusID int64   `json:"current_status_id"`
	CreatedAt       string  `json:"created_at"`
}

type HistoryEntryView struct {
	Status    string `json:"status"`
	ChangedAt string `json:"changed_at"`
}

type TransactionWithHistoryView struct {
	TransactionView
	History []HistoryEntryView `json:"history"`
}
