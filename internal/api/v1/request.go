package v1

type RegisterRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// Pointer fields distinguish absent from zero: an explicit amount of 0 is
// accepted, a missing one is rejected.
type CreateTransactionRequest struct {
	UserID      *int64   `json:"user_id" validate:"required"`
	Amount      *float64 `json:"amount" validate:"required"`
	Description string   `json:"description"`
}

type UpdateTransactionRequest struct {
	Amount      *float64 `json:"amount"`
	Description *string  `json:"description"`
	StatusID    *int64   `json:"status_id"`
}
