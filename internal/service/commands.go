package service

type RegisterUserCommand struct {
	Username string
	Password string
}

type CreateTransactionCommand struct {
	UserID      int64
	Amount      float64
	Description string
}

// UpdateTransactionCommand carries partial updates: nil fields keep the
// stored values untouched.
type UpdateTransactionCommand struct {
	TransactionID int64
	Amount        *float64
	Description   *string
	StatusID      *int64
}
