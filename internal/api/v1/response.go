package v1

import "github.com/EnriqueHBN/TransactionalApp/internal/service"

type RegisterResponse struct {
	Message string `json:"message"`
	UserID  int64  `json:"userId"`
}

type TransactionResponse struct {
	Message     string                  `json:"message"`
	Transaction service.TransactionView `json:"transaction"`
}

type MessageResponse struct {
	Message string `json:"message"`
}
