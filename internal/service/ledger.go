package service

import (
	"context"
	"errors"
	"time"

	"github.com/EnriqueHBN/TransactionalApp/internal/constants"
	"github.com/EnriqueHBN/TransactionalApp/internal/model"
	"github.com/EnriqueHBN/TransactionalApp/internal/repository"
	"go.uber.org/zap"
)

// LedgerService owns the transaction lifecycle: every status change appends
// exactly one history entry, and a delete cascades to the history rows.
type LedgerService interface {
	CreateTransaction(ctx context.Context, cmd CreateTransactionCommand) (TransactionView, error)
	GetUserTransactions(ctx context.Context, userID int64) ([]TransactionView, error)
	GetTransaction(ctx context.Context, id int64) (TransactionWithHistoryView, error)
	UpdateTransaction(ctx context.Context, cmd UpdateTransactionCommand) (TransactionView, error)
	DeleteTransaction(ctx context.Context, id int64) error
}

type ledger struct {
	transactionRepo repository.TransactionRepository
	historyRepo     repository.StatusHistoryRepository
	userRepo        repository.UserRepository
	catalog         CatalogService
	txManager       repository.TxManager
	logger          *zap.Logger
}

func NewLedgerService(transactionRepo repository.TransactionRepository,
	historyRepo repository.StatusHistoryRepository, userRepo repository.UserRepository,
	catalog CatalogService, txManager repository.TxManager, logger *zap.Logger) LedgerService {
	return &ledger{
		transactionRepo: transactionRepo,
		historyRepo:     historyRepo,
		userRepo:        userRepo,
		catalog:         catalog,
		txManager:       txManager,
		logger:          logger,
	}
}

func (l *ledger) CreateTransaction(ctx context.Context, cmd CreateTransactionCommand) (TransactionView, error) {
	now := time.Now().UTC()

	transaction := model.Transaction{
		UserID:          cmd.UserID,
		Amount:          cmd.Amount,
		Description:     cmd.Description,
		CurrentStatusID: model.StatusIDInProcess,
		CreatedAt:       now,
	}

	err := l.txManager.WithTx(ctx, func(ctx context.Context) error {
		exists, err := l.userRepo.ExistsByID(ctx, cmd.UserID)
		if err != nil {
			l.logger.Error("Failed to check user", zap.Error(err), zap.Int64("userID", cmd.UserID))
			return NewServiceError(constants.ErrCodeInternalError, err)
		}

		if !exists {
			return NewServiceError(constants.ErrCodeUserNotFound, errors.New("user not found"))
		}

		nextID, err := l.transactionRepo.NextID(ctx)
		if err != nil {
			l.logger.Error("Failed to compute next transaction id", zap.Error(err))
			return NewServiceError(constants.ErrCodeInternalError, err)
		}

		transaction.ID = nextID

		if err := l.transactionRepo.Create(ctx, &transaction); err != nil {
			l.logger.Error("Failed to create transaction", zap.Error(err))
			return NewServiceError(constants.ErrCodeInternalError, err)
		}

		if err := l.appendHistory(ctx, transaction.ID, model.StatusIDInProcess, now); err != nil {
			return err
		}

		return nil
	})

	if err != nil {
		return TransactionView{}, err
	}

	l.logger.Info("Transaction created",
		zap.Int64("transactionID", transaction.ID),
		zap.Int64("userID", cmd.UserID),
		zap.Float64("amount", cmd.Amount))

	return toTransactionView(&transaction), nil
}

func (l *ledger) GetUserTransactions(ctx context.Context, userID int64) ([]TransactionView, error) {
	transactions, err := l.transactionRepo.GetByUserID(ctx, userID)
	if err != nil {
		l.logger.Error("Failed to list transactions", zap.Error(err), zap.Int64("userID", userID))
		return nil, NewServiceError(constants.ErrCodeInternalError, err)
	}

	// An existing user with no transactions is reported the same way as an
	// unknown user. Callers cannot tell the two apart.
	if len(transactions) == 0 {
		return nil, NewServiceError(constants.ErrCodeNoTransactions, errors.New("no transactions found"))
	}

	views := make([]TransactionView, 0, len(transactions))
	for i := range transactions {
		views = append(views, toTransactionView(&transactions[i]))
	}

	return views, nil
}

func (l *ledger) GetTransaction(ctx context.Context, id int64) (TransactionWithHistoryView, error) {
	transaction, err := l.transactionRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrTransactionNotFound) {
			return TransactionWithHistoryView{}, NewServiceError(constants.ErrCodeTransactionNotFound, err)
		}

		l.logger.Error("Failed to get transaction", zap.Error(err), zap.Int64("transactionID", id))
		return TransactionWithHistoryView{}, NewServiceError(constants.ErrCodeInternalError, err)
	}

	entries, err := l.historyRepo.GetByTransactionID(ctx, id)
	if err != nil {
		l.logger.Error("Failed to get status history", zap.Error(err), zap.Int64("transactionID", id))
		return TransactionWithHistoryView{}, NewServiceError(constants.ErrCodeInternalError, err)
	}

	names, err := l.catalog.StatusNames(ctx)
	if err != nil {
		l.logger.Error("Failed to load status catalog", zap.Error(err))
		return TransactionWithHistoryView{}, NewServiceError(constants.ErrCodeInternalError, err)
	}

	history := make([]HistoryEntryView, 0, len(entries))
	for _, entry := range entries {
		name, ok := names[entry.StatusID]
		if !ok {
			name = model.StatusNameUnknown
		}

		history = append(history, HistoryEntryView{
			Status:    name,
			ChangedAt: formatTime(entry.ChangedAt),
		})
	}

	return TransactionWithHistoryView{
		TransactionView: toTransactionView(transaction),
		History:         history,
	}, nil
}

func (l *ledger) UpdateTransaction(ctx context.Context, cmd UpdateTransactionCommand) (TransactionView, error) {
	var updated model.Transaction

	err := l.txManager.WithTx(ctx, func(ctx context.Context) error {
		transaction, err := l.transactionRepo.GetByID(ctx, cmd.TransactionID)
		if err != nil {
			if errors.Is(err, repository.ErrTransactionNotFound) {
				return NewServiceError(constants.ErrCodeTransactionNotFound, err)
			}

			l.logger.Error("Failed to get transaction", zap.Error(err),
				zap.Int64("transactionID", cmd.TransactionID))
			return NewServiceError(constants.ErrCodeInternalError, err)
		}

		if cmd.Amount != nil {
			transaction.Amount = *cmd.Amount
		}

		if cmd.Description != nil {
			transaction.Description = *cmd.Description
		}

		// A status equal to the current one is a no-op: no history entry.
		// Only a differing status is validated against the catalog.
		if cmd.StatusID != nil && *cmd.StatusID != transaction.CurrentStatusID {
			valid, err := l.catalog.Exists(ctx, *cmd.StatusID)
			if err != nil {
				l.logger.Error("Failed to check status", zap.Error(err), zap.Int64("statusID", *cmd.StatusID))
				return NewServiceError(constants.ErrCodeInternalError, err)
			}

			if !valid {
				return NewServiceError(constants.ErrCodeInvalidStatus, errors.New("invalid status id"))
			}

			transaction.CurrentStatusID = *cmd.StatusID

			if err := l.appendHistory(ctx, transaction.ID, *cmd.StatusID, time.Now().UTC()); err != nil {
				return err
			}
		}

		if err := l.transactionRepo.Update(ctx, transaction); err != nil {
			l.logger.Error("Failed to update transaction", zap.Error(err),
				zap.Int64("transactionID", cmd.TransactionID))
			return NewServiceError(constants.ErrCodeInternalError, err)
		}

		updated = *transaction
		return nil
	})

	if err != nil {
		return TransactionView{}, err
	}

	l.logger.Info("Transaction updated", zap.Int64("transactionID", updated.ID))

	return toTransactionView(&updated), nil
}

func (l *ledger) DeleteTransaction(ctx context.Context, id int64) error {
	err := l.txManager.WithTx(ctx, func(ctx context.Context) error {
		if _, err := l.transactionRepo.GetByID(ctx, id); err != nil {
			if errors.Is(err, repository.ErrTransactionNotFound) {
				return NewServiceError(constants.ErrCodeTransactionNotFound, err)
			}

			l.logger.Error("Failed to get transaction", zap.Error(err), zap.Int64("transactionID", id))
			return NewServiceError(constants.ErrCodeInternalError, err)
		}

		if err := l.historyRepo.DeleteByTransactionID(ctx, id); err != nil {
			l.logger.Error("Failed to delete status history", zap.Error(err), zap.Int64("transactionID", id))
			return NewServiceError(constants.ErrCodeInternalError, err)
		}

		if err := l.transactionRepo.Delete(ctx, id); err != nil {
			l.logger.Error("Failed to delete transaction", zap.Error(err), zap.Int64("transactionID", id))
			return NewServiceError(constants.ErrCodeInternalError, err)
		}

		return nil
	})

	if err != nil {
		return err
	}

	l.logger.Info("Transaction deleted", zap.Int64("transactionID", id))

	return nil
}

func (l *ledger) appendHistory(ctx context.Context, transactionID, statusID int64, at time.Time) error {
	nextID, err := l.historyRepo.NextID(ctx)
	if err != nil {
		l.logger.Error("Failed to compute next history id", zap.Error(err))
		return NewServiceError(constants.ErrCodeInternalError, err)
	}

	entry := model.StatusHistory{
		ID:            nextID,
		TransactionID: transactionID,
		StatusID:      statusID,
		ChangedAt:     at,
	}

	if err := l.historyRepo.Create(ctx, &entry); err != nil {
		l.logger.Error("Failed to append status history", zap.Error(err),
			zap.Int64("transactionID", transactionID))
		return NewServiceError(constants.ErrCodeInternalError, err)
	}

	return nil
}

func toTransactionView(t *model.Transaction) TransactionView {
	return TransactionView{
		ID:              t.ID,
		UserID:          t.UserID,
		Amount:          t.Amount,
		Description:     t.Description,
		CurrentStatusID: t.CurrentStatusID,
		CreatedAt:       formatTime(t.CreatedAt),
	}
}

// formatTime renders UTC ISO-8601. Lexicographic order of these strings
// matches chronological order.
func formatTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}
