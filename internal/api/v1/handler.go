package v1

import (
	"strconv"

	"github.com/EnriqueHBN/TransactionalApp/internal/api/validator"
	"github.com/EnriqueHBN/TransactionalApp/internal/constants"
	"github.com/EnriqueHBN/TransactionalApp/internal/metrics"
	"github.com/EnriqueHBN/TransactionalApp/internal/service"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type Handler struct {
	logger    *zap.Logger
	identity  service.IdentityService
	ledger    service.LedgerService
	validator validator.IXValidator
	metrics   *metrics.Metrics
}

func NewHandler(logger *zap.Logger, identity service.IdentityService, ledger service.LedgerService,
	validator validator.IXValidator, metrics *metrics.Metrics) *Handler {
	return &Handler{
		logger:    logger,
		identity:  identity,
		ledger:    ledger,
		validator: validator,
		metrics:   metrics,
	}
}

func (h *Handler) Pong(c *fiber.Ctx) error {
	return c.SendString("pong")
}

func (h *Handler) Register(c *fiber.Ctx) error {
	var request RegisterRequest

	if err := c.BodyParser(&request); err != nil {
		h.logger.Warn("Failed to parse body", zap.Error(err))
		return badRequest(c)
	}

	if errs := h.validator.Validate(request); len(errs) > 0 {
		h.logger.Warn("Invalid register request", zap.String("field", errs[0].FailedField))
		return badRequest(c)
	}

	cmd := service.RegisterUserCommand{Username: request.Username, Password: request.Password}

	resp, err := h.identity.Register(c.UserContext(), cmd)
	if err != nil {
		return err
	}

	h.metrics.UsersRegistered.Inc()

	h.logger.Info("User registered successfully",
		zap.Int64("userID", resp.UserID),
		zap.String("username", request.Username))

	return c.Status(fiber.StatusCreated).JSON(RegisterResponse{
		Message: constants.MsgUserRegistered,
		UserID:  resp.UserID,
	})
}

func (h *Handler) CreateTransaction(c *fiber.Ctx) error {
	var request CreateTransactionRequest

	if err := c.BodyParser(&request); err != nil {
		h.logger.Warn("Failed to parse body", zap.Error(err))
		return badRequest(c)
	}

	if errs := h.validator.Validate(request); len(errs) > 0 {
		h.logger.Warn("Invalid transaction request", zap.String("field", errs[0].FailedField))
		return badRequest(c)
	}

	cmd := service.CreateTransactionCommand{
		UserID:      *request.UserID,
		Amount:      *request.Amount,
		Description: request.Description,
	}

	transaction, err := h.ledger.CreateTransaction(c.UserContext(), cmd)
	if err != nil {
		return err
	}

	h.metrics.TransactionsCreated.Inc()

	return c.Status(fiber.StatusCreated).JSON(TransactionResponse{
		Message:     constants.MsgTransactionCreated,
		Transaction: transaction,
	})
}

func (h *Handler) GetUserTransactions(c *fiber.Ctx) error {
	userID, err := c.ParamsInt("user_id")
	if err != nil {
		return fiber.ErrNotFound
	}

	transactions, err := h.ledger.GetUserTransactions(c.UserContext(), int64(userID))
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(transactions)
}

func (h *Handler) GetTransaction(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return fiber.ErrNotFound
	}

	transaction, err := h.ledger.GetTransaction(c.UserContext(), int64(id))
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(transaction)
}

func (h *Handler) UpdateTransaction(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return fiber.ErrNotFound
	}

	var request UpdateTransactionRequest

	if err := c.BodyParser(&request); err != nil {
		h.logger.Warn("Failed to parse body", zap.Error(err))
		return badRequest(c)
	}

	cmd := service.UpdateTransactionCommand{
		TransactionID: int64(id),
		Amount:        request.Amount,
		Description:   request.Description,
		StatusID:      request.StatusID,
	}

	transaction, err := h.ledger.UpdateTransaction(c.UserContext(), cmd)
	if err != nil {
		return err
	}

	h.metrics.TransactionsUpdated.Inc()
	if request.StatusID != nil {
		h.metrics.RecordStatusTransition(strconv.FormatInt(*request.StatusID, 10))
	}

	return c.Status(fiber.StatusOK).JSON(TransactionResponse{
		Message:     constants.MsgTransactionUpdated,
		Transaction: transaction,
	})
}

func (h *Handler) DeleteTransaction(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return fiber.ErrNotFound
	}

	if err := h.ledger.DeleteTransaction(c.UserContext(), int64(id)); err != nil {
		return err
	}

	h.metrics.TransactionsDeleted.Inc()

	return c.Status(fiber.StatusOK).JSON(MessageResponse{Message: constants.MsgTransactionDeleted})
}

func badRequest(c *fiber.Ctx) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
		"error": constants.ErrMsgInvalidRequestBody,
		"code":  constants.ErrCodeInvalidRequestBody,
	})
}
