package service

import (
	"context"
	"errors"
	"time"

	"github.com/EnriqueHBN/TransactionalApp/internal/constants"
	"github.com/EnriqueHBN/TransactionalApp/internal/model"
	"github.com/EnriqueHBN/TransactionalApp/internal/repository"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

type IdentityService interface {
	Register(ctx context.Context, cmd RegisterUserCommand) (RegisterUserResponse, error)
}

type identity struct {
	userRepo  repository.UserRepository
	txManager repository.TxManager
	logger    *zap.Logger
}

func NewIdentityService(userRepo repository.UserRepository, txManager repository.TxManager,
	logger *zap.Logger) IdentityService {
	return &identity{userRepo: userRepo, txManager: txManager, logger: logger}
}

func (i *identity) Register(ctx context.Context, cmd RegisterUserCommand) (RegisterUserResponse, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(cmd.Password), bcrypt.DefaultCost)
	if err != nil {
		i.logger.Error("Failed to hash password", zap.Error(err))
		return RegisterUserResponse{}, NewServiceError(constants.ErrCodeInternalError, err)
	}

	user := model.User{
		Username:     cmd.Username,
		PasswordHash: string(hash),
		CreatedAt:    time.Now().UTC(),
	}

	err = i.txManager.WithTx(ctx, func(ctx context.Context) error {
		taken, err := i.userRepo.ExistsByUsername(ctx, cmd.Username)
		if err != nil {
			i.logger.Error("Failed to check username", zap.Error(err))
			return NewServiceError(constants.ErrCodeInternalError, err)
		}

		if taken {
			i.logger.Warn("Username already registered", zap.String("username", cmd.Username))
			return NewServiceError(constants.ErrCodeUsernameTaken, errors.New("username already exists"))
		}

		nextID, err := i.userRepo.NextID(ctx)
		if err != nil {
			i.logger.Error("Failed to compute next user id", zap.Error(err))
			return NewServiceError(constants.ErrCodeInternalError, err)
		}

		user.ID = nextID

		err = i.userRepo.Create(ctx, &user)
		if err != nil && errors.Is(err, repository.ErrUserDuplicate) {
			// unique index caught a concurrent registration
			return NewServiceError(constants.ErrCodeUsernameTaken, err)
		}

		if err != nil {
			i.logger.Error("Failed to create user", zap.Error(err))
			return NewServiceError(constants.ErrCodeInternalError, err)
		}

		return nil
	})

	if err != nil {
		return RegisterUserResponse{}, err
	}

	i.logger.Info("User registered",
		zap.Int64("userID", user.ID),
		zap.String("username", cmd.Username))

	return RegisterUserResponse{UserID: user.ID}, nil
}
