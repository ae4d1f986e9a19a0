package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/EnriqueHBN/TransactionalApp/internal/constants"
	"github.com/EnriqueHBN/TransactionalApp/internal/mocks"
	"github.com/EnriqueHBN/TransactionalApp/internal/model"
	"github.com/EnriqueHBN/TransactionalApp/internal/repository"
	"github.com/EnriqueHBN/TransactionalApp/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

func TestIdentity_Register(t *testing.T) {
	logger := zap.NewNop()

	cmd := service.RegisterUserCommand{Username: "ana", Password: "x"}

	t.Run("registers user successfully", func(t *testing.T) {
		mockUserRepo := &mocks.UserRepository{}
		mockTxManager := &mocks.TxManager{}

		svc := service.NewIdentityService(mockUserRepo, mockTxManager, logger)

		mockTxManager.On("WithTx", context.Background(),
			mock.AnythingOfType("func(context.Context) error")).Return(nil)

		mockUserRepo.On("ExistsByUsername", mock.AnythingOfType("*context.valueCtx"), "ana").
			Return(false, nil)

		mockUserRepo.On("NextID", mock.AnythingOfType("*context.valueCtx")).
			Return(int64(1), nil)

		mockUserRepo.On("Create", mock.AnythingOfType("*context.valueCtx"),
			mock.MatchedBy(func(user *model.User) bool {
				return user.ID == 1 &&
					user.Username == "ana" &&
					user.PasswordHash != "" &&
					user.PasswordHash != "x" &&
					bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("x")) == nil
			})).Return(nil)

		resp, err := svc.Register(context.Background(), cmd)

		assert.NoError(t, err)
		assert.Equal(t, int64(1), resp.UserID)

		mockTxManager.AssertExpectations(t)
		mockUserRepo.AssertExpectations(t)
	})

	t.Run("returns conflict when username already exists", func(t *testing.T) {
		mockUserRepo := &mocks.UserRepository{}
		mockTxManager := &mocks.TxManager{}

		svc := service.NewIdentityService(mockUserRepo, mockTxManager, logger)

		mockTxManager.On("WithTx", context.Background(),
			mock.AnythingOfType("func(context.Context) error")).Return(nil)

		mockUserRepo.On("ExistsByUsername", mock.AnythingOfType("*context.valueCtx"), "ana").
			Return(true, nil)

		resp, err := svc.Register(context.Background(), cmd)

		assert.Error(t, err)
		assert.Equal(t, service.RegisterUserResponse{}, resp)

		var serviceErr service.Error
		assert.True(t, errors.As(err, &serviceErr))
		assert.Equal(t, constants.ErrCodeUsernameTaken, serviceErr.Code)

		mockUserRepo.AssertNotCalled(t, "Create")
	})

	t.Run("returns conflict when unique index rejects concurrent duplicate", func(t *testing.T) {
		mockUserRepo := &mocks.UserRepository{}
		mockTxManager := &mocks.TxManager{}

		svc := service.NewIdentityService(mockUserRepo, mockTxManager, logger)

		mockTxManager.On("WithTx", context.Background(),
			mock.AnythingOfType("func(context.Context) error")).Return(nil)

		mockUserRepo.On("ExistsByUsername", mock.AnythingOfType("*context.valueCtx"), "ana").
			Return(false, nil)

		mockUserRepo.On("NextID", mock.AnythingOfType("*context.valueCtx")).
			Return(int64(2), nil)

		mockUserRepo.On("Create", mock.AnythingOfType("*context.valueCtx"),
			mock.AnythingOfType("*model.User")).Return(repository.ErrUserDuplicate)

		_, err := svc.Register(context.Background(), cmd)

		assert.Error(t, err)

		var serviceErr service.Error
		assert.True(t, errors.As(err, &serviceErr))
		assert.Equal(t, constants.ErrCodeUsernameTaken, serviceErr.Code)
	})

	t.Run("returns internal error when id assignment fails", func(t *testing.T) {
		mockUserRepo := &mocks.UserRepository{}
		mockTxManager := &mocks.TxManager{}

		svc := service.NewIdentityService(mockUserRepo, mockTxManager, logger)

		mockTxManager.On("WithTx", context.Background(),
			mock.AnythingOfType("func(context.Context) error")).Return(nil)

		mockUserRepo.On("ExistsByUsername", mock.AnythingOfType("*context.valueCtx"), "ana").
			Return(false, nil)

		mockUserRepo.On("NextID", mock.AnythingOfType("*context.valueCtx")).
			Return(int64(0), errors.New("connection lost"))

		_, err := svc.Register(context.Background(), cmd)

		assert.Error(t, err)

		var serviceErr service.Error
		assert.True(t, errors.As(err, &serviceErr))
		assert.Equal(t, constants.ErrCodeInternalError, serviceErr.Code)

		mockUserRepo.AssertNotCalled(t, "Create")
	})
}
