package constants_test

import (
	"testing"

	"github.com/EnriqueHBN/TransactionalApp/internal/constants"
	"github.com/stretchr/testify/assert"
)

func TestGetHTTPStatus(t *testing.T) {
	assert.Equal(t, 400, constants.GetHTTPStatus(constants.ErrCodeInvalidRequestBody))
	assert.Equal(t, 400, constants.GetHTTPStatus(constants.ErrCodeInvalidStatus))
	assert.Equal(t, 404, constants.GetHTTPStatus(constants.ErrCodeUserNotFound))
	assert.Equal(t, 404, constants.GetHTTPStatus(constants.ErrCodeTransactionNotFound))
	assert.Equal(t, 404, constants.GetHTTPStatus(constants.ErrCodeNoTransactions))
	assert.Equal(t, 409, constants.GetHTTPStatus(constants.ErrCodeUsernameTaken))
	assert.Equal(t, 500, constants.GetHTTPStatus(constants.ErrCodeInternalError))
	assert.Equal(t, 500, constants.GetHTTPStatus("SOMETHING_ELSE"))
}

func TestGetErrorMessage(t *testing.T) {
	assert.Equal(t, constants.ErrMsgUsernameTaken, constants.GetErrorMessage(constants.ErrCodeUsernameTaken))
	assert.Equal(t, constants.ErrMsgInternalError, constants.GetErrorMessage("UNKNOWN_CODE"))
}
