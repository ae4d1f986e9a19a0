package constants

const (
	ErrCodeInvalidRequestBody  = "INVALID_REQUEST_BODY"
	ErrCodeInvalidStatus       = "INVALID_STATUS"
	ErrCodeUsernameTaken       = "USERNAME_TAKEN"
	ErrCodeUserNotFound        = "USER_NOT_FOUND"
	ErrCodeTransactionNotFound = "TRANSACTION_NOT_FOUND"
	ErrCodeNoTransactions      = "NO_TRANSACTIONS_FOUND"
	ErrCodeInternalError       = "INTERNAL_ERROR"
)

const (
	ErrMsgInvalidRequestBody  = "missing or malformed required fields"
	ErrMsgInvalidStatus       = "invalid status id"
	ErrMsgUsernameTaken       = "username already exists"
	ErrMsgUserNotFound        = "user not found"
	ErrMsgTransactionNotFound = "transaction not found"
	ErrMsgNoTransactions      = "no transactions found for this user"
	ErrMsgInternalError       = "Internal server error"
)

var errorMessages = map[string]string{
	ErrCodeInvalidRequestBody:  ErrMsgInvalidRequestBody,
	ErrCodeInvalidStatus:       ErrMsgInvalidStatus,
	ErrCodeUsernameTaken:       ErrMsgUsernameTaken,
	ErrCodeUserNotFound:        ErrMsgUserNotFound,
	ErrCodeTransactionNotFound: ErrMsgTransactionNotFound,
	ErrCodeNoTransactions:      ErrMsgNoTransactions,
	ErrCodeInternalError:       ErrMsgInternalError,
}

func GetErrorMessage(code string) string {
	if msg, exists := errorMessages[code]; exists {
		return msg
	}
	return ErrMsgInternalError
}

func GetHTTPStatus(code string) int {
	switch code {
	case ErrCodeInvalidRequestBody, ErrCodeInvalidStatus:
		return 400
	case ErrCodeUserNotFound, ErrCodeTransactionNotFound, ErrCodeNoTransactions:
		return 404
	case ErrCodeUsernameTaken:
		return 409
	case ErrCodeInternalError:
		return 500
	default:
		return 500
	}
}

const (
	MsgUserRegistered     = "user registered successfully"
	MsgTransactionCreated = "transaction created successfully"
	MsgTransactionUpdated = "transaction updated successfully"
	MsgTransactionDeleted = "transaction deleted successfully"
)
