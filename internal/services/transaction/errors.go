package transaction

import "errors"

// Service errors
var (
	ErrTransactionNotFound = errors.New("bank transaction not found")
	ErrCardUnavailable     = errors.New("card not available for transfer")
	ErrTransferFailed      = errors.New("transfer failed")
)
