package card

import "errors"

// Service errors
var (
	ErrCardNotFound      = errors.New("card not found")
	ErrAccountNotFound   = errors.New("account not found")
	ErrAlreadyIssued     = errors.New("card already issued")
	ErrInsufficientFunds = errors.New("insufficient funds")
	ErrInvalidAmount     = errors.New("invalid amount")
)
