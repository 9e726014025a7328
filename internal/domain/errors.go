package domain

import "errors"

var (
	ErrInvalidPrice           = errors.New("price must be positive")
	ErrInvalidQuantity        = errors.New("quantity must be positive")
	ErrEmptySymbol            = errors.New("symbol cannot be empty")
	ErrNoSymbols              = errors.New("at least one symbol required")
	ErrOrderNotFound          = errors.New("order not found")
	ErrAccessDenied           = errors.New("order belongs to another user")
	ErrOrderCannotBeCancelled = errors.New("only pending orders can be cancelled")
)
