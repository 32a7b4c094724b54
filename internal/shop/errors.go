package shop

import "errors"

// Every failure in the core is recoverable: the caller can retry after
// correcting the condition. Handlers surface the specific reason so the
// UI never collapses "out of stock" into "can't carry that much".
var (
	ErrOutOfStock        = errors.New("not enough stock in store")
	ErrCapacityExceeded  = errors.New("carrying capacity exceeded")
	ErrAgeRestricted     = errors.New("age-restricted product")
	ErrInsufficientFunds = errors.New("insufficient wallet balance")
	ErrEmptyCheckout     = errors.New("nothing to check out")
	ErrEmptyReturn       = errors.New("nothing to return")
	ErrInvalidQuantity   = errors.New("quantity must be positive")
)
