package orders

import "errors"

// Sentinels carried inside the invalid errors Create returns, so callers
// can branch on the cause without parsing the public message.
var (
	ErrNoItems           = errors.New("order has no items")
	ErrDiscountUndecided = errors.New("order discount conflicts with item discounts")
)
