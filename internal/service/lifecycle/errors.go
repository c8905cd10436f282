package lifecycle

import "errors"

var (
	ErrMissingRequiredFields = errors.New("missing required fields")
	ErrInvalidOrderID        = errors.New("invalid order id")
	ErrInvalidStatus         = errors.New("invalid order status")

	ErrOrderNotFound = errors.New("order not found")
)
