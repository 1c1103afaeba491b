package commands

import "errors"

var (
	ErrRestaurantNotFound = errors.New("restaurant not found")
	ErrDishNotFound       = errors.New("dish not found")
	ErrOrderNotFound      = errors.New("order not found")
	ErrAccountNotFound    = errors.New("account not found")

	// ErrRequestInProgress is returned when the same idempotency key is
	// already being processed and has no remembered result yet.
	ErrRequestInProgress = errors.New("request with this idempotency key is in progress")
)
